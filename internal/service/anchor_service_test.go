package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"yachaq-ledger/internal/core/domain"
	"yachaq-ledger/internal/core/ports/mocks"
	"yachaq-ledger/pkg/apperror"
	"yachaq-ledger/pkg/merkle"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// mockTx implements pgx.Tx for testing
type mockTx struct{ pgx.Tx }

func (m *mockTx) Rollback(_ context.Context) error { return nil }
func (m *mockTx) Commit(_ context.Context) error   { return nil }

func anchorTestLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func unanchoredChain(n int) []domain.AuditReceipt {
	return chainOf(n)
}

func TestAnchorService_AnchorNextBatch_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	receipts := mocks.NewMockReceiptRepository(ctrl)
	batches := mocks.NewMockAnchorRepository(ctrl)
	client := mocks.NewMockAnchorClient(ctrl)
	transactor := mocks.NewMockDBTransactor(ctrl)
	cache := mocks.NewMockProofCache(ctrl)

	svc := NewAnchorService(receipts, batches, client, transactor, cache, 100, anchorTestLogger())
	ctx := context.Background()
	tx := &mockTx{}

	pending := unanchoredChain(3)
	leaves := []string{pending[0].ReceiptHash, pending[1].ReceiptHash, pending[2].ReceiptHash}
	tree, err := merkle.Build(leaves)
	require.NoError(t, err)

	receipts.EXPECT().ListUnanchored(gomock.Any(), 100).Return(pending, nil)
	client.EXPECT().AnchorRoot(gomock.Any(), tree.Root(), 3, gomock.Any()).Return(&domain.AnchorResult{
		AnchorID:  "anchor-1",
		TxRef:     "0xfeed",
		Confirmed: true,
	}, nil)
	transactor.EXPECT().Begin(gomock.Any()).Return(tx, nil)

	var recordedBatch *domain.AnchorBatch
	batches.EXPECT().Create(gomock.Any(), tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, b *domain.AnchorBatch) error {
			recordedBatch = b
			return nil
		})
	for i := range pending {
		receipts.EXPECT().MarkAnchored(gomock.Any(), tx, pending[i].ID, gomock.Any(), i, "0xfeed").Return(nil)
	}
	cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), leafCacheTTL).Return(nil)

	outcome, err := svc.AnchorNextBatch(ctx)
	require.NoError(t, err)
	require.NotNil(t, outcome)

	assert.Equal(t, tree.Root(), outcome.MerkleRoot)
	assert.Equal(t, 3, outcome.ReceiptCount)
	assert.Equal(t, "anchor-1", outcome.AnchorID)
	assert.Equal(t, "0xfeed", outcome.TxRef)
	assert.True(t, outcome.Confirmed)

	require.NotNil(t, recordedBatch)
	assert.Equal(t, pending[0].Sequence, recordedBatch.FirstSequence)
	assert.Equal(t, pending[2].Sequence, recordedBatch.LastSequence)
	assert.Equal(t, tree.Root(), recordedBatch.MerkleRoot)
}

func TestAnchorService_AnchorNextBatch_NothingPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	receipts := mocks.NewMockReceiptRepository(ctrl)

	svc := NewAnchorService(receipts, mocks.NewMockAnchorRepository(ctrl),
		mocks.NewMockAnchorClient(ctrl), mocks.NewMockDBTransactor(ctrl), nil, 100, anchorTestLogger())

	receipts.EXPECT().ListUnanchored(gomock.Any(), 100).Return(nil, nil)

	outcome, err := svc.AnchorNextBatch(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, outcome)
}

func TestAnchorService_AnchorNextBatch_GatewayFailureLeavesReceiptsUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	receipts := mocks.NewMockReceiptRepository(ctrl)
	client := mocks.NewMockAnchorClient(ctrl)

	svc := NewAnchorService(receipts, mocks.NewMockAnchorRepository(ctrl),
		client, mocks.NewMockDBTransactor(ctrl), nil, 100, anchorTestLogger())

	pending := unanchoredChain(2)
	receipts.EXPECT().ListUnanchored(gomock.Any(), 100).Return(pending, nil)
	client.EXPECT().AnchorRoot(gomock.Any(), gomock.Any(), 2, gomock.Any()).
		Return(nil, apperror.ErrAnchoringFailed(errors.New("gateway down")))

	// No Begin, no batch Create, no MarkAnchored: the batch stays
	// retry-eligible.
	outcome, err := svc.AnchorNextBatch(context.Background())
	assert.Nil(t, outcome)
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "ANC_001", appErr.Code)
}

func TestAnchorService_AnchorNextBatch_SingleReceipt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	receipts := mocks.NewMockReceiptRepository(ctrl)
	batches := mocks.NewMockAnchorRepository(ctrl)
	client := mocks.NewMockAnchorClient(ctrl)
	transactor := mocks.NewMockDBTransactor(ctrl)

	svc := NewAnchorService(receipts, batches, client, transactor, nil, 100, anchorTestLogger())
	tx := &mockTx{}

	pending := unanchoredChain(1)

	receipts.EXPECT().ListUnanchored(gomock.Any(), 100).Return(pending, nil)
	// A single-leaf tree's root is the leaf itself.
	client.EXPECT().AnchorRoot(gomock.Any(), pending[0].ReceiptHash, 1, gomock.Any()).Return(&domain.AnchorResult{
		AnchorID: "anchor-2", TxRef: "0xbeef", Confirmed: false,
	}, nil)
	transactor.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	batches.EXPECT().Create(gomock.Any(), tx, gomock.Any()).Return(nil)
	receipts.EXPECT().MarkAnchored(gomock.Any(), tx, pending[0].ID, gomock.Any(), 0, "0xbeef").Return(nil)

	outcome, err := svc.AnchorNextBatch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, pending[0].ReceiptHash, outcome.MerkleRoot)
	assert.Equal(t, 1, outcome.ReceiptCount)
}

func anchoredBatchFixture(n int) (*domain.AnchorBatch, []domain.AuditReceipt, *merkle.Tree) {
	receipts := chainOf(n)
	leaves := make([]string, n)
	batchID := uuid.New()
	txRef := "0xanchor"
	for i := range receipts {
		leaves[i] = receipts[i].ReceiptHash
		idx := i
		receipts[i].BatchID = &batchID
		receipts[i].LeafIndex = &idx
		receipts[i].AnchorTxRef = &txRef
	}
	tree, _ := merkle.Build(leaves)
	batch := &domain.AnchorBatch{
		ID:           batchID,
		MerkleRoot:   tree.Root(),
		ReceiptCount: n,
		AnchorID:     "anchor-9",
		TxRef:        txRef,
	}
	return batch, receipts, tree
}

func TestAnchorService_ProveInclusion_FromStorage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	receiptRepo := mocks.NewMockReceiptRepository(ctrl)
	cache := mocks.NewMockProofCache(ctrl)

	svc := NewAnchorService(receiptRepo, mocks.NewMockAnchorRepository(ctrl),
		mocks.NewMockAnchorClient(ctrl), mocks.NewMockDBTransactor(ctrl), cache, 100, anchorTestLogger())

	batch, receipts, tree := anchoredBatchFixture(4)
	target := receipts[2]

	receiptRepo.EXPECT().GetByID(gomock.Any(), target.ID).Return(&target, nil)
	cache.EXPECT().Get(gomock.Any(), batch.ID.String()).Return(nil, nil)
	receiptRepo.EXPECT().ListByBatch(gomock.Any(), batch.ID).Return(receipts, nil)
	cache.EXPECT().Set(gomock.Any(), batch.ID.String(), gomock.Any(), leafCacheTTL).Return(nil)

	proof, err := svc.ProveInclusion(context.Background(), target.ID)
	require.NoError(t, err)

	assert.Equal(t, target.ReceiptHash, proof.LeafHash)
	assert.Equal(t, 2, proof.LeafIndex)
	assert.Equal(t, tree.Root(), proof.ExpectedRoot)
	assert.True(t, merkle.VerifyProof(proof, batch.MerkleRoot))
}

func TestAnchorService_ProveInclusion_FromCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	receiptRepo := mocks.NewMockReceiptRepository(ctrl)
	cache := mocks.NewMockProofCache(ctrl)

	svc := NewAnchorService(receiptRepo, mocks.NewMockAnchorRepository(ctrl),
		mocks.NewMockAnchorClient(ctrl), mocks.NewMockDBTransactor(ctrl), cache, 100, anchorTestLogger())

	batch, receipts, _ := anchoredBatchFixture(3)
	target := receipts[1]

	leaves := make([]string, len(receipts))
	for i := range receipts {
		leaves[i] = receipts[i].ReceiptHash
	}
	encoded, err := json.Marshal(leaves)
	require.NoError(t, err)

	receiptRepo.EXPECT().GetByID(gomock.Any(), target.ID).Return(&target, nil)
	cache.EXPECT().Get(gomock.Any(), batch.ID.String()).Return(encoded, nil)
	// No ListByBatch call: the cache served the leaf set.

	proof, err := svc.ProveInclusion(context.Background(), target.ID)
	require.NoError(t, err)
	assert.True(t, merkle.VerifyProof(proof, batch.MerkleRoot))
}

func TestAnchorService_ProveInclusion_NotAnchored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	receiptRepo := mocks.NewMockReceiptRepository(ctrl)

	svc := NewAnchorService(receiptRepo, mocks.NewMockAnchorRepository(ctrl),
		mocks.NewMockAnchorClient(ctrl), mocks.NewMockDBTransactor(ctrl), nil, 100, anchorTestLogger())

	unanchored := chainOf(1)[0]
	receiptRepo.EXPECT().GetByID(gomock.Any(), unanchored.ID).Return(&unanchored, nil)

	_, err := svc.ProveInclusion(context.Background(), unanchored.ID)
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NF_003", appErr.Code)
}

func TestAnchorService_ProveInclusion_UnknownReceipt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	receiptRepo := mocks.NewMockReceiptRepository(ctrl)

	svc := NewAnchorService(receiptRepo, mocks.NewMockAnchorRepository(ctrl),
		mocks.NewMockAnchorClient(ctrl), mocks.NewMockDBTransactor(ctrl), nil, 100, anchorTestLogger())

	receiptRepo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(nil, nil)

	_, err := svc.ProveInclusion(context.Background(), uuid.New())
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NF_001", appErr.Code)
}

func TestAnchorService_VerifyBatch_Valid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	receiptRepo := mocks.NewMockReceiptRepository(ctrl)
	batchRepo := mocks.NewMockAnchorRepository(ctrl)

	svc := NewAnchorService(receiptRepo, batchRepo,
		mocks.NewMockAnchorClient(ctrl), mocks.NewMockDBTransactor(ctrl), nil, 100, anchorTestLogger())

	batch, receipts, _ := anchoredBatchFixture(5)

	batchRepo.EXPECT().GetByID(gomock.Any(), batch.ID).Return(batch, nil)
	receiptRepo.EXPECT().ListByBatch(gomock.Any(), batch.ID).Return(receipts, nil)

	ok, err := svc.VerifyBatch(context.Background(), batch.ID)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAnchorService_VerifyBatch_DetectsTamperedReceipt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	receiptRepo := mocks.NewMockReceiptRepository(ctrl)
	batchRepo := mocks.NewMockAnchorRepository(ctrl)

	svc := NewAnchorService(receiptRepo, batchRepo,
		mocks.NewMockAnchorClient(ctrl), mocks.NewMockDBTransactor(ctrl), nil, 100, anchorTestLogger())

	batch, receipts, _ := anchoredBatchFixture(4)
	receipts[1].ReceiptHash = receipts[2].ReceiptHash // swap-style tamper

	batchRepo.EXPECT().GetByID(gomock.Any(), batch.ID).Return(batch, nil)
	receiptRepo.EXPECT().ListByBatch(gomock.Any(), batch.ID).Return(receipts, nil)

	ok, err := svc.VerifyBatch(context.Background(), batch.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAnchorService_VerifyBatch_CountMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	receiptRepo := mocks.NewMockReceiptRepository(ctrl)
	batchRepo := mocks.NewMockAnchorRepository(ctrl)

	svc := NewAnchorService(receiptRepo, batchRepo,
		mocks.NewMockAnchorClient(ctrl), mocks.NewMockDBTransactor(ctrl), nil, 100, anchorTestLogger())

	batch, receipts, _ := anchoredBatchFixture(3)

	batchRepo.EXPECT().GetByID(gomock.Any(), batch.ID).Return(batch, nil)
	receiptRepo.EXPECT().ListByBatch(gomock.Any(), batch.ID).Return(receipts[:2], nil)

	ok, err := svc.VerifyBatch(context.Background(), batch.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAnchorService_GetBatch_RefreshesPendingConfirmation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	batchRepo := mocks.NewMockAnchorRepository(ctrl)
	client := mocks.NewMockAnchorClient(ctrl)

	svc := NewAnchorService(mocks.NewMockReceiptRepository(ctrl), batchRepo,
		client, mocks.NewMockDBTransactor(ctrl), nil, 100, anchorTestLogger())

	batch, _, _ := anchoredBatchFixture(3)
	require.False(t, batch.Confirmed)

	batchRepo.EXPECT().GetByID(gomock.Any(), batch.ID).Return(batch, nil)
	client.EXPECT().GetAnchor(gomock.Any(), "anchor-9").Return(&domain.AnchorResult{
		AnchorID:  "anchor-9",
		TxRef:     "0xanchor",
		Confirmed: true,
	}, nil)
	batchRepo.EXPECT().MarkConfirmed(gomock.Any(), batch.ID).Return(nil)

	got, err := svc.GetBatch(context.Background(), batch.ID)
	require.NoError(t, err)
	assert.True(t, got.Confirmed)
}

func TestAnchorService_GetBatch_LookupFailureKeepsPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	batchRepo := mocks.NewMockAnchorRepository(ctrl)
	client := mocks.NewMockAnchorClient(ctrl)

	svc := NewAnchorService(mocks.NewMockReceiptRepository(ctrl), batchRepo,
		client, mocks.NewMockDBTransactor(ctrl), nil, 100, anchorTestLogger())

	batch, _, _ := anchoredBatchFixture(3)

	batchRepo.EXPECT().GetByID(gomock.Any(), batch.ID).Return(batch, nil)
	client.EXPECT().GetAnchor(gomock.Any(), "anchor-9").Return(nil, errors.New("gateway unreachable"))

	got, err := svc.GetBatch(context.Background(), batch.ID)
	require.NoError(t, err)
	assert.False(t, got.Confirmed)
}

func TestAnchorService_GetBatch_ConfirmedSkipsLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	batchRepo := mocks.NewMockAnchorRepository(ctrl)

	svc := NewAnchorService(mocks.NewMockReceiptRepository(ctrl), batchRepo,
		mocks.NewMockAnchorClient(ctrl), mocks.NewMockDBTransactor(ctrl), nil, 100, anchorTestLogger())

	batch, _, _ := anchoredBatchFixture(3)
	batch.Confirmed = true

	batchRepo.EXPECT().GetByID(gomock.Any(), batch.ID).Return(batch, nil)

	got, err := svc.GetBatch(context.Background(), batch.ID)
	require.NoError(t, err)
	assert.True(t, got.Confirmed)
}

func TestAnchorService_GetBatch_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	batchRepo := mocks.NewMockAnchorRepository(ctrl)

	svc := NewAnchorService(mocks.NewMockReceiptRepository(ctrl), batchRepo,
		mocks.NewMockAnchorClient(ctrl), mocks.NewMockDBTransactor(ctrl), nil, 100, anchorTestLogger())

	batchRepo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(nil, nil)

	_, err := svc.GetBatch(context.Background(), uuid.New())
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NF_002", appErr.Code)
}
