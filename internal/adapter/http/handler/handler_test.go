package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"yachaq-ledger/internal/adapter/http/dto"
	"yachaq-ledger/internal/core/domain"
	"yachaq-ledger/internal/core/ports"
	"yachaq-ledger/internal/core/ports/mocks"
	"yachaq-ledger/pkg/apperror"
	"yachaq-ledger/pkg/digest"
	"yachaq-ledger/pkg/merkle"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testReceipt() *domain.AuditReceipt {
	r := &domain.AuditReceipt{
		ID:                  uuid.New(),
		EventType:           domain.EventConsentGranted,
		Timestamp:           time.Now().UTC(),
		ActorID:             "ds-001",
		ActorType:           domain.ActorDS,
		ResourceID:          "consent-42",
		ResourceType:        "consent",
		DetailsHash:         digest.SHA256Hex("details"),
		PreviousReceiptHash: domain.GenesisHash,
		Sequence:            1,
	}
	r.ReceiptHash = r.RecomputeHash()
	return r
}

// --- Auth Handler Tests ---

func TestRegister_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	accountID := uuid.New()
	mockAuth.EXPECT().Register(gomock.Any(), ports.RegisterRequest{
		Name:      "consent-engine",
		ActorType: domain.ActorSystem,
	}).Return(&ports.RegisterResponse{
		AccountID: accountID,
		Secret:    "plain-secret",
	}, nil)

	body, _ := json.Marshal(dto.RegisterRequest{
		Name:      "consent-engine",
		ActorType: "SYSTEM",
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Register(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, accountID.String(), data["account_id"])
	assert.Equal(t, "plain-secret", data["secret"])
}

func TestRegister_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	// Empty body => binding error
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader([]byte("{}")))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegister_DuplicateName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	mockAuth.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrAccountNameExists())

	body, _ := json.Marshal(dto.RegisterRequest{
		Name:      "taken",
		ActorType: "SYSTEM",
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Register(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestToken_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	expiry := time.Now().Add(time.Hour)
	mockAuth.EXPECT().Token(gomock.Any(), "consent-engine", "plain-secret").Return("jwt-token", expiry, nil)

	body, _ := json.Marshal(dto.TokenRequest{
		Name:   "consent-engine",
		Secret: "plain-secret",
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/auth/token", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Token(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "jwt-token", data["token"])
}

func TestToken_InvalidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	mockAuth.EXPECT().Token(gomock.Any(), "consent-engine", "wrong").Return("", time.Time{}, apperror.ErrInvalidCredentials())

	body, _ := json.Marshal(dto.TokenRequest{
		Name:   "consent-engine",
		Secret: "wrong",
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Token(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// --- Ledger Handler Tests ---

func TestAppend_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := mocks.NewMockLedgerService(ctrl)
	h := NewLedgerHandler(mockLedger)

	receipt := testReceipt()
	mockLedger.EXPECT().Append(gomock.Any(), ports.AppendRequest{
		EventType:    domain.EventConsentGranted,
		ActorID:      "ds-001",
		ActorType:    domain.ActorDS,
		ResourceID:   "consent-42",
		ResourceType: "consent",
		DetailsHash:  receipt.DetailsHash,
	}).Return(receipt, nil)

	body, _ := json.Marshal(dto.AppendReceiptRequest{
		EventType:    "CONSENT_GRANTED",
		ActorID:      "ds-001",
		ActorType:    "DS",
		ResourceID:   "consent-42",
		ResourceType: "consent",
		DetailsHash:  receipt.DetailsHash,
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/receipts", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Append(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, receipt.ID.String(), data["id"])
	assert.Equal(t, receipt.ReceiptHash, data["receipt_hash"])
	assert.Equal(t, domain.GenesisHash, data["previous_receipt_hash"])
}

func TestAppend_RejectsMalformedDetailsHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := mocks.NewMockLedgerService(ctrl)
	h := NewLedgerHandler(mockLedger)

	body, _ := json.Marshal(dto.AppendReceiptRequest{
		EventType:    "CONSENT_GRANTED",
		ActorID:      "ds-001",
		ActorType:    "DS",
		ResourceID:   "consent-42",
		ResourceType: "consent",
		DetailsHash:  "not-a-digest",
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/receipts", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Append(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetReceipt_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := mocks.NewMockLedgerService(ctrl)
	h := NewLedgerHandler(mockLedger)

	receipt := testReceipt()
	mockLedger.EXPECT().GetReceipt(gomock.Any(), receipt.ID).Return(receipt, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/receipts/"+receipt.ID.String(), nil)
	c.Params = gin.Params{{Key: "id", Value: receipt.ID.String()}}

	h.GetReceipt(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetReceipt_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := mocks.NewMockLedgerService(ctrl)
	h := NewLedgerHandler(mockLedger)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/receipts/not-a-uuid", nil)
	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}

	h.GetReceipt(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetReceipt_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := mocks.NewMockLedgerService(ctrl)
	h := NewLedgerHandler(mockLedger)

	id := uuid.New()
	mockLedger.EXPECT().GetReceipt(gomock.Any(), id).Return(nil, apperror.ErrReceiptNotFound())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/receipts/"+id.String(), nil)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	h.GetReceipt(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestVerifyReceipt_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := mocks.NewMockLedgerService(ctrl)
	h := NewLedgerHandler(mockLedger)

	id := uuid.New()
	mockLedger.EXPECT().VerifyReceiptIntegrity(gomock.Any(), id).Return(&domain.IntegrityReport{
		ReceiptID:    id,
		HashValid:    true,
		ChainValid:   true,
		OverallValid: true,
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/receipts/"+id.String()+"/verify", nil)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	h.VerifyReceipt(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, true, data["overall_valid"])
}

func TestVerifySegment_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := mocks.NewMockLedgerService(ctrl)
	h := NewLedgerHandler(mockLedger)

	fromID := uuid.New()
	toID := uuid.New()
	mockLedger.EXPECT().VerifyChainSegment(gomock.Any(), fromID, toID).Return(true, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/verify/segment?from="+fromID.String()+"&to="+toID.String(), nil)

	h.VerifySegment(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, true, data["valid"])
}

func TestVerifySegment_MissingQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := mocks.NewMockLedgerService(ctrl)
	h := NewLedgerHandler(mockLedger)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/verify/segment", nil)

	h.VerifySegment(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListReceipts_ByActor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := mocks.NewMockLedgerService(ctrl)
	h := NewLedgerHandler(mockLedger)

	receipt := testReceipt()
	mockLedger.EXPECT().ListByActor(gomock.Any(), "ds-001", 50, 0).Return([]domain.AuditReceipt{*receipt}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/receipts?actor_id=ds-001", nil)

	h.ListReceipts(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["count"])
}

func TestListReceipts_RequiresExactlyOneSelector(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := mocks.NewMockLedgerService(ctrl)
	h := NewLedgerHandler(mockLedger)

	// No selector
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/receipts", nil)
	h.ListReceipts(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Two selectors
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/receipts?actor_id=a&resource_id=b", nil)
	h.ListReceipts(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListReceipts_ByTimeRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := mocks.NewMockLedgerService(ctrl)
	h := NewLedgerHandler(mockLedger)

	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	receipt := testReceipt()
	mockLedger.EXPECT().ListByTimeRange(gomock.Any(), from, to, 50, 0).Return([]domain.AuditReceipt{*receipt}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet,
		"/api/v1/receipts?from=2026-01-01T00:00:00Z&to=2026-02-01T00:00:00Z", nil)

	h.ListReceipts(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListReceipts_RejectsBadTimestamp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := mocks.NewMockLedgerService(ctrl)
	h := NewLedgerHandler(mockLedger)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/receipts?from=yesterday&to=2026-02-01T00:00:00Z", nil)

	h.ListReceipts(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Anchor Handler Tests ---

func TestGetProof_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnchor := mocks.NewMockAnchorService(ctrl)
	h := NewAnchorHandler(mockAnchor)

	leaves := []string{digest.SHA256Hex("a"), digest.SHA256Hex("b")}
	tree, err := merkle.Build(leaves)
	require.NoError(t, err)
	proof, err := tree.Proof(0)
	require.NoError(t, err)

	id := uuid.New()
	mockAnchor.EXPECT().ProveInclusion(gomock.Any(), id).Return(proof, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/receipts/"+id.String()+"/proof", nil)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	h.GetProof(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, proof.ExpectedRoot, data["expected_root"])
	assert.Equal(t, proof.Serialize(), data["serialized"])
}

func TestGetProof_NotAnchored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnchor := mocks.NewMockAnchorService(ctrl)
	h := NewAnchorHandler(mockAnchor)

	id := uuid.New()
	mockAnchor.EXPECT().ProveInclusion(gomock.Any(), id).Return(nil, apperror.ErrNotAnchored())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/receipts/"+id.String()+"/proof", nil)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	h.GetProof(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestVerifyProof_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnchor := mocks.NewMockAnchorService(ctrl)
	h := NewAnchorHandler(mockAnchor)

	leaves := []string{digest.SHA256Hex("a"), digest.SHA256Hex("b"), digest.SHA256Hex("c")}
	tree, err := merkle.Build(leaves)
	require.NoError(t, err)
	proof, err := tree.Proof(1)
	require.NoError(t, err)

	body, _ := json.Marshal(dto.VerifyProofRequest{Proof: proof.Serialize()})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/proofs/verify", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.VerifyProof(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, true, data["valid"])
}

func TestVerifyProof_WrongRoot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnchor := mocks.NewMockAnchorService(ctrl)
	h := NewAnchorHandler(mockAnchor)

	leaves := []string{digest.SHA256Hex("a"), digest.SHA256Hex("b")}
	tree, err := merkle.Build(leaves)
	require.NoError(t, err)
	proof, err := tree.Proof(0)
	require.NoError(t, err)

	body, _ := json.Marshal(dto.VerifyProofRequest{
		Proof: proof.Serialize(),
		Root:  digest.SHA256Hex("some other root"),
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/proofs/verify", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.VerifyProof(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, false, data["valid"])
}

func TestVerifyProof_Malformed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnchor := mocks.NewMockAnchorService(ctrl)
	h := NewAnchorHandler(mockAnchor)

	body, _ := json.Marshal(dto.VerifyProofRequest{Proof: "v2:garbage"})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/proofs/verify", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.VerifyProof(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetBatch_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnchor := mocks.NewMockAnchorService(ctrl)
	h := NewAnchorHandler(mockAnchor)

	batch := &domain.AnchorBatch{
		ID:           uuid.New(),
		MerkleRoot:   digest.SHA256Hex("root"),
		ReceiptCount: 3,
		AnchorID:     "anchor-1",
		TxRef:        "tx-1",
		Confirmed:    true,
		CreatedAt:    time.Now().UTC(),
	}
	mockAnchor.EXPECT().GetBatch(gomock.Any(), batch.ID).Return(batch, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/batches/"+batch.ID.String(), nil)
	c.Params = gin.Params{{Key: "id", Value: batch.ID.String()}}

	h.GetBatch(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, batch.MerkleRoot, data["merkle_root"])
}

func TestVerifyBatch_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnchor := mocks.NewMockAnchorService(ctrl)
	h := NewAnchorHandler(mockAnchor)

	id := uuid.New()
	mockAnchor.EXPECT().VerifyBatch(gomock.Any(), id).Return(true, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/batches/"+id.String()+"/verify", nil)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	h.VerifyBatch(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, true, data["root_valid"])
}

func TestAnchorNow_NothingPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnchor := mocks.NewMockAnchorService(ctrl)
	h := NewAnchorHandler(mockAnchor)

	mockAnchor.EXPECT().AnchorNextBatch(gomock.Any()).Return(nil, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/batches/anchor", nil)

	h.AnchorNow(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"anchored":false`)
}

func TestAnchorNow_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnchor := mocks.NewMockAnchorService(ctrl)
	h := NewAnchorHandler(mockAnchor)

	outcome := &ports.AnchorOutcome{
		BatchID:      uuid.New(),
		MerkleRoot:   digest.SHA256Hex("root"),
		ReceiptCount: 5,
		AnchorID:     "anchor-1",
		TxRef:        "tx-1",
		Confirmed:    true,
	}
	mockAnchor.EXPECT().AnchorNextBatch(gomock.Any()).Return(outcome, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/batches/anchor", nil)

	h.AnchorNow(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, outcome.BatchID.String(), data["batch_id"])
	assert.Equal(t, float64(5), data["receipt_count"])
}

func TestAnchorNow_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnchor := mocks.NewMockAnchorService(ctrl)
	h := NewAnchorHandler(mockAnchor)

	mockAnchor.EXPECT().AnchorNextBatch(gomock.Any()).Return(nil, apperror.ErrAnchoringDisabled())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/batches/anchor", nil)

	h.AnchorNow(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

// --- Health Check Tests ---

type stubChecker struct {
	name string
	err  error
}

func (s stubChecker) Ping(_ context.Context) error { return s.err }
func (s stubChecker) Name() string                 { return s.name }

func TestHealthCheck_AllHealthy(t *testing.T) {
	router := gin.New()
	router.GET("/health", HealthCheck(stubChecker{name: "postgresql"}, stubChecker{name: "redis"}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)
}

func TestHealthCheck_Degraded(t *testing.T) {
	router := gin.New()
	router.GET("/health", HealthCheck(
		stubChecker{name: "postgresql"},
		stubChecker{name: "redis", err: errors.New("connection refused")},
	))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"degraded"`)
}
