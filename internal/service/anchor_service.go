package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"yachaq-ledger/internal/core/domain"
	"yachaq-ledger/internal/core/ports"
	"yachaq-ledger/pkg/apperror"
	"yachaq-ledger/pkg/digest"
	"yachaq-ledger/pkg/merkle"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// leafCacheTTL bounds how long a batch's leaf set stays in Redis. Batches
// are immutable, the TTL only caps memory.
const leafCacheTTL = 24 * time.Hour

// AnchorServiceImpl implements ports.AnchorService. Anchoring is a bridge,
// not a dependency: a gateway outage delays proofs but never blocks or
// invalidates appends.
type AnchorServiceImpl struct {
	receipts   ports.ReceiptRepository
	batches    ports.AnchorRepository
	client     ports.AnchorClient
	transactor ports.DBTransactor
	cache      ports.ProofCache
	log        zerolog.Logger
	batchSize  int

	mu sync.Mutex // one anchoring attempt at a time
}

// NewAnchorService creates the batch anchoring service. cache may be nil;
// proofs then always rebuild from storage.
func NewAnchorService(
	receipts ports.ReceiptRepository,
	batches ports.AnchorRepository,
	client ports.AnchorClient,
	transactor ports.DBTransactor,
	cache ports.ProofCache,
	batchSize int,
	log zerolog.Logger,
) *AnchorServiceImpl {
	if batchSize <= 0 {
		batchSize = 100
	}
	return &AnchorServiceImpl{
		receipts:   receipts,
		batches:    batches,
		client:     client,
		transactor: transactor,
		cache:      cache,
		log:        log,
		batchSize:  batchSize,
	}
}

// AnchorNextBatch anchors the oldest un-anchored receipts. Returns
// (nil, nil) when there is nothing to anchor. A failed submission leaves
// every receipt un-anchored and retry-eligible; batch rows exist only for
// successful anchorings.
func (s *AnchorServiceImpl) AnchorNextBatch(ctx context.Context) (*ports.AnchorOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending, err := s.receipts.ListUnanchored(ctx, s.batchSize)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list unanchored receipts: %w", err))
	}
	if len(pending) == 0 {
		return nil, nil
	}

	leaves := make([]string, len(pending))
	for i := range pending {
		leaves[i] = pending[i].ReceiptHash
	}
	tree, err := merkle.Build(leaves)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("build batch tree: %w", err))
	}

	first := &pending[0]
	last := &pending[len(pending)-1]
	metadataHash := digest.SHA256Hex(strings.Join([]string{
		first.ID.String(),
		last.ID.String(),
		fmt.Sprintf("%d", len(pending)),
	}, "|"))

	result, err := s.client.AnchorRoot(ctx, tree.Root(), tree.Size(), metadataHash)
	if err != nil {
		s.log.Warn().Err(err).
			Int("receipt_count", len(pending)).
			Str("merkle_root", tree.Root()).
			Msg("anchor submission failed, batch stays retry-eligible")
		return nil, err
	}

	batch := &domain.AnchorBatch{
		ID:                uuid.New(),
		MerkleRoot:        tree.Root(),
		ReceiptCount:      len(pending),
		BatchMetadataHash: metadataHash,
		AnchorID:          result.AnchorID,
		TxRef:             result.TxRef,
		Confirmed:         result.Confirmed,
		FirstSequence:     first.Sequence,
		LastSequence:      last.Sequence,
		CreatedAt:         time.Now().UTC(),
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin anchoring tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := s.batches.Create(ctx, tx, batch); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("record batch: %w", err))
	}
	for i := range pending {
		if err := s.receipts.MarkAnchored(ctx, tx, pending[i].ID, batch.ID, i, result.TxRef); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("mark receipt anchored: %w", err))
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit anchoring tx: %w", err))
	}

	s.cacheLeaves(ctx, batch.ID, leaves)

	s.log.Info().
		Str("batch_id", batch.ID.String()).
		Str("merkle_root", batch.MerkleRoot).
		Int("receipt_count", batch.ReceiptCount).
		Str("tx_ref", batch.TxRef).
		Msg("batch anchored")

	return &ports.AnchorOutcome{
		BatchID:      batch.ID,
		MerkleRoot:   batch.MerkleRoot,
		ReceiptCount: batch.ReceiptCount,
		AnchorID:     batch.AnchorID,
		TxRef:        batch.TxRef,
		Confirmed:    batch.Confirmed,
	}, nil
}

// ProveInclusion returns the Merkle proof for an anchored receipt. The
// proof carries the anchored root so third parties verify it offline.
func (s *AnchorServiceImpl) ProveInclusion(ctx context.Context, receiptID uuid.UUID) (*merkle.Proof, error) {
	receipt, err := s.receipts.GetByID(ctx, receiptID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get receipt: %w", err))
	}
	if receipt == nil {
		return nil, apperror.ErrReceiptNotFound()
	}
	if !receipt.IsAnchored() {
		return nil, apperror.ErrNotAnchored()
	}

	leaves, err := s.batchLeaves(ctx, *receipt.BatchID)
	if err != nil {
		return nil, err
	}
	tree, err := merkle.Build(leaves)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("rebuild batch tree: %w", err))
	}
	proof, err := tree.Proof(*receipt.LeafIndex)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("build proof: %w", err))
	}
	return proof, nil
}

// VerifyBatch rebuilds a batch's root from stored receipts and compares it
// with the anchored root. A mismatch means stored receipts were altered
// after anchoring.
func (s *AnchorServiceImpl) VerifyBatch(ctx context.Context, batchID uuid.UUID) (bool, error) {
	batch, err := s.batches.GetByID(ctx, batchID)
	if err != nil {
		return false, apperror.InternalError(fmt.Errorf("get batch: %w", err))
	}
	if batch == nil {
		return false, apperror.ErrBatchNotFound()
	}

	receipts, err := s.receipts.ListByBatch(ctx, batchID)
	if err != nil {
		return false, apperror.InternalError(fmt.Errorf("list batch receipts: %w", err))
	}
	if len(receipts) != batch.ReceiptCount {
		return false, nil
	}

	leaves := make([]string, len(receipts))
	for i := range receipts {
		leaves[i] = receipts[i].ReceiptHash
	}
	tree, err := merkle.Build(leaves)
	if err != nil {
		return false, apperror.InternalError(fmt.Errorf("rebuild batch tree: %w", err))
	}

	if tree.Root() != batch.MerkleRoot {
		s.log.Error().
			Str("batch_id", batchID.String()).
			Str("stored_root", batch.MerkleRoot).
			Str("rebuilt_root", tree.Root()).
			Msg("batch root mismatch detected")
		return false, nil
	}
	return true, nil
}

// GetBatch fetches an anchored batch by ID. A batch whose submission was
// accepted but not yet confirmed gets its confirmation re-checked against
// the gateway on the way out.
func (s *AnchorServiceImpl) GetBatch(ctx context.Context, batchID uuid.UUID) (*domain.AnchorBatch, error) {
	batch, err := s.batches.GetByID(ctx, batchID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get batch: %w", err))
	}
	if batch == nil {
		return nil, apperror.ErrBatchNotFound()
	}
	if !batch.Confirmed {
		s.refreshConfirmation(ctx, batch)
	}
	return batch, nil
}

// refreshConfirmation asks the gateway whether a pending anchor has
// confirmed since submission. Failures leave the batch pending; the next
// lookup retries.
func (s *AnchorServiceImpl) refreshConfirmation(ctx context.Context, batch *domain.AnchorBatch) {
	result, err := s.client.GetAnchor(ctx, batch.AnchorID)
	if err != nil {
		s.log.Debug().Err(err).Str("batch_id", batch.ID.String()).Msg("anchor confirmation lookup failed")
		return
	}
	if result == nil || !result.Confirmed {
		return
	}
	if err := s.batches.MarkConfirmed(ctx, batch.ID); err != nil {
		s.log.Warn().Err(err).Str("batch_id", batch.ID.String()).Msg("recording anchor confirmation failed")
		return
	}
	batch.Confirmed = true
	s.log.Info().
		Str("batch_id", batch.ID.String()).
		Str("anchor_id", batch.AnchorID).
		Msg("anchor confirmed")
}

// ListBatches returns anchored batches, newest first.
func (s *AnchorServiceImpl) ListBatches(ctx context.Context, limit, offset int) ([]domain.AnchorBatch, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	batches, err := s.batches.List(ctx, limit, offset)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list batches: %w", err))
	}
	return batches, nil
}

// Run ticks the anchoring loop until ctx is cancelled. Errors are logged
// and retried on the next tick.
func (s *AnchorServiceImpl) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.log.Info().Dur("interval", interval).Int("batch_size", s.batchSize).Msg("anchoring loop started")
	for {
		select {
		case <-ctx.Done():
			s.log.Info().Msg("anchoring loop stopped")
			return
		case <-ticker.C:
			outcome, err := s.AnchorNextBatch(ctx)
			if err != nil {
				s.log.Warn().Err(err).Msg("anchoring tick failed")
				continue
			}
			if outcome == nil {
				s.log.Debug().Msg("anchoring tick: nothing to anchor")
			}
		}
	}
}

// batchLeaves loads a batch's leaf digests, preferring the Redis cache.
func (s *AnchorServiceImpl) batchLeaves(ctx context.Context, batchID uuid.UUID) ([]string, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, batchID.String())
		if err != nil {
			s.log.Warn().Err(err).Str("batch_id", batchID.String()).Msg("proof cache read failed")
		} else if cached != nil {
			var leaves []string
			if err := json.Unmarshal(cached, &leaves); err == nil && len(leaves) > 0 {
				return leaves, nil
			}
		}
	}

	receipts, err := s.receipts.ListByBatch(ctx, batchID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list batch receipts: %w", err))
	}
	if len(receipts) == 0 {
		return nil, apperror.ErrBatchNotFound()
	}
	leaves := make([]string, len(receipts))
	for i := range receipts {
		leaves[i] = receipts[i].ReceiptHash
	}
	s.cacheLeaves(ctx, batchID, leaves)
	return leaves, nil
}

// cacheLeaves stores a batch's leaf set best-effort.
func (s *AnchorServiceImpl) cacheLeaves(ctx context.Context, batchID uuid.UUID, leaves []string) {
	if s.cache == nil {
		return
	}
	encoded, err := json.Marshal(leaves)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, batchID.String(), encoded, leafCacheTTL); err != nil {
		s.log.Warn().Err(err).Str("batch_id", batchID.String()).Msg("proof cache write failed")
	}
}

var _ ports.AnchorService = (*AnchorServiceImpl)(nil)
