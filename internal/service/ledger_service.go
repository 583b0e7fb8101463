package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"yachaq-ledger/internal/core/domain"
	"yachaq-ledger/internal/core/ports"
	"yachaq-ledger/pkg/apperror"
	"yachaq-ledger/pkg/digest"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

// ledgerService implements ports.LedgerService. All appends funnel through
// one mutex so the chain has exactly one total order; reads never take the
// lock.
type ledgerService struct {
	repo ports.ReceiptRepository
	log  zerolog.Logger

	mu     sync.Mutex
	tail   *domain.AuditReceipt
	primed bool
}

// NewLedgerService creates the append-only ledger service. The chain tail
// is loaded lazily from storage on the first append after startup.
func NewLedgerService(repo ports.ReceiptRepository, log zerolog.Logger) ports.LedgerService {
	return &ledgerService{repo: repo, log: log}
}

// Append validates the request, links the receipt to the current chain
// tail, persists it, and advances the tail. A persistence failure leaves
// the in-memory tail untouched so the next append re-links correctly.
func (s *ledgerService) Append(ctx context.Context, req ports.AppendRequest) (*domain.AuditReceipt, error) {
	if err := validateAppend(req); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.primed {
		tail, err := s.repo.GetTail(ctx)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("load chain tail: %w", err))
		}
		s.tail = tail
		s.primed = true
	}

	previousHash := domain.GenesisHash
	sequence := int64(1)
	if s.tail != nil {
		previousHash = s.tail.ReceiptHash
		sequence = s.tail.Sequence + 1
	}

	receipt := &domain.AuditReceipt{
		ID:                  uuid.New(),
		EventType:           req.EventType,
		Timestamp:           time.Now().UTC(),
		ActorID:             req.ActorID,
		ActorType:           req.ActorType,
		ResourceID:          req.ResourceID,
		ResourceType:        req.ResourceType,
		DetailsHash:         req.DetailsHash,
		PreviousReceiptHash: previousHash,
		Sequence:            sequence,
	}
	receipt.ReceiptHash = receipt.RecomputeHash()

	if err := s.repo.Create(ctx, receipt); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("persist receipt: %w", err))
	}
	s.tail = receipt

	s.log.Info().
		Str("receipt_id", receipt.ID.String()).
		Str("event_type", string(receipt.EventType)).
		Int64("sequence", receipt.Sequence).
		Msg("receipt appended")

	return receipt, nil
}

// GetReceipt fetches a receipt by ID.
func (s *ledgerService) GetReceipt(ctx context.Context, id uuid.UUID) (*domain.AuditReceipt, error) {
	receipt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get receipt: %w", err))
	}
	if receipt == nil {
		return nil, apperror.ErrReceiptNotFound()
	}
	return receipt, nil
}

// VerifyReceiptIntegrity recomputes the receipt's digest and checks its
// link to the stored predecessor. Failures are reported, never repaired;
// a violation is a security signal, not a recoverable fault.
func (s *ledgerService) VerifyReceiptIntegrity(ctx context.Context, id uuid.UUID) (*domain.IntegrityReport, error) {
	receipt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get receipt: %w", err))
	}
	if receipt == nil {
		return nil, apperror.ErrReceiptNotFound()
	}

	report := &domain.IntegrityReport{
		ReceiptID: receipt.ID,
		HashValid: receipt.RecomputeHash() == receipt.ReceiptHash,
		Anchored:  receipt.IsAnchored(),
	}

	if receipt.Sequence == 1 {
		report.ChainValid = receipt.PreviousReceiptHash == domain.GenesisHash
	} else {
		prev, err := s.repo.GetByReceiptHash(ctx, receipt.PreviousReceiptHash)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("resolve predecessor: %w", err))
		}
		report.ChainValid = prev != nil && prev.Sequence == receipt.Sequence-1
	}

	report.OverallValid = report.HashValid && report.ChainValid
	if !report.OverallValid {
		s.log.Error().
			Str("receipt_id", receipt.ID.String()).
			Bool("hash_valid", report.HashValid).
			Bool("chain_valid", report.ChainValid).
			Msg("receipt integrity violation detected")
	}
	return report, nil
}

// VerifyChainSegment walks the stored order between two receipts and
// confirms every receipt's digest plus every adjacent link. Returns false
// on the first broken link.
func (s *ledgerService) VerifyChainSegment(ctx context.Context, fromID, toID uuid.UUID) (bool, error) {
	from, err := s.repo.GetByID(ctx, fromID)
	if err != nil {
		return false, apperror.InternalError(fmt.Errorf("get segment start: %w", err))
	}
	if from == nil {
		return false, apperror.ErrReceiptNotFound()
	}
	to, err := s.repo.GetByID(ctx, toID)
	if err != nil {
		return false, apperror.InternalError(fmt.Errorf("get segment end: %w", err))
	}
	if to == nil {
		return false, apperror.ErrReceiptNotFound()
	}
	if from.Sequence > to.Sequence {
		return false, apperror.Validation("segment start must not come after segment end")
	}

	receipts, err := s.repo.ListBySequenceRange(ctx, from.Sequence, to.Sequence)
	if err != nil {
		return false, apperror.InternalError(fmt.Errorf("list segment: %w", err))
	}
	if len(receipts) != int(to.Sequence-from.Sequence+1) {
		return false, nil
	}

	for i := range receipts {
		r := &receipts[i]
		if r.RecomputeHash() != r.ReceiptHash {
			return false, nil
		}
		if i == 0 {
			if r.Sequence == 1 && r.PreviousReceiptHash != domain.GenesisHash {
				return false, nil
			}
			continue
		}
		if r.PreviousReceiptHash != receipts[i-1].ReceiptHash {
			return false, nil
		}
	}
	return true, nil
}

// ListByActor returns an actor's receipts, most recent first.
func (s *ledgerService) ListByActor(ctx context.Context, actorID string, limit, offset int) ([]domain.AuditReceipt, error) {
	if actorID == "" {
		return nil, apperror.Validation("actor_id is required")
	}
	limit, offset = clampPage(limit, offset)
	receipts, err := s.repo.ListByActor(ctx, actorID, limit, offset)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list by actor: %w", err))
	}
	return receipts, nil
}

// ListByResource returns a resource's receipts, most recent first.
func (s *ledgerService) ListByResource(ctx context.Context, resourceID string, limit, offset int) ([]domain.AuditReceipt, error) {
	if resourceID == "" {
		return nil, apperror.Validation("resource_id is required")
	}
	limit, offset = clampPage(limit, offset)
	receipts, err := s.repo.ListByResource(ctx, resourceID, limit, offset)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list by resource: %w", err))
	}
	return receipts, nil
}

// ListByEventType returns receipts of one event kind, most recent first.
func (s *ledgerService) ListByEventType(ctx context.Context, eventType domain.EventType, limit, offset int) ([]domain.AuditReceipt, error) {
	if !eventType.IsValid() {
		return nil, apperror.Validation("unknown event_type")
	}
	limit, offset = clampPage(limit, offset)
	receipts, err := s.repo.ListByEventType(ctx, eventType, limit, offset)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list by event type: %w", err))
	}
	return receipts, nil
}

// ListByTimeRange returns receipts stamped within [from, to], most recent
// first.
func (s *ledgerService) ListByTimeRange(ctx context.Context, from, to time.Time, limit, offset int) ([]domain.AuditReceipt, error) {
	if from.IsZero() || to.IsZero() {
		return nil, apperror.Validation("from and to are required")
	}
	if from.After(to) {
		return nil, apperror.Validation("from must not come after to")
	}
	limit, offset = clampPage(limit, offset)
	receipts, err := s.repo.ListByTimeRange(ctx, from, to, limit, offset)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list by time range: %w", err))
	}
	return receipts, nil
}

func validateAppend(req ports.AppendRequest) error {
	if !req.EventType.IsValid() {
		return apperror.Validation("unknown event_type")
	}
	if req.ActorID == "" {
		return apperror.Validation("actor_id is required")
	}
	if !req.ActorType.IsValid() {
		return apperror.Validation("unknown actor_type")
	}
	if req.ResourceID == "" {
		return apperror.Validation("resource_id is required")
	}
	if req.ResourceType == "" {
		return apperror.Validation("resource_type is required")
	}
	if !digest.IsHex(req.DetailsHash) {
		return apperror.Validation("details_hash must be a sha-256 hex digest")
	}
	return nil
}

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
