package ports

import (
	"context"
	"time"

	"yachaq-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ReceiptRepository defines persistence operations for audit receipts.
// Receipts are append-only: there is no update or delete path except the
// one-time anchor marking performed inside an anchoring transaction.
type ReceiptRepository interface {
	Create(ctx context.Context, receipt *domain.AuditReceipt) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.AuditReceipt, error)
	GetByReceiptHash(ctx context.Context, receiptHash string) (*domain.AuditReceipt, error)
	// GetTail returns the most recently appended receipt, or nil on an
	// empty ledger.
	GetTail(ctx context.Context) (*domain.AuditReceipt, error)
	// ListBySequenceRange returns receipts with from <= sequence <= to in
	// ascending sequence order, as one consistent snapshot.
	ListBySequenceRange(ctx context.Context, from, to int64) ([]domain.AuditReceipt, error)
	// ListUnanchored returns the oldest receipts with no batch assignment,
	// ascending by sequence, capped at limit.
	ListUnanchored(ctx context.Context, limit int) ([]domain.AuditReceipt, error)
	// ListByBatch returns a batch's receipts ascending by leaf index.
	ListByBatch(ctx context.Context, batchID uuid.UUID) ([]domain.AuditReceipt, error)
	// MarkAnchored assigns batch membership to a receipt inside an
	// anchoring transaction. It must not touch already-anchored rows.
	MarkAnchored(ctx context.Context, tx pgx.Tx, receiptID uuid.UUID, batchID uuid.UUID, leafIndex int, txRef string) error

	// Query surface for auditors and account holders.
	ListByActor(ctx context.Context, actorID string, limit, offset int) ([]domain.AuditReceipt, error)
	ListByResource(ctx context.Context, resourceID string, limit, offset int) ([]domain.AuditReceipt, error)
	ListByEventType(ctx context.Context, eventType domain.EventType, limit, offset int) ([]domain.AuditReceipt, error)
	ListByTimeRange(ctx context.Context, from, to time.Time, limit, offset int) ([]domain.AuditReceipt, error)
}

// AnchorRepository defines persistence for anchored batches.
type AnchorRepository interface {
	Create(ctx context.Context, tx pgx.Tx, batch *domain.AnchorBatch) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.AnchorBatch, error)
	List(ctx context.Context, limit, offset int) ([]domain.AnchorBatch, error)
	// MarkConfirmed records that a batch's anchor confirmed after
	// submission.
	MarkConfirmed(ctx context.Context, id uuid.UUID) error
}

// AccountRepository defines persistence for caller service accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.ServiceAccount) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ServiceAccount, error)
	GetByName(ctx context.Context, name string) (*domain.ServiceAccount, error)
	TouchTokenIssued(ctx context.Context, id uuid.UUID) error
}

// DBTransactor provides database transaction management for the anchoring
// write, which must record the batch and mark its receipts atomically.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
