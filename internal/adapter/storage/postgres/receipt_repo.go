package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"yachaq-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const receiptColumns = `id, event_type, timestamp, actor_id, actor_type, resource_id, resource_type,
	details_hash, receipt_hash, previous_receipt_hash, sequence, batch_id, leaf_index, anchor_tx_ref`

// ReceiptRepo implements ports.ReceiptRepository. The audit_receipts table
// is append-only; the only UPDATE is the one-time anchor marking.
type ReceiptRepo struct {
	pool Pool
}

// NewReceiptRepo creates a new ReceiptRepo.
func NewReceiptRepo(pool Pool) *ReceiptRepo {
	return &ReceiptRepo{pool: pool}
}

// Create inserts a new receipt.
func (r *ReceiptRepo) Create(ctx context.Context, receipt *domain.AuditReceipt) error {
	query := `INSERT INTO audit_receipts (` + receiptColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := r.pool.Exec(ctx, query,
		receipt.ID, receipt.EventType, receipt.Timestamp,
		receipt.ActorID, receipt.ActorType, receipt.ResourceID, receipt.ResourceType,
		receipt.DetailsHash, receipt.ReceiptHash, receipt.PreviousReceiptHash,
		receipt.Sequence, receipt.BatchID, receipt.LeafIndex, receipt.AnchorTxRef,
	)
	if err != nil {
		return fmt.Errorf("insert receipt: %w", err)
	}
	return nil
}

// GetByID fetches a receipt by UUID. Returns nil, nil when absent.
func (r *ReceiptRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.AuditReceipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM audit_receipts WHERE id = $1`
	return r.scanReceipt(r.pool.QueryRow(ctx, query, id))
}

// GetByReceiptHash fetches a receipt by its chain digest.
func (r *ReceiptRepo) GetByReceiptHash(ctx context.Context, receiptHash string) (*domain.AuditReceipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM audit_receipts WHERE receipt_hash = $1`
	return r.scanReceipt(r.pool.QueryRow(ctx, query, receiptHash))
}

// GetTail fetches the most recently appended receipt, or nil on an empty
// ledger.
func (r *ReceiptRepo) GetTail(ctx context.Context) (*domain.AuditReceipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM audit_receipts ORDER BY sequence DESC LIMIT 1`
	return r.scanReceipt(r.pool.QueryRow(ctx, query))
}

// ListBySequenceRange returns receipts with from <= sequence <= to in
// ascending order.
func (r *ReceiptRepo) ListBySequenceRange(ctx context.Context, from, to int64) ([]domain.AuditReceipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM audit_receipts
		WHERE sequence >= $1 AND sequence <= $2 ORDER BY sequence ASC`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("query sequence range: %w", err)
	}
	defer rows.Close()
	return r.collectReceipts(rows)
}

// ListUnanchored returns the oldest receipts without a batch assignment.
func (r *ReceiptRepo) ListUnanchored(ctx context.Context, limit int) ([]domain.AuditReceipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM audit_receipts
		WHERE batch_id IS NULL ORDER BY sequence ASC LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query unanchored receipts: %w", err)
	}
	defer rows.Close()
	return r.collectReceipts(rows)
}

// ListByBatch returns a batch's receipts in leaf order.
func (r *ReceiptRepo) ListByBatch(ctx context.Context, batchID uuid.UUID) ([]domain.AuditReceipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM audit_receipts
		WHERE batch_id = $1 ORDER BY leaf_index ASC`

	rows, err := r.pool.Query(ctx, query, batchID)
	if err != nil {
		return nil, fmt.Errorf("query batch receipts: %w", err)
	}
	defer rows.Close()
	return r.collectReceipts(rows)
}

// MarkAnchored assigns batch membership to a receipt inside an anchoring
// transaction. The batch_id IS NULL guard makes retries idempotent: only
// the first successful anchoring ever writes.
func (r *ReceiptRepo) MarkAnchored(ctx context.Context, tx pgx.Tx, receiptID uuid.UUID, batchID uuid.UUID, leafIndex int, txRef string) error {
	query := `UPDATE audit_receipts SET batch_id = $1, leaf_index = $2, anchor_tx_ref = $3
		WHERE id = $4 AND batch_id IS NULL`

	tag, err := tx.Exec(ctx, query, batchID, leafIndex, txRef, receiptID)
	if err != nil {
		return fmt.Errorf("mark receipt anchored: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("receipt %s already anchored or missing", receiptID)
	}
	return nil
}

// ListByActor returns an actor's receipts, most recent first.
func (r *ReceiptRepo) ListByActor(ctx context.Context, actorID string, limit, offset int) ([]domain.AuditReceipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM audit_receipts
		WHERE actor_id = $1 ORDER BY sequence DESC LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, actorID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query receipts by actor: %w", err)
	}
	defer rows.Close()
	return r.collectReceipts(rows)
}

// ListByResource returns a resource's receipts, most recent first.
func (r *ReceiptRepo) ListByResource(ctx context.Context, resourceID string, limit, offset int) ([]domain.AuditReceipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM audit_receipts
		WHERE resource_id = $1 ORDER BY sequence DESC LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, resourceID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query receipts by resource: %w", err)
	}
	defer rows.Close()
	return r.collectReceipts(rows)
}

// ListByEventType returns receipts of one event kind, most recent first.
func (r *ReceiptRepo) ListByEventType(ctx context.Context, eventType domain.EventType, limit, offset int) ([]domain.AuditReceipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM audit_receipts
		WHERE event_type = $1 ORDER BY sequence DESC LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, eventType, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query receipts by event type: %w", err)
	}
	defer rows.Close()
	return r.collectReceipts(rows)
}

// ListByTimeRange returns receipts stamped within [from, to], most recent
// first.
func (r *ReceiptRepo) ListByTimeRange(ctx context.Context, from, to time.Time, limit, offset int) ([]domain.AuditReceipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM audit_receipts
		WHERE timestamp >= $1 AND timestamp <= $2 ORDER BY sequence DESC LIMIT $3 OFFSET $4`

	rows, err := r.pool.Query(ctx, query, from, to, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query receipts by time range: %w", err)
	}
	defer rows.Close()
	return r.collectReceipts(rows)
}

func (r *ReceiptRepo) scanReceipt(row pgx.Row) (*domain.AuditReceipt, error) {
	var receipt domain.AuditReceipt
	err := row.Scan(
		&receipt.ID, &receipt.EventType, &receipt.Timestamp,
		&receipt.ActorID, &receipt.ActorType, &receipt.ResourceID, &receipt.ResourceType,
		&receipt.DetailsHash, &receipt.ReceiptHash, &receipt.PreviousReceiptHash,
		&receipt.Sequence, &receipt.BatchID, &receipt.LeafIndex, &receipt.AnchorTxRef,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan receipt: %w", err)
	}
	return &receipt, nil
}

func (r *ReceiptRepo) collectReceipts(rows pgx.Rows) ([]domain.AuditReceipt, error) {
	var receipts []domain.AuditReceipt
	for rows.Next() {
		var receipt domain.AuditReceipt
		err := rows.Scan(
			&receipt.ID, &receipt.EventType, &receipt.Timestamp,
			&receipt.ActorID, &receipt.ActorType, &receipt.ResourceID, &receipt.ResourceType,
			&receipt.DetailsHash, &receipt.ReceiptHash, &receipt.PreviousReceiptHash,
			&receipt.Sequence, &receipt.BatchID, &receipt.LeafIndex, &receipt.AnchorTxRef,
		)
		if err != nil {
			return nil, fmt.Errorf("scan receipt row: %w", err)
		}
		receipts = append(receipts, receipt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate receipt rows: %w", err)
	}
	return receipts, nil
}
