package postgres

import (
	"context"
	"errors"
	"fmt"

	"yachaq-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const batchColumns = `id, merkle_root, receipt_count, batch_metadata_hash, anchor_id, tx_ref,
	confirmed, first_sequence, last_sequence, created_at`

// AnchorRepo implements ports.AnchorRepository.
type AnchorRepo struct {
	pool Pool
}

// NewAnchorRepo creates a new AnchorRepo.
func NewAnchorRepo(pool Pool) *AnchorRepo {
	return &AnchorRepo{pool: pool}
}

// Create inserts a batch row inside the anchoring transaction, so the
// batch and its receipts' anchor marks commit atomically.
func (r *AnchorRepo) Create(ctx context.Context, tx pgx.Tx, batch *domain.AnchorBatch) error {
	query := `INSERT INTO anchor_batches (` + batchColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := tx.Exec(ctx, query,
		batch.ID, batch.MerkleRoot, batch.ReceiptCount, batch.BatchMetadataHash,
		batch.AnchorID, batch.TxRef, batch.Confirmed,
		batch.FirstSequence, batch.LastSequence, batch.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert anchor batch: %w", err)
	}
	return nil
}

// GetByID fetches a batch by UUID. Returns nil, nil when absent.
func (r *AnchorRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.AnchorBatch, error) {
	query := `SELECT ` + batchColumns + ` FROM anchor_batches WHERE id = $1`

	var batch domain.AnchorBatch
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&batch.ID, &batch.MerkleRoot, &batch.ReceiptCount, &batch.BatchMetadataHash,
		&batch.AnchorID, &batch.TxRef, &batch.Confirmed,
		&batch.FirstSequence, &batch.LastSequence, &batch.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan anchor batch: %w", err)
	}
	return &batch, nil
}

// MarkConfirmed records that a batch's anchor confirmed after submission.
func (r *AnchorRepo) MarkConfirmed(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE anchor_batches SET confirmed = true WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("mark batch confirmed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("batch %s not found", id)
	}
	return nil
}

// List returns batches, most recent first.
func (r *AnchorRepo) List(ctx context.Context, limit, offset int) ([]domain.AnchorBatch, error) {
	query := `SELECT ` + batchColumns + ` FROM anchor_batches
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query anchor batches: %w", err)
	}
	defer rows.Close()

	var batches []domain.AnchorBatch
	for rows.Next() {
		var batch domain.AnchorBatch
		err := rows.Scan(
			&batch.ID, &batch.MerkleRoot, &batch.ReceiptCount, &batch.BatchMetadataHash,
			&batch.AnchorID, &batch.TxRef, &batch.Confirmed,
			&batch.FirstSequence, &batch.LastSequence, &batch.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan anchor batch row: %w", err)
		}
		batches = append(batches, batch)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate anchor batch rows: %w", err)
	}
	return batches, nil
}
