package postgres

import (
	"context"
	"errors"
	"fmt"

	"yachaq-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const accountColumns = `id, name, secret_hash, actor_type, status, created_at, last_token_at`

// AccountRepo implements ports.AccountRepository.
type AccountRepo struct {
	pool Pool
}

// NewAccountRepo creates a new AccountRepo.
func NewAccountRepo(pool Pool) *AccountRepo {
	return &AccountRepo{pool: pool}
}

// Create inserts a new service account.
func (r *AccountRepo) Create(ctx context.Context, a *domain.ServiceAccount) error {
	query := `INSERT INTO service_accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		a.ID, a.Name, a.SecretHash, a.ActorType, a.Status, a.CreatedAt, a.LastTokenAt,
	)
	if err != nil {
		return fmt.Errorf("insert service account: %w", err)
	}
	return nil
}

// GetByID fetches a service account by its UUID.
func (r *AccountRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ServiceAccount, error) {
	query := `SELECT ` + accountColumns + ` FROM service_accounts WHERE id = $1`
	return r.scanAccount(r.pool.QueryRow(ctx, query, id), "get service account by id")
}

// GetByName fetches a service account by its unique name.
func (r *AccountRepo) GetByName(ctx context.Context, name string) (*domain.ServiceAccount, error) {
	query := `SELECT ` + accountColumns + ` FROM service_accounts WHERE name = $1`
	return r.scanAccount(r.pool.QueryRow(ctx, query, name), "get service account by name")
}

// TouchTokenIssued records the time of the most recent token grant.
func (r *AccountRepo) TouchTokenIssued(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE service_accounts SET last_token_at = NOW() WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("touch service account token time: %w", err)
	}
	return nil
}

func (r *AccountRepo) scanAccount(row pgx.Row, op string) (*domain.ServiceAccount, error) {
	a := &domain.ServiceAccount{}
	err := row.Scan(
		&a.ID, &a.Name, &a.SecretHash, &a.ActorType, &a.Status, &a.CreatedAt, &a.LastTokenAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return a, nil
}
