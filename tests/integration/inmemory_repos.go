package integration

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"yachaq-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// --- In-Memory Receipt Repo ---

type inMemoryReceiptRepo struct {
	mu       sync.RWMutex
	byID     map[uuid.UUID]*domain.AuditReceipt
	ordered  []*domain.AuditReceipt // append order, ascending sequence
}

func newInMemoryReceiptRepo() *inMemoryReceiptRepo {
	return &inMemoryReceiptRepo{byID: make(map[uuid.UUID]*domain.AuditReceipt)}
}

func (r *inMemoryReceiptRepo) Create(ctx context.Context, receipt *domain.AuditReceipt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *receipt
	r.byID[cp.ID] = &cp
	r.ordered = append(r.ordered, &cp)
	return nil
}

func (r *inMemoryReceiptRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.AuditReceipt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (r *inMemoryReceiptRepo) GetByReceiptHash(ctx context.Context, receiptHash string) (*domain.AuditReceipt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rec := range r.ordered {
		if rec.ReceiptHash == receiptHash {
			cp := *rec
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryReceiptRepo) GetTail(ctx context.Context) (*domain.AuditReceipt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.ordered) == 0 {
		return nil, nil
	}
	cp := *r.ordered[len(r.ordered)-1]
	return &cp, nil
}

func (r *inMemoryReceiptRepo) ListBySequenceRange(ctx context.Context, from, to int64) ([]domain.AuditReceipt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.AuditReceipt
	for _, rec := range r.ordered {
		if rec.Sequence >= from && rec.Sequence <= to {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (r *inMemoryReceiptRepo) ListUnanchored(ctx context.Context, limit int) ([]domain.AuditReceipt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.AuditReceipt
	for _, rec := range r.ordered {
		if rec.BatchID == nil {
			out = append(out, *rec)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func (r *inMemoryReceiptRepo) ListByBatch(ctx context.Context, batchID uuid.UUID) ([]domain.AuditReceipt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.AuditReceipt
	for _, rec := range r.ordered {
		if rec.BatchID != nil && *rec.BatchID == batchID {
			out = append(out, *rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return *out[i].LeafIndex < *out[j].LeafIndex })
	return out, nil
}

func (r *inMemoryReceiptRepo) MarkAnchored(ctx context.Context, tx pgx.Tx, receiptID uuid.UUID, batchID uuid.UUID, leafIndex int, txRef string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.byID[receiptID]
	if !ok || rec.BatchID != nil {
		return fmt.Errorf("receipt %s already anchored or missing", receiptID)
	}
	b := batchID
	li := leafIndex
	ref := txRef
	rec.BatchID = &b
	rec.LeafIndex = &li
	rec.AnchorTxRef = &ref
	return nil
}

func (r *inMemoryReceiptRepo) ListByActor(ctx context.Context, actorID string, limit, offset int) ([]domain.AuditReceipt, error) {
	return r.listFiltered(func(rec *domain.AuditReceipt) bool { return rec.ActorID == actorID }, limit, offset)
}

func (r *inMemoryReceiptRepo) ListByResource(ctx context.Context, resourceID string, limit, offset int) ([]domain.AuditReceipt, error) {
	return r.listFiltered(func(rec *domain.AuditReceipt) bool { return rec.ResourceID == resourceID }, limit, offset)
}

func (r *inMemoryReceiptRepo) ListByEventType(ctx context.Context, eventType domain.EventType, limit, offset int) ([]domain.AuditReceipt, error) {
	return r.listFiltered(func(rec *domain.AuditReceipt) bool { return rec.EventType == eventType }, limit, offset)
}

func (r *inMemoryReceiptRepo) ListByTimeRange(ctx context.Context, from, to time.Time, limit, offset int) ([]domain.AuditReceipt, error) {
	return r.listFiltered(func(rec *domain.AuditReceipt) bool {
		return !rec.Timestamp.Before(from) && !rec.Timestamp.After(to)
	}, limit, offset)
}

// listFiltered returns matches newest first, like the SQL queries do.
func (r *inMemoryReceiptRepo) listFiltered(match func(*domain.AuditReceipt) bool, limit, offset int) ([]domain.AuditReceipt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var matched []domain.AuditReceipt
	for i := len(r.ordered) - 1; i >= 0; i-- {
		if match(r.ordered[i]) {
			matched = append(matched, *r.ordered[i])
		}
	}
	if offset >= len(matched) {
		return []domain.AuditReceipt{}, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], nil
}

// --- In-Memory Anchor Repo ---

type inMemoryAnchorRepo struct {
	mu      sync.RWMutex
	batches []*domain.AnchorBatch
}

func newInMemoryAnchorRepo() *inMemoryAnchorRepo {
	return &inMemoryAnchorRepo{}
}

func (r *inMemoryAnchorRepo) Create(ctx context.Context, tx pgx.Tx, batch *domain.AnchorBatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *batch
	r.batches = append(r.batches, &cp)
	return nil
}

func (r *inMemoryAnchorRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.AnchorBatch, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.batches {
		if b.ID == id {
			cp := *b
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryAnchorRepo) MarkConfirmed(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.batches {
		if b.ID == id {
			b.Confirmed = true
			return nil
		}
	}
	return fmt.Errorf("batch %s not found", id)
}

func (r *inMemoryAnchorRepo) List(ctx context.Context, limit, offset int) ([]domain.AnchorBatch, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.AnchorBatch
	for i := len(r.batches) - 1; i >= 0; i-- {
		out = append(out, *r.batches[i])
	}
	if offset >= len(out) {
		return []domain.AnchorBatch{}, nil
	}
	end := offset + limit
	if end > len(out) {
		end = len(out)
	}
	return out[offset:end], nil
}

// --- In-Memory Account Repo ---

type inMemoryAccountRepo struct {
	mu       sync.RWMutex
	accounts map[uuid.UUID]*domain.ServiceAccount
}

func newInMemoryAccountRepo() *inMemoryAccountRepo {
	return &inMemoryAccountRepo{accounts: make(map[uuid.UUID]*domain.ServiceAccount)}
}

func (r *inMemoryAccountRepo) Create(ctx context.Context, account *domain.ServiceAccount) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.accounts {
		if existing.Name == account.Name {
			return fmt.Errorf("account name already exists")
		}
	}
	cp := *account
	r.accounts[cp.ID] = &cp
	return nil
}

func (r *inMemoryAccountRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ServiceAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.accounts[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *inMemoryAccountRepo) GetByName(ctx context.Context, name string) (*domain.ServiceAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.accounts {
		if a.Name == name {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryAccountRepo) TouchTokenIssued(ctx context.Context, id uuid.UUID) error {
	return nil
}

// --- In-Memory Transactor (no-op tx) ---

type inMemoryTransactor struct{}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return &noopTx{}, nil
}

// noopTx is a no-op pgx.Tx implementation for in-memory testing.
type noopTx struct{}

func (t *noopTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *noopTx) Commit(ctx context.Context) error          { return nil }
func (t *noopTx) Rollback(ctx context.Context) error        { return nil }
func (t *noopTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *noopTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *noopTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *noopTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *noopTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *noopTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *noopTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *noopTx) Conn() *pgx.Conn { return nil }

// --- Stub anchor client ---

// stubAnchorClient accepts every root and hands back deterministic refs.
type stubAnchorClient struct {
	mu    sync.Mutex
	calls int
}

func (c *stubAnchorClient) AnchorRoot(ctx context.Context, rootHex string, leafCount int, batchMetadataHash string) (*domain.AnchorResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	return &domain.AnchorResult{
		AnchorID:  fmt.Sprintf("anchor-%d", c.calls),
		TxRef:     fmt.Sprintf("0xtx%06d", c.calls),
		Confirmed: true,
	}, nil
}

func (c *stubAnchorClient) GetAnchor(ctx context.Context, anchorID string) (*domain.AnchorResult, error) {
	return &domain.AnchorResult{AnchorID: anchorID, TxRef: "0xtx-confirmed", Confirmed: true}, nil
}
