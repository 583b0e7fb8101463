package ports

import (
	"context"
	"time"

	"yachaq-ledger/internal/core/domain"
	"yachaq-ledger/pkg/merkle"

	"github.com/google/uuid"
)

// --- Ledger (core) ---

// AppendRequest holds validated input for appending one audit receipt.
// DetailsHash must be a caller-computed digest: the ledger never accepts
// raw event payloads.
type AppendRequest struct {
	EventType    domain.EventType
	ActorID      string
	ActorType    domain.ActorType
	ResourceID   string
	ResourceType string
	DetailsHash  string
}

// LedgerService serializes concurrent appends into one hash-chained total
// order and answers integrity queries over it.
type LedgerService interface {
	Append(ctx context.Context, req AppendRequest) (*domain.AuditReceipt, error)
	GetReceipt(ctx context.Context, id uuid.UUID) (*domain.AuditReceipt, error)
	// VerifyReceiptIntegrity recomputes the receipt's digest and checks its
	// link to the stored predecessor. Failures are reported, never repaired.
	VerifyReceiptIntegrity(ctx context.Context, id uuid.UUID) (*domain.IntegrityReport, error)
	// VerifyChainSegment walks the stored order between two receipts and
	// confirms every adjacent link. Returns false on the first broken link.
	VerifyChainSegment(ctx context.Context, fromID, toID uuid.UUID) (bool, error)

	ListByActor(ctx context.Context, actorID string, limit, offset int) ([]domain.AuditReceipt, error)
	ListByResource(ctx context.Context, resourceID string, limit, offset int) ([]domain.AuditReceipt, error)
	ListByEventType(ctx context.Context, eventType domain.EventType, limit, offset int) ([]domain.AuditReceipt, error)
	ListByTimeRange(ctx context.Context, from, to time.Time, limit, offset int) ([]domain.AuditReceipt, error)
}

// --- Anchoring bridge ---

// AnchorOutcome summarizes one successful batch anchoring.
type AnchorOutcome struct {
	BatchID      uuid.UUID
	MerkleRoot   string
	ReceiptCount int
	AnchorID     string
	TxRef        string
	Confirmed    bool
}

// AnchorService batches un-anchored receipts into Merkle trees, submits
// roots to the external anchor, and serves inclusion proofs. Anchoring is
// best-effort: its failures never invalidate the ledger.
type AnchorService interface {
	// AnchorNextBatch anchors the oldest un-anchored receipts. Returns
	// (nil, nil) when there is nothing to anchor.
	AnchorNextBatch(ctx context.Context) (*AnchorOutcome, error)
	// ProveInclusion returns the Merkle proof for an anchored receipt.
	ProveInclusion(ctx context.Context, receiptID uuid.UUID) (*merkle.Proof, error)
	// VerifyBatch rebuilds a batch's root from stored receipts and compares
	// it with the anchored root.
	VerifyBatch(ctx context.Context, batchID uuid.UUID) (bool, error)
	GetBatch(ctx context.Context, batchID uuid.UUID) (*domain.AnchorBatch, error)
	ListBatches(ctx context.Context, limit, offset int) ([]domain.AnchorBatch, error)
}

// AnchorClient is the external anchor collaborator (a chain gateway). The
// core treats it as an opaque remote call; retry policy belongs to the
// AnchorService.
type AnchorClient interface {
	AnchorRoot(ctx context.Context, rootHex string, leafCount int, batchMetadataHash string) (*domain.AnchorResult, error)
	// GetAnchor fetches the current state of a submitted anchor, so a
	// batch accepted but not yet confirmed can be re-checked later.
	GetAnchor(ctx context.Context, anchorID string) (*domain.AnchorResult, error)
}

// --- Caller authentication (ambient) ---

// HashService handles service-account secret hashing (Argon2id).
type HashService interface {
	Hash(secret string) (string, error)
	Verify(secret string, hash string) (bool, error)
}

// TokenClaims holds the parsed JWT claims for a caller.
type TokenClaims struct {
	AccountID uuid.UUID
	Name      string
	ActorType domain.ActorType
}

// TokenService handles JWT token operations for service accounts.
type TokenService interface {
	Generate(account *domain.ServiceAccount) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// RegisterRequest holds input for service-account registration.
type RegisterRequest struct {
	Name      string
	ActorType domain.ActorType
}

// RegisterResponse holds the registration result. Secret is plaintext,
// shown only at registration.
type RegisterResponse struct {
	AccountID uuid.UUID
	Secret    string
}

// AuthService registers caller service accounts and issues tokens.
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error)
	Token(ctx context.Context, name, secret string) (string, time.Time, error)
}

// --- Replay protection and caching (ambient) ---

// NonceStore manages nonce uniqueness for replay-attack prevention on the
// append API.
type NonceStore interface {
	// CheckAndSet atomically checks if a nonce exists, sets it if not.
	// Returns true if the nonce is new (valid), false if already used.
	CheckAndSet(ctx context.Context, accountID string, nonce string, ttl time.Duration) (bool, error)
}

// ProofCache caches batch leaf sets so inclusion proofs can be rebuilt
// without re-reading the batch from storage.
type ProofCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // nil, nil when absent
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
