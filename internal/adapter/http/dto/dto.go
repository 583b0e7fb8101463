package dto

// RegisterRequest is the request body for service-account registration.
type RegisterRequest struct {
	Name      string `json:"name" binding:"required,min=3,max=100,safe_id"`
	ActorType string `json:"actor_type" binding:"required"`
}

// RegisterResponse is the response body for successful registration. The
// secret is returned exactly once; it is stored only as an Argon2id hash.
type RegisterResponse struct {
	AccountID string `json:"account_id"`
	Secret    string `json:"secret"`
}

// TokenRequest is the request body for issuing an access token.
type TokenRequest struct {
	Name   string `json:"name" binding:"required"`
	Secret string `json:"secret" binding:"required"`
}

// TokenResponse is the response body for a successful token issue.
type TokenResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// AppendReceiptRequest is the request body for appending one audit receipt.
// DetailsHash must already be a SHA-256 hex digest; raw event payloads are
// never accepted.
type AppendReceiptRequest struct {
	EventType    string `json:"event_type" binding:"required,max=64"`
	ActorID      string `json:"actor_id" binding:"required,max=128,safe_id"`
	ActorType    string `json:"actor_type" binding:"required,max=16"`
	ResourceID   string `json:"resource_id" binding:"required,max=128,safe_id"`
	ResourceType string `json:"resource_type" binding:"required,max=64"`
	DetailsHash  string `json:"details_hash" binding:"required,len=64,hexadecimal"`
}

// ReceiptResponse is the response body for a single audit receipt.
type ReceiptResponse struct {
	ID                  string  `json:"id"`
	EventType           string  `json:"event_type"`
	Timestamp           string  `json:"timestamp"`
	ActorID             string  `json:"actor_id"`
	ActorType           string  `json:"actor_type"`
	ResourceID          string  `json:"resource_id"`
	ResourceType        string  `json:"resource_type"`
	DetailsHash         string  `json:"details_hash"`
	ReceiptHash         string  `json:"receipt_hash"`
	PreviousReceiptHash string  `json:"previous_receipt_hash"`
	Sequence            int64   `json:"sequence"`
	BatchID             *string `json:"batch_id,omitempty"`
	LeafIndex           *int    `json:"leaf_index,omitempty"`
	AnchorTxRef         *string `json:"anchor_tx_ref,omitempty"`
}

// ReceiptListResponse wraps a paginated receipt list.
type ReceiptListResponse struct {
	Items  []ReceiptResponse `json:"items"`
	Count  int               `json:"count"`
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
}

// IntegrityReportResponse is the response body for single-receipt
// verification.
type IntegrityReportResponse struct {
	ReceiptID    string `json:"receipt_id"`
	HashValid    bool   `json:"hash_valid"`
	ChainValid   bool   `json:"chain_valid"`
	OverallValid bool   `json:"overall_valid"`
	Anchored     bool   `json:"anchored"`
}

// SegmentVerificationResponse is the response body for chain segment
// verification between two receipts.
type SegmentVerificationResponse struct {
	FromID string `json:"from_id"`
	ToID   string `json:"to_id"`
	Valid  bool   `json:"valid"`
}

// ProofElementResponse is one sibling digest in an inclusion proof.
type ProofElementResponse struct {
	Hash string `json:"hash"`
	Left bool   `json:"left"`
}

// ProofResponse carries a Merkle inclusion proof both decomposed and as the
// portable serialized string a third party can verify offline.
type ProofResponse struct {
	ReceiptID    string                 `json:"receipt_id"`
	LeafHash     string                 `json:"leaf_hash"`
	LeafIndex    int                    `json:"leaf_index"`
	ExpectedRoot string                 `json:"expected_root"`
	Elements     []ProofElementResponse `json:"elements"`
	Serialized   string                 `json:"serialized"`
}

// VerifyProofRequest is the request body for offline proof verification.
// Root overrides the root embedded in the proof when supplied, so callers
// can check a proof against an independently obtained anchored root.
type VerifyProofRequest struct {
	Proof string `json:"proof" binding:"required"`
	Root  string `json:"root,omitempty" binding:"omitempty,len=64,hexadecimal"`
}

// VerifyProofResponse is the response body for offline proof verification.
type VerifyProofResponse struct {
	Valid bool `json:"valid"`
}

// BatchResponse is the response body for an anchored batch.
type BatchResponse struct {
	ID                string `json:"id"`
	MerkleRoot        string `json:"merkle_root"`
	ReceiptCount      int    `json:"receipt_count"`
	BatchMetadataHash string `json:"batch_metadata_hash"`
	AnchorID          string `json:"anchor_id"`
	TxRef             string `json:"tx_ref"`
	Confirmed         bool   `json:"confirmed"`
	FirstSequence     int64  `json:"first_sequence"`
	LastSequence      int64  `json:"last_sequence"`
	CreatedAt         string `json:"created_at"`
}

// BatchListResponse wraps a paginated batch list.
type BatchListResponse struct {
	Items  []BatchResponse `json:"items"`
	Count  int             `json:"count"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

// BatchVerificationResponse is the response body for whole-batch
// verification.
type BatchVerificationResponse struct {
	BatchID   string `json:"batch_id"`
	RootValid bool   `json:"root_valid"`
}

// AnchorOutcomeResponse is the response body for a manually triggered
// anchoring run.
type AnchorOutcomeResponse struct {
	BatchID      string `json:"batch_id"`
	MerkleRoot   string `json:"merkle_root"`
	ReceiptCount int    `json:"receipt_count"`
	AnchorID     string `json:"anchor_id"`
	TxRef        string `json:"tx_ref"`
	Confirmed    bool   `json:"confirmed"`
}
