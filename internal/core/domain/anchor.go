package domain

import (
	"time"

	"github.com/google/uuid"
)

// AnchorBatch records one successfully anchored batch of receipts: the
// Merkle root built over their receipt hashes in append order, and the
// reference returned by the external anchor. A batch row exists only for
// successful anchorings; failed attempts leave the receipts un-anchored and
// retry-eligible.
type AnchorBatch struct {
	ID                uuid.UUID `json:"id"`
	MerkleRoot        string    `json:"merkle_root"`
	ReceiptCount      int       `json:"receipt_count"`
	BatchMetadataHash string    `json:"batch_metadata_hash"`
	AnchorID          string    `json:"anchor_id"` // id assigned by the external anchor
	TxRef             string    `json:"tx_ref"`    // external transaction reference
	Confirmed         bool      `json:"confirmed"`
	FirstSequence     int64     `json:"first_sequence"`
	LastSequence      int64     `json:"last_sequence"`
	CreatedAt         time.Time `json:"created_at"`
}

// AnchorResult is the outcome reported by the external anchor collaborator.
type AnchorResult struct {
	AnchorID  string `json:"anchor_id"`
	TxRef     string `json:"tx_ref"`
	Confirmed bool   `json:"confirmed"`
}

// IntegrityReport is the outcome of verifying a single receipt.
type IntegrityReport struct {
	ReceiptID    uuid.UUID `json:"receipt_id"`
	HashValid    bool      `json:"hash_valid"`
	ChainValid   bool      `json:"chain_valid"`
	OverallValid bool      `json:"overall_valid"`
	Anchored     bool      `json:"anchored"`
}
