package domain

import (
	"strings"
	"time"

	"yachaq-ledger/pkg/digest"

	"github.com/google/uuid"
)

// GenesisHash is the previous-hash sentinel carried by the first receipt
// ever appended to the ledger.
const GenesisHash = "GENESIS"

// EventType categorizes a security-relevant platform event. The set grows
// with the platform; adding a kind never changes the chain digest rule.
type EventType string

const (
	EventConsentGranted EventType = "CONSENT_GRANTED"
	EventConsentRevoked EventType = "CONSENT_REVOKED"
	EventDataAccess     EventType = "DATA_ACCESS"
	EventQueryExecuted  EventType = "QUERY_EXECUTED"

	EventCapsuleCreated  EventType = "CAPSULE_CREATED"
	EventCapsuleAccessed EventType = "CAPSULE_ACCESSED"
	EventCapsuleExpired  EventType = "CAPSULE_EXPIRED"

	EventSettlement       EventType = "SETTLEMENT"
	EventSettlementPosted EventType = "SETTLEMENT_POSTED"
	EventPayoutRequested  EventType = "PAYOUT_REQUESTED"
	EventPayoutCompleted  EventType = "PAYOUT_COMPLETED"

	EventDeviceEnrolled    EventType = "DEVICE_ENROLLED"
	EventDeviceRemoved     EventType = "DEVICE_REMOVED"
	EventDeviceAttestation EventType = "DEVICE_ATTESTATION"

	EventEscrowCreated  EventType = "ESCROW_CREATED"
	EventEscrowFunded   EventType = "ESCROW_FUNDED"
	EventEscrowLocked   EventType = "ESCROW_LOCKED"
	EventEscrowReleased EventType = "ESCROW_RELEASED"
	EventEscrowRefunded EventType = "ESCROW_REFUNDED"

	EventNonceRegistered       EventType = "NONCE_REGISTERED"
	EventNonceValidated        EventType = "NONCE_VALIDATED"
	EventCapsuleReplayRejected EventType = "CAPSULE_REPLAY_REJECTED"

	EventObligationCreated   EventType = "OBLIGATION_CREATED"
	EventObligationChecked   EventType = "OBLIGATION_CHECKED"
	EventObligationSatisfied EventType = "OBLIGATION_SATISFIED"
	EventObligationViolated  EventType = "OBLIGATION_VIOLATED"
	EventPenaltyApplied      EventType = "PENALTY_APPLIED"

	EventSecureDeletionInitiated EventType = "SECURE_DELETION_INITIATED"
	EventSecureDeletionCompleted EventType = "SECURE_DELETION_COMPLETED"
	EventKeyDestroyed            EventType = "KEY_DESTROYED"

	EventAccountCreated   EventType = "ACCOUNT_CREATED"
	EventAccountSuspended EventType = "ACCOUNT_SUSPENDED"
	EventTokenIssued      EventType = "TOKEN_ISSUED"
	EventTokenRevoked     EventType = "TOKEN_REVOKED"
)

var knownEventTypes = map[EventType]struct{}{
	EventConsentGranted: {}, EventConsentRevoked: {}, EventDataAccess: {},
	EventQueryExecuted: {}, EventCapsuleCreated: {}, EventCapsuleAccessed: {},
	EventCapsuleExpired: {}, EventSettlement: {}, EventSettlementPosted: {},
	EventPayoutRequested: {}, EventPayoutCompleted: {}, EventDeviceEnrolled: {},
	EventDeviceRemoved: {}, EventDeviceAttestation: {}, EventEscrowCreated: {},
	EventEscrowFunded: {}, EventEscrowLocked: {}, EventEscrowReleased: {},
	EventEscrowRefunded: {}, EventNonceRegistered: {}, EventNonceValidated: {},
	EventCapsuleReplayRejected: {}, EventObligationCreated: {},
	EventObligationChecked: {}, EventObligationSatisfied: {},
	EventObligationViolated: {}, EventPenaltyApplied: {},
	EventSecureDeletionInitiated: {}, EventSecureDeletionCompleted: {},
	EventKeyDestroyed: {}, EventAccountCreated: {}, EventAccountSuspended: {},
	EventTokenIssued: {}, EventTokenRevoked: {},
}

// IsValid reports whether the event type belongs to this version's set.
func (e EventType) IsValid() bool {
	_, ok := knownEventTypes[e]
	return ok
}

// ActorType identifies who triggered an audited event.
type ActorType string

const (
	ActorDS        ActorType = "DS"        // data sovereign
	ActorRequester ActorType = "REQUESTER" // data requester
	ActorSystem    ActorType = "SYSTEM"    // platform itself
)

// IsValid reports whether the actor type is one of the closed set.
func (a ActorType) IsValid() bool {
	switch a {
	case ActorDS, ActorRequester, ActorSystem:
		return true
	}
	return false
}

// AuditReceipt is one immutable, hash-chained audit log entry. It is
// constructed exactly once by the ledger's append path and never mutated;
// the anchor fields are filled in as part of the batch-anchoring write, not
// by callers.
type AuditReceipt struct {
	ID                  uuid.UUID `json:"id"`
	EventType           EventType `json:"event_type"`
	Timestamp           time.Time `json:"timestamp"`
	ActorID             string    `json:"actor_id"`
	ActorType           ActorType `json:"actor_type"`
	ResourceID          string    `json:"resource_id"`
	ResourceType        string    `json:"resource_type"`
	DetailsHash         string    `json:"details_hash"` // caller-supplied digest; raw payloads are never stored
	ReceiptHash         string    `json:"receipt_hash"`
	PreviousReceiptHash string    `json:"previous_receipt_hash"`
	Sequence            int64     `json:"sequence"` // position in the global append order

	// Set once the receipt's batch has been anchored.
	BatchID     *uuid.UUID `json:"batch_id,omitempty"`
	LeafIndex   *int       `json:"leaf_index,omitempty"`
	AnchorTxRef *string    `json:"anchor_tx_ref,omitempty"`
}

// ComputeReceiptHash computes the chain digest for a receipt. The input is
// a fixed, ordered concatenation joined by "|"; field values are canonical
// identifier/enum-name strings so independent implementations reproduce the
// digest byte for byte.
func ComputeReceiptHash(eventType EventType, actorID, resourceID, detailsHash, previousHash string) string {
	return digest.SHA256Hex(strings.Join([]string{
		string(eventType),
		actorID,
		resourceID,
		detailsHash,
		previousHash,
	}, "|"))
}

// RecomputeHash re-derives the chain digest from the receipt's own fields.
// A mismatch with ReceiptHash means the stored receipt was altered.
func (r *AuditReceipt) RecomputeHash() string {
	return ComputeReceiptHash(r.EventType, r.ActorID, r.ResourceID, r.DetailsHash, r.PreviousReceiptHash)
}

// IsAnchored reports whether the receipt belongs to an anchored batch.
func (r *AuditReceipt) IsAnchored() bool {
	return r.BatchID != nil && r.LeafIndex != nil
}
