package domain

import (
	"strings"
	"testing"

	"yachaq-ledger/pkg/digest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestEventType_IsValid(t *testing.T) {
	assert.True(t, EventConsentGranted.IsValid())
	assert.True(t, EventPenaltyApplied.IsValid())
	assert.True(t, EventNonceRegistered.IsValid())
	assert.False(t, EventType("").IsValid())
	assert.False(t, EventType("SOMETHING_ELSE").IsValid())
}

func TestActorType_IsValid(t *testing.T) {
	tests := []struct {
		name  string
		actor ActorType
		want  bool
	}{
		{"data sovereign", ActorDS, true},
		{"requester", ActorRequester, true},
		{"system", ActorSystem, true},
		{"empty", ActorType(""), false},
		{"unknown", ActorType("ADMIN"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.actor.IsValid())
		})
	}
}

func TestComputeReceiptHash_FixedFieldOrder(t *testing.T) {
	detailsHash := digest.SHA256Hex("event details")

	got := ComputeReceiptHash(EventDataAccess, "actor-1", "resource-9", detailsHash, GenesisHash)

	// The digest input is the "|"-joined canonical field strings.
	want := digest.SHA256Hex(strings.Join([]string{
		"DATA_ACCESS", "actor-1", "resource-9", detailsHash, GenesisHash,
	}, "|"))
	assert.Equal(t, want, got)
	assert.Regexp(t, `^[0-9a-f]{64}$`, got)
}

func TestComputeReceiptHash_SensitiveToEveryField(t *testing.T) {
	details := digest.SHA256Hex("d")
	base := ComputeReceiptHash(EventDataAccess, "a", "r", details, GenesisHash)

	assert.NotEqual(t, base, ComputeReceiptHash(EventConsentGranted, "a", "r", details, GenesisHash))
	assert.NotEqual(t, base, ComputeReceiptHash(EventDataAccess, "b", "r", details, GenesisHash))
	assert.NotEqual(t, base, ComputeReceiptHash(EventDataAccess, "a", "x", details, GenesisHash))
	assert.NotEqual(t, base, ComputeReceiptHash(EventDataAccess, "a", "r", digest.SHA256Hex("e"), GenesisHash))
	assert.NotEqual(t, base, ComputeReceiptHash(EventDataAccess, "a", "r", details, digest.SHA256Hex("prev")))
}

func TestAuditReceipt_RecomputeHash(t *testing.T) {
	details := digest.SHA256Hex("payload")
	r := &AuditReceipt{
		EventType:           EventConsentRevoked,
		ActorID:             "ds-42",
		ResourceID:          "contract-7",
		DetailsHash:         details,
		PreviousReceiptHash: GenesisHash,
	}
	r.ReceiptHash = r.RecomputeHash()

	assert.Equal(t, r.ReceiptHash, r.RecomputeHash())

	// Any field mutation breaks hash correctness.
	r.ActorID = "ds-43"
	assert.NotEqual(t, r.ReceiptHash, r.RecomputeHash())
}

func TestAuditReceipt_IsAnchored(t *testing.T) {
	r := &AuditReceipt{}
	assert.False(t, r.IsAnchored())

	batchID := uuid.New()
	idx := 3
	r.BatchID = &batchID
	assert.False(t, r.IsAnchored(), "batch id alone is not an anchor")
	r.LeafIndex = &idx
	assert.True(t, r.IsAnchored())
}

func TestServiceAccount_IsActive(t *testing.T) {
	assert.True(t, (&ServiceAccount{Status: AccountStatusActive}).IsActive())
	assert.False(t, (&ServiceAccount{Status: AccountStatusSuspended}).IsActive())
}
