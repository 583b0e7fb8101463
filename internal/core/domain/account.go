package domain

import (
	"time"

	"github.com/google/uuid"
)

// AccountStatus represents the state of a caller service account.
type AccountStatus string

const (
	AccountStatusActive    AccountStatus = "ACTIVE"
	AccountStatusSuspended AccountStatus = "SUSPENDED"
)

// ServiceAccount is a registered business-service caller of the ledger API.
// The plaintext secret is shown once at registration; only its Argon2id
// hash is stored.
type ServiceAccount struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	SecretHash  string        `json:"-"` // never expose
	ActorType   ActorType     `json:"actor_type"`
	Status      AccountStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	LastTokenAt *time.Time    `json:"last_token_at,omitempty"`
}

// IsActive returns true if the account may request tokens and append receipts.
func (a *ServiceAccount) IsActive() bool {
	return a.Status == AccountStatusActive
}
