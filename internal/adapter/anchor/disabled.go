package anchor

import (
	"context"

	"yachaq-ledger/internal/core/domain"
	"yachaq-ledger/internal/core/ports"
	"yachaq-ledger/pkg/apperror"
)

// DisabledClient is wired when anchoring is switched off. The ledger keeps
// chaining receipts; every submission attempt reports anchoring as
// disabled so batches stay retry-eligible for when it is turned on.
type DisabledClient struct{}

// NewDisabledClient creates a client for the anchoring-off configuration.
func NewDisabledClient() *DisabledClient {
	return &DisabledClient{}
}

// AnchorRoot always fails with an anchoring-disabled error.
func (c *DisabledClient) AnchorRoot(ctx context.Context, rootHex string, leafCount int, batchMetadataHash string) (*domain.AnchorResult, error) {
	return nil, apperror.ErrAnchoringDisabled()
}

// GetAnchor always fails with an anchoring-disabled error.
func (c *DisabledClient) GetAnchor(ctx context.Context, anchorID string) (*domain.AnchorResult, error) {
	return nil, apperror.ErrAnchoringDisabled()
}

var _ ports.AnchorClient = (*DisabledClient)(nil)
