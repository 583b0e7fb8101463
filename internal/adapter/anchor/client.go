package anchor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"yachaq-ledger/internal/core/domain"
	"yachaq-ledger/internal/core/ports"
	"yachaq-ledger/pkg/apperror"

	"github.com/rs/zerolog"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// anchorRequest is the JSON body sent to the chain gateway.
type anchorRequest struct {
	MerkleRoot        string `json:"merkle_root"`
	LeafCount         int    `json:"leaf_count"`
	BatchMetadataHash string `json:"batch_metadata_hash"`
	SubmittedAt       int64  `json:"submitted_at"`
}

// anchorResponse is the gateway's reply on success.
type anchorResponse struct {
	AnchorID  string `json:"anchor_id"`
	TxRef     string `json:"tx_ref"`
	Confirmed bool   `json:"confirmed"`
}

// Client implements ports.AnchorClient against an HTTP chain gateway. One
// submission per call; retry scheduling stays with the anchoring service.
type Client struct {
	endpoint   string
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewClient creates an HTTP anchor client. The endpoint is the gateway's
// anchor submission URL.
func NewClient(endpoint string, timeout time.Duration, log zerolog.Logger) *Client {
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// NewClientWithHTTP creates a client with a caller-supplied HTTP client.
func NewClientWithHTTP(endpoint string, httpClient HTTPClient, log zerolog.Logger) *Client {
	return &Client{
		endpoint:   endpoint,
		httpClient: httpClient,
		log:        log,
	}
}

// AnchorRoot submits one Merkle root to the gateway. Any transport error or
// non-2xx status is reported as an anchoring failure; the caller decides
// whether and when to retry.
func (c *Client) AnchorRoot(ctx context.Context, rootHex string, leafCount int, batchMetadataHash string) (*domain.AnchorResult, error) {
	body, err := json.Marshal(anchorRequest{
		MerkleRoot:        rootHex,
		LeafCount:         leafCount,
		BatchMetadataHash: batchMetadataHash,
		SubmittedAt:       time.Now().Unix(),
	})
	if err != nil {
		return nil, apperror.ErrAnchoringFailed(fmt.Errorf("marshal anchor request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, apperror.ErrAnchoringFailed(fmt.Errorf("build anchor request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("merkle_root", rootHex).Msg("anchor: gateway submission failed")
		return nil, apperror.ErrAnchoringFailed(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Warn().Int("status", resp.StatusCode).Str("merkle_root", rootHex).Msg("anchor: gateway returned non-2xx")
		return nil, apperror.ErrAnchoringFailed(fmt.Errorf("gateway status %d", resp.StatusCode))
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperror.ErrAnchoringFailed(fmt.Errorf("read gateway response: %w", err))
	}

	var parsed anchorResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, apperror.ErrAnchoringFailed(fmt.Errorf("decode gateway response: %w", err))
	}
	if parsed.AnchorID == "" || parsed.TxRef == "" {
		return nil, apperror.ErrAnchoringFailed(fmt.Errorf("gateway response missing anchor_id or tx_ref"))
	}

	c.log.Info().
		Str("anchor_id", parsed.AnchorID).
		Str("tx_ref", parsed.TxRef).
		Int("leaf_count", leafCount).
		Msg("anchor: root submitted")

	return &domain.AnchorResult{
		AnchorID:  parsed.AnchorID,
		TxRef:     parsed.TxRef,
		Confirmed: parsed.Confirmed,
	}, nil
}

// GetAnchor fetches the current state of a submitted anchor from the
// gateway. Confirmation can lag submission by several blocks, so callers
// poll this until Confirmed flips.
func (c *Client) GetAnchor(ctx context.Context, anchorID string) (*domain.AnchorResult, error) {
	if anchorID == "" {
		return nil, apperror.ErrAnchoringFailed(fmt.Errorf("anchor id is empty"))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"/"+anchorID, nil)
	if err != nil {
		return nil, apperror.ErrAnchoringFailed(fmt.Errorf("build anchor lookup: %w", err))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("anchor_id", anchorID).Msg("anchor: gateway lookup failed")
		return nil, apperror.ErrAnchoringFailed(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Warn().Int("status", resp.StatusCode).Str("anchor_id", anchorID).Msg("anchor: gateway lookup returned non-2xx")
		return nil, apperror.ErrAnchoringFailed(fmt.Errorf("gateway status %d", resp.StatusCode))
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperror.ErrAnchoringFailed(fmt.Errorf("read gateway response: %w", err))
	}

	var parsed anchorResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, apperror.ErrAnchoringFailed(fmt.Errorf("decode gateway response: %w", err))
	}
	if parsed.AnchorID == "" {
		return nil, apperror.ErrAnchoringFailed(fmt.Errorf("gateway response missing anchor_id"))
	}

	return &domain.AnchorResult{
		AnchorID:  parsed.AnchorID,
		TxRef:     parsed.TxRef,
		Confirmed: parsed.Confirmed,
	}, nil
}

var _ ports.AnchorClient = (*Client)(nil)
