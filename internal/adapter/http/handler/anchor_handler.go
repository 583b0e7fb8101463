package handler

import (
	"time"

	"yachaq-ledger/internal/adapter/http/dto"
	"yachaq-ledger/internal/core/domain"
	"yachaq-ledger/internal/core/ports"
	"yachaq-ledger/pkg/apperror"
	"yachaq-ledger/pkg/merkle"
	"yachaq-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AnchorHandler handles anchoring, batch, and inclusion proof endpoints.
type AnchorHandler struct {
	anchorSvc ports.AnchorService
}

// NewAnchorHandler creates a new AnchorHandler.
func NewAnchorHandler(anchorSvc ports.AnchorService) *AnchorHandler {
	return &AnchorHandler{anchorSvc: anchorSvc}
}

// GetProof handles GET /api/v1/receipts/:id/proof.
func (h *AnchorHandler) GetProof(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid receipt id"))
		return
	}

	proof, err := h.anchorSvc.ProveInclusion(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	elements := make([]dto.ProofElementResponse, 0, len(proof.Elements))
	for _, el := range proof.Elements {
		elements = append(elements, dto.ProofElementResponse{Hash: el.Hash, Left: el.Left})
	}

	response.OK(c, dto.ProofResponse{
		ReceiptID:    id.String(),
		LeafHash:     proof.LeafHash,
		LeafIndex:    proof.LeafIndex,
		ExpectedRoot: proof.ExpectedRoot,
		Elements:     elements,
		Serialized:   proof.Serialize(),
	})
}

// VerifyProof handles POST /api/v1/proofs/verify. The proof travels as its
// portable serialized form; no ledger access is needed to check it.
func (h *AnchorHandler) VerifyProof(c *gin.Context) {
	var req dto.VerifyProofRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	proof, err := merkle.ParseProof(req.Proof)
	if err != nil {
		response.Error(c, apperror.ErrProofMalformed(err))
		return
	}

	root := proof.ExpectedRoot
	if req.Root != "" {
		root = req.Root
	}

	response.OK(c, dto.VerifyProofResponse{
		Valid: merkle.VerifyProof(proof, root),
	})
}

// GetBatch handles GET /api/v1/batches/:id.
func (h *AnchorHandler) GetBatch(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid batch id"))
		return
	}

	batch, err := h.anchorSvc.GetBatch(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toBatchResponse(batch))
}

// VerifyBatch handles GET /api/v1/batches/:id/verify.
func (h *AnchorHandler) VerifyBatch(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid batch id"))
		return
	}

	valid, err := h.anchorSvc.VerifyBatch(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.BatchVerificationResponse{
		BatchID:   id.String(),
		RootValid: valid,
	})
}

// ListBatches handles GET /api/v1/batches.
func (h *AnchorHandler) ListBatches(c *gin.Context) {
	limit, offset := parsePage(c)

	batches, err := h.anchorSvc.ListBatches(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.BatchResponse, 0, len(batches))
	for i := range batches {
		items = append(items, toBatchResponse(&batches[i]))
	}

	response.OK(c, dto.BatchListResponse{
		Items:  items,
		Count:  len(items),
		Limit:  limit,
		Offset: offset,
	})
}

// AnchorNow handles POST /api/v1/batches/anchor. It runs one anchoring
// cycle immediately instead of waiting for the background ticker. Returns
// 200 with no batch when there is nothing to anchor.
func (h *AnchorHandler) AnchorNow(c *gin.Context) {
	outcome, err := h.anchorSvc.AnchorNextBatch(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if outcome == nil {
		response.OK(c, gin.H{"anchored": false})
		return
	}

	response.Created(c, dto.AnchorOutcomeResponse{
		BatchID:      outcome.BatchID.String(),
		MerkleRoot:   outcome.MerkleRoot,
		ReceiptCount: outcome.ReceiptCount,
		AnchorID:     outcome.AnchorID,
		TxRef:        outcome.TxRef,
		Confirmed:    outcome.Confirmed,
	})
}

// toBatchResponse converts domain.AnchorBatch to DTO.
func toBatchResponse(b *domain.AnchorBatch) dto.BatchResponse {
	return dto.BatchResponse{
		ID:                b.ID.String(),
		MerkleRoot:        b.MerkleRoot,
		ReceiptCount:      b.ReceiptCount,
		BatchMetadataHash: b.BatchMetadataHash,
		AnchorID:          b.AnchorID,
		TxRef:             b.TxRef,
		Confirmed:         b.Confirmed,
		FirstSequence:     b.FirstSequence,
		LastSequence:      b.LastSequence,
		CreatedAt:         b.CreatedAt.UTC().Format(time.RFC3339),
	}
}
