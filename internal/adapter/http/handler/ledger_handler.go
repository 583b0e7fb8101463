package handler

import (
	"strconv"
	"time"

	"yachaq-ledger/internal/adapter/http/dto"
	"yachaq-ledger/internal/core/domain"
	"yachaq-ledger/internal/core/ports"
	"yachaq-ledger/pkg/apperror"
	"yachaq-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LedgerHandler handles receipt append, lookup, and verification endpoints.
type LedgerHandler struct {
	ledgerSvc ports.LedgerService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerSvc ports.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerSvc: ledgerSvc}
}

// Append handles POST /api/v1/receipts.
func (h *LedgerHandler) Append(c *gin.Context) {
	var req dto.AppendReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	receipt, err := h.ledgerSvc.Append(c.Request.Context(), ports.AppendRequest{
		EventType:    domain.EventType(req.EventType),
		ActorID:      req.ActorID,
		ActorType:    domain.ActorType(req.ActorType),
		ResourceID:   req.ResourceID,
		ResourceType: req.ResourceType,
		DetailsHash:  req.DetailsHash,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toReceiptResponse(receipt))
}

// GetReceipt handles GET /api/v1/receipts/:id.
func (h *LedgerHandler) GetReceipt(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid receipt id"))
		return
	}

	receipt, err := h.ledgerSvc.GetReceipt(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toReceiptResponse(receipt))
}

// VerifyReceipt handles GET /api/v1/receipts/:id/verify.
func (h *LedgerHandler) VerifyReceipt(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid receipt id"))
		return
	}

	report, err := h.ledgerSvc.VerifyReceiptIntegrity(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.IntegrityReportResponse{
		ReceiptID:    report.ReceiptID.String(),
		HashValid:    report.HashValid,
		ChainValid:   report.ChainValid,
		OverallValid: report.OverallValid,
		Anchored:     report.Anchored,
	})
}

// VerifySegment handles GET /api/v1/verify/segment?from=<id>&to=<id>.
func (h *LedgerHandler) VerifySegment(c *gin.Context) {
	fromID, err := uuid.Parse(c.Query("from"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid from receipt id"))
		return
	}
	toID, err := uuid.Parse(c.Query("to"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid to receipt id"))
		return
	}

	valid, err := h.ledgerSvc.VerifyChainSegment(c.Request.Context(), fromID, toID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.SegmentVerificationResponse{
		FromID: fromID.String(),
		ToID:   toID.String(),
		Valid:  valid,
	})
}

// ListReceipts handles GET /api/v1/receipts. Exactly one selector is
// required: actor_id, resource_id, event_type, or a from/to timestamp pair
// (RFC 3339).
func (h *LedgerHandler) ListReceipts(c *gin.Context) {
	limit, offset := parsePage(c)

	actorID := c.Query("actor_id")
	resourceID := c.Query("resource_id")
	eventType := c.Query("event_type")
	fromStr := c.Query("from")
	toStr := c.Query("to")

	selectors := 0
	for _, s := range []string{actorID, resourceID, eventType} {
		if s != "" {
			selectors++
		}
	}
	if fromStr != "" || toStr != "" {
		selectors++
	}
	if selectors != 1 {
		response.Error(c, apperror.Validation("exactly one of actor_id, resource_id, event_type, or from/to must be set"))
		return
	}

	var (
		receipts []domain.AuditReceipt
		err      error
	)
	switch {
	case actorID != "":
		receipts, err = h.ledgerSvc.ListByActor(c.Request.Context(), actorID, limit, offset)
	case resourceID != "":
		receipts, err = h.ledgerSvc.ListByResource(c.Request.Context(), resourceID, limit, offset)
	case eventType != "":
		receipts, err = h.ledgerSvc.ListByEventType(c.Request.Context(), domain.EventType(eventType), limit, offset)
	default:
		var from, to time.Time
		if from, err = time.Parse(time.RFC3339, fromStr); err != nil {
			response.Error(c, apperror.Validation("from must be an RFC 3339 timestamp"))
			return
		}
		if to, err = time.Parse(time.RFC3339, toStr); err != nil {
			response.Error(c, apperror.Validation("to must be an RFC 3339 timestamp"))
			return
		}
		receipts, err = h.ledgerSvc.ListByTimeRange(c.Request.Context(), from, to, limit, offset)
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.ReceiptResponse, 0, len(receipts))
	for i := range receipts {
		items = append(items, toReceiptResponse(&receipts[i]))
	}

	response.OK(c, dto.ReceiptListResponse{
		Items:  items,
		Count:  len(items),
		Limit:  limit,
		Offset: offset,
	})
}

func parsePage(c *gin.Context) (int, int) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit < 1 || limit > 500 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// toReceiptResponse converts domain.AuditReceipt to DTO.
func toReceiptResponse(r *domain.AuditReceipt) dto.ReceiptResponse {
	resp := dto.ReceiptResponse{
		ID:                  r.ID.String(),
		EventType:           string(r.EventType),
		Timestamp:           r.Timestamp.UTC().Format(time.RFC3339Nano),
		ActorID:             r.ActorID,
		ActorType:           string(r.ActorType),
		ResourceID:          r.ResourceID,
		ResourceType:        r.ResourceType,
		DetailsHash:         r.DetailsHash,
		ReceiptHash:         r.ReceiptHash,
		PreviousReceiptHash: r.PreviousReceiptHash,
		Sequence:            r.Sequence,
		AnchorTxRef:         r.AnchorTxRef,
		LeafIndex:           r.LeafIndex,
	}
	if r.BatchID != nil {
		s := r.BatchID.String()
		resp.BatchID = &s
	}
	return resp
}
