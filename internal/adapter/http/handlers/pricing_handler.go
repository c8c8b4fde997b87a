package handlers

import (
	"errors"
	"log"
	"net/http"
	request "propdraft/internal/adapter/http/dto/request"
	response "propdraft/internal/adapter/http/dto/response"
	"propdraft/internal/usecase"
	"propdraft/pkg"

	"github.com/gin-gonic/gin"
)

// PricingHandler handles pricing item batches.

type PricingHandler struct {
	usecase usecase.IPricingUseCase
}

func NewPricingHandler(uc usecase.IPricingUseCase) *PricingHandler {
	return &PricingHandler{usecase: uc}
}

// ApplyItems replaces the pricing item list and recomputes the derived
// total and milestone payment amounts.
// @Summary      Apply pricing items
// @Tags         pricing
// @Accept       json
// @Produce      json
// @Param        id     path      string                       true  "Proposal ID"
// @Param        items  body      request.PricingItemsRequest  true  "Full pricing item batch"
// @Success      200    {object}  response.ProposalResponse
// @Failure      400    {object}  pkg.HTTPError
// @Failure      401    {object}  pkg.HTTPError
// @Failure      404    {object}  pkg.HTTPError
// @Failure      409    {object}  pkg.HTTPError
// @Security     UserID
// @Router       /pricing/{id}/items [post]
func (h *PricingHandler) ApplyItems(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		c.JSON(errMissingUserID.HTTPStatus, errMissingUserID.ToHTTPError())
		return
	}

	var payload request.PricingItemsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProposalPayload.HTTPStatus, errInvalidProposalPayload.ToHTTPError())
		return
	}

	proposalID := c.Param("id")
	proposal, err := h.usecase.ApplyItems(c.Request.Context(), proposalID, userID, payload.ToItems())
	if err != nil {
		log.Printf("[pricing][handler] apply failed proposal_id=%s items=%d err=%v", proposalID, len(payload.Items), err)
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[pricing][handler] apply success proposal_id=%s total=%.2f", proposal.ID, proposal.Pricing.Total)

	c.JSON(http.StatusOK, response.FromProposal(proposal))
}

func mapPricingError(err error) *pkg.AppError {
	var invalidIDs *usecase.InvalidDeliverableIDsError
	var notReady *usecase.PricingNotReadyError

	switch {
	case errors.As(err, &notReady):
		return pkg.NewDomainErrorSimple("NOT_READY", "Pricing requires a complete proposal", http.StatusConflict).
			WithDetails(map[string]interface{}{"status": string(notReady.Status)})
	case errors.Is(err, usecase.ErrPricingNotReady):
		return pkg.NewDomainErrorSimple("NOT_READY", "Pricing requires a complete proposal", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidUnitPrice):
		return pkg.NewDomainErrorSimple("INVALID_UNIT_PRICE", "Unit price must be greater than zero", http.StatusBadRequest)
	case errors.As(err, &invalidIDs):
		return pkg.NewDomainErrorSimple("INVALID_DELIVERABLE_IDS", "Items reference unknown deliverables", http.StatusBadRequest).
			WithDetails(map[string]interface{}{"ids": invalidIDs.IDs})
	default:
		return mapProposalError(err)
	}
}
