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

// TimelineHandler handles timeline and milestone mutations.

type TimelineHandler struct {
	usecase usecase.ITimelineUseCase
}

func NewTimelineHandler(uc usecase.ITimelineUseCase) *TimelineHandler {
	return &TimelineHandler{usecase: uc}
}

// SaveTimeline replaces the whole phase list after validation.
// @Summary      Replace the timeline
// @Tags         timeline
// @Accept       json
// @Produce      json
// @Param        id        path      string                   true  "Proposal ID"
// @Param        timeline  body      request.TimelineRequest  true  "Full phase list"
// @Success      200       {object}  response.ProposalResponse
// @Failure      400       {object}  pkg.HTTPError
// @Failure      401       {object}  pkg.HTTPError
// @Failure      404       {object}  pkg.HTTPError
// @Security     UserID
// @Router       /timeline/{id} [put]
func (h *TimelineHandler) SaveTimeline(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		c.JSON(errMissingUserID.HTTPStatus, errMissingUserID.ToHTTPError())
		return
	}

	var payload request.TimelineRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProposalPayload.HTTPStatus, errInvalidProposalPayload.ToHTTPError())
		return
	}
	phases, err := payload.ToPhases()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_DATE", "Dates must be RFC3339 or YYYY-MM-DD", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	proposalID := c.Param("id")
	proposal, err := h.usecase.SaveTimeline(c.Request.Context(), proposalID, userID, phases)
	if err != nil {
		log.Printf("[timeline][handler] save failed proposal_id=%s phases=%d err=%v", proposalID, len(phases), err)
		appErr := mapTimelineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[timeline][handler] save success proposal_id=%s phases=%d", proposal.ID, len(phases))

	c.JSON(http.StatusOK, response.FromProposal(proposal))
}

// SetMilestonePercentage sets one milestone's percentage, clamped so the
// proposal-wide budget never exceeds 100%. The response reports the value
// that was actually applied.
// @Summary      Set a milestone percentage
// @Tags         timeline
// @Accept       json
// @Produce      json
// @Param        id         path      string                              true  "Proposal ID"
// @Param        milestone  body      request.MilestonePercentageRequest  true  "Milestone address and requested percentage"
// @Success      200        {object}  response.MilestoneUpdateResponse
// @Failure      400        {object}  pkg.HTTPError
// @Failure      401        {object}  pkg.HTTPError
// @Failure      404        {object}  pkg.HTTPError
// @Security     UserID
// @Router       /timeline/{id}/milestone [patch]
func (h *TimelineHandler) SetMilestonePercentage(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		c.JSON(errMissingUserID.HTTPStatus, errMissingUserID.ToHTTPError())
		return
	}

	var payload request.MilestonePercentageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProposalPayload.HTTPStatus, errInvalidProposalPayload.ToHTTPError())
		return
	}

	proposalID := c.Param("id")
	proposal, applied, adjusted, err := h.usecase.SetMilestonePercentage(
		c.Request.Context(), proposalID, userID, *payload.PhaseIndex, *payload.MilestoneIndex, payload.Percentage)
	if err != nil {
		log.Printf("[timeline][handler] milestone update failed proposal_id=%s err=%v", proposalID, err)
		appErr := mapTimelineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if adjusted {
		log.Printf("[timeline][handler] milestone percentage clamped proposal_id=%s requested=%.2f applied=%.2f",
			proposalID, payload.Percentage, applied)
	}

	c.JSON(http.StatusOK, response.FromMilestoneUpdate(proposal, applied, adjusted))
}

func mapTimelineError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrPhaseNotFound):
		return pkg.NewDomainErrorSimple("PHASE_NOT_FOUND", "Phase index out of range", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMilestoneNotFound):
		return pkg.NewDomainErrorSimple("MILESTONE_NOT_FOUND", "Milestone index out of range", http.StatusNotFound)
	default:
		return mapProposalError(err)
	}
}
