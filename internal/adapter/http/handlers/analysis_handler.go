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

// AnalysisHandler handles the language-model passes over a proposal. Each
// endpoint is a status transition; a failed pass leaves the proposal where
// it was.

type AnalysisHandler struct {
	usecase usecase.IAnalysisUseCase
}

func NewAnalysisHandler(uc usecase.IAnalysisUseCase) *AnalysisHandler {
	return &AnalysisHandler{usecase: uc}
}

// Process runs the first analysis pass over the uploaded documents.
// @Summary      Run the initial analysis pass
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        id            path      string                  true   "Proposal ID"
// @Param        requirements  body      request.ProcessRequest  false  "Optional requirements override"
// @Success      200           {object}  response.ProposalResponse
// @Failure      401           {object}  pkg.HTTPError
// @Failure      404           {object}  pkg.HTTPError
// @Failure      409           {object}  pkg.HTTPError
// @Failure      502           {object}  pkg.HTTPError
// @Security     UserID
// @Router       /ai/{id}/process [post]
func (h *AnalysisHandler) Process(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		c.JSON(errMissingUserID.HTTPStatus, errMissingUserID.ToHTTPError())
		return
	}

	// The body is optional: requirements may already be stored.
	var payload request.ProcessRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidProposalPayload.HTTPStatus, errInvalidProposalPayload.ToHTTPError())
			return
		}
	}

	proposalID := c.Param("id")
	log.Printf("[analysis][handler] process start proposal_id=%s", proposalID)
	proposal, err := h.usecase.Process(c.Request.Context(), proposalID, userID, payload.UserRequirements)
	if err != nil {
		log.Printf("[analysis][handler] process failed proposal_id=%s err=%v", proposalID, err)
		appErr := mapAnalysisError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[analysis][handler] process success proposal_id=%s status=%s", proposal.ID, proposal.Status)

	c.JSON(http.StatusOK, response.FromProposal(proposal))
}

// Analyze re-runs scope analysis with the owner's feedback.
// @Summary      Refine the analysis with feedback
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        id        path      string                  true  "Proposal ID"
// @Param        feedback  body      request.AnalyzeRequest  true  "User feedback on the current draft"
// @Success      200       {object}  response.ProposalResponse
// @Failure      400       {object}  pkg.HTTPError
// @Failure      401       {object}  pkg.HTTPError
// @Failure      404       {object}  pkg.HTTPError
// @Failure      409       {object}  pkg.HTTPError
// @Failure      502       {object}  pkg.HTTPError
// @Security     UserID
// @Router       /ai/{id}/analyze [post]
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		c.JSON(errMissingUserID.HTTPStatus, errMissingUserID.ToHTTPError())
		return
	}

	var payload request.AnalyzeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProposalPayload.HTTPStatus, errInvalidProposalPayload.ToHTTPError())
		return
	}

	proposalID := c.Param("id")
	log.Printf("[analysis][handler] analyze start proposal_id=%s", proposalID)
	proposal, err := h.usecase.Reanalyze(c.Request.Context(), proposalID, userID, payload.UserFeedback)
	if err != nil {
		log.Printf("[analysis][handler] analyze failed proposal_id=%s err=%v", proposalID, err)
		appErr := mapAnalysisError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[analysis][handler] analyze success proposal_id=%s status=%s", proposal.ID, proposal.Status)

	c.JSON(http.StatusOK, response.FromProposal(proposal))
}

// Generate produces the full proposal document.
// @Summary      Generate the full proposal
// @Tags         ai
// @Produce      json
// @Param        id   path      string  true  "Proposal ID"
// @Success      200  {object}  response.ProposalResponse
// @Failure      401  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Security     UserID
// @Router       /ai/{id}/generate [post]
func (h *AnalysisHandler) Generate(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		c.JSON(errMissingUserID.HTTPStatus, errMissingUserID.ToHTTPError())
		return
	}

	proposalID := c.Param("id")
	log.Printf("[analysis][handler] generate start proposal_id=%s", proposalID)
	proposal, err := h.usecase.Generate(c.Request.Context(), proposalID, userID)
	if err != nil {
		log.Printf("[analysis][handler] generate failed proposal_id=%s err=%v", proposalID, err)
		appErr := mapAnalysisError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[analysis][handler] generate success proposal_id=%s status=%s", proposal.ID, proposal.Status)

	c.JSON(http.StatusOK, response.FromProposal(proposal))
}

func mapAnalysisError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrAnalysisNotAllowed):
		return pkg.NewDomainErrorSimple("ANALYSIS_NOT_ALLOWED", "Proposal status does not allow this pass", http.StatusConflict)
	case errors.Is(err, usecase.ErrScopeMissing):
		return pkg.NewDomainErrorSimple("SCOPE_MISSING", "Run the initial analysis before requesting feedback passes", http.StatusConflict)
	case errors.Is(err, usecase.ErrGenerationNotReady):
		return pkg.NewDomainErrorSimple("GENERATION_NOT_READY", "Scope and deliverables are required before generation", http.StatusConflict)
	case errors.Is(err, usecase.ErrCollaboratorFailed):
		return pkg.NewDomainError("ANALYSIS_PROVIDER_ERROR", "The analysis provider failed", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrMalformedAnalysis):
		return pkg.NewDomainError("MALFORMED_ANALYSIS", "The analysis provider returned an unusable payload", err, http.StatusBadGateway)
	default:
		return mapProposalError(err)
	}
}
