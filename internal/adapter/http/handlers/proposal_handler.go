package handlers

import (
	"errors"
	"log"
	"mime/multipart"
	"net/http"
	request "propdraft/internal/adapter/http/dto/request"
	response "propdraft/internal/adapter/http/dto/response"
	"propdraft/internal/infrastructure/files"
	"propdraft/internal/infrastructure/storage"
	"propdraft/internal/usecase"
	"propdraft/pkg"
	"strings"

	"github.com/gin-gonic/gin"
)

const HeaderUserID = "X-User-ID"

var (
	errInvalidProposalPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)
	errMissingUserID          = pkg.NewDomainErrorSimple("MISSING_USER_ID", "Missing X-User-ID header", http.StatusUnauthorized)
)

// callerID resolves the acting user. Authentication happens upstream at the
// gateway; this service trusts the forwarded identity header.
func callerID(c *gin.Context) (string, bool) {
	id := strings.TrimSpace(c.GetHeader(HeaderUserID))
	return id, id != ""
}

// ProposalHandler handles HTTP requests for proposal documents.

type ProposalHandler struct {
	usecase usecase.IProposalUseCase
}

func NewProposalHandler(uc usecase.IProposalUseCase) *ProposalHandler {
	return &ProposalHandler{usecase: uc}
}

// CreateProposal godoc
// @Summary      Create a proposal
// @Description  Creates an empty draft proposal owned by the calling user.
// @Tags         proposals
// @Accept       json
// @Produce      json
// @Param        proposal  body      request.CreateProposalRequest  true  "Title and optional description"
// @Success      201       {object}  response.ProposalResponse
// @Failure      400       {object}  pkg.HTTPError
// @Failure      401       {object}  pkg.HTTPError
// @Security     UserID
// @Router       /proposals [post]
func (h *ProposalHandler) CreateProposal(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		c.JSON(errMissingUserID.HTTPStatus, errMissingUserID.ToHTTPError())
		return
	}

	var payload request.CreateProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProposalPayload.HTTPStatus, errInvalidProposalPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), userID, payload.Title, payload.Description)
	if err != nil {
		log.Printf("[proposal][handler] create failed user_id=%s err=%v", userID, err)
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[proposal][handler] create success user_id=%s proposal_id=%s", userID, created.ID)

	c.JSON(http.StatusCreated, response.FromProposal(created))
}

// ListProposals godoc
// @Summary      List proposals
// @Description  Lists every proposal owned by the calling user.
// @Tags         proposals
// @Produce      json
// @Success      200  {array}   response.ProposalResponse
// @Failure      401  {object}  pkg.HTTPError
// @Security     UserID
// @Router       /proposals [get]
func (h *ProposalHandler) ListProposals(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		c.JSON(errMissingUserID.HTTPStatus, errMissingUserID.ToHTTPError())
		return
	}

	proposals, err := h.usecase.List(c.Request.Context(), userID)
	if err != nil {
		log.Printf("[proposal][handler] list failed user_id=%s err=%v", userID, err)
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProposals(proposals))
}

// GetProposal godoc
// @Summary      Get a proposal
// @Tags         proposals
// @Produce      json
// @Param        id   path      string  true  "Proposal ID"
// @Success      200  {object}  response.ProposalResponse
// @Failure      401  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Security     UserID
// @Router       /proposals/{id} [get]
func (h *ProposalHandler) GetProposal(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		c.JSON(errMissingUserID.HTTPStatus, errMissingUserID.ToHTTPError())
		return
	}

	proposal, err := h.usecase.Get(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProposal(proposal))
}

// UpdateTitle godoc
// @Summary      Rename a proposal
// @Tags         proposals
// @Accept       json
// @Produce      json
// @Param        id     path      string                      true  "Proposal ID"
// @Param        title  body      request.UpdateTitleRequest  true  "New title"
// @Success      200    {object}  response.ProposalResponse
// @Failure      400    {object}  pkg.HTTPError
// @Failure      401    {object}  pkg.HTTPError
// @Failure      404    {object}  pkg.HTTPError
// @Security     UserID
// @Router       /proposals/{id}/title [patch]
func (h *ProposalHandler) UpdateTitle(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		c.JSON(errMissingUserID.HTTPStatus, errMissingUserID.ToHTTPError())
		return
	}

	var payload request.UpdateTitleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProposalPayload.HTTPStatus, errInvalidProposalPayload.ToHTTPError())
		return
	}
	title := payload.ResolveTitle()
	if title == "" {
		c.JSON(errInvalidProposalPayload.HTTPStatus, errInvalidProposalPayload.ToHTTPError())
		return
	}

	proposal, err := h.usecase.UpdateTitle(c.Request.Context(), c.Param("id"), userID, title)
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProposal(proposal))
}

// UpdateRequirements stores the owner's free-text requirements. Changing the
// inputs restarts the drafting flow, so the status drops back to draft.
// @Summary      Replace user requirements
// @Tags         proposals
// @Accept       json
// @Produce      json
// @Param        id            path      string                             true  "Proposal ID"
// @Param        requirements  body      request.UpdateRequirementsRequest  true  "Free-text requirements"
// @Success      200           {object}  response.ProposalResponse
// @Failure      400           {object}  pkg.HTTPError
// @Failure      401           {object}  pkg.HTTPError
// @Failure      404           {object}  pkg.HTTPError
// @Security     UserID
// @Router       /proposals/{id}/requirements [put]
func (h *ProposalHandler) UpdateRequirements(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		c.JSON(errMissingUserID.HTTPStatus, errMissingUserID.ToHTTPError())
		return
	}

	var payload request.UpdateRequirementsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProposalPayload.HTTPStatus, errInvalidProposalPayload.ToHTTPError())
		return
	}

	proposal, err := h.usecase.UpdateRequirements(c.Request.Context(), c.Param("id"), userID, payload.UserRequirements)
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProposal(proposal))
}

// DeleteProposal godoc
// @Summary      Delete a proposal
// @Description  Removes the proposal record and its uploaded files.
// @Tags         proposals
// @Param        id  path  string  true  "Proposal ID"
// @Success      204
// @Failure      401  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Security     UserID
// @Router       /proposals/{id} [delete]
func (h *ProposalHandler) DeleteProposal(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		c.JSON(errMissingUserID.HTTPStatus, errMissingUserID.ToHTTPError())
		return
	}

	proposalID := c.Param("id")
	err := h.usecase.Delete(c.Request.Context(), proposalID, userID)
	if err != nil {
		if errors.Is(err, usecase.ErrStorageCleanup) {
			// The record is gone; leftover files on disk are not a caller
			// problem.
			log.Printf("[proposal][handler] delete left stray files proposal_id=%s err=%v", proposalID, err)
			c.Status(http.StatusNoContent)
			return
		}
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// UploadFiles attaches source documents from a multipart form under the
// "files" field.
// @Summary      Upload source documents
// @Tags         proposals
// @Accept       multipart/form-data
// @Produce      json
// @Param        id     path      string  true  "Proposal ID"
// @Param        files  formData  file    true  "PDF, DOCX or TXT documents (max 5 per upload, 10MB each)"
// @Success      200    {object}  response.ProposalResponse
// @Failure      400    {object}  pkg.HTTPError
// @Failure      401    {object}  pkg.HTTPError
// @Failure      404    {object}  pkg.HTTPError
// @Failure      413    {object}  pkg.HTTPError
// @Failure      415    {object}  pkg.HTTPError
// @Security     UserID
// @Router       /proposals/{id}/files [post]
func (h *ProposalHandler) UploadFiles(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		c.JSON(errMissingUserID.HTTPStatus, errMissingUserID.ToHTTPError())
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(errInvalidProposalPayload.HTTPStatus, errInvalidProposalPayload.ToHTTPError())
		return
	}
	headers := form.File["files"]
	if len(headers) == 0 {
		c.JSON(errInvalidProposalPayload.HTTPStatus, errInvalidProposalPayload.ToHTTPError())
		return
	}

	uploads := make([]usecase.FileUpload, 0, len(headers))
	opened := make([]multipart.File, 0, len(headers))
	defer func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}()
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			c.JSON(errInvalidProposalPayload.HTTPStatus, errInvalidProposalPayload.ToHTTPError())
			return
		}
		opened = append(opened, f)
		uploads = append(uploads, usecase.FileUpload{
			Name:     fh.Filename,
			MimeType: fh.Header.Get("Content-Type"),
			Size:     fh.Size,
			Content:  f,
		})
	}

	proposal, err := h.usecase.AttachFiles(c.Request.Context(), c.Param("id"), userID, uploads)
	if err != nil {
		log.Printf("[proposal][handler] upload failed proposal_id=%s files=%d err=%v", c.Param("id"), len(uploads), err)
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[proposal][handler] upload success proposal_id=%s files=%d", proposal.ID, len(uploads))

	c.JSON(http.StatusOK, response.FromProposal(proposal))
}

// UpdateSection replaces one content section wholesale. The section name is
// the last path segment; the body carries the replacement value.
// @Summary      Replace a content section
// @Tags         proposals
// @Accept       json
// @Produce      json
// @Param        id       path      string                        true  "Proposal ID"
// @Param        section  path      string                        true  "Section name"  Enums(executiveSummary, scopeOfWork, requirements, deliverables, workBreakdown, timeline)
// @Param        value    body      request.SectionUpdateRequest  true  "Replacement value"
// @Success      200      {object}  response.ProposalResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      401      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Security     UserID
// @Router       /proposals/{id}/section/{section} [patch]
func (h *ProposalHandler) UpdateSection(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		c.JSON(errMissingUserID.HTTPStatus, errMissingUserID.ToHTTPError())
		return
	}

	var payload request.SectionUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProposalPayload.HTTPStatus, errInvalidProposalPayload.ToHTTPError())
		return
	}

	proposal, err := h.usecase.ApplySection(c.Request.Context(), c.Param("id"), userID, c.Param("section"), payload.Value)
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProposal(proposal))
}

// mapProposalError translates domain failures shared by every proposal-scoped
// endpoint. Handler-specific maps fall through to this one.
func mapProposalError(err error) *pkg.AppError {
	var dueDate *usecase.InvalidDueDateError
	var unknownTask *usecase.UnknownTaskError

	switch {
	case errors.Is(err, usecase.ErrInvalidProposalID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid proposal id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProposalNotFound):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_FOUND", "Proposal not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidSection):
		return pkg.NewDomainErrorSimple("INVALID_SECTION", "Unknown content section", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidSectionPayload):
		return pkg.NewDomainErrorSimple("INVALID_SECTION_PAYLOAD", "Section value has the wrong shape", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTooManyFiles):
		return pkg.NewDomainErrorSimple("TOO_MANY_FILES", "At most 5 files per upload", http.StatusBadRequest)
	case errors.Is(err, storage.ErrFileTooLarge):
		return pkg.NewDomainErrorSimple("FILE_TOO_LARGE", "File exceeds the 10MB limit", http.StatusRequestEntityTooLarge)
	case errors.Is(err, files.ErrUnsupportedFileType):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_FILE_TYPE", "Only PDF, DOCX and TXT files are accepted", http.StatusUnsupportedMediaType)
	case errors.Is(err, usecase.ErrInvalidTaskDuration):
		return pkg.NewDomainErrorSimple("INVALID_TASK_DURATION", "Task duration must be at least one day", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDependencyCycle):
		return pkg.NewDomainErrorSimple("DEPENDENCY_CYCLE", "Work breakdown dependencies form a cycle", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBudgetExceeded):
		return pkg.NewDomainErrorSimple("BUDGET_EXCEEDED", "Milestone percentages exceed 100%", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPercentage):
		return pkg.NewDomainErrorSimple("INVALID_PERCENTAGE", "Milestone percentage must be within [0, 100]", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPhaseDates):
		return pkg.NewDomainErrorSimple("INVALID_PHASE_DATES", "Phase end date precedes its start date", http.StatusBadRequest)
	case errors.As(err, &dueDate):
		return pkg.NewDomainErrorSimple("INVALID_DUE_DATE", "Milestone due date falls outside its phase", http.StatusBadRequest).
			WithDetails(map[string]interface{}{"phase": dueDate.Phase, "milestone": dueDate.Milestone})
	case errors.As(err, &unknownTask):
		return pkg.NewDomainErrorSimple("UNKNOWN_TASK", "Phase references a task that does not exist", http.StatusBadRequest).
			WithDetails(map[string]interface{}{"task_id": unknownTask.TaskID})
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
