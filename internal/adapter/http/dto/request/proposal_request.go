package request

import (
	"encoding/json"
	"strings"
)

type CreateProposalRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type UpdateTitleRequest struct {
	Title string `json:"title" binding:"required"`
}

func (r UpdateTitleRequest) ResolveTitle() string {
	return strings.TrimSpace(r.Title)
}

type UpdateRequirementsRequest struct {
	UserRequirements string `json:"user_requirements" binding:"required"`
}

// SectionUpdateRequest carries the replacement value for one content
// section. The section name comes from the URL path; the value shape
// depends on the section and is validated by the use case.
type SectionUpdateRequest struct {
	Value json.RawMessage `json:"value" binding:"required"`
}
