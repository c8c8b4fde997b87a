package response

import (
	"time"

	"propdraft/internal/domain/entities"
)

type ProposalResponse struct {
	ID               string                  `json:"id"`
	UserID           string                  `json:"user_id"`
	Title            string                  `json:"title"`
	Description      string                  `json:"description,omitempty"`
	Status           string                  `json:"status"`
	Files            []entities.ProposalFile `json:"files,omitempty"`
	UserRequirements string                  `json:"user_requirements,omitempty"`
	UserFeedback     string                  `json:"user_feedback,omitempty"`
	Content          entities.Content        `json:"content"`
	Pricing          entities.Pricing        `json:"pricing"`
	CreatedAt        time.Time               `json:"created_at"`
	UpdatedAt        time.Time               `json:"updated_at"`
}

func FromProposal(p entities.Proposal) ProposalResponse {
	return ProposalResponse{
		ID:               p.ID,
		UserID:           p.UserID,
		Title:            p.Title,
		Description:      p.Description,
		Status:           string(p.Status),
		Files:            p.Files,
		UserRequirements: p.UserRequirements,
		UserFeedback:     p.UserFeedback,
		Content:          p.Content,
		Pricing:          p.Pricing,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func FromProposals(ps []entities.Proposal) []ProposalResponse {
	out := make([]ProposalResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProposal(p))
	}
	return out
}

// MilestoneUpdateResponse reports the percentage that was actually stored,
// which may be lower than the requested value when the remaining budget
// forced a clamp.
type MilestoneUpdateResponse struct {
	Proposal          ProposalResponse `json:"proposal"`
	AppliedPercentage float64          `json:"applied_percentage"`
	Adjusted          bool             `json:"adjusted"`
}

func FromMilestoneUpdate(p entities.Proposal, applied float64, adjusted bool) MilestoneUpdateResponse {
	return MilestoneUpdateResponse{
		Proposal:          FromProposal(p),
		AppliedPercentage: applied,
		Adjusted:          adjusted,
	}
}
