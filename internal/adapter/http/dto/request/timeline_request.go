package request

import (
	"errors"
	"fmt"
	"time"

	"propdraft/internal/domain/entities"
)

var (
	ErrInvalidDateFormat = errors.New("invalid date format")
)

type MilestoneRequest struct {
	Name       string  `json:"name" binding:"required"`
	Percentage float64 `json:"percentage"`
	DueDate    string  `json:"due_date"`
}

type PhaseRequest struct {
	ID         string             `json:"id"`
	Phase      string             `json:"phase" binding:"required"`
	StartDate  string             `json:"start_date"`
	EndDate    string             `json:"end_date"`
	Tasks      []string           `json:"tasks"`
	Milestones []MilestoneRequest `json:"milestones"`
}

// TimelineRequest replaces the whole phase list in one batch. Dates are
// accepted as RFC3339 or plain YYYY-MM-DD.
type TimelineRequest struct {
	Phases []PhaseRequest `json:"phases" binding:"required"`
}

type MilestonePercentageRequest struct {
	PhaseIndex     *int    `json:"phase_index" binding:"required"`
	MilestoneIndex *int    `json:"milestone_index" binding:"required"`
	Percentage     float64 `json:"percentage"`
}

func (r TimelineRequest) ToPhases() ([]entities.Phase, error) {
	phases := make([]entities.Phase, 0, len(r.Phases))
	for _, p := range r.Phases {
		start, err := parseOptionalDate(p.StartDate)
		if err != nil {
			return nil, err
		}
		end, err := parseOptionalDate(p.EndDate)
		if err != nil {
			return nil, err
		}

		var milestones []entities.Milestone
		for _, m := range p.Milestones {
			due, err := parseOptionalDate(m.DueDate)
			if err != nil {
				return nil, err
			}
			milestones = append(milestones, entities.Milestone{
				Name:       m.Name,
				Percentage: m.Percentage,
				DueDate:    due,
			})
		}

		phases = append(phases, entities.Phase{
			ID:         p.ID,
			Phase:      p.Phase,
			StartDate:  start,
			EndDate:    end,
			Tasks:      p.Tasks,
			Milestones: milestones,
		})
	}
	return phases, nil
}

func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
}
