package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"propdraft/internal/domain/entities"
	"propdraft/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrBudgetExceeded      = errors.New("milestone percentages exceed 100% across all phases")
	ErrInvalidPercentage   = errors.New("milestone percentage out of range")
	ErrInvalidPhaseDates   = errors.New("phase end date precedes start date")
	ErrPhaseNotFound       = errors.New("phase not found")
	ErrMilestoneNotFound   = errors.New("milestone not found")
	ErrDependencyCycle     = errors.New("work breakdown contains a dependency cycle")
	ErrInvalidTaskDuration = errors.New("task duration must be at least one day")
)

// budgetEpsilon absorbs float64 accumulation noise when summing milestone
// percentages against the 100% budget.
const budgetEpsilon = 1e-9

// InvalidDueDateError reports a milestone whose due date falls outside its
// phase's date span. The save is rejected, never clamped.
type InvalidDueDateError struct {
	Phase     string
	Milestone string
}

func (e *InvalidDueDateError) Error() string {
	return fmt.Sprintf("milestone %q due date outside phase %q date range", e.Milestone, e.Phase)
}

// UnknownTaskError reports a reference to a work-breakdown task that does
// not exist.
type UnknownTaskError struct {
	TaskID string
}

func (e *UnknownTaskError) Error() string {
	return fmt.Sprintf("unknown task reference %q", e.TaskID)
}

// ITimelineUseCase owns the phase/milestone engine: full timeline saves with
// hard validation, and single-milestone percentage edits with clamping.

type ITimelineUseCase interface {
	SaveTimeline(ctx context.Context, proposalID, userID string, phases []entities.Phase) (entities.Proposal, error)
	SetMilestonePercentage(ctx context.Context, proposalID, userID string, phaseIndex, milestoneIndex int, value float64) (entities.Proposal, float64, bool, error)
}

type TimelineUseCase struct {
	repo interfaces.IProposalRepository
}

var _ ITimelineUseCase = (*TimelineUseCase)(nil)

func NewTimelineUseCase(repo interfaces.IProposalRepository) *TimelineUseCase {
	return &TimelineUseCase{repo: repo}
}

// SaveTimeline replaces the whole phase list. Validation is all-or-nothing:
// any budget, date or reference violation rejects the save and leaves the
// stored timeline untouched. Payment amounts are re-derived from the current
// pricing total before persisting.
func (u *TimelineUseCase) SaveTimeline(ctx context.Context, proposalID, userID string, phases []entities.Phase) (entities.Proposal, error) {
	p, err := loadOwnedProposal(ctx, u.repo, proposalID, userID)
	if err != nil {
		return entities.Proposal{}, err
	}

	if err := ValidateTimeline(phases, p.Content.WorkBreakdown); err != nil {
		log.Printf("[timeline][usecase] save rejected proposal_id=%s err=%v", p.ID, err)
		return entities.Proposal{}, err
	}

	for i := range phases {
		if strings.TrimSpace(phases[i].ID) == "" {
			phases[i].ID = uuid.NewString()
		}
	}

	p.Content.Timeline = phases
	rescaleMilestonePayments(&p)

	saved, err := u.repo.Save(ctx, p)
	if err != nil {
		return entities.Proposal{}, err
	}
	log.Printf("[timeline][usecase] timeline saved proposal_id=%s phases=%d", saved.ID, len(phases))
	return saved, nil
}

// SetMilestonePercentage sets one milestone's percentage, clamped into
// [0, maxAllowed] where maxAllowed is whatever remains of the global 100%
// budget once every other milestone is counted. Clamping is
// silent-but-observable: the applied value and an adjusted flag are returned
// instead of an error.
func (u *TimelineUseCase) SetMilestonePercentage(ctx context.Context, proposalID, userID string, phaseIndex, milestoneIndex int, value float64) (entities.Proposal, float64, bool, error) {
	p, err := loadOwnedProposal(ctx, u.repo, proposalID, userID)
	if err != nil {
		return entities.Proposal{}, 0, false, err
	}

	if phaseIndex < 0 || phaseIndex >= len(p.Content.Timeline) {
		return entities.Proposal{}, 0, false, ErrPhaseNotFound
	}
	phase := &p.Content.Timeline[phaseIndex]
	if milestoneIndex < 0 || milestoneIndex >= len(phase.Milestones) {
		return entities.Proposal{}, 0, false, ErrMilestoneNotFound
	}

	otherPhases := TotalPercentage(p.Content.Timeline, phaseIndex)
	otherMilestones := 0.0
	for i, m := range phase.Milestones {
		if i != milestoneIndex {
			otherMilestones += m.Percentage
		}
	}

	maxAllowed := 100 - (otherPhases + otherMilestones)
	if maxAllowed < 0 {
		maxAllowed = 0
	}
	applied := value
	if applied > maxAllowed {
		applied = maxAllowed
	}
	if applied < 0 {
		applied = 0
	}
	adjusted := applied != value

	m := &phase.Milestones[milestoneIndex]
	m.Percentage = applied
	m.PaymentAmount = round2(p.Pricing.Total * applied / 100)

	saved, err := u.repo.Save(ctx, p)
	if err != nil {
		return entities.Proposal{}, 0, false, err
	}
	if adjusted {
		log.Printf("[timeline][usecase] percentage clamped proposal_id=%s phase=%d milestone=%d requested=%.2f applied=%.2f", saved.ID, phaseIndex, milestoneIndex, value, applied)
	}
	return saved, applied, adjusted, nil
}

// TotalPercentage sums milestone percentages across all phases, optionally
// skipping one phase under active edit (pass -1 to skip none) so candidate
// values for that phase can be checked against the remaining budget without
// double counting.
func TotalPercentage(phases []entities.Phase, excludingPhaseIndex int) float64 {
	total := 0.0
	for i, phase := range phases {
		if i == excludingPhaseIndex {
			continue
		}
		for _, m := range phase.Milestones {
			total += m.Percentage
		}
	}
	return total
}

// ValidateTimeline enforces the timeline invariants against a candidate
// phase list: phase date ordering, milestone percentage range, the global
// 100% budget, due dates inside their phase span (skipped when either phase
// date is absent), and task references resolving into the work breakdown.
// A zero percentage is legal: the single-milestone setter clamps into
// [0, maxAllowed], so stored timelines may carry clamped-out milestones.
func ValidateTimeline(phases []entities.Phase, breakdown []entities.Task) error {
	known := make(map[string]bool, len(breakdown))
	for _, t := range breakdown {
		known[t.ID] = true
	}

	budget := 0.0
	for _, phase := range phases {
		if phase.StartDate != nil && phase.EndDate != nil && phase.EndDate.Before(*phase.StartDate) {
			return ErrInvalidPhaseDates
		}
		for _, ref := range phase.Tasks {
			if !known[ref] {
				return &UnknownTaskError{TaskID: ref}
			}
		}
		for _, m := range phase.Milestones {
			if m.Percentage < 0 || m.Percentage > 100 {
				return ErrInvalidPercentage
			}
			budget += m.Percentage
			if phase.StartDate != nil && phase.EndDate != nil && m.DueDate != nil {
				if m.DueDate.Before(*phase.StartDate) || m.DueDate.After(*phase.EndDate) {
					return &InvalidDueDateError{Phase: phase.Phase, Milestone: m.Name}
				}
			}
		}
	}
	if budget > 100+budgetEpsilon {
		return ErrBudgetExceeded
	}
	return nil
}

// ValidateWorkBreakdown checks user-edited tasks: whole-day durations of at
// least 1, dependencies that resolve, and no cycles. Tasks come labeled by
// stable id; index-based references are never accepted.
func ValidateWorkBreakdown(tasks []entities.Task) error {
	known := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		known[t.ID] = true
	}

	adj := make(map[string][]string, len(tasks))
	for _, t := range tasks {
		if t.Duration < 1 {
			return ErrInvalidTaskDuration
		}
		for _, dep := range t.Dependencies {
			if !known[dep] {
				return &UnknownTaskError{TaskID: dep}
			}
			adj[t.ID] = append(adj[t.ID], dep)
		}
	}

	const (
		unvisited = 0
		visiting  = 1
		done      = 2
	)
	state := make(map[string]int, len(tasks))
	var visit func(id string) bool
	visit = func(id string) bool {
		switch state[id] {
		case visiting:
			return false
		case done:
			return true
		}
		state[id] = visiting
		for _, dep := range adj[id] {
			if !visit(dep) {
				return false
			}
		}
		state[id] = done
		return true
	}
	for _, t := range tasks {
		if !visit(t.ID) {
			return ErrDependencyCycle
		}
	}
	return nil
}
