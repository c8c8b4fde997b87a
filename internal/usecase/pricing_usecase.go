package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"propdraft/internal/domain/entities"
	"propdraft/internal/usecase/interfaces"
)

var (
	ErrProposalNotFound  = errors.New("proposal not found")
	ErrInvalidProposalID = errors.New("invalid proposal id")
	ErrPricingNotReady   = errors.New("pricing not allowed in current status")
	ErrInvalidUnitPrice  = errors.New("invalid unit price")
)

// InvalidDeliverableIDsError reports pricing items whose deliverable
// reference does not resolve. The whole batch is rejected; nothing is
// partially applied.
type InvalidDeliverableIDsError struct {
	IDs []string
}

func (e *InvalidDeliverableIDsError) Error() string {
	return fmt.Sprintf("invalid deliverable ids: %s", strings.Join(e.IDs, ", "))
}

// PricingNotReadyError carries the status that blocked a pricing edit so the
// caller can see how far the proposal still has to advance. It unwraps to
// ErrPricingNotReady.
type PricingNotReadyError struct {
	Status entities.ProposalStatus
}

func (e *PricingNotReadyError) Error() string {
	return fmt.Sprintf("pricing not allowed in status %s", e.Status)
}

func (e *PricingNotReadyError) Unwrap() error {
	return ErrPricingNotReady
}

// IPricingUseCase exposes the pricing operations of a proposal.
//
// Pricing is only legal once the proposal has reached StatusComplete; the
// deliverables being priced simply do not exist before full generation.

type IPricingUseCase interface {
	ApplyItems(ctx context.Context, proposalID, userID string, items []entities.PricingItem) (entities.Proposal, error)
}

type PricingUseCase struct {
	repo interfaces.IProposalRepository
}

var _ IPricingUseCase = (*PricingUseCase)(nil)

func NewPricingUseCase(repo interfaces.IProposalRepository) *PricingUseCase {
	return &PricingUseCase{repo: repo}
}

// ApplyItems wholesale-replaces pricing.items, recomputes the total and
// rescales every milestone payment. When a timeline exists but milestones do
// not yet, one default milestone per phase is synthesized (percentage split
// evenly, due at phase end) so pricing can be computed before explicit
// milestone editing.
func (u *PricingUseCase) ApplyItems(ctx context.Context, proposalID, userID string, items []entities.PricingItem) (entities.Proposal, error) {
	p, err := loadOwnedProposal(ctx, u.repo, proposalID, userID)
	if err != nil {
		return entities.Proposal{}, err
	}
	if !p.Status.CanEditPricing() {
		log.Printf("[pricing][usecase] rejected in status=%s proposal_id=%s", p.Status, p.ID)
		return entities.Proposal{}, &PricingNotReadyError{Status: p.Status}
	}

	for _, it := range items {
		if it.UnitPrice <= 0 {
			return entities.Proposal{}, ErrInvalidUnitPrice
		}
	}

	total, err := ComputeTotal(p.Content.Deliverables, items)
	if err != nil {
		return entities.Proposal{}, err
	}

	p.Pricing.Items = items
	p.Pricing.Total = total
	ensureMilestones(&p)
	rescaleMilestonePayments(&p)

	saved, err := u.repo.Save(ctx, p)
	if err != nil {
		return entities.Proposal{}, err
	}
	log.Printf("[pricing][usecase] items applied proposal_id=%s items=%d total=%.2f", saved.ID, len(items), saved.Pricing.Total)
	return saved, nil
}

// ComputeTotal sums unitPrice x deliverable count over the pricing items. A
// dangling deliverable reference fails the whole computation, never a skip.
func ComputeTotal(deliverables []entities.Deliverable, items []entities.PricingItem) (float64, error) {
	byID := make(map[string]entities.Deliverable, len(deliverables))
	for _, d := range deliverables {
		byID[d.ID] = d
	}

	var invalid []string
	total := 0.0
	for _, it := range items {
		d, ok := byID[it.DeliverableID]
		if !ok {
			invalid = append(invalid, it.DeliverableID)
			continue
		}
		total += it.UnitPrice * float64(d.Count)
	}
	if len(invalid) > 0 {
		return 0, &InvalidDeliverableIDsError{IDs: invalid}
	}
	return round2(total), nil
}

// ensureMilestones synthesizes one default milestone per phase when a
// timeline exists without any.
func ensureMilestones(p *entities.Proposal) {
	if len(p.Content.Timeline) == 0 {
		return
	}
	for _, phase := range p.Content.Timeline {
		if len(phase.Milestones) > 0 {
			return
		}
	}

	// Each share is rounded to 2 decimals; the last phase absorbs the
	// remainder so the percentages always sum to exactly 100.
	n := len(p.Content.Timeline)
	share := round2(100 / float64(n))
	for i := range p.Content.Timeline {
		phase := &p.Content.Timeline[i]
		percentage := share
		if i == n-1 {
			percentage = round2(100 - share*float64(n-1))
		}
		phase.Milestones = []entities.Milestone{{
			Name:       "Initial",
			Percentage: percentage,
			DueDate:    phase.EndDate,
		}}
	}
}

// rescaleMilestonePayments re-derives every milestone payment from the
// current total. Called whenever pricing.total or any percentage changes.
func rescaleMilestonePayments(p *entities.Proposal) {
	for i := range p.Content.Timeline {
		for j := range p.Content.Timeline[i].Milestones {
			m := &p.Content.Timeline[i].Milestones[j]
			m.PaymentAmount = round2(p.Pricing.Total * m.Percentage / 100)
		}
	}
}

// loadOwnedProposal resolves a proposal scoped to its owner. A proposal that
// exists but belongs to someone else is reported as not found.
func loadOwnedProposal(ctx context.Context, repo interfaces.IProposalRepository, proposalID, userID string) (entities.Proposal, error) {
	proposalID = strings.TrimSpace(proposalID)
	if proposalID == "" {
		return entities.Proposal{}, ErrInvalidProposalID
	}

	p, err := repo.GetByID(ctx, proposalID)
	if err != nil {
		return entities.Proposal{}, err
	}
	if p.ID == "" || p.UserID != userID {
		return entities.Proposal{}, ErrProposalNotFound
	}
	return p, nil
}
