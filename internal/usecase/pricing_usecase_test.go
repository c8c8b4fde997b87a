package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"propdraft/internal/domain/entities"
	mock_interfaces "propdraft/internal/usecase/interfaces/mocks"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

// completeProposal is a generated proposal ready for pricing edits.
func completeProposal() entities.Proposal {
	return entities.Proposal{
		ID:     "prop-1",
		UserID: "user-1",
		Title:  "Site build",
		Status: entities.StatusComplete,
		Content: entities.Content{
			ScopeOfWork: "Build the site",
			Deliverables: []entities.Deliverable{
				{ID: "A", Item: "Pages", Unit: "pages", Count: 3},
				{ID: "B", Item: "Reports", Unit: "docs", Count: 2},
			},
			WorkBreakdown: []entities.Task{
				{ID: "t1", Task: "Design", Duration: 5},
				{ID: "t2", Task: "Build", Duration: 10, Dependencies: []string{"t1"}},
			},
			Timeline: []entities.Phase{
				{
					ID:        "ph1",
					Phase:     "Phase 1",
					StartDate: datePtr(2024, 1, 1),
					EndDate:   datePtr(2024, 1, 31),
					Tasks:     []string{"t1"},
				},
				{
					ID:        "ph2",
					Phase:     "Phase 2",
					StartDate: datePtr(2024, 2, 1),
					EndDate:   datePtr(2024, 2, 28),
					Tasks:     []string{"t2"},
				},
			},
		},
	}
}

func TestComputeTotal(t *testing.T) {
	deliverables := []entities.Deliverable{
		{ID: "A", Count: 3},
		{ID: "B", Count: 2},
	}

	t.Run("sums unit price times count", func(t *testing.T) {
		total, err := ComputeTotal(deliverables, []entities.PricingItem{
			{DeliverableID: "A", UnitPrice: 10},
			{DeliverableID: "B", UnitPrice: 5},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if total != 40 {
			t.Fatalf("expected 40, got %v", total)
		}
	})

	t.Run("dangling reference fails the whole batch", func(t *testing.T) {
		_, err := ComputeTotal(deliverables, []entities.PricingItem{
			{DeliverableID: "A", UnitPrice: 10},
			{DeliverableID: "ghost", UnitPrice: 5},
		})
		var refErr *InvalidDeliverableIDsError
		if !errors.As(err, &refErr) {
			t.Fatalf("expected InvalidDeliverableIDsError, got %v", err)
		}
		if len(refErr.IDs) != 1 || refErr.IDs[0] != "ghost" {
			t.Fatalf("expected offending id ghost, got %v", refErr.IDs)
		}
	})
}

func TestPricingUseCase_ApplyItems(t *testing.T) {
	items := []entities.PricingItem{
		{DeliverableID: "A", UnitPrice: 10},
		{DeliverableID: "B", UnitPrice: 5},
	}

	t.Run("rejected before generation completes", func(t *testing.T) {
		for _, status := range []entities.ProposalStatus{
			entities.StatusDraft,
			entities.StatusInitialAnalysis,
			entities.StatusReviewing,
		} {
			ctrl := gomock.NewController(t)
			repo := mock_interfaces.NewMockIProposalRepository(ctrl)
			uc := NewPricingUseCase(repo)

			p := completeProposal()
			p.Status = status
			repo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(p, nil)

			_, err := uc.ApplyItems(context.Background(), "prop-1", "user-1", items)
			if !errors.Is(err, ErrPricingNotReady) {
				t.Fatalf("status %s: expected ErrPricingNotReady, got %v", status, err)
			}
			var notReady *PricingNotReadyError
			if !errors.As(err, &notReady) || notReady.Status != status {
				t.Fatalf("status %s: expected current status carried on the error, got %v", status, err)
			}
			ctrl.Finish()
		}
	})

	t.Run("invalid ids reject wholesale with no save", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewPricingUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(completeProposal(), nil)
		// No Save expectation: a rejected batch must not persist anything.

		_, err := uc.ApplyItems(context.Background(), "prop-1", "user-1", []entities.PricingItem{
			{DeliverableID: "ghost", UnitPrice: 9},
		})
		var refErr *InvalidDeliverableIDsError
		if !errors.As(err, &refErr) {
			t.Fatalf("expected InvalidDeliverableIDsError, got %v", err)
		}
	})

	t.Run("replaces items and synthesizes default milestones", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewPricingUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(completeProposal(), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Proposal{})).DoAndReturn(
			func(_ context.Context, p entities.Proposal) (entities.Proposal, error) {
				if p.Pricing.Total != 40 {
					t.Fatalf("expected total 40, got %v", p.Pricing.Total)
				}
				for _, phase := range p.Content.Timeline {
					if len(phase.Milestones) != 1 {
						t.Fatalf("expected one default milestone per phase")
					}
					m := phase.Milestones[0]
					if m.Percentage != 50 {
						t.Fatalf("expected even split, got %v", m.Percentage)
					}
					if m.PaymentAmount != 20 {
						t.Fatalf("expected payment 20, got %v", m.PaymentAmount)
					}
					if m.DueDate == nil || !m.DueDate.Equal(*phase.EndDate) {
						t.Fatalf("expected due date at phase end")
					}
				}
				return p, nil
			},
		)

		saved, err := uc.ApplyItems(context.Background(), "prop-1", "user-1", items)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(saved.Pricing.Items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(saved.Pricing.Items))
		}
	})

	t.Run("synthesized milestones sum to an exact budget", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewPricingUseCase(repo)

		// Six phases: an unrounded 100/6 split would drift past 100%
		// and fail the timeline budget check on the next save.
		p := completeProposal()
		p.Content.Timeline = nil
		for i := 0; i < 6; i++ {
			p.Content.Timeline = append(p.Content.Timeline, entities.Phase{
				ID:    uuid.NewString(),
				Phase: fmt.Sprintf("Phase %d", i+1),
			})
		}
		repo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(p, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Proposal) (entities.Proposal, error) {
				if err := ValidateTimeline(p.Content.Timeline, p.Content.WorkBreakdown); err != nil {
					t.Fatalf("synthesized timeline fails validation: %v", err)
				}
				for i, phase := range p.Content.Timeline[:5] {
					if got := phase.Milestones[0].Percentage; got != 16.67 {
						t.Fatalf("phase %d: expected 16.67, got %v", i, got)
					}
				}
				if got := p.Content.Timeline[5].Milestones[0].Percentage; got != 16.65 {
					t.Fatalf("expected last phase to absorb the remainder at 16.65, got %v", got)
				}
				if total := TotalPercentage(p.Content.Timeline, -1); total > 100+budgetEpsilon {
					t.Fatalf("expected total within budget, got %v", total)
				}
				return p, nil
			},
		)

		if _, err := uc.ApplyItems(context.Background(), "prop-1", "user-1", items); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rescales existing milestones from the new total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewPricingUseCase(repo)

		p := completeProposal()
		p.Content.Timeline[0].Milestones = []entities.Milestone{{Name: "Kickoff", Percentage: 25}}
		p.Content.Timeline[1].Milestones = []entities.Milestone{{Name: "Delivery", Percentage: 75}}
		repo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(p, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Proposal) (entities.Proposal, error) {
				if got := p.Content.Timeline[0].Milestones[0].PaymentAmount; got != 10 {
					t.Fatalf("expected 10, got %v", got)
				}
				if got := p.Content.Timeline[1].Milestones[0].PaymentAmount; got != 30 {
					t.Fatalf("expected 30, got %v", got)
				}
				return p, nil
			},
		)

		if _, err := uc.ApplyItems(context.Background(), "prop-1", "user-1", items); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("other user's proposal is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewPricingUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(completeProposal(), nil)

		_, err := uc.ApplyItems(context.Background(), "prop-1", "someone-else", items)
		if !errors.Is(err, ErrProposalNotFound) {
			t.Fatalf("expected ErrProposalNotFound, got %v", err)
		}
	})
}
