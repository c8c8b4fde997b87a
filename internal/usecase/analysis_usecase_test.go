package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"propdraft/internal/domain/entities"
	mock_interfaces "propdraft/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func draftProposal() entities.Proposal {
	return entities.Proposal{
		ID:     "prop-1",
		UserID: "user-1",
		Title:  "Site build",
		Status: entities.StatusDraft,
		Files: []entities.ProposalFile{
			{OriginalName: "brief.pdf", Path: "uploads/brief.pdf", FileType: "application/pdf"},
		},
	}
}

func TestAnalysisUseCase_Process(t *testing.T) {
	scopePayload := json.RawMessage(`{
		"scopeOfWork": "Build a site",
		"deliverables": [{"item": "Pages", "unit": "pages", "count": "5 pages", "description": "landing"}]
	}`)

	t.Run("only legal from draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewAnalysisUseCase(repo, nil, nil)

		p := draftProposal()
		p.Status = entities.StatusReviewing
		repo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(p, nil)

		_, err := uc.Process(context.Background(), "prop-1", "user-1", "")
		if !errors.Is(err, ErrAnalysisNotAllowed) {
			t.Fatalf("expected ErrAnalysisNotAllowed, got %v", err)
		}
	})

	t.Run("collaborator failure leaves status untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		client := mock_interfaces.NewMockIAnalysisClient(ctrl)
		extractor := mock_interfaces.NewMockITextExtractor(ctrl)
		uc := NewAnalysisUseCase(repo, client, extractor)

		repo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(draftProposal(), nil)
		extractor.EXPECT().ExtractText(gomock.Any(), "uploads/brief.pdf", "application/pdf").Return("the brief", nil)
		client.EXPECT().AnalyzeScope(gomock.Any(), "the brief", "fast please").Return(nil, errors.New("model down"))
		// No Save: status must not advance.

		_, err := uc.Process(context.Background(), "prop-1", "user-1", "fast please")
		if !errors.Is(err, ErrCollaboratorFailed) {
			t.Fatalf("expected ErrCollaboratorFailed, got %v", err)
		}
	})

	t.Run("success normalizes deliverables and advances status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		client := mock_interfaces.NewMockIAnalysisClient(ctrl)
		extractor := mock_interfaces.NewMockITextExtractor(ctrl)
		uc := NewAnalysisUseCase(repo, client, extractor)

		repo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(draftProposal(), nil)
		extractor.EXPECT().ExtractText(gomock.Any(), gomock.Any(), gomock.Any()).Return("the brief", nil)
		client.EXPECT().AnalyzeScope(gomock.Any(), "the brief", "").Return(scopePayload, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Proposal) (entities.Proposal, error) {
				if p.Status != entities.StatusInitialAnalysis {
					t.Fatalf("expected initial_analysis, got %s", p.Status)
				}
				if len(p.Content.Deliverables) != 1 || p.Content.Deliverables[0].Count != 5 {
					t.Fatalf("expected normalized deliverables, got %+v", p.Content.Deliverables)
				}
				if p.Content.Deliverables[0].ID == "" {
					t.Fatalf("expected generated deliverable id")
				}
				return p, nil
			},
		)

		if _, err := uc.Process(context.Background(), "prop-1", "user-1", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestAnalysisUseCase_Reanalyze(t *testing.T) {
	t.Run("requires existing scope", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewAnalysisUseCase(repo, nil, nil)

		p := draftProposal()
		p.Status = entities.StatusInitialAnalysis
		repo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(p, nil)

		_, err := uc.Reanalyze(context.Background(), "prop-1", "user-1", "feedback")
		if !errors.Is(err, ErrScopeMissing) {
			t.Fatalf("expected ErrScopeMissing, got %v", err)
		}
	})

	t.Run("preserves later sections and drops orphaned pricing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		client := mock_interfaces.NewMockIAnalysisClient(ctrl)
		uc := NewAnalysisUseCase(repo, client, nil)

		p := completeProposal()
		p.Status = entities.StatusReviewing
		p.Pricing.Items = []entities.PricingItem{
			{DeliverableID: "A", UnitPrice: 10},
			{DeliverableID: "B", UnitPrice: 5},
		}
		p.Pricing.Total = 40
		repo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(p, nil)

		// Fresh analysis keeps deliverable A, renames B away.
		payload := json.RawMessage(`{
			"scopeOfWork": "Refined scope",
			"deliverables": [{"id": "A", "item": "Pages", "unit": "pages", "count": 3}]
		}`)
		client.EXPECT().Reanalyze(gomock.Any(), "Build the site", gomock.Any(), gomock.Any(), "tighter").Return(payload, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Proposal) (entities.Proposal, error) {
				if p.Status != entities.StatusReviewing {
					t.Fatalf("expected reviewing, got %s", p.Status)
				}
				if len(p.Content.WorkBreakdown) == 0 || len(p.Content.Timeline) == 0 {
					t.Fatalf("later sections must survive re-analysis")
				}
				if len(p.Pricing.Items) != 1 || p.Pricing.Items[0].DeliverableID != "A" {
					t.Fatalf("expected orphaned pricing dropped, got %+v", p.Pricing.Items)
				}
				if p.Pricing.Total != 30 {
					t.Fatalf("expected total recomputed to 30, got %v", p.Pricing.Total)
				}
				return p, nil
			},
		)

		if _, err := uc.Reanalyze(context.Background(), "prop-1", "user-1", "tighter"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestAnalysisUseCase_Generate(t *testing.T) {
	t.Run("requires scope and deliverables", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewAnalysisUseCase(repo, nil, nil)

		p := draftProposal()
		p.Status = entities.StatusInitialAnalysis
		p.Content.ScopeOfWork = "scope"
		repo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(p, nil)

		_, err := uc.Generate(context.Background(), "prop-1", "user-1")
		if !errors.Is(err, ErrGenerationNotReady) {
			t.Fatalf("expected ErrGenerationNotReady, got %v", err)
		}
	})

	t.Run("merges generated sections over scope and deliverables", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		client := mock_interfaces.NewMockIAnalysisClient(ctrl)
		uc := NewAnalysisUseCase(repo, client, nil)

		p := draftProposal()
		p.Status = entities.StatusReviewing
		p.Content.ScopeOfWork = "Build the site"
		p.Content.Deliverables = []entities.Deliverable{{ID: "A", Item: "Pages", Count: 3}}
		repo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(p, nil)

		payload := json.RawMessage(`{
			"executiveSummary": "We will build the site.",
			"requirements": ["responsive", "accessible"],
			"workBreakdown": [
				{"id": "t1", "task": "Design", "duration": "1 week"},
				{"id": "t2", "task": "Build", "duration": 10, "dependencies": ["t1"]}
			],
			"timeline": [
				{"phase": "Phase 1", "startDate": "2024-01-01", "endDate": "2024-01-31", "tasks": ["t1", "t2"]}
			]
		}`)
		client.EXPECT().GenerateProposal(gomock.Any(), "Build the site", gomock.Any(), gomock.Any(), gomock.Any()).Return(payload, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Proposal) (entities.Proposal, error) {
				if p.Status != entities.StatusComplete {
					t.Fatalf("expected complete, got %s", p.Status)
				}
				if p.Content.ScopeOfWork != "Build the site" {
					t.Fatalf("scope must survive generation")
				}
				if len(p.Content.WorkBreakdown) != 2 || p.Content.WorkBreakdown[0].Duration != 7 {
					t.Fatalf("expected parsed breakdown, got %+v", p.Content.WorkBreakdown)
				}
				if len(p.Content.Timeline) != 1 || len(p.Content.Timeline[0].Tasks) != 2 {
					t.Fatalf("expected timeline with resolved tasks, got %+v", p.Content.Timeline)
				}
				return p, nil
			},
		)

		if _, err := uc.Generate(context.Background(), "prop-1", "user-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("malformed payload is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		client := mock_interfaces.NewMockIAnalysisClient(ctrl)
		uc := NewAnalysisUseCase(repo, client, nil)

		p := draftProposal()
		p.Status = entities.StatusReviewing
		p.Content.ScopeOfWork = "scope"
		p.Content.Deliverables = []entities.Deliverable{{ID: "A", Count: 1}}
		repo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(p, nil)
		client.EXPECT().GenerateProposal(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(json.RawMessage(`not json`), nil)

		_, err := uc.Generate(context.Background(), "prop-1", "user-1")
		if !errors.Is(err, ErrMalformedAnalysis) {
			t.Fatalf("expected ErrMalformedAnalysis, got %v", err)
		}
	})
}
