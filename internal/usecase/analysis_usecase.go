package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"propdraft/internal/domain/entities"
	"propdraft/internal/usecase/interfaces"
)

var (
	ErrAnalysisNotAllowed = errors.New("analysis not allowed in current status")
	ErrScopeMissing       = errors.New("proposal has no scope of work yet")
	ErrGenerationNotReady = errors.New("proposal not ready for generation")
	ErrCollaboratorFailed = errors.New("analysis collaborator failed")
	ErrMalformedAnalysis  = errors.New("malformed analysis payload")
)

// IAnalysisUseCase drives the analysis passes that advance the proposal
// status. Each pass awaits the collaborator sequentially; the status only
// moves after the call returns successfully, and a failure leaves the
// proposal exactly as it was.

type IAnalysisUseCase interface {
	// Process runs the first analysis pass: extract text from the uploaded
	// files, derive scope and deliverables. draft -> initial_analysis.
	Process(ctx context.Context, proposalID, userID, userRequirements string) (entities.Proposal, error)

	// Reanalyze re-runs scope/deliverable analysis with user feedback.
	// initial_analysis|reviewing -> reviewing.
	Reanalyze(ctx context.Context, proposalID, userID, userFeedback string) (entities.Proposal, error)

	// Generate produces the full proposal (summary, requirements, work
	// breakdown, timeline). initial_analysis|reviewing -> complete.
	Generate(ctx context.Context, proposalID, userID string) (entities.Proposal, error)
}

type AnalysisUseCase struct {
	repo      interfaces.IProposalRepository
	client    interfaces.IAnalysisClient
	extractor interfaces.ITextExtractor
}

var _ IAnalysisUseCase = (*AnalysisUseCase)(nil)

func NewAnalysisUseCase(repo interfaces.IProposalRepository, client interfaces.IAnalysisClient, extractor interfaces.ITextExtractor) *AnalysisUseCase {
	return &AnalysisUseCase{repo: repo, client: client, extractor: extractor}
}

func (u *AnalysisUseCase) Process(ctx context.Context, proposalID, userID, userRequirements string) (entities.Proposal, error) {
	p, err := loadOwnedProposal(ctx, u.repo, proposalID, userID)
	if err != nil {
		return entities.Proposal{}, err
	}
	if !p.Status.CanStartAnalysis() {
		log.Printf("[analysis][usecase] process rejected status=%s proposal_id=%s", p.Status, p.ID)
		return entities.Proposal{}, ErrAnalysisNotAllowed
	}
	p.UserRequirements = userRequirements

	log.Printf("[analysis][usecase] extracting text proposal_id=%s files=%d", p.ID, len(p.Files))
	texts := make([]string, 0, len(p.Files))
	for _, f := range p.Files {
		text, err := u.extractor.ExtractText(ctx, f.Path, f.FileType)
		if err != nil {
			return entities.Proposal{}, fmt.Errorf("%w: extract %s: %v", ErrCollaboratorFailed, f.OriginalName, err)
		}
		texts = append(texts, text)
	}

	raw, err := u.client.AnalyzeScope(ctx, strings.Join(texts, "\n\n"), p.UserRequirements)
	if err != nil {
		return entities.Proposal{}, fmt.Errorf("%w: %v", ErrCollaboratorFailed, err)
	}
	if err := applyScopeAnalysis(&p, raw); err != nil {
		return entities.Proposal{}, err
	}

	p.Status = entities.StatusInitialAnalysis
	saved, err := u.repo.Save(ctx, p)
	if err != nil {
		return entities.Proposal{}, err
	}
	log.Printf("[analysis][usecase] process complete proposal_id=%s deliverables=%d", saved.ID, len(saved.Content.Deliverables))
	return saved, nil
}

func (u *AnalysisUseCase) Reanalyze(ctx context.Context, proposalID, userID, userFeedback string) (entities.Proposal, error) {
	p, err := loadOwnedProposal(ctx, u.repo, proposalID, userID)
	if err != nil {
		return entities.Proposal{}, err
	}
	if !p.Status.CanReanalyze() {
		log.Printf("[analysis][usecase] reanalyze rejected status=%s proposal_id=%s", p.Status, p.ID)
		return entities.Proposal{}, ErrAnalysisNotAllowed
	}
	if strings.TrimSpace(p.Content.ScopeOfWork) == "" {
		return entities.Proposal{}, ErrScopeMissing
	}
	p.UserFeedback = userFeedback

	raw, err := u.client.Reanalyze(ctx, p.Content.ScopeOfWork, p.Content.Deliverables, p.UserRequirements, p.UserFeedback)
	if err != nil {
		return entities.Proposal{}, fmt.Errorf("%w: %v", ErrCollaboratorFailed, err)
	}
	if err := applyScopeAnalysis(&p, raw); err != nil {
		return entities.Proposal{}, err
	}

	p.Status = entities.StatusReviewing
	saved, err := u.repo.Save(ctx, p)
	if err != nil {
		return entities.Proposal{}, err
	}
	log.Printf("[analysis][usecase] reanalyze complete proposal_id=%s deliverables=%d", saved.ID, len(saved.Content.Deliverables))
	return saved, nil
}

func (u *AnalysisUseCase) Generate(ctx context.Context, proposalID, userID string) (entities.Proposal, error) {
	p, err := loadOwnedProposal(ctx, u.repo, proposalID, userID)
	if err != nil {
		return entities.Proposal{}, err
	}
	if !p.Status.CanGenerate() {
		log.Printf("[analysis][usecase] generate rejected status=%s proposal_id=%s", p.Status, p.ID)
		return entities.Proposal{}, ErrAnalysisNotAllowed
	}
	if strings.TrimSpace(p.Content.ScopeOfWork) == "" || len(p.Content.Deliverables) == 0 {
		return entities.Proposal{}, ErrGenerationNotReady
	}

	raw, err := u.client.GenerateProposal(ctx, p.Content.ScopeOfWork, p.Content.Deliverables, p.UserRequirements, p.UserFeedback)
	if err != nil {
		return entities.Proposal{}, fmt.Errorf("%w: %v", ErrCollaboratorFailed, err)
	}

	var full fullProposal
	if err := json.Unmarshal(raw, &full); err != nil {
		return entities.Proposal{}, fmt.Errorf("%w: %v", ErrMalformedAnalysis, err)
	}

	// Merge over the existing content: scope and deliverables survive,
	// generated sections are added.
	p.Content.ExecutiveSummary = full.ExecutiveSummary
	p.Content.Requirements = full.Requirements
	p.Content.WorkBreakdown = NormalizeWorkBreakdown(full.WorkBreakdown)
	p.Content.Timeline = NormalizeTimeline(full.Timeline, p.Content.WorkBreakdown)
	rescaleMilestonePayments(&p)

	p.Status = entities.StatusComplete
	saved, err := u.repo.Save(ctx, p)
	if err != nil {
		return entities.Proposal{}, err
	}
	log.Printf("[analysis][usecase] generate complete proposal_id=%s tasks=%d phases=%d", saved.ID, len(saved.Content.WorkBreakdown), len(saved.Content.Timeline))
	return saved, nil
}

// applyScopeAnalysis replaces scope and deliverables from a collaborator
// payload. Later sections (work breakdown, timeline) are preserved; pricing
// items that no longer resolve against the fresh deliverables are dropped
// and the totals recomputed, so re-analysis never leaves dangling
// references behind.
func applyScopeAnalysis(p *entities.Proposal, raw json.RawMessage) error {
	var analysis scopeAnalysis
	if err := json.Unmarshal(raw, &analysis); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedAnalysis, err)
	}
	p.Content.ScopeOfWork = analysis.ScopeOfWork
	p.Content.Deliverables = NormalizeDeliverables(analysis.Deliverables)
	dropOrphanedPricing(p)
	return nil
}
