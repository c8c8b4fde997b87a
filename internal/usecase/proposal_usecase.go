package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"strings"
	"time"

	"propdraft/internal/domain/entities"
	"propdraft/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidSection        = errors.New("invalid section")
	ErrInvalidSectionPayload = errors.New("invalid section payload")
	ErrTooManyFiles          = errors.New("too many files in one upload")
	ErrStorageCleanup        = errors.New("failed to remove stored files")
)

const maxFilesPerUpload = 5

// Sections replaceable through ApplySection.
const (
	SectionExecutiveSummary = "executiveSummary"
	SectionScopeOfWork      = "scopeOfWork"
	SectionRequirements     = "requirements"
	SectionDeliverables     = "deliverables"
	SectionWorkBreakdown    = "workBreakdown"
	SectionTimeline         = "timeline"
)

// FileUpload is one file of a multipart upload batch.
type FileUpload struct {
	Name     string
	MimeType string
	Size     int64
	Content  io.Reader
}

// IProposalUseCase exposes proposal CRUD plus the section patch applier.
//
// Every mutation is a read-modify-write of the whole document scoped to the
// owning user, followed by one atomic Save. A rejected edit leaves the
// stored proposal untouched.

type IProposalUseCase interface {
	Create(ctx context.Context, userID, title, description string) (entities.Proposal, error)
	List(ctx context.Context, userID string) ([]entities.Proposal, error)
	Get(ctx context.Context, proposalID, userID string) (entities.Proposal, error)
	UpdateTitle(ctx context.Context, proposalID, userID, title string) (entities.Proposal, error)
	UpdateRequirements(ctx context.Context, proposalID, userID, requirements string) (entities.Proposal, error)
	Delete(ctx context.Context, proposalID, userID string) error
	AttachFiles(ctx context.Context, proposalID, userID string, uploads []FileUpload) (entities.Proposal, error)
	ApplySection(ctx context.Context, proposalID, userID, section string, value json.RawMessage) (entities.Proposal, error)
}

type ProposalUseCase struct {
	repo  interfaces.IProposalRepository
	files interfaces.IFileStore
}

var _ IProposalUseCase = (*ProposalUseCase)(nil)

func NewProposalUseCase(repo interfaces.IProposalRepository, files interfaces.IFileStore) *ProposalUseCase {
	return &ProposalUseCase{repo: repo, files: files}
}

func (u *ProposalUseCase) Create(ctx context.Context, userID, title, description string) (entities.Proposal, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		title = "Untitled Proposal"
	}

	now := time.Now().UTC()
	p := entities.Proposal{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       title,
		Description: strings.TrimSpace(description),
		Status:      entities.StatusDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return u.repo.Create(ctx, p)
}

func (u *ProposalUseCase) List(ctx context.Context, userID string) ([]entities.Proposal, error) {
	return u.repo.ListByUserID(ctx, userID)
}

func (u *ProposalUseCase) Get(ctx context.Context, proposalID, userID string) (entities.Proposal, error) {
	return loadOwnedProposal(ctx, u.repo, proposalID, userID)
}

func (u *ProposalUseCase) UpdateTitle(ctx context.Context, proposalID, userID, title string) (entities.Proposal, error) {
	p, err := loadOwnedProposal(ctx, u.repo, proposalID, userID)
	if err != nil {
		return entities.Proposal{}, err
	}
	title = strings.TrimSpace(title)
	if title == "" {
		title = "Untitled Proposal"
	}
	p.Title = title
	return u.repo.Save(ctx, p)
}

// UpdateRequirements stores the user's free-text requirements and resets the
// proposal to draft: re-seeding the inputs restarts the analysis flow.
func (u *ProposalUseCase) UpdateRequirements(ctx context.Context, proposalID, userID, requirements string) (entities.Proposal, error) {
	p, err := loadOwnedProposal(ctx, u.repo, proposalID, userID)
	if err != nil {
		return entities.Proposal{}, err
	}
	p.UserRequirements = requirements
	p.Status = entities.StatusDraft
	return u.repo.Save(ctx, p)
}

// Delete removes the proposal document and then its files from storage.
// Storage failures after the document is gone are logged and surfaced as
// ErrStorageCleanup; they cannot corrupt the structured content.
func (u *ProposalUseCase) Delete(ctx context.Context, proposalID, userID string) error {
	p, err := loadOwnedProposal(ctx, u.repo, proposalID, userID)
	if err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, p.ID); err != nil {
		return err
	}

	cleanupFailed := false
	for _, f := range p.Files {
		if err := u.files.Delete(ctx, f.Path); err != nil {
			log.Printf("[proposal][usecase] file cleanup failed proposal_id=%s path=%s err=%v", p.ID, f.Path, err)
			cleanupFailed = true
		}
	}
	if cleanupFailed {
		return ErrStorageCleanup
	}
	log.Printf("[proposal][usecase] proposal deleted proposal_id=%s files=%d", p.ID, len(p.Files))
	return nil
}

// AttachFiles stores an upload batch and appends the metadata. The batch is
// all-or-nothing: a rejected file (too large, unsupported type) rolls back
// every file already stored for this batch.
func (u *ProposalUseCase) AttachFiles(ctx context.Context, proposalID, userID string, uploads []FileUpload) (entities.Proposal, error) {
	p, err := loadOwnedProposal(ctx, u.repo, proposalID, userID)
	if err != nil {
		return entities.Proposal{}, err
	}
	if len(uploads) > maxFilesPerUpload {
		return entities.Proposal{}, ErrTooManyFiles
	}

	stored := make([]entities.ProposalFile, 0, len(uploads))
	for _, up := range uploads {
		f, err := u.files.Save(ctx, up.Name, up.MimeType, up.Size, up.Content)
		if err != nil {
			for _, s := range stored {
				if derr := u.files.Delete(ctx, s.Path); derr != nil {
					log.Printf("[proposal][usecase] rollback delete failed path=%s err=%v", s.Path, derr)
				}
			}
			return entities.Proposal{}, err
		}
		stored = append(stored, f)
	}

	p.Files = append(p.Files, stored...)
	saved, err := u.repo.Save(ctx, p)
	if err != nil {
		return entities.Proposal{}, err
	}
	log.Printf("[proposal][usecase] files attached proposal_id=%s count=%d", saved.ID, len(stored))
	return saved, nil
}

// ApplySection wholesale-replaces one named content section. The caller must
// submit the complete section payload; nothing is merged. Derived data is
// kept consistent in the same step: a deliverables replace drops pricing
// items that no longer resolve and recomputes the total, a timeline replace
// re-derives milestone payments from the current total.
func (u *ProposalUseCase) ApplySection(ctx context.Context, proposalID, userID, section string, value json.RawMessage) (entities.Proposal, error) {
	p, err := loadOwnedProposal(ctx, u.repo, proposalID, userID)
	if err != nil {
		return entities.Proposal{}, err
	}

	switch section {
	case SectionExecutiveSummary:
		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			return entities.Proposal{}, ErrInvalidSectionPayload
		}
		p.Content.ExecutiveSummary = s

	case SectionScopeOfWork:
		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			return entities.Proposal{}, ErrInvalidSectionPayload
		}
		p.Content.ScopeOfWork = s

	case SectionRequirements:
		var reqs []string
		if err := json.Unmarshal(value, &reqs); err != nil {
			return entities.Proposal{}, ErrInvalidSectionPayload
		}
		p.Content.Requirements = reqs

	case SectionDeliverables:
		var raw []RawDeliverable
		if err := json.Unmarshal(value, &raw); err != nil {
			return entities.Proposal{}, ErrInvalidSectionPayload
		}
		p.Content.Deliverables = NormalizeDeliverables(raw)
		dropOrphanedPricing(&p)

	case SectionWorkBreakdown:
		var tasks []entities.Task
		if err := json.Unmarshal(value, &tasks); err != nil {
			return entities.Proposal{}, ErrInvalidSectionPayload
		}
		for i := range tasks {
			if strings.TrimSpace(tasks[i].ID) == "" {
				tasks[i].ID = uuid.NewString()
			}
		}
		if err := ValidateWorkBreakdown(tasks); err != nil {
			return entities.Proposal{}, err
		}
		p.Content.WorkBreakdown = tasks

	case SectionTimeline:
		var phases []entities.Phase
		if err := json.Unmarshal(value, &phases); err != nil {
			return entities.Proposal{}, ErrInvalidSectionPayload
		}
		if err := ValidateTimeline(phases, p.Content.WorkBreakdown); err != nil {
			return entities.Proposal{}, err
		}
		for i := range phases {
			if strings.TrimSpace(phases[i].ID) == "" {
				phases[i].ID = uuid.NewString()
			}
		}
		p.Content.Timeline = phases
		rescaleMilestonePayments(&p)

	default:
		return entities.Proposal{}, ErrInvalidSection
	}

	saved, err := u.repo.Save(ctx, p)
	if err != nil {
		return entities.Proposal{}, err
	}
	log.Printf("[proposal][usecase] section applied proposal_id=%s section=%s", saved.ID, section)
	return saved, nil
}

// dropOrphanedPricing removes pricing items whose deliverable no longer
// exists and recomputes the total and milestone payments.
func dropOrphanedPricing(p *entities.Proposal) {
	if len(p.Pricing.Items) == 0 {
		rescaleMilestonePayments(p)
		return
	}

	kept := p.Pricing.Items[:0]
	for _, it := range p.Pricing.Items {
		if _, ok := p.Content.DeliverableByID(it.DeliverableID); ok {
			kept = append(kept, it)
		}
	}
	p.Pricing.Items = kept

	total, err := ComputeTotal(p.Content.Deliverables, p.Pricing.Items)
	if err != nil {
		// Unreachable: orphans were just dropped.
		total = 0
	}
	p.Pricing.Total = total
	rescaleMilestonePayments(p)
}
