package entities

import "time"

// ProposalStatus represents the drafting lifecycle of a proposal.
//
// Domain notes:
//   - Status gates which edits are legal: pricing is only allowed once the
//     full proposal has been generated (StatusComplete).
//   - The status only advances after the corresponding analysis pass
//     succeeds; a failed collaborator call leaves it untouched.

type ProposalStatus string

const (
	StatusDraft           ProposalStatus = "draft"
	StatusInitialAnalysis ProposalStatus = "initial_analysis"
	StatusReviewing       ProposalStatus = "reviewing"
	StatusComplete        ProposalStatus = "complete"
)

// CanStartAnalysis reports whether a first analysis pass may run.
func (s ProposalStatus) CanStartAnalysis() bool {
	return s == StatusDraft
}

// CanReanalyze reports whether a feedback-driven re-analysis may run.
func (s ProposalStatus) CanReanalyze() bool {
	return s == StatusInitialAnalysis || s == StatusReviewing
}

// CanGenerate reports whether full-proposal generation may run.
func (s ProposalStatus) CanGenerate() bool {
	return s == StatusInitialAnalysis || s == StatusReviewing
}

// CanEditPricing reports whether pricing mutations are legal.
func (s ProposalStatus) CanEditPricing() bool {
	return s == StatusComplete
}

// ProposalFile is the metadata of one uploaded source document. Files are
// owned by the proposal and removed from storage when it is deleted.
type ProposalFile struct {
	OriginalName string    `json:"original_name"`
	StorageName  string    `json:"storage_name"`
	Path         string    `json:"path"`
	Size         int64     `json:"size"`
	FileType     string    `json:"file_type"`
	UploadDate   time.Time `json:"upload_date"`
}

// Deliverable is a billable unit of project output. Count is always a
// positive integer after normalization; UnitPrice is optional and only
// informational until a pricing item references the deliverable.
type Deliverable struct {
	ID          string  `json:"id"`
	Item        string  `json:"item"`
	Unit        string  `json:"unit"`
	Count       int     `json:"count"`
	Description string  `json:"description"`
	UnitPrice   float64 `json:"unit_price,omitempty"`
}

// Task is one work-breakdown entry. Dependencies hold task ids, never array
// positions, so reordering the breakdown cannot corrupt them.
type Task struct {
	ID           string   `json:"id"`
	Task         string   `json:"task"`
	Duration     int      `json:"duration"`
	Dependencies []string `json:"dependencies,omitempty"`
}

// Milestone is a partial-payment checkpoint inside a phase. PaymentAmount is
// derived from the proposal total and never accepted from the caller as-is.
type Milestone struct {
	Name          string     `json:"name"`
	Percentage    float64    `json:"percentage"`
	DueDate       *time.Time `json:"due_date,omitempty"`
	PaymentAmount float64    `json:"payment_amount"`
}

// Phase is a time-boxed timeline segment. Tasks reference work-breakdown
// entries by id.
type Phase struct {
	ID         string      `json:"id"`
	Phase      string      `json:"phase"`
	StartDate  *time.Time  `json:"start_date,omitempty"`
	EndDate    *time.Time  `json:"end_date,omitempty"`
	Tasks      []string    `json:"tasks,omitempty"`
	Milestones []Milestone `json:"milestones,omitempty"`
}

// Content is the editable document structure produced by analysis passes and
// user edits.
type Content struct {
	ExecutiveSummary string        `json:"executive_summary,omitempty"`
	ScopeOfWork      string        `json:"scope_of_work,omitempty"`
	Requirements     []string      `json:"requirements,omitempty"`
	Deliverables     []Deliverable `json:"deliverables,omitempty"`
	WorkBreakdown    []Task        `json:"work_breakdown,omitempty"`
	Timeline         []Phase       `json:"timeline,omitempty"`
}

// DeliverableByID resolves a deliverable reference.
func (c Content) DeliverableByID(id string) (Deliverable, bool) {
	for _, d := range c.Deliverables {
		if d.ID == id {
			return d, true
		}
	}
	return Deliverable{}, false
}

// TaskByID resolves a work-breakdown reference.
func (c Content) TaskByID(id string) (Task, bool) {
	for _, t := range c.WorkBreakdown {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

// PricingItem prices one deliverable. DeliverableID must always resolve to
// an entry in Content.Deliverables.
type PricingItem struct {
	DeliverableID string  `json:"deliverable_id"`
	UnitPrice     float64 `json:"unit_price"`
	Notes         string  `json:"notes,omitempty"`
}

// Pricing is the derived monetary aggregate. Total is recomputed inside the
// same mutation that changes Items or any deliverable count.
type Pricing struct {
	Items []PricingItem `json:"items,omitempty"`
	Total float64       `json:"total"`
}

// Proposal is the root aggregate persisted in DynamoDB.
//
// Storage model:
//   - PK: id
//   - GSI1 (user_id-index): user_id
//
// Every mutation is a read-modify-write of the whole document; concurrent
// sessions are last-write-wins.
type Proposal struct {
	ID               string         `json:"id"`
	UserID           string         `json:"user_id"`
	Title            string         `json:"title"`
	Description      string         `json:"description,omitempty"`
	Status           ProposalStatus `json:"status"`
	Files            []ProposalFile `json:"files,omitempty"`
	UserRequirements string         `json:"user_requirements,omitempty"`
	UserFeedback     string         `json:"user_feedback,omitempty"`
	Content          Content        `json:"content"`
	Pricing          Pricing        `json:"pricing"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}
