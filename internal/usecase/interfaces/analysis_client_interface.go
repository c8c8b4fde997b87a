package interfaces

import (
	"context"
	"encoding/json"

	"propdraft/internal/domain/entities"
)

// IAnalysisClient abstracts the external language-model collaborator.
//
// Every method returns the model's structured JSON untouched. The output is
// untrusted: callers must pass it through the normalizer before it reaches
// the proposal. Calls are long-running I/O and are never retried silently;
// a failure surfaces to the user and the proposal status stays put.
type IAnalysisClient interface {
	// AnalyzeScope derives a scope of work and deliverables from extracted
	// document text plus the user's stated requirements.
	AnalyzeScope(ctx context.Context, description, userRequirements string) (json.RawMessage, error)

	// Reanalyze regenerates scope and deliverables from the current ones
	// plus user feedback.
	Reanalyze(ctx context.Context, scopeOfWork string, deliverables []entities.Deliverable, userRequirements, userFeedback string) (json.RawMessage, error)

	// GenerateProposal produces the remaining sections: executive summary,
	// requirements, work breakdown and timeline.
	GenerateProposal(ctx context.Context, scopeOfWork string, deliverables []entities.Deliverable, userRequirements, userFeedback string) (json.RawMessage, error)
}
