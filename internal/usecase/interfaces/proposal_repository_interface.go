package interfaces

import (
	"context"

	"propdraft/internal/domain/entities"
)

// IProposalRepository abstracts DynamoDB persistence for Proposal.
//
// The proposal is stored as one document; Save replaces it atomically. The
// usecases own the read-modify-write cycle, so the repository never mutates
// individual fields.

type IProposalRepository interface {
	Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error)
	GetByID(ctx context.Context, id string) (entities.Proposal, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Proposal, error)
	Save(ctx context.Context, p entities.Proposal) (entities.Proposal, error)
	Delete(ctx context.Context, id string) error
}
