package interfaces

import (
	"context"
	"io"

	"propdraft/internal/domain/entities"
)

// ITextExtractor pulls plain text out of an uploaded document so it can be
// fed to the analysis collaborator. Supported: PDF, DOCX, plain text.
type ITextExtractor interface {
	ExtractText(ctx context.Context, path, mimeType string) (string, error)
}

// IFileStore abstracts the storage boundary for uploaded source documents.
//
// Save enforces the per-file size ceiling and the allowed MIME types; an
// oversized or unsupported file fails the call without writing anything.
type IFileStore interface {
	Save(ctx context.Context, originalName, mimeType string, size int64, r io.Reader) (entities.ProposalFile, error)
	Delete(ctx context.Context, path string) error
}
