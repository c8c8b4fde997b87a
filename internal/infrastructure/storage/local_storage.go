package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"propdraft/internal/domain/entities"
	"propdraft/internal/infrastructure/files"
	"propdraft/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrFileTooLarge        = errors.New("file size exceeds limit")
	ErrUnsupportedFileType = files.ErrUnsupportedFileType
)

// maxFileSize is the per-file ceiling enforced at the storage boundary.
const maxFileSize = 10 << 20 // 10MB

var extByMime = map[string]string{
	files.MimePDF:   "pdf",
	files.MimeDOCX:  "docx",
	files.MimePlain: "txt",
}

// LocalFileStore keeps uploaded documents on local disk under one directory.
//
// Supported env vars:
//   - UPLOADS_DIR (default: uploads)

type LocalFileStore struct {
	dir string
}

var _ interfaces.IFileStore = (*LocalFileStore)(nil)

func NewLocalFileStore() (*LocalFileStore, error) {
	dir := os.Getenv("UPLOADS_DIR")
	if dir == "" {
		dir = "uploads"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &LocalFileStore{dir: dir}, nil
}

// Save writes one uploaded file. The MIME type must be one of the allowed
// document types and the size must not exceed 10MB; a violation rejects the
// file before anything is written.
func (s *LocalFileStore) Save(ctx context.Context, originalName, mimeType string, size int64, r io.Reader) (entities.ProposalFile, error) {
	ext, ok := extByMime[mimeType]
	if !ok {
		log.Printf("[storage][files] rejected type=%s name=%s", mimeType, originalName)
		return entities.ProposalFile{}, fmt.Errorf("%w: %s", ErrUnsupportedFileType, mimeType)
	}
	if size > maxFileSize {
		log.Printf("[storage][files] rejected oversized name=%s size=%d", originalName, size)
		return entities.ProposalFile{}, ErrFileTooLarge
	}

	storageName := uuid.NewString() + "." + ext
	path := filepath.Join(s.dir, storageName)

	dst, err := os.Create(path)
	if err != nil {
		return entities.ProposalFile{}, err
	}

	// Guard against callers that understate the declared size.
	written, err := io.Copy(dst, io.LimitReader(r, maxFileSize+1))
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err == nil && written > maxFileSize {
		err = ErrFileTooLarge
	}
	if err != nil {
		if rerr := os.Remove(path); rerr != nil {
			log.Printf("[storage][files] cleanup failed path=%s err=%v", path, rerr)
		}
		return entities.ProposalFile{}, err
	}

	log.Printf("[storage][files] saved name=%s path=%s size=%d", originalName, path, written)
	return entities.ProposalFile{
		OriginalName: originalName,
		StorageName:  storageName,
		Path:         path,
		Size:         written,
		FileType:     mimeType,
		UploadDate:   time.Now().UTC(),
	}, nil
}

func (s *LocalFileStore) Delete(ctx context.Context, path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
