package files

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"propdraft/internal/usecase/interfaces"

	"github.com/ledongthuc/pdf"
)

// Supported upload MIME types.
const (
	MimePDF   = "application/pdf"
	MimeDOCX  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimePlain = "text/plain"
)

var ErrUnsupportedFileType = errors.New("unsupported file type")

// TextExtractor pulls plain text out of stored documents for the analysis
// collaborator.
type TextExtractor struct{}

var _ interfaces.ITextExtractor = (*TextExtractor)(nil)

func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

func (e *TextExtractor) ExtractText(ctx context.Context, path, mimeType string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	switch mimeType {
	case MimePDF:
		return extractPDF(content)
	case MimeDOCX:
		return extractDOCX(content)
	case MimePlain:
		return string(content), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFileType, mimeType)
	}
}

// extractPDF walks every page and concatenates the plain text. Pages that
// fail to parse are skipped; an image-only PDF yields an empty string.
func extractPDF(content []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if text != "" {
			if b.Len() > 0 {
				b.WriteString("\n\n")
			}
			b.WriteString(text)
		}
	}
	return b.String(), nil
}

// extractDOCX reads word/document.xml from the zip container and strips the
// markup, emitting a newline per paragraph.
func extractDOCX(content []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}

	var doc io.ReadCloser
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			doc, err = f.Open()
			if err != nil {
				return "", fmt.Errorf("open docx body: %w", err)
			}
			break
		}
	}
	if doc == nil {
		return "", errors.New("docx missing word/document.xml")
	}
	defer doc.Close()

	var b strings.Builder
	dec := xml.NewDecoder(doc)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("parse docx body: %w", err)
		}
		switch t := tok.(type) {
		case xml.CharData:
			b.Write(t)
		case xml.EndElement:
			// w:p closes a paragraph.
			if t.Name.Local == "p" {
				b.WriteString("\n")
			}
		}
	}
	return b.String(), nil
}
