// Package pdftext extracts plain text from PDF documents, with an
// optional OCR fallback for scanned files.
package pdftext

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"cisgen/internal/domain"
)

// maxTextSize caps accumulated text to keep pathological PDFs from
// exhausting memory.
const maxTextSize = 10 * 1024 * 1024

// Extractor reads PDF files and returns their text content with
// per-page markers.
type Extractor struct {
	ocr       *OCRRunner
	enableOCR bool
}

// NewExtractor creates an Extractor. When enableOCR is set, documents
// whose embedded text layer is empty are retried through OCR.
func NewExtractor(enableOCR bool) *Extractor {
	return &Extractor{ocr: NewOCRRunner(), enableOCR: enableOCR}
}

// ExtractText returns the text of the PDF at path. Pages are separated
// by "--- Page N ---" markers, which the section extractor relies on.
// A corrupt or unreadable file returns ErrUnreadableDocument.
func (e *Extractor) ExtractText(ctx context.Context, path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUnreadableDocument, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: path is a directory", domain.ErrUnreadableDocument)
	}

	if err := api.ValidateFile(path, nil); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUnreadableDocument, err)
	}

	text, err := e.extractEmbedded(path)
	if err != nil {
		return "", err
	}

	if isEmptyText(text) && e.enableOCR {
		log.Printf("pdftext: no embedded text in %s, falling back to OCR", path)
		ocrText, ocrErr := e.ocr.ExtractText(ctx, path)
		if ocrErr != nil {
			log.Printf("pdftext: OCR fallback failed for %s: %v", path, ocrErr)
			return text, nil
		}
		return ocrText, nil
	}
	return text, nil
}

// PageCount returns the number of pages in the PDF at path.
func (e *Extractor) PageCount(path string) (int, error) {
	n, err := api.PageCountFile(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrUnreadableDocument, err)
	}
	return n, nil
}

func (e *Extractor) extractEmbedded(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUnreadableDocument, err)
	}
	defer func() { _ = f.Close() }()

	var builder strings.Builder
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			// One bad page must not sink the document.
			log.Printf("pdftext: page %d of %s: %v", pageNum, path, err)
			content = ""
		}
		if builder.Len()+len(content) > maxTextSize {
			remaining := maxTextSize - builder.Len()
			if remaining > 0 {
				content = content[:remaining]
			} else {
				break
			}
		}
		fmt.Fprintf(&builder, "--- Page %d ---\n%s\n\n", pageNum, content)
	}
	return builder.String(), nil
}

// isEmptyText reports whether extracted text carries no content beyond
// the page markers.
func isEmptyText(text string) bool {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "--- Page") {
			continue
		}
		return false
	}
	return true
}
