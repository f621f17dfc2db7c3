package extraction

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/document/parser/pdf"
	einoParser "github.com/cloudwego/eino/components/document/parser"
)

const pdfParseTimeout = 30 * time.Second

// PDFStrategy extracts the text of every page of a PDF file
type PDFStrategy struct {
	parser *pdf.PDFParser
}

// NewPDFStrategy creates a PDFStrategy that returns the whole document as one text
func NewPDFStrategy(ctx context.Context) (*PDFStrategy, error) {
	p, err := pdf.NewPDFParser(ctx, &pdf.Config{ToPages: false})
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF parser: %w", err)
	}
	return &PDFStrategy{parser: p}, nil
}

// Extract implements Strategy
func (s *PDFStrategy) Extract(ctx context.Context, path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", &ExtractionError{Path: path, Format: FormatPDF, Cause: err}
	}
	defer func() { _ = file.Close() }()

	ctx, cancel := context.WithTimeout(ctx, pdfParseTimeout)
	defer cancel()

	docs, err := s.parser.Parse(ctx, file, einoParser.WithURI(path))
	if err != nil {
		return "", &ExtractionError{Path: path, Format: FormatPDF, Cause: err}
	}

	parts := make([]string, 0, len(docs))
	for _, doc := range docs {
		if doc == nil {
			continue
		}
		parts = append(parts, doc.Content)
	}
	return strings.Join(parts, " "), nil
}
