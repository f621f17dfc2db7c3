// Package extraction pulls raw text out of uploaded PDF and DOCX documents.
package extraction

import (
	"context"
	"errors"
	"path/filepath"

	"go.uber.org/zap"
)

// Strategy extracts text from one file of a known format
type Strategy interface {
	Extract(ctx context.Context, path string) (string, error)
}

// Extractor dispatches to the strategy registered for a document's format
type Extractor struct {
	strategies map[Format]Strategy
	logger     *zap.Logger
}

// Option configures an Extractor
type Option func(*Extractor)

// WithLogger sets the logger used to report extraction failures
func WithLogger(logger *zap.Logger) Option {
	return func(e *Extractor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithStrategy registers or replaces the strategy for a format
func WithStrategy(format Format, strategy Strategy) Option {
	return func(e *Extractor) {
		e.strategies[format] = strategy
	}
}

// WithMaxDocumentBytes caps the decompressed size of DOCX bodies
func WithMaxDocumentBytes(n int64) Option {
	return func(e *Extractor) {
		if n > 0 {
			e.strategies[FormatDOCX] = DOCXStrategy{MaxBytes: n}
		}
	}
}

// New creates an Extractor with the PDF and DOCX strategies installed
func New(ctx context.Context, opts ...Option) (*Extractor, error) {
	pdfStrategy, err := NewPDFStrategy(ctx)
	if err != nil {
		return nil, err
	}

	e := &Extractor{
		strategies: map[Format]Strategy{
			FormatPDF:  pdfStrategy,
			FormatDOCX: DOCXStrategy{},
		},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Extract returns the raw text of the file at path, using the format declared
// by its extension.
func (e *Extractor) Extract(ctx context.Context, path string) (string, error) {
	return e.ExtractAs(ctx, path, DetectFormat(path))
}

// ExtractAs returns the raw text of the file using an explicitly declared format.
// Unsupported formats fail with *UnsupportedFormatError; parse failures with
// *ExtractionError.
func (e *Extractor) ExtractAs(ctx context.Context, path string, format Format) (string, error) {
	strategy, ok := e.strategies[format]
	if !ok || format == FormatUnsupported {
		return "", &UnsupportedFormatError{Path: path, Extension: filepath.Ext(path)}
	}

	text, err := strategy.Extract(ctx, path)
	if err != nil {
		var extractionErr *ExtractionError
		if !errors.As(err, &extractionErr) {
			err = &ExtractionError{Path: path, Format: format, Cause: err}
		}
		return "", err
	}
	return CleanText(text), nil
}

// ExtractOrEmpty is ExtractAs with parse failures degraded to empty text.
// The failure is logged; only unsupported formats are returned as errors.
func (e *Extractor) ExtractOrEmpty(ctx context.Context, path string, format Format) (string, error) {
	text, err := e.ExtractAs(ctx, path, format)
	if err == nil {
		return text, nil
	}
	if errors.Is(err, ErrExtractionFailure) {
		e.logger.Warn("extraction failed, continuing with empty text",
			zap.String("path", path),
			zap.Stringer("format", format),
			zap.Error(err),
		)
		return "", nil
	}
	return "", err
}
