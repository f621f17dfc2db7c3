package extraction

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedFormat is matched by *UnsupportedFormatError
	ErrUnsupportedFormat = errors.New("unsupported file type")
	// ErrExtractionFailure is matched by *ExtractionError
	ErrExtractionFailure = errors.New("text extraction failed")
)

// UnsupportedFormatError is returned for files outside the supported set.
// It is fatal for that document only.
type UnsupportedFormatError struct {
	Path      string
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file type %q for %s: use PDF or DOCX", e.Extension, e.Path)
}

func (e *UnsupportedFormatError) Is(target error) bool {
	return target == ErrUnsupportedFormat
}

// ExtractionError wraps a parse failure inside a supported document.
// Callers degrade the document to empty text.
type ExtractionError struct {
	Path   string
	Format Format
	Cause  error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to extract %s text from %s: %v", e.Format, e.Path, e.Cause)
	}
	return fmt.Sprintf("failed to extract %s text from %s", e.Format, e.Path)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

func (e *ExtractionError) Is(target error) bool {
	return target == ErrExtractionFailure
}
