package extraction

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	docxBodyPart = "word/document.xml"

	// DefaultMaxDocumentBytes caps the decompressed size of a DOCX body
	DefaultMaxDocumentBytes = 256 << 20
)

// DOCXStrategy extracts paragraph text from an Office Open XML document.
// Paragraphs are joined by single spaces. Bodies that decompress beyond
// MaxBytes fail; zero means DefaultMaxDocumentBytes.
type DOCXStrategy struct {
	MaxBytes int64
}

func (s DOCXStrategy) limit() int64 {
	if s.MaxBytes > 0 {
		return s.MaxBytes
	}
	return DefaultMaxDocumentBytes
}

// Extract implements Strategy
func (s DOCXStrategy) Extract(ctx context.Context, path string) (string, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return "", &ExtractionError{Path: path, Format: FormatDOCX, Cause: err}
	}
	defer func() { _ = r.Close() }()

	for _, f := range r.File {
		if f.Name != docxBodyPart {
			continue
		}
		limit := s.limit()
		if f.UncompressedSize64 > uint64(limit) {
			return "", &ExtractionError{Path: path, Format: FormatDOCX, Cause: errBodyTooLarge(limit)}
		}
		rc, err := f.Open()
		if err != nil {
			return "", &ExtractionError{Path: path, Format: FormatDOCX, Cause: err}
		}
		defer func() { _ = rc.Close() }()

		// The header size is not trusted: read at most one byte past the limit
		body := &io.LimitedReader{R: rc, N: limit + 1}
		paragraphs, err := readParagraphs(ctx, body)
		if body.N <= 0 {
			return "", &ExtractionError{Path: path, Format: FormatDOCX, Cause: errBodyTooLarge(limit)}
		}
		if err != nil {
			return "", &ExtractionError{Path: path, Format: FormatDOCX, Cause: err}
		}
		return strings.Join(paragraphs, " "), nil
	}

	return "", &ExtractionError{
		Path:   path,
		Format: FormatDOCX,
		Cause:  fmt.Errorf("missing %s", docxBodyPart),
	}
}

func errBodyTooLarge(limit int64) error {
	return fmt.Errorf("%s exceeds %d bytes", docxBodyPart, limit)
}

// readParagraphs collects the text runs of every w:p element, honoring tabs and breaks
func readParagraphs(ctx context.Context, r io.Reader) ([]string, error) {
	decoder := xml.NewDecoder(r)

	var (
		paragraphs []string
		current    strings.Builder
		inPara     bool
		inText     bool
	)

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("malformed document XML: %w", err)
		}

		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "p":
				inPara = true
				current.Reset()
			case "t":
				inText = true
			case "tab", "br", "cr":
				if inPara {
					current.WriteByte(' ')
				}
			}
		case xml.EndElement:
			switch el.Name.Local {
			case "p":
				paragraphs = append(paragraphs, current.String())
				inPara = false
			case "t":
				inText = false
			}
		case xml.CharData:
			if inText {
				current.Write(el)
			}
		}
	}

	return paragraphs, nil
}
