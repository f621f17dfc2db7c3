package lexicon

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strings"
)

// TextSource reads one term per line. Lines starting with # are comments.
// Files ending in .csv are read as CSV with a "Text" header column, falling
// back to the first column when no such header exists.
type TextSource struct {
	Path string
}

// Name implements Source
func (s *TextSource) Name() string { return s.Path }

// Load implements Source
func (s *TextSource) Load(_ context.Context) ([]string, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, &UnavailableError{Source: s.Path, Cause: err}
	}
	defer func() { _ = f.Close() }()

	if strings.HasSuffix(strings.ToLower(s.Path), ".csv") {
		return s.loadCSV(f)
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, &UnavailableError{Source: s.Path, Cause: err}
	}
	var values []string
	for _, line := range strings.Split(string(data), "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		values = append(values, line)
	}
	return cleanTerms(values), nil
}

func (s *TextSource) loadCSV(r io.Reader) ([]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var values []string
	col := 0
	first := true
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &UnavailableError{Source: s.Path, Cause: err}
		}
		if first {
			first = false
			header := false
			for i, cell := range record {
				if strings.TrimSpace(cell) == DefaultColumn {
					col, header = i, true
					break
				}
			}
			if header {
				continue
			}
		}
		if col < len(record) {
			values = append(values, record[col])
		}
	}
	return cleanTerms(values), nil
}
