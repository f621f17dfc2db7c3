package lexicon

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// DefaultColumn is the header of the spreadsheet column holding skill terms
const DefaultColumn = "Text"

// XLSXSource reads terms from one column of the first sheet of a workbook
type XLSXSource struct {
	Path string
	// Column is the header cell to read; DefaultColumn when empty
	Column string
}

// Name implements Source
func (s *XLSXSource) Name() string { return s.Path }

// Load implements Source
func (s *XLSXSource) Load(_ context.Context) ([]string, error) {
	f, err := excelize.OpenFile(s.Path)
	if err != nil {
		return nil, &UnavailableError{Source: s.Path, Cause: err}
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &UnavailableError{Source: s.Path, Cause: fmt.Errorf("workbook has no sheets")}
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, &UnavailableError{Source: s.Path, Cause: err}
	}
	if len(rows) == 0 {
		return nil, &UnavailableError{Source: s.Path, Cause: fmt.Errorf("sheet %s is empty", sheets[0])}
	}

	column := s.Column
	if column == "" {
		column = DefaultColumn
	}
	idx := -1
	for i, header := range rows[0] {
		if strings.TrimSpace(header) == column {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, &UnavailableError{Source: s.Path, Cause: fmt.Errorf("column %q not found", column)}
	}

	values := make([]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if idx < len(row) {
			values = append(values, row[idx])
		}
	}
	return cleanTerms(values), nil
}
