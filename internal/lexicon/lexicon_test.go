package lexicon

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/jonathan/resume-screener/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func writeWorkbook(t *testing.T, header string, values ...string) string {
	t.Helper()
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	require.NoError(t, f.SetCellValue("Sheet1", "A1", "ID"))
	require.NoError(t, f.SetCellValue("Sheet1", "B1", header))
	for i, v := range values {
		row := i + 2
		require.NoError(t, f.SetCellValue("Sheet1", "A"+strconv.Itoa(row), row))
		if v != "" {
			require.NoError(t, f.SetCellValue("Sheet1", "B"+strconv.Itoa(row), v))
		}
	}

	path := filepath.Join(t.TempDir(), "Hard_skills.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestXLSXSource(t *testing.T) {
	path := writeWorkbook(t, "Text", " Python ", "", "SQL", "machine learning")

	terms, err := OpenFile(path).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"python", "sql", "machine learning"}, terms)
}

func TestXLSXSource_MissingColumn(t *testing.T) {
	path := writeWorkbook(t, "Skill", "python")

	_, err := OpenFile(path).Load(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLexiconUnavailable))
	assert.Contains(t, err.Error(), `column "Text" not found`)
}

func TestTextSource(t *testing.T) {
	path := writeFile(t, "soft.txt", "# soft skills\nTeamwork\n\n  Communication  \r\n")

	terms, err := OpenFile(path).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"teamwork", "communication"}, terms)
}

func TestTextSource_CSV(t *testing.T) {
	withHeader := writeFile(t, "hard.csv", "id,Text\n1,Python\n2,Go\n3\n")
	terms, err := OpenFile(withHeader).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"python", "go"}, terms)

	noHeader := writeFile(t, "plain.csv", "Docker,x\nKubernetes,y\n")
	terms, err = OpenFile(noHeader).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"docker", "kubernetes"}, terms)
}

func TestJSONSource(t *testing.T) {
	path := writeFile(t, "hard.json", `{"category": "hard", "terms": ["Python", " ", "Go"]}`)
	terms, err := OpenFile(path).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"python", "go"}, terms)
}

func TestJSONSource_SchemaViolation(t *testing.T) {
	path := writeFile(t, "hard.json", `{"terms": "python"}`)
	_, err := OpenFile(path).Load(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLexiconUnavailable))
}

func TestOpenFile_Missing(t *testing.T) {
	for _, name := range []string{"missing.xlsx", "missing.txt", "missing.json"} {
		_, err := OpenFile(filepath.Join(t.TempDir(), name)).Load(context.Background())
		assert.True(t, errors.Is(err, ErrLexiconUnavailable), name)
	}
}

type countingSource struct {
	calls int
	terms []string
	err   error
}

func (c *countingSource) Name() string { return "counting" }

func (c *countingSource) Load(context.Context) ([]string, error) {
	c.calls++
	return c.terms, c.err
}

func TestCachedSource(t *testing.T) {
	inner := &countingSource{terms: []string{"go"}}
	cached := NewCachedSource(inner, time.Minute)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cached.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		terms, err := cached.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"go"}, terms)
	}
	assert.Equal(t, 1, inner.calls)

	// Returned slices are copies
	terms, _ := cached.Load(context.Background())
	terms[0] = "mutated"
	again, _ := cached.Load(context.Background())
	assert.Equal(t, []string{"go"}, again)

	now = now.Add(2 * time.Minute)
	_, _ = cached.Load(context.Background())
	assert.Equal(t, 2, inner.calls)

	cached.Invalidate()
	_, _ = cached.Load(context.Background())
	assert.Equal(t, 3, inner.calls)
}

func TestCachedSource_ErrorNotCached(t *testing.T) {
	inner := &countingSource{err: &UnavailableError{Source: "x"}}
	cached := NewCachedSource(inner, time.Minute)

	_, err := cached.Load(context.Background())
	assert.Error(t, err)
	_, err = cached.Load(context.Background())
	assert.Error(t, err)
	assert.Equal(t, 2, inner.calls)
}

func TestLoader_DegradesToEmpty(t *testing.T) {
	soft := writeFile(t, "soft.txt", "teamwork\n")
	loader := NewLoader(OpenFile(filepath.Join(t.TempDir(), "missing.xlsx")), OpenFile(soft), nil)

	lex := loader.Load(context.Background())
	assert.Equal(t, 0, lex.Len(types.CategoryHard))
	assert.Equal(t, []string{"teamwork"}, lex.Terms(types.CategorySoft))
}

func TestLoader_NoSources(t *testing.T) {
	lex := NewLoader(nil, nil, nil).Load(context.Background())
	assert.True(t, lex.IsEmpty())
}

func TestUnavailableError(t *testing.T) {
	err := &UnavailableError{Source: "hard.xlsx", Cause: os.ErrNotExist}
	assert.Contains(t, err.Error(), "hard.xlsx")
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.True(t, errors.Is(err, ErrLexiconUnavailable))
}
