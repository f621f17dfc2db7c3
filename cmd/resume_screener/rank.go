package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/observability"
	"github.com/jonathan/resume-screener/internal/screening"
	"github.com/spf13/cobra"
)

var rankCmd = &cobra.Command{
	Use:   "rank [resume files...]",
	Short: "Rank resumes against a job description",
	Long:  "Ranks PDF and DOCX resumes by TF-IDF cosine similarity to a job description. Unsupported files are skipped and reported; unreadable ones score zero.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRank,
}

var (
	rankJobFile string
	rankJobText string
	rankJSON    bool
)

func init() {
	rankCmd.Flags().StringVarP(&rankJobFile, "job", "j", "", "Path to the job description (.txt, .md, .pdf or .docx)")
	rankCmd.Flags().StringVar(&rankJobText, "job-text", "", "Job description text")
	rankCmd.Flags().BoolVar(&rankJSON, "json", false, "Print the result as JSON")
	rankCmd.MarkFlagsOneRequired("job", "job-text")
	rankCmd.MarkFlagsMutuallyExclusive("job", "job-text")

	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	a, err := newApp(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	job, err := readJobDescription(cmd.Context(), a.extractor, rankJobFile, rankJobText)
	if err != nil {
		return err
	}

	files := make([]screening.File, len(args))
	for i, path := range args {
		files[i] = screening.File{Name: filepath.Base(path), Path: path}
	}

	result, err := a.service.RankFiles(cmd.Context(), files, job)
	if err != nil {
		return err
	}

	if rankJSON {
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal ranking to JSON: %w", err)
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintRanking(result)
	return nil
}

// readJobDescription returns the inline text, or the content of the job file.
// PDF and DOCX job files go through the document extractor; anything else is read as plain text.
func readJobDescription(ctx context.Context, extractor *extraction.Extractor, path, text string) (string, error) {
	if path == "" {
		return text, nil
	}
	if extraction.DetectFormat(path) != extraction.FormatUnsupported {
		return extractor.Extract(ctx, path)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read job description file %s: %w", path, err)
	}
	return string(content), nil
}
