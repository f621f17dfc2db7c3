package main

import (
	"fmt"

	"github.com/jonathan/resume-screener/internal/lexicon"
	"github.com/jonathan/resume-screener/internal/types"
	"github.com/spf13/cobra"
)

var importLexiconCmd = &cobra.Command{
	Use:   "import-lexicon",
	Short: "Copy a lexicon file into the skill_terms table",
	Long:  "Reads a lexicon file (.xlsx, .csv, .txt or .json) and inserts its terms into the PostgreSQL skill_terms table under the given category. Existing terms are kept.",
	RunE:  runImportLexicon,
}

var (
	importLexiconFile     string
	importLexiconCategory string
)

func init() {
	importLexiconCmd.Flags().StringVarP(&importLexiconFile, "file", "f", "", "Path to the lexicon file (required)")
	importLexiconCmd.Flags().StringVar(&importLexiconCategory, "category", "", "Lexicon category: hard or soft (required)")

	if err := importLexiconCmd.MarkFlagRequired("file"); err != nil {
		panic(fmt.Sprintf("failed to mark file flag as required: %v", err))
	}
	if err := importLexiconCmd.MarkFlagRequired("category"); err != nil {
		panic(fmt.Sprintf("failed to mark category flag as required: %v", err))
	}

	rootCmd.AddCommand(importLexiconCmd)
}

func parseCategory(value string) (types.Category, error) {
	for _, c := range types.Categories {
		if string(c) == value {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown lexicon category %q: use hard or soft", value)
}

func runImportLexicon(cmd *cobra.Command, _ []string) error {
	category, err := parseCategory(importLexiconCategory)
	if err != nil {
		return err
	}

	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("a database URL is required (--database-url or DATABASE_URL)")
	}

	terms, err := lexicon.OpenFile(importLexiconFile).Load(cmd.Context())
	if err != nil {
		return err
	}

	store, err := lexicon.Connect(cmd.Context(), cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.AddTerms(cmd.Context(), category, terms...); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d %s skill terms from %s\n", len(terms), category, importLexiconFile)
	return nil
}
