// Package main provides the resume_screener CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	configPath     string
	flagHardSkills string
	flagSoftSkills string
	flagDatabase   string
	flagLogJSON    bool
	flagDebug      bool
)

var rootCmd = &cobra.Command{
	Use:          "resume_screener",
	Short:        "Resume skill tagging and candidate ranking",
	Long:         "resume_screener tags resumes with hard and soft skills from curated lexicons and ranks candidate resumes against a job description by TF-IDF cosine similarity.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&flagHardSkills, "hard-skills", "", "Hard skills lexicon (.xlsx, .csv, .txt, .json)")
	rootCmd.PersistentFlags().StringVar(&flagSoftSkills, "soft-skills", "", "Soft skills lexicon (.xlsx, .csv, .txt, .json)")
	rootCmd.PersistentFlags().StringVar(&flagDatabase, "database-url", "", "PostgreSQL URL of the skill_terms table (overrides lexicon files)")
	rootCmd.PersistentFlags().BoolVar(&flagLogJSON, "log-json", false, "Emit JSON logs")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
