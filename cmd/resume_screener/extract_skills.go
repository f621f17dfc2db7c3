package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/jonathan/resume-screener/internal/observability"
	"github.com/jonathan/resume-screener/internal/screening"
	"github.com/spf13/cobra"
)

var extractSkillsCmd = &cobra.Command{
	Use:   "extract-skills",
	Short: "Tag a resume with hard and soft skills",
	Long:  "Extracts the text of a PDF or DOCX resume and lists the hard and soft lexicon skills it mentions as whole words.",
	RunE:  runExtractSkills,
}

var (
	extractSkillsResume string
	extractSkillsJSON   bool
)

func init() {
	extractSkillsCmd.Flags().StringVarP(&extractSkillsResume, "resume", "r", "", "Path to the resume PDF or DOCX file (required)")
	extractSkillsCmd.Flags().BoolVar(&extractSkillsJSON, "json", false, "Print the result as JSON")

	if err := extractSkillsCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}

	rootCmd.AddCommand(extractSkillsCmd)
}

func runExtractSkills(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	a, err := newApp(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	if !a.lexiconsReady() {
		return fmt.Errorf("skill lexicon files not found: %s, %s", cfg.HardSkillsPath, cfg.SoftSkillsPath)
	}

	file := screening.File{Name: filepath.Base(extractSkillsResume), Path: extractSkillsResume}
	result, err := a.service.ExtractSkillsFromFile(cmd.Context(), file)
	if err != nil {
		return err
	}

	if extractSkillsJSON {
		out, err := json.MarshalIndent(result.Groups(), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal skills to JSON: %w", err)
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintSkills(file.Name, result)
	return nil
}
