package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rapt-app/rapt/pkg/engine"
	"github.com/rapt-app/rapt/pkg/resume"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyze a resume file and print the ATS report",
	Long: `Extracts text from a resume (.pdf, .docx or .txt) and scores it against
the built-in keyword taxonomy.

Examples:
  atscli analyze resume.pdf
  atscli analyze notes.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	var text string
	if strings.ToLower(filepath.Ext(path)) == ".txt" {
		text = string(data)
	} else {
		text, err = resume.ExtractText(filepath.Base(path), data)
		if err != nil {
			return fmt.Errorf("extract text: %w", err)
		}
	}

	result := engine.New(engine.DefaultTaxonomy()).Analyze(text)

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
