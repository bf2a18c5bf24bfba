// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/patent-scout/internal/config"
	"github.com/pdiddy/patent-scout/internal/llm"
	"github.com/pdiddy/patent-scout/internal/pipeline"
	"github.com/pdiddy/patent-scout/internal/search"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze an invention idea against prior patents",
	Long: `Analyze reads an invention description from stdin until end-of-input,
asks the model for a summary and keywords, searches PatentsView for prior
patents, and prints the model's novelty assessment.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().String("model", "", "model identifier (default llama3.2:3b)")
	analyzeCmd.Flags().String("base-url", "", "inference endpoint base URL (default http://localhost:11434/v1)")
	analyzeCmd.Flags().Int("max-results", 0, "maximum prior patents to retrieve (default 5)")
	analyzeCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")
	analyzeCmd.Flags().Bool("show-patents", false, "print the retrieved prior-art table before the analysis")
	analyzeCmd.Flags().Bool("json", false, "output the raw report as JSON")
	analyzeCmd.Flags().Bool("yaml", false, "output the raw report as YAML")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg := buildConfig(cmd)
	if err := cfg.Validate(); err != nil {
		return err
	}

	idea, err := readIdea(cmd.InOrStdin())
	if err != nil {
		return err
	}

	searcher := search.NewClient(cfg.Search)
	completer := llm.New(cfg.LLM)

	report, err := pipeline.Run(cmd.Context(), idea, searcher, completer, os.Stderr)
	if err != nil {
		return err
	}

	asJSON, _ := cmd.Flags().GetBool("json")
	asYAML, _ := cmd.Flags().GetBool("yaml")
	showPatents, _ := cmd.Flags().GetBool("show-patents")

	switch {
	case asJSON:
		return pipeline.FormatReportJSON(report, os.Stdout)
	case asYAML:
		return pipeline.FormatReportYAML(report, os.Stdout)
	default:
		pipeline.FormatReport(report, showPatents, os.Stdout)
		return nil
	}
}

// readIdea reads the idea text until end-of-input. An empty idea is an
// input error; nothing is sent upstream for it.
func readIdea(in io.Reader) (string, error) {
	fmt.Fprintln(os.Stderr, "Enter invention description (end with Ctrl+D):")
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("reading idea from stdin: %w", err)
	}
	idea := strings.TrimSpace(string(data))
	if idea == "" {
		return "", fmt.Errorf("no idea text provided on stdin")
	}
	return idea, nil
}

// buildConfig assembles the run configuration, letting command flags
// override file, environment, and secrets settings.
func buildConfig(cmd *cobra.Command) *config.Config {
	cfg := config.Load(loadedSecrets)

	if v, _ := cmd.Flags().GetString("model"); v != "" {
		cfg.LLM.Model = v
	}
	if v, _ := cmd.Flags().GetString("base-url"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v, _ := cmd.Flags().GetInt("max-results"); v != 0 {
		cfg.Search.MaxResults = v
	}
	if v, _ := cmd.Flags().GetDuration("timeout"); v != 0 {
		cfg.Search.Timeout = v
		cfg.LLM.Timeout = v
	}

	return cfg
}
