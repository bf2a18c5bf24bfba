// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/patent-scout/internal/search"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search PatentsView for prior patents",
	Long: `Search queries the PatentsView API directly and prints the matching
patents without invoking the model. The query comes from --query or, when
absent, from stdin.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().String("query", "", "free-text query across patent titles and abstracts")
	searchCmd.Flags().String("keywords", "", "search keywords (comma-separated, override --query)")
	searchCmd.Flags().String("from", "", "grant date lower bound (YYYY-MM-DD, default 2010-01-01)")
	searchCmd.Flags().String("to", "", "grant date upper bound (YYYY-MM-DD)")
	searchCmd.Flags().Int("max-results", 0, "maximum patents to retrieve (default 5)")
	searchCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	searchCmd.Flags().Bool("yaml", false, "output results as YAML")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg := buildConfig(cmd)
	if v, _ := cmd.Flags().GetString("from"); v != "" {
		cfg.Search.MinDate = v
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	query := search.Query{}
	query.Text, _ = cmd.Flags().GetString("query")
	if kw, _ := cmd.Flags().GetString("keywords"); kw != "" {
		for _, k := range strings.Split(kw, ",") {
			if k = strings.TrimSpace(k); k != "" {
				query.Keywords = append(query.Keywords, k)
			}
		}
	}
	query.DateTo, _ = cmd.Flags().GetString("to")

	if query.Text == "" && len(query.Keywords) == 0 {
		idea, err := readIdea(cmd.InOrStdin())
		if err != nil {
			return err
		}
		query.Text = idea
	}

	patents, err := search.NewClient(cfg.Search).Search(cmd.Context(), query)
	if err != nil {
		return err
	}

	asJSON, _ := cmd.Flags().GetBool("json")
	asYAML, _ := cmd.Flags().GetBool("yaml")

	switch {
	case asJSON:
		return search.FormatJSON(patents, os.Stdout)
	case asYAML:
		return search.FormatYAML(patents, os.Stdout)
	default:
		search.FormatTable(patents, os.Stdout)
		return nil
	}
}
