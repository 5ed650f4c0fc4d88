package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/wayfindex"
	"github.com/agentstation/wayfindex/internal/cmd/output"
)

var (
	searchQuery       string
	searchGroup       string
	searchOutputDir   string
	searchTemplate    string
	searchTemplateDir string
	searchCategories  string
)

// searchCmd runs a place search across an agent group.
var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Query an agent group about a place and write notes",
	Long: `Search sends the query to every agent in the selected group
concurrently. Each valid response is rendered through the note template
and written to the output directory as its own markdown file.

An agent failure does not stop the others. The command exits non-zero
only when the whole run fails or no agent produces a note.`,
	Example: `  wayfindex search -q "best ramen in Fremont Seattle"
  wayfindex search -q "Ballard Locks" -g travel --output ./notes`,
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringVarP(&searchQuery, "query", "q", "",
		"Place search query (required)")
	searchCmd.Flags().StringVarP(&searchGroup, "agent-group", "g", "",
		"Agent group to run (default: first group in config)")
	searchCmd.Flags().StringVarP(&searchOutputDir, "output", "o", "./output",
		"Directory for the rendered note files")
	searchCmd.Flags().StringVar(&searchTemplate, "template", "",
		"Note template filename (default: built-in place_note.md)")
	searchCmd.Flags().StringVar(&searchTemplateDir, "template-dir", "",
		"Directory of custom templates, overriding built-ins")
	searchCmd.Flags().StringVar(&searchCategories, "categories", "",
		"Path to the category file (default: categories.json beside config)")

	_ = searchCmd.MarkFlagRequired("query")
}

func runSearch(cmd *cobra.Command, _ []string) error {
	summary, err := wayfindex.Run(cmd.Context(), wayfindex.Options{
		ConfigPath:     configPath(),
		Environment:    searchGroup,
		Query:          searchQuery,
		OutputDir:      searchOutputDir,
		Template:       searchTemplate,
		TemplateDir:    searchTemplateDir,
		CategoriesPath: searchCategories,
	})
	if err != nil {
		return err
	}

	if err := printSummary(summary); err != nil {
		return err
	}

	if summary.Succeeded() == 0 {
		return fmt.Errorf("all %d agents failed", summary.Failed())
	}
	return nil
}

func printSummary(summary *wayfindex.Summary) error {
	format := output.Format(globalFlags.Format)
	formatter := output.NewFormatter(format)

	if format == output.FormatTable {
		rows := make([][]string, 0, len(summary.Reports))
		for _, r := range summary.Reports {
			status, detail := "ok", r.Path
			if r.Failed() {
				status, detail = "failed", r.Error
			}
			rows = append(rows, []string{r.Agent, status, detail})
		}
		return formatter.Format(os.Stdout, output.Data{
			Headers: []string{"Agent", "Status", "Note"},
			Rows:    rows,
		})
	}
	return formatter.Format(os.Stdout, summary)
}
