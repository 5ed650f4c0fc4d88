package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/wayfindex/internal/cmd/output"
	"github.com/agentstation/wayfindex/pkg/categories"
	"github.com/agentstation/wayfindex/pkg/errors"
)

var categoriesPath string

// categoriesCmd manages the place category list.
var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Manage place categories",
	Long: `Categories constrain what agents may classify a place as. The list
lives in a small JSON file and is created with defaults on first use.`,
}

var categoriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List known categories",
	RunE: func(_ *cobra.Command, _ []string) error {
		list, err := categories.Load(resolveCategoriesPath())
		if err != nil {
			return err
		}

		type row struct {
			Category string `json:"category"`
		}
		rows := make([]row, 0, len(list))
		for _, c := range list {
			rows = append(rows, row{Category: c})
		}

		formatter := output.NewFormatter(output.Format(globalFlags.Format))
		return formatter.Format(os.Stdout, rows)
	},
}

var categoriesAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		name := strings.ToLower(strings.TrimSpace(args[0]))
		if name == "" {
			return errors.NewValidationError("name", args[0], "must not be empty")
		}

		path := resolveCategoriesPath()
		list, err := categories.Load(path)
		if err != nil {
			return err
		}
		if categories.Contains(list, name) {
			fmt.Printf("category %q already exists\n", name)
			return nil
		}

		if err := categories.Save(path, append(list, name)); err != nil {
			return err
		}
		fmt.Printf("added category %q\n", name)
		return nil
	},
}

func resolveCategoriesPath() string {
	if categoriesPath != "" {
		return categoriesPath
	}
	return categories.PathNear(configPath())
}

func init() {
	categoriesCmd.PersistentFlags().StringVar(&categoriesPath, "file", "",
		"Path to the category file (default: categories.json beside config)")
	categoriesCmd.AddCommand(categoriesListCmd)
	categoriesCmd.AddCommand(categoriesAddCmd)
	rootCmd.AddCommand(categoriesCmd)
}
