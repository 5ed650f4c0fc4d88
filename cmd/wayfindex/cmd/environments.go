package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/wayfindex/internal/cmd/output"
	"github.com/agentstation/wayfindex/pkg/config"
)

// environmentsCmd lists the agent groups declared in the configuration.
var environmentsCmd = &cobra.Command{
	Use:     "environments",
	Aliases: []string{"envs"},
	Short:   "List configured agent groups",
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := config.Load(configPath())
		if err != nil {
			return err
		}

		type row struct {
			Name   string `json:"name"`
			Agents string `json:"agents"`
		}
		rows := make([]row, 0, len(cfg.Environments))
		for _, env := range cfg.Environments {
			rows = append(rows, row{
				Name:   env.Name,
				Agents: strings.Join(env.Agents, ", "),
			})
		}

		formatter := output.NewFormatter(output.Format(globalFlags.Format))
		return formatter.Format(os.Stdout, rows)
	},
}

func init() {
	rootCmd.AddCommand(environmentsCmd)
}
