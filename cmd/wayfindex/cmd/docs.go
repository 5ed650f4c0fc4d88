package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/wayfindex/internal/docs"
	"github.com/agentstation/wayfindex/pkg/config"
	"github.com/agentstation/wayfindex/pkg/errors"
	"github.com/agentstation/wayfindex/pkg/logging"
)

var docsOutputFile string

// docsCmd prints the configuration reference, including the loaded
// configuration when one is present.
var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Print the configuration reference as markdown",
	RunE: func(_ *cobra.Command, _ []string) error {
		// A missing or invalid config file still yields the generic
		// reference.
		cfg, err := config.Load(configPath())
		if err != nil {
			logging.Debug().Err(err).Msg("configuration not loaded for docs")
			cfg = nil
		}

		var w io.Writer = os.Stdout
		if docsOutputFile != "" {
			f, err := os.Create(docsOutputFile)
			if err != nil {
				return errors.WrapIO("create", docsOutputFile, err)
			}
			defer f.Close()
			w = f
		}
		return docs.WriteReference(w, cfg)
	},
}

func init() {
	docsCmd.Flags().StringVarP(&docsOutputFile, "output", "o", "",
		"Write the reference to a file instead of stdout")
	rootCmd.AddCommand(docsCmd)
}
