// Package cmd implements the wayfindex CLI commands.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/agentstation/wayfindex/internal/cmd/globals"
	"github.com/agentstation/wayfindex/internal/cmd/output"
	"github.com/agentstation/wayfindex/pkg/config"
	"github.com/agentstation/wayfindex/pkg/logging"
)

var (
	globalFlags *globals.Flags

	// Version is the release version set by main.
	Version = "dev"
	// Commit is the git commit hash.
	Commit = "unknown"
	// Date is the build date.
	Date = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "wayfindex",
	Short: "Multi-agent place search notes",
	Long: `Wayfindex sends a place search query to a group of AI agents at once,
validates each structured response, and writes one markdown note per
successful agent.

Agents are declared in a YAML configuration file as provider and model
pairs, grouped into named environments. API keys stay in environment
variables and are never written to disk or logs.`,
	PersistentPreRunE: setupCommand,
}

// Execute runs the root command with signal-aware context.
func Execute(version, commit, date string) {
	Version = version
	Commit = commit
	Date = date

	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	globalFlags = globals.AddFlags(rootCmd)

	if err := viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose")); err != nil {
		panic(fmt.Sprintf("Failed to bind verbose flag: %v", err))
	}
	if err := viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet")); err != nil {
		panic(fmt.Sprintf("Failed to bind quiet flag: %v", err))
	}
}

// configPath resolves the configuration file path from the global flag.
func configPath() string {
	if globalFlags != nil && globalFlags.Config != "" {
		return globalFlags.Config
	}
	return config.DefaultPath
}

// initConfig loads .env files and configures logging before any command runs.
func initConfig() {
	loadEnvFiles()
	viper.AutomaticEnv()
	configureLogging()
}

// setupCommand is called before any command runs.
func setupCommand(_ *cobra.Command, _ []string) error {
	if globalFlags.Format == "" {
		globalFlags.Format = string(output.DetectFormat(""))
	}
	if _, err := output.ParseFormat(globalFlags.Format); err != nil {
		return err
	}
	return nil
}

// configureLogging sets the log level from flags and environment.
func configureLogging() {
	level := zerolog.InfoLevel
	if globalFlags != nil && globalFlags.Verbose || viper.GetBool("verbose") {
		level = zerolog.DebugLevel
	}
	if globalFlags != nil && globalFlags.Quiet || viper.GetBool("quiet") {
		level = zerolog.WarnLevel
	}
	if envLevel := os.Getenv("LOG_LEVEL"); envLevel != "" {
		if parsed, err := zerolog.ParseLevel(envLevel); err == nil {
			level = parsed
		}
	}
	logging.SetLevel(level)
}

// loadEnvFiles loads .env files beside the configuration file and in the
// working directory. Values already in the environment win.
func loadEnvFiles() {
	seen := map[string]bool{}
	for _, envFile := range []string{
		filepath.Join(filepath.Dir(configPath()), ".env"),
		".env",
	} {
		if seen[envFile] {
			continue
		}
		seen[envFile] = true
		if err := godotenv.Load(envFile); err == nil {
			if globalFlags != nil && globalFlags.Verbose {
				fmt.Fprintf(os.Stderr, "Loaded %s\n", envFile)
			}
		}
	}
}
