package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Persistent flags available to all subcommands
	trackerURL string
	apiKey     string
	jsonOutput bool
	verbose    bool

	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "issuekit",
	Short: "issuekit is a command-line client for Redmine-compatible issue trackers",
	Long: `issuekit talks to a Redmine-compatible issue tracker over its REST API.

Connection settings can be provided via flags, environment variables
(ISSUEKIT_URL, ISSUEKIT_API_KEY), or a configuration file. By default,
issuekit looks for a configuration file at ~/.config/issuekit/config.yaml.`,
	// No Run function here means 'issuekit' with no args will print help text by default.
	SilenceUsage:  true,
	SilenceErrors: true, // We handle errors in Execute()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&trackerURL, "url", "", "Tracker base URL (default: http://localhost:3000)")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "Tracker API key")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output command results in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
