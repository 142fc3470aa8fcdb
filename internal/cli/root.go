package cli

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var (
	versionStr string
	commitStr  string
	dateStr    string
)

// Global flags
var (
	tokenFlag   string
	configFlag  string
	formatFlag  string
	colorFlag   string
	verboseFlag bool
)

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	versionStr = version
	commitStr = commit
	dateStr = date
}

var rootCmd = &cobra.Command{
	Use:   "helixctl",
	Short: "Manage a Twitch channel from the command line",
	Long: `helixctl updates channel information, stream tags and channel point
rewards through the Twitch Helix API.

Tags, rewards and broadcasters can be referred to by the names shown on
Twitch; helixctl resolves them to IDs before changing anything.

The access token is read from --token or HELIX_TOKEN.`,
	SilenceUsage: true,
}

// Execute runs the root command. An interrupt cancels in-flight requests.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&tokenFlag, "token", "", "User access token (default $HELIX_TOKEN)")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (default .helixctl.hcl)")
	rootCmd.PersistentFlags().StringVar(&formatFlag, "format", "", "Output format: text, json, compact")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "", "Color mode: auto, always, never")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Verbose output")
}
