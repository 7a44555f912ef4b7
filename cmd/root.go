package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "n/a"

var (
	configFlag  string
	offlineFlag bool
	repoFlag    string
	verboseFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "pears [group]",
	Short: "List open GitHub pull requests",
	Long: `Pears lists the open pull requests of one or more GitHub repositories.

Without arguments it lists the repository checked out in the current
directory. Name a group from the config file to list all of its repositories:

  pears work
  pears show 77 work`,
	Args:          cobra.MaximumNArgs(1),
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verboseFlag {
			log.SetLevel(log.DebugLevel)
		}
	},
	RunE: runList,
}

func init() {
	rootCmd.Version = Version
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Config file to use instead of the default locations")
	rootCmd.PersistentFlags().StringVarP(&repoFlag, "repo", "r", "", "Repository to list as <owner>/<repo> (default: the current checkout)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Log debug output to stderr")
	rootCmd.PersistentFlags().BoolVar(&offlineFlag, "offline", false, "Serve the bundled sample response instead of calling GitHub")
	_ = rootCmd.PersistentFlags().MarkHidden("offline")
}

// Execute runs the root command. An interrupt cancels in-flight requests.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}
