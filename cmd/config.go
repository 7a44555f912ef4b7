package cmd

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as TOML",
	Long: `Print the configuration pears would run with, after every config file
has been applied over the built-in defaults. The token is never printed.

Redirect the output to start a config file of your own:

  pears config > ~/.config/pears/pears.toml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	loadResult, err := loadConfig()
	if err != nil {
		return err
	}
	log.Debug("effective config", "sources", loadResult.SourcePaths)

	// Encode to a buffer so a failure prints nothing.
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(loadResult.Config.Redacted()); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	_, err = buf.WriteTo(cmd.OutOrStdout())
	return err
}
