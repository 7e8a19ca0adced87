package cmd

import (
	"fmt"
	"strings"

	"github.com/illjut/platinfo/internal/config"
	"github.com/spf13/cobra"
)

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Update a configuration value",
	Long: `Update a configuration value. Supported keys:
  node.version       Node.js version to resolve (e.g., 20.11.1)
  node.base_url      Node.js download mirror
  overrides.os_name  replace the detected OS name (empty to clear)
  overrides.os_arch  replace the detected architecture (empty to clear)
  log_level          debug, info, warn, error or off`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configSetCmd)
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	cfg, err := config.LoadOrDefault()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Set(key, value); err != nil {
		return fmt.Errorf("%w (supported: %s)", err, strings.Join(config.Keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := config.Save(cfg); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(ioOut, "Set %s = %s\n", key, strings.TrimSpace(value))
	return nil
}
