package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/illjut/platinfo/internal/config"
	"github.com/illjut/platinfo/internal/hostenv"
	"github.com/illjut/platinfo/internal/logging"
	"github.com/illjut/platinfo/internal/platform"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	outputFlag  = formatText
	verboseFlag bool
)

// Package-level variables for testability.
// Tests override these to pin the host and capture output.
var (
	detectHost           = hostenv.Native
	ioOut      io.Writer = os.Stdout
	ioErr      io.Writer = os.Stderr
	log                  = logging.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "platinfo",
	Short: "Report the host platform and architecture tags",
	Long: `platinfo reports which operating-system family and CPU architecture the
current machine belongs to, as the short tags used to pick platform-specific
downloads.

Examples:
  platinfo
  platinfo --output json
  platinfo resolve --node-version 20.11.1`,
	Args:              cobra.NoArgs,
	RunE:              runInfo,
	SilenceUsage:      true,
	DisableAutoGenTag: true,
}

func init() {
	rootCmd.PersistentFlags().VarP(&outputFlag, "output", "o", "output format (text|json|yaml)")
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "log host detection to stderr")
}

func Execute() error {
	return rootCmd.Execute()
}

// loadHost reads the config, configures logging and reads the host once.
// Precedence is environment, then config overrides, then the detected values.
func loadHost() (*config.Config, platform.Info, error) {
	cfg, err := config.LoadOrDefault()
	if err != nil {
		return nil, platform.Info{}, fmt.Errorf("loading config: %w", err)
	}

	level := cfg.LogLevel
	if verboseFlag {
		level = "debug"
	}
	l, err := logging.New(ioErr, level)
	if err != nil {
		return nil, platform.Info{}, err
	}
	log = l

	native := detectHost()
	env := native.
		WithOverrides(cfg.Overrides.OSName, cfg.Overrides.OSArch).
		WithEnvironment()
	if env != native {
		log.Debugw("host overridden", "detected_os", native.OSName, "detected_arch", native.Arch)
	}
	log.Debugw("host detected", "os_name", env.OSName, "os_arch", env.Arch)

	return cfg, platform.FromEnv(env), nil
}

func runInfo(cmd *cobra.Command, args []string) error {
	_, info, err := loadHost()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	arch, err := info.Arch()
	if err != nil {
		log.Errorw("architecture not supported", zap.Error(err))
		return err
	}

	p, ok := info.Platform()
	platformTag, tags := "unknown", "unknown"
	if ok {
		platformTag = string(p)
		tags = platform.Tags{Platform: p, Arch: arch}.String()
	} else {
		log.Warnw("platform not recognized", "os_name", info.OSName)
	}

	fields := newFields()
	fields.Set("os_name", info.OSName)
	fields.Set("os_arch", info.ArchName)
	fields.Set("platform", platformTag)
	fields.Set("arch", string(arch))
	fields.Set("tags", tags)

	return render(ioOut, outputFlag, fields)
}
