package cmd

import (
	"fmt"
	"strings"

	"github.com/illjut/platinfo/internal/artifact"
	"github.com/spf13/cobra"
)

var (
	nodeVersionFlag string
	baseURLFlag     string
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Print the Node.js download matching this host",
	Long: `Resolve the Node.js distribution archive for the host's platform and
architecture tags. The version and mirror default to the config file.`,
	Args: cobra.NoArgs,
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringVar(&nodeVersionFlag, "node-version", "", "override node.version for this query")
	resolveCmd.Flags().StringVar(&baseURLFlag, "base-url", "", "override node.base_url for this query")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	cfg, info, err := loadHost()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	tags, err := info.Tags()
	if err != nil {
		return fmt.Errorf("detecting host: %w", err)
	}

	dist := artifact.Node(cfg.Node.Version)
	dist.BaseURL = cfg.Node.BaseURL
	if strings.TrimSpace(nodeVersionFlag) != "" {
		dist.Version = nodeVersionFlag
	}
	if strings.TrimSpace(baseURLFlag) != "" {
		dist.BaseURL = baseURLFlag
	}

	a, err := artifact.Resolve(dist, tags)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", dist.Name, err)
	}
	log.Debugw("artifact resolved", "name", a.Name, "url", a.URL)

	if outputFlag == formatText {
		_, err = fmt.Fprintln(ioOut, a.URL)
		return err
	}

	fields := newFields()
	fields.Set("name", a.Name)
	fields.Set("archive", a.Archive)
	fields.Set("url", a.URL)
	fields.Set("platform", string(a.Platform))
	fields.Set("arch", string(a.Arch))
	return render(ioOut, outputFlag, fields)
}
