// Package artifact locates the platform-specific build of a distribution
// from a platform/arch tag pair.
package artifact

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/illjut/platinfo/internal/platform"
)

// DefaultNodeBaseURL is the root of the official Node.js download mirror.
const DefaultNodeBaseURL = "https://nodejs.org/dist"

var ErrMissingVersion = errors.New("distribution version is required")

// Distribution describes where versioned builds of a tool are published.
type Distribution struct {
	Name    string
	Version string
	BaseURL string
}

// Node returns the Node.js distribution for version on the official mirror.
func Node(version string) Distribution {
	return Distribution{Name: "node", Version: version, BaseURL: DefaultNodeBaseURL}
}

// Artifact is a resolved platform-specific archive.
type Artifact struct {
	Name     string
	Archive  string
	URL      string
	Platform platform.Platform
	Arch     platform.Arch
}

// Resolve builds the archive name and download URL of dist for tags.
// Windows builds are zip files, everything else is a gzipped tarball.
func Resolve(dist Distribution, tags platform.Tags) (Artifact, error) {
	version := strings.TrimPrefix(strings.TrimSpace(dist.Version), "v")
	if version == "" {
		return Artifact{}, ErrMissingVersion
	}

	base, err := url.Parse(strings.TrimRight(dist.BaseURL, "/"))
	if err != nil {
		return Artifact{}, fmt.Errorf("parsing base URL: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return Artifact{}, fmt.Errorf("base URL %q must be absolute", dist.BaseURL)
	}

	ext := "tar.gz"
	if tags.Platform == platform.Windows {
		ext = "zip"
	}

	name := fmt.Sprintf("%s-v%s-%s", dist.Name, version, tags)
	archive := name + "." + ext

	return Artifact{
		Name:     name,
		Archive:  archive,
		URL:      base.JoinPath("v"+version, archive).String(),
		Platform: tags.Platform,
		Arch:     tags.Arch,
	}, nil
}
