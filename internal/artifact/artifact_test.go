package artifact

import (
	"errors"
	"strings"
	"testing"

	"github.com/illjut/platinfo/internal/platform"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name        string
		dist        Distribution
		tags        platform.Tags
		wantName    string
		wantArchive string
		wantURL     string
	}{
		{
			name:        "linux x64",
			dist:        Node("20.11.1"),
			tags:        platform.Tags{Platform: platform.Linux, Arch: platform.X64},
			wantName:    "node-v20.11.1-linux-x64",
			wantArchive: "node-v20.11.1-linux-x64.tar.gz",
			wantURL:     "https://nodejs.org/dist/v20.11.1/node-v20.11.1-linux-x64.tar.gz",
		},
		{
			name:        "windows uses zip",
			dist:        Node("v18.19.0"),
			tags:        platform.Tags{Platform: platform.Windows, Arch: platform.X86},
			wantName:    "node-v18.19.0-win-x86",
			wantArchive: "node-v18.19.0-win-x86.zip",
			wantURL:     "https://nodejs.org/dist/v18.19.0/node-v18.19.0-win-x86.zip",
		},
		{
			name:        "custom mirror with trailing slash",
			dist:        Distribution{Name: "node", Version: "16.20.2", BaseURL: "https://mirror.example.com/node/"},
			tags:        platform.Tags{Platform: platform.Darwin, Arch: platform.X64},
			wantName:    "node-v16.20.2-darwin-x64",
			wantArchive: "node-v16.20.2-darwin-x64.tar.gz",
			wantURL:     "https://mirror.example.com/node/v16.20.2/node-v16.20.2-darwin-x64.tar.gz",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.dist, tt.tags)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", got.Name, tt.wantName)
			}
			if got.Archive != tt.wantArchive {
				t.Errorf("Archive = %q, want %q", got.Archive, tt.wantArchive)
			}
			if got.URL != tt.wantURL {
				t.Errorf("URL = %q, want %q", got.URL, tt.wantURL)
			}
			if got.Platform != tt.tags.Platform || got.Arch != tt.tags.Arch {
				t.Errorf("tags = %s-%s, want %s", got.Platform, got.Arch, tt.tags)
			}
		})
	}
}

func TestResolveErrors(t *testing.T) {
	tags := platform.Tags{Platform: platform.Linux, Arch: platform.X64}

	t.Run("missing version", func(t *testing.T) {
		_, err := Resolve(Node("  "), tags)
		if !errors.Is(err, ErrMissingVersion) {
			t.Errorf("error = %v, want ErrMissingVersion", err)
		}
	})

	t.Run("relative base URL", func(t *testing.T) {
		_, err := Resolve(Distribution{Name: "node", Version: "20.0.0", BaseURL: "dist"}, tags)
		if err == nil || !strings.Contains(err.Error(), "must be absolute") {
			t.Errorf("error = %v, want absolute URL error", err)
		}
	})

	t.Run("unparseable base URL", func(t *testing.T) {
		_, err := Resolve(Distribution{Name: "node", Version: "20.0.0", BaseURL: "http://[::1"}, tags)
		if err == nil || !strings.Contains(err.Error(), "parsing base URL") {
			t.Errorf("error = %v, want parse error", err)
		}
	})
}
