package platform

import (
	"errors"
	"sync"
	"testing"

	"github.com/illjut/platinfo/internal/hostenv"
)

func TestClassifyPlatform(t *testing.T) {
	tests := []struct {
		name   string
		osName string
		want   Platform
		wantOK bool
	}{
		{"windows 10", "Windows 10", Windows, true},
		{"mac os x", "Mac OS X", Darwin, true},
		{"linux", "Linux", Linux, true},
		{"sunos", "SunOS", "", false},
		{"mixed case windows", "WiN32", Windows, true},
		{"freebsd", "FreeBSD", "", false},
		{"aix after first char", "IBM AIX", Linux, true},
		{"aix at start", "AIX", "", false},
		{"hp-ux", "HP-UX", "", false},
		{"unix", "Unix", Linux, true},
		{"darwin matches win first", "darwin", Windows, true},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ClassifyPlatform(tt.osName)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ClassifyPlatform(%q) = (%q, %v), want (%q, %v)", tt.osName, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestFamilyPredicates(t *testing.T) {
	tests := []struct {
		osName  string
		windows bool
		mac     bool
		unix    bool
	}{
		{"Windows 10", true, false, false},
		{"Mac OS X", false, true, false},
		{"Linux", false, false, true},
		{"SunOS", false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.osName, func(t *testing.T) {
			if got := IsWindows(tt.osName); got != tt.windows {
				t.Errorf("IsWindows = %v, want %v", got, tt.windows)
			}
			if got := IsMac(tt.osName); got != tt.mac {
				t.Errorf("IsMac = %v, want %v", got, tt.mac)
			}
			if got := IsUnix(tt.osName); got != tt.unix {
				t.Errorf("IsUnix = %v, want %v", got, tt.unix)
			}
		})
	}
}

func TestClassifyArch(t *testing.T) {
	tests := []struct {
		arch    string
		want    Arch
		wantErr bool
	}{
		{"amd64", X64, false},
		{"x86_64", X64, false},
		{"i386", X86, false},
		{"x86", X86, false},
		{"aarch64", X64, false},
		{"ppc64le", X64, false},
		{"sparc", X86, false},
		{"", X86, false},
		{"arm", "", true},
		{"ARM", "", true},
		{"armv7l", X86, false},
	}

	for _, tt := range tests {
		t.Run(tt.arch, func(t *testing.T) {
			got, err := ClassifyArch(tt.arch)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedArchitecture) {
					t.Fatalf("ClassifyArch(%q) error = %v, want ErrUnsupportedArchitecture", tt.arch, err)
				}
				var archErr *UnsupportedArchitectureError
				if !errors.As(err, &archErr) {
					t.Fatalf("error %T is not *UnsupportedArchitectureError", err)
				}
				if archErr.Arch != tt.arch {
					t.Errorf("Arch = %q, want original %q", archErr.Arch, tt.arch)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ClassifyArch(%q) = %q, want %q", tt.arch, got, tt.want)
			}
		})
	}
}

func TestInfoTags(t *testing.T) {
	tests := []struct {
		name    string
		info    Info
		want    string
		wantErr string
	}{
		{"linux x64", Info{OSName: "Linux", ArchName: "amd64"}, "linux-x64", ""},
		{"windows x86", Info{OSName: "Windows 10", ArchName: "x86"}, "win-x86", ""},
		{"mac arm64", Info{OSName: "Mac OS X", ArchName: "aarch64"}, "darwin-x64", ""},
		{"unknown os", Info{OSName: "SunOS", ArchName: "amd64"}, "", `unknown platform "SunOS"`},
		{"arm", Info{OSName: "Linux", ArchName: "arm"}, "", "unsupported architecture: arm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.info.Tags()
			if tt.wantErr != "" {
				if err == nil || err.Error() != tt.wantErr {
					t.Fatalf("Tags() error = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("Tags() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFromEnv(t *testing.T) {
	info := FromEnv(hostenv.Env{OSName: "Linux", Arch: "amd64"})
	if !info.IsUnix() || info.IsWindows() || info.IsMac() {
		t.Errorf("unexpected family for %+v", info)
	}
}

func TestCurrentIsStable(t *testing.T) {
	first := Current()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := Current(); got != first {
				t.Errorf("Current() = %+v, want %+v", got, first)
			}
		}()
	}
	wg.Wait()

	p1, ok1 := first.Platform()
	p2, ok2 := Current().Platform()
	if p1 != p2 || ok1 != ok2 {
		t.Errorf("Platform() not idempotent: (%q, %v) vs (%q, %v)", p1, ok1, p2, ok2)
	}
}
