// Package platform classifies the host operating system and CPU architecture
// into the short tags used to pick platform-specific binaries.
package platform

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/illjut/platinfo/internal/hostenv"
)

// Platform is a normalized operating-system family tag.
type Platform string

const (
	Windows Platform = "win"
	Linux   Platform = "linux"
	Darwin  Platform = "darwin"
)

// Arch is a normalized CPU architecture tag.
type Arch string

const (
	X64 Arch = "x64"
	X86 Arch = "x86"
)

var ErrUnsupportedArchitecture = errors.New("unsupported architecture")

// UnsupportedArchitectureError carries the architecture string as it was read
// from the host.
type UnsupportedArchitectureError struct {
	Arch string
}

func (e *UnsupportedArchitectureError) Error() string {
	return fmt.Sprintf("unsupported architecture: %s", e.Arch)
}

func (e *UnsupportedArchitectureError) Unwrap() error {
	return ErrUnsupportedArchitecture
}

// IsWindows reports whether osName names a Windows release.
func IsWindows(osName string) bool {
	return strings.Contains(strings.ToLower(osName), "win")
}

// IsMac reports whether osName names a macOS release.
func IsMac(osName string) bool {
	return strings.Contains(strings.ToLower(osName), "mac")
}

// IsUnix reports whether osName names a Unix-like system. "aix" only counts
// past the first character.
func IsUnix(osName string) bool {
	s := strings.ToLower(osName)
	return strings.Contains(s, "nix") ||
		strings.Contains(s, "nux") ||
		strings.Index(s, "aix") > 0
}

// ClassifyPlatform maps an operating-system name to its platform tag.
// Windows is checked first, then Unix, then macOS. The boolean is false when
// nothing matches.
func ClassifyPlatform(osName string) (Platform, bool) {
	switch {
	case IsWindows(osName):
		return Windows, true
	case IsUnix(osName):
		return Linux, true
	case IsMac(osName):
		return Darwin, true
	}
	return "", false
}

// ClassifyArch maps an architecture name to its tag. Any name containing "64"
// is x64, "arm" is rejected, and everything else falls back to x86.
func ClassifyArch(archName string) (Arch, error) {
	s := strings.ToLower(archName)
	if strings.Contains(s, "64") {
		return X64, nil
	}
	if s == "arm" {
		return "", &UnsupportedArchitectureError{Arch: archName}
	}
	return X86, nil
}

// Tags is the platform/arch pair used to locate a platform-specific resource.
type Tags struct {
	Platform Platform
	Arch     Arch
}

func (t Tags) String() string {
	return string(t.Platform) + "-" + string(t.Arch)
}

// Info holds the raw host strings the tags are derived from.
type Info struct {
	OSName   string
	ArchName string
}

// FromEnv builds an Info from a detected host environment.
func FromEnv(env hostenv.Env) Info {
	return Info{OSName: env.OSName, ArchName: env.Arch}
}

func (i Info) IsWindows() bool { return IsWindows(i.OSName) }
func (i Info) IsMac() bool     { return IsMac(i.OSName) }
func (i Info) IsUnix() bool    { return IsUnix(i.OSName) }

func (i Info) Platform() (Platform, bool) {
	return ClassifyPlatform(i.OSName)
}

func (i Info) Arch() (Arch, error) {
	return ClassifyArch(i.ArchName)
}

// Tags returns both tags. An unknown platform is an error here because a
// resource cannot be located without one.
func (i Info) Tags() (Tags, error) {
	p, ok := i.Platform()
	if !ok {
		return Tags{}, fmt.Errorf("unknown platform %q", i.OSName)
	}
	a, err := i.Arch()
	if err != nil {
		return Tags{}, err
	}
	return Tags{Platform: p, Arch: a}, nil
}

var current = sync.OnceValue(func() Info {
	return FromEnv(hostenv.Detect())
})

// Current returns the Info for the running process. The host is read on the
// first call only.
func Current() Info {
	return current()
}
