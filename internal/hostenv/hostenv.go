// Package hostenv reads the raw operating-system and architecture names of
// the running host.
//
// Names use the long-standing os.name/os.arch conventions ("Linux",
// "Mac OS X", "Windows", "amd64", "aarch64") rather than Go's GOOS/GOARCH
// values. GOOS "darwin" contains "win" and would be misread by substring
// matching.
package hostenv

import (
	"os"
	"runtime"
	"strings"
)

// Environment variables that replace the detected values when set.
const (
	EnvOSName = "PLATINFO_OS_NAME"
	EnvOSArch = "PLATINFO_OS_ARCH"
)

// Env holds the raw host strings.
type Env struct {
	OSName string
	Arch   string
}

// Detect reads the host names and applies environment overrides.
func Detect() Env {
	return Native().WithEnvironment()
}

// Native reads the host names with no overrides applied.
func Native() Env {
	return Env{
		OSName: osName(),
		Arch:   archName(runtime.GOARCH),
	}
}

// WithEnvironment applies PLATINFO_OS_NAME and PLATINFO_OS_ARCH.
func (e Env) WithEnvironment() Env {
	return e.WithOverrides(os.Getenv(EnvOSName), os.Getenv(EnvOSArch))
}

// WithOverrides returns a copy of env with any non-blank value replacing the
// detected one.
func (e Env) WithOverrides(osName, arch string) Env {
	if v := strings.TrimSpace(osName); v != "" {
		e.OSName = v
	}
	if v := strings.TrimSpace(arch); v != "" {
		e.Arch = v
	}
	return e
}

var goosNames = map[string]string{
	"aix":       "AIX",
	"android":   "Linux",
	"darwin":    "Mac OS X",
	"dragonfly": "DragonFly",
	"freebsd":   "FreeBSD",
	"illumos":   "SunOS",
	"ios":       "iOS",
	"linux":     "Linux",
	"netbsd":    "NetBSD",
	"openbsd":   "OpenBSD",
	"plan9":     "Plan9",
	"solaris":   "SunOS",
	"windows":   "Windows",
}

// nameForGOOS returns the conventional OS name for a GOOS value, or the value
// itself when there is none.
func nameForGOOS(goos string) string {
	if name, ok := goosNames[goos]; ok {
		return name
	}
	return goos
}

var goarchNames = map[string]string{
	"386":   "x86",
	"amd64": "amd64",
	"arm":   "arm",
	"arm64": "aarch64",
}

// archName maps a GOARCH value to the conventional architecture name.
// Unlisted values pass through unchanged.
func archName(goarch string) string {
	if name, ok := goarchNames[goarch]; ok {
		return name
	}
	return goarch
}
