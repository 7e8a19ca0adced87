//go:build unix && !darwin && !ios && !hurd

package hostenv

import (
	"runtime"

	"golang.org/x/sys/unix"
)

func osName() string {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return nameForGOOS(runtime.GOOS)
	}
	if name := unix.ByteSliceToString(uts.Sysname[:]); name != "" {
		return name
	}
	return nameForGOOS(runtime.GOOS)
}
