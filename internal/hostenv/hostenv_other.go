//go:build !unix || hurd

package hostenv

import "runtime"

func osName() string {
	return nameForGOOS(runtime.GOOS)
}
