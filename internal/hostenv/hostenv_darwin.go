//go:build darwin || ios

package hostenv

import "runtime"

// uname reports "Darwin" here, so the fixed name is used instead.
func osName() string {
	return nameForGOOS(runtime.GOOS)
}
