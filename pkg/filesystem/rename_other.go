//go:build !windows && !linux && !darwin

package filesystem

import (
	"golang.org/x/sys/unix"
)

// renameatNoReplaceRetryingOnEINTR reports ENOSYS on platforms without a
// non-replacing renameat variant, forcing the probing fallback.
func renameatNoReplaceRetryingOnEINTR(_ int, _ string, _ int, _ string) error {
	return unix.ENOSYS
}
