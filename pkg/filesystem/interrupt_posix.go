//go:build !windows

package filesystem

import (
	"golang.org/x/sys/unix"
)

// renameatRetryingOnEINTR is a wrapper around the renameat system call that
// retries on EINTR errors and returns on the first successful call or non-EINTR
// error.
func renameatRetryingOnEINTR(oldDirectory int, oldPath string, newDirectory int, newPath string) error {
	for {
		err := unix.Renameat(oldDirectory, oldPath, newDirectory, newPath)
		if err == unix.EINTR {
			continue
		}
		return err
	}
}
