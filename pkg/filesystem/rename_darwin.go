package filesystem

import (
	"golang.org/x/sys/unix"
)

// renameatNoReplaceRetryingOnEINTR performs a renameat operation that fails
// (with EEXIST) if the target already exists. It returns ENOTSUP if the
// functionality is not supported on the target filesystem. It retries on EINTR
// errors.
func renameatNoReplaceRetryingOnEINTR(oldDirectory int, oldPath string, newDirectory int, newPath string) error {
	for {
		err := unix.RenameatxNp(oldDirectory, oldPath, newDirectory, newPath, unix.RENAME_EXCL)
		if err == unix.EINTR {
			continue
		}
		return err
	}
}
