package filesystem

import (
	"golang.org/x/sys/unix"

	"github.com/mutagen-io/nfcify/pkg/state"
)

// renameat2FailedWithENOSYS tracks if renameat2 previously failed with ENOSYS.
var renameat2FailedWithENOSYS state.Marker

// renameatNoReplaceRetryingOnEINTR performs a renameat operation that fails
// (with EEXIST) if the target already exists. It returns ENOTSUP if the
// functionality is not supported on the target filesystem and ENOSYS if the
// kernel lacks renameat2. It retries on EINTR errors.
func renameatNoReplaceRetryingOnEINTR(oldDirectory int, oldPath string, newDirectory int, newPath string) error {
	// If renameat2 is known to be unavailable, then return immediately.
	if renameat2FailedWithENOSYS.Marked() {
		return unix.ENOSYS
	}

	// Loop until renameat2 completes with a return value other that EINTR.
	for {
		err := unix.Renameat2(oldDirectory, oldPath, newDirectory, newPath, unix.RENAME_NOREPLACE)
		if err == unix.EINTR {
			continue
		} else if err == unix.EINVAL {
			// HACK: Filesystems that don't support RENAME_NOREPLACE yield
			// EINVAL. We alias this to ENOTSUP so that the caller falls back
			// to probing. EINVAL is also returned when renaming a directory
			// into its own subdirectory, but the fallback rename will surface
			// that case again.
			return unix.ENOTSUP
		} else if err == unix.ENOSYS {
			renameat2FailedWithENOSYS.Mark()
		}
		return err
	}
}
