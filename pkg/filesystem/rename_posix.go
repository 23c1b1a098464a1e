//go:build !windows

package filesystem

import (
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"

	"github.com/mutagen-io/nfcify/pkg/state"
)

// renameatNoReplaceUnsupported is marked once a non-replacing rename has been
// rejected by a target filesystem. All subsequent non-replacing renames go
// straight to the probing fallback. The marker is process-wide, so a single
// unsupporting filesystem also moves roots on other filesystems to the
// fallback, which is slower and subject to a check-then-rename race.
var renameatNoReplaceUnsupported state.Marker

// Rename performs an atomic rename operation from the source path to the target
// path. If replace is false and the target already exists, the rename fails
// with an error for which IsExistError returns true.
//
// This function does not support cross-device renames.
func Rename(source, target string, replace bool) error {
	// If we're allowing the target to be replaced, then just attempt a standard
	// rename operation.
	if replace {
		return linkError(source, target, renameatRetryingOnEINTR(
			unix.AT_FDCWD, source,
			unix.AT_FDCWD, target,
		))
	}

	// Since we're not allowing replacement, we need to ensure that the target
	// doesn't exist. Some platforms provide specialized renameat variants and
	// flags for this purpose, so we'll see if that's the case first.
	if !renameatNoReplaceUnsupported.Marked() {
		err := renameatNoReplaceRetryingOnEINTR(
			unix.AT_FDCWD, source,
			unix.AT_FDCWD, target,
		)
		if err == nil || (err != unix.ENOTSUP && err != unix.ENOSYS) {
			return linkError(source, target, err)
		} else if err == unix.ENOTSUP {
			renameatNoReplaceUnsupported.Mark()
		}
	}

	// Fall back to the slower and less atomic method of checking whether the
	// target exists before renaming.
	if _, err := os.Lstat(target); err == nil {
		return linkError(source, target, os.ErrExist)
	} else if !os.IsNotExist(err) {
		return errors.Wrap(err, "unable to probe target existence")
	}

	// RACE: There's a race window here between the time of our check and the
	// time that the file is renamed. This is a limitation of the POSIX API.

	// Attempt the rename operation.
	return linkError(source, target, renameatRetryingOnEINTR(
		unix.AT_FDCWD, source,
		unix.AT_FDCWD, target,
	))
}
