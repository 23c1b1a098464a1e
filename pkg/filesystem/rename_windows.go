package filesystem

import (
	"golang.org/x/sys/windows"
)

// Rename performs an atomic rename operation from the source path to the target
// path. If replace is false and the target already exists, the rename fails
// with an error for which IsExistError returns true.
//
// This function does not support cross-device renames.
func Rename(source, target string, replace bool) error {
	// Convert paths to UTF-16.
	source16, err := windows.UTF16PtrFromString(source)
	if err != nil {
		return linkError(source, target, err)
	}
	target16, err := windows.UTF16PtrFromString(target)
	if err != nil {
		return linkError(source, target, err)
	}

	// MoveFileEx fails with ERROR_ALREADY_EXISTS unless explicitly told to
	// replace, so no probing is necessary.
	var flags uint32
	if replace {
		flags |= windows.MOVEFILE_REPLACE_EXISTING
	}
	return linkError(source, target, windows.MoveFileEx(source16, target16, flags))
}
