package filesystem

import (
	"os"

	"github.com/pkg/errors"
)

// IsExistError returns whether or not an error returned from Rename indicates
// that the non-replaceable target already exists.
func IsExistError(err error) bool {
	return errors.Is(err, os.ErrExist)
}

// linkError wraps a raw rename error with its source and target paths in the
// same manner as os.Rename.
func linkError(source, target string, err error) error {
	if err == nil {
		return nil
	}
	return &os.LinkError{Op: "rename", Old: source, New: target, Err: err}
}
