package filesystem

import (
	"os"

	"github.com/pkg/errors"
)

// DirectoryContentsByPath returns the immediate contents of the directory at
// the specified path, sorted by name. The listing is read completely and the
// directory handle is released before this function returns, so callers are
// free to rename or remove the returned entries while iterating over them. The
// entries' types are those reported by the directory listing, so symbolic
// links are never reported as directories.
func DirectoryContentsByPath(path string) ([]os.DirEntry, error) {
	contents, err := os.ReadDir(path)
	if err != nil {
		return nil, errors.Wrap(err, "unable to read directory contents")
	}
	return contents, nil
}
