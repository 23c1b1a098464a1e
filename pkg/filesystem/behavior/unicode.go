// Package behavior provides probes for filesystem behavior that affects how
// names can be stored.
package behavior

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/mutagen-io/nfcify/pkg/filesystem"
)

const (
	// probeNamePrefix is the prefix used for probe files created by the
	// Unicode decomposition test.
	probeNamePrefix = ".nfcify-unicode-test-"
	// composedNameSuffix is the suffix appended to probe file names. It is in
	// NFC form.
	composedNameSuffix = "-\xc3\xa9ntry"
	// decomposedNameSuffix is the NFD equivalent of composedNameSuffix.
	decomposedNameSuffix = "-\x65\xcc\x81ntry"
)

// DecomposesUnicodeByPath determines whether or not the filesystem on which the
// directory at the specified path resides decomposes Unicode filenames. On such
// filesystems (e.g. HFS+) names are always stored in a decomposed form, so
// renaming entries to NFC has no lasting effect.
func DecomposesUnicodeByPath(path string) (bool, error) {
	// Compute composed and decomposed variants of a unique probe name.
	token := uuid.New().String()
	composedName := probeNamePrefix + token + composedNameSuffix
	decomposedName := probeNamePrefix + token + decomposedNameSuffix

	// Create and close the probe file using the composed name.
	file, err := os.OpenFile(filepath.Join(path, composedName), os.O_RDWR|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return false, errors.Wrap(err, "unable to create test file")
	} else if err = file.Close(); err != nil {
		return false, errors.Wrap(err, "unable to close test file")
	}

	// Defer removal of the file. Since we don't know whether the filesystem is
	// also normalization-insensitive, we try both compositions.
	defer func() {
		if os.Remove(filepath.Join(path, composedName)) != nil {
			os.Remove(filepath.Join(path, decomposedName))
		}
	}()

	// Grab the contents of the path.
	contents, err := filesystem.DirectoryContentsByPath(path)
	if err != nil {
		return false, errors.Wrap(err, "unable to read directory contents")
	}

	// Loop through contents and see which variant of the name was stored.
	for _, c := range contents {
		name := c.Name()
		if name == decomposedName {
			return true, nil
		} else if name == composedName {
			return false, nil
		}
	}

	// If we didn't find any match, something's fishy.
	return false, errors.New("unable to find test file after creation")
}
