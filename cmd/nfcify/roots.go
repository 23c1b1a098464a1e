package main

import (
	"github.com/pkg/errors"

	"github.com/mutagen-io/nfcify/pkg/filesystem"
	"github.com/mutagen-io/nfcify/pkg/filesystem/behavior"
	"github.com/mutagen-io/nfcify/pkg/ignore"
	"github.com/mutagen-io/nfcify/pkg/logging"
	"github.com/mutagen-io/nfcify/pkg/normalization"
)

// errDecomposingFilesystem indicates that a root resides on a filesystem that
// decomposes Unicode names.
var errDecomposingFilesystem = errors.New("filesystem decomposes Unicode names")

// decompositionGuard returns a normalizer guard that checks whether or not
// composed names can be stored under root. It only runs once the tree is known
// to need changes, since the check creates a file in root. A failure of the
// check itself (e.g. a read-only root) is logged and doesn't prevent
// processing.
func decompositionGuard(root string, force bool, logger *logging.Logger) func() error {
	return func() error {
		if decomposes, err := behavior.DecomposesUnicodeByPath(root); err != nil {
			logger.Warn(errors.Wrapf(err, "unable to probe Unicode behavior of %q", root))
		} else if decomposes && !force {
			return errDecomposingFilesystem
		}
		return nil
	}
}

// normalizeRoots normalizes each root in order, stopping at the first failure.
// Roots residing on filesystems that decompose Unicode names are skipped with a
// warning unless force is set.
func normalizeRoots(roots []string, ignorer *ignore.Ignorer, force bool, logger *logging.Logger) error {
	for _, root := range roots {
		// Resolve the root path.
		path, err := filesystem.ResolvePath(root)
		if err != nil {
			return errors.Wrapf(err, "unable to resolve root %q", root)
		}

		// Perform normalization.
		normalizer := normalization.NewNormalizer(ignorer, logger.Sublogger("normalization"))
		normalizer.SetGuard(decompositionGuard(path, force, logger))
		if err := normalizer.Walk(path); errors.Is(err, errDecomposingFilesystem) {
			logger.Warnf("Skipping %q: filesystem decomposes Unicode names (use --force to process anyway)", path)
			continue
		} else if err != nil {
			return err
		}
		logger.Infof("Normalized %q: %s", path, normalizer.Statistics())
	}

	// Success.
	return nil
}
