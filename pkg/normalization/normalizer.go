package normalization

import (
	"os"
	pathpkg "path"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/mutagen-io/nfcify/pkg/filesystem"
	"github.com/mutagen-io/nfcify/pkg/ignore"
	"github.com/mutagen-io/nfcify/pkg/logging"
)

// Normalizer renames the contents of directory trees to NFC. It is not safe for
// concurrent usage.
type Normalizer struct {
	// ignorer selects paths that are left untouched. It may be nil.
	ignorer *ignore.Ignorer
	// logger is the underlying logger. It may be nil.
	logger *logging.Logger
	// statistics records the changes made so far.
	statistics Statistics
	// guard is invoked once before the first modification. It may be nil.
	guard func() error
	// guarded indicates whether or not guard has already succeeded.
	guarded bool
}

// NewNormalizer creates a new normalizer. Both ignorer and logger may be nil.
func NewNormalizer(ignorer *ignore.Ignorer, logger *logging.Logger) *Normalizer {
	return &Normalizer{
		ignorer: ignorer,
		logger:  logger,
	}
}

// Statistics returns the changes made by the normalizer so far.
func (n *Normalizer) Statistics() Statistics {
	return n.statistics
}

// SetGuard registers a function that is invoked once, immediately before the
// normalizer first modifies the tree. If it returns an error, then the walk
// stops with that error and nothing is modified. Trees that are already
// normalized never trigger the guard.
func (n *Normalizer) SetGuard(guard func() error) {
	n.guard = guard
	n.guarded = false
}

// ensureGuarded invokes the guard if it hasn't yet succeeded.
func (n *Normalizer) ensureGuarded() error {
	if n.guard == nil || n.guarded {
		return nil
	}
	if err := n.guard(); err != nil {
		return err
	}
	n.guarded = true
	return nil
}

// EnsureRoot verifies that the specified path exists and is a directory.
// Symbolic links are followed for the root itself only.
func EnsureRoot(root string) error {
	if info, err := os.Stat(root); err != nil {
		return errors.Wrap(err, "unable to query root metadata")
	} else if !info.IsDir() {
		return errors.New("root is not a directory")
	}
	return nil
}

// Walk normalizes every name beneath root. The name of root itself is left
// unchanged. Processing stops at the first error, leaving any changes already
// made in place. The returned error identifies each path being processed, from
// root down to the entry at which the failure occurred.
func (n *Normalizer) Walk(root string) error {
	if err := EnsureRoot(root); err != nil {
		return errors.Wrapf(err, "unable to process %q", root)
	}
	if err := n.walk(root, ""); err != nil {
		return errors.Wrapf(err, "unable to process %q", root)
	}
	return nil
}

// walk is the recursive traversal underlying Walk. It processes a directory's
// contents in post-order, so that every entry's descendants are normalized
// before the entry itself is renamed or merged. The relative path is the
// slash-separated, normalized path of the directory with respect to the root.
func (n *Normalizer) walk(path, relative string) error {
	// Read the directory contents. The listing is a snapshot, so renaming its
	// entries while iterating is safe.
	contents, err := filesystem.DirectoryContentsByPath(path)
	if err != nil {
		return err
	}

	// Process contents.
	for _, c := range contents {
		name := c.Name()
		contentPath := filepath.Join(path, name)
		contentRelative := pathpkg.Join(relative, Normalize(name))
		directory := c.IsDir()

		// Skip ignored content entirely.
		if n.ignorer.Ignored(contentRelative, directory) {
			n.logger.Tracef("Ignoring %q", contentPath)
			continue
		}

		// Normalize directory contents before the directory itself.
		if directory {
			if err := n.walk(contentPath, contentRelative); err != nil {
				return errors.Wrapf(err, "unable to process %q", contentPath)
			}
		}

		// Normalize the entry's own name.
		if err := n.processEntry(contentPath); err != nil {
			return errors.Wrapf(err, "unable to process %q", contentPath)
		}
	}

	// Success.
	return nil
}

// processEntry normalizes the name of a single entry. If the entry is a
// directory, then its contents must already be normalized.
func (n *Normalizer) processEntry(path string) error {
	// If the name is already normalized, then there's nothing to do.
	name := filepath.Base(path)
	if IsNormalized(name) {
		return nil
	}

	// Compute the target path.
	target := filepath.Join(filepath.Dir(path), Normalize(name))

	// Query the entry and any existing occupant of the target path. Metadata
	// is queried fresh since earlier operations may have changed it.
	source, err := os.Lstat(path)
	if err != nil {
		return errors.Wrap(err, "unable to query entry metadata")
	}
	existing, err := os.Lstat(target)
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "unable to query target metadata")
	}
	occupied := err == nil

	// Handle the case where the target path is unoccupied.
	if !occupied {
		if err := n.ensureGuarded(); err != nil {
			return err
		}
		if err := filesystem.Rename(path, target, false); err != nil {
			if filesystem.IsExistError(err) {
				return &CollisionError{Source: path, Target: target}
			}
			return errors.Wrap(err, "unable to rename entry")
		}
		n.recordRename(path, target, source.IsDir())
		return nil
	}

	// Normalization-insensitive filesystems report both spellings of a name as
	// the same entry. In that case we just need to change the stored spelling,
	// which requires a replacing rename. Both spellings may instead be hard
	// links to the same file (distinguishable only through the directory
	// listing), in which case a rename is a no-op and we report a collision.
	if os.SameFile(source, existing) {
		linked, err := containsName(filepath.Dir(path), filepath.Base(target))
		if err != nil {
			return err
		} else if linked {
			return &CollisionError{Source: path, Target: target}
		}
		if err := n.ensureGuarded(); err != nil {
			return err
		}
		if err := filesystem.Rename(path, target, true); err != nil {
			return errors.Wrap(err, "unable to rename entry")
		}
		n.recordRename(path, target, source.IsDir())
		return nil
	}

	// Only directories can be merged, and only into other directories.
	if !source.IsDir() || !existing.IsDir() {
		return &CollisionError{Source: path, Target: target}
	}

	// Merge the directory into its normalized counterpart.
	if err := n.ensureGuarded(); err != nil {
		return err
	}
	if err := n.mergeDirectory(path, target); err != nil {
		return errors.Wrapf(err, "unable to merge into %q", target)
	}

	// Success.
	return nil
}

// containsName returns whether or not the listing of directory includes an
// entry stored under exactly the specified name.
func containsName(directory, name string) (bool, error) {
	contents, err := filesystem.DirectoryContentsByPath(directory)
	if err != nil {
		return false, err
	}
	for _, c := range contents {
		if c.Name() == name {
			return true, nil
		}
	}
	return false, nil
}

// recordRename records a successful in-place rename.
func (n *Normalizer) recordRename(path, target string, directory bool) {
	if directory {
		n.statistics.RenamedDirectories++
	} else {
		n.statistics.RenamedFiles++
	}
	n.logger.Debugf("Renamed %q to %q", path, target)
}

// mergeDirectory moves every immediate child of from into to and then removes
// from. Children are moved under their existing names, which are already
// normalized. If a child collides with existing content in to, then the merge
// stops, leaving from and its remaining children in place.
func (n *Normalizer) mergeDirectory(from, to string) error {
	// Read the source contents.
	contents, err := filesystem.DirectoryContentsByPath(from)
	if err != nil {
		return err
	}

	// Move each child.
	for _, c := range contents {
		source := filepath.Join(from, c.Name())
		target := filepath.Join(to, c.Name())
		if err := filesystem.Rename(source, target, false); err != nil {
			if filesystem.IsExistError(err) {
				return &CollisionError{Source: source, Target: target}
			}
			return errors.Wrapf(err, "unable to move %q", source)
		}
		n.statistics.MovedEntries++
	}

	// Remove the now-empty source.
	if err := os.Remove(from); err != nil {
		return errors.Wrap(err, "unable to remove merged directory")
	}
	n.statistics.MergedDirectories++
	n.logger.Debugf("Merged %q into %q", from, to)

	// Success.
	return nil
}
