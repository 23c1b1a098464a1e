package normalization

import (
	"fmt"
)

// CollisionError indicates that an entry couldn't be moved to its target path
// because another entry already occupies that path and the two can't be merged.
// Any work performed before the collision is left in place.
type CollisionError struct {
	// Source is the path of the entry that couldn't be moved.
	Source string
	// Target is the occupied path.
	Target string
}

// Error implements error.Error.
func (e *CollisionError) Error() string {
	return fmt.Sprintf("unable to move %q: %q already exists", e.Source, e.Target)
}
