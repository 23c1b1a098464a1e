package normalization

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Statistics records the changes made by a Normalizer.
type Statistics struct {
	// RenamedFiles is the number of non-directory entries renamed.
	RenamedFiles uint64
	// RenamedDirectories is the number of directories renamed in place.
	RenamedDirectories uint64
	// MergedDirectories is the number of directories merged into an existing
	// directory and removed.
	MergedDirectories uint64
	// MovedEntries is the number of entries moved between directories while
	// merging.
	MovedEntries uint64
}

// Changed returns whether or not any change was recorded.
func (s Statistics) Changed() bool {
	return s != Statistics{}
}

// String provides a human-readable summary of the statistics.
func (s Statistics) String() string {
	if !s.Changed() {
		return "no changes"
	}
	return fmt.Sprintf("renamed %s file(s) and %s directory(ies), merged %s directory(ies) (%s entry(ies) moved)",
		humanize.Comma(int64(s.RenamedFiles)),
		humanize.Comma(int64(s.RenamedDirectories)),
		humanize.Comma(int64(s.MergedDirectories)),
		humanize.Comma(int64(s.MovedEntries)),
	)
}
