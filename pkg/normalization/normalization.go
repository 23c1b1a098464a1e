// Package normalization renames filesystem entries whose names are not in
// Unicode Normalization Form C (NFC) to their NFC equivalents, merging
// directories whose normalized names collide with existing directories.
package normalization

import (
	"golang.org/x/text/unicode/norm"
)

// IsNormalized returns whether or not a name is already in NFC.
func IsNormalized(name string) bool {
	return norm.NFC.IsNormalString(name)
}

// Normalize returns the NFC form of a name. It is idempotent.
func Normalize(name string) string {
	return norm.NFC.String(name)
}
