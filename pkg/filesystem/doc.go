// Package filesystem provides the filesystem primitives used for renaming
// entries in place: directory listing, non-replacing renames, and user path
// resolution.
package filesystem
