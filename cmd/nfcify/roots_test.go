package main

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/mutagen-io/nfcify/pkg/ignore"
)

const (
	// composedName is a file name in NFC.
	composedName = "r\u00e9sum\u00e9.txt"
	// decomposedName is the NFD equivalent of composedName.
	decomposedName = "re\u0301sume\u0301.txt"
)

// createRoot creates a temporary root containing a single file with a
// decomposed name. It skips the test if the filesystem doesn't distinguish
// between differently normalized names.
func createRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, decomposedName), nil, 0600); err != nil {
		t.Fatal("unable to create file:", err)
	}
	if _, err := os.Lstat(filepath.Join(root, composedName)); err == nil {
		t.Skip("filesystem is normalization-insensitive")
	}
	return root
}

// exists returns whether or not a path exists.
func exists(t *testing.T, path string) bool {
	t.Helper()
	if _, err := os.Lstat(path); err == nil {
		return true
	} else if !os.IsNotExist(err) {
		t.Fatal("unable to query path:", err)
	}
	return false
}

// TestNormalizeRoots verifies that every root is normalized.
func TestNormalizeRoots(t *testing.T) {
	first, second := createRoot(t), createRoot(t)

	if err := normalizeRoots([]string{first, second}, nil, false, nil); err != nil {
		t.Fatal("unable to normalize roots:", err)
	}
	for _, root := range []string{first, second} {
		if !exists(t, filepath.Join(root, composedName)) {
			t.Errorf("file in %q not normalized", root)
		}
		if exists(t, filepath.Join(root, decomposedName)) {
			t.Errorf("decomposed file in %q still exists", root)
		}
	}
}

// TestNormalizeRootsIgnored verifies that ignore patterns are applied.
func TestNormalizeRootsIgnored(t *testing.T) {
	root := createRoot(t)
	ignorer, err := ignore.NewIgnorer([]string{"*.txt"})
	if err != nil {
		t.Fatal("unable to create ignorer:", err)
	}

	if err := normalizeRoots([]string{root}, ignorer, false, nil); err != nil {
		t.Fatal("unable to normalize roots:", err)
	}
	if !exists(t, filepath.Join(root, decomposedName)) {
		t.Error("ignored file was renamed")
	}
}

// TestNormalizeRootsStopsAtFirstFailure verifies that roots following a failed
// root aren't processed.
func TestNormalizeRootsStopsAtFirstFailure(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")
	second := createRoot(t)

	if err := normalizeRoots([]string{missing, second}, nil, false, nil); err == nil {
		t.Fatal("normalization succeeded with missing root")
	}
	if !exists(t, filepath.Join(second, decomposedName)) {
		t.Error("root following failed root was processed")
	}
}

// TestRequireRoots verifies positional argument validation.
func TestRequireRoots(t *testing.T) {
	defer func() {
		rootConfiguration.legal = false
	}()
	command := &cobra.Command{}

	rootConfiguration.legal = false
	if requireRoots(command, nil) == nil {
		t.Error("missing roots accepted")
	}
	if err := requireRoots(command, []string{"a", "b"}); err != nil {
		t.Error("roots rejected:", err)
	}

	rootConfiguration.legal = true
	if err := requireRoots(command, nil); err != nil {
		t.Error("missing roots rejected with legal flag:", err)
	}
}

// TestNormalizeRootsNormalizedRootUnmodified verifies that a root that's
// already normalized isn't modified, including by the Unicode behavior check.
func TestNormalizeRootsNormalizedRootUnmodified(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, composedName), nil, 0600); err != nil {
		t.Fatal("unable to create file:", err)
	}
	before, err := os.Stat(root)
	if err != nil {
		t.Fatal("unable to query root:", err)
	}

	if err := normalizeRoots([]string{root}, nil, false, nil); err != nil {
		t.Fatal("unable to normalize roots:", err)
	}
	if after, err := os.Stat(root); err != nil {
		t.Fatal("unable to query root:", err)
	} else if !after.ModTime().Equal(before.ModTime()) {
		t.Error("normalized root modified")
	}
}

// TestDecompositionGuard verifies that the guard permits processing on
// filesystems that store names as provided and when the check itself fails.
func TestDecompositionGuard(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip()
	}
	if err := decompositionGuard(t.TempDir(), false, nil)(); err != nil {
		t.Error("guard rejected non-decomposing filesystem:", err)
	}
	missing := filepath.Join(t.TempDir(), "missing")
	if err := decompositionGuard(missing, false, nil)(); err != nil {
		t.Error("guard failed when check failed:", err)
	}
}

// TestValidateIgnores verifies command line ignore pattern validation.
func TestValidateIgnores(t *testing.T) {
	if err := validateIgnores([]string{"*.tmp", "!keep.tmp", "/build/"}); err != nil {
		t.Error("valid patterns rejected:", err)
	}
	if err := validateIgnores([]string{"*.tmp", "!"}); err == nil {
		t.Error("negated empty pattern accepted")
	} else if !strings.Contains(err.Error(), "(!)") {
		t.Error("error does not identify invalid pattern:", err)
	}
	if err := validateIgnores([]string{"/"}); err == nil {
		t.Error("root pattern accepted")
	}
}
