package filesystem

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDirectoryContentsNotExist(t *testing.T) {
	if _, err := DirectoryContentsByPath("/does/not/exist"); err == nil {
		t.Error("directory listing succeeded for non-existent path")
	}
}

func TestDirectoryContentsFile(t *testing.T) {
	// Create an empty file in a temporary directory.
	path := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(path, nil, 0600); err != nil {
		t.Fatal("unable to create file:", err)
	}

	// Ensure that directory listing fails.
	if _, err := DirectoryContentsByPath(path); err == nil {
		t.Error("directory listing succeeded for non-directory path")
	}
}

// TestDirectoryContentsSorted verifies that directory contents are returned in
// name order with directory and symbolic link types reported correctly.
func TestDirectoryContentsSorted(t *testing.T) {
	// Create a temporary directory with some content.
	root := t.TempDir()
	for _, name := range []string{"c", "a"} {
		if err := os.WriteFile(filepath.Join(root, name), nil, 0600); err != nil {
			t.Fatal("unable to create file:", err)
		}
	}
	if err := os.Mkdir(filepath.Join(root, "b"), 0700); err != nil {
		t.Fatal("unable to create directory:", err)
	}
	if err := os.Symlink("b", filepath.Join(root, "d")); err != nil {
		t.Skip("symbolic links not supported:", err)
	}

	// Read the contents.
	contents, err := DirectoryContentsByPath(root)
	if err != nil {
		t.Fatal("unable to read directory contents:", err)
	} else if len(contents) != 4 {
		t.Fatal("unexpected content count:", len(contents))
	}

	// Verify names and types.
	expected := []struct {
		name      string
		directory bool
	}{
		{"a", false},
		{"b", true},
		{"c", false},
		{"d", false},
	}
	for i, e := range expected {
		if contents[i].Name() != e.name {
			t.Errorf("content %d has unexpected name: %s != %s", i, contents[i].Name(), e.name)
		}
		if contents[i].IsDir() != e.directory {
			t.Errorf("content %s has unexpected directory status", e.name)
		}
	}
}
