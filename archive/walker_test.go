package archive

import (
	"archive/zip"
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func createZip(t *testing.T, names ...string) string {
	t.Helper()
	zipPath := filepath.Join(t.TempDir(), "test.zip")
	zipFile, err := os.Create(zipPath)
	if err != nil {
		t.Fatalf("Failed to create zip file: %v", err)
	}
	defer zipFile.Close()

	w := zip.NewWriter(zipFile)
	for _, name := range names {
		fw, err := w.Create(name)
		if err != nil {
			t.Fatalf("Failed to create file %s in zip: %v", name, err)
		}
		if strings.HasSuffix(name, "/") {
			continue
		}
		if _, err := fw.Write([]byte("content of " + name)); err != nil {
			t.Fatalf("Failed to write content for %s: %v", name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to finalize zip: %v", err)
	}
	return zipPath
}

func TestWalk(t *testing.T) {
	zipPath := createZip(t,
		"book/vol10.utd", "book/vol2.utd", "book/vol1.utd",
		"bookmarks/list.utd", "notes.utd", "Docs/README.txt", "empty/")

	tests := []struct {
		name    string
		pattern string
		want    []string
	}{
		{name: "directory", pattern: "book", want: []string{"book/vol1.utd", "book/vol2.utd", "book/vol10.utd"}},
		{name: "directory with slash", pattern: "book/", want: []string{"book/vol1.utd", "book/vol2.utd", "book/vol10.utd"}},
		{name: "single file", pattern: "notes.utd", want: []string{"notes.utd"}},
		{name: "backslashes", pattern: `bookmarks\`, want: []string{"bookmarks/list.utd"}},
		{name: "case sensitive", pattern: "docs"},
		{name: "no match", pattern: "nonexistent/"},
		{name: "everything", want: []string{
			"Docs/README.txt", "book/vol1.utd", "book/vol2.utd", "book/vol10.utd", "bookmarks/list.utd", "notes.utd",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var visited []string
			err := Walk(zipPath, tt.pattern, func(archive string, file *zip.File) error {
				if archive != zipPath {
					t.Errorf("archive = %s, want %s", archive, zipPath)
				}
				visited = append(visited, file.Name)
				return nil
			})
			if err != nil {
				t.Fatalf("Walk() error = %v", err)
			}
			if !slices.Equal(visited, tt.want) {
				t.Errorf("visited %v, want %v", visited, tt.want)
			}
		})
	}
}

func TestWalk_Errors(t *testing.T) {
	t.Run("nonexistent file", func(t *testing.T) {
		if err := Walk("/nonexistent/file.zip", "", func(string, *zip.File) error { return nil }); err == nil {
			t.Error("Walk() should fail")
		}
	})

	t.Run("invalid zip file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "invalid.zip")
		if err := os.WriteFile(path, []byte("not a zip file"), 0644); err != nil {
			t.Fatal(err)
		}
		if err := Walk(path, "", func(string, *zip.File) error { return nil }); err == nil {
			t.Error("Walk() should fail")
		}
	})

	t.Run("unsafe entry", func(t *testing.T) {
		zipPath := createZip(t, "ok.utd", "../escape.utd")
		called := false
		err := Walk(zipPath, "", func(string, *zip.File) error {
			called = true
			return nil
		})
		if err == nil || called {
			t.Errorf("Walk() error = %v, called = %v", err, called)
		}
	})

	t.Run("walkFn returns error", func(t *testing.T) {
		zipPath := createZip(t, "a.utd", "b.utd")
		expectedErr := errors.New("test error")
		count := 0
		err := Walk(zipPath, "", func(string, *zip.File) error {
			count++
			return expectedErr
		})
		if err != expectedErr || count != 1 {
			t.Errorf("Walk() error = %v after %d files", err, count)
		}
	})
}

func TestWalk_FileContent(t *testing.T) {
	zipPath := createZip(t, "doc.utd")
	err := Walk(zipPath, "doc.utd", func(_ string, file *zip.File) error {
		rc, err := file.Open()
		if err != nil {
			return err
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			return err
		}
		if string(data) != "content of doc.utd" {
			t.Errorf("content = %q", data)
		}
		return nil
	})
	if err != nil {
		t.Errorf("Walk() error = %v", err)
	}
}

func TestIsSafePath(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"a/b.utd", true},
		{"a..b/c.utd", true},
		{"/abs.utd", false},
		{`\abs.utd`, false},
		{"a/../../b.utd", false},
	}
	for _, tt := range tests {
		if got := isSafePath(tt.name); got != tt.want {
			t.Errorf("isSafePath(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
