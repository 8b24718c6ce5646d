package config

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readArchive(t *testing.T, name string) map[string]string {
	t.Helper()
	zr, err := zip.OpenReader(name)
	if err != nil {
		t.Fatalf("unable to open report: %v", err)
	}
	defer zr.Close()

	out := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("unable to open %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("unable to read %s: %v", f.Name, err)
		}
		out[f.Name] = string(data)
	}
	return out
}

func TestReport(t *testing.T) {
	dir := t.TempDir()
	conf := ReporterConfig{Destination: filepath.Join(dir, "report.zip")}
	r, err := conf.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	src := filepath.Join(dir, "source.xml")
	if err := os.WriteFile(src, []byte("<utd/>"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := r.StoreCopy("source.xml", src); err != nil {
		t.Fatalf("StoreCopy() error = %v", err)
	}
	// later changes do not affect copy
	if err := os.WriteFile(src, []byte("<changed/>"), 0644); err != nil {
		t.Fatal(err)
	}
	r.Store("live.xml", src)
	r.StoreData("page-10.txt", []byte("ten"))
	r.StoreData("page-9.txt", []byte("nine"))
	r.Store("missing.log", filepath.Join(dir, "absent.log"))

	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	files := readArchive(t, conf.Destination)
	if files["source.xml"] != "<utd/>" {
		t.Errorf("source.xml = %q", files["source.xml"])
	}
	if files["live.xml"] != "<changed/>" {
		t.Errorf("live.xml = %q", files["live.xml"])
	}
	if _, ok := files["missing.log"]; ok {
		t.Error("absent file should not be archived")
	}
	manifest := files["MANIFEST"]
	if strings.Index(manifest, "page-9.txt") > strings.Index(manifest, "page-10.txt") {
		t.Errorf("manifest is not in natural order:\n%s", manifest)
	}
}

func TestReportStoreDataVersioned(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	r.StoreData("dump.txt", []byte("a"))
	r.StoreData("dump.txt", []byte("b"))
	if len(r.entries) != 2 {
		t.Errorf("expected 2 entries, got %d", len(r.entries))
	}
}

func TestReportStoreConflictPanics(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	r.Store("log", "/tmp/a.log")
	defer func() {
		if recover() == nil {
			t.Error("expected panic on conflicting Store")
		}
	}()
	r.Store("log", "/tmp/b.log")
}

func TestReportNil(t *testing.T) {
	var r *Report
	r.Store("x", "y")
	r.StoreData("x", nil)
	if err := r.StoreCopy("x", "y"); err != nil {
		t.Errorf("StoreCopy on nil report should not error, got: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close on nil report should not error, got: %v", err)
	}
	if r.Name() != "" {
		t.Errorf("Name on nil report = %q", r.Name())
	}
}
