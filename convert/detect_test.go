package convert

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
)

const sampleUTD = `<?xml version="1.0" encoding="UTF-8"?>
<utd><head><title>Sample</title></head><body>` +
	`<p id="a"><brl>aaaa bbbb cccc dddd</brl></p>` +
	`<p id="b"><brl>eeee ffff gggg</brl></p>` +
	`</body></utd>`

func TestIsArchiveFile(t *testing.T) {
	tmpDir := t.TempDir()

	validZip := filepath.Join(tmpDir, "valid.zip")
	zf, err := os.Create(validZip)
	if err != nil {
		t.Fatalf("Failed to create zip file: %v", err)
	}
	w := zip.NewWriter(zf)
	if f, err := w.Create("doc.utd"); err == nil {
		f.Write([]byte(sampleUTD))
	}
	w.Close()
	zf.Close()

	tests := []struct {
		name    string
		file    string
		content []byte
		want    bool
	}{
		{name: "non-zip extension", file: "test.txt", content: []byte("not a zip")},
		{name: "zip extension but invalid content", file: "test.zip", content: []byte("not a real zip file")},
		{name: "zip content with other extension", file: "test.bin", content: []byte("PK\x03\x04rest")},
		{name: "valid zip", file: "valid.zip", want: true},
		{name: "empty zip", file: "empty.zip", content: append([]byte("PK\x05\x06"), make([]byte, 18)...), want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(tmpDir, tt.file)
			if tt.content != nil {
				if err := os.WriteFile(path, tt.content, 0644); err != nil {
					t.Fatalf("Failed to create test file: %v", err)
				}
			}
			got, err := isArchiveFile(path)
			if err != nil {
				t.Fatalf("isArchiveFile() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("isArchiveFile() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsArchiveFile_NonExistent(t *testing.T) {
	if _, err := isArchiveFile("/nonexistent/file.zip"); err == nil {
		t.Error("Expected error for non-existent file, got nil")
	}
}

func TestDetectUTF(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		want srcEncoding
	}{
		{name: "UTF-8 BOM", buf: []byte{0xEF, 0xBB, 0xBF, 0x00}, want: encUTF8},
		{name: "UTF-16 Big Endian BOM", buf: []byte{0xFE, 0xFF, 0x00, 0x00}, want: encUTF16BigEndian},
		{name: "UTF-16 Little Endian BOM", buf: []byte{0xFF, 0xFE, 0x01, 0x00}, want: encUTF16LittleEndian},
		{name: "UTF-32 Big Endian BOM", buf: []byte{0x00, 0x00, 0xFE, 0xFF}, want: encUTF32BigEndian},
		{name: "UTF-32 Little Endian BOM", buf: []byte{0xFF, 0xFE, 0x00, 0x00}, want: encUTF32LittleEndian},
		{name: "No BOM", buf: []byte{0x00, 0x01, 0x02, 0x03}, want: encUnknown},
		{name: "short", buf: []byte{0xEF}, want: encUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detectUTF(tt.buf); got != tt.want {
				t.Errorf("detectUTF() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsDocumentFile(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name    string
		file    string
		content []byte
		wantDoc bool
		wantEnc srcEncoding
	}{
		{name: "utd file", file: "test.utd", content: []byte(sampleUTD), wantDoc: true},
		{name: "xml extension", file: "test.xml", content: []byte(sampleUTD), wantDoc: true},
		{name: "uppercase extension", file: "upper.UTD", content: []byte(sampleUTD), wantDoc: true},
		{name: "UTF-8 BOM", file: "bom.utd", content: append([]byte{0xEF, 0xBB, 0xBF}, sampleUTD...), wantDoc: true, wantEnc: encUTF8},
		{name: "UTF-16 LE", file: "le.utd", content: encodeSample(t, encUTF16LittleEndian), wantDoc: true, wantEnc: encUTF16LittleEndian},
		{name: "UTF-32 BE", file: "be32.utd", content: encodeSample(t, encUTF32BigEndian), wantDoc: true, wantEnc: encUTF32BigEndian},
		{name: "other extension", file: "test.txt", content: []byte(sampleUTD)},
		{name: "other xml", file: "other.xml", content: []byte(`<?xml version="1.0"?><html/>`)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(tmpDir, tt.file)
			if err := os.WriteFile(path, tt.content, 0644); err != nil {
				t.Fatalf("Failed to create test file: %v", err)
			}
			gotDoc, gotEnc, err := isDocumentFile(path)
			if err != nil {
				t.Fatalf("isDocumentFile() error = %v", err)
			}
			if gotDoc != tt.wantDoc || gotEnc != tt.wantEnc {
				t.Errorf("isDocumentFile() = %v, %v, want %v, %v", gotDoc, gotEnc, tt.wantDoc, tt.wantEnc)
			}
		})
	}
}

func TestIsDocumentFile_NonExistent(t *testing.T) {
	if _, _, err := isDocumentFile("/nonexistent/file.utd"); err == nil {
		t.Error("Expected error for non-existent file, got nil")
	}
}

func TestIsDocumentInArchive(t *testing.T) {
	zipPath := filepath.Join(t.TempDir(), "test.zip")
	writeZip(t, zipPath, map[string][]byte{
		"a/doc.utd":   []byte(sampleUTD),
		"a/notes.txt": []byte("not a document"),
		"b/bom.utd":   append([]byte{0xEF, 0xBB, 0xBF}, sampleUTD...),
	})

	r, err := zip.OpenReader(zipPath)
	if err != nil {
		t.Fatalf("Failed to open zip: %v", err)
	}
	defer r.Close()

	want := map[string]struct {
		doc bool
		enc srcEncoding
	}{
		"a/doc.utd":   {doc: true},
		"a/notes.txt": {},
		"b/bom.utd":   {doc: true, enc: encUTF8},
	}
	for _, f := range r.File {
		t.Run(f.Name, func(t *testing.T) {
			gotDoc, gotEnc, err := isDocumentInArchive(f)
			if err != nil {
				t.Fatalf("isDocumentInArchive() error = %v", err)
			}
			if w := want[f.Name]; gotDoc != w.doc || gotEnc != w.enc {
				t.Errorf("isDocumentInArchive() = %v, %v, want %v, %v", gotDoc, gotEnc, w.doc, w.enc)
			}
		})
	}
}

func TestSelectReader(t *testing.T) {
	for _, enc := range []srcEncoding{
		encUnknown, encUTF8, encUTF16BigEndian, encUTF16LittleEndian, encUTF32BigEndian, encUTF32LittleEndian,
	} {
		t.Run(encodingName(enc), func(t *testing.T) {
			got, err := io.ReadAll(selectReader(bytes.NewReader(encodeSample(t, enc)), enc))
			if err != nil {
				t.Fatalf("read error = %v", err)
			}
			if string(got) != sampleUTD {
				t.Errorf("selectReader() produced %q", got)
			}
		})
	}
}

func TestSelectReader_Panic(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for invalid encoding, but didn't panic")
		}
	}()
	selectReader(bytes.NewReader([]byte("test")), srcEncoding(999))
}
