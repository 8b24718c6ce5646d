package convert

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"
)

type srcEncoding int

const (
	encUnknown srcEncoding = iota
	encUTF8
	encUTF16BigEndian
	encUTF16LittleEndian
	encUTF32BigEndian
	encUTF32LittleEndian
)

// sniffLen is how much of the file is looked at to recognize a document.
const sniffLen = 1024

var (
	documentExts = []string{".utd", ".xml"}
	utdRoot      = []byte("<utd")
)

func isUTF8BOM3(buf []byte) bool {
	return len(buf) >= 3 && buf[0] == 0xEF && buf[1] == 0xBB && buf[2] == 0xBF
}

func isUTF16BigEndianBOM2(buf []byte) bool {
	return len(buf) >= 2 && buf[0] == 0xFE && buf[1] == 0xFF
}

func isUTF16LittleEndianBOM2(buf []byte) bool {
	return len(buf) >= 2 && buf[0] == 0xFF && buf[1] == 0xFE
}

func isUTF32BigEndianBOM4(buf []byte) bool {
	return len(buf) >= 4 && buf[0] == 0x00 && buf[1] == 0x00 && buf[2] == 0xFE && buf[3] == 0xFF
}

func isUTF32LittleEndianBOM4(buf []byte) bool {
	return len(buf) >= 4 && buf[0] == 0xFF && buf[1] == 0xFE && buf[2] == 0x00 && buf[3] == 0x00
}

// detectUTF looks at byte order mark. UTF-32 LE has to be checked before
// UTF-16 LE, they share first two bytes.
func detectUTF(buf []byte) srcEncoding {
	switch {
	case isUTF8BOM3(buf):
		return encUTF8
	case isUTF32BigEndianBOM4(buf):
		return encUTF32BigEndian
	case isUTF32LittleEndianBOM4(buf):
		return encUTF32LittleEndian
	case isUTF16BigEndianBOM2(buf):
		return encUTF16BigEndian
	case isUTF16LittleEndianBOM2(buf):
		return encUTF16LittleEndian
	}
	return encUnknown
}

func decoderFor(enc srcEncoding) encoding.Encoding {
	switch enc {
	case encUnknown:
		return nil
	case encUTF8:
		return unicode.UTF8BOM
	case encUTF16BigEndian:
		return unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM)
	case encUTF16LittleEndian:
		return unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM)
	case encUTF32BigEndian:
		return utf32.UTF32(utf32.BigEndian, utf32.ExpectBOM)
	case encUTF32LittleEndian:
		return utf32.UTF32(utf32.LittleEndian, utf32.ExpectBOM)
	}
	// this should never happen
	panic(fmt.Sprintf("unexpected source encoding %d", enc))
}

// selectReader converts unicode input with BOM to plain UTF-8. Everything
// else is left to XML decoder which honors encoding declaration.
func selectReader(r io.Reader, enc srcEncoding) io.Reader {
	e := decoderFor(enc)
	if e == nil {
		return r
	}
	return transform.NewReader(r, e.NewDecoder())
}

// sniffDocument reports whether head of the file looks like UTD document.
func sniffDocument(head []byte) (bool, srcEncoding) {
	enc := detectUTF(head)
	if e := decoderFor(enc); e != nil {
		// partial trailing sequence is fine, only the beginning matters
		if decoded, _, err := transform.Bytes(e.NewDecoder(), head); err == nil || len(decoded) > 0 {
			head = decoded
		}
	}
	return bytes.Contains(head, utdRoot), enc
}

func hasDocumentExt(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range documentExts {
		if ext == e {
			return true
		}
	}
	return false
}

func readHead(r io.Reader) ([]byte, error) {
	buf := make([]byte, sniffLen)
	n, err := io.ReadFull(r, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, err
	}
	return buf[:n], nil
}

func isArchiveFile(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	if !strings.EqualFold(filepath.Ext(path), ".zip") {
		return false, nil
	}
	head, err := readHead(f)
	if err != nil {
		return false, err
	}
	return filetype.Is(head, "zip"), nil
}

func isDocumentFile(path string) (bool, srcEncoding, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, encUnknown, err
	}
	defer f.Close()

	if !hasDocumentExt(path) {
		return false, encUnknown, nil
	}
	head, err := readHead(f)
	if err != nil {
		return false, encUnknown, err
	}
	ok, enc := sniffDocument(head)
	return ok, enc, nil
}

func isDocumentInArchive(f *zip.File) (bool, srcEncoding, error) {
	if !hasDocumentExt(f.FileHeader.Name) {
		return false, encUnknown, nil
	}
	r, err := f.Open()
	if err != nil {
		return false, encUnknown, err
	}
	defer r.Close()

	head, err := readHead(r)
	if err != nil {
		return false, encUnknown, err
	}
	ok, enc := sniffDocument(head)
	return ok, enc, nil
}
