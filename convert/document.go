package convert

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/net/html/charset"

	"utdfmt/misc"
	"utdfmt/state"
	"utdfmt/utd"
)

// Document is a parsed UTD source together with its origin.
type Document struct {
	srcName string
	doc     *etree.Document
}

func (d *Document) Tree() *etree.Document { return d.doc }

// Title is the document title from <head>, if any.
func (d *Document) Title() string {
	root := d.doc.Root()
	if root == nil {
		return ""
	}
	if head := root.SelectElement(utd.TagHead); head != nil {
		if t := head.FindElement(".//title"); t != nil {
			return strings.TrimSpace(t.Text())
		}
	}
	return ""
}

// Language is xml:lang of document root.
func (d *Document) Language() string {
	if root := d.doc.Root(); root != nil {
		if v := root.SelectAttrValue("xml:lang", ""); v != "" {
			return v
		}
		return root.SelectAttrValue("lang", "")
	}
	return ""
}

// readDocument parses UTD source. Whitespace is significant inside <brl>, so
// document is never indented on output.
func readDocument(ctx context.Context, r io.Reader, srcName string, log *zap.Logger) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	env := state.EnvFromContext(ctx)

	doc := etree.NewDocument()
	doc.ReadSettings = etree.ReadSettings{
		CharsetReader: charset.NewReaderLabel,
		Permissive:    true,
	}
	doc.WriteSettings = etree.WriteSettings{
		CanonicalText:    true,
		CanonicalAttrVal: true,
	}
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("unable to read UTD: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, errors.New("document is empty")
	}
	if root.Tag != "utd" {
		log.Warn("Unexpected document root, formatting anyway", zap.String("root", root.FullTag()))
	}

	if env.Rpt != nil {
		if data, err := doc.WriteToBytes(); err == nil {
			env.Rpt.StoreData(fmt.Sprintf("%s/source/%s", misc.GetAppName(), filepath.Base(srcName)), data)
		}
	}
	return &Document{srcName: srcName, doc: doc}, nil
}

// writeDocument saves formatted document to path.
func (d *Document) writeDocument(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create output file: %w", err)
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	if _, err = d.doc.WriteTo(f); err != nil {
		return fmt.Errorf("unable to write UTD: %w", err)
	}
	return nil
}
