package convert

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"utdfmt/common"
	"utdfmt/config"
	"utdfmt/format"
)

// Values is a struct that holds variables we make available for template expansion
type Values struct {
	Context    string
	Name       string
	Title      string
	Language   string
	DocumentID string
	Pages      int
	Code       string
	Partial    bool
}

func expandTemplate(d *Document, res *format.Result, code common.BrailleCode, name config.TemplateFieldName, field string) (string, error) {
	funcMap := sprig.FuncMap()

	tmpl, err := template.New(string(name)).Funcs(funcMap).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}

	values := Values{
		Context:  string(name),
		Name:     strings.TrimSuffix(filepath.Base(d.srcName), filepath.Ext(d.srcName)),
		Title:    d.Title(),
		Language: d.Language(),
		Code:     code.String(),
	}
	if res != nil {
		values.DocumentID = res.DocumentID
		values.Pages = res.Pages
		values.Partial = res.Partial
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", err
	}
	return buf.String(), nil
}
