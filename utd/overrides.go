package utd

//go:generate go tool go-enum --names

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/google/uuid"
	"github.com/maruel/natural"
)

// OverrideKind tells which page number an override replaces.
// ENUM(print, braille)
type OverrideKind int

// Override is a manual page number change entered by transcriber.
type Override struct {
	Kind     OverrideKind
	Original string
	New      string
	// ContinuationLetter replaces print page continuation letter.
	ContinuationLetter string
	// PageType switches braille numbering type (NORMAL, T_PAGE, P_PAGE).
	PageType string
	// Combined is print page label for combined print pages ("5-6").
	Combined string
	// Blank leaves the page intentionally blank.
	Blank bool
	// PageVolume restricts override to a volume, empty matches any.
	PageVolume string
	// Skip hides the page number.
	Skip bool
	// RunHead replaces running head from this page on.
	RunHead string
	// Used is ordinal of physical page override was applied to, 0 if unused.
	Used int
}

// Overrides is the list of override records of a document.
type Overrides []*Override

// MatchVolume reports whether override applies to volume (1 based).
func (o *Override) MatchVolume(volume int) bool {
	return o.PageVolume == "" || o.PageVolume == strconv.Itoa(volume)
}

// FindUnused returns first unused override of kind for original label.
func (list Overrides) FindUnused(kind OverrideKind, original string, volume int) *Override {
	for _, o := range list {
		if o.Kind == kind && o.Used == 0 && o.Original == original && o.MatchVolume(volume) {
			return o
		}
	}
	return nil
}

// AppliedRoot returns the first override of the chain of kind applied to
// physical page ordinal, the one which matched the sequential label.
func (list Overrides) AppliedRoot(kind OverrideKind, ordinal int) *Override {
	if ordinal <= 0 {
		return nil
	}
	for _, o := range list {
		if o.Kind != kind || o.Used != ordinal {
			continue
		}
		root := true
		for _, other := range list {
			if other != o && other.Kind == kind && other.Used == ordinal && other.New != "" && other.New == o.Original {
				root = false
				break
			}
		}
		if root {
			return o
		}
	}
	return nil
}

// ResetAfter clears used mark of overrides applied after physical page
// ordinal, so partial format reapplies them.
func (list Overrides) ResetAfter(ordinal int) {
	for _, o := range list {
		if o.Used > ordinal {
			o.Used = 0
		}
	}
}

func metaElement(doc *etree.Document, create bool) *etree.Element {
	root := doc.Root()
	if root == nil {
		return nil
	}
	for _, meta := range root.FindElements(".//" + TagMeta) {
		if meta.SelectAttrValue(AttrName, "") == MetaNameUTD {
			return meta
		}
	}
	if !create {
		return nil
	}
	head := root.SelectElement(TagHead)
	if head == nil {
		head = etree.NewElement(TagHead)
		root.InsertChildAt(0, head)
	}
	meta := head.CreateElement(TagMeta)
	meta.CreateAttr(AttrName, MetaNameUTD)
	return meta
}

// DocumentID returns identifier stored in document metadata, generating one
// when document does not have it yet.
func DocumentID(doc *etree.Document) string {
	meta := metaElement(doc, true)
	if meta == nil {
		return ""
	}
	id := meta.SelectAttrValue(AttrDocumentID, "")
	if id == "" {
		id = uuid.NewString()
		meta.CreateAttr(AttrDocumentID, id)
	}
	return id
}

// ReadOverrides loads override records from document metadata.
func ReadOverrides(doc *etree.Document) (Overrides, error) {
	meta := metaElement(doc, false)
	if meta == nil {
		return nil, nil
	}
	var list Overrides
	for i, el := range meta.SelectElements(TagPageOverride) {
		o := &Override{
			Original:           el.SelectAttrValue(AttrOriginal, ""),
			New:                el.SelectAttrValue(AttrNew, ""),
			ContinuationLetter: el.SelectAttrValue(AttrCL, ""),
			PageType:           el.SelectAttrValue(AttrPageType, ""),
			Combined:           el.SelectAttrValue(AttrCombined, ""),
			Blank:              el.SelectAttrValue(AttrBlank, "") == ValueTrue,
			PageVolume:         el.SelectAttrValue(AttrPageVolume, ""),
			Skip:               el.SelectAttrValue(AttrSkip, "") == ValueTrue,
			RunHead:            el.SelectAttrValue(AttrRunHead, ""),
		}
		kind, err := ParseOverrideKind(el.SelectAttrValue(AttrType, OverrideKindPrint.String()))
		if err != nil {
			return nil, fmt.Errorf("page override %d: %w", i, err)
		}
		o.Kind = kind
		if used := el.SelectAttrValue(AttrUsed, ""); used != "" {
			n, err := strconv.Atoi(used)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("page override %d: bad used value %q", i, used)
			}
			o.Used = n
		}
		list = append(list, o)
	}
	return list, nil
}

// WriteOverrides replaces override records in document metadata.
func WriteOverrides(doc *etree.Document, list Overrides) {
	meta := metaElement(doc, len(list) > 0)
	if meta == nil {
		return
	}
	for _, el := range meta.SelectElements(TagPageOverride) {
		meta.RemoveChild(el)
	}
	for _, o := range list {
		el := meta.CreateElement(TagPageOverride)
		el.CreateAttr(AttrType, o.Kind.String())
		el.CreateAttr(AttrOriginal, o.Original)
		el.CreateAttr(AttrNew, o.New)
		setOptional(el, AttrCL, o.ContinuationLetter)
		setOptional(el, AttrPageType, o.PageType)
		setOptional(el, AttrCombined, o.Combined)
		setOptionalBool(el, AttrBlank, o.Blank)
		setOptional(el, AttrPageVolume, o.PageVolume)
		setOptionalBool(el, AttrSkip, o.Skip)
		setOptional(el, AttrRunHead, o.RunHead)
		if o.Used > 0 {
			el.CreateAttr(AttrUsed, strconv.Itoa(o.Used))
		}
	}
}

func setOptional(el *etree.Element, key, value string) {
	if value != "" {
		el.CreateAttr(key, value)
	}
}

func setOptionalBool(el *etree.Element, key string, value bool) {
	if value {
		el.CreateAttr(key, ValueTrue)
	}
}

// Sorted returns copy of overrides ordered by kind then natural order of
// original labels, for reports.
func (list Overrides) Sorted() Overrides {
	out := slices.Clone(list)
	slices.SortStableFunc(out, func(a, b *Override) int {
		if a.Kind != b.Kind {
			return int(a.Kind) - int(b.Kind)
		}
		switch {
		case natural.Less(a.Original, b.Original):
			return -1
		case natural.Less(b.Original, a.Original):
			return 1
		}
		return 0
	})
	return out
}

// String is a short description used in logs and dumps.
func (o *Override) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s->%s", o.Kind, o.Original, o.New)
	if o.PageType != "" {
		fmt.Fprintf(&sb, " type=%s", o.PageType)
	}
	if o.Used > 0 {
		fmt.Fprintf(&sb, " used@%d", o.Used)
	}
	return sb.String()
}
