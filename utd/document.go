package utd

import (
	"strconv"

	"github.com/beevik/etree"
)

// Body returns element formatting starts from: <body> if present, document
// root otherwise.
func Body(doc *etree.Document) *etree.Element {
	root := doc.Root()
	if root == nil {
		return nil
	}
	if body := root.SelectElement("body"); body != nil {
		return body
	}
	return root
}

// FindByID returns element with id attribute.
func FindByID(doc *etree.Document, id string) *etree.Element {
	if id == "" {
		return nil
	}
	return findByID(doc.Root(), id)
}

func findByID(el *etree.Element, id string) *etree.Element {
	if el == nil {
		return nil
	}
	if el.SelectAttrValue(AttrID, "") == id {
		return el
	}
	for _, child := range el.ChildElements() {
		if found := findByID(child, id); found != nil {
			return found
		}
	}
	return nil
}

// Descendants returns elements with tag under el in document order.
// Matching elements are not searched further.
func Descendants(el *etree.Element, tag string) []*etree.Element {
	var out []*etree.Element
	var walk func(*etree.Element)
	walk = func(e *etree.Element) {
		for _, child := range e.ChildElements() {
			if child.Tag == tag {
				out = append(out, child)
				continue
			}
			walk(child)
		}
	}
	if el != nil {
		walk(el)
	}
	return out
}

// FirstBrl returns the first <brl> under el in document order.
func FirstBrl(el *etree.Element) *etree.Element {
	if el == nil {
		return nil
	}
	var first *etree.Element
	var walk func(*etree.Element) bool
	walk = func(e *etree.Element) bool {
		for _, child := range e.ChildElements() {
			if child.Tag == TagBrl {
				first = child
				return true
			}
			if walk(child) {
				return true
			}
		}
		return false
	}
	walk(el)
	return first
}

// NewPageElement creates page marker.
func NewPageElement(brlNum, brlNumber, pageType string, nonsequential, forced bool) *etree.Element {
	el := etree.NewElement(TagNewPage)
	el.CreateAttr(AttrBrlNum, brlNum)
	el.CreateAttr(AttrBrlNumber, brlNumber)
	el.CreateAttr(AttrPageType, pageType)
	if nonsequential {
		el.CreateAttr(AttrNonsequential, ValueTrue)
	}
	if forced {
		el.CreateAttr(AttrForcedBreak, ValueTrue)
	}
	return el
}

// MoveToElement creates cell position marker.
func MoveToElement(h, v int) *etree.Element {
	el := etree.NewElement(TagMoveTo)
	el.CreateAttr(AttrHPos, strconv.Itoa(h))
	el.CreateAttr(AttrVPos, strconv.Itoa(v))
	return el
}

// BrlPageNumAttrs returns attributes of braille page number element.
func BrlPageNumAttrs(untranslated, translated string) []etree.Attr {
	return []etree.Attr{
		{Key: AttrUntranslated, Value: untranslated},
		{Key: AttrTranslated, Value: translated},
	}
}

// PrintPageNumAttrs returns attributes of print page number element.
func PrintPageNumAttrs(untranslated, translated, cl, pageType string) []etree.Attr {
	return []etree.Attr{
		{Key: AttrUntranslated, Value: untranslated},
		{Key: AttrTranslated, Value: translated},
		{Key: AttrCL, Value: cl},
		{Key: AttrPageType, Value: pageType},
	}
}
