package utd

import "github.com/beevik/etree"

// StripBrl removes formatting markers from <brl> element and merges what is
// left into a single text node. Returns number of markers removed.
func StripBrl(brl *etree.Element) int {
	removed := 0
	for i := len(brl.Child) - 1; i >= 0; i-- {
		if el, ok := brl.Child[i].(*etree.Element); ok && IsMarker(el.Tag) {
			brl.RemoveChildAt(i)
			removed++
		}
	}
	if removed == 0 && len(brl.Child) <= 1 {
		return 0
	}
	text := BrlText(brl)
	for len(brl.Child) > 0 {
		brl.RemoveChildAt(0)
	}
	if text != "" {
		brl.CreateText(text)
	}
	return removed
}

// StripFormatting strips <brl> children of el (not descendants, they are
// stripped when their own parents are visited).
func StripFormatting(el *etree.Element) int {
	n := 0
	for _, child := range el.ChildElements() {
		if child.Tag == TagBrl {
			n += StripBrl(child)
		}
	}
	return n
}

// StripTree strips every <brl> below el.
func StripTree(el *etree.Element) int {
	n := 0
	for _, brl := range el.FindElements(".//" + TagBrl) {
		n += StripBrl(brl)
	}
	return n
}
