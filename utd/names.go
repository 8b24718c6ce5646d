// Package utd implements the formatted braille document model: braille text
// chunks, page and position markers written into <brl> elements and manual
// page number override metadata.
package utd

// Element names.
const (
	TagBrl          = "brl"
	TagNewPage      = "newPage"
	TagMoveTo       = "moveTo"
	TagBrlOnly      = "brlonly"
	TagBrlPageNum   = "brlPageNum"
	TagPrintPageNum = "printPageNum"
	TagHead         = "head"
	TagMeta         = "meta"
	TagPageOverride = "pageOverride"
)

// Attribute names.
const (
	AttrID            = "id"
	AttrType          = "type"
	AttrName          = "name"
	AttrDocumentID    = "documentId"
	AttrBrlNum        = "brlnum"
	AttrBrlNumber     = "brlnumber"
	AttrPageType      = "pageType"
	AttrNonsequential = "nonsequential"
	AttrForcedBreak   = "forcedBreak"
	AttrHPos          = "hPos"
	AttrVPos          = "vPos"
	AttrUntranslated  = "untranslated"
	AttrTranslated    = "translated"
	AttrCL            = "cl"
	AttrLineNumber    = "lineNumber"
	AttrPronunciation = "pronunciation"
	AttrOriginal      = "original"
	AttrNew           = "new"
	AttrCombined      = "combined"
	AttrBlank         = "blank"
	AttrPageVolume    = "pageVolume"
	AttrSkip          = "skip"
	AttrRunHead       = "runHead"
	AttrUsed          = "used"
	MetaNameUTD       = "utd"
	ValueTrue         = "true"
)

// Types of braille only content.
const (
	BrlOnlyRunningHead   = "runningHead"
	BrlOnlyGuideWord     = "guideWord"
	BrlOnlyPronunciation = "pronunciation"
	BrlOnlyLineNumber    = "lineNumber"
	BrlOnlyInsertion     = "insertion"
)

// IsMarker reports elements produced by formatting.
func IsMarker(tag string) bool {
	switch tag {
	case TagNewPage, TagMoveTo, TagBrlOnly, TagBrlPageNum, TagPrintPageNum:
		return true
	}
	return false
}
