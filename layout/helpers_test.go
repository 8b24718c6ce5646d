package layout

import (
	"testing"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"utdfmt/common"
	"utdfmt/linewrap"
	"utdfmt/pagenum"
	"utdfmt/utd"
)

func newTestSession(t *testing.T, width, height int, opts ...func(*Settings)) *Session {
	t.Helper()
	w, err := linewrap.Load(common.BrailleCodeUeb, "")
	if err != nil {
		t.Fatalf("Unable to load line wrapper: %v", err)
	}
	settings := Settings{
		CellsPerLine:   width,
		LinesPerPage:   height,
		MaxChainSplits: 1,
		Wrapper:        w,
		Translator:     pagenum.ASCIITranslator{},
	}
	for _, o := range opts {
		o(&settings)
	}
	s, err := NewSession(settings, utd.NewArena(), nil, true, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	return s
}

// brlElements builds a document with a paragraph per text and returns its
// <brl> elements.
func brlElements(texts ...string) []*etree.Element {
	doc := etree.NewDocument()
	body := doc.CreateElement("utd").CreateElement("body")
	out := make([]*etree.Element, 0, len(texts))
	for _, text := range texts {
		brl := body.CreateElement("p").CreateElement(utd.TagBrl)
		brl.SetText(text)
		out = append(out, brl)
	}
	return out
}

func lastPage(pbs []*PageBuilder) *PageBuilder {
	return pbs[len(pbs)-1]
}

func elementString(t *testing.T, el *etree.Element) string {
	t.Helper()
	doc := etree.NewDocument()
	doc.SetRoot(el.Copy())
	s, err := doc.WriteToString()
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func bottomRightNumbers(s *Settings) {
	s.BraillePageNumber = common.PageNumberPositionBottomRight
}
