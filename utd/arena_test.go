package utd

import (
	"testing"

	"github.com/beevik/etree"
)

func brlDoc(t *testing.T, xml string) *etree.Document {
	t.Helper()
	doc := etree.NewDocument()
	if err := doc.ReadFromString(xml); err != nil {
		t.Fatalf("bad test document: %v", err)
	}
	return doc
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

func TestArenaRender(t *testing.T) {
	doc := brlDoc(t, `<p><brl>abc def</brl></p>`)
	brl := doc.FindElement("//brl")

	a := NewArena()
	id := a.TextChunk(brl)
	if a.TextChunk(brl) != id {
		t.Fatal("chunk is not reused for the same element")
	}

	a.AddMark(Ref{id, 0}, NewPageElement("1", "#a", "NORMAL", false, false))
	a.AddMark(Ref{id, 0}, MoveToElement(0, 0))
	a.AddMark(Ref{id, 4}, MoveToElement(0, 1))
	ins := a.BrlOnly(BrlOnlyInsertion, "-", Ref{id, 4})
	a.Attach(ins)
	a.AddMark(Ref{ins, 0}, MoveToElement(3, 0))
	a.AddMark(Ref{id, 7}, MoveToElement(9, 9))

	if n := a.Render(); n != 1 {
		t.Fatalf("Render() = %d, want 1", n)
	}

	want := `<brl><newPage brlnum="1" brlnumber="#a" pageType="NORMAL"/><moveTo hPos="0" vPos="0"/>abc ` +
		`<moveTo hPos="0" vPos="1"/><brlonly type="insertion"><moveTo hPos="3" vPos="0"/>-</brlonly>def<moveTo hPos="9" vPos="9"/></brl>`
	if got := elementString(t, brl); got != want {
		t.Errorf("rendered\n%s\nwant\n%s", got, want)
	}

	if n := a.Render(); n != 0 {
		t.Errorf("second Render() = %d, want 0", n)
	}
}

func TestArenaOrder(t *testing.T) {
	doc := brlDoc(t, `<body><p><brl>one</brl></p><p><brl>two</brl></p></body>`)
	brls := doc.FindElements("//brl")

	a := NewArena()
	first := a.TextChunk(brls[0])
	second := a.TextChunk(brls[1])
	derived := a.BrlOnly(BrlOnlyPronunciation, "x", Ref{first, 3})
	reserved := a.DerivedChunk(TagBrlPageNum, BrlPageNumAttrs("1", "#a"), "#a", Nowhere)

	if a.Compare(Ref{first, 2}, Ref{second, 0}) >= 0 {
		t.Error("first chunk should precede second")
	}
	if a.Compare(Ref{derived, 0}, Ref{first, 3}) != 0 {
		t.Error("derived chunk should be ordered by its anchor")
	}
	if a.Compare(Ref{second, 1}, Ref{second, 0}) <= 0 {
		t.Error("index order inside chunk")
	}
	if a.Last() != (Ref{second, 3}) {
		t.Errorf("Last() = %+v", a.Last())
	}

	if a.Attached(derived) {
		t.Error("derived chunk should not be attached before Attach")
	}
	a.AttachAt(Ref{second, 0}, reserved)
	if !a.Attached(reserved) {
		t.Error("reserved chunk should be attached")
	}
	defer func() {
		if recover() == nil {
			t.Error("expected panic on double anchoring")
		}
	}()
	a.AttachAt(Ref{second, 0}, reserved)
}

func TestArenaBadMark(t *testing.T) {
	doc := brlDoc(t, `<brl>ab</brl>`)
	a := NewArena()
	id := a.TextChunk(doc.Root())
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	a.AddMark(Ref{id, 3}, MoveToElement(0, 0))
}
