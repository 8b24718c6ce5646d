package layout

import (
	"strings"
	"testing"
)

func TestOutputMarkers(t *testing.T) {
	tests := []struct {
		name string
		opts []func(*Settings)
		want string
	}{
		{
			name: "no page numbers",
			want: `<brl><newPage brlnum="1" brlnumber="#a" pageType="NORMAL"/><moveTo hPos="0" vPos="0"/>aaaa bbbb ` +
				`<moveTo hPos="0" vPos="1"/>cccc</brl>`,
		},
		{
			name: "braille page number",
			opts: []func(*Settings){bottomRightNumbers},
			want: `<brl><newPage brlnum="1" brlnumber="#a" pageType="NORMAL"/>` +
				`<brlPageNum untranslated="1" translated="#a"><moveTo hPos="8" vPos="2"/>#a</brlPageNum>` +
				`<moveTo hPos="0" vPos="0"/>aaaa bbbb <moveTo hPos="0" vPos="1"/>cccc</brl>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t, 10, 3, tt.opts...)
			brl := brlElements("aaaa bbbb cccc")[0]
			pbs := s.Start().AddBrl(brl)
			s.Finish(pbs)
			if n := s.Arena.Render(); n != 1 {
				t.Fatalf("Render() = %d, want 1", n)
			}
			if got := elementString(t, brl); got != tt.want {
				t.Errorf("rendered\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestOutputPageAnchors(t *testing.T) {
	s := newTestSession(t, 10, 2)
	brls := brlElements("aaaa bbbb cccc dddd eeee", " ffff")
	p := s.Start()
	pbs := p.AddBrl(brls[0])
	pbs = append(pbs, lastPage(pbs).AddBrl(brls[1])[1:]...)
	s.Finish(pbs)
	s.Arena.Render()

	// second page starts inside of the first element
	first := elementString(t, brls[0])
	if n := strings.Count(first, "<newPage"); n != 2 {
		t.Errorf("first element has %d page markers, want 2\n%s", n, first)
	}
	if !strings.Contains(first, `<newPage brlnum="2" brlnumber="#b" pageType="NORMAL"/><moveTo hPos="0" vPos="0"/>eeee`) {
		t.Errorf("second page marker is misplaced\n%s", first)
	}
	if second := elementString(t, brls[1]); strings.Contains(second, "<newPage") {
		t.Errorf("unexpected page marker\n%s", second)
	}
}

func TestOutputInsertion(t *testing.T) {
	s := newTestSession(t, 6, 3)
	brl := brlElements("#abcdefgh")[0]
	pbs := s.Start().AddBrl(brl)
	s.Finish(pbs)
	s.Arena.Render()

	if got, want := pbs[0].Grid().String(), "#abcd\"\nefgh\n"; got != want {
		t.Errorf("page\n%s\nwant\n%s", got, want)
	}
	got := elementString(t, brl)
	if !strings.Contains(got, `#abcd<brlonly type="insertion">&quot;</brlonly><moveTo hPos="0" vPos="1"/>efgh`) {
		t.Errorf("continuation indicator is not written\n%s", got)
	}
}
