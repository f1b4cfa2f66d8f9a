package pdf

import (
	"bytes"
	"errors"
	"testing"

	"pkt.systems/datasheet"
)

func renderPB86(t *testing.T, cfg Config) []byte {
	t.Helper()
	var out bytes.Buffer
	err := Render(RenderRequest{
		Doc:    datasheet.PB86(),
		Writer: &out,
		Config: cfg,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return out.Bytes()
}

func TestRenderSinglePageA4(t *testing.T) {
	data := renderPB86(t, Config{})
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("unexpected pdf header: %q", data[:8])
	}
	if !bytes.Contains(data, []byte("/Count 1")) {
		t.Fatalf("expected a single page in output")
	}
	if !bytes.Contains(data, []byte("595.28")) {
		t.Fatalf("expected A4 page width in output")
	}
}

func TestRenderHeadingsOnceInOrder(t *testing.T) {
	data := renderPB86(t, Config{NoCompression: true})
	headings := []string{
		"CIRCUIT OVERVIEW",
		"BUTTON INPUT CIRCUIT",
		"LED OUTPUT CIRCUIT",
		"COMPONENT VALUES",
		"CIRCUIT ANALYSIS",
		"VALIDATION STATUS",
		"NEXT STEPS",
	}
	last := -1
	for _, heading := range headings {
		if n := bytes.Count(data, []byte(heading)); n != 1 {
			t.Fatalf("heading %q appears %d times, want 1", heading, n)
		}
		idx := bytes.Index(data, []byte(heading))
		if idx <= last {
			t.Fatalf("heading %q out of order (index %d after %d)", heading, idx, last)
		}
		last = idx
	}
}

func TestRenderFoldedLiterals(t *testing.T) {
	data := renderPB86(t, Config{NoCompression: true})
	for _, literal := range []string{"15mA", "120mA", "150ohm", "100kohm", "[OK] SPICE simulation completed"} {
		if !bytes.Contains(data, []byte(literal)) {
			t.Fatalf("expected %q in uncompressed output", literal)
		}
	}
}

func TestRenderStatusColorIsolation(t *testing.T) {
	data := renderPB86(t, Config{NoCompression: true})
	green := []byte("0.502 0.000 rg")
	statusLines := 0
	for _, sec := range datasheet.PB86().Sections {
		if sec.Status {
			statusLines += len(sec.Lines)
		}
	}
	if statusLines == 0 {
		t.Fatalf("expected a status section in the document")
	}
	if n := bytes.Count(data, green); n != statusLines {
		t.Fatalf("green fill op appears %d times, want %d", n, statusLines)
	}
	first := bytes.Index(data, green)
	lastGreen := bytes.LastIndex(data, green)
	if heading := bytes.Index(data, []byte("VALIDATION STATUS")); first < heading {
		t.Fatalf("green fill before status heading (%d < %d)", first, heading)
	}
	if next := bytes.Index(data, []byte("NEXT STEPS")); lastGreen > next {
		t.Fatalf("green fill after status section (%d > %d)", lastGreen, next)
	}
}

func TestRenderBoringDropsStatusColor(t *testing.T) {
	data := renderPB86(t, Config{NoCompression: true, Boring: true})
	if bytes.Contains(data, []byte("0.502 0.000 rg")) {
		t.Fatalf("expected no green fill op in boring output")
	}
}

func TestRenderDeterministic(t *testing.T) {
	// Three font resources are registered per page; without sorted catalog
	// output their dictionary entries shuffle between runs.
	first := renderPB86(t, Config{})
	for i := 0; i < 8; i++ {
		if next := renderPB86(t, Config{}); !bytes.Equal(first, next) {
			t.Fatalf("render %d differs from first render", i+2)
		}
	}
}

func TestRenderNilWriter(t *testing.T) {
	err := Render(RenderRequest{Doc: datasheet.PB86()})
	if err == nil {
		t.Fatalf("expected error for nil writer")
	}
}

func TestRenderInvalidDocument(t *testing.T) {
	var out bytes.Buffer
	err := Render(RenderRequest{Doc: datasheet.Document{}, Writer: &out})
	if !errors.Is(err, datasheet.ErrEmptyDocument) {
		t.Fatalf("got %v, want %v", err, datasheet.ErrEmptyDocument)
	}
}

func TestRenderRejectsNonCoreFont(t *testing.T) {
	var out bytes.Buffer
	err := Render(RenderRequest{
		Doc:    datasheet.PB86(),
		Writer: &out,
		Config: Config{FontFamily: "ComicSans"},
	})
	if err == nil {
		t.Fatalf("expected error for non-core font")
	}
}

func TestRenderRejectsNarrowPage(t *testing.T) {
	var out bytes.Buffer
	err := Render(RenderRequest{
		Doc:    datasheet.PB86(),
		Writer: &out,
		Config: Config{Margin: 280},
	})
	if err == nil {
		t.Fatalf("expected error for page too narrow")
	}
}

func TestWrapProse(t *testing.T) {
	r := renderer{cols: 12}
	if got := r.wrapProse(""); len(got) != 1 || got[0] != "" {
		t.Fatalf("empty line should pass through, got %q", got)
	}
	if got := r.wrapProse("short line"); len(got) != 1 {
		t.Fatalf("short line should not wrap, got %q", got)
	}
	got := r.wrapProse("one two three four five six")
	if len(got) < 2 {
		t.Fatalf("long line should wrap, got %q", got)
	}
	for _, part := range got {
		if len(part) > 12 {
			t.Fatalf("wrapped part %q exceeds column budget", part)
		}
	}
}
