package guide

import (
	"strings"
	"testing"
	"testing/fstest"
)

const actOneDoc = `# Act One

| | |
|-----|-----|
| The Coast | Mud Flats |
| ![][image1] | ![][image2] |

[image1]: <data:image/png;base64,AAAA>
`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"act1.md":       {Data: []byte(actOneDoc)},
		"disclaimer.md": {Data: []byte("# Disclaimer\n\nLayouts may vary.\n")},
	}
}

func TestIsPreAct(t *testing.T) {
	tests := []struct {
		act     int
		section string
		want    bool
	}{
		{0, "", true},
		{1, "Pre-Act", true},
		{1, "Introduction", true},
		{2, "Read the DISCLAIMER", true},
		{1, "Act 1", false},
		{6, "", false},
	}

	for _, tt := range tests {
		if got := IsPreAct(tt.act, tt.section); got != tt.want {
			t.Errorf("IsPreAct(%d, %q) = %v, want %v", tt.act, tt.section, got, tt.want)
		}
	}
}

func TestLoadAct(t *testing.T) {
	g, err := NewLoader(testFS()).Load(1, "Act 1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if g.PreAct {
		t.Error("act guide marked as pre-act")
	}
	if g.Title != "Act 1 Layout Guide" {
		t.Errorf("title = %q", g.Title)
	}
	if !strings.Contains(g.Markdown, `<img src="data:image/png;base64,AAAA" alt="Zone layout" />`) {
		t.Errorf("defined image not inlined: %q", g.Markdown)
	}
	if !strings.Contains(g.Markdown, "![][image2]") {
		t.Errorf("undefined image reference should be kept: %q", g.Markdown)
	}
	if g.Source != actOneDoc {
		t.Error("source should be the unmodified document")
	}
}

func TestLoadDisclaimer(t *testing.T) {
	loader := NewLoader(testFS())

	for _, section := range []string{"Pre-Act", "Introduction"} {
		g, err := loader.Load(4, section)
		if err != nil {
			t.Fatalf("Load(%q): %v", section, err)
		}
		if !g.PreAct || g.Title != "Guide Introduction & Disclaimer" {
			t.Errorf("section %q: got %+v", section, g)
		}
	}

	if _, err := loader.Load(0, ""); err != nil {
		t.Errorf("Load(0): %v", err)
	}
}

func TestLoadMissing(t *testing.T) {
	loader := NewLoader(testFS())

	_, err := loader.Load(5, "Act 5")
	if err == nil || !strings.Contains(err.Error(), "act 5") {
		t.Errorf("expected act 5 load error, got %v", err)
	}
	if loader.Available(5, "Act 5") {
		t.Error("act 5 should not be available")
	}
	if !loader.Available(1, "Act 1") {
		t.Error("act 1 should be available")
	}

	_, err = NewLoader(fstest.MapFS{}).Load(0, "")
	if err == nil || !strings.Contains(err.Error(), "disclaimer") {
		t.Errorf("expected disclaimer load error, got %v", err)
	}
}

func TestHTML(t *testing.T) {
	g, err := NewLoader(testFS()).Load(1, "")
	if err != nil {
		t.Fatal(err)
	}

	out, err := HTML(g)
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	if !strings.Contains(out, "<table>") {
		t.Errorf("expected a rendered table, got %q", out)
	}
	if !strings.Contains(out, `<img src="data:image/png;base64,AAAA"`) {
		t.Errorf("expected inline image, got %q", out)
	}
	if !strings.Contains(out, "Act One</h1>") {
		t.Errorf("expected heading, got %q", out)
	}
}

func TestTerminalMarkdown(t *testing.T) {
	out := TerminalMarkdown(actOneDoc + "\n<img src=\"x.png\" />\n")

	if strings.Contains(out, "base64") {
		t.Errorf("image payload not stripped: %q", out)
	}
	if !strings.Contains(out, "[image 1]") || !strings.Contains(out, "[image 2]") {
		t.Errorf("expected image markers: %q", out)
	}
	if strings.Contains(out, "<img") {
		t.Errorf("img tag not stripped: %q", out)
	}
}

func TestTerminal(t *testing.T) {
	g, err := NewLoader(testFS()).Load(1, "")
	if err != nil {
		t.Fatal(err)
	}

	out, err := Terminal(g, 80, "ascii")
	if err != nil {
		t.Fatalf("Terminal: %v", err)
	}
	if !strings.Contains(out, "Act One") {
		t.Errorf("heading missing from terminal output: %q", out)
	}
	if strings.Contains(out, "base64") {
		t.Errorf("image payload leaked into terminal output")
	}
}
