package ui

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gubarz/actguide/internal/guide"
	"github.com/gubarz/actguide/internal/parser"
)

const browseGuide = `# Act One
|-----|-----|
| The Coast | Mud Flats |
| ![][image1] | ![][image2] |
| Note: waypoint at the exit | |

# Act Three
|-----|
| The Docks |
| ![][image9] |
`

func testModel(t *testing.T) mainModel {
	t.Helper()
	fsys := fstest.MapFS{
		"act1.md": {Data: []byte("# Act One\n\nFollow the coast.\n")},
	}
	return newMainModel(parser.Parse(browseGuide), guide.NewLoader(fsys), Options{GuideStyle: "ascii", WordWrap: 60})
}

func names(items []zoneItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.zone.Name
	}
	return out
}

func TestZoneItemsOrder(t *testing.T) {
	m := testModel(t)

	got := strings.Join(names(m.zones), ",")
	want := "Mud Flats,The Coast,The Docks"
	if got != want {
		t.Errorf("zones = %s, want %s", got, want)
	}
}

func TestFilterItems(t *testing.T) {
	m := testModel(t)

	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"Mud Flats", "The Coast", "The Docks"}},
		{"coast", []string{"The Coast"}},
		{"THE", []string{"The Coast", "The Docks"}},
		{"three", []string{"The Docks"}},
		{"act 1", []string{"Mud Flats", "The Coast"}},
		{"waypoint", []string{"The Coast"}},
		{"the waypoint", []string{"The Coast"}},
		{"docks coast", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := names(filterItems(m.zones, tt.query))
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("filterItems(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestEnterSelectsZone(t *testing.T) {
	m := testModel(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, cmd := next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	result := next.(mainModel)

	if result.selected == nil || result.selected.zone.Name != "The Coast" {
		t.Fatalf("selected = %+v", result.selected)
	}
	if cmd == nil {
		t.Error("expected quit command")
	}
}

func TestEscQuits(t *testing.T) {
	next, _ := testModel(t).Update(tea.KeyMsg{Type: tea.KeyEsc})
	result := next.(mainModel)

	if !result.quitting || result.selected != nil {
		t.Errorf("quitting = %v, selected = %v", result.quitting, result.selected)
	}
	if result.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestCursorClamped(t *testing.T) {
	m := testModel(t)
	m.moveCursor(-5)
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}
	m.moveCursor(50)
	if m.cursor != len(m.zones)-1 {
		t.Errorf("cursor = %d, want %d", m.cursor, len(m.zones)-1)
	}
}

func TestOpenGuide(t *testing.T) {
	m := testModel(t)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlG})
	m = next.(mainModel)
	if m.phase != phaseGuide || m.guideAct != 1 {
		t.Fatalf("phase = %v, act = %d", m.phase, m.guideAct)
	}
	if cmd == nil {
		t.Fatal("expected render command")
	}

	msg, ok := cmd().(guideMsg)
	if !ok {
		t.Fatalf("unexpected message %T", cmd())
	}
	if msg.err != nil {
		t.Fatalf("render guide: %v", msg.err)
	}

	next, _ = m.Update(msg)
	m = next.(mainModel)
	if !strings.Contains(m.View(), "Follow the coast.") {
		t.Errorf("guide not shown:\n%s", m.View())
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if next.(mainModel).phase != phaseZoneSelect {
		t.Error("esc should return to the zone list")
	}
}

func TestGuideError(t *testing.T) {
	m := testModel(t)
	m.phase = phaseGuide
	m.guideAct = 3

	m = m.handleGuide(guideMsg{act: 3, err: errors.New("load act 3 guide: missing")})
	if m.guideErr == nil {
		t.Error("expected guide error to be kept")
	}

	// a stale result for another act is ignored
	m = m.handleGuide(guideMsg{act: 1, content: "act one"})
	if strings.Contains(m.viewport.View(), "act one") {
		t.Error("stale guide should not replace the current one")
	}
}

func TestRenderZoneSelect(t *testing.T) {
	m := testModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	view := next.(mainModel).View()

	for _, want := range []string{"Mud Flats", "The Docks", "3/3", "Ctrl+G guide"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"The Southern Forest", 10, "The Sou..."},
		{"Coast", 10, "Coast"},
		{"Coast", 3, "Coast"},
	}
	for _, tt := range tests {
		if got := truncateString(tt.in, tt.max); got != tt.want {
			t.Errorf("truncateString(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}
