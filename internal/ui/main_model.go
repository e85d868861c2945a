package ui

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gubarz/actguide/internal/guide"
	"github.com/gubarz/actguide/internal/output"
	"github.com/gubarz/actguide/internal/parser"
)

// ============================================================================
// String Builder Pool - reduces GC pressure from rendering
// ============================================================================

var builderPool = sync.Pool{
	New: func() interface{} {
		return &strings.Builder{}
	},
}

func getBuilder() *strings.Builder {
	b := builderPool.Get().(*strings.Builder)
	b.Reset()
	return b
}

func putBuilder(b *strings.Builder) {
	if b.Cap() < 64*1024 { // Don't pool huge builders
		builderPool.Put(b)
	}
}

// ============================================================================
// Zone Item
// ============================================================================

// zoneItem is one row of the browser
type zoneItem struct {
	act  *parser.ActData
	key  string
	zone parser.ZoneInfo
}

// label returns the act column text
func (item *zoneItem) label() string {
	return fmt.Sprintf("Act %d", item.act.Number)
}

// matchesQuery checks if the zone matches all search words.
// Words must already be lowercased.
func (item *zoneItem) matchesQuery(words []string) bool {
	for _, word := range words {
		if !item.containsWord(word) {
			return false
		}
	}
	return true
}

// containsWord checks if any field contains the word (case-insensitive)
func (item *zoneItem) containsWord(word string) bool {
	if containsIgnoreCase(item.label(), word) {
		return true
	}
	if containsIgnoreCase(item.act.Title, word) {
		return true
	}
	if containsIgnoreCase(item.zone.Name, word) {
		return true
	}
	return containsIgnoreCase(item.zone.Notes, word)
}

// containsIgnoreCase checks s for an already lowercased substr
func containsIgnoreCase(s, substr string) bool {
	if len(substr) > len(s) {
		return false
	}
	return strings.Contains(strings.ToLower(s), substr)
}

// zoneItems flattens the layout data in act then key order
func zoneItems(data parser.LayoutData) []zoneItem {
	var items []zoneItem
	for _, act := range data.Acts() {
		for _, key := range act.Keys() {
			items = append(items, zoneItem{act: act, key: key, zone: act.Zones[key]})
		}
	}
	return items
}

// ============================================================================
// Messages
// ============================================================================

// filterMsg triggers filtering after debounce
type filterMsg struct{}

// debounceFilter returns a command that triggers filtering after a delay
func debounceFilter() tea.Cmd {
	return tea.Tick(50*time.Millisecond, func(t time.Time) tea.Msg {
		return filterMsg{}
	})
}

// guideMsg carries a rendered act guide
type guideMsg struct {
	act     int
	content string
	err     error
}

// ============================================================================
// Main Model
// ============================================================================

// uiPhase represents which screen the TUI shows
type uiPhase int

const (
	phaseZoneSelect uiPhase = iota // Browsing zones
	phaseGuide                     // Reading an act guide
)

// mainModel is the Bubble Tea model for the zone browser
type mainModel struct {
	width     int
	height    int
	textInput textinput.Model
	quitting  bool

	phase uiPhase

	// Zone selection state
	zones    []zoneItem
	filtered []zoneItem
	cursor   int
	offset   int // viewport scroll offset
	selected *zoneItem

	// Guide state
	guides     *guide.Loader
	guideStyle string
	wordWrap   int
	guideAct   int
	guideErr   error
	viewport   viewport.Model
}

// newMainModel creates a new mainModel over the parsed zones
func newMainModel(data parser.LayoutData, guides *guide.Loader, opts Options) mainModel {
	ti := textinput.New()
	ti.Placeholder = "Type to search zones..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	items := zoneItems(data)

	return mainModel{
		zones:      items,
		filtered:   items,
		textInput:  ti,
		phase:      phaseZoneSelect,
		guides:     guides,
		guideStyle: opts.GuideStyle,
		wordWrap:   opts.WordWrap,
		viewport:   viewport.New(80, 20),
	}
}

// Init implements tea.Model
func (m mainModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsMsg.Width
		m.height = wsMsg.Height
		m.textInput.Width = wsMsg.Width - 4
		m.viewport.Width = wsMsg.Width
		m.viewport.Height = maxInt(wsMsg.Height-2, 1)
	}

	if gm, ok := msg.(guideMsg); ok {
		return m.handleGuide(gm), nil
	}

	switch m.phase {
	case phaseGuide:
		return m.updateGuide(msg)
	default:
		return m.updateZoneSelect(msg)
	}
}

// updateZoneSelect handles updates while browsing zones
func (m mainModel) updateZoneSelect(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cmd := m.handleZoneSelectKey(msg); cmd != nil {
			return m, cmd
		}
	case filterMsg:
		m.filterZones()
		return m, nil
	}

	prevQuery := m.textInput.Value()
	var tiCmd tea.Cmd
	m.textInput, tiCmd = m.textInput.Update(msg)
	cmds = append(cmds, tiCmd)

	// Only trigger debounced filter if query changed
	if m.textInput.Value() != prevQuery {
		cmds = append(cmds, debounceFilter())
	}

	return m, tea.Batch(cmds...)
}

// handleZoneSelectKey processes keyboard input while browsing zones
func (m *mainModel) handleZoneSelectKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.quitting = true
		return tea.Quit
	case "enter":
		if m.cursor < len(m.filtered) {
			item := m.filtered[m.cursor]
			m.selected = &item
			return tea.Quit
		}
	case "up", "ctrl+p":
		m.moveCursor(-1)
	case "down", "ctrl+n":
		m.moveCursor(1)
	case "pgup":
		m.moveCursor(-10)
	case "pgdown":
		m.moveCursor(10)
	case "home", "ctrl+a":
		m.cursor = 0
		m.adjustOffset()
	case "end", "ctrl+e":
		m.cursor = max(0, len(m.filtered)-1)
		m.adjustOffset()
	case "ctrl+g":
		if m.cursor < len(m.filtered) && m.guides != nil {
			return m.openGuide(m.filtered[m.cursor].act.Number)
		}
	}
	return nil
}

// moveCursor moves the cursor by delta, clamping to valid range
func (m *mainModel) moveCursor(delta int) {
	m.cursor += delta
	m.cursor = clamp(m.cursor, 0, max(0, len(m.filtered)-1))
	m.adjustOffset()
}

// adjustOffset ensures cursor is visible within viewport
func (m *mainModel) adjustOffset() {
	viewHeight := maxInt(m.height-10, 3) // approximate list height
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+viewHeight {
		m.offset = m.cursor - viewHeight + 1
	}
	maxOffset := max(0, len(m.filtered)-viewHeight)
	m.offset = clamp(m.offset, 0, maxOffset)
}

// filterZones filters the zone list based on the search query
func (m *mainModel) filterZones() {
	m.filtered = filterItems(m.zones, m.textInput.Value())
	m.cursor = clamp(m.cursor, 0, max(0, len(m.filtered)-1))
	m.adjustOffset()
}

// filterItems keeps the items matching every word of query
func filterItems(items []zoneItem, query string) []zoneItem {
	words := strings.Fields(strings.ToLower(query))
	if len(words) == 0 {
		return items
	}

	filtered := make([]zoneItem, 0, len(items))
	for i := range items {
		if items[i].matchesQuery(words) {
			filtered = append(filtered, items[i])
		}
	}
	return filtered
}

// ============================================================================
// Act Guide
// ============================================================================

// openGuide switches to the guide screen and renders the act guide
func (m *mainModel) openGuide(act int) tea.Cmd {
	m.phase = phaseGuide
	m.guideAct = act
	m.guideErr = nil
	m.viewport.SetContent(styles.Dim.Render(fmt.Sprintf("Loading act %d guide...", act)))
	m.viewport.GotoTop()

	loader, style := m.guides, m.guideStyle
	width := m.wordWrap
	if m.width > 0 && (width <= 0 || width > m.width-2) {
		width = m.width - 2
	}

	return func() tea.Msg {
		g, err := loader.Load(act, "")
		if err != nil {
			return guideMsg{act: act, err: err}
		}
		content, err := guide.Terminal(g, width, style)
		return guideMsg{act: act, content: content, err: err}
	}
}

// handleGuide installs a rendered guide if it is still the one on screen
func (m mainModel) handleGuide(msg guideMsg) mainModel {
	if m.phase != phaseGuide || msg.act != m.guideAct {
		return m
	}
	if msg.err != nil {
		slog.Warn("act guide unavailable", "act", msg.act, "error", msg.err)
		m.guideErr = msg.err
		m.viewport.SetContent(msg.err.Error())
		return m
	}
	m.viewport.SetContent(msg.content)
	return m
}

// updateGuide handles updates while reading a guide
func (m mainModel) updateGuide(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "esc", "q", "ctrl+g":
			m.phase = phaseZoneSelect
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// ============================================================================
// Rendering
// ============================================================================

// View implements tea.Model
func (m mainModel) View() string {
	if m.quitting && m.selected == nil {
		return ""
	}

	switch m.phase {
	case phaseGuide:
		return m.renderGuide()
	default:
		return m.renderZoneSelect()
	}
}

// renderGuide builds the guide reading view
func (m mainModel) renderGuide() string {
	width := maxInt(m.width, 80)

	b := getBuilder()
	defer putBuilder(b)
	b.WriteString(styles.PreviewHeader.Render(fmt.Sprintf("Act %d Layout Guide", m.guideAct)))
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(styles.Divider.Render(strings.Repeat("─", width)))
	b.WriteString("\n")
	b.WriteString(styles.Dim.Render(fmt.Sprintf("  %3.f%% • ↑/↓ scroll • ESC back", m.viewport.ScrollPercent()*100)))
	return b.String()
}

// renderZoneSelect builds the zone list view
func (m mainModel) renderZoneSelect() string {
	width := maxInt(m.width, 80)
	height := maxInt(m.height, 24)

	preview := m.renderPreview(width)
	previewLines := countLines(preview)

	inputLines := 3 // divider + info + input
	listHeight := maxInt(height-previewLines-inputLines, 3)
	list := m.renderList(listHeight)
	listLines := countLines(list)

	padding := maxInt(height-previewLines-listLines-inputLines, 0)

	b := getBuilder()
	defer putBuilder(b)
	b.WriteString(preview)
	b.WriteString(list)
	b.WriteString(strings.Repeat("\n", padding))
	b.WriteString(m.renderInput(width))

	return b.String()
}

// renderPreview renders the notes and images of the zone under the cursor
func (m mainModel) renderPreview(width int) string {
	b := getBuilder()
	defer putBuilder(b)
	lines := 0
	const maxLines = 6

	if m.cursor < len(m.filtered) {
		item := m.filtered[m.cursor]
		b.WriteString(styles.PreviewAct.Render(fmt.Sprintf("%s (%s)", item.label(), item.act.Title)))
		b.WriteString("\n")
		lines++

		b.WriteString(styles.PreviewHeader.Render(item.zone.Name))
		b.WriteString("\n")
		lines++

		if item.zone.Notes != "" {
			b.WriteString(styles.Notes.Render(truncateLines("Note: "+item.zone.Notes, 1, width)))
			b.WriteString("\n")
			lines++
		}

		if len(item.zone.Images) == 0 {
			b.WriteString(styles.Dim.Render(parser.NoLayout))
			b.WriteString("\n")
			lines++
		}
		for _, img := range item.zone.Images {
			if lines >= maxLines {
				break
			}
			b.WriteString(styles.Dim.Render(truncateString(img, width)))
			b.WriteString("\n")
			lines++
		}
	}

	// Pad to fixed height
	for lines < maxLines {
		b.WriteString("\n")
		lines++
	}

	b.WriteString(styles.Divider.Render(strings.Repeat("─", width)))
	b.WriteString("\n")

	return b.String()
}

// renderList renders the scrollable list of zones
func (m *mainModel) renderList(maxHeight int) string {
	if len(m.filtered) == 0 {
		return ""
	}

	start, end := scrollWindow(m.cursor, len(m.filtered), maxHeight, &m.offset)

	b := getBuilder()
	defer putBuilder(b)
	for i := start; i < end; i++ {
		b.WriteString(m.renderListItem(m.filtered[i], i == m.cursor))
		b.WriteString("\n")
	}

	return b.String()
}

// renderListItem renders a single list row
func (m mainModel) renderListItem(item zoneItem, selected bool) string {
	actStyle, nameStyle, dimStyle := styles.Act, styles.Name, styles.Dim
	if selected {
		actStyle = styles.WithSelection(actStyle)
		nameStyle = styles.WithSelection(nameStyle)
		dimStyle = styles.WithSelection(dimStyle)
	}

	images := fmt.Sprintf("%d images", len(item.zone.Images))
	if item.zone.Notes != "" {
		images += " • note"
	}

	line := actStyle.Render(fmt.Sprintf("%-7s", item.label())) +
		nameStyle.Render(fmt.Sprintf(" %-34s ", truncateString(item.zone.Name, 34))) +
		dimStyle.Render(images)

	if selected {
		return styles.Cursor.Render("▶ ") + line
	}
	return "  " + line
}

// renderInput renders the input section at the bottom
func (m mainModel) renderInput(width int) string {
	b := getBuilder()
	defer putBuilder(b)
	b.WriteString(styles.Divider.Render(strings.Repeat("─", width)))
	b.WriteString("\n")
	b.WriteString(styles.Dim.Render(fmt.Sprintf("  %d/%d", len(m.filtered), len(m.zones))))
	b.WriteString(" • ")
	b.WriteString(styles.Dim.Render("Ctrl+G guide"))
	b.WriteString(" • ")
	b.WriteString(styles.Dim.Render("ESC exit"))
	b.WriteString("\n")
	b.WriteString(m.textInput.View())
	return b.String()
}

// ============================================================================
// Run TUI
// ============================================================================

// Options configures the browser
type Options struct {
	InitialQuery string
	GuideStyle   string
	WordWrap     int
}

// getTTY returns file handles for TUI input/output
// Uses /dev/tty to bypass shell pipes and command substitution
func getTTY() (in *os.File, out *os.File, cleanup func()) {
	var closers []func()

	// If stdout is piped or captured by $(), draw on /dev/tty
	if fileInfo, _ := os.Stdout.Stat(); (fileInfo.Mode() & os.ModeCharDevice) == 0 {
		out, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
		if err != nil {
			out = os.Stderr // Last resort fallback
		} else {
			closers = append(closers, func() { out.Close() })
		}

		in, err := os.OpenFile("/dev/tty", os.O_RDONLY, 0)
		if err != nil {
			in = os.Stdin
		} else {
			closers = append(closers, func() { in.Close() })
		}

		// Tell lipgloss to use the TTY for color detection
		lipgloss.SetDefaultRenderer(lipgloss.NewRenderer(out))

		return in, out, func() {
			for _, c := range closers {
				c()
			}
		}
	}

	return os.Stdin, os.Stdout, func() {}
}

// RunTUI launches the zone browser and emits the chosen zone through printer
func RunTUI(data parser.LayoutData, guides *guide.Loader, printer *output.Printer, opts Options) error {
	if data.ZoneCount() == 0 {
		return fmt.Errorf("no zones found")
	}

	m := newMainModel(data, guides, opts)
	if opts.InitialQuery != "" {
		m.textInput.SetValue(opts.InitialQuery)
		m.filterZones()
	}

	ttyIn, ttyOut, cleanup := getTTY()
	RefreshStyles() // Refresh after getTTY sets up the renderer
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(ttyOut), tea.WithInput(ttyIn))
	finalModel, err := p.Run()
	cleanup()

	if err != nil {
		return err
	}

	result := finalModel.(mainModel)
	if result.selected == nil {
		return nil
	}

	slog.Debug("zone selected", "act", result.selected.act.Number, "key", result.selected.key)
	return printer.Zone(result.selected.zone)
}

// ============================================================================
// Helpers
// ============================================================================

// clamp restricts v to the range [minV, maxV]
func clamp(v, minV, maxV int) int {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}

// maxInt returns the larger of a and b
func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// countLines counts the number of lines in a string
func countLines(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}

// scrollWindow calculates the visible range for a scrollable list
func scrollWindow(cursor, total, height int, offset *int) (start, end int) {
	if cursor < *offset {
		*offset = cursor
	}
	if cursor >= *offset+height {
		*offset = cursor - height + 1
	}
	maxOffset := max(0, total-height)
	*offset = clamp(*offset, 0, maxOffset)

	start = *offset
	end = min(start+height, total)
	return
}

// truncateString truncates a string to maxLen with ellipsis
func truncateString(s string, maxLen int) string {
	if maxLen <= 3 || len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// truncateLines truncates text to maxLines with optional maxLen per content
func truncateLines(text string, maxLines int, maxLen int) string {
	lines := strings.Split(text, "\n")
	if len(lines) > maxLines {
		text = strings.Join(lines[:maxLines], "\n") + "..."
	}
	if maxLen > 3 && len(text) > maxLen {
		text = text[:maxLen-3] + "..."
	}
	return text
}
