package parser

import (
	"bufio"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/gubarz/actguide/internal/zones"
)

const (
	// DefaultImageBase is where zone layout images are served from
	DefaultImageBase = "/poe1-campaign-helper/images/zone-layouts"
	// NoLayout is stored for zones whose table cell carries no image
	NoLayout = "No specific layout information available."

	maxLineSize = 32 * 1024 * 1024 // act guides inline base64 images
)

// ZoneInfo describes the layout guide for a single zone
type ZoneInfo struct {
	Name   string   `json:"name" yaml:"name"`
	Layout string   `json:"layout" yaml:"layout"`
	Notes  string   `json:"notes" yaml:"notes"`
	Images []string `json:"images" yaml:"images"`
}

func (z ZoneInfo) clone() ZoneInfo {
	z.Images = append([]string(nil), z.Images...)
	return z
}

// ActData holds every zone parsed for one act
type ActData struct {
	Number int                 `json:"actNumber" yaml:"act_number"`
	Title  string              `json:"title" yaml:"title"`
	Zones  map[string]ZoneInfo `json:"zones" yaml:"zones"`
}

// Keys returns the act's zone keys in lexical order
func (a *ActData) Keys() []string {
	keys := make([]string, 0, len(a.Zones))
	for key := range a.Zones {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// LayoutData maps act keys ("act3") to their parsed zones
type LayoutData map[string]*ActData

// ActKey returns the LayoutData key for an act number
func ActKey(number int) string {
	return "act" + strconv.Itoa(number)
}

// Act returns the data for an act number
func (d LayoutData) Act(number int) (*ActData, bool) {
	act, ok := d[ActKey(number)]
	return act, ok && act != nil
}

// Acts returns the parsed acts ordered by act number
func (d LayoutData) Acts() []*ActData {
	acts := make([]*ActData, 0, len(d))
	for _, act := range d {
		if act != nil {
			acts = append(acts, act)
		}
	}
	sort.Slice(acts, func(i, j int) bool { return acts[i].Number < acts[j].Number })
	return acts
}

// ZoneCount returns the number of zones across all acts
func (d LayoutData) ZoneCount() int {
	n := 0
	for _, act := range d {
		if act != nil {
			n += len(act.Zones)
		}
	}
	return n
}

var (
	// "# Act Seven", "## [**Act One**](#act-one)", "# Act 12"
	actHeadingRe = regexp.MustCompile(`(?i)^#.*?\bAct\s+([\w\s]+?)\s*(?:[\]\*\(\)]|$)`)
	actTokenRe   = regexp.MustCompile(`(?:act\s+)?(\w+)`)
	imageRefRe   = regexp.MustCompile(`!\[\]\[image(\d+)\]`)
	notePrefixRe = regexp.MustCompile(`(?i)^note:\s*`)
	edgePipeRe   = regexp.MustCompile(`^\s*\|\s*|\s*\|\s*$`)
	leadingIntRe = regexp.MustCompile(`^\d+`)
)

var actWords = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
}

// Options configures a Parser
type Options struct {
	// ImageBase prefixes every extracted image URL (defaults to DefaultImageBase)
	ImageBase string
}

// Parser scans zone layout markdown into LayoutData. Documents parsed by the
// same Parser are merged act by act.
type Parser struct {
	imageBase string
	data      LayoutData
}

// NewParser creates a new parser
func NewParser(opts Options) *Parser {
	base := strings.TrimRight(strings.TrimSpace(opts.ImageBase), "/")
	if base == "" {
		base = DefaultImageBase
	}
	return &Parser{
		imageBase: base,
		data:      make(LayoutData),
	}
}

// Parse parses a single markdown document with default options
func Parse(markdown string) LayoutData {
	return NewParser(Options{}).ParseString(markdown)
}

// ParseString parses a markdown document held in memory
func (p *Parser) ParseString(markdown string) LayoutData {
	p.parseLines(strings.Split(markdown, "\n"))
	return p.data
}

// ParseDirectory recursively parses all markdown files in lexical order
func (p *Parser) ParseDirectory(dir string) (LayoutData, error) {
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if strings.HasSuffix(strings.ToLower(path), ".md") {
			if err := p.parseFile(path); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p.data, nil
}

// ParseFile parses a single markdown file
func (p *Parser) ParseFile(path string) (LayoutData, error) {
	if err := p.parseFile(path); err != nil {
		return nil, err
	}
	return p.data, nil
}

func (p *Parser) parseFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	p.parseLines(lines)
	return nil
}

// tableState is the scan context of the table currently being read
type tableState struct {
	act     *ActData
	inTable bool
	headers []string
	rows    [][]string
}

func (p *Parser) parseLines(lines []string) {
	var st tableState
	opened := make(map[string]bool)

	for _, raw := range lines {
		line := strings.TrimSpace(raw)

		// Act heading - closes any open table
		if matches := actHeadingRe.FindStringSubmatch(line); matches != nil {
			st = tableState{act: p.openAct(matches[1], opened)}
			continue
		}

		// Separator row marks the start of table content
		if strings.Contains(line, "|") && strings.Contains(line, "-----") {
			st.inTable = true
			continue
		}

		if !st.inTable || st.act == nil || !strings.Contains(line, "|") {
			continue
		}

		cells := splitRow(line)
		if len(cells) == 0 {
			continue
		}

		if isHeaderRow(cells) {
			st.headers = cells
			st.rows = nil
		} else if len(st.headers) > 0 {
			st.rows = append(st.rows, cells)
		}

		// Re-extract on every row so later note rows are picked up
		if len(st.headers) > 0 && len(st.rows) > 0 {
			p.extractZones(st.act, st.headers, st.rows)
		}
	}
}

// openAct returns the act for a heading token, or nil when the token does
// not name an act. A heading repeated within one document starts the act
// over; an act parsed from an earlier document is extended.
func (p *Parser) openAct(token string, opened map[string]bool) *ActData {
	title := strings.ToLower(strings.TrimSpace(token))
	number := ActNumber(title)
	if number == 0 {
		return nil
	}

	key := ActKey(number)
	if act, ok := p.data[key]; ok && !opened[key] {
		opened[key] = true
		return act
	}
	opened[key] = true
	act := &ActData{
		Number: number,
		Title:  title,
		Zones:  make(map[string]ZoneInfo),
	}
	p.data[key] = act
	return act
}

// ActNumber resolves an act name ("seven", "act six", "12") to its number.
// It returns 0 when the name does not resolve to an act >= 1.
func ActNumber(name string) int {
	name = strings.ToLower(name)
	matches := actTokenRe.FindStringSubmatch(name)
	if matches == nil {
		return leadingInt(strings.TrimSpace(name))
	}
	if n, ok := actWords[matches[1]]; ok {
		return n
	}
	return leadingInt(matches[1])
}

func leadingInt(s string) int {
	digits := leadingIntRe.FindString(s)
	if digits == "" {
		return 0
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 1 {
		return 0
	}
	return n
}

func (p *Parser) extractZones(act *ActData, headers []string, rows [][]string) {
	for col, header := range headers {
		content := ""
		if col < len(rows[0]) {
			content = rows[0][col]
		}

		if header == "" || isNote(header) || isNote(content) {
			continue
		}

		name := strings.TrimSpace(edgePipeRe.ReplaceAllString(header, ""))
		if name == "" {
			continue
		}
		key := zones.Key(name)

		images := p.imageURLs(content)
		zone := ZoneInfo{
			Name:   name,
			Layout: renderLayout(name, images),
			Notes:  findNote(rows, col),
			Images: images,
		}

		// Keep richer data from an earlier table
		if prev, ok := act.Zones[key]; ok && len(prev.Images) > 0 && len(images) == 0 {
			continue
		}
		act.Zones[key] = zone
	}
}

func (p *Parser) imageURLs(content string) []string {
	matches := imageRefRe.FindAllStringSubmatch(content, -1)
	if len(matches) == 0 {
		return nil
	}
	urls := make([]string, 0, len(matches))
	for _, m := range matches {
		urls = append(urls, fmt.Sprintf("%s/image%s.png", p.imageBase, m[1]))
	}
	return urls
}

func renderLayout(name string, images []string) string {
	if len(images) == 0 {
		return NoLayout
	}
	alt := html.EscapeString(name)
	var b strings.Builder
	for _, src := range images {
		fmt.Fprintf(&b, `<img src="%s" alt="%s layout" style="max-width: 300px; margin: 5px;" />`,
			html.EscapeString(src), alt)
	}
	return b.String()
}

func findNote(rows [][]string, col int) string {
	for _, row := range rows {
		if col < len(row) && isNote(row[col]) {
			return strings.TrimSpace(notePrefixRe.ReplaceAllString(row[col], ""))
		}
	}
	return ""
}

func splitRow(line string) []string {
	parts := strings.Split(line, "|")
	cells := make([]string, 0, len(parts))
	for _, part := range parts {
		if cell := strings.TrimSpace(part); cell != "" {
			cells = append(cells, cell)
		}
	}
	return cells
}

// isHeaderRow reports whether a row lists zone names rather than layout data
func isHeaderRow(cells []string) bool {
	for _, cell := range cells {
		lower := strings.ToLower(cell)
		if strings.HasPrefix(lower, "note:") ||
			strings.Contains(lower, "layout") ||
			strings.Contains(cell, "![][image") {
			return false
		}
	}
	return true
}

func isNote(s string) bool {
	return strings.HasPrefix(strings.ToLower(s), "note:")
}
