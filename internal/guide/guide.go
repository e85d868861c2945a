// Package guide loads whole act guide documents and renders them as HTML or
// for the terminal.
package guide

import (
	"bytes"
	"fmt"
	"io/fs"
	"regexp"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// DisclaimerFile is shown for the section before act one
const DisclaimerFile = "disclaimer.md"

var (
	imageDefRe  = regexp.MustCompile(`\[image(\d+)\]:\s*<(data:image/[^>]+)>`)
	imageRefRe  = regexp.MustCompile(`!\[\]\[image(\d+)\]`)
	imgTagRe    = regexp.MustCompile(`(?i)<img\b[^>]*>`)
	blankRunsRe = regexp.MustCompile(`\n{3,}`)
)

// Guide is one loaded act guide document
type Guide struct {
	Act    int
	PreAct bool
	Title  string
	// Source is the document as read
	Source string
	// Markdown has image references replaced by inline <img> tags
	Markdown string
}

// Loader reads guide documents from a filesystem holding act<N>.md files
type Loader struct {
	fs fs.FS
}

// NewLoader creates a loader over fsys
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fs: fsys}
}

// IsPreAct reports whether a section belongs before act one
func IsPreAct(act int, section string) bool {
	if act == 0 {
		return true
	}
	s := strings.ToLower(section)
	return strings.Contains(s, "pre-act") ||
		strings.Contains(s, "introduction") ||
		strings.Contains(s, "disclaimer")
}

// FileName returns the guide document a section is read from
func FileName(act int, section string) string {
	if IsPreAct(act, section) {
		return DisclaimerFile
	}
	return fmt.Sprintf("act%d.md", act)
}

// Load reads the guide for an act. The section name may redirect to the
// disclaimer document.
func (l *Loader) Load(act int, section string) (*Guide, error) {
	pre := IsPreAct(act, section)
	name := FileName(act, section)

	data, err := fs.ReadFile(l.fs, name)
	if err != nil {
		if pre {
			return nil, fmt.Errorf("load disclaimer guide: %w", err)
		}
		return nil, fmt.Errorf("load act %d guide: %w", act, err)
	}

	source := string(data)
	g := &Guide{
		Act:      act,
		PreAct:   pre,
		Source:   source,
		Markdown: InlineImages(source),
	}
	if pre {
		g.Title = "Guide Introduction & Disclaimer"
	} else {
		g.Title = fmt.Sprintf("Act %d Layout Guide", act)
	}
	return g, nil
}

// Available reports whether a guide document exists for the section
func (l *Loader) Available(act int, section string) bool {
	_, err := fs.Stat(l.fs, FileName(act, section))
	return err == nil
}

// InlineImages replaces ![][imageN] references that have a matching
// `[imageN]: <data:image/...>` definition with an <img> tag. References
// without a definition are left as written.
func InlineImages(content string) string {
	defs := make(map[string]string)
	for _, m := range imageDefRe.FindAllStringSubmatch(content, -1) {
		defs[m[1]] = m[2]
	}

	return imageRefRe.ReplaceAllStringFunc(content, func(ref string) string {
		n := imageRefRe.FindStringSubmatch(ref)[1]
		if src, ok := defs[n]; ok {
			return fmt.Sprintf(`<img src="%s" alt="Zone layout" />`, src)
		}
		return ref
	})
}

var htmlEngine = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

// HTML renders the guide with its inline images
func HTML(g *Guide) (string, error) {
	var buf bytes.Buffer
	if err := htmlEngine.Convert([]byte(g.Markdown), &buf); err != nil {
		return "", fmt.Errorf("render guide html: %w", err)
	}
	return buf.String(), nil
}

// Terminal renders the guide for a terminal of the given width. Images can't
// be shown there, so references become "[image N]" markers.
func Terminal(g *Guide, width int, style string) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" || style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("create terminal renderer: %w", err)
	}
	out, err := r.Render(TerminalMarkdown(g.Source))
	if err != nil {
		return "", fmt.Errorf("render guide: %w", err)
	}
	return out, nil
}

// TerminalMarkdown strips image payloads from a guide source
func TerminalMarkdown(source string) string {
	out := imageDefRe.ReplaceAllString(source, "")
	out = imageRefRe.ReplaceAllString(out, "[image $1]")
	out = imgTagRe.ReplaceAllString(out, "[image]")
	return blankRunsRe.ReplaceAllString(out, "\n\n")
}
