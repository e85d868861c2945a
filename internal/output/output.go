package output

import (
	"encoding/json"
	"fmt"
	"html"
	"io"
	"os"
	"os/exec"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gubarz/actguide/internal/parser"
)

// ============================================================================
// Clipboard Interface
// ============================================================================

// Clipboard defines the interface for clipboard operations
type Clipboard interface {
	Copy(text string) error
}

// systemClipboard implements Clipboard using system commands
type systemClipboard struct {
	fallback io.Writer
}

// Copy copies text to the system clipboard
func (c *systemClipboard) Copy(text string) error {
	cmd := c.findClipboardCommand()
	if cmd == nil {
		// No clipboard tool found, just print
		_, err := fmt.Fprintln(c.fallback, text)
		return err
	}
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}

// findClipboardCommand returns the appropriate clipboard command for the system
func (c *systemClipboard) findClipboardCommand() *exec.Cmd {
	switch {
	case commandExists("wl-copy"):
		return exec.Command("wl-copy")
	case commandExists("xclip"):
		return exec.Command("xclip", "-selection", "clipboard")
	case commandExists("xsel"):
		return exec.Command("xsel", "--clipboard", "--input")
	case commandExists("pbcopy"):
		return exec.Command("pbcopy")
	default:
		return nil
	}
}

// commandExists checks if a command is available in PATH
func commandExists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// ============================================================================
// Modes and Formats
// ============================================================================

// Mode represents where rendered output goes
type Mode string

const (
	ModePrint Mode = "print"
	ModeCopy  Mode = "copy"
)

// Format represents how values are rendered
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatHTML Format = "html"
)

// ParseMode validates an output mode name
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case "", ModePrint:
		return ModePrint, nil
	case ModeCopy:
		return m, nil
	default:
		return "", fmt.Errorf("unsupported output mode: %s (supported: print, copy)", s)
	}
}

// ParseFormat validates an output format name
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON, FormatYAML, FormatHTML:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: text, json, yaml, html)", s)
	}
}

// ============================================================================
// Printer
// ============================================================================

// Printer renders zone layouts and hands them to the configured destination
type Printer struct {
	out       io.Writer
	mode      Mode
	format    Format
	clipboard Clipboard
}

// NewPrinter creates a printer writing to stdout
func NewPrinter(mode Mode, format Format) *Printer {
	return &Printer{
		out:       os.Stdout,
		mode:      mode,
		format:    format,
		clipboard: &systemClipboard{fallback: os.Stdout},
	}
}

// WithWriter sets the print destination (useful for testing)
func (p *Printer) WithWriter(w io.Writer) *Printer {
	p.out = w
	return p
}

// WithClipboard sets a custom clipboard implementation (useful for testing)
func (p *Printer) WithClipboard(c Clipboard) *Printer {
	p.clipboard = c
	return p
}

// Format returns the configured format
func (p *Printer) Format() Format {
	return p.format
}

// Zone outputs a single zone
func (p *Printer) Zone(zone parser.ZoneInfo) error {
	text, err := p.render(zone, func() string {
		if p.format == FormatHTML {
			return zone.Layout
		}
		return ZoneText(zone)
	})
	if err != nil {
		return err
	}
	return p.emit(text)
}

// Layout outputs all parsed acts
func (p *Printer) Layout(data parser.LayoutData) error {
	text, err := p.render(data, func() string {
		var b strings.Builder
		for _, act := range data.Acts() {
			if p.format == FormatHTML {
				fmt.Fprintf(&b, "<h2>Act %d</h2>\n", act.Number)
			} else {
				fmt.Fprintf(&b, "Act %d (%s) - %d zones\n", act.Number, act.Title, len(act.Zones))
			}
			for _, key := range act.Keys() {
				zone := act.Zones[key]
				if p.format == FormatHTML {
					fmt.Fprintf(&b, "<h3>%s</h3>\n%s\n", html.EscapeString(zone.Name), zone.Layout)
					continue
				}
				fmt.Fprintf(&b, "  %-32s %d images", key, len(zone.Images))
				if zone.Notes != "" {
					fmt.Fprintf(&b, "  note: %s", zone.Notes)
				}
				b.WriteString("\n")
			}
		}
		return strings.TrimRight(b.String(), "\n")
	})
	if err != nil {
		return err
	}
	return p.emit(text)
}

// Value outputs any structured value, with text for the text and html formats
func (p *Printer) Value(v any, text string) error {
	rendered, err := p.render(v, func() string { return text })
	if err != nil {
		return err
	}
	return p.emit(rendered)
}

// Raw outputs text as is, whatever the format
func (p *Printer) Raw(text string) error {
	return p.emit(text)
}

func (p *Printer) render(v any, text func() string) (string, error) {
	switch p.format {
	case FormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", fmt.Errorf("encode json: %w", err)
		}
		return string(data), nil
	case FormatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("encode yaml: %w", err)
		}
		return strings.TrimRight(string(data), "\n"), nil
	default:
		return text(), nil
	}
}

func (p *Printer) emit(text string) error {
	switch p.mode {
	case ModeCopy:
		return p.clipboard.Copy(text)
	default: // print
		_, err := fmt.Fprintln(p.out, text)
		return err
	}
}

// ZoneText is the plain text rendering of a zone
func ZoneText(zone parser.ZoneInfo) string {
	var b strings.Builder
	b.WriteString(zone.Name)
	b.WriteString("\n")
	if len(zone.Images) == 0 {
		b.WriteString("  ")
		b.WriteString(parser.NoLayout)
		b.WriteString("\n")
	}
	for _, img := range zone.Images {
		b.WriteString("  ")
		b.WriteString(img)
		b.WriteString("\n")
	}
	if zone.Notes != "" {
		b.WriteString("  Note: ")
		b.WriteString(zone.Notes)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
