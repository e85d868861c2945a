package zones

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Key normalizes a zone display name into the key the layout parser stores
// zones under: lowercased, whitespace runs collapsed to a single underscore.
func Key(name string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(name), "_")
}

// Table is an immutable route-ID to zone-name mapping
type Table struct {
	names map[string]string
}

var defaultTable = &Table{names: builtin}

// Default returns the built-in table
func Default() *Table {
	return defaultTable
}

// Name returns the display name for a route zone ID
func (t *Table) Name(id string) (string, bool) {
	name, ok := t.names[id]
	return name, ok
}

// Len returns the number of zone IDs in the table
func (t *Table) Len() int {
	return len(t.names)
}

// IDs returns every zone ID in lexical order
func (t *Table) IDs() []string {
	ids := make([]string, 0, len(t.names))
	for id := range t.names {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// LoadFile reads a YAML (or JSON) document of `id: name` pairs and layers it
// over the built-in table. An empty name removes the ID.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read zone names: %w", err)
	}
	return Parse(data)
}

// Parse layers the `id: name` pairs in data over the built-in table
func Parse(data []byte) (*Table, error) {
	var overrides map[string]string
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("parse zone names: %w", err)
	}

	names := make(map[string]string, len(builtin)+len(overrides))
	for id, name := range builtin {
		names[id] = name
	}
	for id, name := range overrides {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if strings.TrimSpace(name) == "" {
			delete(names, id)
			continue
		}
		names[id] = name
	}
	return &Table{names: names}, nil
}

// ActOf returns the act number encoded in the second segment of a route zone
// ID ("1_3_9" is act 3), or 0 when the ID does not carry one.
func ActOf(id string) int {
	parts := strings.Split(id, "_")
	if len(parts) < 2 {
		return 0
	}
	n, err := strconv.Atoi(parts[1])
	if err != nil || n < 1 {
		return 0
	}
	return n
}
