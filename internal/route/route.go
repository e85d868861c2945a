package route

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// FragmentStep is the step type that carries zone references
const FragmentStep = "fragment_step"

// Route is an ordered list of campaign sections
type Route []Section

// Section is one named chunk of the route, usually an act
type Section struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Step is a single route instruction
type Step struct {
	Type  string `yaml:"type"`
	Parts []Part `yaml:"parts"`
}

// Part is one fragment of a step. Plain text parts decode to the zero Part.
type Part struct {
	Type      string `yaml:"type"`
	AreaID    string `yaml:"areaId"`
	DstAreaID string `yaml:"dstAreaId"`
	SrcAreaID string `yaml:"srcAreaId"`
}

// UnmarshalYAML accepts both text and object parts
func (p *Part) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		*p = Part{}
		return nil
	}
	type rawPart Part
	return value.Decode((*rawPart)(p))
}

// Load reads a route file. JSON route exports decode as YAML.
func Load(path string) (Route, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read route: %w", err)
	}
	return Parse(data)
}

// Parse decodes a route document
func Parse(data []byte) (Route, error) {
	var r Route
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parse route: %w", err)
	}
	return r, nil
}

// ExtractZoneIDs returns the unique zone IDs referenced by a section's
// fragment steps in first-seen order
func ExtractZoneIDs(section Section) []string {
	seen := make(map[string]bool)
	var ids []string
	add := func(id string) {
		if id == "" || seen[id] {
			return
		}
		seen[id] = true
		ids = append(ids, id)
	}

	for _, step := range section.Steps {
		if step.Type != FragmentStep {
			continue
		}
		for _, part := range step.Parts {
			add(part.AreaID)
			add(part.DstAreaID)
			add(part.SrcAreaID)
		}
	}
	return ids
}

var actDigitsRe = regexp.MustCompile(`(?i)Act\s+(\d+)`)

// checked in order, the first word contained in the name wins
var actNames = []struct {
	word   string
	number int
}{
	{"one", 1}, {"two", 2}, {"three", 3}, {"four", 4}, {"five", 5},
	{"six", 6}, {"seven", 7}, {"eight", 8}, {"nine", 9}, {"ten", 10},
}

// ActNumberFromSectionName guesses the act a section covers. Sections that
// name no act default to act 1.
func ActNumberFromSectionName(name string) int {
	if m := actDigitsRe.FindStringSubmatch(name); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n
		}
	}

	lower := strings.ToLower(name)
	for _, an := range actNames {
		if strings.Contains(lower, an.word) {
			return an.number
		}
	}
	return 1
}
