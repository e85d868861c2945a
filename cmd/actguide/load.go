package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gubarz/actguide/internal/config"
	"github.com/gubarz/actguide/internal/guide"
	"github.com/gubarz/actguide/internal/parser"
	"github.com/gubarz/actguide/internal/route"
	"github.com/gubarz/actguide/internal/zones"
)

// loadLayout parses a guide directory or a single guide file
func loadLayout(path string) (parser.LayoutData, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("error resolving path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return nil, fmt.Errorf("path error: %w", err)
	}

	p := parser.NewParser(parser.Options{ImageBase: config.GetImageBase()})

	var data parser.LayoutData
	if info.IsDir() {
		data, err = p.ParseDirectory(absPath)
	} else {
		data, err = p.ParseFile(absPath)
	}
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	slog.Debug("layout loaded", "path", absPath, "acts", len(data), "zones", data.ZoneCount())
	return data, nil
}

// guideLoader reads act guides next to the parsed layout
func guideLoader(path string) *guide.Loader {
	dir := path
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		dir = filepath.Dir(path)
	}
	return guide.NewLoader(os.DirFS(dir))
}

// zoneTable returns the built-in zone names with any configured overrides
func zoneTable() (*zones.Table, error) {
	file := config.GetZoneNames()
	if file == "" {
		return zones.Default(), nil
	}
	return zones.LoadFile(file)
}

// ============================================================================
// Route Report
// ============================================================================

type routeZone struct {
	ID     string `json:"id" yaml:"id"`
	Name   string `json:"name,omitempty" yaml:"name,omitempty"`
	Found  bool   `json:"found" yaml:"found"`
	Images int    `json:"images" yaml:"images"`
}

type routeSection struct {
	Name  string      `json:"name" yaml:"name"`
	Act   int         `json:"act" yaml:"act"`
	Guide bool        `json:"guide" yaml:"guide"`
	Zones []routeZone `json:"zones" yaml:"zones"`
}

// routeReport resolves the zones of each route section against its act
func routeReport(r route.Route, data parser.LayoutData, table *zones.Table, guides *guide.Loader) []routeSection {
	report := make([]routeSection, 0, len(r))
	for _, section := range r {
		act := route.ActNumberFromSectionName(section.Name)
		rs := routeSection{
			Name:  section.Name,
			Act:   act,
			Guide: guides.Available(act, section.Name),
			Zones: []routeZone{},
		}

		for _, id := range route.ExtractZoneIDs(section) {
			rz := routeZone{ID: id}
			rz.Name, _ = table.Name(id)
			if zone, ok := parser.LookupIn(table, id, act, data); ok {
				rz.Found = true
				rz.Images = len(zone.Images)
			}
			rs.Zones = append(rs.Zones, rz)
		}
		report = append(report, rs)
	}
	return report
}

func routeText(report []routeSection) string {
	var b strings.Builder
	for _, rs := range report {
		guideState := "no guide"
		if rs.Guide {
			guideState = "guide"
		}
		fmt.Fprintf(&b, "%s (act %d, %s)\n", rs.Name, rs.Act, guideState)
		for _, z := range rs.Zones {
			name := z.Name
			if name == "" {
				name = "unknown zone"
			}
			if z.Found {
				fmt.Fprintf(&b, "  %-10s %-32s %d images\n", z.ID, name, z.Images)
			} else {
				fmt.Fprintf(&b, "  %-10s %-32s no layout\n", z.ID, name)
			}
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func checkText(missing []parser.MissingZone) string {
	if len(missing) == 0 {
		return "All known zones have a layout."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d zones without layout:\n", len(missing))
	for _, m := range missing {
		fmt.Fprintf(&b, "  act %-2d %-10s %s\n", m.Act, m.ID, m.Name)
	}
	return strings.TrimRight(b.String(), "\n")
}
