package parser

import (
	"github.com/gubarz/actguide/internal/zones"
)

// LookupByID resolves a route zone ID through the built-in name table and
// returns its layout. With act > 0 only that act is searched, otherwise the
// first act (by number) holding the zone wins.
func LookupByID(areaID string, act int, data LayoutData) (ZoneInfo, bool) {
	return LookupIn(zones.Default(), areaID, act, data)
}

// LookupIn is LookupByID against a specific name table
func LookupIn(table *zones.Table, areaID string, act int, data LayoutData) (ZoneInfo, bool) {
	name, ok := table.Name(areaID)
	if !ok {
		return ZoneInfo{}, false
	}
	key := zones.Key(name)

	if act > 0 {
		actData, ok := data.Act(act)
		if !ok {
			return ZoneInfo{}, false
		}
		zone, ok := actData.Zones[key]
		if !ok {
			return ZoneInfo{}, false
		}
		return zone.clone(), true
	}

	for _, actData := range data.Acts() {
		if zone, ok := actData.Zones[key]; ok {
			return zone.clone(), true
		}
	}
	return ZoneInfo{}, false
}

// MissingZone is a name table entry with no parsed layout
type MissingZone struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Act  int    `json:"act" yaml:"act"`
}

// MissingZones lists table entries whose act was parsed but holds no zone
// under the entry's normalized name. Acts absent from data are not reported.
func MissingZones(table *zones.Table, data LayoutData) []MissingZone {
	var missing []MissingZone
	for _, id := range table.IDs() {
		act := zones.ActOf(id)
		actData, ok := data.Act(act)
		if !ok {
			continue
		}
		name, _ := table.Name(id)
		if _, ok := actData.Zones[zones.Key(name)]; !ok {
			missing = append(missing, MissingZone{ID: id, Name: name, Act: act})
		}
	}
	return missing
}
