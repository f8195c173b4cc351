// ABOUTME: Groups properties into map markers by rounded coordinate
// ABOUTME: Six-decimal keying merges points that differ only beyond ~0.11m
package geo

import (
	"strconv"

	"imovia/models"
)

// PropertyGroup is the transient view entity behind one map marker: every
// property whose coordinate matches to six decimals. Rebuilt on every list
// change, never mutated in place.
type PropertyGroup struct {
	Key        string
	Lat        float64
	Lng        float64
	Properties []models.PropertyListItem
}

// CoordinateKey formats a coordinate to the grouping precision.
func CoordinateKey(lat, lng float64) string {
	return strconv.FormatFloat(lat, 'f', 6, 64) + "," + strconv.FormatFloat(lng, 'f', 6, 64)
}

// GroupProperties partitions the list into marker groups. Group order is the
// first-seen order of each key; within a group the input order is preserved.
func GroupProperties(props []models.PropertyListItem) []PropertyGroup {
	index := make(map[string]int, len(props))
	groups := make([]PropertyGroup, 0, len(props))

	for _, p := range props {
		key := CoordinateKey(p.Lat, p.Lng)
		if i, ok := index[key]; ok {
			groups[i].Properties = append(groups[i].Properties, p)
			continue
		}
		index[key] = len(groups)
		groups = append(groups, PropertyGroup{
			Key:        key,
			Lat:        p.Lat,
			Lng:        p.Lng,
			Properties: []models.PropertyListItem{p},
		})
	}
	return groups
}
