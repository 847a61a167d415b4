package catalog

import (
	"sort"
	"strings"
)

// maxSearchResults is the fixed page size for search; not configurable.
const maxSearchResults = 3

// Filter holds the optional search criteria. Zero-value fields are ignored.
// All present fields must match (AND-combined); matching is exact and
// case-insensitive.
type Filter struct {
	Cuisine      string
	LocationArea string
	PriceRange   string
	Ambiance     string
	PartySize    int
	Date         string
	Time         string
}

// wantsAvailability reports whether the filter carries everything needed to
// annotate results with an availability check.
func (f Filter) wantsAvailability() bool {
	return f.Date != "" && f.Time != "" && f.PartySize > 0
}

// AvailabilityChecker answers whether a party fits a slot. The ledger
// provides the real implementation; tests stub it.
type AvailabilityChecker func(restaurantID, date, timeOfDay string, partySize int) bool

// SearchResult is a matching restaurant, optionally annotated with an
// availability flag for the requested slot.
type SearchResult struct {
	Restaurant
	AvailabilityChecked bool
	Available           bool
}

// Search filters the catalog and returns at most three results. When the
// filter carries date, time, and party size, each match is annotated via
// check and annotated results are stably sorted available-first, preserving
// catalog order among ties.
func (c *Catalog) Search(f Filter, check AvailabilityChecker) []SearchResult {
	var results []SearchResult
	for _, r := range c.restaurants {
		if !matches(r, f) {
			continue
		}
		res := SearchResult{Restaurant: r}
		if f.wantsAvailability() && check != nil {
			res.AvailabilityChecked = true
			res.Available = check(r.ID, f.Date, f.Time, f.PartySize)
		}
		results = append(results, res)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Available && !results[j].Available
	})

	if len(results) > maxSearchResults {
		results = results[:maxSearchResults]
	}
	return results
}

func matches(r Restaurant, f Filter) bool {
	if f.Cuisine != "" && !containsFold(r.Cuisine, f.Cuisine) {
		return false
	}
	if f.LocationArea != "" && !strings.EqualFold(r.LocationArea, f.LocationArea) {
		return false
	}
	if f.PriceRange != "" && r.PriceRange != f.PriceRange {
		return false
	}
	if f.Ambiance != "" && !containsFold(r.Ambiance, f.Ambiance) {
		return false
	}
	return true
}

func containsFold(tags []string, want string) bool {
	for _, t := range tags {
		if strings.EqualFold(t, want) {
			return true
		}
	}
	return false
}
