// Package filter turns the catalog into the displayed list: it filters and
// sorts places for a FilterState and mirrors that state to a query string.
package filter

import (
	"cafe/internal/models"
)

// All is the sentinel that disables the region, brand and radius filters.
const All = "all"

type SortOrder string

const (
	SortPopularity SortOrder = "popularity"
	SortNearest    SortOrder = "nearest"
	SortRecent     SortOrder = "recent"
	SortName       SortOrder = "name"
)

// Valid reports whether s is one of the four known orders.
func (s SortOrder) Valid() bool {
	switch s {
	case SortPopularity, SortNearest, SortRecent, SortName:
		return true
	}
	return false
}

// State is the full set of user-chosen list parameters.
type State struct {
	Query  string
	Region string
	// Brand is All, or a models.Brand value.
	Brand string
	// Radius is in metres; zero means All.
	Radius        float64
	Sort          SortOrder
	FavoritesOnly bool
}

// Default is the state of a fresh page.
func Default() State {
	return State{
		Region: All,
		Brand:  All,
		Sort:   SortPopularity,
	}
}

func validBrand(b string) bool {
	return b == All || b == string(models.BrandChain) || b == string(models.BrandIndependent)
}
