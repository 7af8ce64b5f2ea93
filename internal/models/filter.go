package models

// FilterAll matches every value of a criterion.
const FilterAll = "all"

type PriceBand string

const (
	PriceBandAll    PriceBand = FilterAll
	PriceBandLow    PriceBand = "low"
	PriceBandMedium PriceBand = "medium"
	PriceBandHigh   PriceBand = "high"
)

var PriceBands = []PriceBand{PriceBandAll, PriceBandLow, PriceBandMedium, PriceBandHigh}

func (b PriceBand) Valid() bool {
	switch b {
	case PriceBandAll, PriceBandLow, PriceBandMedium, PriceBandHigh:
		return true
	}

	return false
}

type FilterCriteria struct {
	SearchTerm string    `json:"searchTerm"`
	Category   string    `json:"category"`
	PriceBand  PriceBand `json:"priceBand"`
	Location   string    `json:"location"`
}

// Normalize replaces absent or unknown values with "all".
func (c FilterCriteria) Normalize() FilterCriteria {
	if c.Category == "" {
		c.Category = FilterAll
	}

	if !c.PriceBand.Valid() {
		c.PriceBand = PriceBandAll
	}

	if c.Location == "" {
		c.Location = FilterAll
	}

	return c
}

// Active reports whether any criterion narrows the catalog.
func (c FilterCriteria) Active() bool {
	n := c.Normalize()

	return n.SearchTerm != "" || n.Category != FilterAll || n.PriceBand != PriceBandAll || n.Location != FilterAll
}

type ProductPage struct {
	Items          []Product      `json:"items"`
	Total          int            `json:"total"`
	Matched        int            `json:"matched"`
	FiltersApplied bool           `json:"filtersApplied"`
	Criteria       FilterCriteria `json:"criteria"`
}

type FilterOptions struct {
	Categories []Category  `json:"categories"`
	Locations  []string    `json:"locations"`
	PriceBands []PriceBand `json:"priceBands"`
}
