// Package catalog derives read-only views of a product list: filtered
// results, aggregates and lookups. Nothing in it mutates its input or
// returns an error.
package catalog

import (
	"slices"
	"strings"

	"github.com/aaravmahajanofficial/farm-marketplace/internal/models"
	"github.com/shopspring/decimal"
)

var (
	// prices below this are in the low band
	mediumBandFloor = decimal.NewFromInt(60)
	// prices at or above this are in the high band
	highBandFloor = decimal.NewFromInt(100)
)

// FilterProducts returns the products matching every criterion, in
// catalog order. The result is never nil.
func FilterProducts(products []models.Product, criteria models.FilterCriteria) []models.Product {
	c := criteria.Normalize()
	term := strings.ToLower(c.SearchTerm)

	matched := make([]models.Product, 0, len(products))

	for _, p := range products {
		if matchesSearch(p, term) &&
			matchesExact(string(p.Category), c.Category) &&
			MatchesPriceBand(p.Price, c.PriceBand) &&
			matchesExact(p.Location, c.Location) {
			matched = append(matched, p)
		}
	}

	return matched
}

func matchesSearch(p models.Product, term string) bool {
	if term == "" {
		return true
	}

	return strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Farmer), term)
}

func matchesExact(value, want string) bool {
	return want == models.FilterAll || value == want
}

// MatchesPriceBand reports whether price falls in band. Unknown bands
// match everything.
func MatchesPriceBand(price decimal.Decimal, band models.PriceBand) bool {
	switch band {
	case models.PriceBandLow:
		return price.LessThan(mediumBandFloor)
	case models.PriceBandMedium:
		return price.GreaterThanOrEqual(mediumBandFloor) && price.LessThan(highBandFloor)
	case models.PriceBandHigh:
		return price.GreaterThanOrEqual(highBandFloor)
	default:
		return true
	}
}

// ComputeAggregates sums revenue potential (price × quantity) and
// inventory without rounding.
func ComputeAggregates(products []models.Product) models.CatalogAggregates {
	aggregates := models.CatalogAggregates{
		TotalRevenuePotential: decimal.Zero,
		TotalListings:         len(products),
	}

	for _, p := range products {
		aggregates.TotalRevenuePotential = aggregates.TotalRevenuePotential.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Quantity))))
		aggregates.TotalQuantity += p.Quantity
	}

	return aggregates
}

// Options lists the categories and locations present in products, for
// building filter controls.
func Options(products []models.Product) models.FilterOptions {
	present := make(map[models.Category]bool)
	locations := make([]string, 0)

	for _, p := range products {
		present[p.Category] = true

		if p.Location != "" && !slices.Contains(locations, p.Location) {
			locations = append(locations, p.Location)
		}
	}

	categories := make([]models.Category, 0, len(models.Categories))
	for _, category := range models.Categories {
		if present[category] {
			categories = append(categories, category)
		}
	}

	slices.Sort(locations)

	return models.FilterOptions{
		Categories: categories,
		Locations:  locations,
		PriceBands: slices.Clone(models.PriceBands),
	}
}
