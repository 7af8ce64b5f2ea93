package catalog

import (
	"slices"
	"strings"

	"github.com/aaravmahajanofficial/farm-marketplace/internal/models"
	"github.com/microcosm-cc/bluemonday"
)

const (
	DefaultUnit            = "kg"
	DefaultListingLocation = "My Farm, Nigeria"
	DefaultListingCategory = models.CategoryVegetables
)

// listings are rendered back to buyers, so markup is stripped from every
// free-text field.
var textPolicy = bluemonday.StrictPolicy()

func sanitize(s string) string {
	return strings.TrimSpace(textPolicy.Sanitize(s))
}

// NewListing builds a product from a validated draft. The draft's Price
// and Quantity must be set.
func NewListing(id string, draft models.ListingDraft, farmer string) models.Product {
	unit := sanitize(draft.Unit)
	if unit == "" {
		unit = DefaultUnit
	}

	location := sanitize(draft.Location)
	if location == "" {
		location = DefaultListingLocation
	}

	category := draft.Category
	if !category.Valid() {
		category = DefaultListingCategory
	}

	return models.Product{
		ID:          id,
		Name:        sanitize(draft.Name),
		Category:    category,
		Price:       *draft.Price,
		Quantity:    *draft.Quantity,
		Unit:        unit,
		Description: sanitize(draft.Description),
		Farmer:      sanitize(farmer),
		Location:    location,
	}
}

// RemoveListing returns products without the listing id, and whether it
// was present. The input slice is not modified.
func RemoveListing(products []models.Product, id string) ([]models.Product, bool) {
	if !slices.ContainsFunc(products, func(p models.Product) bool { return p.ID == id }) {
		return products, false
	}

	return slices.DeleteFunc(slices.Clone(products), func(p models.Product) bool { return p.ID == id }), true
}
