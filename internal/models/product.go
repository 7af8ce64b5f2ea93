package models

import "github.com/shopspring/decimal"

type Category string

const (
	CategoryVegetables Category = "Vegetables"
	CategoryFruits     Category = "Fruits"
	CategoryHerbs      Category = "Herbs"
	CategoryGrains     Category = "Grains"
	CategoryDairy      Category = "Dairy"
)

// Categories lists every category in display order.
var Categories = []Category{CategoryVegetables, CategoryFruits, CategoryHerbs, CategoryGrains, CategoryDairy}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}

	return false
}

type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    Category        `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Unit        string          `json:"unit"`
	Description string          `json:"description,omitempty"`
	Farmer      string          `json:"farmer,omitempty"`
	Location    string          `json:"location"`
	Distance    string          `json:"distance,omitempty"`
	Rating      float64         `json:"rating"`
}

// ListingDraft is the farmer's "add product" form.
type ListingDraft struct {
	Name        string           `json:"name" validate:"required,max=200"`
	Category    Category         `json:"category" validate:"omitempty,oneof=Vegetables Fruits Herbs Grains Dairy"`
	Price       *decimal.Decimal `json:"price" validate:"required,gte=0"`
	Quantity    *int             `json:"quantity" validate:"required,gte=0"`
	Unit        string           `json:"unit" validate:"max=20"`
	Description string           `json:"description" validate:"max=2000"`
	Location    string           `json:"location" validate:"max=200"`
}

type CatalogAggregates struct {
	TotalRevenuePotential decimal.Decimal `json:"totalRevenuePotential"`
	TotalListings         int             `json:"totalListings"`
	TotalQuantity         int             `json:"totalQuantity"`
}
