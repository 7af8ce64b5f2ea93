package catalog

import (
	"slices"

	"github.com/aaravmahajanofficial/farm-marketplace/internal/models"
	"github.com/shopspring/decimal"
)

// Snapshot is an immutable, indexed copy of a catalog taken at one point
// in time. Cart and saved-set actions are validated against it.
type Snapshot struct {
	products []models.Product
	index    map[string]int
}

func NewSnapshot(products []models.Product) Snapshot {
	s := Snapshot{
		products: slices.Clone(products),
		index:    make(map[string]int, len(products)),
	}

	for i, p := range s.products {
		if _, seen := s.index[p.ID]; !seen {
			s.index[p.ID] = i
		}
	}

	return s
}

func (s Snapshot) Len() int {
	return len(s.products)
}

// Products returns a copy of the catalog in its original order.
func (s Snapshot) Products() []models.Product {
	return slices.Clone(s.products)
}

func (s Snapshot) Contains(productID string) bool {
	_, ok := s.index[productID]

	return ok
}

func (s Snapshot) Lookup(productID string) (models.Product, bool) {
	i, ok := s.index[productID]
	if !ok {
		return models.Product{}, false
	}

	return s.products[i], true
}

// Saved returns the saved products in catalog order. Ids that are no
// longer listed are skipped.
func (s Snapshot) Saved(saved models.SavedSet) []models.Product {
	products := make([]models.Product, 0, len(saved))

	for i, p := range s.products {
		if s.index[p.ID] == i && saved.Has(p.ID) {
			products = append(products, p)
		}
	}

	return products
}

// Summarize prices the cart against the snapshot in catalog order. Ids
// that are no longer listed are skipped, so ItemCount can be lower than
// Cart.ItemCount.
func (s Snapshot) Summarize(cart models.Cart) models.CartSummary {
	summary := models.CartSummary{
		Lines:    make([]models.CartLine, 0, len(cart)),
		Subtotal: decimal.Zero,
	}

	for i, p := range s.products {
		quantity, ok := cart[p.ID]
		if !ok || s.index[p.ID] != i {
			continue
		}

		lineTotal := p.Price.Mul(decimal.NewFromInt(int64(quantity)))

		summary.Lines = append(summary.Lines, models.CartLine{
			Product:   p,
			Quantity:  quantity,
			LineTotal: lineTotal,
		})
		summary.ItemCount += quantity
		summary.Subtotal = summary.Subtotal.Add(lineTotal)
	}

	return summary
}
