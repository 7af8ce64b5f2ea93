package models

import (
	"encoding/json"
	"maps"
	"slices"

	"github.com/shopspring/decimal"
)

// Cart maps a product id to the number of times it was added.
type Cart map[string]int

func (c Cart) ItemCount() int {
	var count int

	for _, quantity := range c {
		count += quantity
	}

	return count
}

// SavedSet is the set of product ids a buyer marked as saved.
type SavedSet map[string]struct{}

func (s SavedSet) Has(productID string) bool {
	_, ok := s[productID]

	return ok
}

// IDs returns the members in sorted order.
func (s SavedSet) IDs() []string {
	return slices.Sorted(maps.Keys(s))
}

func (s SavedSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.IDs())
}

func (s *SavedSet) UnmarshalJSON(data []byte) error {
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}

	set := make(SavedSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	*s = set

	return nil
}

type AddToCartRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

type CartLine struct {
	Product   Product         `json:"product"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

type CartSummary struct {
	Lines     []CartLine      `json:"lines"`
	ItemCount int             `json:"itemCount"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}
