package models

import "github.com/shopspring/decimal"

type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusInTransit  OrderStatus = "In Transit"
	OrderStatusDelivered  OrderStatus = "Delivered"
)

type Order struct {
	ID       string          `json:"id"`
	Product  string          `json:"product"`
	Quantity int             `json:"quantity"`
	Total    decimal.Decimal `json:"total"`
	Status   OrderStatus     `json:"status"`
	Date     string          `json:"date"`
}

// PricePoint is the average price per kg of tracked products for a month.
type PricePoint struct {
	Month  string                     `json:"month"`
	Prices map[string]decimal.Decimal `json:"prices"`
}

// DemandPoint is the weekly volume demanded per category.
type DemandPoint struct {
	Week    string           `json:"week"`
	Volumes map[Category]int `json:"volumes"`
}

type CategoryShare struct {
	Category Category `json:"category"`
	Percent  int      `json:"percent"`
}

type TopProduct struct {
	Name   string  `json:"name"`
	Sales  int     `json:"sales"`
	Change float64 `json:"change"`
	Trend  string  `json:"trend"`
}

type MarketTrends struct {
	Prices      []PricePoint    `json:"prices"`
	Demand      []DemandPoint   `json:"demand"`
	Categories  []CategoryShare `json:"categories"`
	TopProducts []TopProduct    `json:"topProducts"`
}
