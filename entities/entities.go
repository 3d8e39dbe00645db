package entities

import (
	"math"
	"time"
)

type Product struct {
	Id          string   `json:"id"`
	Name        string   `json:"name"`
	Brand       string   `json:"brand"`
	Price       float64  `json:"price"`
	ServiceFee  float64  `json:"serviceFee"`
	Image       string   `json:"image"`
	Category    string   `json:"category"`
	Colors      []string `json:"colors"`
	Sizes       []string `json:"sizes"`
	IsExclusive bool     `json:"isExclusive,omitempty"`
}

func (p Product) HasColor(color string) bool {
	for _, c := range p.Colors {
		if c == color {
			return true
		}
	}
	return false
}

func (p Product) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// TotalPrice is the charged per-unit price: base price plus service fee.
func (p Product) TotalPrice() float64 {
	return p.Price + p.ServiceFee
}

// CartItem is a product bound to a chosen color/size variant and a quantity.
type CartItem struct {
	Product
	Quantity      int    `json:"quantity"`
	SelectedColor string `json:"selectedColor"`
	SelectedSize  string `json:"selectedSize"`
}

func (ci CartItem) LineTotal() float64 {
	return ci.TotalPrice() * float64(ci.Quantity)
}

func (ci CartItem) Clone() CartItem {
	out := ci
	out.Colors = append([]string(nil), ci.Colors...)
	out.Sizes = append([]string(nil), ci.Sizes...)
	return out
}

func CloneCartItems(items []CartItem) []CartItem {
	out := make([]CartItem, len(items))
	for i, item := range items {
		out[i] = item.Clone()
	}
	return out
}

type PriceRange struct {
	Min float64
	Max float64
}

// SearchFilters restricts the catalog on several dimensions at once.
// An empty set means "no restriction on this dimension".
type SearchFilters struct {
	Brands     []string
	Categories []string
	Colors     []string
	Sizes      []string
	PriceRange PriceRange
}

func DefaultFilters() SearchFilters {
	return SearchFilters{
		PriceRange: PriceRange{Min: 0, Max: math.MaxFloat64},
	}
}

// CustomerInfo is the delivery form captured at checkout. Notes is the only
// optional field.
type CustomerInfo struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
	City      string `json:"city" validate:"required"`
	Address   string `json:"address" validate:"required"`
	Notes     string `json:"notes"`
}

// Order is an immutable snapshot of cart contents plus delivery data taken at
// checkout. Items is an independent copy; later cart mutations or catalog
// price changes never alter it.
type Order struct {
	Id           string       `json:"id"`
	Items        []CartItem   `json:"items"`
	Total        float64      `json:"total"`
	CustomerInfo CustomerInfo `json:"customerInfo"`
	Status       OrderStatus  `json:"status"`
	CreatedAt    time.Time    `json:"createdAt"`
}

func (o Order) Clone() Order {
	out := o
	out.Items = CloneCartItems(o.Items)
	return out
}
