package models

import "sort"

// Product is a catalog entry from the external product API. The catalog is
// read-only and consumed for display; product ids are the numeric ids the
// catalog issues.
type Product struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Brand       string   `json:"brand,omitempty"`
	Category    string   `json:"category,omitempty"`
	Thumbnail   string   `json:"thumbnail,omitempty"`
	Images      []string `json:"images,omitempty"`
	Rating      float64  `json:"rating,omitempty"`
	Stock       int      `json:"stock,omitempty"`
}

// ProductQuery carries the listing filters taken from the request query
// string.
type ProductQuery struct {
	Search   string
	Category string
	MinPrice *float64
	MaxPrice *float64
	Sort     string // "price-asc" or "price-desc"
}

// Apply filters and sorts products according to the query. Price filtering
// and sorting happen here because the upstream catalog only supports search
// and category selection.
func (q *ProductQuery) Apply(products []Product) []Product {
	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if q.MinPrice != nil && p.Price < *q.MinPrice {
			continue
		}
		if q.MaxPrice != nil && p.Price > *q.MaxPrice {
			continue
		}
		filtered = append(filtered, p)
	}

	switch q.Sort {
	case "price-asc":
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price < filtered[j].Price })
	case "price-desc":
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price > filtered[j].Price })
	}

	return filtered
}
