package domain

import "strings"

// Product is one sellable catalog entry. The catalog is loaded once at
// startup and never mutated afterwards.
type Product struct {
	ID               string
	DisplayName      string
	Description      string
	Price            int64 // minor currency units
	Currency         string
	StorageKey       string
	DownloadFileName string
}

// Catalog is an immutable product table keyed by product ID.
type Catalog struct {
	products map[string]Product
}

func NewCatalog(products []Product) (Catalog, error) {
	table := make(map[string]Product, len(products))
	for _, p := range products {
		id := strings.TrimSpace(p.ID)
		if id == "" {
			return Catalog{}, ErrInvalidInput
		}
		if _, ok := table[id]; ok {
			// duplicate IDs would make payment-to-product correlation ambiguous
			return Catalog{}, ErrInvalidInput
		}
		p.ID = id
		table[id] = p
	}
	return Catalog{products: table}, nil
}

func (c Catalog) Get(id string) (Product, bool) {
	p, ok := c.products[strings.TrimSpace(id)]
	return p, ok
}

func (c Catalog) Len() int { return len(c.products) }
