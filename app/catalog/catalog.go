// Package catalog holds the boutique's product collection.
//
// The collection is small and curated, so it ships embedded rather than
// living in a database. Seeders may later replace entries via Replace.
package catalog

import (
	"strings"
	"sync"

	"github.com/shalabia/storefront/app/models"
	"github.com/shalabia/storefront/pkg/collection"
)

var (
	mu       sync.RWMutex
	products = []models.Product{
		{ID: 1, Title: "Linen Blend Dress", Price: 2500, Category: "Dresses", Image: "/images/product1.jpg", InStock: true},
		{ID: 2, Title: "Silk Evening Scarf", Price: 2500, Category: "Accessories", Image: "/images/product2.jpg", InStock: true},
		{ID: 3, Title: "Classic Trench Coat", Price: 2500, Category: "Outerwear", Image: "/images/product3.jpg", InStock: true},
	}
)

// All returns every product in display order.
func All() []models.Product {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]models.Product, len(products))
	copy(out, products)
	return out
}

// Find returns the product with the given id.
func Find(id int) (models.Product, bool) {
	mu.RLock()
	defer mu.RUnlock()
	return collection.First(products, func(p models.Product) bool { return p.ID == id })
}

// Categories returns the distinct categories, "All" first, in catalog order.
func Categories() []string {
	cats := collection.Map(All(), func(p models.Product) string { return p.Category })
	return append([]string{"All"}, collection.Unique(cats)...)
}

// ByCategory returns products in the given category; "All" returns everything.
func ByCategory(category string) []models.Product {
	if category == "All" || category == "" {
		return All()
	}
	return collection.Filter(All(), func(p models.Product) bool { return p.Category == category })
}

// Search matches the query against product titles and categories,
// case-insensitively.
func Search(query string) []models.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	return collection.Filter(All(), func(p models.Product) bool {
		return strings.Contains(strings.ToLower(p.Title), q) ||
			strings.Contains(strings.ToLower(p.Category), q)
	})
}

// Replace swaps the whole collection. Used by the database seeder.
func Replace(items []models.Product) {
	mu.Lock()
	defer mu.Unlock()
	products = make([]models.Product, len(items))
	copy(products, items)
}
