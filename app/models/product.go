package models

// Product is a catalog item. Products double as cart and wishlist line
// items: the storefront carries no quantities, one line per piece.
type Product struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Price    int    `json:"price"` // EGP
	Category string `json:"category"`
	Image    string `json:"image"`
	InStock  bool   `json:"inStock"`
}
