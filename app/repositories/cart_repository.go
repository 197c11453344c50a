package repositories

import (
	"github.com/shalabia/storefront/app/models"
	"github.com/shalabia/storefront/pkg/kv"
)

// CartRepository persists one cart per visitor token. The token is an
// opaque value minted by the cart controller and echoed back by the client
// in the X-Cart-Token header.
type CartRepository struct {
	store kv.Store
}

func NewCartRepository(store kv.Store) *CartRepository {
	return &CartRepository{store: store}
}

func cartKey(token string) string { return cartKeyPrefix + token }

// Items returns the cart contents for token. One element per piece; the
// same product may appear more than once.
func (r *CartRepository) Items(token string) []models.Product {
	var items []models.Product
	kv.ReadJSON(r.store, cartKey(token), &items)
	return items
}

// Save replaces the cart contents for token.
func (r *CartRepository) Save(token string, items []models.Product) error {
	return kv.WriteJSON(r.store, cartKey(token), items)
}

// Clear empties the cart for token.
func (r *CartRepository) Clear(token string) error {
	return r.store.Remove(cartKey(token))
}
