package repositories

import (
	"github.com/shalabia/storefront/pkg/collection"
	"github.com/shalabia/storefront/pkg/kv"
)

// WishlistRepository persists the saved-for-later product IDs.
type WishlistRepository struct {
	store kv.Store
}

func NewWishlistRepository(store kv.Store) *WishlistRepository {
	return &WishlistRepository{store: store}
}

// IDs returns the wishlisted product IDs in the order they were added.
// Duplicates from older records are collapsed on read.
func (r *WishlistRepository) IDs() []int {
	var ids []int
	kv.ReadJSON(r.store, KeyWishlist, &ids)
	return collection.Unique(ids)
}

// Contains reports whether id is on the wishlist.
func (r *WishlistRepository) Contains(id int) bool {
	return collection.Contains(r.IDs(), func(v int) bool { return v == id })
}

// Save replaces the wishlist. A nil set is stored as the empty list so
// the record always decodes to an array.
func (r *WishlistRepository) Save(ids []int) error {
	if ids == nil {
		ids = []int{}
	}
	return kv.WriteJSON(r.store, KeyWishlist, ids)
}
