package services

import (
	"github.com/shalabia/storefront/app/catalog"
	"github.com/shalabia/storefront/app/models"
	"github.com/shalabia/storefront/app/repositories"
	"github.com/shalabia/storefront/pkg/collection"
	"github.com/shalabia/storefront/pkg/event"
	"github.com/shalabia/storefront/pkg/metrics"
)

// WishlistService manages the saved-for-later set. Membership is by
// product ID; toggling twice returns the wishlist to its prior state.
type WishlistService struct {
	repo *repositories.WishlistRepository
}

func NewWishlistService(repo *repositories.WishlistRepository) *WishlistService {
	return &WishlistService{repo: repo}
}

// Items resolves the wishlisted IDs against the catalog. IDs whose product
// no longer exists are skipped.
func (s *WishlistService) Items() []models.Product {
	var items []models.Product
	for _, id := range s.repo.IDs() {
		if p, ok := catalog.Find(id); ok {
			items = append(items, p)
		}
	}
	return items
}

// Toggle flips membership for productID and reports whether it is now on
// the wishlist.
func (s *WishlistService) Toggle(productID int) (bool, error) {
	if _, ok := catalog.Find(productID); !ok {
		return false, ErrUnknownProduct
	}

	ids := s.repo.IDs()
	added := true
	if collection.Contains(ids, func(v int) bool { return v == productID }) {
		ids = collection.Reject(ids, func(v int) bool { return v == productID })
		added = false
	} else {
		ids = append(ids, productID)
	}

	if err := s.repo.Save(ids); err != nil {
		return false, err
	}

	direction := "removed"
	if added {
		direction = "added"
	}
	metrics.WishlistToggles.WithLabelValues(direction).Inc()
	event.FireAsync(event.WishlistToggled, map[string]interface{}{
		"product_id": productID,
		"added":      added,
	})
	return added, nil
}

// Remove drops productID from the wishlist. Removing an absent ID is a no-op.
func (s *WishlistService) Remove(productID int) error {
	ids := collection.Reject(s.repo.IDs(), func(v int) bool { return v == productID })
	if err := s.repo.Save(ids); err != nil {
		return err
	}
	metrics.WishlistToggles.WithLabelValues("removed").Inc()
	return nil
}
