package services

import (
	"errors"

	"github.com/shalabia/storefront/app/catalog"
	"github.com/shalabia/storefront/app/models"
	"github.com/shalabia/storefront/app/repositories"
	"github.com/shalabia/storefront/pkg/metrics"
)

var (
	ErrOutOfStock     = errors.New("Sorry, this item is currently out of stock.")
	ErrUnknownProduct = errors.New("Product not found")
)

// CartService manages per-visitor carts. A cart is a list of pieces, one
// element per addition; the same product can be added repeatedly.
type CartService struct {
	carts *repositories.CartRepository
}

func NewCartService(carts *repositories.CartRepository) *CartService {
	return &CartService{carts: carts}
}

// Items returns the cart contents for token.
func (s *CartService) Items(token string) []models.Product {
	return s.carts.Items(token)
}

// Total sums the cart in EGP.
func (s *CartService) Total(token string) int {
	total := 0
	for _, item := range s.carts.Items(token) {
		total += item.Price
	}
	return total
}

// Add puts one piece of the product into the cart. Out-of-stock products
// are rejected and the cart is left untouched.
func (s *CartService) Add(token string, productID int) ([]models.Product, error) {
	product, ok := catalog.Find(productID)
	if !ok {
		return nil, ErrUnknownProduct
	}
	if !product.InStock {
		metrics.CartAdds.WithLabelValues("out_of_stock").Inc()
		return nil, ErrOutOfStock
	}

	items := append(s.carts.Items(token), product)
	if err := s.carts.Save(token, items); err != nil {
		return nil, err
	}
	metrics.CartAdds.WithLabelValues("added").Inc()
	return items, nil
}

// Remove deletes a single occurrence of the product from the cart; other
// pieces of the same product stay.
func (s *CartService) Remove(token string, productID int) ([]models.Product, error) {
	items := s.carts.Items(token)
	for i, item := range items {
		if item.ID == productID {
			items = append(items[:i], items[i+1:]...)
			break
		}
	}
	if err := s.carts.Save(token, items); err != nil {
		return nil, err
	}
	return items, nil
}

// Clear empties the cart.
func (s *CartService) Clear(token string) error {
	return s.carts.Clear(token)
}
