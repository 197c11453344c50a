package repositories

import (
	"github.com/shalabia/storefront/app/models"
	"github.com/shalabia/storefront/pkg/kv"
)

// OrderRepository persists the order history.
type OrderRepository struct {
	store kv.Store
}

func NewOrderRepository(store kv.Store) *OrderRepository {
	return &OrderRepository{store: store}
}

// All returns every recorded order, oldest first.
func (r *OrderRepository) All() []models.Order {
	var orders []models.Order
	kv.ReadJSON(r.store, KeyOrders, &orders)
	return orders
}

// Append adds an order to the history.
func (r *OrderRepository) Append(order models.Order) error {
	orders := append(r.All(), order)
	return kv.WriteJSON(r.store, KeyOrders, orders)
}
