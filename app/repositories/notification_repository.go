package repositories

import (
	"github.com/shalabia/storefront/app/models"
	"github.com/shalabia/storefront/pkg/kv"
	"github.com/shalabia/storefront/pkg/metrics"
)

// NotificationRepository persists the admin activity log.
type NotificationRepository struct {
	store kv.Store
}

func NewNotificationRepository(store kv.Store) *NotificationRepository {
	return &NotificationRepository{store: store}
}

// All returns the log oldest-first (storage order).
func (r *NotificationRepository) All() []models.Notification {
	var ns []models.Notification
	kv.ReadJSON(r.store, KeyNotifications, &ns)
	return ns
}

// Append adds an entry and enforces the length cap: once the log exceeds
// models.NotificationCap entries, the oldest is dropped.
func (r *NotificationRepository) Append(n models.Notification) error {
	ns := append(r.All(), n)
	for len(ns) > models.NotificationCap {
		ns = ns[1:]
		metrics.NotificationsEvicted.Inc()
	}
	return kv.WriteJSON(r.store, KeyNotifications, ns)
}

// Clear wipes the log.
func (r *NotificationRepository) Clear() error {
	return r.store.Remove(KeyNotifications)
}
