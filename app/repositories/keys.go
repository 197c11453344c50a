// Package repositories wraps the key-value store with typed accessors for
// each durable record the storefront keeps.
package repositories

// Store keys. The shalabia_ prefix matches the records of the original
// storefront, so an existing store migrates without a rename pass.
const (
	KeySession       = "shalabia_user"
	KeyUsers         = "shalabia_users"
	KeyWishlist      = "shalabia_wishlist"
	KeyOrders        = "shalabia_orders"
	KeyNotifications = "shalabia_notifications"

	// Carts are per-visitor: the full key is cartKeyPrefix + token.
	cartKeyPrefix = "shalabia_cart:"
)
