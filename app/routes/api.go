package routes

import (
	"net/http"

	"github.com/shalabia/storefront/app/controllers"
	"github.com/shalabia/storefront/app/graphql"
	"github.com/shalabia/storefront/app/models"
	"github.com/shalabia/storefront/app/repositories"
	"github.com/shalabia/storefront/app/services"
	"github.com/shalabia/storefront/pkg/kv"
	"github.com/shalabia/storefront/pkg/logger"
	"github.com/shalabia/storefront/pkg/metrics"
	"github.com/shalabia/storefront/pkg/middleware"
	"github.com/shalabia/storefront/pkg/rbac"
	"github.com/shalabia/storefront/pkg/response"
	"github.com/shalabia/storefront/pkg/router"
	"github.com/shalabia/storefront/pkg/ws"
)

// RegisterAPI wires every storefront endpoint onto the router. Repositories
// and services are built here from the shared key-value store so that the
// HTTP surface, the CLI, and the tests all agree on a single wiring.
func RegisterAPI(r *router.Router, store kv.Store, hub *ws.Hub) {
	users := repositories.NewUserRepository(store)
	sessions := repositories.NewSessionRepository(store)
	wishlists := repositories.NewWishlistRepository(store)
	carts := repositories.NewCartRepository(store)
	orders := repositories.NewOrderRepository(store)
	activity := repositories.NewNotificationRepository(store)

	notificationService := services.NewNotificationService(activity)
	identityService := services.NewIdentityService(users, sessions, notificationService)
	cartService := services.NewCartService(carts)
	wishlistService := services.NewWishlistService(wishlists)
	checkoutService := services.NewCheckoutService(cartService, orders, notificationService)

	authController := controllers.NewAuthController(identityService)
	catalogController := controllers.NewCatalogController()
	cartController := controllers.NewCartController(cartService)
	wishlistController := controllers.NewWishlistController(wishlistService)
	checkoutController := controllers.NewCheckoutController(checkoutService)
	notificationController := controllers.NewNotificationController(notificationService)

	api := r.Group("/api")

	api.Post("/auth/signup", "auth.signup", authController.Signup)
	api.Post("/auth/signin", "auth.signin", authController.Signin)
	api.Post("/auth/signout", "auth.signout", authController.Signout)
	api.Get("/auth/me", "auth.me", authController.Me, middleware.Auth)

	api.Get("/products", "catalog.index", catalogController.Index)
	api.Get("/products/{id}", "catalog.show", catalogController.Show)
	api.Get("/categories", "catalog.categories", catalogController.Categories)
	api.Get("/meta", "catalog.meta", catalogController.Meta)

	api.Get("/cart", "cart.index", cartController.Index)
	api.Post("/cart", "cart.add", cartController.Add)
	api.Delete("/cart/{id}", "cart.remove", cartController.Remove)
	api.Delete("/cart", "cart.clear", cartController.Clear)

	api.Get("/wishlist", "wishlist.index", wishlistController.Index)
	api.Post("/wishlist", "wishlist.toggle", wishlistController.Toggle)
	api.Delete("/wishlist/{id}", "wishlist.remove", wishlistController.Remove)

	api.Post("/checkout", "checkout.place", checkoutController.Place)

	admin := api.Group("", middleware.Auth, rbac.HasRole(models.RoleAdmin))
	admin.Get("/notifications", "notifications.index", notificationController.Index)
	admin.Delete("/notifications", "notifications.clear", notificationController.Clear)

	schema, err := graphql.NewSchema()
	if err != nil {
		logger.Error("graphql schema init failed", "error", err)
	} else {
		api.Post("/graphql", "graphql.query", graphql.Handler(schema))
	}

	r.Get("/metrics", "metrics", metrics.Handler())
	r.Get("/ws/activity", "ws.activity", func(w http.ResponseWriter, req *http.Request) {
		ws.Upgrade(w, req, hub)
	})
	r.Get("/healthz", "health", func(w http.ResponseWriter, _ *http.Request) {
		response.Success(w, map[string]string{"status": "ok"})
	})
}
