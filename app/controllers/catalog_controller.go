package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/shalabia/storefront/app/catalog"
	"github.com/shalabia/storefront/app/models"
	"github.com/shalabia/storefront/config"
	"github.com/shalabia/storefront/pkg/response"
)

// CatalogController serves the product collection.
type CatalogController struct{}

func NewCatalogController() *CatalogController {
	return &CatalogController{}
}

// Index lists products, optionally filtered by ?category= or ?q=.
func (c *CatalogController) Index(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		q = r.URL.Query().Get("search")
	}
	if q != "" {
		response.Success(w, catalog.Search(q))
		return
	}
	response.Success(w, catalog.ByCategory(r.URL.Query().Get("category")))
}

// Show returns a single product by id.
func (c *CatalogController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid product id")
		return
	}
	product, ok := catalog.Find(id)
	if !ok {
		response.NotFound(w)
		return
	}
	response.Success(w, product)
}

// Categories lists the filter chips, "All" first.
func (c *CatalogController) Categories(w http.ResponseWriter, r *http.Request) {
	response.Success(w, catalog.Categories())
}

// Meta returns the storefront constants the client renders against: the
// delivery city, the selectable areas, and the free-shipping threshold.
func (c *CatalogController) Meta(w http.ResponseWriter, r *http.Request) {
	response.Success(w, map[string]interface{}{
		"deliveryCity":          config.DeliveryCity(),
		"areas":                 models.AlexandriaAreas,
		"freeShippingThreshold": config.FreeShippingThreshold(),
	})
}
