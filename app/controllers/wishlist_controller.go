package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/shalabia/storefront/app/services"
	"github.com/shalabia/storefront/pkg/bind"
	"github.com/shalabia/storefront/pkg/response"
)

// WishlistController serves the saved-for-later set.
type WishlistController struct {
	wishlist *services.WishlistService
}

func NewWishlistController(wishlist *services.WishlistService) *WishlistController {
	return &WishlistController{wishlist: wishlist}
}

// Index lists the wishlisted products.
func (c *WishlistController) Index(w http.ResponseWriter, r *http.Request) {
	items := c.wishlist.Items()
	response.Success(w, map[string]interface{}{
		"items": items,
		"count": len(items),
	})
}

// Toggle flips wishlist membership for a product.
func (c *WishlistController) Toggle(w http.ResponseWriter, r *http.Request) {
	var in struct {
		ProductID int `json:"productId" validate:"required,integer"`
	}
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	added, err := c.wishlist.Toggle(in.ProductID)
	if err != nil {
		if errors.Is(err, services.ErrUnknownProduct) {
			response.NotFound(w)
			return
		}
		response.Error(w, http.StatusInternalServerError, "Could not update wishlist")
		return
	}

	items := c.wishlist.Items()
	response.Success(w, map[string]interface{}{
		"added": added,
		"items": items,
		"count": len(items),
	})
}

// Remove drops a product from the wishlist.
func (c *WishlistController) Remove(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid product id")
		return
	}

	if err := c.wishlist.Remove(id); err != nil {
		response.Error(w, http.StatusInternalServerError, "Could not update wishlist")
		return
	}

	items := c.wishlist.Items()
	response.Success(w, map[string]interface{}{
		"items": items,
		"count": len(items),
	})
}
