package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/shalabia/storefront/app/models"
	"github.com/shalabia/storefront/app/services"
	"github.com/shalabia/storefront/pkg/bind"
	"github.com/shalabia/storefront/pkg/reqid"
	"github.com/shalabia/storefront/pkg/response"
)

// CartTokenHeader carries the visitor's opaque cart token. The first cart
// request mints one; the client echoes it back on every call after that.
const CartTokenHeader = "X-Cart-Token"

// CartController serves the shopping cart.
type CartController struct {
	cart *services.CartService
}

func NewCartController(cart *services.CartService) *CartController {
	return &CartController{cart: cart}
}

// token returns the request's cart token, minting one when absent, and
// always echoes it in the response so the client can hold on to it.
func (c *CartController) token(w http.ResponseWriter, r *http.Request) string {
	token := r.Header.Get(CartTokenHeader)
	if token == "" {
		token = reqid.New()
	}
	w.Header().Set(CartTokenHeader, token)
	return token
}

func (c *CartController) payload(token string) map[string]interface{} {
	items := c.cart.Items(token)
	return map[string]interface{}{
		"items": items,
		"count": len(items),
		"total": c.cart.Total(token),
	}
}

// Index returns the cart contents.
func (c *CartController) Index(w http.ResponseWriter, r *http.Request) {
	response.Success(w, c.payload(c.token(w, r)))
}

// Add puts one piece of a product into the cart.
func (c *CartController) Add(w http.ResponseWriter, r *http.Request) {
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

	token := c.token(w, r)
	if _, err := c.cart.Add(token, in.ProductID); err != nil {
		switch {
		case errors.Is(err, services.ErrOutOfStock):
			response.Error(w, http.StatusConflict, err.Error())
		case errors.Is(err, services.ErrUnknownProduct):
			response.NotFound(w)
		default:
			response.Error(w, http.StatusInternalServerError, "Could not update cart")
		}
		return
	}

	// A successful add tells the client to slide the cart panel open;
	// rejected adds never do.
	body := c.payload(token)
	body["openCart"] = true
	response.Success(w, body)
}

// Remove deletes one occurrence of a product from the cart.
func (c *CartController) Remove(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid product id")
		return
	}

	token := c.token(w, r)
	if _, err := c.cart.Remove(token, id); err != nil {
		response.Error(w, http.StatusInternalServerError, "Could not update cart")
		return
	}
	response.Success(w, c.payload(token))
}

// Clear empties the cart.
func (c *CartController) Clear(w http.ResponseWriter, r *http.Request) {
	token := c.token(w, r)
	if err := c.cart.Clear(token); err != nil {
		response.Error(w, http.StatusInternalServerError, "Could not clear cart")
		return
	}
	response.Success(w, map[string]interface{}{
		"items": []models.Product{},
		"count": 0,
		"total": 0,
	})
}
