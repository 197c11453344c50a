package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/shalabia/storefront/app/models"
	"github.com/shalabia/storefront/app/services"
	"github.com/shalabia/storefront/pkg/bind"
	"github.com/shalabia/storefront/pkg/reqid"
	"github.com/shalabia/storefront/pkg/response"
)

// CheckoutController turns a validated delivery form into a recorded order.
type CheckoutController struct {
	checkout *services.CheckoutService
}

func NewCheckoutController(checkout *services.CheckoutService) *CheckoutController {
	return &CheckoutController{checkout: checkout}
}

// Place validates the delivery details, records the order and returns the
// mailto handoff alongside the confirmation copy.
func (c *CheckoutController) Place(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get(CartTokenHeader)
	if token == "" {
		token = reqid.New()
	}
	w.Header().Set(CartTokenHeader, token)

	var form models.CheckoutForm
	if _, err := bind.JSON(r, &form); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	result, fieldErrs, err := c.checkout.Place(r.Context(), token, form)
	if fieldErrs != nil {
		response.ValidationError(w, fieldErrs)
		return
	}
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyCart):
			response.Error(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			// Client went away mid-completion. The order is already
			// recorded, so there is nobody left to answer.
		default:
			response.Error(w, http.StatusInternalServerError, "Could not place order")
		}
		return
	}

	response.Created(w, map[string]interface{}{
		"order":   result.Order,
		"mailto":  result.MailtoURI,
		"message": result.Message,
	})
}
