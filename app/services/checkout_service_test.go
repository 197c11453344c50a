package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/shalabia/storefront/app/models"
	"github.com/shalabia/storefront/app/repositories"
	"github.com/shalabia/storefront/app/services"
	"github.com/shalabia/storefront/pkg/kv"
)

// ─── Harness ──────────────────────────────────────────────────────────────────

type checkoutHarness struct {
	checkout      *services.CheckoutService
	cart          *services.CartService
	orders        *repositories.OrderRepository
	notifications *services.NotificationService
}

func newCheckoutHarness() checkoutHarness {
	store := kv.NewMemoryDriver()
	cart := services.NewCartService(repositories.NewCartRepository(store))
	orders := repositories.NewOrderRepository(store)
	notifications := services.NewNotificationService(repositories.NewNotificationRepository(store))

	checkout := services.NewCheckoutService(cart, orders, notifications)
	checkout.SetCompletionDelay(0)
	return checkoutHarness{checkout: checkout, cart: cart, orders: orders, notifications: notifications}
}

func validForm() models.CheckoutForm {
	return models.CheckoutForm{
		Name:    "Mona Hassan",
		Phone:   "01012345678",
		Area:    "Gleem",
		Address: "12 Corniche Road, Floor 3",
		Notes:   "Call before delivery",
	}
}

// ─── Validation ───────────────────────────────────────────────────────────────

func TestCheckoutValidationMessages(t *testing.T) {
	h := newCheckoutHarness()

	errs := h.checkout.Validate(models.CheckoutForm{})
	require.Equal(t, "Please enter a valid full name (min 3 chars).", errs["name"])
	require.Equal(t, "Please enter a valid 11-digit phone number (e.g., 01xxxxxxxxx).", errs["phone"])
	require.Equal(t, "Please select your area.", errs["area"])
	require.Equal(t, "Please provide a detailed address.", errs["address"])

	require.Empty(t, h.checkout.Validate(validForm()))
}

func TestCheckoutRejectsUnknownArea(t *testing.T) {
	h := newCheckoutHarness()

	form := validForm()
	form.Area = "Cairo"
	errs := h.checkout.Validate(form)
	require.Equal(t, "Please select your area.", errs["area"])
}

func TestCheckoutInvalidFormWritesNothing(t *testing.T) {
	h := newCheckoutHarness()
	_, err := h.cart.Add("visitor-1", 1)
	require.NoError(t, err)

	form := validForm()
	form.Phone = "0101234567" // ten digits

	_, fieldErrs, err := h.checkout.Place(context.Background(), "visitor-1", form)
	require.NoError(t, err)
	require.NotEmpty(t, fieldErrs)

	require.Empty(t, h.orders.All())
	require.Empty(t, h.notifications.Recent())
	require.Len(t, h.cart.Items("visitor-1"), 1)
}

func TestCheckoutEmptyCart(t *testing.T) {
	h := newCheckoutHarness()

	_, fieldErrs, err := h.checkout.Place(context.Background(), "visitor-1", validForm())
	require.Nil(t, fieldErrs)
	require.ErrorIs(t, err, services.ErrEmptyCart)
}

// ─── Placing an order ─────────────────────────────────────────────────────────

func TestCheckoutPlacesOrder(t *testing.T) {
	h := newCheckoutHarness()
	at := time.Date(2026, 8, 29, 15, 4, 5, 0, time.UTC)
	h.checkout.SetClock(func() time.Time { return at })

	_, err := h.cart.Add("visitor-1", 1)
	require.NoError(t, err)
	_, err = h.cart.Add("visitor-1", 2)
	require.NoError(t, err)

	result, fieldErrs, err := h.checkout.Place(context.Background(), "visitor-1", validForm())
	require.NoError(t, err)
	require.Empty(t, fieldErrs)

	order := result.Order
	require.Equal(t, at.UnixMilli(), order.ID)
	require.Equal(t, 5000, order.Total)
	require.Len(t, order.Items, 2)
	require.Equal(t, "8/29/2026, 3:04:05 PM", order.Date)
	require.Equal(t, models.OrderStatusPending, order.Status)
	require.Equal(t, "Alexandria", order.Customer.City)

	// The order is on the books and the cart is empty.
	all := h.orders.All()
	require.Len(t, all, 1)
	require.Equal(t, order.ID, all[0].ID)
	require.Empty(t, h.cart.Items("visitor-1"))

	recent := h.notifications.Recent()
	require.Len(t, recent, 1)
	require.Equal(t, "New Order: Mona Hassan - 2 items (5,000 EGP)", recent[0].Message)

	require.True(t, strings.HasPrefix(result.MailtoURI, "mailto:shalabia.orders@gmail.com?"))
	require.Contains(t, result.MailtoURI, "subject=New%20Order%20from%20Mona%20Hassan%20-%208%2F29%2F2026")
	require.NotContains(t, result.MailtoURI, "+")

	require.Equal(t,
		"Thank you! Your order has been recorded in our system. \n\nWe also opened your email client to send us the confirmation details.",
		result.Message)
}

func TestOrderMailContent(t *testing.T) {
	h := newCheckoutHarness()
	at := time.Date(2026, 8, 29, 15, 4, 5, 0, time.UTC)
	h.checkout.SetClock(func() time.Time { return at })

	_, err := h.cart.Add("visitor-1", 1)
	require.NoError(t, err)
	_, err = h.cart.Add("visitor-1", 3)
	require.NoError(t, err)

	result, _, err := h.checkout.Place(context.Background(), "visitor-1", validForm())
	require.NoError(t, err)

	subject, body := services.OrderMailContent(result.Order)
	require.Equal(t, "New Order from Mona Hassan - 8/29/2026", subject)
	require.Contains(t, body, "NEW ORDER RECEIVED")
	require.Contains(t, body, "Name: Mona Hassan")
	require.Contains(t, body, "Phone: 01012345678")
	require.Contains(t, body, "City: Alexandria")
	require.Contains(t, body, "Area: Gleem")
	require.Contains(t, body, "Total Items: 2")
	require.Contains(t, body, "Total Amount: 5,000 EGP")
	require.Contains(t, body, `1,"Linen Blend Dress",Dresses,2500`)
	require.Contains(t, body, `3,"Classic Trench Coat",Outerwear,2500`)
	require.Contains(t, body, "TOTAL,,,5000")
}

func TestOrderCSVLayout(t *testing.T) {
	items := []models.Product{
		{ID: 1, Title: "Linen Blend Dress", Price: 2500, Category: "Dresses", InStock: true},
		{ID: 2, Title: "Silk Evening Scarf", Price: 2500, Category: "Accessories", InStock: true},
	}

	csv := services.OrderCSV(items, 5000)
	require.Equal(t,
		"ItemID,Product Name,Category,Price\n"+
			`1,"Linen Blend Dress",Dresses,2500`+"\n"+
			`2,"Silk Evening Scarf",Accessories,2500`+
			"\n\nTOTAL,,,5000",
		csv)
}

func TestCheckoutDelayHonoursCancellation(t *testing.T) {
	h := newCheckoutHarness()
	h.checkout.SetCompletionDelay(time.Minute)

	_, err := h.cart.Add("visitor-1", 1)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	_, fieldErrs, err := h.checkout.Place(ctx, "visitor-1", validForm())
	require.Nil(t, fieldErrs)
	require.ErrorIs(t, err, context.Canceled)
	require.Less(t, time.Since(start), 5*time.Second)

	// The order was recorded before the wait was cut short.
	require.Len(t, h.orders.All(), 1)
}
