package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shalabia/storefront/app/models"
	"github.com/shalabia/storefront/app/repositories"
	"github.com/shalabia/storefront/config"
	"github.com/shalabia/storefront/pkg/event"
	"github.com/shalabia/storefront/pkg/logger"
	"github.com/shalabia/storefront/pkg/mail"
	"github.com/shalabia/storefront/pkg/metrics"
	"github.com/shalabia/storefront/pkg/validate"
)

// ErrEmptyCart rejects a checkout with nothing in the cart.
var ErrEmptyCart = errors.New("Your cart is empty.")

// Checkout field errors, exact copy shown under each form field.
const (
	msgBadName    = "Please enter a valid full name (min 3 chars)."
	msgBadPhone   = "Please enter a valid 11-digit phone number (e.g., 01xxxxxxxxx)."
	msgBadArea    = "Please select your area."
	msgBadAddress = "Please provide a detailed address."
)

// CheckoutResult is everything the client needs after a confirmed order:
// the persisted record, the mailto: handoff URI, and the confirmation copy.
type CheckoutResult struct {
	Order     models.Order `json:"order"`
	MailtoURI string       `json:"mailtoUri"`
	Message   string       `json:"message"`
}

// CheckoutService validates the delivery form, persists the order, and
// builds the mailto: summary handed back to the client.
type CheckoutService struct {
	cart          *CartService
	orders        *repositories.OrderRepository
	notifications *NotificationService
	delay         time.Duration
	now           func() time.Time
}

func NewCheckoutService(
	cart *CartService,
	orders *repositories.OrderRepository,
	notifications *NotificationService,
) *CheckoutService {
	return &CheckoutService{
		cart:          cart,
		orders:        orders,
		notifications: notifications,
		delay:         time.Second,
		now:           time.Now,
	}
}

// SetCompletionDelay overrides the confirmation delay. Tests set it to zero.
func (s *CheckoutService) SetCompletionDelay(d time.Duration) { s.delay = d }

// SetClock overrides the time source.
func (s *CheckoutService) SetClock(now func() time.Time) { s.now = now }

// Validate checks the delivery form and returns field → message for every
// failing field. An empty map means the form is valid.
func (s *CheckoutService) Validate(form models.CheckoutForm) map[string]string {
	errs := map[string]string{}

	if len([]rune(strings.TrimSpace(form.Name))) < 3 {
		errs["name"] = msgBadName
	}
	if !validate.EgyptianMobile(form.Phone) {
		errs["phone"] = msgBadPhone
	}
	if form.Area == "" || !models.ValidArea(form.Area) {
		errs["area"] = msgBadArea
	}
	if len([]rune(strings.TrimSpace(form.Address))) < 5 {
		errs["address"] = msgBadAddress
	}

	return errs
}

// Place runs the full checkout: validate, record the notification and the
// order, build the mailto: summary, clear the cart, and hold for the
// confirmation delay. The delay honours ctx, so a disconnecting client
// cancels the wait (the order itself is already persisted).
//
// Returns field errors when the form is invalid; nothing is written in
// that case.
func (s *CheckoutService) Place(ctx context.Context, token string, form models.CheckoutForm) (CheckoutResult, map[string]string, error) {
	if errs := s.Validate(form); len(errs) > 0 {
		return CheckoutResult{}, errs, nil
	}

	items := s.cart.Items(token)
	if len(items) == 0 {
		return CheckoutResult{}, nil, ErrEmptyCart
	}

	// Delivery is Alexandria-only; the city is not client-controlled.
	form.City = config.DeliveryCity()

	total := 0
	for _, item := range items {
		total += item.Price
	}

	s.notifications.LogOrder(form.Name, len(items), total) //nolint:errcheck

	t := s.now()
	order := models.Order{
		ID:       t.UnixMilli(),
		Customer: form,
		Items:    items,
		Total:    total,
		Date:     t.Format(timestampLayout),
		Status:   models.OrderStatusPending,
	}
	// Best effort: a store failure must not block the mail handoff.
	if err := s.orders.Append(order); err != nil {
		logger.Error("checkout: record order", "order_id", order.ID, "error", err)
	}

	subject := fmt.Sprintf("New Order from %s - %s", form.Name, t.Format("1/2/2006"))
	body := orderBody(form, items, total)
	mailtoURI := mail.To(config.OrderMailbox()).Subject(subject).Text(body).Mailto()

	if err := s.cart.Clear(token); err != nil {
		logger.Error("checkout: clear cart", "error", err)
	}

	metrics.OrdersTotal.Inc()
	metrics.OrderValue.Observe(float64(total))
	event.FireAsync(event.OrderPlaced, order)

	// The storefront shows a short "recording your order" pause before the
	// confirmation. Honour cancellation instead of sleeping blindly.
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return CheckoutResult{}, nil, ctx.Err()
		}
	}

	return CheckoutResult{
		Order:     order,
		MailtoURI: mailtoURI,
		Message:   "Thank you! Your order has been recorded in our system. \n\nWe also opened your email client to send us the confirmation details.",
	}, nil, nil
}

// OrderMailContent rebuilds the summary mail for a persisted order. Used
// by the SMTP relay job, which only carries the order in its payload.
func OrderMailContent(order models.Order) (subject, body string) {
	date := time.UnixMilli(order.ID).Format("1/2/2006")
	subject = fmt.Sprintf("New Order from %s - %s", order.Customer.Name, date)
	body = orderBody(order.Customer, order.Items, order.Total)
	return subject, body
}

// OrderCSV renders the spreadsheet block embedded in the order summary:
// a header row, one row per piece, and a TOTAL footer.
func OrderCSV(items []models.Product, total int) string {
	var b strings.Builder
	b.WriteString("ItemID,Product Name,Category,Price\n")
	for i, item := range items {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%d,%q,%s,%d", item.ID, item.Title, item.Category, item.Price)
	}
	fmt.Fprintf(&b, "\n\nTOTAL,,,%d", total)
	return b.String()
}

func orderBody(form models.CheckoutForm, items []models.Product, total int) string {
	return fmt.Sprintf(`
NEW ORDER RECEIVED

CUSTOMER DETAILS:
------------------
Name: %s
Phone: %s
City: %s
Area: %s
Address: %s
Notes: %s

ORDER SUMMARY:
------------------
Total Items: %d
Total Amount: %s EGP

EXCEL DATA (Copy below lines and save as .csv to open in Excel):
------------------
%s
`, form.Name, form.Phone, form.City, form.Area, form.Address, form.Notes,
		len(items), models.FormatEGP(total), OrderCSV(items, total))
}
