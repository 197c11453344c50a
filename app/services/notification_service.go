package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/shalabia/storefront/app/models"
	"github.com/shalabia/storefront/app/repositories"
	"github.com/shalabia/storefront/config"
)

// timestampLayout matches the original log records: "8/29/2026, 3:04:05 PM".
const timestampLayout = "1/2/2006, 3:04:05 PM"

// NotificationService maintains the admin activity log: sign-ups, sign-ins,
// and orders, capped at models.NotificationCap entries.
type NotificationService struct {
	repo *repositories.NotificationRepository
	now  func() time.Time
}

func NewNotificationService(repo *repositories.NotificationRepository) *NotificationService {
	return &NotificationService{repo: repo, now: time.Now}
}

// SetClock overrides the time source. Tests use this for stable IDs.
func (s *NotificationService) SetClock(now func() time.Time) { s.now = now }

func (s *NotificationService) log(typ, message string) error {
	t := s.now()
	return s.repo.Append(models.Notification{
		ID:        t.UnixMilli(),
		Type:      typ,
		Message:   message,
		Timestamp: t.Format(timestampLayout),
	})
}

// isAdmin reports whether email belongs to the boutique owner. The owner's
// own sign-ins and sign-ups are not logged.
func isAdmin(email string) bool {
	return strings.EqualFold(strings.TrimSpace(email), config.AdminEmail())
}

// LogSignup records a new member, unless it is the admin account.
func (s *NotificationService) LogSignup(name, email string) error {
	if isAdmin(email) {
		return nil
	}
	return s.log(models.NotificationSignup,
		fmt.Sprintf("New Member: %s (%s) joined the sisterhood.", name, email))
}

// LogSignin records a sign-in, unless it is the admin account.
func (s *NotificationService) LogSignin(name, email string) error {
	if isAdmin(email) {
		return nil
	}
	return s.log(models.NotificationSignin,
		fmt.Sprintf("User Login: %s (%s) signed in.", name, email))
}

// LogOrder records a placed order. Orders are always logged; checkout does
// not require an account, so there is no owner to suppress.
func (s *NotificationService) LogOrder(customerName string, itemCount, total int) error {
	return s.log(models.NotificationOrder,
		fmt.Sprintf("New Order: %s - %d items (%s EGP)", customerName, itemCount, models.FormatEGP(total)))
}

// Recent returns the log newest-first, the order the admin panel shows it in.
func (s *NotificationService) Recent() []models.Notification {
	ns := s.repo.All()
	out := make([]models.Notification, len(ns))
	for i, n := range ns {
		out[len(ns)-1-i] = n
	}
	return out
}

// Clear wipes the log.
func (s *NotificationService) Clear() error {
	return s.repo.Clear()
}
