package services_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/shalabia/storefront/app/models"
	"github.com/shalabia/storefront/app/repositories"
	"github.com/shalabia/storefront/app/services"
	"github.com/shalabia/storefront/pkg/kv"
)

func newNotificationService() *services.NotificationService {
	store := kv.NewMemoryDriver()
	return services.NewNotificationService(repositories.NewNotificationRepository(store))
}

func TestNotificationLogCapsAtFifty(t *testing.T) {
	svc := newNotificationService()

	base := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	tick := 0
	svc.SetClock(func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	})

	for i := 1; i <= models.NotificationCap+1; i++ {
		err := svc.LogSignup(fmt.Sprintf("Member %d", i), fmt.Sprintf("member%d@example.com", i))
		require.NoError(t, err)
	}

	recent := svc.Recent()
	require.Len(t, recent, models.NotificationCap)

	// The 51st entry evicted the very first one.
	require.Contains(t, recent[0].Message, "Member 51")
	require.Contains(t, recent[len(recent)-1].Message, "Member 2")
	for _, n := range recent {
		require.NotContains(t, n.Message, "Member 1 ")
	}
}

func TestNotificationRecentIsNewestFirst(t *testing.T) {
	svc := newNotificationService()

	base := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	tick := 0
	svc.SetClock(func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	})

	require.NoError(t, svc.LogSignup("Mona Hassan", "mona@example.com"))
	require.NoError(t, svc.LogSignin("Mona Hassan", "mona@example.com"))
	require.NoError(t, svc.LogOrder("Mona Hassan", 2, 5000))

	recent := svc.Recent()
	require.Len(t, recent, 3)
	require.Equal(t, models.NotificationOrder, recent[0].Type)
	require.Equal(t, models.NotificationSignin, recent[1].Type)
	require.Equal(t, models.NotificationSignup, recent[2].Type)
	require.Equal(t, "New Order: Mona Hassan - 2 items (5,000 EGP)", recent[0].Message)
	require.Equal(t, "8/29/2026, 10:00:03 AM", recent[0].Timestamp)
}

func TestAdminActivityIsSuppressed(t *testing.T) {
	svc := newNotificationService()

	require.NoError(t, svc.LogSignup("Shalabia Admin", "admin@shalabia.com"))
	require.NoError(t, svc.LogSignin("Shalabia Admin", "ADMIN@shalabia.com"))
	require.Empty(t, svc.Recent())

	// Orders are always logged; checkout needs no account.
	require.NoError(t, svc.LogOrder("Shalabia Admin", 1, 2500))
	require.Len(t, svc.Recent(), 1)
}

func TestNotificationClear(t *testing.T) {
	svc := newNotificationService()

	require.NoError(t, svc.LogSignup("Mona Hassan", "mona@example.com"))
	require.NoError(t, svc.Clear())
	require.Empty(t, svc.Recent())
}
