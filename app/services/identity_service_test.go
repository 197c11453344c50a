package services_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shalabia/storefront/app/models"
	"github.com/shalabia/storefront/app/repositories"
	"github.com/shalabia/storefront/app/services"
	"github.com/shalabia/storefront/pkg/kv"
)

// ─── Harness ──────────────────────────────────────────────────────────────────

type identityHarness struct {
	identity      *services.IdentityService
	notifications *services.NotificationService
	users         *repositories.UserRepository
	sessions      *repositories.SessionRepository
}

func newIdentityHarness() identityHarness {
	store := kv.NewMemoryDriver()
	users := repositories.NewUserRepository(store)
	sessions := repositories.NewSessionRepository(store)
	notifications := services.NewNotificationService(repositories.NewNotificationRepository(store))
	return identityHarness{
		identity:      services.NewIdentityService(users, sessions, notifications),
		notifications: notifications,
		users:         users,
		sessions:      sessions,
	}
}

// ─── Sign-up ──────────────────────────────────────────────────────────────────

func TestSignUpCreatesAccountAndSession(t *testing.T) {
	h := newIdentityHarness()

	session, token, err := h.identity.SignUp("Mona Hassan", "mona@example.com", "secret1")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, "Mona Hassan", session.Name)
	require.Equal(t, models.RoleUser, session.Role)

	current, ok := h.sessions.Current()
	require.True(t, ok)
	require.Equal(t, "mona@example.com", current.Email)

	recent := h.notifications.Recent()
	require.Len(t, recent, 1)
	require.Equal(t, models.NotificationSignup, recent[0].Type)
	require.Contains(t, recent[0].Message, "Mona Hassan (mona@example.com) joined the sisterhood.")
}

func TestSignUpValidationOrder(t *testing.T) {
	h := newIdentityHarness()

	cases := []struct {
		name, email, password string
		want                  error
	}{
		{"Mona", "", "secret1", services.ErrMissingFields},
		{"Mona", "mona@example.com", "", services.ErrMissingFields},
		{"Mona", "not-an-email", "secret1", services.ErrBadEmail},
		{"", "mona@example.com", "secret1", services.ErrMissingName},
		{"Mo", "mona@example.com", "secret1", services.ErrShortName},
		{"Mona", "mona@example.com", "short", services.ErrShortPassword},
	}
	for _, tc := range cases {
		_, _, err := h.identity.SignUp(tc.name, tc.email, tc.password)
		require.ErrorIs(t, err, tc.want)
	}

	require.Empty(t, h.users.All())
	_, ok := h.sessions.Current()
	require.False(t, ok)
}

func TestDuplicateSignUpLeavesOriginalUntouched(t *testing.T) {
	h := newIdentityHarness()

	_, _, err := h.identity.SignUp("Mona Hassan", "mona@example.com", "secret1")
	require.NoError(t, err)

	_, _, err = h.identity.SignUp("Impostor", "MONA@example.com", "hijack99")
	require.ErrorIs(t, err, services.ErrEmailTaken)

	all := h.users.All()
	require.Len(t, all, 1)
	require.Equal(t, "Mona Hassan", all[0].Name)
	require.Equal(t, "secret1", all[0].Password)

	current, ok := h.sessions.Current()
	require.True(t, ok)
	require.Equal(t, "Mona Hassan", current.Name)
}

func TestAdminSignUpIsNotLogged(t *testing.T) {
	h := newIdentityHarness()

	session, _, err := h.identity.SignUp("Shalabia Admin", "admin@shalabia.com", "admin123")
	require.NoError(t, err)
	require.Equal(t, models.RoleAdmin, session.Role)
	require.Empty(t, h.notifications.Recent())
}

// ─── Sign-in ──────────────────────────────────────────────────────────────────

func TestSignInWrongPasswordLeavesNoSession(t *testing.T) {
	h := newIdentityHarness()

	_, _, err := h.identity.SignUp("Mona Hassan", "mona@example.com", "secret1")
	require.NoError(t, err)
	require.NoError(t, h.identity.SignOut())

	_, _, err = h.identity.SignIn("mona@example.com", "wrong99")
	require.ErrorIs(t, err, services.ErrWrongPassword)

	_, ok := h.identity.Current()
	require.False(t, ok)
	// Only the signup is on the log; the failed sign-in never lands.
	require.Len(t, h.notifications.Recent(), 1)
}

func TestSignInUnknownEmail(t *testing.T) {
	h := newIdentityHarness()

	_, _, err := h.identity.SignIn("nobody@example.com", "whatever")
	require.ErrorIs(t, err, services.ErrUnknownEmail)
}

func TestSignInRecordsSessionAndNotification(t *testing.T) {
	h := newIdentityHarness()

	_, _, err := h.identity.SignUp("Mona Hassan", "mona@example.com", "secret1")
	require.NoError(t, err)
	require.NoError(t, h.identity.SignOut())

	session, token, err := h.identity.SignIn("mona@example.com", "secret1")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, "Mona Hassan", session.Name)

	recent := h.notifications.Recent()
	require.Len(t, recent, 2)
	require.Equal(t, models.NotificationSignin, recent[0].Type)
	require.Contains(t, recent[0].Message, "User Login: Mona Hassan (mona@example.com) signed in.")
}
