package services

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/shalabia/storefront/app/models"
	"github.com/shalabia/storefront/app/repositories"
	"github.com/shalabia/storefront/config"
	"github.com/shalabia/storefront/pkg/auth"
	"github.com/shalabia/storefront/pkg/event"
	"github.com/shalabia/storefront/pkg/metrics"
)

// Account errors carry the exact copy shown to shoppers.
var (
	ErrMissingFields = errors.New("Please fill in all fields")
	ErrBadEmail      = errors.New("Please enter a valid email address.")
	ErrMissingName   = errors.New("Please enter your full name.")
	ErrShortName     = errors.New("Name must be at least 3 characters long.")
	ErrShortPassword = errors.New("Password must be at least 6 characters long.")
	ErrEmailTaken    = errors.New("An account with this email already exists.")
	ErrUnknownEmail  = errors.New("No account found with this email. Please sign up first.")
	ErrWrongPassword = errors.New("Incorrect password. Please try again.")
)

var emailRE = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IdentityService implements the storefront's faux-auth flows: accounts
// live in the store, sessions are a single record plus a bearer token.
type IdentityService struct {
	users         *repositories.UserRepository
	sessions      *repositories.SessionRepository
	notifications *NotificationService
}

func NewIdentityService(
	users *repositories.UserRepository,
	sessions *repositories.SessionRepository,
	notifications *NotificationService,
) *IdentityService {
	return &IdentityService{users: users, sessions: sessions, notifications: notifications}
}

// roleFor grants the admin role to the configured owner address.
func roleFor(email string) string {
	if isAdmin(email) {
		return models.RoleAdmin
	}
	return models.RoleUser
}

// SignUp registers a new account, signs it in, and returns the session and
// a bearer token. On any validation failure nothing is written.
func (s *IdentityService) SignUp(name, email, password string) (models.Session, string, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if email == "" || password == "" {
		return models.Session{}, "", ErrMissingFields
	}
	if !emailRE.MatchString(email) {
		return models.Session{}, "", ErrBadEmail
	}
	if name == "" {
		return models.Session{}, "", ErrMissingName
	}
	if len([]rune(name)) < 3 {
		return models.Session{}, "", ErrShortName
	}
	if len(password) < 6 {
		return models.Session{}, "", ErrShortPassword
	}

	if _, exists := s.users.FindByEmail(email); exists {
		return models.Session{}, "", ErrEmailTaken
	}

	stored, err := auth.HashPassword(password)
	if err != nil {
		return models.Session{}, "", err
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Password: stored,
		Role:     roleFor(email),
		JoinedAt: time.Now().Format(timestampLayout),
	}
	if err := s.users.Create(user); err != nil {
		return models.Session{}, "", err
	}

	session := user.Public()
	if err := s.sessions.Put(session); err != nil {
		return models.Session{}, "", err
	}

	s.notifications.LogSignup(user.Name, user.Email) //nolint:errcheck
	metrics.SignupsTotal.Inc()
	event.FireAsync(event.UserRegistered, session)

	token, err := auth.GenerateToken(session.Email, session.Name, session.Role)
	if err != nil {
		return models.Session{}, "", err
	}
	return session, token, nil
}

// SignIn authenticates an existing account. On failure no session is
// created and nothing is logged.
func (s *IdentityService) SignIn(email, password string) (models.Session, string, error) {
	email = strings.TrimSpace(email)

	if email == "" || password == "" {
		return models.Session{}, "", ErrMissingFields
	}
	if !emailRE.MatchString(email) {
		return models.Session{}, "", ErrBadEmail
	}

	user, ok := s.users.FindByEmail(email)
	if !ok {
		return models.Session{}, "", ErrUnknownEmail
	}
	if !auth.CheckPassword(user.Password, password) {
		return models.Session{}, "", ErrWrongPassword
	}

	// Older records predate the role attribute.
	if user.Role == "" {
		user.Role = roleFor(user.Email)
	}

	session := user.Public()
	if err := s.sessions.Put(session); err != nil {
		return models.Session{}, "", err
	}

	s.notifications.LogSignin(user.Name, user.Email) //nolint:errcheck
	metrics.SigninsTotal.Inc()
	event.FireAsync(event.UserSignedIn, session)

	token, err := auth.GenerateToken(session.Email, session.Name, session.Role)
	if err != nil {
		return models.Session{}, "", err
	}
	return session, token, nil
}

// SignOut clears the session record. The bearer token simply expires.
func (s *IdentityService) SignOut() error {
	return s.sessions.Clear()
}

// Current returns the signed-in identity, if any.
func (s *IdentityService) Current() (models.Session, bool) {
	return s.sessions.Current()
}

// AdminEmail exposes the configured owner address.
func (s *IdentityService) AdminEmail() string {
	return config.AdminEmail()
}
