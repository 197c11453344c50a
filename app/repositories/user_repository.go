package repositories

import (
	"strings"

	"github.com/shalabia/storefront/app/models"
	"github.com/shalabia/storefront/pkg/collection"
	"github.com/shalabia/storefront/pkg/kv"
)

// UserRepository handles the registered account list.
type UserRepository struct {
	store kv.Store
}

func NewUserRepository(store kv.Store) *UserRepository {
	return &UserRepository{store: store}
}

// All returns every registered account. An absent or malformed record
// yields an empty list.
func (r *UserRepository) All() []models.User {
	var users []models.User
	kv.ReadJSON(r.store, KeyUsers, &users)
	return users
}

// FindByEmail looks up an account by email, case-insensitively.
func (r *UserRepository) FindByEmail(email string) (models.User, bool) {
	needle := strings.ToLower(strings.TrimSpace(email))
	return collection.First(r.All(), func(u models.User) bool {
		return strings.ToLower(u.Email) == needle
	})
}

// Create appends a new account to the list.
func (r *UserRepository) Create(user models.User) error {
	users := append(r.All(), user)
	return kv.WriteJSON(r.store, KeyUsers, users)
}
