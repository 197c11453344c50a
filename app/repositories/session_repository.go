package repositories

import (
	"github.com/shalabia/storefront/app/models"
	"github.com/shalabia/storefront/pkg/kv"
)

// SessionRepository holds the current signed-in identity. The storefront
// keeps a single active session record, mirroring the one-browser model
// of the original store.
type SessionRepository struct {
	store kv.Store
}

func NewSessionRepository(store kv.Store) *SessionRepository {
	return &SessionRepository{store: store}
}

// Current returns the signed-in identity, if any.
func (r *SessionRepository) Current() (models.Session, bool) {
	var s models.Session
	ok := kv.ReadJSON(r.store, KeySession, &s)
	return s, ok
}

// Put records the signed-in identity.
func (r *SessionRepository) Put(s models.Session) error {
	return kv.WriteJSON(r.store, KeySession, s)
}

// Clear signs the identity out.
func (r *SessionRepository) Clear() error {
	return r.store.Remove(KeySession)
}
