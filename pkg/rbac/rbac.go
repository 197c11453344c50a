// Package rbac provides role-based access control middleware.
//
// The storefront has exactly two roles: "admin" (the boutique owner, who
// can read and clear the notification log) and "user" (everyone else).
package rbac

import (
	"net/http"

	"github.com/shalabia/storefront/pkg/middleware"
	"github.com/shalabia/storefront/pkg/response"
)

// HasRole returns middleware that allows access only to users with the given role.
// Requires middleware.Auth to have already run (claims must be in context).
func HasRole(roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !allowed[middleware.RoleFromCtx(r.Context())] {
				response.Forbidden(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Guest returns middleware that blocks authenticated users (useful for sign-up/sign-in).
func Guest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if middleware.UserFromCtx(r.Context()) != nil {
			response.Error(w, http.StatusConflict, "Already authenticated")
			return
		}
		next.ServeHTTP(w, r)
	})
}
