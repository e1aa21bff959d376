package auth

import (
	"net/http"
	"strings"

	"github.com/Snoopy-too/fidels-pizza/internal/models"
	"github.com/Snoopy-too/fidels-pizza/internal/web"
)

// RequireUser rejects requests without a valid bearer token and stores the
// caller identity in the request context.
func (tm *TokenManager) RequireUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := tm.claimsFromRequest(w, r)
		if !ok {
			return
		}
		identity := web.Identity{
			UserID: claims.UserID,
			Email:  claims.Email,
			Name:   claims.Name,
			Role:   models.Role(claims.Role),
		}
		next(w, r.WithContext(web.WithIdentity(r.Context(), identity)))
	}
}

// RequireAdmin additionally requires the admin role.
func (tm *TokenManager) RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return tm.RequireUser(func(w http.ResponseWriter, r *http.Request) {
		identity, _ := web.IdentityFromContext(r.Context())
		if identity.Role != models.RoleAdmin {
			web.RespondError(w, http.StatusForbidden, "admin access required", web.RequestIDFromContext(r.Context()))
			return
		}
		next(w, r)
	})
}

func (tm *TokenManager) claimsFromRequest(w http.ResponseWriter, r *http.Request) (*Claims, bool) {
	header := r.Header.Get("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		web.RespondError(w, http.StatusUnauthorized, "missing bearer token", web.RequestIDFromContext(r.Context()))
		return nil, false
	}
	claims, err := tm.Validate(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		web.RespondError(w, http.StatusUnauthorized, "invalid or expired token", web.RequestIDFromContext(r.Context()))
		return nil, false
	}
	return claims, true
}
