package middleware

import (
	"net/http"

	"github.com/audient-hq/audient-backend/internal/domain/auth"
	"github.com/audient-hq/audient-backend/internal/domain/user"
	"github.com/audient-hq/audient-backend/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// AdminOnly rejects requests whose token does not carry the admin role.
// Services re-check the role against the database before acting, so a
// stale token cannot keep admin access after a demotion.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != string(user.RoleAdmin) {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
