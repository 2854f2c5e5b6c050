package http

import (
	"net/http"

	"github.com/audient-hq/audient-backend/internal/domain/auth"
	"github.com/go-chi/jwtauth/v5"
)

// userIDFromRequest pulls the caller's user ID from the verified token claims.
func userIDFromRequest(r *http.Request) (string, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", auth.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", auth.ErrInvalidToken
	}

	return userID, nil
}
