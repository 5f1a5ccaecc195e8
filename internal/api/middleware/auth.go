package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/quill-api/internal/api/shared"
	"github.com/phrazzld/quill-api/internal/service/auth"
)

// NotAuthenticatedMessage is the body message of every rejected request.
const NotAuthenticatedMessage = "You are not authenticated !!"

// AuthMiddleware provides JWT authentication for routes.
type AuthMiddleware struct {
	jwtService auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// BearerToken returns the second space-delimited segment of an
// Authorization header value. The scheme word is not checked.
func BearerToken(header string) (string, bool) {
	parts := strings.Split(header, " ")
	if len(parts) < 2 || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// Authenticate validates the bearer token and stores the caller's user ID in
// the request context. Every failure is answered with 403.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := BearerToken(r.Header.Get("Authorization"))
		if !ok {
			shared.RespondWithMessageAndLog(w, r, http.StatusForbidden, NotAuthenticatedMessage, auth.ErrMissingToken)
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), token)
		if err != nil {
			shared.RespondWithMessageAndLog(w, r, http.StatusForbidden, NotAuthenticatedMessage, err,
				shared.WithElevatedLogLevel())
			return
		}
		if claims == nil || claims.UserID == uuid.Nil {
			shared.RespondWithMessageAndLog(w, r, http.StatusForbidden, NotAuthenticatedMessage, auth.ErrMissingUserID)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), claims.UserID)))
	})
}

// WithUserID returns a copy of ctx carrying the authenticated user ID.
func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, shared.UserIDContextKey, userID)
}

// GetUserID extracts the user ID from the request context.
// Returns the user ID and a boolean indicating if it was found.
func GetUserID(r *http.Request) (uuid.UUID, bool) {
	userID, ok := r.Context().Value(shared.UserIDContextKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}
	return userID, true
}
