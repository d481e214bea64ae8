package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"vcg-backend/internal/domain"
	"vcg-backend/internal/logger"
	"vcg-backend/internal/repository"
	"vcg-backend/internal/security"
)

type contextKey string

const (
	contextKeyUserID contextKey = "user_id"
	contextKeyEmail  contextKey = "email"
)

// UserIDFromContext returns the authenticated user's ID, if any.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(contextKeyUserID).(string)
	return id, ok
}

// AuthMiddleware is the gate in front of the admin surface: it establishes
// identity from the bearer token and authorization from a server-side role
// lookup. A valid session without the admin role gets 403, never the data.
type AuthMiddleware struct {
	tokens security.TokenManager
	users  repository.UserRepository
}

func NewAuthMiddleware(tokens security.TokenManager, users repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		tokens: tokens,
		users:  users,
	}
}

// Authenticate requires a valid access token and stores the identity in the
// request context.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			respondError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}

		claims, err := m.tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			respondError(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}
		if claims.Type != security.TokenTypeAccess {
			respondError(w, http.StatusUnauthorized, "wrong token type")
			return
		}

		ctx := context.WithValue(r.Context(), contextKeyUserID, claims.UserID)
		ctx = context.WithValue(ctx, contextKeyEmail, claims.Email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin evaluates the role predicate against the database on every
// request. Claims are identity only; authorization is never cached in the
// token.
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := UserIDFromContext(r.Context())
		if !ok {
			respondError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}

		isAdmin, err := m.users.HasRole(r.Context(), userID, domain.RoleAdmin)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		if !isAdmin {
			respondError(w, http.StatusForbidden, "admin role required")
			return
		}
		next.ServeHTTP(w, r)
	}))
}

// Recover turns handler panics into 500 responses
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("Handler panicked", "panic", rec, "path", r.URL.Path)
				respondError(w, http.StatusInternalServerError, "internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// RequestLogging logs method, path, and duration for every request
func RequestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Debug("Request handled", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}

// CORS allows the website frontend to call the API from its own origin.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(allowedOrigins))
	allowAll := len(allowedOrigins) == 0
	for _, o := range allowedOrigins {
		if o == "*" {
			allowAll = true
		}
		allowed[o] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" && (allowAll || allowed[origin]) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
			}
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
