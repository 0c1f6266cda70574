package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/unclebandit/influencer-campaign-backend/internal/auth"
)

// Identity reads the user id forwarded by the auth gateway and the
// browser's client id. Neither is required here; handlers decide.
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if raw := r.Header.Get("X-User-ID"); raw != "" {
			if id, err := auth.ParseUserID(raw); err == nil {
				ctx = context.WithValue(ctx, userIDKey, id)
			}
		}
		if cid := strings.TrimSpace(r.Header.Get("X-Client-ID")); cid != "" {
			ctx = context.WithValue(ctx, clientIDKey, cid)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireUser answers 401 when no user id was forwarded.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if UserIDFromContext(r.Context()) == "" {
			http.Error(w, "authentication required", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func UserIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(userIDKey).(string); ok {
		return v
	}
	return ""
}

// ClientIDFromContext falls back to the user id, so a signed-in user keeps
// one draft across browsers that don't send a client id.
func ClientIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(clientIDKey).(string); ok {
		return v
	}
	return UserIDFromContext(ctx)
}

// WithUser is for tests and internal callers.
func WithUser(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func WithClient(ctx context.Context, clientID string) context.Context {
	return context.WithValue(ctx, clientIDKey, clientID)
}
