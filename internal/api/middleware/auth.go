package middleware

import (
	"context"
	"net/http"
	"strings"
)

const SubjectKey ctxKey = "subject"

// TokenVerifier checks a bearer token and returns its subject.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// Auth validates a Bearer JWT and adds the token subject to context.
func Auth(v TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ah := r.Header.Get("Authorization")
			if len(ah) < len("Bearer ") || !strings.EqualFold(ah[:len("Bearer ")], "bearer ") {
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}
			sub, err := v.Verify(strings.TrimSpace(ah[len("Bearer "):]))
			if err != nil {
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), SubjectKey, sub)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSubject returns the authenticated token subject.
func GetSubject(ctx context.Context) string {
	return stringValue(ctx, SubjectKey)
}
