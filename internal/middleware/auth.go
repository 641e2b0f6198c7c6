package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ksr/files/internal/logger"
	"github.com/ksr/files/internal/response"
	"github.com/ksr/files/internal/user"
)

// contextKey is an unexported type for context keys in this package.
type contextKey string

// PrincipalKey is the context key for the authenticated *user.User.
const PrincipalKey contextKey = "principal"

// TokenValidator resolves a bearer token and subject id to a principal.
type TokenValidator interface {
	Validate(ctx context.Context, token, subjectID string) (*user.User, error)
}

// RequireAuth returns middleware that verifies the Bearer JWT signature,
// takes the subject from its "sub" claim and asks v whether the token is
// still live in the token store. The principal is injected into the request
// context.
func RequireAuth(jwtSecret string, v TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				response.Unauthorized(w, r, "authorization header required")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
				response.Unauthorized(w, r, "invalid authorization header format")
				return
			}
			raw := parts[1]

			token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !token.Valid {
				response.Unauthorized(w, r, "invalid or expired token")
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				response.Unauthorized(w, r, "invalid token claims")
				return
			}
			subject, _ := claims.GetSubject()
			if subject == "" {
				subject, _ = claims["id"].(string)
			}

			principal, err := v.Validate(r.Context(), raw, subject)
			if err != nil {
				logger.FromContext(r.Context()).Error("token validation failed", "error", err)
				response.InternalError(w, r)
				return
			}
			if principal == nil {
				response.Unauthorized(w, r, "Unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), PrincipalKey, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// PrincipalFromContext returns the authenticated user, if any.
func PrincipalFromContext(ctx context.Context) (*user.User, bool) {
	u, ok := ctx.Value(PrincipalKey).(*user.User)
	return u, ok && u != nil
}
