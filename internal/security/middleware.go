package security

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"multipoles-backend/internal/locale"
	"multipoles-backend/internal/util"
)

type contextKey string

const UserContextKey contextKey = "user"

// Authenticate extracts the bearer token and verifies it as an
// access-type token. The verified claims become the request identity.
func Authenticate(jwtService *JWTService) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			loc := locale.Pick(r.Header.Get("Accept-Language"))

			authorizationHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authorizationHeader, "Bearer ") {
				util.HandleError(w, locale.T(loc, "auth", "unauthorized"), http.StatusUnauthorized)
				return
			}

			token := strings.TrimPrefix(authorizationHeader, "Bearer ")
			claims, err := jwtService.VerifyAccessToken(token)
			if err != nil {
				util.HandleError(w, locale.T(loc, "auth", "unauthorized"), http.StatusUnauthorized)
				return
			}

			req := r.WithContext(context.WithValue(r.Context(), UserContextKey, claims))
			next.ServeHTTP(w, req)
		})
	}
}

// RequireRoles permits the request only if the authenticated identity's
// role is in the allow-set. Must be mounted after Authenticate.
func RequireRoles(roles ...string) func(next http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			loc := locale.Pick(r.Header.Get("Accept-Language"))

			claims, err := ClaimsFromContext(r.Context())
			if err != nil {
				util.HandleError(w, locale.T(loc, "auth", "unauthorized"), http.StatusUnauthorized)
				return
			}

			if _, ok := allowed[claims.Role]; !ok {
				util.HandleError(w, locale.T(loc, "auth", "forbidden"), http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func ClaimsFromContext(ctx context.Context) (*AccessClaims, error) {
	claims, ok := ctx.Value(UserContextKey).(*AccessClaims)
	if !ok || claims == nil {
		return nil, fmt.Errorf("request is not authenticated")
	}
	return claims, nil
}
