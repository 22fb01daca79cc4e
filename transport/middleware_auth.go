package transport

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/restock/application/auth"
	"github.com/muhammadheryan/restock/constant"
	"github.com/muhammadheryan/restock/utils/errors"
)

// AuthMiddleware validates bearer tokens using AuthApp and scopes the request
// to the token's tenant. Swagger and internal endpoints pass through.
func AuthMiddleware(authApp auth.AuthApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			token := strings.TrimPrefix(header, "Bearer ")

			tenantID, err := authApp.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			ctx := context.WithValue(r.Context(), constant.TenantIDKey, tenantID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// isPublicPath defines which endpoints are public (no bearer token required)
func isPublicPath(path string) bool {
	return strings.HasPrefix(path, "/swagger/") || strings.HasPrefix(path, "/internal/")
}
