package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/restock/constant"
	"github.com/muhammadheryan/restock/utils/errors"
)

// InternalMiddleware checks for static API key in header
func InternalMiddleware(apiKey string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if apiKey == "" || r.Header.Get("Authorization") != "Bearer "+apiKey {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
