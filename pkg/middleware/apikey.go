package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/autoloan/datasync/pkg/apiErrors"
)

const apiKeyHeader = "X-API-Key"

// APIKey guards admin routes with a shared secret. There are no user accounts
// in this service, only operators triggering pipeline runs by hand.
func APIKey(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secret == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidAPIKey, "admin API disabled: no API key configured", nil)
				return
			}

			provided := r.Header.Get(apiKeyHeader)
			if subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidAPIKey, "invalid API key", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
