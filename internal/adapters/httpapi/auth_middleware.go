package httpapi

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/Overland-East-Bay/participant-api/internal/platform/auth/basicauth"
	"github.com/Overland-East-Bay/participant-api/internal/platform/metrics"
)

const msgAuthenticationFailed = "Authentication failed"

// NewAuthMiddleware enforces Authorization: Basic <base64(login:password)> against the admin
// credentials. Every failure is a 401 with the same body.
//
// On success, it stores the authenticated login in request context.
func NewAuthMiddleware(v *basicauth.Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			login, err := v.Verify(r.Context(), r.Header.Get("Authorization"))
			if err != nil {
				reason := basicauth.Reason(err)
				metrics.AuthFailuresTotal.WithLabelValues(reason).Inc()

				ev := zerolog.Ctx(r.Context()).Debug()
				if errors.Is(err, basicauth.ErrCredentialsUnavailable) {
					ev = zerolog.Ctx(r.Context()).Warn()
				}
				ev.Err(err).Str("reason", reason).Msg("authentication failed")

				writeError(w, r, http.StatusUnauthorized, msgAuthenticationFailed)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithAdmin(r.Context(), login)))
		})
	}
}
