package http

import (
	"net/http"

	"github.com/avkhamov/userhub/internal/logger"
	"github.com/avkhamov/userhub/internal/utils"
	"github.com/avkhamov/userhub/models"
)

// requireRole returns a composable middleware gate that rejects requests
// whose authenticated identity does not hold one of the given roles.
//
// It must be chained after [Handler.auth]: a request that reaches it without
// an identity in the context is rejected with 401, a request with the wrong
// role with 403. The payload is never inspected — the gate fails before the
// business handler runs.
func (h *Handler) requireRole(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			user, ok := utils.GetAuthUserFromContext(r.Context())
			if !ok {
				log.Err(ErrNotAuthorized).Msg("role gate reached without identity")
				respondError(w, ErrNotAuthorized)
				return
			}

			for _, role := range roles {
				if user.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			log.Error().
				Int64("id", user.UserID).
				Str("role", string(user.Role)).
				Msg("insufficient role")
			respondError(w, ErrAccessDenied)
		})
	}
}
