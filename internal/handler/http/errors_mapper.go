package http

import (
	"errors"
	"net/http"

	"github.com/avkhamov/userhub/internal/service"
	"github.com/avkhamov/userhub/internal/store"
	"github.com/avkhamov/userhub/internal/utils"
	"github.com/avkhamov/userhub/internal/validators"
	"github.com/avkhamov/userhub/models"
)

var errorStatusMap = map[error]int{
	service.ErrAllFieldsRequired:      http.StatusBadRequest,
	service.ErrInvalidEmailFormat:     http.StatusBadRequest,
	service.ErrPasswordsDoNotMatch:    http.StatusBadRequest,
	service.ErrEmailPasswordRequired:  http.StatusBadRequest,
	service.ErrProfileFieldRequired:   http.StatusBadRequest,
	service.ErrNewPasswordsDoNotMatch: http.StatusBadRequest,
	service.ErrInvalidRole:            http.StatusBadRequest,

	validators.ErrPasswordTooShort:    http.StatusBadRequest,
	validators.ErrPasswordNoUppercase: http.StatusBadRequest,
	validators.ErrPasswordNoDigit:     http.StatusBadRequest,

	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrWrongOldPassword:        http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	service.ErrAccountInactive: http.StatusForbidden,

	service.ErrEmailAlreadyRegistered: http.StatusConflict,
	service.ErrEmailAlreadyInUse:      http.StatusConflict,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,

	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrEmptyToken:                 http.StatusUnauthorized,
	ErrNotAuthorized:              http.StatusUnauthorized,
	ErrAccessDenied:               http.StatusForbidden,
	ErrInvalidUserID:              http.StatusBadRequest,
	ErrInvalidJSONBody:            http.StatusBadRequest,
}

// statusAndMessageFromError resolves err to an HTTP status and the message
// surfaced to the client.
//
// Known sentinels are surfaced verbatim; anything unmatched is an unexpected
// collaborator failure and maps to 500 with a generic message so internal
// details never leak through the error body.
func statusAndMessageFromError(err error) (int, string) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, target.Error()
		}
	}
	return http.StatusInternalServerError, "internal server error"
}

// respondError writes the uniform `{message}` error body for err.
func respondError(w http.ResponseWriter, err error) {
	status, message := statusAndMessageFromError(err)
	utils.WriteJSON(w, models.ErrorResponse{Message: message}, status)
}
