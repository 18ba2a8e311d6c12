package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/classifieds-api/internal/api/middleware"
	"github.com/phrazzld/classifieds-api/internal/api/shared"
	"github.com/phrazzld/classifieds-api/internal/domain"
	"github.com/phrazzld/classifieds-api/internal/service"
	"github.com/phrazzld/classifieds-api/internal/service/auth"
	"github.com/phrazzld/classifieds-api/internal/store"
)

// Client-facing messages.
const (
	MsgInvalidJSON         = "invalid json"
	MsgFillAllFields       = "fill all fields"
	MsgUserExists          = "user already exists"
	MsgErrorCreatingUser   = "error creating user"
	MsgPasswordTooLong     = "password too long"
	MsgEmailTooLong        = "email must be at most 120 characters"
	MsgTitleTooLong        = "title must be at most 100 characters"
	MsgInvalidCredentials  = "invalid credentials"
	MsgInvalidAdID         = "invalid ad id"
	MsgAdNotFound          = "ad not found"
	MsgAdNotOwned          = "not permitted to delete an ad you do not own"
	MsgServerError         = middleware.MsgServerError
	MsgUserRegistered      = "user registered successfully"
	MsgAdDeleted           = "ad deleted successfully"
	MsgAuthorizationNeeded = middleware.MsgAuthorizationRequired
)

// MapErrorToStatusCode maps internal errors to HTTP status codes. Unknown
// errors map to 500 so internal failures never masquerade as client errors.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized

	case errors.Is(err, service.ErrNotOwned):
		return http.StatusForbidden

	case errors.Is(err, store.ErrAdNotFound):
		return http.StatusNotFound

	case errors.Is(err, service.ErrUserExists),
		errors.Is(err, store.ErrEmailExists),
		errors.Is(err, service.ErrPasswordTooLong),
		errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the client-facing message for err. It never
// includes the error text itself.
func GetSafeErrorMessage(err error) string {
	switch {
	case err == nil:
		return MsgServerError
	case errors.Is(err, auth.ErrInvalidToken):
		return middleware.MsgInvalidToken
	case errors.Is(err, service.ErrInvalidCredentials):
		return MsgInvalidCredentials
	case errors.Is(err, service.ErrAdNotOwned):
		return MsgAdNotOwned
	case errors.Is(err, store.ErrAdNotFound):
		return MsgAdNotFound
	case errors.Is(err, service.ErrUserExists):
		return MsgUserExists
	case errors.Is(err, store.ErrEmailExists):
		// A concurrent registration took the email after the existence check.
		return MsgErrorCreatingUser
	case errors.Is(err, service.ErrPasswordTooLong):
		return MsgPasswordTooLong
	case errors.Is(err, domain.ErrEmailTooLong):
		return MsgEmailTooLong
	case errors.Is(err, domain.ErrTitleTooLong):
		return MsgTitleTooLong
	case errors.Is(err, domain.ErrValidation):
		return MsgFillAllFields
	default:
		return MsgServerError
	}
}

// HandleAPIError writes the status and message for err and logs the
// redacted detail.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
