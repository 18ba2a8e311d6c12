package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/classifieds-api/internal/api/shared"
	"github.com/phrazzld/classifieds-api/internal/platform/logger"
)

// AdIDParam is the chi URL parameter holding the ad ID.
const AdIDParam = "adID"

var errMissingUserID = errors.New("user id missing from request context")

// decodeAndValidate decodes the body into req and checks field presence,
// writing the 400 response itself on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if err := shared.DecodeJSON(w, r, req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgInvalidJSON, err)
		return false
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgFillAllFields, err)
		return false
	}
	return true
}

// getPathAdID parses the ad ID path parameter. The route pattern already
// guarantees digits, so the only failure left is int64 overflow.
func getPathAdID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, AdIDParam), 10, 64)
}

// requireUserID returns the authenticated caller, writing a 401 when the
// auth gate did not run.
func requireUserID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := shared.GetUserID(r.Context())
	if !ok {
		logger.FromContext(r.Context()).Warn("handler reached without authenticated user")
		shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, MsgAuthorizationNeeded, errMissingUserID)
		return 0, false
	}
	return userID, true
}

// handleUserIDAndPathAdID combines requireUserID and getPathAdID.
func handleUserIDAndPathAdID(w http.ResponseWriter, r *http.Request) (int64, int64, bool) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return 0, 0, false
	}

	adID, err := getPathAdID(r)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgInvalidAdID, err)
		return 0, 0, false
	}
	return userID, adID, true
}
