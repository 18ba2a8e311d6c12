package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/phrazzld/classifieds-api/internal/api/shared"
	"github.com/phrazzld/classifieds-api/internal/platform/logger"
)

// MsgServerError is the body of every unexpected failure.
const MsgServerError = "server error"

// Recoverer turns a handler panic into a 500 with the standard JSON error
// body. http.ErrAbortHandler is re-raised so net/http can abort the response.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				// ALLOW-PANIC: net/http handles this sentinel itself
				panic(rec)
			}

			logger.FromContext(r.Context()).Error("recovered from handler panic",
				"panic", fmt.Sprint(rec),
				"path", r.URL.Path,
				"method", r.Method,
				"stack", string(debug.Stack()))

			if r.Header.Get("Connection") != "Upgrade" {
				shared.RespondWithError(w, r, http.StatusInternalServerError, MsgServerError)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
