package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/phrazzld/classifieds-api/internal/api/shared"
	"github.com/phrazzld/classifieds-api/internal/service/auth"
)

// Messages returned by the auth gate.
const (
	MsgAuthorizationRequired = "authorization required"
	MsgInvalidToken          = "invalid token"
)

// PublicPaths are served without a token. Matching is exact string equality
// on the request path, for every method.
var PublicPaths = []string{"/health", "/register", "/login"}

const bearerPrefix = "Bearer "

// AuthMiddleware provides JWT authentication for routes.
type AuthMiddleware struct {
	jwtService auth.JWTService
	public     map[string]struct{}
}

// NewAuthMiddleware creates a new AuthMiddleware that lets PublicPaths through.
func NewAuthMiddleware(jwtService auth.JWTService) *AuthMiddleware {
	public := make(map[string]struct{}, len(PublicPaths))
	for _, p := range PublicPaths {
		public[p] = struct{}{}
	}
	return &AuthMiddleware{
		jwtService: jwtService,
		public:     public,
	}
}

// Authenticate validates the bearer token on every non-public request and
// stores the caller's user ID in the request context.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := m.public[r.URL.Path]; ok {
			next.ServeHTTP(w, r)
			return
		}

		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, MsgAuthorizationRequired)
			return
		}

		// The token is the first space-separated segment after the scheme.
		token := strings.Split(authHeader, " ")[1]
		if token == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, MsgInvalidToken)
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), token)
		if err != nil {
			shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, MsgInvalidToken, err)
			return
		}

		userID, err := strconv.ParseInt(claims.Identity, 10, 64)
		if err != nil || userID <= 0 {
			// Correctly signed but not issued by login: logged at WARN.
			shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, MsgInvalidToken,
				fmt.Errorf("%w: identity %q is not a user id", auth.ErrInvalidToken, claims.Identity),
				shared.WithElevatedLogLevel())
			return
		}

		next.ServeHTTP(w, r.WithContext(shared.WithUserID(r.Context(), userID)))
	})
}
