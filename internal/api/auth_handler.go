package api

import (
	"net/http"
	"strconv"

	"github.com/phrazzld/classifieds-api/internal/api/shared"
	"github.com/phrazzld/classifieds-api/internal/platform/logger"
	"github.com/phrazzld/classifieds-api/internal/service"
	"github.com/phrazzld/classifieds-api/internal/service/auth"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	userService service.UserService
	jwtService  auth.JWTService
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(userService service.UserService, jwtService auth.JWTService) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		jwtService:  jwtService,
	}
}

// Register handles POST /register. No token is issued; clients log in next.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.userService.Register(r.Context(), *req.Email, *req.Password)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	logger.FromContext(r.Context()).Info("user registered", "user_id", user.ID)
	shared.RespondWithJSON(w, r, http.StatusCreated, MessageResponse{Message: MsgUserRegistered})
}

// Login handles POST /login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.userService.Authenticate(r.Context(), *req.Email, *req.Password)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), strconv.FormatInt(user.ID, 10))
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, MsgServerError, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{AccessToken: token})
}
