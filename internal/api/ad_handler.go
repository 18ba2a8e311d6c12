package api

import (
	"net/http"

	"github.com/phrazzld/classifieds-api/internal/api/shared"
	"github.com/phrazzld/classifieds-api/internal/service"
)

// AdHandler handles the ad endpoints. Every route sits behind the auth gate.
type AdHandler struct {
	adService service.AdService
}

// NewAdHandler creates a new AdHandler.
func NewAdHandler(adService service.AdService) *AdHandler {
	return &AdHandler{adService: adService}
}

// CreateAd handles POST /ads.
func (h *AdHandler) CreateAd(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req CreateAdRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ad, err := h.adService.Create(r.Context(), userID, *req.Title, *req.Description)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, ad)
}

// GetAd handles GET /ads/{adID}. Any authenticated user may read any ad.
func (h *AdHandler) GetAd(w http.ResponseWriter, r *http.Request) {
	_, adID, ok := handleUserIDAndPathAdID(w, r)
	if !ok {
		return
	}

	ad, err := h.adService.Get(r.Context(), adID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ad)
}

// DeleteAd handles DELETE /ads/{adID}. Only the owner may delete.
func (h *AdHandler) DeleteAd(w http.ResponseWriter, r *http.Request) {
	userID, adID, ok := handleUserIDAndPathAdID(w, r)
	if !ok {
		return
	}

	if err := h.adService.Delete(r.Context(), userID, adID); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: MsgAdDeleted})
}
