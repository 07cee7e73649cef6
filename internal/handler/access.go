package handler

import (
	"net/http"

	"github.com/coursecast/coursecast/internal/entitlement"
)

// AccessHandler serves entitlement lookups
type AccessHandler struct {
	entitlement entitlement.Service
}

// NewAccessHandler creates a new access handler
func NewAccessHandler(entitlementSvc entitlement.Service) *AccessHandler {
	return &AccessHandler{entitlement: entitlementSvc}
}

// AccessResponse reports an entitlement decision
type AccessResponse struct {
	VideoID   int  `json:"video_id"`
	HasAccess bool `json:"has_access"`
}

// PurchasedResponse reports whether a ledger row exists
type PurchasedResponse struct {
	VideoID   int  `json:"video_id"`
	Purchased bool `json:"purchased"`
}

// HandleHasAccess reports whether the caller may watch a video right now
// @Summary Check video access
// @Tags entitlements
// @Produce json
// @Param id path int true "Video ID"
// @Success 200 {object} AccessResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/videos/{id}/access [get]
func (h *AccessHandler) HandleHasAccess(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r, w)
	if !ok {
		return
	}
	videoID, ok := URLParamInt(r, w, "id", ErrMsgInvalidVideoID)
	if !ok {
		return
	}

	allowed, err := h.entitlement.HasAccess(r.Context(), userID, videoID)
	if err != nil {
		respondServiceError(w, r, ErrMsgAccessCheckFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, AccessResponse{VideoID: videoID, HasAccess: allowed})
}

// HandleAlreadyPurchased reports whether the caller already owns the video
// @Summary Check purchase state
// @Tags entitlements
// @Produce json
// @Param id path int true "Video ID"
// @Success 200 {object} PurchasedResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/videos/{id}/purchased [get]
func (h *AccessHandler) HandleAlreadyPurchased(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r, w)
	if !ok {
		return
	}
	videoID, ok := URLParamInt(r, w, "id", ErrMsgInvalidVideoID)
	if !ok {
		return
	}

	purchased, err := h.entitlement.AlreadyPurchased(r.Context(), userID, videoID)
	if err != nil {
		respondServiceError(w, r, ErrMsgAccessCheckFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, PurchasedResponse{VideoID: videoID, Purchased: purchased})
}
