package handler

import (
	"net/http"

	"github.com/coursecast/coursecast/internal/earnings"
	"github.com/coursecast/coursecast/internal/royalty"
)

// EarningsHandler serves the creator earnings surface
type EarningsHandler struct {
	earnings earnings.Service
	royalty  royalty.Service
}

// NewEarningsHandler creates a new earnings handler
func NewEarningsHandler(earningsSvc earnings.Service, royaltySvc royalty.Service) *EarningsHandler {
	return &EarningsHandler{earnings: earningsSvc, royalty: royaltySvc}
}

// EarningsResponse carries a creator's lifetime sale earnings
type EarningsResponse struct {
	CreatorID     string `json:"creator_id"`
	TotalEarnings int64  `json:"total_earnings"`
}

// HandleGetEarnings returns the caller's lifetime sale earnings from the ledger
// @Summary Get own total earnings
// @Tags earnings
// @Produce json
// @Success 200 {object} EarningsResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/creator/earnings [get]
func (h *EarningsHandler) HandleGetEarnings(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r, w)
	if !ok {
		return
	}

	total, err := h.earnings.TotalEarnings(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetEarningsFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, EarningsResponse{CreatorID: userID, TotalEarnings: total})
}

// HandleGetCreatorStats returns the full earnings breakdown: per-video,
// per-month and royalty totals
// @Summary Get own earnings breakdown
// @Tags earnings
// @Produce json
// @Success 200 {object} earnings.CreatorStats
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/creator/stats [get]
func (h *EarningsHandler) HandleGetCreatorStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r, w)
	if !ok {
		return
	}

	stats, err := h.earnings.GetCreatorStats(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetStatsFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, stats)
}

// HandleGetRoyalties returns the caller's streaming royalty history
// @Summary Get own royalty history
// @Tags earnings
// @Produce json
// @Success 200 {array} domain.RoyaltyPeriod
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/creator/royalties [get]
func (h *EarningsHandler) HandleGetRoyalties(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r, w)
	if !ok {
		return
	}

	periods, err := h.royalty.GetCreatorRoyalties(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetRoyaltiesFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, periods)
}
