package handler

import (
	"net/http"

	"github.com/coursecast/coursecast/internal/logger"
	"github.com/coursecast/coursecast/internal/repository"
	"github.com/coursecast/coursecast/internal/settlement"
)

// PurchaseHandler serves the purchase initiation and history endpoints
type PurchaseHandler struct {
	settlement settlement.Service
	ledger     repository.Ledger
}

// NewPurchaseHandler creates a new purchase handler
func NewPurchaseHandler(settlementSvc settlement.Service, ledger repository.Ledger) *PurchaseHandler {
	return &PurchaseHandler{settlement: settlementSvc, ledger: ledger}
}

// HandleInitiatePurchase opens a payment intent for a basic-tier course
// @Summary Initiate a course purchase
// @Description Verifies the course is purchasable and opens a payment intent with the gateway
// @Tags purchases
// @Produce json
// @Param videoID path int true "Video ID"
// @Success 201 {object} domain.PaymentIntent
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/courses/{videoID}/purchase [post]
func (h *PurchaseHandler) HandleInitiatePurchase(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r, w)
	if !ok {
		return
	}
	videoID, ok := URLParamInt(r, w, "videoID", ErrMsgInvalidVideoID)
	if !ok {
		return
	}

	intent, err := h.settlement.InitiatePurchase(r.Context(), userID, videoID)
	if err != nil {
		respondServiceError(w, r, ErrMsgInitiatePurchaseFailed, err)
		return
	}

	logger.FromContext(r.Context()).Info("Purchase initiated",
		"userID", userID, "videoID", videoID, "paymentRef", intent.PaymentRef)

	respondJSON(w, http.StatusCreated, intent)
}

// HandleGetMyPurchases lists the caller's purchase history
// @Summary List own purchases
// @Tags purchases
// @Produce json
// @Success 200 {array} domain.Purchase
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/my-purchases [get]
func (h *PurchaseHandler) HandleGetMyPurchases(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r, w)
	if !ok {
		return
	}

	purchases, err := h.ledger.GetPurchasesByUser(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetPurchasesFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, purchases)
}
