package handler

import (
	"net/http"

	"github.com/coursecast/coursecast/internal/subscription"
)

// SubscriptionHandler serves the streaming subscription endpoints
type SubscriptionHandler struct {
	subscription subscription.Service
}

// NewSubscriptionHandler creates a new subscription handler
func NewSubscriptionHandler(subscriptionSvc subscription.Service) *SubscriptionHandler {
	return &SubscriptionHandler{subscription: subscriptionSvc}
}

// HandleSubscribe activates the caller's streaming subscription
// @Summary Activate streaming subscription
// @Description Starts the streaming subscription with a one-month trial
// @Tags subscriptions
// @Produce json
// @Success 200 {object} DataResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/subscribe/streaming [post]
func (h *SubscriptionHandler) HandleSubscribe(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r, w)
	if !ok {
		return
	}

	user, err := h.subscription.Subscribe(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, ErrMsgSubscribeFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Message: MsgSubscriptionActive, Data: user})
}

// HandleUnsubscribe cancels the caller's streaming subscription
// @Summary Cancel streaming subscription
// @Tags subscriptions
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/subscribe/streaming [delete]
func (h *SubscriptionHandler) HandleUnsubscribe(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r, w)
	if !ok {
		return
	}

	if err := h.subscription.Cancel(r.Context(), userID); err != nil {
		respondServiceError(w, r, ErrMsgUnsubscribeFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgSubscriptionCanceled})
}
