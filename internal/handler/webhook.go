package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/coursecast/coursecast/internal/domain"
	"github.com/coursecast/coursecast/internal/entitlement"
	"github.com/coursecast/coursecast/internal/gateway"
	"github.com/coursecast/coursecast/internal/logger"
	"github.com/coursecast/coursecast/internal/settlement"
)

// WebhookHandler receives payment notifications from the gateway
type WebhookHandler struct {
	settlement  settlement.Service
	entitlement entitlement.Service
	gateway     gateway.Client
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(settlementSvc settlement.Service, entitlementSvc entitlement.Service, gatewayClient gateway.Client) *WebhookHandler {
	return &WebhookHandler{settlement: settlementSvc, entitlement: entitlementSvc, gateway: gatewayClient}
}

// HandlePaymentWebhook settles a verified payment notification.
// The gateway retries deliveries, so this endpoint answers 200 for both
// first-time settlements and redeliveries; returning an error here would
// only cause another retry of something already done.
// @Summary Payment gateway webhook
// @Description Verifies the gateway signature and settles the payment into the ledger
// @Tags payments
// @Accept json
// @Produce json
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/payments/webhook [post]
func (h *WebhookHandler) HandlePaymentWebhook(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	body, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgUnreadableBody)
		return
	}
	r.Body = io.NopCloser(bytes.NewReader(body))

	signature := r.Header.Get(gateway.SignatureHeader)
	if !h.gateway.VerifySignature(body, signature) {
		log.Warn("Webhook signature verification failed", "hasSignature", signature != "")
		respondError(w, http.StatusUnauthorized, ErrMsgInvalidSignature)
		return
	}

	var payment domain.PaymentEvent
	if err := json.Unmarshal(body, &payment); err != nil {
		log.Error("Failed to decode payment webhook", "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return
	}

	purchase, err := h.settlement.Settle(r.Context(), &payment)
	if err != nil {
		respondServiceError(w, r, ErrMsgSettlementFailed, err)
		return
	}

	// A cached denial for this pair is stale the moment the row lands
	h.entitlement.InvalidateUser(purchase.UserID, purchase.VideoID)

	respondJSON(w, http.StatusOK, DataResponse{Message: MsgSettlementAccepted, Data: purchase})
}

// ExternalPurchaseRequest reports a premium purchase confirmed on the
// creator's own checkout
type ExternalPurchaseRequest struct {
	VideoID   int    `json:"video_id" validate:"required,gt=0"`
	Reference string `json:"reference" validate:"required"`
}

// HandleExternalPurchase records a premium purchase settled outside the platform
// @Summary Record an external premium purchase
// @Tags payments
// @Accept json
// @Produce json
// @Success 201 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/payments/external [post]
func (h *WebhookHandler) HandleExternalPurchase(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r, w)
	if !ok {
		return
	}

	var req ExternalPurchaseRequest
	if err := DecodeAndValidateRequest(r, w, &req, "External purchase"); err != nil {
		return
	}

	purchase, err := h.settlement.RecordExternalPurchase(r.Context(), userID, req.VideoID, req.Reference)
	if err != nil {
		respondServiceError(w, r, ErrMsgExternalRecordFailed, err)
		return
	}

	h.entitlement.InvalidateUser(purchase.UserID, purchase.VideoID)

	respondJSON(w, http.StatusCreated, DataResponse{Message: MsgExternalRecorded, Data: purchase})
}
