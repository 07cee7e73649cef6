package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/coursecast/coursecast/internal/catalog"
	"github.com/coursecast/coursecast/internal/domain"
	"github.com/coursecast/coursecast/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// bufferPool amortizes allocations during JSON encoding
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// respondJSON sends a JSON response with the given status code and payload.
// The payload is encoded into a pooled buffer first so an encoding failure
// never produces a half-written body.
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and writes the mapped
// client-safe message
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	logger.FromContext(r.Context()).Error(opName, "error", err)
	status, userMsg := mapServiceErrorToUserMessage(err)
	respondError(w, status, userMsg)
}

// User-facing error messages derived from domain errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgUserNotFoundError     = "User not found"
	ErrMsgVideoNotFoundError    = "Video not found"
	ErrMsgCategoryNotFoundErr   = "Category not found"
	ErrMsgVideoUnpublishedError = "That course is not published"
	ErrMsgAlreadyPurchasedError = "You already own this course"
	ErrMsgNotPlatformError      = "This course is not sold through the platform"
	ErrMsgPriceNotSetError      = "This course has no price yet"
	ErrMsgNotEntitledError      = "You do not have access to this course"
	ErrMsgNotOwnerError         = "You do not own this video"
	ErrMsgCommentNotFoundError  = "Comment not found"
	ErrMsgAlreadyFavoritedErr   = "Already in your favorites"
	ErrMsgTierUnknownError      = "Unknown monetization tier"
	ErrMsgInvalidInputError     = "Invalid request. Please check your inputs."
)

// mapServiceErrorToUserMessage maps domain errors to client-safe HTTP
// status codes and messages.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ErrMsgUserNotFoundError
	case errors.Is(err, domain.ErrVideoNotFound):
		return http.StatusNotFound, ErrMsgVideoNotFoundError
	case errors.Is(err, domain.ErrCategoryNotFound):
		return http.StatusNotFound, ErrMsgCategoryNotFoundErr
	case errors.Is(err, domain.ErrCommentNotFound):
		return http.StatusNotFound, ErrMsgCommentNotFoundError
	case errors.Is(err, domain.ErrVideoUnpublished):
		return http.StatusConflict, ErrMsgVideoUnpublishedError
	case errors.Is(err, domain.ErrAlreadyPurchased):
		return http.StatusConflict, ErrMsgAlreadyPurchasedError
	case errors.Is(err, domain.ErrAlreadyFavorited):
		return http.StatusConflict, ErrMsgAlreadyFavoritedErr
	case errors.Is(err, domain.ErrNotPlatformSettled):
		return http.StatusUnprocessableEntity, ErrMsgNotPlatformError
	case errors.Is(err, domain.ErrPriceNotSet):
		return http.StatusUnprocessableEntity, ErrMsgPriceNotSetError
	case errors.Is(err, domain.ErrTierUnknown):
		return http.StatusUnprocessableEntity, ErrMsgTierUnknownError
	case errors.Is(err, domain.ErrNotEntitled):
		return http.StatusForbidden, ErrMsgNotEntitledError
	case errors.Is(err, catalog.ErrNotOwner):
		return http.StatusForbidden, ErrMsgNotOwnerError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
