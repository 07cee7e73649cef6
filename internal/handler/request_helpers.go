package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/coursecast/coursecast/internal/logger"
)

// HeaderUserID carries the caller identity set by the authentication
// collaborator in front of this service. This service never
// authenticates; it trusts the header behind the API key boundary.
const HeaderUserID = "X-User-ID"

// DecodeAndValidateRequest decodes a JSON request body, validates it, and
// returns appropriate errors. If it returns an error the HTTP response
// has already been written and the handler should return.
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Error(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		http.Error(w, ErrMsgInvalidRequest, http.StatusBadRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		validationErrs := FormatValidationError(err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: validationErrs,
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// GetUserID extracts the caller identity from the identity header.
// If the header is missing, an error response has already been written
// and the handler should return.
func GetUserID(r *http.Request, w http.ResponseWriter) (string, bool) {
	userID := r.Header.Get(HeaderUserID)
	if userID == "" {
		logger.FromContext(r.Context()).Warn("Request without identity header", "path", r.URL.Path)
		respondError(w, http.StatusUnauthorized, ErrMsgMissingIdentity)
		return "", false
	}
	return userID, true
}

// URLParamInt parses a chi URL parameter as a positive integer.
// If parsing fails, an error response has already been written.
func URLParamInt(r *http.Request, w http.ResponseWriter, paramName, errMsg string) (int, bool) {
	value, err := strconv.Atoi(chi.URLParam(r, paramName))
	if err != nil || value <= 0 {
		respondError(w, http.StatusBadRequest, errMsg)
		return 0, false
	}
	return value, true
}

// GetQueryParam retrieves a required query parameter. If the parameter
// is missing, an error response has already been written.
func GetQueryParam(r *http.Request, w http.ResponseWriter, paramName string) (string, bool) {
	log := logger.FromContext(r.Context())
	value := r.URL.Query().Get(paramName)
	if value == "" {
		log.Warn(fmt.Sprintf("Missing %s query parameter", paramName))
		http.Error(w, fmt.Sprintf(ErrMsgMissingQueryParam, paramName), http.StatusBadRequest)
		return "", false
	}
	return value, true
}

// GetLimitParam parses the optional limit query parameter, falling back
// to zero so services apply their own defaults.
func GetLimitParam(r *http.Request, w http.ResponseWriter) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
		return 0, false
	}
	return limit, true
}
