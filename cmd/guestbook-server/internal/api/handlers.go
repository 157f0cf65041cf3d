// Package api provides HTTP handlers for the guestbook server REST API.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/coregx/guestbook"
	"github.com/coregx/guestbook/model"
)

// maxSubmitBodyBytes caps a submission body. The largest valid
// submission is about 1.5 KiB of field text.
const maxSubmitBodyBytes = 8 << 10

// Handler holds dependencies for API handlers.
type Handler struct {
	guestbook *guestbook.Guestbook
	logger    guestbook.Logger
}

// NewHandler creates a new API handler.
func NewHandler(gb *guestbook.Guestbook, logger guestbook.Logger) *Handler {
	return &Handler{
		guestbook: gb,
		logger:    logger,
	}
}

// SubmitRequest represents a contact form submission.
type SubmitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// MessageResponse is a stored message as shown in the message log.
type MessageResponse struct {
	Time    string `json:"time"` // RFC 3339, UTC, second precision
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// ListResponse is one page of the message log.
type ListResponse struct {
	Messages      []MessageResponse `json:"messages"`
	MaxResults    int               `json:"maxResults"`
	HasNextPage   bool              `json:"hasNextPage"`
	NextPageToken string            `json:"nextPageToken,omitempty"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message,omitempty"`
}

// SuccessResponse represents a success response.
type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// HandleMessages handles GET and POST /api/v1/messages
func (h *Handler) HandleMessages(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleList(w, r)
	case http.MethodPost:
		h.handleSubmit(w, r)
	default:
		h.respondError(w, http.StatusMethodNotAllowed, "Method not allowed", "", "")
	}
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxSubmitBodyBytes)

	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.respondError(w, http.StatusRequestEntityTooLarge, "Request body too large", "REQUEST_TOO_LARGE", "")
			return
		}
		h.respondError(w, http.StatusBadRequest, "Invalid JSON", "INVALID_JSON", "")
		return
	}

	msg, err := h.guestbook.Submit(r.Context(), guestbook.SubmitRequest{
		Name:     req.Name,
		Email:    req.Email,
		Contents: req.Message,
	})
	if err != nil {
		h.respondServiceError(w, err, "Failed to store message")
		return
	}

	h.respondSuccess(w, http.StatusCreated, toMessageResponse(msg), "Thank you for your message!")
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var maxResults int
	if raw := query.Get("max_results"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			h.respondError(w, http.StatusBadRequest, "max_results must be a non-negative integer", guestbook.ErrCodeValidation, "max_results")
			return
		}
		maxResults = n
	}

	page, err := h.guestbook.Browse(r.Context(), guestbook.BrowseRequest{
		MaxResults: maxResults,
		PageToken:  query.Get("page_token"),
	})
	if err != nil {
		h.respondServiceError(w, err, "Failed to list messages")
		return
	}

	resp := ListResponse{
		Messages:      make([]MessageResponse, 0, len(page.Messages)),
		MaxResults:    page.MaxResults,
		HasNextPage:   page.HasNextPage,
		NextPageToken: page.NextPageToken,
	}
	for _, msg := range page.Messages {
		resp.Messages = append(resp.Messages, toMessageResponse(msg))
	}

	h.respondSuccess(w, http.StatusOK, resp, "")
}

// HandleHealth handles GET /api/v1/health
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.respondError(w, http.StatusMethodNotAllowed, "Method not allowed", "", "")
		return
	}

	health := map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"version":   "0.1.0",
	}

	h.respondSuccess(w, http.StatusOK, health, "")
}

func toMessageResponse(msg model.Message) MessageResponse {
	return MessageResponse{
		Time:    msg.Timestamp().UTC().Format(time.RFC3339),
		Name:    msg.Name().String(),
		Email:   msg.Email().String(),
		Message: msg.Contents().String(),
	}
}

// respondServiceError maps validation failures to 400 and everything else to 500.
func (h *Handler) respondServiceError(w http.ResponseWriter, err error, message string) {
	var verr *model.ValidationError
	if guestbook.IsValidation(err) && errors.As(err, &verr) {
		h.respondError(w, http.StatusBadRequest, verr.Error(), guestbook.ErrCodeValidation, verr.Field)
		return
	}

	h.logger.Errorf("%s: %v", message, err)
	h.respondError(w, http.StatusInternalServerError, message, "INTERNAL_ERROR", "")
}

// respondError sends an error response.
func (h *Handler) respondError(w http.ResponseWriter, status int, message, code, field string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error:   message,
		Code:    code,
		Field:   field,
		Message: message,
	})
}

// respondSuccess sends a success response.
func (h *Handler) respondSuccess(w http.ResponseWriter, status int, data interface{}, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(SuccessResponse{
		Success: true,
		Data:    data,
		Message: message,
	})
}
