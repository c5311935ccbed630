package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/feedback-insights/internal/domain"
	"github.com/heartmarshall/feedback-insights/internal/service/feedback"
)

// feedbackService defines the minimal interface needed by FeedbackHandler.
type feedbackService interface {
	GetOrCreateUser(ctx context.Context, username string) (*domain.User, error)
	CreateFeedback(ctx context.Context, input feedback.CreateFeedbackInput) (*domain.Feedback, error)
	ListFeedback(ctx context.Context, username string) ([]domain.Feedback, error)
	ListFeedbackAndInsights(ctx context.Context, username string) ([]domain.Feedback, error)
	GenerateInsight(ctx context.Context, feedbackID string) (*domain.Feedback, error)
}

// FeedbackHandler serves user, feedback and insight endpoints.
type FeedbackHandler struct {
	svc feedbackService
	log *slog.Logger
}

// NewFeedbackHandler creates a FeedbackHandler.
func NewFeedbackHandler(svc feedbackService, logger *slog.Logger) *FeedbackHandler {
	return &FeedbackHandler{svc: svc, log: logger.With("handler", "feedback")}
}

type createUserRequest struct {
	Username string `json:"username"`
}

type createFeedbackRequest struct {
	Username string `json:"username"`
	Title    string `json:"title"`
	Body     string `json:"body"`
}

// ListFeedback handles GET /feedback?username=.
func (h *FeedbackHandler) ListFeedback(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListFeedback(r.Context(), r.URL.Query().Get("username"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]feedbackResponse, len(list))
	for i := range list {
		resp[i] = toFeedbackResponse(&list[i])
	}
	writeJSON(w, http.StatusOK, resp)
}

// ListFeedbackAndInsights handles GET /feedback_and_insights?username=.
func (h *FeedbackHandler) ListFeedbackAndInsights(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListFeedbackAndInsights(r.Context(), r.URL.Query().Get("username"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]elementResponse, len(list))
	for i := range list {
		resp[i] = toElementResponse(&list[i])
	}
	writeJSON(w, http.StatusOK, resp)
}

// CreateUser handles POST /user.
func (h *FeedbackHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.svc.GetOrCreateUser(r.Context(), req.Username)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(*user))
}

// CreateFeedback handles POST /feedback.
func (h *FeedbackHandler) CreateFeedback(w http.ResponseWriter, r *http.Request) {
	var req createFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	f, err := h.svc.CreateFeedback(r.Context(), feedback.CreateFeedbackInput{
		Username: req.Username,
		Title:    req.Title,
		Body:     req.Body,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toFeedbackResponse(f))
}

// GenerateInsight handles POST /feedback/{id}/insight.
func (h *FeedbackHandler) GenerateInsight(w http.ResponseWriter, r *http.Request) {
	f, err := h.svc.GenerateInsight(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toElementResponse(f))
}
