package handlers

import (
	"net/http"

	"github.com/hijamacare/site-engine/internal/booking"
	"github.com/hijamacare/site-engine/internal/httpx"
	"github.com/hijamacare/site-engine/pkg/logging"
)

// ContactHandler relays contact-form messages through the booking pipeline.
type ContactHandler struct {
	cfg      booking.Config
	pipeline *booking.Pipeline
	logger   *logging.Logger
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(cfg booking.Config, pipeline *booking.Pipeline, logger *logging.Logger) *ContactHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &ContactHandler{cfg: cfg.WithDefaults(), pipeline: pipeline, logger: logger}
}

// Submit handles POST /contact/submit.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req booking.ContactRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	// Tokens are minted server-side; ignore any supplied by the client.
	req.VerificationToken = ""

	if err := req.Validate(); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, OutcomeResponse{
			Outcome: booking.OutcomeIdle,
			Message: "invalid contact request",
			Details: httpx.ValidationDetails(err),
		})
		return
	}

	if err := h.pipeline.SubmitContact(r.Context(), req); err != nil {
		h.logger.Error("contact submission failed", "cause", booking.FailureCause(err), "error", err)
		httpx.WriteJSON(w, http.StatusBadGateway, OutcomeResponse{
			Outcome: booking.OutcomeError,
			Message: h.cfg.ErrorMessage,
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, OutcomeResponse{
		Outcome: booking.OutcomeSuccess,
		Message: h.cfg.SuccessMessage,
	})
}
