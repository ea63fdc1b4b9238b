package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/hijamacare/site-engine/internal/booking"
	"github.com/hijamacare/site-engine/internal/hijri"
	"github.com/hijamacare/site-engine/internal/httpx"
	"github.com/hijamacare/site-engine/pkg/logging"
)

// BookingHandler exposes the appointment form over HTTP. Each submission
// drives a fresh form instance through the state machine and pipeline; the
// form type itself carries the lifecycle for embedded (stateful) callers.
type BookingHandler struct {
	cfg      booking.Config
	pipeline *booking.Pipeline
	logger   *logging.Logger
	now      func() time.Time
}

// NewBookingHandler creates a new booking handler.
func NewBookingHandler(cfg booking.Config, pipeline *booking.Pipeline, logger *logging.Logger, now func() time.Time) *BookingHandler {
	if logger == nil {
		logger = logging.Default()
	}
	if now == nil {
		now = time.Now
	}
	return &BookingHandler{cfg: cfg.WithDefaults(), pipeline: pipeline, logger: logger, now: now}
}

type submitRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Service         string `json:"service"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	AdditionalNotes string `json:"additionalNotes"`
}

// OutcomeResponse reports a submission's terminal state and the configured
// user-facing message for it.
type OutcomeResponse struct {
	Outcome booking.Outcome   `json:"outcome"`
	Message string            `json:"message,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// Submit handles POST /booking/submit.
func (h *BookingHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	// The form lives for this request only; its outcome is returned
	// immediately, so the display auto-reset never applies.
	form := booking.NewForm(h.cfg, h.pipeline,
		booking.WithClock(h.now),
		booking.WithLogger(h.logger),
		booking.WithoutAutoReset(),
	)

	if err := h.applyFields(form, req); err != nil {
		if errors.Is(err, booking.ErrDateOutOfWindow) {
			window := form.Window()
			httpx.WriteJSON(w, http.StatusBadRequest, OutcomeResponse{
				Outcome: booking.OutcomeIdle,
				Message: "date outside booking window",
				Details: map[string]string{
					"min": window.Min.Format("2006-01-02"),
					"max": window.Max.Format("2006-01-02"),
				},
			})
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	outcome, err := form.Submit(r.Context())
	switch {
	case err == nil:
		httpx.WriteJSON(w, http.StatusOK, OutcomeResponse{
			Outcome: outcome,
			Message: h.cfg.SuccessMessage,
		})
	case outcome == booking.OutcomeError:
		// Pipeline failures collapse into the configured generic message;
		// the cause stays in logs and metrics.
		httpx.WriteJSON(w, http.StatusBadGateway, OutcomeResponse{
			Outcome: outcome,
			Message: h.cfg.ErrorMessage,
		})
	default:
		// Rejected before the pipeline ran: validation.
		httpx.WriteJSON(w, http.StatusBadRequest, OutcomeResponse{
			Outcome: outcome,
			Message: "invalid booking request",
			Details: httpx.ValidationDetails(err),
		})
	}
}

func (h *BookingHandler) applyFields(form *booking.Form, req submitRequest) error {
	if err := form.SetName(req.Name); err != nil {
		return err
	}
	if err := form.SetEmail(req.Email); err != nil {
		return err
	}
	if err := form.SetPhone(req.Phone); err != nil {
		return err
	}
	if req.Service != "" {
		if err := form.SetService(req.Service); err != nil {
			return err
		}
	}
	if err := form.SetDate(req.Date); err != nil {
		return err
	}
	if err := form.SetTime(req.Time); err != nil {
		return err
	}
	return form.SetNotes(req.AdditionalNotes)
}

// DateInfoResponse is the advisory panel for one date.
type DateInfoResponse struct {
	Date     string     `json:"date"`
	Hijri    hijri.Date `json:"hijri"`
	Display  string     `json:"display"`
	IsSunnah bool       `json:"isSunnah"`
	InWindow bool       `json:"inWindow"`
}

// DateInfo handles GET /booking/date-info?date=YYYY-MM-DD. The advisory
// answers for any supported date, booked or not.
func (h *BookingHandler) DateInfo(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("date")
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		http.Error(w, "invalid or missing date", http.StatusBadRequest)
		return
	}

	hd, err := hijri.FromTime(t)
	if err != nil {
		http.Error(w, "date outside supported range", http.StatusBadRequest)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, DateInfoResponse{
		Date:     raw,
		Hijri:    hd,
		Display:  hd.String(),
		IsSunnah: hijri.IsSunnahDay(t),
		InWindow: booking.WindowFrom(h.now()).Contains(raw),
	})
}

// SunnahDays handles GET /booking/sunnah-days?year=&month=. Defaults to
// the current month.
func (h *BookingHandler) SunnahDays(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	year, month := now.Year(), now.Month()

	if raw := r.URL.Query().Get("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "invalid year", http.StatusBadRequest)
			return
		}
		year = y
	}
	if raw := r.URL.Query().Get("month"); raw != "" {
		m, err := strconv.Atoi(raw)
		if err != nil || m < 1 || m > 12 {
			http.Error(w, "invalid month", http.StatusBadRequest)
			return
		}
		month = time.Month(m)
	}

	days := hijri.SunnahDaysInMonth(year, month)
	formatted := make([]string, 0, len(days))
	for _, d := range days {
		formatted = append(formatted, d.Format("2006-01-02"))
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"year":  year,
		"month": int(month),
		"days":  formatted,
	})
}

// serviceView is a ServiceType plus its display line.
type serviceView struct {
	booking.ServiceType
	Line string `json:"line"`
}

// FormConfig handles GET /booking/form: everything a client needs to
// render the appointment form.
func (h *BookingHandler) FormConfig(w http.ResponseWriter, _ *http.Request) {
	window := booking.WindowFrom(h.now())

	services := make([]serviceView, 0, len(h.cfg.ServiceTypes))
	for _, s := range h.cfg.ServiceTypes {
		services = append(services, serviceView{ServiceType: s, Line: s.Line()})
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"serviceTypes":   services,
		"defaultService": h.cfg.DefaultService(),
		"timeSlots":      h.cfg.TimeSlots,
		"window": map[string]string{
			"min": window.Min.Format("2006-01-02"),
			"max": window.Max.Format("2006-01-02"),
		},
		"messages": map[string]string{
			"success": h.cfg.SuccessMessage,
			"error":   h.cfg.ErrorMessage,
		},
	})
}
