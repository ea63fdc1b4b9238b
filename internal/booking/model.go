package booking

import (
	"fmt"
	"time"
)

// ServiceType is one bookable service, supplied by configuration and
// immutable per render. Name is unique within a form.
type ServiceType struct {
	Name            string `json:"name"`
	DurationMinutes int    `json:"duration"`
	Price           string `json:"price,omitempty"`
}

// Line formats the service for display, e.g. "Detox Session - 90 min - $120".
func (s ServiceType) Line() string {
	if s.Price != "" {
		return fmt.Sprintf("%s - %d min - %s", s.Name, s.DurationMinutes, s.Price)
	}
	return fmt.Sprintf("%s - %d min", s.Name, s.DurationMinutes)
}

// AppointmentRequest is the mutable form state for one booking attempt.
// Date is a calendar date in YYYY-MM-DD form (or empty) and is constrained
// to the rolling booking window at the interface boundary, not post hoc.
type AppointmentRequest struct {
	Name              string `json:"name" validate:"required"`
	Email             string `json:"email" validate:"required,email"`
	Phone             string `json:"phone" validate:"required,phone"`
	Service           string `json:"service" validate:"required"`
	Date              string `json:"date" validate:"required,date"`
	Time              string `json:"time" validate:"required"`
	AdditionalNotes   string `json:"additionalNotes"`
	VerificationToken string `json:"gCaptchaResponse,omitempty"`
}

// ContactRequest is the simpler contact-form submission, sharing the same
// pipeline mechanics as bookings.
type ContactRequest struct {
	Name              string `json:"name" validate:"required"`
	Email             string `json:"email" validate:"required,email"`
	Reason            string `json:"reason"`
	Message           string `json:"message" validate:"required"`
	VerificationToken string `json:"gCaptchaResponse,omitempty"`
}

// Config is the recognized configuration consumed by a booking form and
// its pipeline. ServiceTypes and TimeSlots keep their authored order; the
// first service type is the form's default.
type Config struct {
	Endpoint            string
	ShowVerification    bool
	VerificationSiteKey string
	ServiceTypes        []ServiceType
	TimeSlots           []string
	SuccessMessage      string
	ErrorMessage        string
	ResetDelay          time.Duration
}

// Messages carried over from the authored defaults.
const (
	DefaultSuccessMessage = "Thank you for booking! We'll confirm your appointment once the deposit is received."
	DefaultErrorMessage   = "Something went wrong. Please try again or call us directly."
)

// WithDefaults fills unset optional values.
func (c Config) WithDefaults() Config {
	if c.SuccessMessage == "" {
		c.SuccessMessage = DefaultSuccessMessage
	}
	if c.ErrorMessage == "" {
		c.ErrorMessage = DefaultErrorMessage
	}
	if c.ResetDelay <= 0 {
		c.ResetDelay = 5 * time.Second
	}
	return c
}

// DefaultService returns the first configured service name, or "".
func (c Config) DefaultService() string {
	if len(c.ServiceTypes) == 0 {
		return ""
	}
	return c.ServiceTypes[0].Name
}

// FormatLongDate rewrites a YYYY-MM-DD date into its long display form,
// e.g. "Tuesday, January 1, 2030". This is the only mutation the pipeline
// applies to the payload beyond field copying.
func FormatLongDate(date string) (string, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", date, err)
	}
	return t.Format("Monday, January 2, 2006"), nil
}
