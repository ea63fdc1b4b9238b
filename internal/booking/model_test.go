package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatLongDate(t *testing.T) {
	got, err := FormatLongDate("2030-01-01")
	require.NoError(t, err)
	assert.Equal(t, "Tuesday, January 1, 2030", got)

	got, err = FormatLongDate("2024-03-11")
	require.NoError(t, err)
	assert.Equal(t, "Monday, March 11, 2024", got)

	_, err = FormatLongDate("01/02/2030")
	assert.Error(t, err)
}

func TestServiceTypeLine(t *testing.T) {
	s := ServiceType{Name: "Detox Session", DurationMinutes: 90, Price: "$120"}
	assert.Equal(t, "Detox Session - 90 min - $120", s.Line())

	noPrice := ServiceType{Name: "Consultation", DurationMinutes: 30}
	assert.Equal(t, "Consultation - 30 min", noPrice.Line())
}

func TestConfigDefaults(t *testing.T) {
	cfg := Config{}.WithDefaults()
	assert.Equal(t, DefaultSuccessMessage, cfg.SuccessMessage)
	assert.Equal(t, DefaultErrorMessage, cfg.ErrorMessage)
	assert.Positive(t, cfg.ResetDelay)

	custom := Config{SuccessMessage: "ok", ErrorMessage: "bad"}.WithDefaults()
	assert.Equal(t, "ok", custom.SuccessMessage)
	assert.Equal(t, "bad", custom.ErrorMessage)
}

func TestConfigDefaultService(t *testing.T) {
	cfg := Config{ServiceTypes: []ServiceType{
		{Name: "General Hijama Session", DurationMinutes: 60},
		{Name: "Targeted Pain Relief", DurationMinutes: 45},
	}}
	assert.Equal(t, "General Hijama Session", cfg.DefaultService())
	assert.Empty(t, Config{}.DefaultService())
}

func validRequest() AppointmentRequest {
	return AppointmentRequest{
		Name:    "Amina Yusuf",
		Email:   "amina@example.com",
		Phone:   "+15551234567",
		Service: "General Hijama Session",
		Date:    "2030-01-15",
		Time:    "9:00 AM",
	}
}

func TestAppointmentRequestValidate(t *testing.T) {
	req := validRequest()
	assert.NoError(t, req.Validate())

	tests := []struct {
		name   string
		mutate func(*AppointmentRequest)
	}{
		{"missing name", func(r *AppointmentRequest) { r.Name = "" }},
		{"bad email", func(r *AppointmentRequest) { r.Email = "not-an-email" }},
		{"bad phone", func(r *AppointmentRequest) { r.Phone = "call me" }},
		{"missing service", func(r *AppointmentRequest) { r.Service = "" }},
		{"bad date", func(r *AppointmentRequest) { r.Date = "Jan 15" }},
		{"missing time", func(r *AppointmentRequest) { r.Time = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			assert.Error(t, req.Validate())
		})
	}
}

func TestContactRequestValidate(t *testing.T) {
	msg := ContactRequest{
		Name:    "Idris Khan",
		Email:   "idris@example.com",
		Reason:  "feedback",
		Message: "JazakAllah khair for the session.",
	}
	assert.NoError(t, msg.Validate())

	msg.Message = ""
	assert.Error(t, msg.Validate())
}
