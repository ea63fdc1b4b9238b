package builtin

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hijamacare/site-engine/internal/modules"
)

var marchNow = func() time.Time {
	return time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
}

func TestTextHighlight(t *testing.T) {
	h := TextHighlight()
	out, err := h.Render(context.Background(), "k1", map[string]any{
		"pretitle":  "Our Promise",
		"text":      "Healing in every session",
		"alignment": "left",
	})
	require.NoError(t, err)

	assert.Equal(t, "k1", out.Key)
	assert.Equal(t, TypeTextHighlight, out.Type)
	assert.Contains(t, out.HTML, `align-left`)
	assert.Contains(t, out.HTML, "Our Promise")
	assert.Contains(t, out.HTML, "Healing in every session")
}

func TestTextHighlightDefaultsToCenter(t *testing.T) {
	h := TextHighlight()
	out, err := h.Render(context.Background(), "k1", map[string]any{"text": "Quote"})
	require.NoError(t, err)
	assert.Contains(t, out.HTML, `align-center`)
	assert.NotContains(t, out.HTML, "pretitle")
}

func TestTextHighlightEscapesHTML(t *testing.T) {
	h := TextHighlight()
	out, err := h.Render(context.Background(), "k1", map[string]any{
		"text": `<script>alert("x")</script>`,
	})
	require.NoError(t, err)
	assert.NotContains(t, out.HTML, "<script>")
}

func TestContactFormFallbackReasons(t *testing.T) {
	h := ContactForm()
	out, err := h.Render(context.Background(), "k2", map[string]any{
		"title": "Get in Touch",
	})
	require.NoError(t, err)

	assert.Equal(t, TypeContactForm, out.Type)
	assert.Contains(t, out.HTML, "Get in Touch")
	for _, reason := range []string{"contact", "feedback", "referral"} {
		assert.Contains(t, out.HTML, `<option value="`+reason+`">`)
	}
}

func TestContactFormAuthoredReasons(t *testing.T) {
	h := ContactForm()
	out, err := h.Render(context.Background(), "k2", map[string]any{
		"reasonOptions": []string{"booking question", "other"},
	})
	require.NoError(t, err)
	assert.Contains(t, out.HTML, `<option value="booking question">`)
	assert.NotContains(t, out.HTML, `<option value="contact">`)
}

func TestAppointmentForm(t *testing.T) {
	h := AppointmentForm(marchNow)
	out, err := h.Render(context.Background(), "k3", map[string]any{
		"serviceTypes": []map[string]any{
			{"name": "Wet Cupping", "duration": 60, "price": "$90"},
		},
		"timeSlots": []string{"9:00 AM", "11:00 AM"},
		"locationInfo": map[string]any{
			"address": "12 Crescent Rd",
			"mapUrl":  "https://maps.example.com/clinic",
		},
		"paymentInfo": map[string]any{
			"depositRequired": true,
			"depositAmount":   "$20",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, TypeAppointmentForm, out.Type)

	// Authored title absent: the schema defaults apply.
	assert.Contains(t, out.HTML, "Book Your Hijama Appointment")
	assert.Contains(t, out.HTML, "Wet Cupping - 60 min - $90")

	// Window is tomorrow through thirty days out.
	assert.Contains(t, out.HTML, `min="2024-03-16"`)
	assert.Contains(t, out.HTML, `max="2024-04-14"`)

	// The remaining white days of March 2024.
	assert.Contains(t, out.HTML, "Sat, Mar 23")
	assert.Contains(t, out.HTML, "Sun, Mar 31")

	assert.Contains(t, out.HTML, "12 Crescent Rd")
	assert.Contains(t, out.HTML, "A deposit of <strong>$20</strong>")
}

func TestAppointmentFormPrepInstructions(t *testing.T) {
	h := AppointmentForm(marchNow)
	out, err := h.Render(context.Background(), "k3", map[string]any{
		"prepInstructions": map[string]any{
			"bringItems":    []string{"Water bottle"},
			"beforeSession": []string{"Fast for 3 hours"},
		},
	})
	require.NoError(t, err)
	assert.Contains(t, out.HTML, "Preparation Instructions")
	assert.Contains(t, out.HTML, "Water bottle")
	assert.Contains(t, out.HTML, "Fast for 3 hours")
}

func TestRegisterAll(t *testing.T) {
	r := modules.NewRegistry(nil, nil)
	RegisterAll(r, marchNow)

	for _, tag := range []string{TypeTextHighlight, TypeContactForm, TypeAppointmentForm} {
		assert.True(t, r.Known(tag), tag)
	}
}
