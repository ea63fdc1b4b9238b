package httpx

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	var p payload
	err := DecodeJSON(strings.NewReader(`{"name":"hijama"}`), &p)
	require.NoError(t, err)
	assert.Equal(t, "hijama", p.Name)

	assert.Error(t, DecodeJSON(strings.NewReader(`{"name":"a","extra":true}`), &payload{}),
		"unknown fields rejected")
	assert.Error(t, DecodeJSON(strings.NewReader(`{"name":"a"}{"name":"b"}`), &payload{}),
		"trailing objects rejected")
	assert.Error(t, DecodeJSON(strings.NewReader(`{`), &payload{}))
}

func TestValidationDetails(t *testing.T) {
	type form struct {
		Email string `validate:"required,email"`
	}

	v := validator.New()
	err := v.Struct(form{Email: "nope"})
	require.Error(t, err)

	details := ValidationDetails(err)
	assert.Equal(t, map[string]string{"Email": "email"}, details)

	assert.Nil(t, ValidationDetails(nil))
	assert.Nil(t, ValidationDetails(errors.New("not a validator error")))
}

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()
	WriteJSON(w, 201, map[string]string{"status": "ok"})

	assert.Equal(t, 201, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
