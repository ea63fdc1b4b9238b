package recaptcha

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RequiresSiteKey(t *testing.T) {
	_, err := New(Config{BaseURL: "https://verify.example.com"})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestNew_RequiresBaseURL(t *testing.T) {
	_, err := New(Config{SiteKey: "key"})
	assert.Error(t, err)
}

func TestToken_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/tokens", r.URL.Path)

		var req tokenRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "site-key", req.SiteKey)
		assert.Equal(t, "submit", req.Action)

		json.NewEncoder(w).Encode(tokenResponse{Token: "tok-123"})
	}))
	defer srv.Close()

	client, err := New(Config{BaseURL: srv.URL, SiteKey: "site-key"})
	require.NoError(t, err)

	token, err := client.Token(context.Background(), "submit")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)
}

func TestToken_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	client, err := New(Config{BaseURL: srv.URL, SiteKey: "site-key"})
	require.NoError(t, err)

	_, err = client.Token(context.Background(), "submit")
	assert.Error(t, err)
}

func TestToken_CollaboratorError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(tokenResponse{Error: "score too low"})
	}))
	defer srv.Close()

	client, err := New(Config{BaseURL: srv.URL, SiteKey: "site-key"})
	require.NoError(t, err)

	_, err = client.Token(context.Background(), "submit")
	assert.ErrorContains(t, err, "score too low")
}

func TestToken_EmptyToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(tokenResponse{})
	}))
	defer srv.Close()

	client, err := New(Config{BaseURL: srv.URL, SiteKey: "site-key"})
	require.NoError(t, err)

	_, err = client.Token(context.Background(), "submit")
	assert.Error(t, err)
}

func TestToken_Unreachable(t *testing.T) {
	client, err := New(Config{BaseURL: "http://127.0.0.1:1", SiteKey: "site-key"})
	require.NoError(t, err)

	_, err = client.Token(context.Background(), "submit")
	assert.Error(t, err)
}
