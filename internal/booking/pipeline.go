package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hijamacare/site-engine/internal/observability/metrics"
	"github.com/hijamacare/site-engine/pkg/logging"
)

// submissionContentType is what the receiving collaborator expects; it is
// deliberately not application/json.
const submissionContentType = "text/plain;charset=utf-8"

// tokenAction is the verification action label scoped to form submissions.
const tokenAction = "submit"

// TokenSource obtains a one-time verification token for an action label.
// Implementations talk to the external bot-check collaborator.
type TokenSource interface {
	Token(ctx context.Context, action string) (string, error)
}

// Submitter runs one submission attempt to completion.
type Submitter interface {
	Submit(ctx context.Context, req AppointmentRequest) error
}

// Pipeline performs the ordered submission steps: long-form date
// formatting, optional verification token acquisition, and a single POST
// to the configured endpoint. It never retries; a failed submission needs
// a fresh user-initiated submit.
type Pipeline struct {
	endpoint         string
	showVerification bool
	tokens           TokenSource
	httpClient       *http.Client
	logger           *logging.Logger
	metrics          *metrics.BookingMetrics
}

// PipelineConfig wires a Pipeline. Tokens may be nil when verification is
// disabled; leaving it nil with verification enabled makes every submit
// fail before any network call, per contract.
type PipelineConfig struct {
	Endpoint         string
	ShowVerification bool
	Tokens           TokenSource
	HTTPClient       *http.Client
	Logger           *logging.Logger
	Metrics          *metrics.BookingMetrics
}

// NewPipeline creates a configured Pipeline.
func NewPipeline(cfg PipelineConfig) *Pipeline {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	return &Pipeline{
		endpoint:         cfg.Endpoint,
		showVerification: cfg.ShowVerification,
		tokens:           cfg.Tokens,
		httpClient:       httpClient,
		logger:           logger,
		metrics:          cfg.Metrics,
	}
}

// Submit runs one booking submission. The request is taken by value: the
// pipeline's date formatting and token stamping never leak back into the
// caller's form state.
func (p *Pipeline) Submit(ctx context.Context, req AppointmentRequest) error {
	started := time.Now()
	err := p.submit(ctx, &req)
	p.metrics.ObserveSubmitLatency(time.Since(started).Seconds())
	if err != nil {
		p.metrics.ObserveSubmission("error", FailureCause(err))
		return err
	}
	p.metrics.ObserveSubmission("success", "")
	return nil
}

func (p *Pipeline) submit(ctx context.Context, req *AppointmentRequest) error {
	longDate, err := FormatLongDate(req.Date)
	if err != nil {
		return err
	}
	req.Date = longDate

	if p.showVerification {
		token, err := p.verificationToken(ctx)
		if err != nil {
			// Without a token there is nothing to send: abort before the POST.
			return err
		}
		req.VerificationToken = token
	}

	return p.post(ctx, req)
}

// SubmitContact sends a contact-form message through the same verification
// and POST mechanics as a booking.
func (p *Pipeline) SubmitContact(ctx context.Context, req ContactRequest) error {
	if p.showVerification {
		token, err := p.verificationToken(ctx)
		if err != nil {
			return err
		}
		req.VerificationToken = token
	}
	return p.post(ctx, &req)
}

func (p *Pipeline) verificationToken(ctx context.Context) (string, error) {
	if p.tokens == nil {
		return "", ErrVerificationUnavailable
	}
	token, err := p.tokens.Token(ctx, tokenAction)
	if err != nil {
		p.logger.Error("verification token acquisition failed", "error", err)
		return "", fmt.Errorf("%w: %v", ErrVerificationFailed, err)
	}
	return token, nil
}

// post serializes the payload and issues the single POST of this
// submission. Non-success statuses are treated identically to transport
// failures.
func (p *Pipeline) post(ctx context.Context, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", submissionContentType)

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		p.logger.Error("submission transport failure", "error", err, "endpoint", p.endpoint)
		return fmt.Errorf("%w: %v", ErrSubmissionRejected, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// The body may carry backend diagnostics; keep it out of user-facing
		// errors and log it at debug only.
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		p.logger.Debug("submission rejected by endpoint",
			"status", resp.StatusCode,
			"body", string(respBody),
		)
		return fmt.Errorf("%w: status %d", ErrSubmissionRejected, resp.StatusCode)
	}

	return nil
}
