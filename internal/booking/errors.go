package booking

import "errors"

var (
	// ErrVerificationUnavailable is returned when no token source is wired
	// while verification is required.
	ErrVerificationUnavailable = errors.New("verification service unavailable")

	// ErrVerificationFailed is returned when the verification collaborator
	// refuses to issue a token.
	ErrVerificationFailed = errors.New("verification failed")

	// ErrSubmissionRejected covers transport failures and non-success
	// responses alike; the response body is never surfaced to the user.
	ErrSubmissionRejected = errors.New("submission rejected")

	// ErrSubmitInProgress is returned when a submit arrives while one is
	// already running. The guard is interface state, not a lock.
	ErrSubmitInProgress = errors.New("submission already in progress")

	// ErrEditWhileSubmitting is returned for field edits during submission.
	ErrEditWhileSubmitting = errors.New("form is submitting")

	// ErrDateOutOfWindow is returned when a selected date falls outside the
	// rolling booking horizon.
	ErrDateOutOfWindow = errors.New("date outside booking window")
)

// FailureCause maps a pipeline error to a short diagnostic label. Users see
// only the configured error message; causes feed logs and metrics.
func FailureCause(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrVerificationUnavailable):
		return "verification_unavailable"
	case errors.Is(err, ErrVerificationFailed):
		return "verification_failed"
	case errors.Is(err, ErrSubmissionRejected):
		return "submission_rejected"
	default:
		return "internal"
	}
}
