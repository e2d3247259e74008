package sender

import "errors"

var (
	// ErrInvalidConfig reports a Config that cannot describe a Carbon
	// endpoint: a non-IP-literal address or an out-of-range port. Returned
	// by NewClient before any network I/O and never retried.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrInvalidMetric reports a Metric that cannot be rendered as a
	// protocol line. Returned immediately by Send and SendBatch without
	// consuming any retry attempt.
	ErrInvalidMetric = errors.New("invalid metric")

	// ErrConnect reports that every dial attempt within the retry budget
	// failed. It wraps the last dial error.
	ErrConnect = errors.New("connect failed")

	// ErrRetriesExhausted reports that every connect+write attempt within
	// the retry budget failed. The client is left disconnected; the next
	// Send starts from a fresh dial.
	ErrRetriesExhausted = errors.New("retries exhausted")
)
