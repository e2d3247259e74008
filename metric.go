package sender

import (
	"fmt"
	"strings"
	"time"
)

// Metric is a single data point addressed by a dot-delimited key path, such
// as "servers.web01.cpu.usage". The value is kept as text so the caller's
// formatting and precision reach the wire unchanged. Timestamp is Unix
// seconds.
type Metric struct {
	Path      string
	Value     string
	Timestamp int64
}

// NewMetric returns a Metric stamped with the current wall-clock time.
// Assign Timestamp directly to report a data point for another instant.
func NewMetric(path, value string) Metric {
	return Metric{
		Path:      path,
		Value:     value,
		Timestamp: time.Now().Unix(),
	}
}

func (m Metric) validate() error {
	if m.Path == "" {
		return fmt.Errorf("%w: empty key path", ErrInvalidMetric)
	}
	if strings.ContainsAny(m.Path, " \t\r\n") {
		return fmt.Errorf("%w: key path %q contains whitespace", ErrInvalidMetric, m.Path)
	}
	if m.Value == "" {
		return fmt.Errorf("%w: empty value", ErrInvalidMetric)
	}
	if strings.ContainsAny(m.Value, " \t\r\n") {
		return fmt.Errorf("%w: value %q contains whitespace", ErrInvalidMetric, m.Value)
	}
	return nil
}
