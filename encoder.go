package sender

import (
	"fmt"
	"io"
)

// Encoder writes metrics to an io.Writer in the Carbon plaintext line
// format.
type Encoder struct {
	w io.Writer
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes m as "<path> <value> <timestamp>\n" and returns the number
// of bytes written. A metric that violates the protocol invariants yields
// ErrInvalidMetric with nothing written.
func (e *Encoder) Encode(m Metric) (int, error) {
	if err := m.validate(); err != nil {
		return 0, err
	}
	return fmt.Fprintf(e.w, "%s %s %d\n", m.Path, m.Value, m.Timestamp)
}
