package sender

import (
	"bytes"
	"fmt"
	"net"
	"net/netip"
	"time"

	"golang.org/x/net/ipv4"
	"golang.org/x/net/ipv6"
)

const (
	DefaultRetries = 3
	DefaultTimeout = 5 * time.Second
	DefaultTTL     = 240
)

type dialFunc func(network, address string, timeout time.Duration) (net.Conn, error)

type Config struct {
	// Address is the IP literal of the Carbon daemon, IPv4 or IPv6.
	// Hostnames are not resolved.
	Address string
	// Port is the TCP port the Carbon plaintext listener is bound to,
	// typically 2003.
	Port int
	// Retries is the total number of connect+write attempts per operation.
	// Zero selects DefaultRetries.
	Retries int
	// Timeout bounds each individual dial and write. Zero selects
	// DefaultTimeout.
	Timeout time.Duration
	// TTL is the IP time-to-live (hop limit on IPv6) set on the socket.
	// Zero selects DefaultTTL.
	TTL int
}

// Client maintains a single TCP connection to a Carbon daemon. A Client is
// not safe for concurrent use; run one Client per concurrent sender or
// serialize access externally.
type Client struct {
	addr    netip.AddrPort
	retries int
	timeout time.Duration
	ttl     int

	dial dialFunc
	conn net.Conn
}

// NewClient validates the configuration and eagerly connects, dialing up to
// Config.Retries times. Configuration problems surface as ErrInvalidConfig
// before any network I/O; an exhausted dial budget surfaces as ErrConnect.
func NewClient(config Config) (*Client, error) {
	return newClient(config, net.DialTimeout)
}

func newClient(config Config, dial dialFunc) (*Client, error) {
	addr, err := netip.ParseAddr(config.Address)
	if err != nil {
		return nil, fmt.Errorf("%w: address %q is not an IP literal", ErrInvalidConfig, config.Address)
	}
	if config.Port < 1 || config.Port > 65535 {
		return nil, fmt.Errorf("%w: port %d out of range", ErrInvalidConfig, config.Port)
	}
	if config.Retries <= 0 {
		config.Retries = DefaultRetries
	}
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}
	if config.TTL <= 0 {
		config.TTL = DefaultTTL
	}

	c := &Client{
		addr:    netip.AddrPortFrom(addr, uint16(config.Port)),
		retries: config.Retries,
		timeout: config.Timeout,
		ttl:     config.TTL,
		dial:    dial,
	}
	if err := c.Reconnect(); err != nil {
		return nil, err
	}
	return c, nil
}

// Send transmits one metric. On a write failure the stale connection is
// dropped and the connect+write attempt repeats, up to Config.Retries
// attempts in total. An invalid metric fails immediately and consumes no
// attempt.
func (c *Client) Send(m Metric) error {
	var buf bytes.Buffer
	if _, err := NewEncoder(&buf).Encode(m); err != nil {
		return err
	}
	return c.write(buf.Bytes())
}

// SendBatch transmits several metrics in a single write. The batch is
// encoded up front, so an invalid metric aborts before any I/O and nothing
// is sent. An empty batch is a no-op.
func (c *Client) SendBatch(metrics []Metric) error {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	for _, m := range metrics {
		if _, err := enc.Encode(m); err != nil {
			return err
		}
	}
	if buf.Len() == 0 {
		return nil
	}
	return c.write(buf.Bytes())
}

func (c *Client) write(payload []byte) error {
	var lastErr error
	for attempt := 0; attempt < c.retries; attempt++ {
		if c.conn == nil {
			conn, err := c.dialOnce()
			if err != nil {
				lastErr = err
				continue
			}
			c.conn = conn
		}
		if err := c.conn.SetWriteDeadline(time.Now().Add(c.timeout)); err != nil {
			lastErr = err
			c.dropConn()
			continue
		}
		if _, err := c.conn.Write(payload); err != nil {
			lastErr = err
			c.dropConn()
			continue
		}
		return nil
	}
	c.dropConn()
	return fmt.Errorf("%w after %d attempts: %w", ErrRetriesExhausted, c.retries, lastErr)
}

// Reconnect drops any current connection and dials a new one, trying up to
// Config.Retries times. On failure the client is left disconnected and the
// last dial error is wrapped in ErrConnect. Send recovers on its own;
// Reconnect exists for callers that want to re-establish ahead of time.
func (c *Client) Reconnect() error {
	c.dropConn()
	var lastErr error
	for attempt := 0; attempt < c.retries; attempt++ {
		conn, err := c.dialOnce()
		if err != nil {
			lastErr = err
			continue
		}
		c.conn = conn
		return nil
	}
	return fmt.Errorf("%w: %w", ErrConnect, lastErr)
}

// Connected reports whether the client currently holds a live connection.
func (c *Client) Connected() bool {
	return c.conn != nil
}

// Close releases the connection if one is held. It is idempotent.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	return err
}

func (c *Client) dialOnce() (net.Conn, error) {
	conn, err := c.dial("tcp", c.addr.String(), c.timeout)
	if err != nil {
		return nil, err
	}
	if err := c.tune(conn); err != nil {
		conn.Close()
		return nil, err
	}
	return conn, nil
}

// tune applies the socket options every Carbon connection runs with: Nagle
// buffering off and the configured packet TTL.
func (c *Client) tune(conn net.Conn) error {
	tcp, ok := conn.(*net.TCPConn)
	if !ok {
		return nil
	}
	if err := tcp.SetNoDelay(true); err != nil {
		return err
	}
	if c.addr.Addr().Is4() || c.addr.Addr().Is4In6() {
		return ipv4.NewConn(tcp).SetTTL(c.ttl)
	}
	return ipv6.NewConn(tcp).SetHopLimit(c.ttl)
}

func (c *Client) dropConn() {
	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}
}
