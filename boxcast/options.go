package boxcast

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
)

// Option mutates the Client during NewClient.
type Option func(*Client) error

// WithHTTPClient injects a custom *http.Client, e.g. for timeouts or a test transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("nil http client")
		}
		c.http = hc
		return nil
	}
}

// WithBaseURL points the client at a different API host. Only scheme and host are kept.
func WithBaseURL(raw string) Option {
	return func(c *Client) error {
		base, err := parseBaseURL(raw)
		if err != nil {
			return err
		}
		c.baseURL = base
		return nil
	}
}

// WithUserAgent overrides the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) error {
		if strings.TrimSpace(ua) == "" {
			return fmt.Errorf("empty user agent")
		}
		c.userAgent = ua
		return nil
	}
}

// WithLogger sets the logger used for per-request debug events.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) error {
		c.logger = logger.With().Str("component", "boxcast").Logger()
		return nil
	}
}
