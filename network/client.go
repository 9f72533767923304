// Package network provides pre-configured HTTP clients for mirror probing and API requests.
package network

import (
	"net/http"
	"time"

	"github.com/ytbascii/ytbascii/constant"
)

// Client is the HTTP client shared by API requests sent to the selected mirror.
var Client = &http.Client{
	Timeout:   time.Minute,
	Transport: &userAgentTransport{base: newTransport(30 * time.Second)},
}

// NewProbeClient returns a client whose every request, including connect and TLS handshake, is bounded by timeout.
func NewProbeClient(timeout time.Duration) *http.Client {
	t := newTransport(timeout)
	// Probes hit every mirror once per cycle; keeping connections around gains nothing.
	t.DisableKeepAlives = true

	return &http.Client{
		Timeout:   timeout,
		Transport: &userAgentTransport{base: t},
	}
}

// newTransport initializes a tuned http.Transport with the given header timeout.
func newTransport(headerTimeout time.Duration) *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 16
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = headerTimeout
	t.TLSHandshakeTimeout = headerTimeout
	return t
}

// userAgentTransport stamps outgoing requests with the application User-Agent.
type userAgentTransport struct {
	base http.RoundTripper
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", constant.UserAgent)
	}
	return t.base.RoundTrip(req)
}
