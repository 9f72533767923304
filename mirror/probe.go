package mirror

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/ytbascii/ytbascii/constant"
	"github.com/ytbascii/ytbascii/log"
	"github.com/ytbascii/ytbascii/network"
)

// DefaultProbeTimeout bounds a single probe when no timeout is configured.
const DefaultProbeTimeout = 5 * time.Second

// Prober checks whether a mirror answers. A failed probe is a result, not an error.
type Prober interface {
	Probe(ctx context.Context, baseURL string) Status
}

// ProberFunc adapts a plain function to the Prober interface.
type ProberFunc func(ctx context.Context, baseURL string) Status

func (f ProberFunc) Probe(ctx context.Context, baseURL string) Status {
	return f(ctx, baseURL)
}

// HTTPProber probes mirrors with a single GET against the stats endpoint.
type HTTPProber struct {
	client  *http.Client
	timeout time.Duration
}

// NewHTTPProber returns a prober whose requests are bounded by timeout.
func NewHTTPProber(timeout time.Duration) *HTTPProber {
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}
	return &HTTPProber{
		client:  network.NewProbeClient(timeout),
		timeout: timeout,
	}
}

// Probe reports Online for any HTTP response, whatever its status code, and Offline for any transport failure.
func (p *HTTPProber) Probe(ctx context.Context, baseURL string) Status {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, normalizeURL(baseURL)+constant.StatsEndpoint, nil)
	if err != nil {
		log.WithFields(log.Fields{"url": baseURL, "error": err}).Warn("cannot build probe request")
		return Offline
	}

	resp, err := p.client.Do(req)
	if err != nil {
		log.WithFields(log.Fields{"url": baseURL, "error": err}).Warn("probe failed")
		return Offline
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	log.WithFields(log.Fields{"url": baseURL, "code": resp.StatusCode}).Debug("probe answered")
	return Online
}
