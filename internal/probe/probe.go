// Package probe measures registry response latency.
package probe

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/hashicorp/go-cleanhttp"
)

// DefaultTimeout bounds a single probe when no timeout is configured.
const DefaultTimeout = 10 * time.Second

// Prober measures the round-trip time of a single request to a URL.
type Prober interface {
	Ping(ctx context.Context, url string) (time.Duration, error)
}

// HTTP probes a URL with one GET request.
type HTTP struct {
	client *http.Client
	logger *slog.Logger
	now    func() time.Time
}

// NewHTTP creates an HTTP prober. A zero timeout uses DefaultTimeout.
func NewHTTP(timeout time.Duration, logger *slog.Logger) *HTTP {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	if logger == nil {
		logger = slog.Default()
	}

	client := cleanhttp.DefaultClient()
	client.Timeout = timeout

	return &HTTP{
		client: client,
		logger: logger,
		now:    time.Now,
	}
}

// Ping issues a GET to url and returns the elapsed time until the body is read.
// Any HTTP response counts as reachable; only transport errors fail.
func (p *HTTP) Ping(ctx context.Context, url string) (time.Duration, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return 0, fmt.Errorf("creating request for %s: %w", url, err)
	}

	start := p.now()

	resp, err := p.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("probing %s: %w", url, err)
	}

	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			p.logger.Debug("closing probe response", "url", url, "err", cerr)
		}
	}()

	if _, err := io.Copy(io.Discard, resp.Body); err != nil {
		return 0, fmt.Errorf("reading response from %s: %w", url, err)
	}

	elapsed := p.now().Sub(start)
	p.logger.Debug("probe finished", "url", url, "status", resp.StatusCode, "elapsed", elapsed)

	return elapsed, nil
}

// Millis rounds d to whole milliseconds.
func Millis(d time.Duration) int64 {
	return d.Round(time.Millisecond).Milliseconds()
}
