package probe

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hamed0406/domainwatch/internal/domain"
)

type HTTPChecker struct {
	Client *http.Client
	// Deadline bounds the request and is also the latency cutoff for
	// classification: a 2xx that lands after Deadline still counts down.
	Deadline time.Duration
}

func NewHTTPChecker(deadline time.Duration) *HTTPChecker {
	return &HTTPChecker{
		Client:   &http.Client{Timeout: deadline},
		Deadline: deadline,
	}
}

// Check probes one endpoint. Transport failures (DNS, connect, TLS, timeout)
// never escape; they become failed outcomes attributed to the endpoint's
// domain key so the cycle always completes.
func (h *HTTPChecker) Check(ctx context.Context, ep domain.Endpoint) domain.Outcome {
	key, err := domain.Key(ep.URL)
	if err != nil {
		// Startup validation should make this unreachable; keep the failure
		// attributable under the raw URL rather than dropping it.
		return domain.Outcome{Domain: ep.URL, Success: false, Reason: "domain parse failure"}
	}

	method := ep.Method
	if method == "" {
		method = http.MethodGet
	}
	var body io.Reader
	if ep.Body != "" {
		body = strings.NewReader(ep.Body)
	}

	req, err := http.NewRequestWithContext(ctx, method, ep.URL, body)
	if err != nil {
		return domain.Outcome{Domain: key, Success: false, Reason: err.Error()}
	}
	for k, v := range ep.Headers {
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := h.Client.Do(req)
	elapsed := time.Since(start)
	latency := elapsed.Seconds() * 1000
	if err != nil {
		return domain.Outcome{Domain: key, Success: false, LatencyMS: latency, Reason: err.Error()}
	}
	defer resp.Body.Close()

	ok := resp.StatusCode >= 200 && resp.StatusCode < 300
	reason := resp.Status
	if ok && elapsed > h.Deadline {
		ok = false
		reason = "slow response"
	}
	return domain.Outcome{
		Domain:     key,
		Success:    ok,
		HTTPStatus: resp.StatusCode,
		LatencyMS:  latency,
		Reason:     reason,
	}
}

// Close releases pooled connections. Called once at shutdown.
func (h *HTTPChecker) Close() {
	h.Client.CloseIdleConnections()
}
