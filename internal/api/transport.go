package api

import (
	"net/http"
	"time"

	"github.com/roomlog/roomlog/internal/logger"
)

// sessionTransport attaches the session cookie and JSON headers to every
// outbound request and logs timing and status at debug level.
type sessionTransport struct {
	base    http.RoundTripper
	session string
}

func (t sessionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}

	// RoundTrippers must not modify the caller's request.
	req = req.Clone(req.Context())

	req.Header.Set("Accept", "application/json")
	if req.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if t.session != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: t.session})
	}

	start := time.Now()
	resp, err := base.RoundTrip(req)
	elapsed := time.Since(start)

	if err != nil {
		logger.Log.Debugf("HTTP %s %s failed after %s: %v", req.Method, req.URL.String(), elapsed, err)

		return nil, err
	}

	logger.Log.Debugf("HTTP %s %s -> %d (%s)", req.Method, req.URL.String(), resp.StatusCode, elapsed)

	return resp, nil
}

func newHTTPClient(session string, timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: sessionTransport{session: session},
	}
}
