package metrics

import (
	"time"
)

// opsEndpoints are scrape/probe paths that would only add noise to the
// request metrics. Both the root and base-path registrations are listed.
var opsEndpoints = map[string]struct{}{
	"/metrics":              {},
	"/health":               {},
	"/api/listings/metrics": {},
	"/api/listings/health":  {},
}

// RecordHTTPRequest records one request's count and duration. Status codes
// collapse to their class to keep label cardinality down.
func (m *Metrics) RecordHTTPRequest(method, endpoint string, statusCode int, duration time.Duration) {
	m.safeExecute("RecordHTTPRequest", func() {
		status := categorizeStatus(statusCode)
		m.HTTPRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
		m.HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
	})
}

func categorizeStatus(code int) string {
	switch {
	case code >= 200 && code < 300:
		return "2xx"
	case code >= 300 && code < 400:
		return "3xx"
	case code >= 400 && code < 500:
		return "4xx"
	case code >= 500:
		return "5xx"
	default:
		return "unknown"
	}
}

// ShouldSkipEndpoint reports whether a path is excluded from HTTP metrics
func ShouldSkipEndpoint(path string) bool {
	_, ok := opsEndpoints[path]
	return ok
}
