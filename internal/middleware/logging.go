package middleware

import (
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"video-player/internal/logging"
)

// SessionHeader carries the id of the session that served a request.
const SessionHeader = "X-Session-ID"

// LoggingConfig holds configuration for the access log.
type LoggingConfig struct {
	// LogHealthChecks logs probes of /health, /healthz and /livez.
	LogHealthChecks bool
}

// DefaultLoggingConfig logs every request.
func DefaultLoggingConfig() LoggingConfig {
	return LoggingConfig{LogHealthChecks: true}
}

var healthCheckPaths = map[string]bool{
	"/health":  true,
	"/healthz": true,
	"/livez":   true,
}

// accessEntry is one line of the access log, in W3C Extended Log Format:
//
//	date time c-ip cs-method cs-uri-stem cs-uri-query sc-status sc-bytes time-taken x-session-id cs(User-Agent) cs(Referer)
type accessEntry struct {
	when      time.Time
	clientIP  string
	method    string
	path      string
	query     string
	status    int
	bytes     int64
	took      time.Duration
	session   string
	userAgent string
	referer   string
}

func (e accessEntry) String() string {
	return fmt.Sprintf("%s %s %s %s %s %s %d %d %d %s %s %s",
		e.when.Format("2006-01-02"),
		e.when.Format("15:04:05"),
		orDash(e.clientIP),
		orDash(e.method),
		orDash(e.path),
		orDash(e.query),
		e.status,
		e.bytes,
		e.took.Milliseconds(),
		orDash(e.session),
		orDash(quoteW3C(e.userAgent)),
		orDash(e.referer),
	)
}

// Logger writes one access log line per request once the handler returns.
func Logger(config LoggingConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !config.LogHealthChecks && healthCheckPaths[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			rec := record(w)
			next.ServeHTTP(rec, r)

			entry := accessEntry{
				when:      start.UTC(),
				clientIP:  sanitizeLogField(getClientIP(r)),
				method:    sanitizeLogField(r.Method),
				path:      sanitizeLogField(r.URL.Path),
				query:     sanitizeLogField(r.URL.RawQuery),
				status:    rec.Status(),
				bytes:     rec.bytes,
				took:      time.Since(start),
				session:   sanitizeLogField(rec.Header().Get(SessionHeader)),
				userAgent: sanitizeLogField(r.Header.Get("User-Agent")),
				referer:   sanitizeLogField(r.Header.Get("Referer")),
			}
			//nolint:gosec // G706: every user-controlled field passed sanitizeLogField.
			logging.Println(entry.String())
		})
	}
}

// sanitizeLogField keeps a client-supplied value on one log line: line
// breaks become spaces, other control characters except tab are dropped.
func sanitizeLogField(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\r':
			return ' '
		case r == '\t':
			return r
		case r < 0x20 || r == 0x7f:
			return -1
		default:
			return r
		}
	}, s)
}

// getClientIP prefers proxy headers over the peer address.
func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

// quoteW3C quotes values containing separators, doubling inner quotes.
func quoteW3C(s string) string {
	if !strings.ContainsAny(s, " \t\"") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
