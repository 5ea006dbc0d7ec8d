package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/preston-bernstein/nhl-results-service/internal/http/requestutil"
	"github.com/preston-bernstein/nhl-results-service/internal/logging"
	"github.com/preston-bernstein/nhl-results-service/internal/metrics"
)

type requestIDKey struct{}

// LoggingMiddleware assigns a request ID, carries a request-scoped logger in the
// context, and emits one "request complete" line plus HTTP metrics per request.
func LoggingMiddleware(baseLogger *slog.Logger, recorder *metrics.Recorder, next http.Handler) http.Handler {
	if baseLogger == nil {
		baseLogger = slog.Default()
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		reqID := requestutil.SanitizeRequestID(r.Header.Get(requestutil.HeaderRequestID))
		w.Header().Set(requestutil.HeaderRequestID, reqID)

		logger := baseLogger.With(
			slog.String(logging.FieldRequestID, reqID),
			slog.String(logging.FieldMethod, r.Method),
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("query", r.URL.RawQuery),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)

		ctx := context.WithValue(logging.WithLogger(r.Context(), logger), requestIDKey{}, reqID)
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r.WithContext(ctx))

		duration := time.Since(start)
		status := statusOf(ww)
		recorder.RecordHTTPRequest(r.Method, normalizePath(r.URL.Path), status, duration)

		logger.Log(ctx, levelFor(status), "request complete",
			slog.Int(logging.FieldStatusCode, status),
			slog.Int("bytes", ww.BytesWritten()),
			slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
		)
	})
}

// RequestIDFromContext extracts the request ID stored by the logging middleware.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// statusOf reports 200 for handlers that wrote a body without an explicit status.
func statusOf(ww chimiddleware.WrapResponseWriter) int {
	if status := ww.Status(); status != 0 {
		return status
	}
	return http.StatusOK
}

func levelFor(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// normalizePath keeps metric label cardinality bounded.
func normalizePath(path string) string {
	if path == "" {
		return ""
	}
	switch path {
	case "/", "/home", "/yesterday", "/score", "/health":
		return path
	case "/index.html":
		return "/"
	}
	if strings.HasPrefix(path, "/css/") || strings.HasPrefix(path, "/js/") {
		return "/static"
	}
	return "/other"
}
