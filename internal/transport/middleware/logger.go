package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/heartmarshall/kantin-backend/pkg/ctxutil"
)

// Logger returns middleware that logs each HTTP request with method, path,
// status code, duration, and context identifiers (request_id, account_id,
// trace_id).
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			ctx := r.Context()
			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
			}
			// The account id is set further down the chain on a derived
			// request, so it is read back from the status writer.
			if sw.accountID != uuid.Nil {
				attrs = append(attrs, slog.String("account_id", sw.accountID.String()))
			}
			if sc := trace.SpanFromContext(ctx).SpanContext(); sc.IsValid() {
				attrs = append(attrs, slog.String("trace_id", sc.TraceID().String()))
			}

			level := slog.LevelInfo
			if sw.status >= 500 {
				level = slog.LevelError
			}
			logger.LogAttrs(ctx, level, "http.request", attrs...)
		})
	}
}

// statusWriter wraps http.ResponseWriter to capture the response status
// code and the authenticated account.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
	accountID   uuid.UUID
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.wroteHeader = true
	}
	return w.ResponseWriter.Write(b)
}

func (w *statusWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }

// accountRecorder is implemented by response writers that want to know
// which account a request was served for.
type accountRecorder interface {
	recordAccount(id uuid.UUID)
}

func (w *statusWriter) recordAccount(id uuid.UUID) { w.accountID = id }

// recordAccount walks wrapped writers and reports id to the first one
// that records accounts.
func recordAccount(w http.ResponseWriter, id uuid.UUID) {
	for {
		if rec, ok := w.(accountRecorder); ok {
			rec.recordAccount(id)
			return
		}
		u, ok := w.(interface{ Unwrap() http.ResponseWriter })
		if !ok {
			return
		}
		w = u.Unwrap()
	}
}
