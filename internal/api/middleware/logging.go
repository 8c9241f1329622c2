package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/client-portal/engine/pkg/logger"
	"go.uber.org/zap"
)

// requestMeta is filled in by inner middleware so the access log sees the
// tenant and the rewritten path.
type requestMeta struct {
	tenant string
	path   string
}

// Logging logs basic request information with request ID and tenant.
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		meta := &requestMeta{path: r.URL.Path}
		ctx := context.WithValue(r.Context(), requestMetaKey, meta)
		rw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rw, r.WithContext(ctx))

		fields := []zap.Field{
			zap.String("id", GetRequestID(r.Context())),
			zap.String("method", r.Method),
			zap.String("host", r.Host),
			zap.String("path", meta.path),
			zap.Int("status", rw.status),
			zap.Duration("duration", time.Since(start)),
			zap.String("remote", r.RemoteAddr),
		}
		if meta.tenant != "" {
			fields = append(fields, zap.String("tenant", meta.tenant))
		}
		logger.L().Info("request", fields...)
	})
}

func metaFrom(ctx context.Context) *requestMeta {
	m, _ := ctx.Value(requestMetaKey).(*requestMeta)
	return m
}

type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (s *statusRecorder) WriteHeader(code int) {
	if !s.wroteHeader {
		s.status = code
		s.wroteHeader = true
	}
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	s.wroteHeader = true
	return s.ResponseWriter.Write(b)
}

func (s *statusRecorder) Unwrap() http.ResponseWriter { return s.ResponseWriter }
