package middleware

import (
	"context"
	"net/http"
	"regexp"
	"strings"

	"github.com/client-portal/engine/internal/hostroute"
	"github.com/client-portal/engine/pkg/logger"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// HostResolver classifies a request by host and path.
type HostResolver interface {
	Resolve(hostname, path string) hostroute.Decision
}

var (
	tenantSkipPrefixes = []string{"/api/", "/_next/", "/_static/", "/static/", "/docs/"}
	operationalPaths   = map[string]bool{"/healthz": true, "/readyz": true, "/metrics": true}
	topLevelFile       = regexp.MustCompile(`^/[\w-]+\.\w+`)
)

// skipTenantRouting reports paths served identically on every host: APIs,
// assets, probes and anything that looks like a file.
func skipTenantRouting(path string) bool {
	for _, p := range tenantSkipPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	if operationalPaths[path] || topLevelFile.MatchString(path) {
		return true
	}
	last := path[strings.LastIndex(path, "/")+1:]
	return strings.Contains(last, ".")
}

// TenantRouter rewrites tenant-host requests onto the internal /c/{tenant}
// routes. The client-visible URL is untouched; only routing changes.
// Resolution failures fall back to the default routes.
func TenantRouter(res HostResolver) func(http.Handler) http.Handler {
	log := logger.Named("tenant-router")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path
			if skipTenantRouting(path) {
				tenantDecisions.WithLabelValues("skipped").Inc()
				next.ServeHTTP(w, r)
				return
			}

			dec, ok := resolve(res, r.Host, path)
			if !ok {
				log.Warn("tenant resolution panicked, passing through",
					zap.String("id", GetRequestID(r.Context())),
					zap.String("host", r.Host),
					zap.String("path", path),
				)
				tenantDecisions.WithLabelValues("recovered").Inc()
				next.ServeHTTP(w, r)
				return
			}
			tenantDecisions.WithLabelValues(dec.Kind.String()).Inc()

			if dec.Kind == hostroute.PassThrough {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), TenantKey, dec.Tenant)
			ctx = context.WithValue(ctx, OriginalPathKey, path)
			if m := metaFrom(ctx); m != nil {
				m.tenant, m.path = dec.Tenant, dec.Path
			}
			r2 := r.Clone(ctx)
			r2.URL.Path = dec.Path
			r2.URL.RawPath = ""
			if rctx := chi.RouteContext(ctx); rctx != nil {
				rctx.RoutePath = dec.Path
			}
			log.Debug("tenant rewrite",
				zap.String("tenant", dec.Tenant),
				zap.String("decision", dec.Kind.String()),
				zap.String("from", path),
				zap.String("to", dec.Path),
			)
			next.ServeHTTP(w, r2)
		})
	}
}

func resolve(res HostResolver, host, path string) (dec hostroute.Decision, ok bool) {
	defer func() {
		if recover() != nil {
			dec, ok = hostroute.Decision{Kind: hostroute.PassThrough}, false
		}
	}()
	return res.Resolve(host, path), true
}

// GetTenant returns the tenant resolved from the request host, or "".
func GetTenant(ctx context.Context) string {
	return stringValue(ctx, TenantKey)
}

// GetOriginalPath returns the client-visible path of a rewritten request, or "".
func GetOriginalPath(ctx context.Context) string {
	return stringValue(ctx, OriginalPathKey)
}
