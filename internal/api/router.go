package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/client-portal/engine/internal/api/handlers"
	mw "github.com/client-portal/engine/internal/api/middleware"

	// Registers the OpenAPI document served under /docs
	_ "github.com/client-portal/engine/docs"
)

type Dependencies struct {
	Resolver       mw.HostResolver
	Tokens         mw.TokenVerifier
	CORSOrigins    []string
	RateLimitRPS   float64
	RateLimitBurst int

	HealthHandler    *handlers.HealthHandler
	ConfigHandler    *handlers.ConfigHandler
	ScriptsHandler   *handlers.ScriptsHandler
	ProxyHandler     *handlers.ProxyHandler
	DashboardHandler *handlers.DashboardHandler
	AdminHandler     *handlers.AdminHandler
}

func NewRouter(dep Dependencies) http.Handler {
	r := chi.NewRouter()

	// Built-in middleware
	r.Use(mw.RequestID)
	r.Use(chimid.RealIP)
	r.Use(mw.Recovery)
	r.Use(mw.Logging)
	r.Use(mw.Metrics)
	r.Use(mw.CORS(dep.CORSOrigins))
	r.Use(mw.RateLimit(dep.RateLimitRPS, dep.RateLimitBurst))
	// Must run before routing: it rewrites the path chi matches on.
	r.Use(mw.TenantRouter(dep.Resolver))
	r.Use(chimid.Compress(5))

	// Operational endpoints
	r.Get("/healthz", dep.HealthHandler.Liveness)
	r.Get("/readyz", dep.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// Swagger documentation
	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	))

	// Tenant dashboard, reached directly or through a subdomain rewrite
	r.Route("/c/{domain}", func(tr chi.Router) {
		tr.Get("/", dep.DashboardHandler.Status)
		tr.Get("/automations", dep.DashboardHandler.Automations)
		tr.Get("/tools/apollo", dep.DashboardHandler.Apollo)
	})

	r.Route("/api", func(api chi.Router) {
		api.Route("/instantly", func(ir chi.Router) {
			ir.Get("/verify", dep.ConfigHandler.GetVerifyConfig)
			ir.Put("/verify", dep.ConfigHandler.PutConfig)
			ir.Post("/verify", dep.ScriptsHandler.VerifyWorkspace)
			ir.Post("/run", dep.ScriptsHandler.RunWorkflow)
		})

		api.Route("/project/config", func(pr chi.Router) {
			pr.Get("/", dep.ConfigHandler.GetProjectConfig)
			pr.Put("/", dep.ConfigHandler.PutConfig)
			pr.Post("/", dep.ConfigHandler.PutConfig)
		})

		api.Route("/sheets", func(sr chi.Router) {
			sr.Post("/check-access", dep.ScriptsHandler.CheckSheetAccess)
			sr.Post("/create", dep.ScriptsHandler.CreateSheet)
		})

		api.Post("/debug/auth", dep.ScriptsHandler.DebugAuth)

		api.Get("/proxy", dep.ProxyHandler.Get)
		api.Post("/proxy", dep.ProxyHandler.Post)

		// Protected routes
		api.Group(func(protected chi.Router) {
			protected.Use(mw.Auth(dep.Tokens))

			protected.Route("/admin/tenants", func(ar chi.Router) {
				ar.Get("/", dep.AdminHandler.List)
				ar.Post("/", dep.AdminHandler.Seed)
				ar.Get("/{subdomain}", dep.AdminHandler.Get)
				ar.Patch("/{subdomain}/status", dep.AdminHandler.UpdateStatus)
				ar.Post("/{subdomain}/runs", dep.AdminHandler.EnqueueRun)
			})
		})
	})

	return r
}
