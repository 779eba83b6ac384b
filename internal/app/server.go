package app

import (
	"net/http"

	"github.com/heartmarshall/hiretrack-backend/internal/transport/middleware"
	"github.com/heartmarshall/hiretrack-backend/internal/transport/rest"
)

// NewHandler assembles the REST router and the middleware chain. The
// returned stop func releases the rate limiter's cleanup goroutine.
func NewHandler(d *Deps, version string) (http.Handler, func()) {
	cfg := d.Config

	checks := []rest.HealthCheck{{Name: "database", Pinger: d.Pool, Required: true}}
	if d.Cache != nil {
		checks = append(checks, rest.HealthCheck{Name: "cache", Pinger: d.Cache})
	}
	if d.Events != nil {
		checks = append(checks, rest.HealthCheck{Name: "events", Pinger: d.Events})
	}

	routes := rest.Routes{
		Health:     rest.NewHealthHandler(version, checks...),
		Postings:   rest.NewPostingHandler(d.Postings, d.Log),
		Candidates: rest.NewCandidateHandler(d.Candidates, d.Log),
	}
	if cfg.Metrics.Enabled {
		routes.Metrics = d.Metrics.Handler()
		routes.MetricsPath = cfg.Metrics.Path
	}

	stop := func() {}
	if cfg.RateLimit.Enabled {
		rl := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		routes.API = rl.Limit(cfg.RateLimit.Requests, cfg.RateLimit.Window)
		stop = rl.Stop
	}

	handler := middleware.Chain(
		middleware.Recovery(d.Log),
		middleware.RequestID(),
		middleware.Actor(),
		middleware.Tracing(),
		middleware.Metrics(d.Metrics),
		middleware.Logger(d.Log),
		middleware.CORS(cfg.CORS),
	)(rest.NewRouter(routes))

	return handler, stop
}
