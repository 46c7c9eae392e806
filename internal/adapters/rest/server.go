package rest

import (
	"context"
	"net/http"

	"github.com/IMRSIV/bank-albilad-demo/internal/configs"
	core_port "github.com/IMRSIV/bank-albilad-demo/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

func NewServer(cfg configs.RestConfig,
	proxyHandler *SakaniProxyHandler,
	propertyHandler *PropertyHandler,
	statusHandler *StatusHandler,
	baseLogger core_port.LoggerPort) *Server {

	return &Server{
		httpServer: &http.Server{
			Addr:    ":" + cfg.Port,
			Handler: NewRouter(cfg, proxyHandler, propertyHandler, statusHandler, baseLogger),
		},
		logger: baseLogger,
	}
}

// NewRouter wires every route of the service.
func NewRouter(cfg configs.RestConfig,
	proxyHandler *SakaniProxyHandler,
	propertyHandler *PropertyHandler,
	statusHandler *StatusHandler,
	baseLogger core_port.LoggerPort) http.Handler {

	r := chi.NewRouter()

	r.Use(middleware.RealIP, LoggerMiddleware(baseLogger), middleware.Recoverer)

	r.Get("/healthz", statusHandler.Liveness)

	// passthrough routes keep the fixed CORS headers of the browser proxy
	r.Route("/api/sakani", func(r chi.Router) {
		r.Get("/search", proxyHandler.Search)
		r.Options("/search", proxyHandler.Preflight)
		r.Get("/property/{id}", proxyHandler.PropertyDetails)
		r.Options("/property/{id}", proxyHandler.Preflight)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.CORSAllowedOrigins,
			AllowedMethods: []string{"GET", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Trace-ID"},
			ExposedHeaders: []string{"X-Trace-ID"},
			MaxAge:         300,
		}))

		r.Get("/properties", propertyHandler.SearchProperties)
		r.Get("/properties/{id}", propertyHandler.GetPropertyDetails)
		r.Get("/filters/options", propertyHandler.GetFilterOptions)
		r.Get("/status", statusHandler.GetStatus)
	})

	return r
}

func (s *Server) Start() error {
	s.logger.Info("Starting REST server", core_port.Fields{"address": s.httpServer.Addr})
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST server...", nil)
	return s.httpServer.Shutdown(ctx)
}
