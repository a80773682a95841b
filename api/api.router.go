package api

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/itsatony/temperature-detector/api/middleware"
	"github.com/itsatony/temperature-detector/api/resources"
	"github.com/itsatony/temperature-detector/internal/monitoring"
	"github.com/itsatony/temperature-detector/internal/service"
	"github.com/rs/cors"
)

// Options tune the outer HTTP surface
type Options struct {
	AllowedOrigins []string
	// Monitoring is optional; without it /metrics is not mounted
	Monitoring *monitoring.Service
}

type Router struct {
	router    *mux.Router
	resources *resources.Resources
	opts      Options
	handler   http.Handler
}

func NewRouter(svc *service.Service, opts Options) *Router {
	r := &Router{
		router:    mux.NewRouter(),
		resources: resources.NewResources(svc),
		opts:      opts,
	}

	r.setupRoutes()
	r.handler = r.wrap(r.router)
	return r
}

func (r *Router) setupRoutes() {
	r.router.NotFoundHandler = r.resources.NotFound
	r.router.MethodNotAllowedHandler = r.resources.NotAllowed

	// Readings
	r.router.HandleFunc("/temperature", r.resources.Temperature.GetTemperature).Methods(http.MethodGet)
	r.router.HandleFunc("/temperature/{sensorId}", r.resources.Temperature.GetSensorTemperature).Methods(http.MethodGet)

	// Operations
	r.router.HandleFunc("/health", r.resources.HealthCheck).Methods(http.MethodGet)
	r.router.HandleFunc("/swagger/doc.json", r.resources.Docs).Methods(http.MethodGet)
	if r.opts.Monitoring != nil {
		r.router.Handle("/metrics", r.opts.Monitoring.Handler()).Methods(http.MethodGet)
	}
}

// wrap applies the middleware chain outside the mux so unmatched routes are
// logged and tagged too. Outermost first: recovery, proxy headers, cors,
// request id, access log, metrics.
func (r *Router) wrap(h http.Handler) http.Handler {
	if r.opts.Monitoring != nil {
		h = r.opts.Monitoring.InstrumentHandler(h)
	}
	h = middleware.Logging(h)
	h = middleware.RequestID(h)

	origins := r.opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	h = cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet},
		ExposedHeaders: []string{middleware.RequestIDHeader},
	}).Handler(h)

	h = handlers.ProxyHeaders(h)
	return middleware.Recovery(h)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.handler.ServeHTTP(w, req)
}
