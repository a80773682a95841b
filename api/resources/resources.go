// FilePath: api/resources/resources.go
package resources

import (
	"encoding/json"
	"net/http"

	"github.com/itsatony/temperature-detector/api/middleware"
	"github.com/itsatony/temperature-detector/internal/errors"
	"github.com/itsatony/temperature-detector/internal/service"
	nuts "github.com/vaudience/go-nuts"
)

// Resources holds all HTTP resource handlers
type Resources struct {
	Temperature *TemperatureHandlers
	HealthCheck func(w http.ResponseWriter, r *http.Request)
	Docs        func(w http.ResponseWriter, r *http.Request)
	NotFound    http.Handler
	NotAllowed  http.Handler
}

// NewResources creates a new Resources instance
func NewResources(svc *service.Service) *Resources {
	return &Resources{
		Temperature: NewTemperatureHandlers(svc),
		HealthCheck: HealthCheck,
		Docs:        Docs,
		NotFound:    http.HandlerFunc(notFound),
		NotAllowed:  http.HandlerFunc(methodNotAllowed),
	}
}

func notFound(w http.ResponseWriter, r *http.Request) {
	respondWithError(w, errors.NewNotFoundError("no route for "+r.URL.Path, nil).
		WithRequestID(middleware.RequestIDFromContext(r.Context())))
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondWithError(w, errors.NewMethodNotAllowedError(r.Method+" not allowed on "+r.URL.Path, nil).
		WithRequestID(middleware.RequestIDFromContext(r.Context())).
		WithDetails(map[string][]string{"allowed": {http.MethodGet}}))
}

func respondWithError(w http.ResponseWriter, err *errors.APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.Code)
	json.NewEncoder(w).Encode(err)
	nuts.L.Warnf("[API] %s", err.Error())
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	b, err := json.Marshal(payload)
	if err != nil {
		respondWithError(w, errors.NewInternalError("failed to encode response", err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(b)
}
