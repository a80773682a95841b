package monitoring

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	nuts "github.com/vaudience/go-nuts"
)

// EventReadingGenerated is emitted once per reading handed out
const EventReadingGenerated = "reading.generated"

// Config holds monitoring configuration
type Config struct {
	Namespace string
}

// Service provides monitoring functionality
type Service struct {
	config   Config
	registry *prometheus.Registry
	readings *prometheus.CounterVec
	duration *prometheus.HistogramVec
	events   *nuts.EventEmitter
}

// NewService creates a new monitoring service with its own registry, so
// several instances can coexist in one process (tests, embedded servers).
func NewService(config Config) *Service {
	s := &Service{
		config:   config,
		registry: prometheus.NewRegistry(),
		readings: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: config.Namespace,
				Name:      "readings_total",
				Help:      "A counter of generated readings by resolved location and resolution branch",
			}, []string{"location", "resolution"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: config.Namespace,
				Name:      "server_request_duration_seconds",
				Help:      "A histogram of the latency in seconds for serving requests",
				Buckets:   prometheus.DefBuckets,
			}, []string{"code", "method"},
		),
		events: nuts.NewEventEmitter(),
	}

	s.registry.MustRegister(
		s.readings,
		s.duration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return s
}

// RecordReading counts a generated reading and notifies event listeners
func (s *Service) RecordReading(resolution, location, sensorID string) {
	s.readings.With(prometheus.Labels{
		"location":   location,
		"resolution": resolution,
	}).Inc()

	s.events.Emit(EventReadingGenerated, sensorID, location, resolution)
}

// OnReading registers a callback for generated readings
func (s *Service) OnReading(handler func(sensorID, location, resolution string)) {
	s.events.On(EventReadingGenerated, nuts.NID("lsn", 8), func(args ...interface{}) {
		if len(args) < 3 {
			return
		}
		sensorID, _ := args[0].(string)
		location, _ := args[1].(string)
		resolution, _ := args[2].(string)
		handler(sensorID, location, resolution)
	})
}

// InstrumentHandler records the duration of requests served by next,
// partitioned by method and status code.
func (s *Service) InstrumentHandler(next http.Handler) http.Handler {
	return promhttp.InstrumentHandlerDuration(s.duration, next)
}

// Handler exposes the registry in the Prometheus text format
func (s *Service) Handler() http.Handler {
	return promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})
}
