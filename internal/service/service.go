package service

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/itsatony/temperature-detector/internal/config"
	"github.com/itsatony/temperature-detector/internal/models"
	nuts "github.com/vaudience/go-nuts"
)

// Recorder is notified about every reading the service hands out
type Recorder interface {
	RecordReading(resolution, location, sensorID string)
}

// Service resolves reading requests and generates synthetic temperatures.
// It holds no per-request state and is safe for concurrent use.
type Service struct {
	minValue float64
	maxValue float64
	recorder Recorder

	// swapped in tests
	randFloat64 func() float64
	now         func() time.Time
}

// New creates a new service instance. recorder may be nil.
func New(cfg config.SensorConfig, recorder Recorder) *Service {
	return &Service{
		minValue:    cfg.MinValue,
		maxValue:    cfg.MaxValue,
		recorder:    recorder,
		randFloat64: rand.Float64,
		now:         time.Now,
	}
}

// Read resolves the query and returns a fresh reading for it
func (s *Service) Read(q models.TemperatureQuery) *models.Reading {
	res := ResolvePair(q.Location, q.SensorID)

	if res.Branch == BranchBoth && !res.Consistent() {
		nuts.L.Debugf("[TemperatureService] Sensor %s is not installed in %s, returning the pair as given", res.SensorID, res.Location)
	}

	reading := models.NewTemperatureReading(res.Location, res.SensorID, s.value(), s.now().UTC())
	nuts.L.Debugf("[TemperatureService] Resolved location=%q sensorId=%q via %s to %s/%s", q.Location, q.SensorID, res.Branch, reading.Location, reading.SensorID)

	if s.recorder != nil {
		s.recorder.RecordReading(string(res.Branch), reading.Location, reading.SensorID)
	}

	return reading
}

// ReadSensor returns a reading for a sensor, inferring its location
func (s *Service) ReadSensor(sensorID string) *models.Reading {
	return s.Read(models.TemperatureQuery{SensorID: sensorID})
}

// value draws uniformly from [minValue, maxValue)
func (s *Service) value() float64 {
	v := s.minValue + s.randFloat64()*(s.maxValue-s.minValue)
	// rounding can land exactly on the upper bound
	if v >= s.maxValue {
		v = math.Nextafter(s.maxValue, s.minValue)
	}
	return v
}
