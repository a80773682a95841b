package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/itsatony/temperature-detector/api"
	"github.com/itsatony/temperature-detector/api/middleware"
	"github.com/itsatony/temperature-detector/internal/config"
	"github.com/itsatony/temperature-detector/internal/models"
	"github.com/itsatony/temperature-detector/internal/monitoring"
	"github.com/itsatony/temperature-detector/internal/service"
)

type RouterSuite struct {
	suite.Suite
	router *api.Router
}

func (s *RouterSuite) SetupTest() {
	mon := monitoring.NewService(monitoring.Config{Namespace: "test"})
	svc := service.New(config.SensorConfig{MinValue: 15, MaxValue: 30}, mon)
	s.router = api.NewRouter(svc, api.Options{Monitoring: mon})
}

func (s *RouterSuite) get(target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	recorder := httptest.NewRecorder()
	s.router.ServeHTTP(recorder, req)
	return recorder
}

func (s *RouterSuite) getReading(target string) models.Reading {
	recorder := s.get(target)
	s.Require().Equal(http.StatusOK, recorder.Code)
	s.Equal("application/json", recorder.Header().Get("Content-Type"))

	var reading models.Reading
	s.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &reading))
	return reading
}

func (s *RouterSuite) assertValueInRange(reading models.Reading) {
	s.GreaterOrEqual(reading.Value, 15.0)
	s.Less(reading.Value, 30.0)
}

func (s *RouterSuite) TestLocationQuery() {
	reading := s.getReading("/temperature?location=kitchen")

	s.Equal("Kitchen", reading.Location)
	s.Equal("3", reading.SensorID)
	s.Equal("°C", reading.Unit)
	s.Equal("active", reading.Status)
	s.Equal(models.Temperature, reading.SensorType)
	s.Equal("comment", reading.Description)
	s.False(reading.Timestamp.IsZero())
	s.assertValueInRange(reading)
}

func (s *RouterSuite) TestSensorPath() {
	reading := s.getReading("/temperature/2")

	s.Equal("Bedroom", reading.Location)
	s.Equal("2", reading.SensorID)
	s.assertValueInRange(reading)
}

func (s *RouterSuite) TestNoParameters() {
	reading := s.getReading("/temperature")

	s.Equal("Unknown", reading.Location)
	s.Equal("0", reading.SensorID)
}

func (s *RouterSuite) TestEmptyParameters() {
	reading := s.getReading("/temperature?location=&sensorId=")

	s.Equal("Unknown", reading.Location)
	s.Equal("0", reading.SensorID)
}

func (s *RouterSuite) TestSensorQuery() {
	testcases := []struct {
		sensorID string
		location string
	}{
		{"1", "Living Room"},
		{"2", "Bedroom"},
		{"3", "Kitchen"},
		{"99", "Unknown"},
	}

	for _, tc := range testcases {
		reading := s.getReading("/temperature?sensorId=" + tc.sensorID)
		s.Equal(tc.location, reading.Location)
		s.Equal(tc.sensorID, reading.SensorID)
	}
}

func (s *RouterSuite) TestUnknownSensorPath() {
	reading := s.getReading("/temperature/99")

	s.Equal("Unknown", reading.Location)
	s.Equal("99", reading.SensorID)
}

func (s *RouterSuite) TestLocationSynonyms() {
	testcases := []struct {
		query    string
		location string
		sensorID string
	}{
		{"Living%20Room", "Living Room", "1"},
		{"living_room", "Living Room", "1"},
		{"LIVING+RUM", "Living Room", "1"},
		{"Bed", "Bedroom", "2"},
		{"bedrum", "Bedroom", "2"},
		{"KITCHEN", "Kitchen", "3"},
		{"cellar", "Unknown", "0"},
	}

	for _, tc := range testcases {
		reading := s.getReading("/temperature?location=" + tc.query)
		s.Equal(tc.location, reading.Location, tc.query)
		s.Equal(tc.sensorID, reading.SensorID, tc.query)
	}
}

func (s *RouterSuite) TestMismatchedPairIsEchoed() {
	reading := s.getReading("/temperature?location=kitchen&sensorId=1")

	s.Equal("Kitchen", reading.Location)
	s.Equal("1", reading.SensorID)
}

func (s *RouterSuite) TestUnknownQueryKeysAreIgnored() {
	reading := s.getReading("/temperature?location=bed&unit=fahrenheit")

	s.Equal("Bedroom", reading.Location)
	s.Equal("2", reading.SensorID)
}

func (s *RouterSuite) TestWireFieldNames() {
	recorder := s.get("/temperature/1")
	s.Require().Equal(http.StatusOK, recorder.Code)

	var payload map[string]interface{}
	s.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &payload))

	keys := make([]string, 0, len(payload))
	for k := range payload {
		keys = append(keys, k)
	}
	s.ElementsMatch([]string{"Value", "Unit", "Timestamp", "Location", "Status", "SensorID", "SensorType", "Description"}, keys)
}

func (s *RouterSuite) TestRequestIDHeader() {
	recorder := s.get("/temperature")
	s.NotEmpty(recorder.Header().Get(middleware.RequestIDHeader))
}

func (s *RouterSuite) TestHealth() {
	recorder := s.get("/health")
	s.Equal(http.StatusOK, recorder.Code)

	var payload map[string]string
	s.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &payload))
	s.Equal("ok", payload["status"])
}

func (s *RouterSuite) TestMetrics() {
	s.get("/temperature?location=kitchen")

	recorder := s.get("/metrics")
	s.Equal(http.StatusOK, recorder.Code)
	s.Contains(recorder.Body.String(), `test_readings_total{location="Kitchen",resolution="location"} 1`)
}

func (s *RouterSuite) TestSwaggerDoc() {
	recorder := s.get("/swagger/doc.json")
	s.Equal(http.StatusOK, recorder.Code)
	s.Contains(recorder.Body.String(), `"/temperature/{sensorId}"`)
}

func (s *RouterSuite) TestUnknownRoute() {
	recorder := s.get("/humidity")
	s.Equal(http.StatusNotFound, recorder.Code)

	var payload map[string]interface{}
	s.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &payload))
	s.Equal("not_found", payload["type"])
	s.Equal(recorder.Header().Get(middleware.RequestIDHeader), payload["request_id"])
}

func (s *RouterSuite) TestMethodNotAllowed() {
	req := httptest.NewRequest(http.MethodPost, "/temperature", nil)
	recorder := httptest.NewRecorder()
	s.router.ServeHTTP(recorder, req)

	s.Equal(http.StatusMethodNotAllowed, recorder.Code)
	s.Contains(recorder.Body.String(), `"allowed":["GET"]`)
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func TestRouterWithoutMonitoring(t *testing.T) {
	svc := service.New(config.SensorConfig{MinValue: 15, MaxValue: 30}, nil)
	router := api.NewRouter(svc, api.Options{})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/temperature?sensorId=3", nil))
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"Location":"Kitchen"`)
}
