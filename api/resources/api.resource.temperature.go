package resources

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gorilla/schema"
	"github.com/itsatony/temperature-detector/api/middleware"
	"github.com/itsatony/temperature-detector/internal/models"
	"github.com/itsatony/temperature-detector/internal/service"
	nuts "github.com/vaudience/go-nuts"
)

// TemperatureHandlers encapsulates the reading endpoints
type TemperatureHandlers struct {
	service *service.Service
	decoder *schema.Decoder
}

// NewTemperatureHandlers creates the reading endpoints for svc
func NewTemperatureHandlers(svc *service.Service) *TemperatureHandlers {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)

	return &TemperatureHandlers{
		service: svc,
		decoder: decoder,
	}
}

// @Summary Get a temperature reading
// @Description Resolve an optional location and/or sensor id and return a synthetic reading
// @Tags temperature
// @Produce json
// @Param location query string false "Free-form room name"
// @Param sensorId query string false "Sensor identifier"
// @Success 200 {object} models.Reading
// @Router /temperature [get]
func (h *TemperatureHandlers) GetTemperature(w http.ResponseWriter, r *http.Request) {
	var query models.TemperatureQuery
	if err := h.decoder.Decode(&query, r.URL.Query()); err != nil {
		// bad parameters fall back to defaults, never to an error response
		nuts.L.Warnf("[TemperatureHandler] Ignoring query %q (request %s): %v", r.URL.RawQuery, middleware.RequestIDFromContext(r.Context()), err)
		query = models.TemperatureQuery{}
	}

	respondWithJSON(w, http.StatusOK, h.service.Read(query))
}

// @Summary Get a temperature reading for a sensor
// @Description Return a synthetic reading for a sensor, inferring its room from the sensor table
// @Tags temperature
// @Produce json
// @Param sensorId path string true "Sensor identifier"
// @Success 200 {object} models.Reading
// @Router /temperature/{sensorId} [get]
func (h *TemperatureHandlers) GetSensorTemperature(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sensorID := vars["sensorId"]

	respondWithJSON(w, http.StatusOK, h.service.ReadSensor(sensorID))
}
