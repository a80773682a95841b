// FilePath: internal/models/models.reading.go
package models

import "time"

type SensorType string

const (
	Temperature SensorType = "temperature"
)

const (
	UnitCelsius = "°C"
	// StatusActive is reported by every simulated sensor
	StatusActive = "active"
	// DefaultDescription is a placeholder kept verbatim for existing consumers
	DefaultDescription = "comment"
)

// Reading is a single synthetic measurement. Field names are part of the
// public wire format and must not change.
type Reading struct {
	Value       float64    `json:"Value"`
	Unit        string     `json:"Unit"`
	Timestamp   time.Time  `json:"Timestamp"`
	Location    string     `json:"Location"`
	Status      string     `json:"Status"`
	SensorID    string     `json:"SensorID"`
	SensorType  SensorType `json:"SensorType"`
	Description string     `json:"Description"`
}

// NewTemperatureReading builds a reading with the fixed temperature metadata
func NewTemperatureReading(location Location, sensorID string, value float64, ts time.Time) *Reading {
	return &Reading{
		Value:       value,
		Unit:        UnitCelsius,
		Timestamp:   ts,
		Location:    location.String(),
		Status:      StatusActive,
		SensorID:    sensorID,
		SensorType:  Temperature,
		Description: DefaultDescription,
	}
}

// TemperatureQuery carries the optional request parameters of a reading
type TemperatureQuery struct {
	Location string `schema:"location"`
	SensorID string `schema:"sensorId"`
}
