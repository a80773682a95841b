// FilePath: internal/models/models.location.go
package models

import "strings"

// Location is one of the canonical rooms known to the sensor network
type Location int

const (
	Unknown Location = iota
	LivingRoom
	Bedroom
	Kitchen
)

// locationSynonyms maps lowercased user input to a canonical location
var locationSynonyms = map[string]Location{
	"living room": LivingRoom,
	"livingroom":  LivingRoom,
	"living":      LivingRoom,
	"living_room": LivingRoom,
	"living rum":  LivingRoom,
	"bedroom":     Bedroom,
	"bed":         Bedroom,
	"bed_room":    Bedroom,
	"bedrum":      Bedroom,
	"kitchen":     Kitchen,
}

// sensorLocations is the fixed table of sensors installed per room
var sensorLocations = map[string]Location{
	"1": LivingRoom,
	"2": Bedroom,
	"3": Kitchen,
}

// ParseLocation normalizes free-form text to a canonical location. Anything
// outside the synonym table yields Unknown.
func ParseLocation(s string) Location {
	if loc, ok := locationSynonyms[strings.ToLower(s)]; ok {
		return loc
	}
	return Unknown
}

// LocationForSensor returns the room a sensor is installed in, or Unknown
func LocationForSensor(sensorID string) Location {
	if loc, ok := sensorLocations[sensorID]; ok {
		return loc
	}
	return Unknown
}

// String returns the canonical display name
func (l Location) String() string {
	switch l {
	case LivingRoom:
		return "Living Room"
	case Bedroom:
		return "Bedroom"
	case Kitchen:
		return "Kitchen"
	default:
		return "Unknown"
	}
}

// DefaultSensorID returns the id of the sensor installed in the room
func (l Location) DefaultSensorID() string {
	switch l {
	case LivingRoom:
		return "1"
	case Bedroom:
		return "2"
	case Kitchen:
		return "3"
	default:
		return "0"
	}
}
