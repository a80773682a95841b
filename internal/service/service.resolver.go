package service

import "github.com/itsatony/temperature-detector/internal/models"

// Branch names the rule that produced a Resolution
type Branch string

const (
	BranchNone     Branch = "none"
	BranchSensor   Branch = "sensor"
	BranchLocation Branch = "location"
	BranchBoth     Branch = "both"
)

// Resolution is a resolved (location, sensor) pair
type Resolution struct {
	Location models.Location
	SensorID string
	Branch   Branch
}

// ResolvePair fills in whichever half of the (location, sensor) pair is
// missing. Empty strings count as missing. When both are given they are
// returned as-is, even if the sensor table disagrees with the location.
func ResolvePair(locationText, sensorID string) Resolution {
	switch {
	case locationText == "" && sensorID == "":
		return Resolution{
			Location: models.Unknown,
			SensorID: models.Unknown.DefaultSensorID(),
			Branch:   BranchNone,
		}
	case locationText == "":
		return Resolution{
			Location: models.LocationForSensor(sensorID),
			SensorID: sensorID,
			Branch:   BranchSensor,
		}
	case sensorID == "":
		loc := models.ParseLocation(locationText)
		return Resolution{
			Location: loc,
			SensorID: loc.DefaultSensorID(),
			Branch:   BranchLocation,
		}
	default:
		return Resolution{
			Location: models.ParseLocation(locationText),
			SensorID: sensorID,
			Branch:   BranchBoth,
		}
	}
}

// Consistent reports whether the sensor table agrees with the resolved location
func (r Resolution) Consistent() bool {
	return models.LocationForSensor(r.SensorID) == r.Location
}
