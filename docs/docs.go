// Package docs registers the OpenAPI description of the HTTP API with swag.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/temperature": {
            "get": {
                "description": "Resolve an optional location and/or sensor id and return a synthetic reading",
                "produces": ["application/json"],
                "tags": ["temperature"],
                "summary": "Get a temperature reading",
                "parameters": [
                    {"type": "string", "description": "Free-form room name", "name": "location", "in": "query"},
                    {"type": "string", "description": "Sensor identifier", "name": "sensorId", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Reading"}}
                }
            }
        },
        "/temperature/{sensorId}": {
            "get": {
                "description": "Return a synthetic reading for a sensor, inferring its room from the sensor table",
                "produces": ["application/json"],
                "tags": ["temperature"],
                "summary": "Get a temperature reading for a sensor",
                "parameters": [
                    {"type": "string", "description": "Sensor identifier", "name": "sensorId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Reading"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["ops"],
                "summary": "Health check",
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "definitions": {
        "models.Reading": {
            "type": "object",
            "properties": {
                "Value": {"type": "number"},
                "Unit": {"type": "string", "example": "°C"},
                "Timestamp": {"type": "string", "format": "date-time"},
                "Location": {"type": "string", "example": "Kitchen"},
                "Status": {"type": "string", "example": "active"},
                "SensorID": {"type": "string", "example": "3"},
                "SensorType": {"type": "string", "example": "temperature"},
                "Description": {"type": "string", "example": "comment"}
            }
        },
        "errors.APIError": {
            "type": "object",
            "properties": {
                "type": {"type": "string"},
                "message": {"type": "string"},
                "code": {"type": "integer"},
                "request_id": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Temperature Detector API",
	Description:      "Simulated temperature sensor network.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
