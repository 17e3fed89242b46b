// Package docs Trip Planner API.
//
// Расчет поездок между двумя текстовыми точками: наземный маршрут через
// GraphHopper внутри одной страны или оценка перелета по дуге большого круга.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"},
                    "503": {"description": "Store unavailable"}
                }
            }
        },
        "/api/v1/trips": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Trips"],
                "summary": "Расчет поездки",
                "parameters": [
                    {
                        "description": "Точки и профиль",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.PlanTripRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TripResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/trips/history": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Trips"],
                "summary": "История поездок",
                "parameters": [
                    {"type": "integer", "default": 50, "name": "limit", "in": "query"},
                    {"type": "string", "description": "ground, air", "name": "modes", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.HistoryEntryDTO"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.PlanTripRequest": {
            "type": "object",
            "required": ["from", "to"],
            "properties": {
                "from": {"type": "string", "example": "New York"},
                "to": {"type": "string", "example": "Boston"},
                "vehicle": {"type": "string", "enum": ["car", "bike", "foot", "airplane"]},
                "units": {"type": "string", "enum": ["km", "miles"]}
            }
        },
        "dto.InstructionDTO": {
            "type": "object",
            "properties": {
                "text": {"type": "string"},
                "distance_meters": {"type": "number"},
                "distance": {"type": "string"}
            }
        },
        "dto.TripResponse": {
            "type": "object",
            "properties": {
                "mode": {"type": "string", "enum": ["ground", "air"]},
                "vehicle": {"type": "string"},
                "units": {"type": "string"},
                "distance_meters": {"type": "number"},
                "distance": {"type": "string"},
                "duration_seconds": {"type": "number"},
                "duration": {"type": "string"},
                "elevation_gain_meters": {"type": "number"},
                "elevation_loss_meters": {"type": "number"},
                "fuel_liters": {"type": "number"},
                "estimated_cost_usd": {"type": "number"},
                "instructions": {"type": "array", "items": {"$ref": "#/definitions/dto.InstructionDTO"}},
                "history_line": {"type": "string"},
                "history_error": {"type": "string"},
                "vehicle_defaulted": {"type": "boolean"},
                "units_defaulted": {"type": "boolean"}
            }
        },
        "dto.HistoryEntryDTO": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "line": {"type": "string"},
                "origin": {"type": "string"},
                "destination": {"type": "string"},
                "mode": {"type": "string"},
                "vehicle": {"type": "string"},
                "distance_meters": {"type": "number"},
                "duration_seconds": {"type": "number"},
                "recorded_at": {"type": "string"}
            }
        },
        "utils.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "object",
                    "properties": {
                        "code": {"type": "string"},
                        "message": {"type": "string"},
                        "details": {"type": "object"}
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Trip Planner API",
	Description:      "Ground routes via GraphHopper and great-circle flight estimates between two places.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
