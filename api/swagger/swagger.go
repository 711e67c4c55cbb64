package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Preschool Check-In API",
        "description": "Shared backend for campus check-in kiosks and attendance dashboards",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Authentication", "description": "Passphrase sessions"},
        {"name": "Kiosk", "description": "Check-in screen and status taps"},
        {"name": "Dashboard", "description": "Daily, roster and statistics views"},
        {"name": "Roster", "description": "Enrollment snapshot"},
        {"name": "Events", "description": "Live view updates over SSE"},
        {"name": "Exports", "description": "Downloadable roster files"},
        {"name": "Audit", "description": "Transition trail"}
    ],
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Exchange the staff passphrase for a session token",
                "parameters": [
                    {"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "Session issued", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Wrong passphrase"}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "tags": ["Authentication"],
                "summary": "End a session",
                "responses": {
                    "204": {"description": "Session ended"}
                }
            }
        },
        "/kiosk": {
            "get": {
                "tags": ["Kiosk"],
                "summary": "Letter-grouped student list with status counts",
                "parameters": [
                    {"in": "query", "name": "campus", "type": "string"},
                    {"in": "query", "name": "classroom", "type": "string"},
                    {"in": "query", "name": "notHereOnly", "type": "boolean"}
                ],
                "responses": {
                    "200": {"description": "Kiosk view", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/kiosk/tap": {
            "post": {
                "tags": ["Kiosk"],
                "summary": "Advance a student's status",
                "parameters": [
                    {"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/TapRequest"}}
                ],
                "responses": {
                    "200": {"description": "Transition applied", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Student not on the roster"},
                    "409": {"description": "A tap for this student is already in flight"}
                }
            }
        },
        "/dashboard/daily": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "AM/PM classroom groupings for one weekday",
                "parameters": [
                    {"in": "query", "name": "campus", "type": "string"},
                    {"in": "query", "name": "classroom", "type": "string"},
                    {"in": "query", "name": "weekday", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Daily view", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/dashboard/roster": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Full roster table with resolved statuses",
                "responses": {
                    "200": {"description": "Roster view", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/stats": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Campus and classroom attendance statistics",
                "parameters": [
                    {"in": "query", "name": "weekday", "type": "string"},
                    {"in": "query", "name": "session", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Stats view", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/roster": {
            "get": {
                "tags": ["Roster"],
                "summary": "Current enrollment snapshot",
                "responses": {
                    "200": {"description": "Roster info", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/roster/refresh": {
            "post": {
                "tags": ["Roster"],
                "summary": "Re-fetch the roster from its source",
                "responses": {
                    "200": {"description": "Snapshot refreshed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "503": {"description": "Roster source unavailable"}
                }
            }
        },
        "/events": {
            "get": {
                "tags": ["Events"],
                "summary": "Server-sent events carrying full recomputed views",
                "parameters": [
                    {"in": "query", "name": "view", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Event stream"}
                }
            }
        },
        "/exports/roster.csv": {
            "get": {
                "tags": ["Exports"],
                "summary": "Full roster as CSV",
                "responses": {
                    "200": {"description": "CSV file"}
                }
            }
        },
        "/exports/roster.pdf": {
            "get": {
                "tags": ["Exports"],
                "summary": "Full roster as PDF",
                "responses": {
                    "200": {"description": "PDF file"}
                }
            }
        },
        "/attendance/events": {
            "get": {
                "tags": ["Audit"],
                "summary": "Transition trail for a day",
                "parameters": [
                    {"in": "query", "name": "day", "type": "string"},
                    {"in": "query", "name": "page", "type": "integer"},
                    {"in": "query", "name": "pageSize", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "Events page", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "required": ["password"],
            "properties": {
                "password": {"type": "string"},
                "remember": {"type": "boolean"}
            }
        },
        "TapRequest": {
            "type": "object",
            "required": ["student"],
            "properties": {
                "student": {"type": "string"}
            }
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "pagination": {"$ref": "#/definitions/Pagination"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
