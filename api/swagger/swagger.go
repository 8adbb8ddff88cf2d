package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Teacher Evaluation API",
        "description": "Students rate their teachers; administrators review class leaderboards and yearly totals.",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Directory", "description": "Classes and their teachers"},
        {"name": "Teachers", "description": "Per-teacher rating views"},
        {"name": "Vote", "description": "Student voting form"},
        {"name": "Ratings", "description": "Raw rating batches"},
        {"name": "Admin", "description": "Leaderboards, yearly totals and exports"},
        {"name": "Preferences", "description": "Display language and message catalogs"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"},
                    "503": {"description": "A dependency is unavailable"}
                }
            }
        },
        "/api/v1/classes": {
            "get": {
                "tags": ["Directory"],
                "summary": "List classes",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/api/v1/classes/{className}/teachers": {
            "get": {
                "tags": ["Directory"],
                "summary": "List teachers assigned to a class",
                "parameters": [
                    {"name": "className", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/api/v1/teachers": {
            "get": {
                "tags": ["Directory"],
                "summary": "List all teachers",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/api/v1/teachers/{id}/ratings": {
            "get": {
                "tags": ["Teachers"],
                "summary": "List a teacher's recent ratings",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/teachers/{id}/summary": {
            "get": {
                "tags": ["Teachers"],
                "summary": "Teacher rating summary",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/vote": {
            "get": {
                "tags": ["Vote"],
                "summary": "Voting form model",
                "parameters": [
                    {"name": "class", "in": "query", "type": "string"},
                    {"name": "lang", "in": "query", "type": "string", "enum": ["uz", "ru", "en"]}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "post": {
                "tags": ["Vote"],
                "summary": "Submit a vote",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/VoteRequest"}}
                ],
                "responses": {
                    "201": {"description": "Stored", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid payload", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "422": {"description": "Incomplete vote", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "500": {"description": "Submission failed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/vote/{classCode}": {
            "get": {
                "tags": ["Vote"],
                "summary": "Voting form model for a pre-selected class",
                "parameters": [
                    {"name": "classCode", "in": "path", "required": true, "type": "string"},
                    {"name": "lang", "in": "query", "type": "string", "enum": ["uz", "ru", "en"]}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/api/v1/ratings": {
            "post": {
                "tags": ["Ratings"],
                "summary": "Submit a batch of ratings",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RatingBatchRequest"}}
                ],
                "responses": {
                    "201": {"description": "Stored", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid payload", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "500": {"description": "Submission failed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/admin/classes/{className}/ratings": {
            "get": {
                "tags": ["Admin"],
                "summary": "Class leaderboard over the rolling window",
                "parameters": [
                    {"name": "className", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/api/v1/admin/totals": {
            "get": {
                "tags": ["Admin"],
                "summary": "Yearly totals grid",
                "parameters": [
                    {"name": "year", "in": "query", "type": "integer"},
                    {"name": "month", "in": "query", "type": "string", "description": "all or 0-11"},
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "lang", "in": "query", "type": "string", "enum": ["uz", "ru", "en"]}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid year or month", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/admin/totals/export": {
            "get": {
                "tags": ["Admin"],
                "summary": "Export the yearly totals grid",
                "produces": ["text/csv", "application/pdf", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf", "xlsx"], "default": "csv"},
                    {"name": "year", "in": "query", "type": "integer"},
                    {"name": "month", "in": "query", "type": "string"},
                    {"name": "search", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "File download", "schema": {"type": "file"}},
                    "400": {"description": "Invalid query", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/admin/metrics": {
            "get": {
                "tags": ["Admin"],
                "summary": "Metrics snapshot",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/api/v1/preferences/language": {
            "get": {
                "tags": ["Preferences"],
                "summary": "Current display language",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "put": {
                "tags": ["Preferences"],
                "summary": "Change display language",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LanguagePreference"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Unsupported language", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/i18n/{lang}": {
            "get": {
                "tags": ["Preferences"],
                "summary": "Message catalog for a language",
                "parameters": [
                    {"name": "lang", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Unsupported language", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "VoteRequest": {
            "type": "object",
            "required": ["className"],
            "properties": {
                "className": {"type": "string"},
                "studentName": {"type": "string"},
                "ratings": {"type": "object", "additionalProperties": {"type": "integer", "minimum": 0, "maximum": 5}},
                "comments": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "RatingEntry": {
            "type": "object",
            "required": ["teacherId", "className", "score"],
            "properties": {
                "teacherId": {"type": "string"},
                "className": {"type": "string"},
                "score": {"type": "integer", "minimum": 1, "maximum": 5},
                "studentName": {"type": "string"},
                "comment": {"type": "string"}
            }
        },
        "RatingBatchRequest": {
            "type": "object",
            "properties": {
                "ratings": {"type": "array", "items": {"$ref": "#/definitions/RatingEntry"}}
            }
        },
        "LanguagePreference": {
            "type": "object",
            "required": ["language"],
            "properties": {
                "language": {"type": "string"},
                "available": {"type": "array", "items": {"type": "string"}}
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
