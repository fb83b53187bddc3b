// Package docs holds the OpenAPI document served at /swagger. Regenerate with
// `swag init -g cmd/api/main.go`.
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
        "/api/v1/tasks/parse": {
            "post": {
                "description": "Extracts timing, people, place, priority and recurrence from free text.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Parse a task",
                "parameters": [{"description": "Task text", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.parseReq"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "413": {"description": "Text too long", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/tasks/edit-tag": {
            "post": {
                "description": "Rewrites the words behind a tag so the text carries the new value, then re-parses.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Edit one tag",
                "parameters": [{"description": "Text, tag id and new value", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.editTagReq"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "404": {"description": "Tag not found", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "422": {"description": "Value does not fit the tag", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/tasks/enhance": {
            "post": {
                "description": "Parses, then asks the language model for details the rules missed.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Parse with model assistance",
                "parameters": [{"description": "Task text and context", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.enhanceReq"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/roster": {
            "get": {
                "description": "Returns the family members and places the parser recognises.",
                "produces": ["application/json"],
                "tags": ["Roster"],
                "summary": "Active roster",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}}}
            }
        },
        "/health": {"get": {"tags": ["Health"], "summary": "Health Check", "responses": {"200": {"description": "API is healthy"}}}},
        "/ready": {"get": {"tags": ["Health"], "summary": "Readiness Check", "responses": {"200": {"description": "API is ready"}}}},
        "/live": {"get": {"tags": ["Health"], "summary": "Liveness Check", "responses": {"200": {"description": "API is alive"}}}}
    },
    "definitions": {
        "http.parseReq": {
            "type": "object",
            "properties": {
                "text": {"type": "string"},
                "source": {"type": "string", "enum": ["typed", "speech"]}
            }
        },
        "http.editTagReq": {
            "type": "object",
            "properties": {
                "text": {"type": "string"},
                "tagId": {"type": "integer"},
                "value": {"type": "object"}
            }
        },
        "http.enhanceReq": {
            "type": "object",
            "properties": {
                "text": {"type": "string"},
                "recentTasks": {"type": "array", "items": {"type": "string"}},
                "categories": {"type": "array", "items": {"type": "string"}}
            }
        },
        "response.Resp": {
            "type": "object",
            "properties": {
                "error_code": {"type": "integer"},
                "message": {"type": "string"},
                "data": {},
                "errors": {}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Family Task Parser API",
	Description:      "Bilingual (Hebrew/English) family task parsing with optional Gemini enhancement.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
