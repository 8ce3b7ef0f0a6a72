// Package docs регистрирует описание админ API для /swagger/*any
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/healthz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Database health check",
                "responses": {
                    "200": {"description": "OK"},
                    "503": {"description": "Service Unavailable"}
                }
            }
        },
        "/api/v1/admin/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin-auth"],
                "summary": "Admin login",
                "parameters": [
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/dto.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.LoginResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}}
                }
            }
        },
        "/api/v1/admin/{resource}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["admin-content"],
                "summary": "List records (experiences, education, projects, services)",
                "parameters": [
                    {"type": "string", "name": "resource", "in": "path", "required": true},
                    {"type": "string", "name": "q", "in": "query"},
                    {"type": "integer", "name": "page", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin-content"],
                "summary": "Create record",
                "parameters": [
                    {"type": "string", "name": "resource", "in": "path", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}}
                }
            }
        },
        "/api/v1/admin/{resource}/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["admin-content"],
                "summary": "Get record",
                "parameters": [
                    {"type": "string", "name": "resource", "in": "path", "required": true},
                    {"type": "string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["admin-content"],
                "summary": "Update record",
                "parameters": [
                    {"type": "string", "name": "resource", "in": "path", "required": true},
                    {"type": "string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["admin-content"],
                "summary": "Delete record",
                "parameters": [
                    {"type": "string", "name": "resource", "in": "path", "required": true},
                    {"type": "string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}
            }
        },
        "/api/v1/admin/{resource}/{id}/order": {
            "patch": {
                "security": [{"BearerAuth": []}],
                "tags": ["admin-content"],
                "summary": "Change display order",
                "parameters": [
                    {"type": "string", "name": "resource", "in": "path", "required": true},
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/dto.OrderRequest"}}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/admin/{resource}/bulk": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["admin-content"],
                "summary": "Bulk action",
                "parameters": [
                    {"type": "string", "name": "resource", "in": "path", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/dto.BulkActionRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.BulkActionResponse"}}}
            }
        },
        "/api/v1/admin/resume": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["multipart/form-data"],
                "tags": ["admin-files"],
                "summary": "Replace resume PDF",
                "parameters": [
                    {"type": "file", "name": "file", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.FileResponse"}},
                    "413": {"description": "Request Entity Too Large"},
                    "415": {"description": "Unsupported Media Type"}
                }
            }
        },
        "/api/v1/admin/media/{folder}": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["multipart/form-data"],
                "tags": ["admin-files"],
                "summary": "Upload image",
                "parameters": [
                    {"type": "string", "name": "folder", "in": "path", "required": true},
                    {"type": "file", "name": "file", "in": "formData", "required": true}
                ],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.FileResponse"}}}
            }
        }
    },
    "definitions": {
        "apperrors.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "object",
                    "properties": {
                        "code": {"type": "string"},
                        "domain": {"type": "string"},
                        "message": {"type": "string"},
                        "details": {}
                    }
                }
            }
        },
        "dto.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "dto.LoginResponse": {
            "type": "object",
            "properties": {
                "access_token": {"type": "string"},
                "token_type": {"type": "string"},
                "expires_at": {"type": "string"}
            }
        },
        "dto.BulkActionRequest": {
            "type": "object",
            "required": ["action", "ids"],
            "properties": {
                "action": {"type": "string"},
                "ids": {"type": "array", "items": {"type": "string"}}
            }
        },
        "dto.BulkActionResponse": {
            "type": "object",
            "properties": {
                "updated": {"type": "integer"},
                "message": {"type": "string"}
            }
        },
        "dto.OrderRequest": {
            "type": "object",
            "required": ["order"],
            "properties": {
                "order": {"type": "integer"}
            }
        },
        "dto.FileResponse": {
            "type": "object",
            "properties": {
                "path": {"type": "string"},
                "url": {"type": "string"},
                "size": {"type": "integer"},
                "updated_at": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Portfolio admin API",
	Description:      "Admin API for portfolio content, contact messages and files.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
