// Package docs registers the OpenAPI description served at /swagger.
// Regenerate with `swag init -g cmd/api/main.go` after changing handler
// annotations.
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
        "/session": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["site"],
                "summary": "Current session",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.sessionResponse"}}}
            }
        },
        "/citizen-auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Sign in",
                "parameters": [{"description": "Credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.loginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.authResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.errorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/citizen-auth/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a citizen",
                "parameters": [{"description": "Citizen registration form", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.citizenRegisterRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.authResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.errorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/partner-auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Partner sign in",
                "parameters": [{"description": "Partner organisation details", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.partnerLoginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.authResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["auth"],
                "summary": "Sign out",
                "responses": {
                    "204": {"description": "No Content"},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/chat": {
            "post": {
                "produces": ["application/json"],
                "tags": ["chat"],
                "summary": "Open a chat",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ports.Conversation"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/chat/{id}/messages": {
            "get": {
                "produces": ["application/json"],
                "tags": ["chat"],
                "summary": "Read a chat",
                "parameters": [{"type": "string", "description": "Conversation id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ports.Conversation"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["chat"],
                "summary": "Send a chat message",
                "parameters": [
                    {"type": "string", "description": "Conversation id", "name": "id", "in": "path", "required": true},
                    {"description": "Message", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.chatMessageRequest"}}
                ],
                "responses": {
                    "202": {"description": "Accepted", "schema": {"$ref": "#/definitions/ports.Conversation"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/api.errorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/locale": {
            "get": {
                "produces": ["application/json"],
                "tags": ["context"],
                "summary": "UI translations",
                "parameters": [{"type": "string", "description": "en or hi", "name": "lang", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.localeResponse"}}}
            }
        },
        "/location": {
            "get": {
                "produces": ["application/json"],
                "tags": ["context"],
                "summary": "Location context",
                "parameters": [
                    {"type": "number", "description": "Latitude", "name": "lat", "in": "query"},
                    {"type": "number", "description": "Longitude", "name": "lng", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Location"}}}
            }
        }
    },
    "definitions": {
        "api.errorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "handler.loginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "handler.citizenRegisterRequest": {
            "type": "object",
            "required": ["name", "email", "password", "confirmPassword", "dob", "phone", "address", "pincode", "state", "district"],
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"},
                "confirmPassword": {"type": "string"},
                "dob": {"type": "string", "example": "2000-05-17"},
                "phone": {"type": "string", "maxLength": 10},
                "address": {"type": "string"},
                "pincode": {"type": "string", "maxLength": 6},
                "state": {"type": "string"},
                "district": {"type": "string"}
            }
        },
        "handler.partnerLoginRequest": {
            "type": "object",
            "required": ["orgName", "email", "password"],
            "properties": {
                "orgName": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"},
                "contactPerson": {"type": "string"},
                "role": {"type": "string"},
                "phone": {"type": "string"}
            }
        },
        "handler.authResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "session": {"$ref": "#/definitions/domain.Session"},
                "landing": {"type": "string"},
                "expires_at": {"type": "string", "format": "date-time"}
            }
        },
        "handler.sessionResponse": {
            "type": "object",
            "properties": {
                "session": {"$ref": "#/definitions/domain.Session"},
                "landing": {"type": "string"},
                "sidebar": {"type": "array", "items": {"$ref": "#/definitions/domain.SidebarItem"}}
            }
        },
        "handler.chatMessageRequest": {
            "type": "object",
            "properties": {"text": {"type": "string"}}
        },
        "handler.localeResponse": {
            "type": "object",
            "properties": {
                "language": {"type": "string"},
                "toggle": {"type": "string"},
                "translations": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "domain.Session": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "state": {"type": "string", "enum": ["loading", "anonymous", "authenticated"]},
                "user": {"type": "object"},
                "userType": {"type": "string", "enum": ["citizen", "authority", "partner", "admin"]}
            }
        },
        "domain.SidebarItem": {
            "type": "object",
            "properties": {"path": {"type": "string"}, "label": {"type": "string"}}
        },
        "domain.Location": {
            "type": "object",
            "properties": {
                "city": {"type": "string"},
                "state": {"type": "string"},
                "coordinates": {"type": "object", "properties": {"lat": {"type": "number"}, "lng": {"type": "number"}}},
                "notice": {"type": "string"}
            }
        },
        "ports.Conversation": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "typing": {"type": "boolean"},
                "messages": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "id": {"type": "string"},
                            "text": {"type": "string"},
                            "sender": {"type": "string", "enum": ["user", "bot"]},
                            "timestamp": {"type": "string", "format": "date-time"}
                        }
                    }
                }
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
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "JAAAGO Civic Portal API",
	Description:      "Citizen, authority and partner portal for civic issue reporting.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
