// Package docs registers the OpenAPI description served under /swagger.
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
        "/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Authenticate user and return JWT token",
                "parameters": [
                    {
                        "description": "username and password",
                        "name": "credentials",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handlers.LoginRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.LoginResult"}},
                    "400": {"description": "Invalid input", "schema": {"type": "string"}},
                    "401": {"description": "Unauthorized", "schema": {"type": "string"}}
                }
            }
        },
        "/products": {
            "get": {
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "List products",
                "description": "Lists every product, or only those of the given types",
                "parameters": [
                    {
                        "type": "array",
                        "items": {"type": "string"},
                        "collectionFormat": "multi",
                        "description": "Product types",
                        "name": "type",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Product"}}},
                    "400": {"description": "Unknown product type", "schema": {"type": "string"}},
                    "500": {"description": "Internal error", "schema": {"type": "string"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "tags": ["products"],
                "summary": "Create a new product",
                "description": "Adds a product to the inventory. The submitted ID must be null.",
                "parameters": [
                    {
                        "description": "Product to add",
                        "name": "product",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/models.Product"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created, Location header points to the new product"},
                    "400": {"description": "Bad Request", "schema": {"type": "array", "items": {"$ref": "#/definitions/handlers.ValidationError"}}},
                    "500": {"description": "Internal error", "schema": {"type": "string"}}
                }
            }
        },
        "/products/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Get product by ID",
                "parameters": [{"type": "integer", "description": "Product ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Product"}},
                    "400": {"description": "Invalid ID", "schema": {"type": "string"}},
                    "404": {"description": "Not found", "schema": {"type": "string"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "tags": ["products"],
                "summary": "Replace a product",
                "description": "The submitted ID must be null or equal to the path ID.",
                "parameters": [
                    {"type": "integer", "description": "Product ID", "name": "id", "in": "path", "required": true},
                    {"description": "Updated product", "name": "product", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.Product"}}
                ],
                "responses": {
                    "204": {"description": "Updated"},
                    "400": {"description": "Bad Request", "schema": {"type": "array", "items": {"$ref": "#/definitions/handlers.ValidationError"}}},
                    "404": {"description": "Not found", "schema": {"type": "string"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["products"],
                "summary": "Delete a product",
                "parameters": [{"type": "integer", "description": "Product ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "Deleted successfully"},
                    "404": {"description": "Not found", "schema": {"type": "string"}}
                }
            }
        },
        "/records": {
            "get": {
                "produces": ["application/xml"],
                "tags": ["records"],
                "summary": "List all records",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Records"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/xml"],
                "tags": ["records"],
                "summary": "Create a new record",
                "description": "The submitted record must not carry an ID.",
                "parameters": [
                    {"description": "Record to add", "name": "record", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.Record"}}
                ],
                "responses": {
                    "201": {"description": "Created, Location header points to the new record"},
                    "400": {"description": "ID set or malformed body", "schema": {"type": "string"}}
                }
            }
        },
        "/records/{id}": {
            "get": {
                "produces": ["application/xml"],
                "tags": ["records"],
                "summary": "Get record by ID",
                "parameters": [{"type": "integer", "description": "Record ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Record"}},
                    "404": {"description": "Not found", "schema": {"type": "string"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/xml"],
                "tags": ["records"],
                "summary": "Replace a record",
                "description": "The submitted ID must be absent or equal to the path ID.",
                "parameters": [
                    {"type": "integer", "description": "Record ID", "name": "id", "in": "path", "required": true},
                    {"description": "Updated record", "name": "record", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.Record"}}
                ],
                "responses": {
                    "204": {"description": "Updated"},
                    "400": {"description": "ID mismatch", "schema": {"type": "string"}},
                    "404": {"description": "Not found", "schema": {"type": "string"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["records"],
                "summary": "Delete a record",
                "parameters": [{"type": "integer", "description": "Record ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "Deleted successfully"},
                    "404": {"description": "Not found", "schema": {"type": "string"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.LoginRequest": {
            "type": "object",
            "properties": {"username": {"type": "string"}, "password": {"type": "string"}}
        },
        "handlers.LoginResult": {
            "type": "object",
            "properties": {"token": {"type": "string"}}
        },
        "handlers.ValidationError": {
            "type": "object",
            "properties": {"field": {"type": "string"}, "description": {"type": "string"}}
        },
        "models.Product": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "type": {"type": "string", "enum": ["STANDARD", "PREMIUM", "SECONDHAND"]}
            }
        },
        "models.Record": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "artist": {"type": "string"},
                "year": {"type": "integer"}
            }
        },
        "models.Records": {
            "type": "object",
            "properties": {"items": {"type": "array", "items": {"$ref": "#/definitions/models.Record"}}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Inventory REST API",
	Description:      "CRUD API for products (JSON) and records (XML).",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
