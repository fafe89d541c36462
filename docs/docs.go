// Package docs registers the OpenAPI document served by the Swagger UI.
// Keep it in step with the handler annotations in internal/httpapi.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {"name": "MIT", "url": "https://opensource.org/licenses/MIT"},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "produces": ["application/json"],
                "summary": "Liveness message for the studio front-end",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/types.MessageResponse"}}}
            }
        },
        "/api/models/checkpoints": {
            "get": {
                "produces": ["application/json"],
                "summary": "List model files with their preview images",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/types.AssetRecord"}}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/api/models/vaes": {
            "get": {
                "produces": ["application/json"],
                "summary": "List model files with their preview images",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/types.AssetRecord"}}}}
            }
        },
        "/api/models/loras": {
            "get": {
                "produces": ["application/json"],
                "summary": "List model files with their preview images",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/types.AssetRecord"}}}}
            }
        },
        "/api/models/detection": {
            "get": {
                "produces": ["application/json"],
                "summary": "List detection model file names",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"type": "string"}}}}
            }
        },
        "/api/models/elements": {
            "get": {
                "produces": ["application/json"],
                "summary": "List decorative element image names, sorted",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"type": "string"}}}}
            }
        },
        "/api/presets/{polarity}": {
            "get": {
                "produces": ["application/json"],
                "summary": "List prompt presets",
                "parameters": [{"type": "string", "description": "positive or negative", "name": "polarity", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/types.PresetRecord"}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/api/status": {
            "get": {
                "produces": ["application/json"],
                "summary": "Catalog directories and uptime",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/types.StatusResponse"}}}
            }
        }
    },
    "definitions": {
        "types.AssetRecord": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "example": "realistic_v5.safetensors"},
                "path": {"type": "string", "example": "sd15/realistic/realistic_v5.safetensors"},
                "subfolder": {"type": "string", "example": "sd15/realistic"},
                "preview_image": {"type": "string", "x-nullable": true, "example": "sd15/realistic/realistic_v5.png"}
            }
        },
        "types.PresetRecord": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "example": "Epic Style"},
                "prompt": {"type": "string", "example": ", epic, cinematic, dramatic lighting, high detail"}
            }
        },
        "types.MessageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string", "example": "WebDraw Studio Backend is running!"}}
        },
        "types.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "unknown catalog: embeddings"},
                "code": {"type": "integer", "example": 404}
            }
        },
        "types.CatalogStatus": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "dir": {"type": "string"},
                "exists": {"type": "boolean"},
                "is_dir": {"type": "boolean"}
            }
        },
        "types.StatusResponse": {
            "type": "object",
            "properties": {
                "catalogs": {"type": "array", "items": {"$ref": "#/definitions/types.CatalogStatus"}},
                "uptime_seconds": {"type": "integer"},
                "server_time_unix": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "webdraw API",
	Description:      "Read-only listings of local models, presets and elements for the WebDraw studio.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
