// Package docs registers the OpenAPI document served under /swagger/. Keep it
// in step with the swag annotations on cmd/api and internal/api/handler.
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
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/health/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.readinessResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.readinessResponse"}}
                }
            }
        },
        "/v1/quotes": {
            "post": {
                "description": "Returns every eligible courier offer, cheapest first. A shipment no courier can carry is a 200 with transportable=false.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["quotes"],
                "summary": "Price a shipment",
                "parameters": [
                    {"description": "Shipment to price (weight in grams)", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.quoteRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.quoteResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/quotes/batch": {
            "post": {
                "description": "Items are priced independently; a bad item carries its own error and does not fail the batch.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["quotes"],
                "summary": "Price several shipments",
                "parameters": [
                    {"description": "Shipments to price", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.batchQuoteRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.batchQuoteResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/couriers": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List courier services",
                "parameters": [
                    {"type": "string", "description": "import or export", "name": "type", "in": "query"},
                    {"type": "string", "description": "ISO country code the courier must serve", "name": "to", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.listResponse-handler_courierResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/currencies": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List exchange-rate records",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.listResponse-handler_currencyResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/catalog/cache": {
            "delete": {
                "security": [{"AdminToken": []}],
                "description": "Mounted only when ADMIN_TOKEN is set.",
                "tags": ["catalog"],
                "summary": "Drop the cached catalog snapshot",
                "responses": {
                    "204": {"description": "No Content"},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/shipments/check": {
            "post": {
                "description": "Decodes the body by its shipmentType (link, warehouse or export), reports every broken rule, and prices the shipment when a courier is pinned.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["shipments"],
                "summary": "Validate a shipment submission",
                "parameters": [
                    {"description": "Link, warehouse or export shipment", "name": "body", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.shipmentCheckResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.violationsResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.FieldViolation": {
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "domain.PhoneNumber": {
            "type": "object",
            "properties": {
                "country": {"type": "string"},
                "countryCallingCode": {"type": "string"},
                "nationalNumber": {"type": "string"}
            }
        },
        "handler.errorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        },
        "handler.violationsResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "violations": {"type": "array", "items": {"$ref": "#/definitions/domain.FieldViolation"}}
            }
        },
        "handler.dimensionsRequest": {
            "type": "object",
            "properties": {
                "height_cm": {"type": "number"},
                "length_cm": {"type": "number"},
                "width_cm": {"type": "number"}
            }
        },
        "handler.quoteRequest": {
            "type": "object",
            "required": ["to", "type"],
            "properties": {
                "courier_service_id": {"type": "string"},
                "dimensions": {"$ref": "#/definitions/handler.dimensionsRequest"},
                "from": {"type": "string"},
                "to": {"type": "string"},
                "type": {"type": "string", "enum": ["import", "export"]},
                "volume_cm3": {"type": "number"},
                "weight": {"type": "number"}
            }
        },
        "handler.batchQuoteRequest": {
            "type": "object",
            "required": ["quotes"],
            "properties": {
                "quotes": {"type": "array", "maxItems": 100, "minItems": 1, "items": {"$ref": "#/definitions/handler.quoteRequest"}}
            }
        },
        "handler.quoteOffer": {
            "type": "object",
            "properties": {
                "courier_service_id": {"type": "string"},
                "currency": {"type": "string"},
                "description": {"type": "string"},
                "dimension_price": {"type": "string", "example": "0"},
                "final_price": {"type": "string", "example": "40"},
                "final_weight": {"type": "string", "example": "3"},
                "image_url": {"type": "string"},
                "instruction": {"type": "string"},
                "name": {"type": "string"},
                "transhipment_time": {"type": "string"},
                "weight_price": {"type": "string", "example": "40"}
            }
        },
        "handler.quoteResponse": {
            "type": "object",
            "properties": {
                "best": {"$ref": "#/definitions/handler.quoteOffer"},
                "from": {"type": "string"},
                "prices": {"type": "array", "items": {"$ref": "#/definitions/handler.quoteOffer"}},
                "quote_id": {"type": "string"},
                "to": {"type": "string"},
                "transportable": {"type": "boolean"},
                "type": {"type": "string"},
                "volume_cm3": {"type": "number"},
                "weight": {"type": "number"}
            }
        },
        "handler.batchQuoteItem": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "index": {"type": "integer"},
                "quote": {"$ref": "#/definitions/handler.quoteResponse"}
            }
        },
        "handler.batchQuoteResponse": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/handler.batchQuoteItem"}}
            }
        },
        "handler.courierResponse": {
            "type": "object",
            "properties": {
                "adding_value": {"type": "number"},
                "countries": {"type": "array", "items": {"type": "string"}},
                "courier_service_id": {"type": "string"},
                "description": {"type": "string"},
                "image_url": {"type": "string"},
                "max_weight": {"type": "number"},
                "min_weight": {"type": "number"},
                "name": {"type": "string"},
                "transhipment_time": {"type": "string"},
                "type": {"type": "string"}
            }
        },
        "handler.currencyResponse": {
            "type": "object",
            "properties": {
                "currency_code": {"type": "string"},
                "exchange_currency_id": {"type": "string"},
                "name": {"type": "string"},
                "value": {"type": "number"}
            }
        },
        "handler.listResponse-handler_courierResponse": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/handler.courierResponse"}}
            }
        },
        "handler.listResponse-handler_currencyResponse": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/handler.currencyResponse"}}
            }
        },
        "handler.dependencyStatus": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "handler.readinessResponse": {
            "type": "object",
            "properties": {
                "dependencies": {"type": "object", "additionalProperties": {"$ref": "#/definitions/handler.dependencyStatus"}},
                "status": {"type": "string"}
            }
        },
        "handler.shipmentCheckResponse": {
            "type": "object",
            "properties": {
                "pickupPhone": {"$ref": "#/definitions/domain.PhoneNumber"},
                "quote": {"$ref": "#/definitions/handler.quoteResponse"},
                "receiverPhone": {"$ref": "#/definitions/domain.PhoneNumber"},
                "shipment": {"type": "object"},
                "shipmentType": {"type": "string"},
                "valid": {"type": "boolean"}
            }
        }
    },
    "securityDefinitions": {
        "AdminToken": {"description": "\"Bearer \" followed by ADMIN_TOKEN.", "type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Shipping Rates API",
	Description:      "Courier price quotes and shipment submission checks.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
