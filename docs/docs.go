// Package docs registers the OpenAPI document served at /swagger/doc.json.
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
		"/ping": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"health"
				],
				"summary": "Ping",
				"description": "Runs SELECT 1 against the row store",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/resources.HealthResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/resources.HealthResponse"
						}
					}
				}
			}
		},
		"/v1/health": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"health"
				],
				"summary": "Health",
				"description": "Runs SELECT 1 against the row store and reports the build version",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/resources.HealthResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/resources.HealthResponse"
						}
					}
				}
			}
		},
		"/v1/averages": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"averages"
				],
				"summary": "Average all readings",
				"description": "Mean value per room type and data type over all stored readings",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.AggregatedEntry"
							}
						}
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"$ref": "#/definitions/errors.APIError"
						}
					}
				}
			}
		},
		"/v1/averages/room-types/{roomType}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"averages"
				],
				"summary": "Average readings of a room type",
				"description": "Mean value per room type and data type for one room type and Outside",
				"parameters": [
					{
						"type": "string",
						"description": "Room type identifier or name",
						"name": "roomType",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.AggregatedEntry"
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/errors.APIError"
						}
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"$ref": "#/definitions/errors.APIError"
						}
					}
				}
			}
		},
		"/v1/categories": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"categories"
				],
				"summary": "List categories",
				"description": "Configured room types and data types with their identifiers",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.CategoryListing"
						}
					}
				}
			}
		},
		"/v1/entries": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"entries"
				],
				"summary": "List readings",
				"description": "List every reading, oldest first, optionally bounded in time",
				"parameters": [
					{
						"type": "string",
						"description": "Inclusive lower bound (RFC3339)",
						"name": "start_time",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Inclusive upper bound (RFC3339)",
						"name": "end_time",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.QueryResultEntry"
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/errors.APIError"
						}
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"$ref": "#/definitions/errors.APIError"
						}
					}
				}
			}
		},
		"/v1/entries/data-types/{dataType}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"entries"
				],
				"summary": "List readings of a data type",
				"parameters": [
					{
						"type": "string",
						"description": "Data type identifier or name",
						"name": "dataType",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "Inclusive lower bound (RFC3339)",
						"name": "start_time",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Inclusive upper bound (RFC3339)",
						"name": "end_time",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.QueryResultEntry"
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/errors.APIError"
						}
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"$ref": "#/definitions/errors.APIError"
						}
					}
				}
			}
		},
		"/v1/entries/room-types/{roomType}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"entries"
				],
				"summary": "List readings of a room type",
				"description": "List the readings of one room type together with the readings taken outside",
				"parameters": [
					{
						"type": "string",
						"description": "Room type identifier or name",
						"name": "roomType",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "Inclusive lower bound (RFC3339)",
						"name": "start_time",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Inclusive upper bound (RFC3339)",
						"name": "end_time",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.QueryResultEntry"
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/errors.APIError"
						}
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"$ref": "#/definitions/errors.APIError"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"errors.APIError": {
			"type": "object",
			"properties": {
				"code": {
					"type": "integer"
				},
				"details": {},
				"message": {
					"type": "string"
				},
				"request_id": {
					"type": "string"
				},
				"type": {
					"type": "string"
				}
			}
		},
		"models.AggregatedEntry": {
			"type": "object",
			"properties": {
				"data_type": {
					"type": "string"
				},
				"room_type": {
					"type": "string"
				},
				"tip": {
					"type": "string"
				},
				"value": {
					"type": "number"
				}
			}
		},
		"models.CategoryInfo": {
			"type": "object",
			"properties": {
				"identifier": {
					"type": "string"
				},
				"name": {
					"type": "string"
				}
			}
		},
		"models.CategoryListing": {
			"type": "object",
			"properties": {
				"data_types": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.CategoryInfo"
					}
				},
				"room_types": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.CategoryInfo"
					}
				}
			}
		},
		"models.QueryResultEntry": {
			"type": "object",
			"properties": {
				"data_type": {
					"type": "string"
				},
				"id": {
					"type": "integer"
				},
				"room_type": {
					"type": "string"
				},
				"source": {
					"type": "string"
				},
				"timestamp": {
					"type": "string"
				},
				"tip": {
					"type": "string"
				},
				"value": {
					"type": "number"
				}
			}
		},
		"resources.HealthResponse": {
			"type": "object",
			"properties": {
				"message": {
					"type": "string"
				},
				"status": {
					"type": "string"
				},
				"version": {
					"type": "string"
				}
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
	Title:            "Guitarkeep Hub API",
	Description:      "Read-only queries over environmental sensor readings with comfort tips.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
