package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the note service.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>notekeep — Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// Minimal OpenAPI document describing the note endpoints. The note
// identifier is a query parameter on the four lookup operations, not a
// path segment; isActive appears in responses only and is never accepted
// as input.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "notekeep", "version": "v0.1.0" },
  "components": {
    "schemas": {
      "Note": { "type": "object", "properties": {
        "id": {"type":"string"},
        "title": {"type":"string"},
        "content": {"type":"string"},
        "lastUpdatedAt": {"type":"string","format":"date-time"},
        "isActive": {"type":"boolean","readOnly":true}
      }},
      "NoteInput": { "type": "object", "properties": {
        "title": {"type":"string"},
        "content": {"type":"string"}
      }}
    },
    "parameters": {
      "noteId": { "name": "id", "in": "query", "required": true, "schema": {"type":"string"} }
    }
  },
  "paths": {
    "/note": {
      "post": {
        "summary": "Create a note",
        "requestBody": { "content": { "application/json": { "schema": {"$ref":"#/components/schemas/NoteInput"}}}},
        "responses": { "201": { "description": "created note" } }
      },
      "get": {
        "summary": "Retrieve a note by id (soft-deleted notes included)",
        "parameters": [ {"$ref":"#/components/parameters/noteId"} ],
        "responses": { "200": { "description": "note" }, "404": { "description": "unknown id" } }
      },
      "put": {
        "summary": "Replace title and content",
        "parameters": [ {"$ref":"#/components/parameters/noteId"} ],
        "requestBody": { "content": { "application/json": { "schema": {"$ref":"#/components/schemas/NoteInput"}}}},
        "responses": { "200": { "description": "updated note" }, "404": { "description": "unknown id" } }
      },
      "patch": {
        "summary": "Update a subset of title/content",
        "parameters": [ {"$ref":"#/components/parameters/noteId"} ],
        "requestBody": { "content": { "application/json": { "schema": {"$ref":"#/components/schemas/NoteInput"}}}},
        "responses": { "200": { "description": "updated note" }, "404": { "description": "unknown id" } }
      },
      "delete": {
        "summary": "Soft-delete a note (marks it inactive, keeps it stored)",
        "parameters": [ {"$ref":"#/components/parameters/noteId"} ],
        "responses": { "200": { "description": "deleted note" }, "404": { "description": "unknown id" } }
      }
    },
    "/note/all": {
      "get": { "summary": "List active notes, most recently updated first", "responses": { "200": { "description": "array of notes" } } }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } }
  }
}`
