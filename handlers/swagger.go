package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the tracker API.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Header("Content-Type", "application/json")
		c.String(http.StatusOK, swaggerJSON)
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>exercise-tracker — Swagger</title>
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

// Minimal OpenAPI document describing the exercise tracker endpoints.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "exercise-tracker", "version": "v0.1.0" },
  "paths": {
    "/api/users": {
      "post": {
        "summary": "Create a user",
        "requestBody": { "content": { "application/x-www-form-urlencoded": { "schema": {"type":"object","properties":{"username":{"type":"string"}},"required":["username"]}}}},
        "responses": { "200": { "description": "created user with id and username" }, "400": { "description": "username missing" } }
      },
      "get": { "summary": "List all users", "responses": { "200": { "description": "array of users" } } }
    },
    "/api/users/{id}/exercises": {
      "post": {
        "summary": "Log an exercise for a user",
        "parameters": [ {"name":"id","in":"path","required":true,"schema":{"type":"string"}} ],
        "requestBody": { "content": { "application/x-www-form-urlencoded": { "schema": {"type":"object","properties":{"description":{"type":"string"},"duration":{"type":"integer"},"date":{"type":"string","format":"date"}},"required":["duration"]}}}},
        "responses": { "200": { "description": "user identity plus the logged exercise" }, "400": { "description": "invalid duration or date" }, "404": { "description": "unknown user" } }
      }
    },
    "/api/users/{id}/logs": {
      "get": {
        "summary": "Fetch a user's exercise log",
        "parameters": [
          {"name":"id","in":"path","required":true,"schema":{"type":"string"}},
          {"name":"from","in":"query","schema":{"type":"string","format":"date"}},
          {"name":"to","in":"query","schema":{"type":"string","format":"date"}},
          {"name":"limit","in":"query","schema":{"type":"integer"}}
        ],
        "responses": { "200": { "description": "username, count and log entries" }, "404": { "description": "unknown user" } }
      }
    },
    "/mongo-health": {
      "get": { "summary": "Store connection state", "responses": { "200": { "description": "{status: 0|1}" } } }
    }
  }
}`
