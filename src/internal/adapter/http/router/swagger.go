package router

import (
	"fmt"
	"net/http"
)

func registerSwaggerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/", http.StatusMovedPermanently)
	})

	mux.HandleFunc("/swagger/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = fmt.Fprintf(w, swaggerHTML, "/swagger/openapi.json")
	})

	mux.HandleFunc("/swagger/openapi.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(openAPI))
	})
}

const swaggerHTML = `<!doctype html>
<html>
<head>
  <meta charset="utf-8" />
  <title>Banking Transaction API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.onload = function() {
      window.ui = SwaggerUIBundle({
        url: "%s",
        dom_id: "#swagger-ui"
      });
    };
  </script>
</body>
</html>`

const openAPI = `{
  "openapi": "3.0.3",
  "info": {
    "title": "Banking Transaction API",
    "version": "1.0.0"
  },
  "paths": {
    "/api/v1/accounts/{account_id}/debit": {
      "post": {
        "summary": "Debit an account",
        "parameters": [
          {
            "name": "account_id",
            "in": "path",
            "required": true,
            "schema": {"type": "string"}
          }
        ],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["amount", "currency", "transaction_reference"],
                "properties": {
                  "amount": {"type": "string", "description": "Positive decimal"},
                  "currency": {"type": "string", "pattern": "^[A-Z]{3}$"},
                  "description": {"type": "string"},
                  "transaction_reference": {"type": "string", "minLength": 5}
                }
              }
            }
          }
        },
        "responses": {
          "200": {"description": "Transaction completed"},
          "400": {"description": "Validation error, currency mismatch or insufficient funds"},
          "404": {"description": "Account not found"}
        }
      }
    },
    "/api/v1/accounts/{account_id}/credit": {
      "post": {
        "summary": "Credit an account",
        "parameters": [
          {
            "name": "account_id",
            "in": "path",
            "required": true,
            "schema": {"type": "string"}
          }
        ],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["amount", "currency", "transaction_reference"],
                "properties": {
                  "amount": {"type": "string", "description": "Positive decimal"},
                  "currency": {"type": "string", "pattern": "^[A-Z]{3}$"},
                  "description": {"type": "string"},
                  "transaction_reference": {"type": "string", "minLength": 5}
                }
              }
            }
          }
        },
        "responses": {
          "200": {"description": "Transaction completed"},
          "400": {"description": "Validation error or currency mismatch"},
          "404": {"description": "Account not found"}
        }
      }
    },
    "/api/v1/accounts/{account_id}/balance": {
      "get": {
        "summary": "Get account balance",
        "parameters": [
          {
            "name": "account_id",
            "in": "path",
            "required": true,
            "schema": {"type": "string"}
          }
        ],
        "responses": {
          "200": {"description": "Balance fetched"},
          "404": {"description": "Account not found"}
        }
      }
    },
    "/api/v1/transactions/{transaction_id}": {
      "get": {
        "summary": "Get a transaction record",
        "parameters": [
          {
            "name": "transaction_id",
            "in": "path",
            "required": true,
            "schema": {"type": "string", "format": "uuid"}
          }
        ],
        "responses": {
          "200": {"description": "Transaction fetched"},
          "404": {"description": "Transaction not found"}
        }
      }
    },
    "/api/v1/transactions": {
      "get": {
        "summary": "Rate-limited acknowledgement endpoint",
        "parameters": [
          {
            "name": "X-API-Key",
            "in": "header",
            "required": false,
            "schema": {"type": "string"}
          }
        ],
        "responses": {
          "200": {"description": "Acknowledged"},
          "429": {"description": "Rate limit exceeded"}
        }
      }
    }
  }
}`
