// Package docs registra la descripción OpenAPI servida en /swagger.
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
        "/": {
            "get": {"tags": ["booking"], "summary": "Tarifas, horarios y borrador de reserva", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["booking"], "summary": "Guarda el borrador y redirige al catálogo", "responses": {"303": {"description": "See Other"}}}
        },
        "/paseadores": {
            "get": {
                "tags": ["walkers"],
                "summary": "Catálogo de paseadores filtrado",
                "parameters": [
                    {"type": "string", "name": "search", "in": "query"},
                    {"type": "string", "name": "location", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "502": {"description": "Bad Gateway"}}
            }
        },
        "/paseador/{walkerID}": {
            "get": {
                "tags": ["walkers"],
                "summary": "Ficha de un paseador",
                "parameters": [{"type": "string", "name": "walkerID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/reservar/{walkerID}": {
            "get": {
                "tags": ["booking"],
                "summary": "Asistente de reserva",
                "parameters": [{"type": "string", "name": "walkerID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            },
            "post": {
                "tags": ["booking"],
                "summary": "Crea la reserva y abre el checkout",
                "parameters": [{"type": "string", "name": "walkerID", "in": "path", "required": true}],
                "responses": {"303": {"description": "Redirect al checkout"}, "422": {"description": "Unprocessable Entity"}}
            }
        },
        "/mis-reservas": {
            "get": {"tags": ["booking"], "summary": "Reservas del usuario", "responses": {"200": {"description": "OK"}, "303": {"description": "Sin sesión"}}}
        },
        "/mis-reservas/{bookingID}/cancelar": {
            "post": {
                "tags": ["booking"],
                "summary": "Cancela una reserva",
                "parameters": [{"type": "string", "name": "bookingID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/mis-reservas/perros": {
            "post": {"tags": ["dogs"], "summary": "Registra un perro", "responses": {"201": {"description": "Created"}}}
        },
        "/pago-exitoso": {
            "get": {
                "tags": ["payment"],
                "summary": "Confirmación del pago (long polling)",
                "parameters": [{"type": "string", "name": "session_id", "in": "query"}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/pago-exitoso/ws": {
            "get": {"tags": ["payment"], "summary": "Estado del pago por WebSocket", "responses": {"101": {"description": "Switching Protocols"}}}
        },
        "/seguimiento/{bookingID}": {
            "get": {
                "tags": ["tracking"],
                "summary": "Seguimiento del paseo",
                "parameters": [{"type": "string", "name": "bookingID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/seguimiento/{bookingID}/ws": {
            "get": {
                "tags": ["tracking"],
                "summary": "Seguimiento en vivo por WebSocket",
                "parameters": [{"type": "string", "name": "bookingID", "in": "path", "required": true}],
                "responses": {"101": {"description": "Switching Protocols"}}
            }
        },
        "/auth/login": {"post": {"tags": ["session"], "summary": "Login con email y contraseña", "responses": {"200": {"description": "OK"}}}},
        "/auth/registro": {"post": {"tags": ["session"], "summary": "Alta de usuario", "responses": {"200": {"description": "OK"}}}},
        "/auth/salir": {"post": {"tags": ["session"], "summary": "Cierra la sesión", "responses": {"204": {"description": "No Content"}}}},
        "/auth/google": {"get": {"tags": ["session"], "summary": "Redirige al login federado", "responses": {"303": {"description": "See Other"}}}},
        "/auth/yo": {"get": {"tags": ["session"], "summary": "Usuario de la sesión", "responses": {"200": {"description": "OK"}}}},
        "/auth/sesion": {"post": {"tags": ["session"], "summary": "Arranca la sesión desde la URL del navegador", "responses": {"200": {"description": "OK"}}}},
        "/perfil": {
            "get": {"tags": ["session"], "summary": "Perfil y perros", "responses": {"200": {"description": "OK"}}},
            "patch": {"tags": ["session"], "summary": "Actualiza el perfil", "responses": {"200": {"description": "OK"}}}
        },
        "/idioma": {
            "get": {"tags": ["i18n"], "summary": "Idioma activo", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["i18n"], "summary": "Cambia el idioma", "responses": {"200": {"description": "OK"}, "422": {"description": "Idioma no soportado"}}}
        },
        "/contacto": {"post": {"tags": ["contact"], "summary": "Formulario de contacto", "responses": {"200": {"description": "OK"}}}},
        "/reserva-rapida": {"post": {"tags": ["leads"], "summary": "Solicitud rápida sin cuenta", "responses": {"201": {"description": "Created"}}}},
        "/mensajes": {"get": {"tags": ["messages"], "summary": "Bandeja de mensajes", "responses": {"200": {"description": "OK"}}}},
        "/mensajes/{messageID}/leido": {
            "post": {
                "tags": ["messages"],
                "summary": "Marca un mensaje como leído",
                "parameters": [{"type": "string", "name": "messageID", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/privacidad": {"get": {"tags": ["legal"], "summary": "Política de privacidad", "responses": {"200": {"description": "OK"}}}},
        "/terminos": {"get": {"tags": ["legal"], "summary": "Términos y condiciones", "responses": {"200": {"description": "OK"}}}},
        "/cookies": {"get": {"tags": ["legal"], "summary": "Política de cookies", "responses": {"200": {"description": "OK"}}}},
        "/health": {"get": {"tags": ["ops"], "summary": "Liveness", "responses": {"200": {"description": "OK"}}}}
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Paseos Lugo",
	Description:      "Web de reservas de paseos de perros en Lugo.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
