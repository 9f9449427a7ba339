package httpapi

import (
	"sync"

	"github.com/dmitrijs2005/userlist/internal/wire"
	"github.com/invopop/jsonschema"
)

var (
	docOnce sync.Once
	doc     map[string]any
)

func reflectSchema(v any) *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: true,
		DoNotReference:            true,
	}
	s := reflector.Reflect(v)
	s.Version = ""
	return s
}

// OpenAPIDocument returns the OpenAPI 3.0 description of the HTTP API. The
// payload schemas are reflected from the wire types.
func OpenAPIDocument() map[string]any {
	docOnce.Do(func() {
		usersSchema := reflectSchema(&wire.UsersResponse{})
		errorSchema := reflectSchema(&errorResponse{})

		jsonContent := func(schema any) map[string]any {
			return map[string]any{"application/json": map[string]any{"schema": schema}}
		}

		doc = map[string]any{
			"openapi": "3.0.3",
			"info": map[string]any{
				"title":       "User Listing API",
				"version":     "1.0.0",
				"description": "Read-only listing of users.",
			},
			"paths": map[string]any{
				"/users": map[string]any{
					"get": map[string]any{
						"summary":     "Get all users",
						"operationId": "listUsers",
						"responses": map[string]any{
							"200": map[string]any{
								"description": "A list of users",
								"content":     jsonContent(usersSchema),
							},
							"500": map[string]any{
								"description": "Failed to fetch users",
								"content":     jsonContent(errorSchema),
							},
						},
					},
				},
				"/health": map[string]any{
					"get": map[string]any{
						"summary":     "Liveness and storage check",
						"operationId": "health",
						"responses": map[string]any{
							"200": map[string]any{"description": "Service and storage are up"},
							"503": map[string]any{
								"description": "Storage unavailable",
								"content":     jsonContent(errorSchema),
							},
						},
					},
				},
			},
		}
	})
	return doc
}
