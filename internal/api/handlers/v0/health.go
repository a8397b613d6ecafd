// Package v0 contains API handlers for version 0 of the API
package v0

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// HealthBody represents the health check response body
type HealthBody struct {
	Status string `json:"status" example:"ok" doc:"Health status"`
}

// RegisterHealthEndpoint registers the health check endpoint
func RegisterHealthEndpoint(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-health",
		Method:      http.MethodGet,
		Path:        "/v0/health",
		Summary:     "Health check",
		Description: "Check the health status of the service",
		Tags:        []string{"health"},
	}, func(_ context.Context, _ *struct{}) (*Response[HealthBody], error) {
		return &Response[HealthBody]{
			Body: HealthBody{
				Status: "ok",
			},
		}, nil
	})
}
