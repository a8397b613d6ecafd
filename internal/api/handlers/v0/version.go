package v0

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/codefly-dev/base-service/internal/identity"
)

// VersionBody identifies the running service
type VersionBody struct {
	Application string `json:"application,omitempty" doc:"Application the service belongs to"`
	Service     string `json:"service" doc:"Service name"`
	Version     string `json:"version" doc:"Service version"`
}

// RegisterVersionEndpoint registers the endpoint reporting the service identity
func RegisterVersionEndpoint(api huma.API, id identity.Identity) {
	huma.Register(api, huma.Operation{
		OperationID: "get-version",
		Method:      http.MethodGet,
		Path:        "/v0/version",
		Summary:     "Service version",
		Description: "Get the name and version of the running service",
		Tags:        []string{"health"},
	}, func(_ context.Context, _ *struct{}) (*Response[VersionBody], error) {
		return &Response[VersionBody]{
			Body: VersionBody{
				Application: id.Application,
				Service:     id.Name,
				Version:     id.Version,
			},
		}, nil
	})
}
