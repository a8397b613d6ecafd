// Package router contains API routing logic
package router

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"

	v0 "github.com/codefly-dev/base-service/internal/api/handlers/v0"
	"github.com/codefly-dev/base-service/internal/identity"
	"github.com/codefly-dev/base-service/internal/service"
	"github.com/codefly-dev/base-service/internal/telemetry"
)

// OpenAPIPath is the path huma serves the generated document under,
// without the .json / .yaml extension.
const OpenAPIPath = "/openapi"

// Deps carries everything the routes need.
type Deps struct {
	Identity identity.Identity
	Items    service.ItemService
	// Metrics is optional; when nil no telemetry middleware or /metrics route is installed.
	Metrics *telemetry.Metrics
}

// NewHumaConfig returns the huma configuration titled after the service identity.
func NewHumaConfig(id identity.Identity) huma.Config {
	cfg := huma.DefaultConfig(id.Name, id.Version)
	cfg.OpenAPIPath = OpenAPIPath
	cfg.Info.Description = id.Description
	return cfg
}

// NewHumaAPI creates the huma API on mux and registers every route.
func NewHumaAPI(mux *http.ServeMux, deps Deps) huma.API {
	api := humago.New(mux, NewHumaConfig(deps.Identity))

	if deps.Metrics != nil {
		api.UseMiddleware(MetricTelemetryMiddleware(deps.Metrics,
			WithSkipPaths("/metrics", "/docs", OpenAPIPath+".json", OpenAPIPath+".yaml"),
		))
		mux.Handle("/metrics", deps.Metrics.PrometheusHandler())
	}

	RegisterRoutes(api, deps)

	swagger := v0.SwaggerHandler(OpenAPIPath + ".json")
	mux.HandleFunc(v0.SwaggerPath, swagger)
	mux.HandleFunc(v0.SwaggerPath+"/", swagger)

	return api
}

// RegisterRoutes declares every operation of the service on api. It is shared
// by the running server and the OpenAPI exporter.
func RegisterRoutes(api huma.API, deps Deps) {
	RegisterV0Routes(api, deps)
}
