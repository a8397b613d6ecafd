package router

import (
	"github.com/danielgtaylor/huma/v2"

	v0 "github.com/codefly-dev/base-service/internal/api/handlers/v0"
)

func RegisterV0Routes(api huma.API, deps Deps) {
	v0.RegisterHealthEndpoint(api)
	v0.RegisterPingEndpoint(api)
	v0.RegisterVersionEndpoint(api, deps.Identity)
	v0.RegisterItemsEndpoints(api, deps.Items)
}
