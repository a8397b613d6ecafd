package v0

import (
	"net/http"

	_ "github.com/swaggo/files"
	httpSwagger "github.com/swaggo/http-swagger"
)

// SwaggerPath is where the Swagger UI is mounted.
const SwaggerPath = "/v0/swagger"

// SwaggerHandler returns a handler that serves the Swagger UI for the
// document published at specURL
func SwaggerHandler(specURL string) http.HandlerFunc {
	handler := httpSwagger.Handler(
		httpSwagger.URL(specURL),
		httpSwagger.DeepLinking(true),
	)

	return func(w http.ResponseWriter, r *http.Request) {
		// When accessed directly, redirect to the UI path
		if r.URL.Path == SwaggerPath {
			http.Redirect(w, r, SwaggerPath+"/", http.StatusFound)
			return
		}

		handler.ServeHTTP(w, r)
	}
}
