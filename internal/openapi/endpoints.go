package openapi

import (
	"context"
	"fmt"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"
)

// Endpoint is a single REST operation read from a document.
type Endpoint struct {
	Method      string
	Path        string
	OperationID string
	Tags        []string
}

func (e Endpoint) String() string {
	return e.Method + " " + e.Path
}

// LoadEndpoints reads an exported document (JSON or YAML) and lists its
// operations sorted by path then method.
func LoadEndpoints(ctx context.Context, path string) ([]Endpoint, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load OpenAPI document %s: %w", path, err)
	}
	return Endpoints(doc), nil
}

// Endpoints lists the operations of doc sorted by path then method.
func Endpoints(doc *openapi3.T) []Endpoint {
	var endpoints []Endpoint
	if doc.Paths == nil {
		return endpoints
	}
	for path, item := range doc.Paths.Map() {
		for method, op := range item.Operations() {
			endpoints = append(endpoints, Endpoint{
				Method:      method,
				Path:        path,
				OperationID: op.OperationID,
				Tags:        op.Tags,
			})
		}
	}
	sort.Slice(endpoints, func(i, j int) bool {
		if endpoints[i].Path != endpoints[j].Path {
			return endpoints[i].Path < endpoints[j].Path
		}
		return endpoints[i].Method < endpoints[j].Method
	})
	return endpoints
}
