// Package openapi exports the OpenAPI document of a huma API to disk and reads
// REST endpoints back from an exported document.
package openapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	"github.com/codefly-dev/base-service/internal/identity"
)

// DefaultOutput is where the document is written, relative to the working directory.
const DefaultOutput = "../openapi/api.json"

// Format is the serialization of the exported document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Document versions huma can emit.
const (
	Version31 = "3.1"
	Version30 = "3.0"
)

var (
	ErrUnsupportedFormat  = errors.New("unsupported output format")
	ErrUnsupportedVersion = errors.New("unsupported OpenAPI version")
)

// Options controls Export. The zero value writes 3.1 JSON to DefaultOutput.
type Options struct {
	Output  string
	Format  Format
	Version string
	Logger  *zap.Logger
}

// Result describes a written document.
type Result struct {
	Path  string
	Bytes int
	Paths int
}

// Generate titles the document of api after the given service name and
// version and returns it. The document is the one api serves, so the served
// and exported documents stay identical.
func Generate(api huma.API, title, version string) (*huma.OpenAPI, error) {
	doc := api.OpenAPI()
	if doc == nil {
		return nil, errors.New("API has no OpenAPI document")
	}
	if doc.Info == nil {
		doc.Info = &huma.Info{}
	}
	doc.Info.Title = title
	doc.Info.Version = version
	return doc, nil
}

// Marshal serializes doc. Output is deterministic for a given document.
func Marshal(doc *huma.OpenAPI, format Format, version string) ([]byte, error) {
	if version == "" {
		version = Version31
	}
	if format == "" {
		format = FormatJSON
	}

	switch version {
	case Version31:
		switch format {
		case FormatJSON:
			return json.Marshal(doc)
		case FormatYAML:
			return doc.YAML()
		}
	case Version30:
		switch format {
		case FormatJSON:
			return doc.Downgrade()
		case FormatYAML:
			return doc.DowngradeYAML()
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedVersion, version)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// Write stores data at path, creating parent directories and replacing any
// existing file.
func Write(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// Export resolves the service identity, generates the document of api,
// serializes it and writes it to opts.Output.
func Export(ctx context.Context, api huma.API, provider identity.Provider, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	output := opts.Output
	if output == "" {
		output = DefaultOutput
	}

	id, err := provider.Identity(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve service identity: %w", err)
	}

	doc, err := Generate(api, id.Name, id.Version)
	if err != nil {
		return nil, err
	}

	data, err := Marshal(doc, opts.Format, opts.Version)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize OpenAPI document: %w", err)
	}

	if err := Write(output, data); err != nil {
		return nil, err
	}

	result := &Result{
		Path:  output,
		Bytes: len(data),
		Paths: len(doc.Paths),
	}
	logger.Info("OpenAPI document written",
		zap.String("path", result.Path),
		zap.String("service", id.Name),
		zap.String("version", id.Version),
		zap.Int("paths", result.Paths),
		zap.Int("bytes", result.Bytes),
	)
	return result, nil
}
