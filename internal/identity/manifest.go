package identity

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// DefaultManifest is the service manifest file name.
const DefaultManifest = "service.codefly.yaml"

const manifestSchemaURL = "https://codefly.dev/schemas/service-manifest.json"

//go:embed manifest.schema.json
var manifestSchema []byte

// Manifest is the subset of service.codefly.yaml that names a service.
type Manifest struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Application string `yaml:"application"`
	Domain      string `yaml:"domain"`
	Description string `yaml:"description"`
}

// ManifestProvider reads identity from a service manifest on disk.
type ManifestProvider struct {
	Path string
}

func NewManifestProvider(path string) *ManifestProvider {
	if path == "" {
		path = DefaultManifest
	}
	return &ManifestProvider{Path: path}
}

func (p *ManifestProvider) Identity(_ context.Context) (Identity, error) {
	data, err := os.ReadFile(p.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Identity{}, fmt.Errorf("%w: manifest %s not found", ErrUnavailable, p.Path)
		}
		return Identity{}, fmt.Errorf("failed to read manifest: %w", err)
	}

	m, err := ParseManifest(data)
	if err != nil {
		return Identity{}, fmt.Errorf("manifest %s: %w", p.Path, err)
	}

	return Identity{
		Application: m.Application,
		Name:        m.Name,
		Version:     m.Version,
		Domain:      m.Domain,
		Description: m.Description,
	}, nil
}

// ParseManifest decodes a YAML manifest and checks it against the manifest schema.
func ParseManifest(data []byte) (*Manifest, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	if err := validateManifest(raw); err != nil {
		return nil, err
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	return &m, nil
}

func validateManifest(raw any) error {
	// The validator works on JSON values, so normalize YAML scalars first.
	encoded, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("manifest is not representable as JSON: %w", err)
	}
	var doc any
	if err := json.Unmarshal(encoded, &doc); err != nil {
		return fmt.Errorf("manifest is not representable as JSON: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft7
	if err := compiler.AddResource(manifestSchemaURL, bytes.NewReader(manifestSchema)); err != nil {
		return fmt.Errorf("failed to add manifest schema resource: %w", err)
	}
	schema, err := compiler.Compile(manifestSchemaURL)
	if err != nil {
		return fmt.Errorf("invalid manifest schema: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("invalid manifest: %w", err)
	}
	return nil
}
