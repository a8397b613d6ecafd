// Command openapi writes the OpenAPI document of the service to disk.
//
// The routes are the ones the service registers at runtime, backed by an
// in-memory store so no database is needed. The document is titled with the
// service name and version from the environment or service.codefly.yaml.
//
// Usage:
//
//	go run ./cmd/openapi
//	go run ./cmd/openapi --output openapi/api.yaml --format yaml
//	go run ./cmd/openapi --list
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/danielgtaylor/huma/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/codefly-dev/base-service/internal/api/router"
	"github.com/codefly-dev/base-service/internal/config"
	"github.com/codefly-dev/base-service/internal/database"
	"github.com/codefly-dev/base-service/internal/identity"
	"github.com/codefly-dev/base-service/internal/logging"
	"github.com/codefly-dev/base-service/internal/openapi"
	"github.com/codefly-dev/base-service/internal/service"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := config.NewConfig()

	cmd := &cobra.Command{
		Use:           "openapi",
		Short:         "Write the service OpenAPI document",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, _ := cmd.Flags().GetBool("list")
			err := run(cmd, cfg, list)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&cfg.OpenAPIOutput, "output", "o", cfg.OpenAPIOutput, "Output file")
	cmd.Flags().StringVarP(&cfg.OpenAPIFormat, "format", "f", cfg.OpenAPIFormat, "Output format (json or yaml)")
	cmd.Flags().StringVar(&cfg.OpenAPIVersion, "openapi-version", cfg.OpenAPIVersion, "OpenAPI version (3.1 or 3.0)")
	cmd.Flags().StringVarP(&cfg.Manifest, "manifest", "m", cfg.Manifest, "Service manifest providing name and version")
	cmd.Flags().Bool("list", false, "Print the endpoints of the written document")

	return cmd
}

func run(cmd *cobra.Command, cfg *config.Config, list bool) error {
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx := cmd.Context()
	provider := identity.Chain{
		identity.NewEnvProvider(),
		identity.NewManifestProvider(cfg.Manifest),
	}

	api, err := newAPI(cmd, provider)
	if err != nil {
		return err
	}

	result, err := openapi.Export(ctx, api, provider, openapi.Options{
		Output:  cfg.OpenAPIOutput,
		Format:  openapi.Format(cfg.OpenAPIFormat),
		Version: cfg.OpenAPIVersion,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	if !list {
		return nil
	}

	endpoints, err := openapi.LoadEndpoints(ctx, result.Path)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, e := range endpoints {
		fmt.Fprintf(out, "%-7s %s\t%s\n", e.Method, e.Path, e.OperationID)
	}
	logger.Debug("Listed endpoints", zap.Int("count", len(endpoints)))
	return nil
}

// newAPI constructs the service application with every route registered.
func newAPI(cmd *cobra.Command, provider identity.Provider) (huma.API, error) {
	id, err := provider.Identity(cmd.Context())
	if err != nil {
		return nil, fmt.Errorf("failed to resolve service identity: %w", err)
	}
	return router.NewHumaAPI(http.NewServeMux(), router.Deps{
		Identity: id,
		Items:    service.NewItemService(database.NewMemoryDB()),
	}), nil
}
