package identity

import (
	"context"
	"fmt"
	"os"
)

// Environment variables set by the codefly runtime for a running service.
const (
	EnvService        = "CODEFLY__SERVICE"
	EnvServiceVersion = "CODEFLY__SERVICE_VERSION"
	EnvApplication    = "CODEFLY__APPLICATION"
	EnvDomain         = "CODEFLY__SERVICE_DOMAIN"
)

// EnvProvider reads identity from the process environment.
type EnvProvider struct {
	lookup func(string) (string, bool)
}

func NewEnvProvider() *EnvProvider {
	return &EnvProvider{lookup: os.LookupEnv}
}

func (p *EnvProvider) Identity(_ context.Context) (Identity, error) {
	lookup := p.lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}

	var (
		id    Identity
		found bool
	)
	for key, dst := range map[string]*string{
		EnvService:        &id.Name,
		EnvServiceVersion: &id.Version,
		EnvApplication:    &id.Application,
		EnvDomain:         &id.Domain,
	} {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
			found = true
		}
	}
	if !found {
		return Identity{}, fmt.Errorf("%w: %s is not set", ErrUnavailable, EnvService)
	}
	return id, nil
}
