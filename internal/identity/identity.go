// Package identity resolves the name and version a service is published under.
package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

var (
	// ErrUnavailable is returned by a Provider that has nothing to offer,
	// e.g. a missing manifest file. Chain skips such providers.
	ErrUnavailable    = errors.New("identity source unavailable")
	ErrMissingName    = errors.New("service name is required")
	ErrMissingVersion = errors.New("service version is required")
	ErrInvalidVersion = errors.New("service version is not a semantic version")
)

// Identity describes a service.
type Identity struct {
	Application string
	Name        string
	Version     string
	Domain      string
	Description string
}

// Validate checks that the identity can title an API document.
func (i Identity) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return ErrMissingName
	}
	if strings.TrimSpace(i.Version) == "" {
		return ErrMissingVersion
	}
	if !semver.IsValid(canonicalVersion(i.Version)) {
		return fmt.Errorf("%w: %q", ErrInvalidVersion, i.Version)
	}
	return nil
}

// Merge fills the empty fields of i from other.
func (i Identity) Merge(other Identity) Identity {
	if i.Application == "" {
		i.Application = other.Application
	}
	if i.Name == "" {
		i.Name = other.Name
	}
	if i.Version == "" {
		i.Version = other.Version
	}
	if i.Domain == "" {
		i.Domain = other.Domain
	}
	if i.Description == "" {
		i.Description = other.Description
	}
	return i
}

// Provider supplies (possibly partial) service identity.
type Provider interface {
	Identity(ctx context.Context) (Identity, error)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(ctx context.Context) (Identity, error)

func (f ProviderFunc) Identity(ctx context.Context) (Identity, error) {
	return f(ctx)
}

// Static returns a provider that always yields id.
func Static(id Identity) Provider {
	return ProviderFunc(func(context.Context) (Identity, error) {
		return id, nil
	})
}

// Chain merges identities from providers in order. Earlier providers win on
// conflicting fields. The merged identity is validated.
type Chain []Provider

func (c Chain) Identity(ctx context.Context) (Identity, error) {
	var merged Identity
	for _, p := range c {
		if err := ctx.Err(); err != nil {
			return Identity{}, err
		}
		id, err := p.Identity(ctx)
		if errors.Is(err, ErrUnavailable) {
			continue
		}
		if err != nil {
			return Identity{}, err
		}
		merged = merged.Merge(id)
	}
	if err := merged.Validate(); err != nil {
		return Identity{}, err
	}
	return merged, nil
}

func canonicalVersion(v string) string {
	v = strings.TrimSpace(v)
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}
