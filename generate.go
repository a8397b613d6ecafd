//go:build generate
// +build generate

// Package main provides the central entry point for code generation in this project.
//
// It writes the service OpenAPI document to ../openapi/api.json from the routes
// registered in internal/api/router.
//
// Usage:
//   go generate -tags generate ./...
package main

//go:generate go run ./cmd/openapi
