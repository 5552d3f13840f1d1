// Package graphql provides the GraphQL transport layer for the catalog
// backend. It defines the GraphQL schema, resolvers, and error handling for
// the public content catalog and the staff mutation surface.
//
// The executable schema (generated/exec.go, with the resolver interfaces
// and NewExecutableSchema) is emitted by gqlgen and not committed; run
// `go generate ./...` before building.
package graphql

//go:generate go run github.com/99designs/gqlgen generate
