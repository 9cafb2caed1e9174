// Package schema embeds the subset of the storefront GraphQL schema that the
// composers in this module select from.
package schema

import (
	_ "embed"
	"sync"

	"github.com/llehouerou/go-storefront-query/query"
)

// SDL is the storefront schema in GraphQL schema definition language.
//
//go:embed storefront.graphql
var SDL string

var (
	once       sync.Once
	storefront *query.Schema
	loadErr    error
)

// Storefront returns the parsed storefront schema. It is parsed once and
// shared; the returned value must not be modified.
func Storefront() (*query.Schema, error) {
	once.Do(func() {
		storefront, loadErr = query.LoadSchema("storefront.graphql", SDL)
	})
	return storefront, loadErr
}

// MustStorefront is like Storefront but panics if the embedded schema
// cannot be parsed.
func MustStorefront() *query.Schema {
	s, err := Storefront()
	if err != nil {
		panic(err)
	}
	return s
}
