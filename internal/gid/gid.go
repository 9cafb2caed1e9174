// Package gid parses and formats storefront global identifiers of the form
// "gid://shopify/<Type>/<id>".
package gid

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// Scheme is the URI scheme of every global ID.
	Scheme = "gid://"

	// DefaultNamespace is the namespace used when expanding raw ids.
	DefaultNamespace = "shopify"
)

var (
	// ErrMalformed is returned by Parse for strings that are not global IDs.
	ErrMalformed = errors.New("malformed global id")

	// ErrEmpty is returned by Resolve for blank ids.
	ErrEmpty = errors.New("empty id")

	// ErrTypeMismatch is returned by Resolve for a global ID of another type.
	ErrTypeMismatch = errors.New("global id type mismatch")
)

// ID represents a parsed global ID.
type ID struct {
	// Namespace is the application part ("shopify").
	Namespace string
	// TypeName is the GraphQL type the ID belongs to.
	TypeName string
	// Value is the opaque per-type identifier.
	Value string
}

// String formats the ID back to its URI form.
func (id ID) String() string {
	return Scheme + id.Namespace + "/" + id.TypeName + "/" + id.Value
}

// IsGlobalID reports whether s already carries the gid:// scheme.
func IsGlobalID(s string) bool {
	return strings.HasPrefix(s, Scheme)
}

// Parse parses a global ID.
// Examples:
//   - "gid://shopify/Collection/1" -> {Namespace: "shopify", TypeName: "Collection", Value: "1"}
//   - "gid://shopify/ProductVariant/42?checkout=abc" -> {..., Value: "42?checkout=abc"}
func Parse(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if !IsGlobalID(s) {
		return ID{}, fmt.Errorf("%w: missing %q prefix in %q", ErrMalformed, Scheme, s)
	}

	parts := strings.SplitN(strings.TrimPrefix(s, Scheme), "/", 3)
	if len(parts) != 3 {
		return ID{}, fmt.Errorf("%w: expected namespace, type and value in %q", ErrMalformed, s)
	}
	for _, part := range parts {
		if part == "" {
			return ID{}, fmt.Errorf("%w: empty segment in %q", ErrMalformed, s)
		}
	}

	return ID{Namespace: parts[0], TypeName: parts[1], Value: parts[2]}, nil
}

// Resolve returns the global ID of the typeName object identified by id.
// A raw id is expanded in the default namespace. A global ID must be well
// formed and belong to typeName.
func Resolve(typeName, id string) (ID, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return ID{}, ErrEmpty
	}
	if !IsGlobalID(id) {
		return ID{Namespace: DefaultNamespace, TypeName: typeName, Value: id}, nil
	}

	parsed, err := Parse(id)
	if err != nil {
		return ID{}, err
	}
	if parsed.TypeName != typeName {
		return ID{}, fmt.Errorf("%w: %q is not a %s", ErrTypeMismatch, id, typeName)
	}
	return parsed, nil
}
