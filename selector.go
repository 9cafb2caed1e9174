package storefront

import (
	"fmt"

	"github.com/llehouerou/go-storefront-query/internal/gid"
	"github.com/llehouerou/go-storefront-query/query"
	"github.com/llehouerou/go-storefront-query/types"
)

// Errors recorded by AttachNode and returned by GlobalID for ids that do not
// identify an object of the selector's type.
var (
	ErrEmptyID        = gid.ErrEmpty
	ErrMalformedID    = gid.ErrMalformed
	ErrIDTypeMismatch = gid.ErrTypeMismatch
)

// Selector selects the fields of one entity type. It is immutable and can
// be attached any number of times, from any goroutine.
type Selector struct {
	typeName string
	defaults Fields
	override Fields
}

func newSelector(typeName string, defaults, override Fields) *Selector {
	return &Selector{
		typeName: typeName,
		defaults: defaults,
		override: override,
	}
}

// TypeName returns the GraphQL type the selector selects from.
func (s *Selector) TypeName() string {
	return s.typeName
}

// Overridden reports whether the selector uses a caller supplied list
// instead of the defaults.
func (s *Selector) Overridden() bool {
	return s.override != nil
}

// Fields returns a copy of the field list the selector attaches.
func (s *Selector) Fields() Fields {
	return append(Fields{}, s.fields()...)
}

// Defaults returns a copy of the default field list of the entity.
func (s *Selector) Defaults() Fields {
	return append(Fields{}, s.defaults...)
}

func (s *Selector) fields() Fields {
	if s.override != nil {
		return s.override
	}
	return s.defaults
}

// Attach adds fieldName to parent and selects the fields under it.
func (s *Selector) Attach(parent *query.Node, fieldName string) {
	if s == nil {
		parent.Errorf("field %q: %w", fieldName, ErrNilComposer)
		return
	}
	s.SelectInto(parent.Add(fieldName))
}

// SelectInto selects the fields directly under node, without adding a
// field for the entity itself.
func (s *Selector) SelectInto(node *query.Node) {
	if s == nil {
		node.Errorf("%w", ErrNilComposer)
		return
	}
	for _, f := range s.fields() {
		f.attach(node)
	}
}

// AttachNode fetches the entity by global ID:
//
//	fieldName(id: "gid://shopify/<Type>/<id>") {
//		__typename
//		... on <Type> { <fields> }
//	}
//
// id may be a raw id, which is expanded with the selector's type name, or
// a complete global ID of that type. Any other id records an error.
func (s *Selector) AttachNode(parent *query.Node, fieldName, id string) {
	if s == nil {
		parent.Errorf("field %q: %w", fieldName, ErrNilComposer)
		return
	}
	globalID, err := GlobalID(s.typeName, id)
	if err != nil {
		parent.Errorf("field %q: %w", fieldName, err)
		return
	}

	node := parent.Add(fieldName, query.Arg(types.IDArgument, globalID))
	node.Add(types.TypenameField)
	s.SelectInto(node.AddInlineFragment(s.typeName))
}

// GlobalID returns the global ID of the typeName object with the given id.
// A global ID is returned in canonical form when it belongs to typeName.
func GlobalID(typeName, id string) (string, error) {
	resolved, err := gid.Resolve(typeName, id)
	if err != nil {
		return "", fmt.Errorf("invalid %s id: %w", typeName, err)
	}
	return resolved.String(), nil
}
