package storefront

import (
	"errors"

	"github.com/llehouerou/go-storefront-query/query"
)

// ErrNilComposer is recorded on the document when a nested field
// specification carries no composer.
var ErrNilComposer = errors.New("nested field has no composer")

// Composer attaches a selection under fieldName on parent.
//
// Selector and Connection implement Composer; any other implementation can
// be nested in an override list.
type Composer interface {
	Attach(parent *query.Node, fieldName string)
}

// FieldSpec is one entry of a field list: either a leaf field selected by
// name, or a field whose sub-selection is produced by a Composer.
type FieldSpec struct {
	name     string
	composer Composer
	nested   bool
}

// Field selects a leaf field by name.
func Field(name string) FieldSpec {
	return FieldSpec{name: name}
}

// Nested selects the field name and lets c attach its sub-selection.
func Nested(name string, c Composer) FieldSpec {
	return FieldSpec{name: name, composer: c, nested: true}
}

// Name returns the field name.
func (f FieldSpec) Name() string {
	return f.name
}

// IsNested reports whether f was created with Nested.
func (f FieldSpec) IsNested() bool {
	return f.nested
}

// Composer returns the composer of a nested field, nil for leaves.
func (f FieldSpec) Composer() Composer {
	return f.composer
}

func (f FieldSpec) attach(node *query.Node) {
	if !f.nested {
		node.Add(f.name)
		return
	}
	if f.composer == nil {
		node.Errorf("field %q: %w", f.name, ErrNilComposer)
		return
	}
	f.composer.Attach(node, f.name)
}

// Fields is an ordered field list.
//
// A nil Fields means "use the entity defaults". A non-nil list, even an
// empty one, replaces the defaults entirely: Fields{} selects nothing.
type Fields []FieldSpec

// Names returns the field names of fs in order.
func (fs Fields) Names() []string {
	names := make([]string, len(fs))
	for i, f := range fs {
		names[i] = f.name
	}
	return names
}
