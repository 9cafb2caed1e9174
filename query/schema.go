package query

import (
	"fmt"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"

	"github.com/llehouerou/go-storefront-query/types"
)

// Schema gives documents knowledge of the server's types.
type Schema struct {
	schema *ast.Schema
}

// ValidationError is returned when a document does not validate against
// its schema.
type ValidationError struct {
	Errors gqlerror.List
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("document does not validate: %s", e.Errors.Error())
}

// NewSchema wraps an already loaded schema.
func NewSchema(s *ast.Schema) *Schema {
	return &Schema{schema: s}
}

// LoadSchema parses the SDL sdl. name is used in error positions.
func LoadSchema(name, sdl string) (*Schema, error) {
	s, err := gqlparser.LoadSchema(&ast.Source{Name: name, Input: sdl})
	if err != nil {
		return nil, fmt.Errorf("failed to load schema %s: %w", name, err)
	}
	return &Schema{schema: s}, nil
}

// AST returns the underlying schema.
func (s *Schema) AST() *ast.Schema {
	return s.schema
}

// ValidateString parses doc and validates it.
func (s *Schema) ValidateString(doc string) error {
	_, errs := gqlparser.LoadQuery(s.schema, doc)
	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

// ImplementsNode reports whether the named type is an object implementing
// the Node interface.
func (s *Schema) ImplementsNode(typeName string) bool {
	def := s.schema.Types[typeName]
	if def == nil || def.Kind != ast.Object {
		return false
	}
	for _, iface := range def.Interfaces {
		if iface == types.NodeInterface {
			return true
		}
	}
	return false
}

// complete returns a copy of doc in which every non-empty selection of a
// Node object selects id first. Fields unknown to the schema are copied
// unchanged.
func (s *Schema) complete(doc *ast.QueryDocument) *ast.QueryDocument {
	out := &ast.QueryDocument{Fragments: doc.Fragments}
	for _, op := range doc.Operations {
		var root *ast.Definition
		switch op.Operation {
		case ast.Query:
			root = s.schema.Query
		case ast.Mutation:
			root = s.schema.Mutation
		case ast.Subscription:
			root = s.schema.Subscription
		}
		completed := *op
		completed.SelectionSet = s.completeSelectionSet(root, op.SelectionSet)
		out.Operations = append(out.Operations, &completed)
	}
	return out
}

// completeSelectionSet copies set, which selects from parent. parent is
// nil when the type is unknown.
func (s *Schema) completeSelectionSet(parent *ast.Definition, set ast.SelectionSet) ast.SelectionSet {
	if len(set) == 0 {
		return set
	}

	out := make(ast.SelectionSet, 0, len(set)+1)
	for _, selection := range set {
		switch selection := selection.(type) {
		case *ast.Field:
			var child *ast.Definition
			if parent != nil {
				if def := parent.Fields.ForName(selection.Name); def != nil {
					child = s.schema.Types[def.Type.Name()]
				}
			}
			field := *selection
			field.SelectionSet = s.completeSelectionSet(child, selection.SelectionSet)
			out = append(out, &field)
		case *ast.InlineFragment:
			fragment := *selection
			fragment.SelectionSet = s.completeSelectionSet(s.schema.Types[selection.TypeCondition], selection.SelectionSet)
			out = append(out, &fragment)
		default:
			out = append(out, selection)
		}
	}
	return s.withID(parent, out)
}

func (s *Schema) withID(def *ast.Definition, set ast.SelectionSet) ast.SelectionSet {
	if def == nil || !s.ImplementsNode(def.Name) {
		return set
	}
	for _, selection := range set {
		if field, ok := selection.(*ast.Field); ok && field.Name == types.IDField && field.Alias == field.Name {
			return set
		}
	}
	id := &ast.Field{Alias: types.IDField, Name: types.IDField}
	return append(ast.SelectionSet{id}, set...)
}
