package query

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/llehouerou/go-storefront-query/types"
)

var (
	// ErrEmptyFieldName is recorded when a field is added without a name.
	ErrEmptyFieldName = errors.New("empty field name")

	// ErrEmptyTypeCondition is recorded when an inline fragment has no type.
	ErrEmptyTypeCondition = errors.New("empty inline fragment type condition")

	// ErrNoSchema is returned by Validate on documents built without a schema.
	ErrNoSchema = errors.New("document has no schema")
)

// Node is a position in the document where selections can be added: the
// operation root, a field, or an inline fragment.
type Node struct {
	doc  *Document
	set  *ast.SelectionSet
	path []string
}

// FieldOption configures a field added with Node.Add.
type FieldOption func(*ast.Field, *Node)

// Arg adds the argument name: value to the field. value is converted to a
// GraphQL literal; see Value for the supported Go types. Arguments keep the
// order in which the options are given.
func Arg(name string, value any) FieldOption {
	return func(f *ast.Field, n *Node) {
		v, err := Value(value)
		if err != nil {
			n.Errorf("argument %q of %q: %w", name, f.Name, err)
			return
		}
		f.Arguments = append(f.Arguments, &ast.Argument{Name: name, Value: v})
	}
}

// Args adds every entry of args as an argument, sorted by name.
func Args(args map[string]any) FieldOption {
	return func(f *ast.Field, n *Node) {
		for _, name := range sortedKeys(args) {
			Arg(name, args[name])(f, n)
		}
	}
}

// Alias sets the response key of the field.
func Alias(alias string) FieldOption {
	return func(f *ast.Field, _ *Node) {
		f.Alias = alias
	}
}

// Add appends the field name to n and returns the node of the new field,
// to which sub-selections can be added.
//
// An empty name records ErrEmptyFieldName; the returned node is detached
// from the document so the caller can carry on.
func (n *Node) Add(name string, options ...FieldOption) *Node {
	if name == "" {
		n.Errorf("%w", ErrEmptyFieldName)
		return n.detached(name)
	}

	field := &ast.Field{Alias: name, Name: name}
	for _, option := range options {
		option(field, n)
	}
	*n.set = append(*n.set, field)

	return &Node{doc: n.doc, set: &field.SelectionSet, path: n.childPath(name)}
}

// AddInlineFragment appends "... on typeName" to n and returns the node of
// the fragment.
func (n *Node) AddInlineFragment(typeName string) *Node {
	if typeName == "" {
		n.Errorf("%w", ErrEmptyTypeCondition)
		return n.detached(types.FragmentOnPrefix)
	}

	fragment := &ast.InlineFragment{TypeCondition: typeName}
	*n.set = append(*n.set, fragment)

	return &Node{
		doc:  n.doc,
		set:  &fragment.SelectionSet,
		path: n.childPath(types.FragmentOnPrefix + typeName),
	}
}

// Len returns the number of selections directly under n.
func (n *Node) Len() int {
	return len(*n.set)
}

// Path returns the dotted path of n from the document root.
func (n *Node) Path() string {
	return strings.Join(n.path, ".")
}

// Errorf records an error on the document. Build will fail with it.
func (n *Node) Errorf(format string, args ...any) {
	err := fmt.Errorf(format, args...)
	if path := n.Path(); path != "" {
		err = fmt.Errorf("%s: %w", path, err)
	}
	n.doc.addError(err)
}

func (n *Node) childPath(name string) []string {
	path := make([]string, 0, len(n.path)+1)
	path = append(path, n.path...)
	return append(path, name)
}

func (n *Node) detached(name string) *Node {
	return &Node{doc: n.doc, set: new(ast.SelectionSet), path: n.childPath(name)}
}
