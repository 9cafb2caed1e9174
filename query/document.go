package query

import (
	"bytes"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"
	"go.uber.org/multierr"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Document is a single GraphQL operation under construction.
//
// A Document is not safe for concurrent use while it is being built.
type Document struct {
	operation *ast.OperationDefinition
	schema    *Schema
	errs      error
}

// DocumentOption configures a Document.
type DocumentOption func(*Document)

// OperationName names the operation ("query GetProducts { ... }").
func OperationName(name string) DocumentOption {
	return func(d *Document) {
		d.operation.Name = name
	}
}

// WithSchema makes Build complete the selection against s: objects that
// implement the Node interface always select their id. Validate also uses
// s.
func WithSchema(s *Schema) DocumentOption {
	return func(d *Document) {
		d.schema = s
	}
}

// NewQuery creates a query document and passes its root node to build.
// build may be nil.
func NewQuery(build func(root *Node), options ...DocumentOption) *Document {
	return newDocument(ast.Query, build, options...)
}

// NewMutation creates a mutation document and passes its root node to
// build. build may be nil.
func NewMutation(build func(root *Node), options ...DocumentOption) *Document {
	return newDocument(ast.Mutation, build, options...)
}

func newDocument(
	op ast.Operation,
	build func(root *Node),
	options ...DocumentOption,
) *Document {
	d := &Document{
		operation: &ast.OperationDefinition{Operation: op},
	}
	for _, option := range options {
		option(d)
	}
	if build != nil {
		build(d.Root())
	}
	return d
}

// Root returns the node holding the top-level selection set.
func (d *Document) Root() *Node {
	return &Node{doc: d, set: &d.operation.SelectionSet}
}

// Name returns the operation name, empty for anonymous operations.
func (d *Document) Name() string {
	return d.operation.Name
}

// Operation reports whether d is a query or a mutation.
func (d *Document) Operation() ast.Operation {
	return d.operation.Operation
}

// AST returns the document tree as built so far.
func (d *Document) AST() *ast.QueryDocument {
	return &ast.QueryDocument{
		Operations: ast.OperationList{d.operation},
	}
}

// Err returns every error recorded while building, or nil.
func (d *Document) Err() error {
	return d.errs
}

func (d *Document) addError(err error) {
	d.errs = multierr.Append(d.errs, err)
}

// Build serializes the document. It fails if any error was recorded while
// the tree was built; all of them are returned together.
//
// Schema completion is applied to a copy: AST is the same before and after
// Build.
func (d *Document) Build() (string, error) {
	if d.errs != nil {
		return "", fmt.Errorf("failed to build %s: %w", d.operation.Operation, d.errs)
	}

	doc := d.AST()
	if d.schema != nil {
		doc = d.schema.complete(doc)
	}

	var buf bytes.Buffer
	formatter.NewFormatter(&buf).FormatQueryDocument(doc)
	return buf.String(), nil
}

// String returns the serialized document, or an empty string when Build
// fails.
func (d *Document) String() string {
	s, err := d.Build()
	if err != nil {
		return ""
	}
	return s
}

// Validate builds the document and validates it against the schema given
// with WithSchema.
func (d *Document) Validate() error {
	if d.schema == nil {
		return ErrNoSchema
	}
	s, err := d.Build()
	if err != nil {
		return err
	}
	return d.schema.ValidateString(s)
}

// RequestBody returns the JSON payload a GraphQL server expects for the
// document: {"query": ..., "variables": ...}. Empty variables are omitted.
func (d *Document) RequestBody(variables map[string]any) ([]byte, error) {
	s, err := d.Build()
	if err != nil {
		return nil, err
	}
	return EncodeRequestBody(s, d.operation.Name, variables)
}

// EncodeRequestBody encodes an already built document as a request
// payload. Empty operationName and variables are omitted.
func EncodeRequestBody(document, operationName string, variables map[string]any) ([]byte, error) {
	if len(variables) == 0 {
		variables = nil
	}
	in := struct {
		Query         string         `json:"query"`
		OperationName string         `json:"operationName,omitempty"`
		Variables     map[string]any `json:"variables,omitempty"`
	}{
		Query:         document,
		OperationName: operationName,
		Variables:     variables,
	}
	b, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}
	return b, nil
}
