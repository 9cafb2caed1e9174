package query

import (
	"bytes"
	"testing"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"
	"github.com/vektah/gqlparser/v2/parser"
)

func canonical(t *testing.T, doc string) string {
	t.Helper()
	parsed, err := parser.ParseQuery(&ast.Source{Input: doc})
	if err != nil {
		t.Fatalf("failed to parse document: %v\n%s", err, doc)
	}
	var buf bytes.Buffer
	formatter.NewFormatter(&buf).FormatQueryDocument(parsed)
	return buf.String()
}

func formatAST(doc *ast.QueryDocument) string {
	var buf bytes.Buffer
	formatter.NewFormatter(&buf).FormatQueryDocument(doc)
	return buf.String()
}
