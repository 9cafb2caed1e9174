package storefront

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"
	"github.com/vektah/gqlparser/v2/parser"

	"github.com/llehouerou/go-storefront-query/query"
)

// canonical parses and re-formats doc so that documents can be compared
// regardless of whitespace and commas.
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

func requireDocument(t *testing.T, want string, doc *query.Document) {
	t.Helper()
	got, err := doc.Build()
	require.NoError(t, err)
	require.Equal(t, canonical(t, want), canonical(t, got))
}

func newTestClient(t *testing.T) *Client {
	t.Helper()
	config, err := NewConfig("sendmecats.myshopify.com", "abc123")
	require.NoError(t, err)
	client, err := NewClient(config)
	require.NoError(t, err)
	return client
}
