package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSDL = `
schema { query: Query }

interface Node { id: ID! }

type Query {
	node(id: ID!): Node
	shop: Shop!
}

type Shop {
	name: String!
	products(first: Int!): [Product!]!
	logo: Image
}

type Image {
	id: ID
	src: String!
}

type Product implements Node {
	id: ID!
	title: String!
	image: Image
	related: [Product!]!
}
`

func loadTestSchema(t *testing.T) *Schema {
	t.Helper()
	s, err := LoadSchema("test.graphql", testSDL)
	require.NoError(t, err)
	return s
}

func TestLoadSchema_Invalid(t *testing.T) {
	_, err := LoadSchema("broken.graphql", `type Query { shop: Missing }`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.graphql")
}

func TestSchema_ImplementsNode(t *testing.T) {
	s := loadTestSchema(t)

	assert.True(t, s.ImplementsNode("Product"))
	assert.False(t, s.ImplementsNode("Image"))
	assert.False(t, s.ImplementsNode("Node"))
	assert.False(t, s.ImplementsNode("Unknown"))
}

func TestWithSchema_SelectsIDOfNodes(t *testing.T) {
	s := loadTestSchema(t)

	doc := NewQuery(func(root *Node) {
		shop := root.Add("shop")
		products := shop.Add("products", Arg("first", 2))
		products.Add("title")
		products.Add("image").Add("src")
		products.Add("related").Add("title")
		shop.Add("logo").Add("src")

		node := root.Add("node", Arg("id", "1"))
		node.Add("__typename")
		node.AddInlineFragment("Product").Add("title")
	}, WithSchema(s))

	want := `{
		shop {
			products(first: 2) {
				id
				title
				image { src }
				related { id title }
			}
			logo { src }
		}
		node(id: "1") {
			__typename
			... on Product { id title }
		}
	}`

	got, err := doc.Build()
	require.NoError(t, err)
	assert.Equal(t, canonical(t, want), canonical(t, got))
	require.NoError(t, doc.Validate())

	// Building twice does not select id twice.
	again, err := doc.Build()
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestWithSchema_BuildLeavesASTUntouched(t *testing.T) {
	s := loadTestSchema(t)

	doc := NewQuery(func(root *Node) {
		root.Add("shop").Add("products", Arg("first", 1)).Add("title")
	}, WithSchema(s))

	before := formatAST(doc.AST())
	got, err := doc.Build()
	require.NoError(t, err)

	assert.Equal(t, before, formatAST(doc.AST()))
	assert.Equal(t, canonical(t, `{ shop { products(first: 1) { title } } }`), canonical(t, before))
	assert.Equal(t, canonical(t, `{ shop { products(first: 1) { id title } } }`), canonical(t, got))
}

func TestWithSchema_KeepsExistingIDAndEmptySelections(t *testing.T) {
	s := loadTestSchema(t)

	doc := NewQuery(func(root *Node) {
		products := root.Add("shop").Add("products", Arg("first", 1))
		products.Add("title")
		products.Add("id")
		root.Add("shop").Add("products", Arg("first", 1))
	}, WithSchema(s))

	assert.Equal(t,
		canonical(t, `{ shop { products(first: 1) { title id } } shop { products(first: 1) } }`),
		canonical(t, doc.String()),
	)
}

func TestWithSchema_IgnoresUnknownFields(t *testing.T) {
	s := loadTestSchema(t)

	doc := NewQuery(func(root *Node) {
		root.Add("unknown").Add("title")
		root.Add("shop").Add("unknown").Add("title")
	}, WithSchema(s))

	assert.Equal(t,
		canonical(t, `{ unknown { title } shop { unknown { title } } }`),
		canonical(t, doc.String()),
	)

	var validationErr *ValidationError
	require.ErrorAs(t, doc.Validate(), &validationErr)
	assert.NotEmpty(t, validationErr.Error())
}
