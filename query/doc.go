// Package query builds GraphQL query and mutation documents as trees of
// nodes.
//
// A document is created with NewQuery or NewMutation and populated by
// adding fields to nodes:
//
//	doc := query.NewQuery(func(root *query.Node) {
//		shop := root.Add("shop")
//		products := shop.Add("products", query.Arg("first", 20))
//		products.Add("pageInfo").Add("hasNextPage")
//	})
//	s, err := doc.Build()
//
// The tree is kept as a github.com/vektah/gqlparser/v2/ast document and
// serialized with the gqlparser formatter. Field names are not checked
// against any schema unless the document is built WithSchema.
package query
