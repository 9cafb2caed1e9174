package storefront

import (
	"errors"

	"github.com/llehouerou/go-storefront-query/query"
	"github.com/llehouerou/go-storefront-query/types"
)

// ErrInvalidPageSize is recorded when a connection is attached with a page
// size that is not positive.
var ErrInvalidPageSize = errors.New("page size must be positive")

// Connection selects a paginated list of entities:
//
//	fieldName(first: N) {
//		pageInfo { hasNextPage hasPreviousPage }
//		edges { cursor node { <entity fields> } }
//	}
type Connection struct {
	node     *Selector
	pageSize int
}

func newConnection(node *Selector, pageSize int) *Connection {
	return &Connection{node: node, pageSize: pageSize}
}

// First returns a copy of c that requests n entities per page.
func (c *Connection) First(n int) *Connection {
	if c == nil {
		return nil
	}
	return &Connection{node: c.node, pageSize: n}
}

// PageSize returns the page size c attaches with.
func (c *Connection) PageSize() int {
	return c.pageSize
}

// Node returns the selector of the entity under edges.node.
func (c *Connection) Node() *Selector {
	return c.node
}

// Attach adds the connection under fieldName with c's page size.
func (c *Connection) Attach(parent *query.Node, fieldName string) {
	var first int
	if c != nil {
		first = c.pageSize
	}
	c.AttachFirst(parent, fieldName, first)
}

// AttachFirst adds the connection under fieldName requesting first
// entities.
func (c *Connection) AttachFirst(parent *query.Node, fieldName string, first int) {
	if c == nil || c.node == nil {
		parent.Errorf("field %q: %w", fieldName, ErrNilComposer)
		return
	}
	if first <= 0 {
		parent.Errorf("connection %q: %w, got %d", fieldName, ErrInvalidPageSize, first)
		return
	}

	conn := parent.Add(fieldName, query.Arg(types.FirstArgument, first))

	pageInfo := conn.Add(types.PageInfoField)
	pageInfo.Add(types.HasNextPageField)
	pageInfo.Add(types.HasPreviousPageField)

	edges := conn.Add(types.EdgesField)
	edges.Add(types.CursorField)
	c.node.Attach(edges, types.NodeField)
}
