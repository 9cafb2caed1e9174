package types

// GraphQL-related constants used throughout the codebase.
// Centralizing these prevents typos and makes refactoring safer.
const (
	// TypenameField is the GraphQL introspection field used for type
	// discrimination in unions and interfaces.
	TypenameField = "__typename"

	// FragmentOnPrefix is the prefix of typed inline fragments
	// (e.g., "... on Collection").
	FragmentOnPrefix = "... on "

	// IDField is the field every Node implementor exposes.
	IDField = "id"

	// NodeInterface is the name of the interface implemented by objects
	// that can be fetched by global ID.
	NodeInterface = "Node"

	// IDArgument is the argument name of the root node field.
	IDArgument = "id"

	// FirstArgument is the page size argument of connection fields.
	FirstArgument = "first"
)

// Connection shape fields.
const (
	PageInfoField        = "pageInfo"
	HasNextPageField     = "hasNextPage"
	HasPreviousPageField = "hasPreviousPage"
	EdgesField           = "edges"
	CursorField          = "cursor"
	NodeField            = "node"
)

// Default connection page sizes.
const (
	// RootPageSize is the page size of product and collection
	// connections.
	RootPageSize = 20

	// NestedPageSize is the page size of connections nested under an
	// entity (images, variants, line items).
	NestedPageSize = 250
)
