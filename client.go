package storefront

import (
	"go.uber.org/zap"

	"github.com/llehouerou/go-storefront-query/query"
	"github.com/llehouerou/go-storefront-query/schema"
	"github.com/llehouerou/go-storefront-query/types"
)

// Client creates documents for one shop.
//
// Documents created by a Client are completed against the storefront
// schema: every object implementing Node selects its id, even when an
// override list left it out.
//
// # Immutable Pattern
//
// The Client's With* methods return a new Client rather than modifying the
// receiver. Always use the returned Client:
//
//	client = client.WithDebug(true)  // Correct
//	client.WithDebug(true)            // Wrong - original client unchanged
type Client struct {
	config Config
	schema *query.Schema
	logger *zap.Logger
	debug  bool
}

// NewClient creates a Client for the shop described by config.
func NewClient(config Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	s, err := schema.Storefront()
	if err != nil {
		return nil, err
	}
	return &Client{
		config: config,
		schema: s,
		logger: zap.NewNop(),
	}, nil
}

// Config returns the client configuration.
func (c *Client) Config() Config {
	return c.config
}

// Query creates a query document and passes its root to build.
func (c *Client) Query(build func(root *query.Node), options ...query.DocumentOption) *query.Document {
	return query.NewQuery(build, c.documentOptions(options)...)
}

// Mutation creates a mutation document and passes its root to build.
func (c *Client) Mutation(build func(root *query.Node), options ...query.DocumentOption) *query.Document {
	return query.NewMutation(build, c.documentOptions(options)...)
}

// Node creates a query fetching one entity by id through the root node
// field. id may be raw ("1") or a global ID.
func (c *Client) Node(s *Selector, id string, options ...query.DocumentOption) *query.Document {
	return c.Query(func(root *query.Node) {
		s.AttachNode(root, types.NodeField, id)
	}, options...)
}

// Build serializes doc, logging the result when debug is enabled.
func (c *Client) Build(doc *query.Document) (string, error) {
	s, err := doc.Build()
	if c.debug {
		if err != nil {
			c.logger.Debug("failed to build document",
				zap.String("operation", string(doc.Operation())),
				zap.Error(err),
			)
		} else {
			c.logger.Debug("built document",
				zap.String("operation", string(doc.Operation())),
				zap.Int("bytes", len(s)),
				zap.String("document", s),
			)
		}
	}
	return s, err
}

// RequestBody returns the JSON payload of doc for the shop's endpoint.
func (c *Client) RequestBody(doc *query.Document, variables map[string]any) ([]byte, error) {
	s, err := c.Build(doc)
	if err != nil {
		return nil, err
	}
	return query.EncodeRequestBody(s, doc.Name(), variables)
}

func (c *Client) documentOptions(options []query.DocumentOption) []query.DocumentOption {
	if c.schema == nil {
		return options
	}
	return append([]query.DocumentOption{query.WithSchema(c.schema)}, options...)
}

// clone creates a copy of the Client with all fields preserved.
func (c *Client) clone() *Client {
	return &Client{
		config: c.config,
		schema: c.schema,
		logger: c.logger,
		debug:  c.debug,
	}
}

// WithLogger returns a new Client logging to logger. A nil logger
// disables logging.
func (c *Client) WithLogger(logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	clone := c.clone()
	clone.logger = logger
	return clone
}

// WithDebug returns a new Client with debug logging of built documents
// enabled or disabled.
func (c *Client) WithDebug(debug bool) *Client {
	clone := c.clone()
	clone.debug = debug
	return clone
}

// WithSchema returns a new Client completing documents against s instead
// of the embedded storefront schema. A nil schema turns completion off, so
// override lists are selected exactly as given.
func (c *Client) WithSchema(s *query.Schema) *Client {
	clone := c.clone()
	clone.schema = s
	return clone
}
