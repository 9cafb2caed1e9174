// Command storefront-query prints storefront GraphQL documents composed
// from the default field lists, optionally narrowed with --fields.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	storefront "github.com/llehouerou/go-storefront-query"
	"github.com/llehouerou/go-storefront-query/query"
)

// ErrMissingID is returned for node entities queried without --id.
var ErrMissingID = errors.New("--id is required for this entity")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	s, err := loadSettings(args)
	if err != nil {
		return err
	}

	logger, err := newLogger(s.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	client, err := storefront.NewClient(s.Shop)
	if err != nil {
		return err
	}
	client = client.WithLogger(logger).WithDebug(logger.Core().Enabled(zapcore.DebugLevel))
	if s.Exact {
		client = client.WithSchema(nil)
	}

	doc, err := buildDocument(client, s)
	if err != nil {
		return err
	}

	if s.JSON {
		body, err := client.RequestBody(doc, nil)
		if err != nil {
			return err
		}
		logger.Info("request",
			zap.String("url", client.Config().GraphQLURL()),
			zap.Int("bytes", len(body)),
		)
		_, err = fmt.Fprintln(out, string(body))
		return err
	}

	text, err := client.Build(doc)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(out, text)
	return err
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(lvl)
	config.OutputPaths = []string{"stderr"}
	return config.Build()
}

func buildDocument(client *storefront.Client, s *settings) (*query.Document, error) {
	var fields storefront.Fields
	if s.Fields != nil {
		fields = storefront.Fields{}
		for _, name := range s.Fields {
			fields = append(fields, storefront.Field(name))
		}
	}

	switch s.Entity {
	case "products":
		return shopConnection(client, "products", storefront.ProductConnectionQuery(fields), s.First), nil
	case "collections":
		return shopConnection(client, "collections", storefront.CollectionConnectionQuery(fields), s.First), nil
	case "product":
		return nodeQuery(client, storefront.ProductQuery(fields), s.ID)
	case "collection":
		return nodeQuery(client, storefront.CollectionQuery(fields), s.ID)
	case "checkout":
		return nodeQuery(client, storefront.CheckoutQuery(fields), s.ID)
	default:
		return nil, fmt.Errorf("unknown entity %q", s.Entity)
	}
}

func shopConnection(
	client *storefront.Client,
	fieldName string,
	connection *storefront.Connection,
	first int,
) *query.Document {
	if first != 0 {
		connection = connection.First(first)
	}
	return client.Query(func(root *query.Node) {
		connection.Attach(root.Add("shop"), fieldName)
	})
}

func nodeQuery(client *storefront.Client, s *storefront.Selector, id string) (*query.Document, error) {
	if id == "" {
		return nil, ErrMissingID
	}
	return client.Node(s, id), nil
}
