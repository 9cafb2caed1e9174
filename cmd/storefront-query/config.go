package main

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	storefront "github.com/llehouerou/go-storefront-query"
)

// settings is everything the command reads from flags, the environment
// and the config file.
type settings struct {
	Shop     storefront.Config `mapstructure:"shop"`
	LogLevel string            `mapstructure:"log_level"`

	Entity string `mapstructure:"entity"`
	ID     string `mapstructure:"id"`
	First  int    `mapstructure:"first"`
	JSON   bool   `mapstructure:"json"`
	Exact  bool   `mapstructure:"exact"`

	// Fields is nil when fields is set nowhere, so defaults apply.
	Fields []string `mapstructure:"-"`
}

func newFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("storefront-query", pflag.ContinueOnError)
	flags.String("config", "", "Config file location")
	flags.String("shop.domain", "", "Shop domain, e.g. sendmecats.myshopify.com")
	flags.String("shop.storefront_access_token", "", "Storefront access token")
	flags.String("shop.api_version", "", "Storefront API version, empty for the unversioned endpoint")
	flags.String("log_level", "info", "Log level (debug, info, warn, error)")
	flags.String("entity", "products", "Entity to query: products, collections, product, collection, checkout")
	flags.String("id", "", "Global or raw id, for product, collection and checkout")
	flags.Int("first", 0, "Page size of the top-level connection, 0 for the default")
	flags.String("fields", "", "Comma separated fields replacing the defaults; an explicit empty value selects nothing")
	flags.Bool("json", false, "Print the request body instead of the document")
	flags.Bool("exact", false, "Do not add id to Node objects missing it")
	return flags
}

// loadSettings parses args and merges them with STOREFRONT_* environment
// variables and the optional config file. Flags win over the environment,
// which wins over the file.
func loadSettings(args []string) (*settings, error) {
	flags := newFlagSet()
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	config := viper.New()
	if err := config.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}

	if file := config.GetString("config"); file != "" {
		config.SetConfigFile(file)
		if err := config.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", file, err)
		}
	}

	config.SetEnvPrefix("STOREFRONT")
	config.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	config.AutomaticEnv()

	s := &settings{}
	if err := config.Unmarshal(s); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if config.IsSet("fields") {
		s.Fields = splitFields(config.GetString("fields"))
	}

	return s, nil
}

func splitFields(s string) []string {
	fields := []string{}
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			fields = append(fields, f)
		}
	}
	return fields
}
