package storefront

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// AccessTokenHeader is the header carrying the storefront access token.
const AccessTokenHeader = "X-Shopify-Storefront-Access-Token"

var (
	// ErrMissingDomain is returned when a Config has no shop domain.
	ErrMissingDomain = errors.New("missing shop domain")

	// ErrMissingAccessToken is returned when a Config has no storefront
	// access token.
	ErrMissingAccessToken = errors.New("missing storefront access token")
)

// Config identifies the shop whose storefront API the documents target.
type Config struct {
	// Domain is the shop domain, e.g. "sendmecats.myshopify.com".
	Domain string `mapstructure:"domain" json:"domain"`
	// StorefrontAccessToken is sent with every request.
	StorefrontAccessToken string `mapstructure:"storefront_access_token" json:"storefront_access_token"`
	// APIVersion selects a versioned endpoint ("2024-01"). Empty means the
	// unversioned endpoint.
	APIVersion string `mapstructure:"api_version" json:"api_version"`
}

// NewConfig returns a validated Config.
func NewConfig(domain, storefrontAccessToken string) (Config, error) {
	c := Config{
		Domain:                domain,
		StorefrontAccessToken: storefrontAccessToken,
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate reports every missing required setting.
func (c Config) Validate() error {
	var err error
	if strings.TrimSpace(c.Domain) == "" {
		err = multierr.Append(err, ErrMissingDomain)
	}
	if strings.TrimSpace(c.StorefrontAccessToken) == "" {
		err = multierr.Append(err, ErrMissingAccessToken)
	}
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// GraphQLURL returns the storefront GraphQL endpoint of the shop.
func (c Config) GraphQLURL() string {
	domain := strings.TrimSuffix(c.Domain, "/")
	domain = strings.TrimPrefix(strings.TrimPrefix(domain, "https://"), "http://")
	if c.APIVersion == "" {
		return "https://" + domain + "/api/graphql"
	}
	return "https://" + domain + "/api/" + c.APIVersion + "/graphql"
}

// Headers returns the headers a request to GraphQLURL needs.
func (c Config) Headers() map[string]string {
	return map[string]string{
		"Content-Type":    "application/json",
		AccessTokenHeader: c.StorefrontAccessToken,
	}
}
