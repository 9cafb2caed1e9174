package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"

	storefront "github.com/llehouerou/go-storefront-query"
)

var shopFlags = []string{
	"--shop.domain=sendmecats.myshopify.com",
	"--shop.storefront_access_token=abc123",
	"--log_level=error",
}

func runArgs(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := run(append(append([]string{}, shopFlags...), args...), &out)
	return out.String(), err
}

func shopConnectionField(t *testing.T, doc string) *ast.Field {
	t.Helper()
	parsed, err := parser.ParseQuery(&ast.Source{Input: doc})
	if err != nil {
		t.Fatalf("failed to parse %s: %v", doc, err)
	}
	shop := parsed.Operations[0].SelectionSet[0].(*ast.Field)
	return shop.SelectionSet[0].(*ast.Field)
}

func pageSize(t *testing.T, doc string) string {
	t.Helper()
	return shopConnectionField(t, doc).Arguments.ForName("first").Value.Raw
}

// nodeFields returns the names selected under edges.node of the shop
// connection in doc.
func nodeFields(t *testing.T, doc string) []string {
	t.Helper()
	connection := shopConnectionField(t, doc)
	edges := connection.SelectionSet[1].(*ast.Field)
	node := edges.SelectionSet[1].(*ast.Field)

	names := []string{}
	for _, selection := range node.SelectionSet {
		names = append(names, selection.(*ast.Field).Name)
	}
	return names
}

func TestRun_ProductsWithFields(t *testing.T) {
	out, err := runArgs(t, "--entity=products", "--fields=title, vendor", "--first=5", "--exact")
	require.NoError(t, err)

	assert.Equal(t, "5", pageSize(t, out))
	assert.Equal(t, []string{"title", "vendor"}, nodeFields(t, out))
}

func TestRun_CompletesNodeIDsByDefault(t *testing.T) {
	out, err := runArgs(t, "--entity=collections", "--fields=title")
	require.NoError(t, err)

	assert.Equal(t, "20", pageSize(t, out))
	assert.Equal(t, []string{"id", "title"}, nodeFields(t, out))
}

func TestRun_EmptyFieldsSelectNothing(t *testing.T) {
	out, err := runArgs(t, "--entity=products", "--fields=", "--exact")
	require.NoError(t, err)

	assert.Empty(t, nodeFields(t, out))
}

func TestRun_NodeEntityNeedsID(t *testing.T) {
	_, err := runArgs(t, "--entity=collection")
	assert.ErrorIs(t, err, ErrMissingID)

	out, err := runArgs(t, "--entity=collection", "--id=1", "--fields=title")
	require.NoError(t, err)
	assert.Contains(t, out, `"gid://shopify/Collection/1"`)
	assert.Contains(t, out, "on Collection")
}

func TestRun_NegativePageSize(t *testing.T) {
	_, err := runArgs(t, "--entity=products", "--first=-1")
	assert.ErrorIs(t, err, storefront.ErrInvalidPageSize)
}

func TestRun_UnknownEntity(t *testing.T) {
	_, err := runArgs(t, "--entity=customers")
	assert.ErrorContains(t, err, `unknown entity "customers"`)
}

func TestRun_JSON(t *testing.T) {
	out, err := runArgs(t, "--entity=products", "--json")
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, jsoniter.Unmarshal([]byte(out), &payload))
	assert.Contains(t, payload["query"], "descriptionPlainSummary")
}

func TestRun_MissingShopConfig(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"--log_level=error"}, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestLoadSettings_EnvironmentAndFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
shop:
  domain: file.myshopify.com
  storefront_access_token: from-file
  api_version: "2024-01"
entity: collections
`), 0o600))

	t.Setenv("STOREFRONT_SHOP_STOREFRONT_ACCESS_TOKEN", "from-env")

	s, err := loadSettings([]string{"--config=" + file, "--first=3"})
	require.NoError(t, err)

	assert.Equal(t, "file.myshopify.com", s.Shop.Domain)
	assert.Equal(t, "from-env", s.Shop.StorefrontAccessToken)
	assert.Equal(t, "2024-01", s.Shop.APIVersion)
	assert.Equal(t, "collections", s.Entity)
	assert.Equal(t, 3, s.First)
	assert.Nil(t, s.Fields)
}

func TestLoadSettings_FieldsFromEnvironmentAndFile(t *testing.T) {
	t.Run("environment", func(t *testing.T) {
		t.Setenv("STOREFRONT_FIELDS", "title,handle")

		s, err := loadSettings(nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"title", "handle"}, s.Fields)
	})

	t.Run("file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(file, []byte("fields: vendor\n"), 0o600))

		s, err := loadSettings([]string{"--config=" + file})
		require.NoError(t, err)
		assert.Equal(t, []string{"vendor"}, s.Fields)
	})

	t.Run("flag wins", func(t *testing.T) {
		t.Setenv("STOREFRONT_FIELDS", "title")

		s, err := loadSettings([]string{"--fields=tags"})
		require.NoError(t, err)
		assert.Equal(t, []string{"tags"}, s.Fields)
	})
}

func TestSplitFields(t *testing.T) {
	assert.Equal(t, []string{"id", "title"}, splitFields(" id, ,title "))
	assert.Equal(t, []string{}, splitFields(""))
}
