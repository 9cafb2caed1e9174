package storefront

import "github.com/llehouerou/go-storefront-query/types"

// GraphQL type names of the entities.
const (
	ProductType         = "Product"
	CollectionType      = "Collection"
	VariantType         = "ProductVariant"
	ImageType           = "Image"
	OptionType          = "ProductOption"
	SelectedOptionType  = "SelectedOption"
	CheckoutType        = "Checkout"
	LineItemType        = "CheckoutLineItem"
	MailingAddressType  = "MailingAddress"
	ShippingRateType    = "ShippingRate"
	CustomAttributeType = "Attribute"
)

// Default field lists, in the order they are selected. Nested entries use
// the defaults of their own entity.
var (
	imageFields = Fields{
		Field("id"),
		Field("src"),
		Field("altText"),
	}

	optionFields = Fields{
		Field("id"),
		Field("name"),
		Field("values"),
	}

	selectedOptionFields = Fields{
		Field("name"),
		Field("value"),
	}

	variantFields = Fields{
		Field("id"),
		Field("title"),
		Field("price"),
		Field("weight"),
		Nested("image", ImageQuery(nil)),
		Nested("selectedOptions", SelectedOptionQuery(nil)),
	}

	productFields = Fields{
		Field("id"),
		Field("createdAt"),
		Field("updatedAt"),
		Field("descriptionHtml"),
		Field("descriptionPlainSummary"),
		Field("handle"),
		Field("productType"),
		Field("title"),
		Field("vendor"),
		Field("tags"),
		Field("publishedAt"),
		Nested("options", OptionQuery(nil)),
		Nested("images", ImageConnectionQuery(nil)),
		Nested("variants", VariantConnectionQuery(nil)),
	}

	collectionFields = Fields{
		Field("id"),
		Field("handle"),
		Field("updatedAt"),
		Field("title"),
		Nested("image", ImageQuery(nil)),
	}

	customAttributeFields = Fields{
		Field("key"),
		Field("value"),
	}

	shippingRateFields = Fields{
		Field("handle"),
		Field("price"),
		Field("title"),
	}

	mailingAddressFields = Fields{
		Field("address1"),
		Field("address2"),
		Field("city"),
		Field("company"),
		Field("country"),
		Field("firstName"),
		Field("formatted"),
		Field("lastName"),
		Field("latitude"),
		Field("longitude"),
		Field("phone"),
		Field("province"),
		Field("zip"),
		Field("name"),
		Field("countryCode"),
		Field("provinceCode"),
		Field("id"),
	}

	lineItemFields = Fields{
		Field("title"),
		Nested("variant", VariantQuery(nil)),
		Field("quantity"),
		Nested("customAttributes", CustomAttributeQuery(nil)),
	}

	checkoutFields = Fields{
		Field("id"),
		Field("ready"),
		Field("note"),
		Field("createdAt"),
		Field("updatedAt"),
		Field("requiresShipping"),
		Nested("customAttributes", CustomAttributeQuery(nil)),
		Nested("shippingLine", ShippingRateQuery(nil)),
		Nested("shippingAddress", MailingAddressQuery(nil)),
		Nested("lineItems", LineItemConnectionQuery(nil)),
	}
)

// ImageQuery selects an Image. A nil fields selects id, src and altText.
func ImageQuery(fields Fields) *Selector {
	return newSelector(ImageType, imageFields, fields)
}

// ImageConnectionQuery selects a page of images, 250 by default.
func ImageConnectionQuery(fields Fields) *Connection {
	return newConnection(ImageQuery(fields), types.NestedPageSize)
}

// OptionQuery selects a ProductOption.
func OptionQuery(fields Fields) *Selector {
	return newSelector(OptionType, optionFields, fields)
}

// SelectedOptionQuery selects the option values of a variant.
func SelectedOptionQuery(fields Fields) *Selector {
	return newSelector(SelectedOptionType, selectedOptionFields, fields)
}

// VariantQuery selects a ProductVariant, including its image and selected
// options by default.
func VariantQuery(fields Fields) *Selector {
	return newSelector(VariantType, variantFields, fields)
}

// VariantConnectionQuery selects a page of variants, 250 by default.
func VariantConnectionQuery(fields Fields) *Connection {
	return newConnection(VariantQuery(fields), types.NestedPageSize)
}

// ProductQuery selects a Product. The defaults include its options and the
// images and variants connections.
func ProductQuery(fields Fields) *Selector {
	return newSelector(ProductType, productFields, fields)
}

// ProductConnectionQuery selects a page of products, 20 by default.
func ProductConnectionQuery(fields Fields) *Connection {
	return newConnection(ProductQuery(fields), types.RootPageSize)
}

// CollectionQuery selects a Collection. Products are not selected by
// default; nest a ProductConnectionQuery to fetch them.
func CollectionQuery(fields Fields) *Selector {
	return newSelector(CollectionType, collectionFields, fields)
}

// CollectionConnectionQuery selects a page of collections, 20 by default.
func CollectionConnectionQuery(fields Fields) *Connection {
	return newConnection(CollectionQuery(fields), types.RootPageSize)
}

// CustomAttributeQuery selects a key/value Attribute.
func CustomAttributeQuery(fields Fields) *Selector {
	return newSelector(CustomAttributeType, customAttributeFields, fields)
}

// ShippingRateQuery selects a ShippingRate.
func ShippingRateQuery(fields Fields) *Selector {
	return newSelector(ShippingRateType, shippingRateFields, fields)
}

// MailingAddressQuery selects a MailingAddress.
func MailingAddressQuery(fields Fields) *Selector {
	return newSelector(MailingAddressType, mailingAddressFields, fields)
}

// LineItemQuery selects a CheckoutLineItem.
func LineItemQuery(fields Fields) *Selector {
	return newSelector(LineItemType, lineItemFields, fields)
}

// LineItemConnectionQuery selects a page of checkout line items, 250 by
// default.
func LineItemConnectionQuery(fields Fields) *Connection {
	return newConnection(LineItemQuery(fields), types.NestedPageSize)
}

// CheckoutQuery selects a Checkout with its attributes, shipping and line
// items.
func CheckoutQuery(fields Fields) *Selector {
	return newSelector(CheckoutType, checkoutFields, fields)
}
