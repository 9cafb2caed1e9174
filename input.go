package storefront

// Input objects of the checkout mutations. They are passed to query.Arg and
// converted through their json tags, in field order.

// AttributeInput is a custom key/value attribute of a checkout or line item.
type AttributeInput struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// CheckoutLineItemInput adds Quantity units of the variant whose global ID
// is VariantID.
type CheckoutLineItemInput struct {
	VariantID        string           `json:"variantId"`
	Quantity         int              `json:"quantity"`
	CustomAttributes []AttributeInput `json:"customAttributes,omitempty"`
}

// CheckoutCreateInput is the input argument of checkoutCreate.
type CheckoutCreateInput struct {
	Email            string                  `json:"email,omitempty"`
	Note             string                  `json:"note,omitempty"`
	LineItems        []CheckoutLineItemInput `json:"lineItems,omitempty"`
	CustomAttributes []AttributeInput        `json:"customAttributes,omitempty"`
}
