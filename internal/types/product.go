package types

// Product documents live in the "products" collection and are read-only
// for this service.
type Product struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	SKU      string `json:"sku"`
	Category string `json:"category"`
}

// CartRow is one line of a cart details response: the product joined
// with its accumulated quantity.
type CartRow struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	SKU      string `json:"sku"`
	Category string `json:"category"`
	Quantity int    `json:"quantity"`
}
