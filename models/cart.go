package models

// CartItem is a product snapshot plus the quantity a shopper intends to buy.
// Quantity stays within [1, Product.Stock] once the item is in a cart.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

type CartSummary struct {
	Items     []CartItem `json:"items"`
	Total     int64      `json:"total"`
	ItemCount int        `json:"itemCount"`
}
