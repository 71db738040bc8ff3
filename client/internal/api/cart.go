package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/mzansi-thrift/storefront/client/internal/types"
)

// GetCart returns the signed-in buyer's cart.
func GetCart(ctx context.Context, d *Dispatcher) (json.RawMessage, error) {
	return get(ctx, d, "get_cart", "/cart", "")
}

// AddToCart adds quantity units of a product. A quantity below one adds a single unit.
func AddToCart(ctx context.Context, d *Dispatcher, productID int64, quantity int) (json.RawMessage, error) {
	if quantity < 1 {
		quantity = 1
	}
	return send(ctx, d, "add_to_cart", http.MethodPost, "/cart", types.CartItemRequest{ProductID: productID, Quantity: quantity})
}

// UpdateCartItem sets the quantity of the cart line for productID.
func UpdateCartItem(ctx context.Context, d *Dispatcher, productID int64, quantity int) (json.RawMessage, error) {
	return send(ctx, d, "update_cart_item", http.MethodPut, fmt.Sprintf("/cart/%d", productID), types.CartQuantityRequest{Quantity: quantity})
}

// RemoveFromCart deletes the cart line for productID.
func RemoveFromCart(ctx context.Context, d *Dispatcher, productID int64) (json.RawMessage, error) {
	return d.Do(ctx, Request{
		Op:     "remove_from_cart",
		Method: http.MethodDelete,
		Path:   "/cart",
		Query:  Filters{{Key: "product_id", Value: productID}}.Encode(),
	})
}

// ClearCart empties the cart.
func ClearCart(ctx context.Context, d *Dispatcher) (json.RawMessage, error) {
	return send(ctx, d, "clear_cart", http.MethodDelete, "/cart", nil)
}
