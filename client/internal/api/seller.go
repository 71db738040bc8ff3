package api

import (
	"context"
	"encoding/json"
)

// GetSellerDashboard returns the dashboard summary for the signed-in seller.
func GetSellerDashboard(ctx context.Context, d *Dispatcher) (json.RawMessage, error) {
	return get(ctx, d, "get_seller_dashboard", "/seller/dashboard", "")
}

// GetSellerProducts lists the seller's own products.
func GetSellerProducts(ctx context.Context, d *Dispatcher) (json.RawMessage, error) {
	return get(ctx, d, "get_seller_products", "/seller/products", "")
}

// GetSellerOrders lists orders containing the seller's products.
func GetSellerOrders(ctx context.Context, d *Dispatcher) (json.RawMessage, error) {
	return get(ctx, d, "get_seller_orders", "/seller/orders", "")
}

// GetSellerStats returns revenue and order counters.
func GetSellerStats(ctx context.Context, d *Dispatcher) (json.RawMessage, error) {
	return get(ctx, d, "get_seller_stats", "/seller/stats", "")
}
