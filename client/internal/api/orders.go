package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	sferrors "github.com/mzansi-thrift/storefront/client/internal/errors"
	"github.com/mzansi-thrift/storefront/client/internal/types"
)

// GetOrders lists the buyer's orders.
func GetOrders(ctx context.Context, d *Dispatcher) (json.RawMessage, error) {
	return get(ctx, d, "get_orders", "/orders", "")
}

// GetOrder fetches one order.
func GetOrder(ctx context.Context, d *Dispatcher, orderID int64) (json.RawMessage, error) {
	return get(ctx, d, "get_order", fmt.Sprintf("/orders/%d", orderID), "")
}

// CreateOrder places an order from the given payload (items, shipping address, ...).
func CreateOrder(ctx context.Context, d *Dispatcher, order any) (json.RawMessage, error) {
	return send(ctx, d, "create_order", http.MethodPost, "/orders", order)
}

// CancelOrder cancels a pending order.
func CancelOrder(ctx context.Context, d *Dispatcher, orderID int64) (json.RawMessage, error) {
	return send(ctx, d, "cancel_order", http.MethodPost, fmt.Sprintf("/orders/%d/cancel", orderID), nil)
}

// UpdateOrderStatus is the seller-side status transition.
func UpdateOrderStatus(ctx context.Context, d *Dispatcher, orderID int64, status string) (json.RawMessage, error) {
	body := types.OrderStatusRequest{Status: status}
	if err := types.Validate(body); err != nil {
		return nil, sferrors.NewInvalidInputError(err)
	}
	return send(ctx, d, "update_order_status", http.MethodPut, fmt.Sprintf("/seller/orders/%d", orderID), body)
}

// ProcessPayment submits a payment for an order.
func ProcessPayment(ctx context.Context, d *Dispatcher, payment any) (json.RawMessage, error) {
	return send(ctx, d, "process_payment", http.MethodPost, "/payments/process", payment)
}
