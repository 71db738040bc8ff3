package main

import (
	"context"
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/mzansi-thrift/storefront/client"
)

// ------------------------------
// Cart
// ------------------------------

func newGetCartCmd() *cobra.Command {
	return rawCmd("get-cart", "Show the cart", true, func(ctx context.Context, c *client.Client) (json.RawMessage, error) {
		return c.GetCart(ctx)
	})
}

func newAddToCartCmd() *cobra.Command {
	var id int64
	var qty int
	cmd := rawCmd("add-to-cart", "Add a product to the cart", false, func(ctx context.Context, c *client.Client) (json.RawMessage, error) {
		return c.AddToCart(ctx, id, qty)
	})
	idFlag(cmd, &id, "product-id", "Product ID")
	cmd.Flags().IntVar(&qty, "quantity", 1, "Quantity")
	return cmd
}

func newUpdateCartItemCmd() *cobra.Command {
	var id int64
	var qty int
	cmd := rawCmd("update-cart-item", "Change the quantity of a cart line", false, func(ctx context.Context, c *client.Client) (json.RawMessage, error) {
		return c.UpdateCartItem(ctx, id, qty)
	})
	idFlag(cmd, &id, "product-id", "Product ID")
	cmd.Flags().IntVar(&qty, "quantity", 1, "New quantity")
	return cmd
}

func newRemoveFromCartCmd() *cobra.Command {
	var id int64
	cmd := rawCmd("remove-from-cart", "Remove a product from the cart", false, func(ctx context.Context, c *client.Client) (json.RawMessage, error) {
		return c.RemoveFromCart(ctx, id)
	})
	idFlag(cmd, &id, "product-id", "Product ID")
	return cmd
}

func newClearCartCmd() *cobra.Command {
	return rawCmd("clear-cart", "Empty the cart", false, func(ctx context.Context, c *client.Client) (json.RawMessage, error) {
		return c.ClearCart(ctx)
	})
}

// ------------------------------
// Orders and payment
// ------------------------------

func newListOrdersCmd() *cobra.Command {
	return rawCmd("list-orders", "List your orders", true, func(ctx context.Context, c *client.Client) (json.RawMessage, error) {
		return c.GetOrders(ctx)
	})
}

func newGetOrderCmd() *cobra.Command {
	var id int64
	cmd := rawCmd("get-order", "Show one order", true, func(ctx context.Context, c *client.Client) (json.RawMessage, error) {
		return c.GetOrder(ctx, id)
	})
	idFlag(cmd, &id, "id", "Order ID")
	return cmd
}

func newCreateOrderCmd() *cobra.Command {
	return dataCmd("create-order", "Place an order", "Order JSON or @file (shipping address, payment method, ...)",
		func(ctx context.Context, c *client.Client, body json.RawMessage) (json.RawMessage, error) {
			return c.CreateOrder(ctx, body)
		})
}

func newCancelOrderCmd() *cobra.Command {
	var id int64
	cmd := rawCmd("cancel-order", "Cancel an order", false, func(ctx context.Context, c *client.Client) (json.RawMessage, error) {
		return c.CancelOrder(ctx, id)
	})
	idFlag(cmd, &id, "id", "Order ID")
	return cmd
}

func newPayCmd() *cobra.Command {
	return dataCmd("pay", "Process a payment", "Payment JSON or @file",
		func(ctx context.Context, c *client.Client, body json.RawMessage) (json.RawMessage, error) {
			return c.ProcessPayment(ctx, body)
		})
}

// ------------------------------
// Profile
// ------------------------------

func newUpdateProfileCmd() *cobra.Command {
	return dataCmd("update-profile", "Update your profile", "Profile JSON or @file",
		func(ctx context.Context, c *client.Client, body json.RawMessage) (json.RawMessage, error) {
			return c.UpdateProfile(ctx, body)
		})
}

func newUpdateAddressCmd() *cobra.Command {
	return dataCmd("update-address", "Update your delivery address", "Address JSON or @file",
		func(ctx context.Context, c *client.Client, body json.RawMessage) (json.RawMessage, error) {
			return c.UpdateAddress(ctx, body)
		})
}

func newChangePasswordCmd() *cobra.Command {
	var req client.ChangePasswordRequest
	cmd := rawCmd("change-password", "Change your password", false, func(ctx context.Context, c *client.Client) (json.RawMessage, error) {
		return c.ChangePassword(ctx, req)
	})
	cmd.Flags().StringVar(&req.CurrentPassword, "current", "", "Current password (required)")
	cmd.Flags().StringVar(&req.NewPassword, "new", "", "New password (required)")
	return cmd
}
