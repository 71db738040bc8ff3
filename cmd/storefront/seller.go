package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mzansi-thrift/storefront/client"
)

func newSellerDashboardCmd() *cobra.Command {
	return rawCmd("seller-dashboard", "Show the seller dashboard", true, func(ctx context.Context, c *client.Client) (json.RawMessage, error) {
		return c.GetSellerDashboard(ctx)
	})
}

func newSellerProductsCmd() *cobra.Command {
	return rawCmd("seller-products", "List your listed products", true, func(ctx context.Context, c *client.Client) (json.RawMessage, error) {
		return c.GetSellerProducts(ctx)
	})
}

func newSellerOrdersCmd() *cobra.Command {
	return rawCmd("seller-orders", "List orders for your products", true, func(ctx context.Context, c *client.Client) (json.RawMessage, error) {
		return c.GetSellerOrders(ctx)
	})
}

func newSellerStatsCmd() *cobra.Command {
	return rawCmd("seller-stats", "Show sales statistics", true, func(ctx context.Context, c *client.Client) (json.RawMessage, error) {
		return c.GetSellerStats(ctx)
	})
}

func newCreateProductCmd() *cobra.Command {
	return dataCmd("create-product", "List a new product", "Product JSON or @file",
		func(ctx context.Context, c *client.Client, body json.RawMessage) (json.RawMessage, error) {
			return c.CreateProduct(ctx, body)
		})
}

func newUpdateProductCmd() *cobra.Command {
	var id int64
	cmd := dataCmd("update-product", "Update one of your products", "Product JSON or @file",
		func(ctx context.Context, c *client.Client, body json.RawMessage) (json.RawMessage, error) {
			return c.UpdateProduct(ctx, id, body)
		})
	idFlag(cmd, &id, "id", "Product ID")
	return cmd
}

func newDeleteProductCmd() *cobra.Command {
	var id int64
	cmd := rawCmd("delete-product", "Delete one of your products", false, func(ctx context.Context, c *client.Client) (json.RawMessage, error) {
		return c.DeleteProduct(ctx, id)
	})
	idFlag(cmd, &id, "id", "Product ID")
	return cmd
}

// parseFields turns repeated key=value flags into form fields, keeping order.
func parseFields(kvs []string) ([]client.FormField, error) {
	fields := make([]client.FormField, 0, len(kvs))
	for _, kv := range kvs {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid --field %q, want key=value", kv)
		}
		fields = append(fields, client.FormField{Name: k, Value: v})
	}
	return fields, nil
}

// uploadCmd builds a command that sends the files named by --file.
func uploadCmd(use, short string, fn func(ctx context.Context, c *client.Client, files []client.MediaFile) (json.RawMessage, error)) *cobra.Command {
	var paths []string
	cmd := rawCmd(use, short, false, func(ctx context.Context, c *client.Client) (json.RawMessage, error) {
		files, closeAll, err := openFiles(paths)
		if err != nil {
			return nil, err
		}
		defer closeAll()
		return fn(ctx, c, files)
	})
	cmd.Flags().StringArrayVar(&paths, "file", nil, "File to upload (repeatable)")
	return cmd
}

func newCreateProductWithMediaCmd() *cobra.Command {
	var kvs []string
	cmd := uploadCmd("create-product-with-media", "List a new product together with its photos",
		func(ctx context.Context, c *client.Client, files []client.MediaFile) (json.RawMessage, error) {
			fields, err := parseFields(kvs)
			if err != nil {
				return nil, err
			}
			return c.CreateProductWithMedia(ctx, fields, files)
		})
	cmd.Flags().StringArrayVar(&kvs, "field", nil, "Product attribute as key=value (repeatable)")
	return cmd
}

func newListProductMediaCmd() *cobra.Command {
	var id int64
	cmd := rawCmd("list-product-media", "List the media of one of your products", true, func(ctx context.Context, c *client.Client) (json.RawMessage, error) {
		return c.GetProductMedia(ctx, id)
	})
	idFlag(cmd, &id, "product-id", "Product ID")
	return cmd
}

func newAddProductMediaCmd() *cobra.Command {
	var id int64
	cmd := uploadCmd("add-product-media", "Attach photos to one of your products",
		func(ctx context.Context, c *client.Client, files []client.MediaFile) (json.RawMessage, error) {
			return c.AddProductMedia(ctx, id, files)
		})
	idFlag(cmd, &id, "product-id", "Product ID")
	return cmd
}

func newUpdateProductMediaCmd() *cobra.Command {
	var productID, mediaID int64
	cmd := dataCmd("update-product-media", "Change media metadata, e.g. the primary photo", `Media JSON or @file, e.g. {"is_primary":true}`,
		func(ctx context.Context, c *client.Client, body json.RawMessage) (json.RawMessage, error) {
			return c.UpdateProductMedia(ctx, productID, mediaID, body)
		})
	idFlag(cmd, &productID, "product-id", "Product ID")
	idFlag(cmd, &mediaID, "media-id", "Media ID")
	return cmd
}

func newDeleteProductMediaCmd() *cobra.Command {
	var productID, mediaID int64
	cmd := rawCmd("delete-product-media", "Remove a photo from one of your products", false, func(ctx context.Context, c *client.Client) (json.RawMessage, error) {
		return c.DeleteProductMedia(ctx, productID, mediaID)
	})
	idFlag(cmd, &productID, "product-id", "Product ID")
	idFlag(cmd, &mediaID, "media-id", "Media ID")
	return cmd
}

func newUploadMediaCmd() *cobra.Command {
	cmd := uploadCmd("upload-media", "Upload files to the media library",
		func(ctx context.Context, c *client.Client, files []client.MediaFile) (json.RawMessage, error) {
			return c.UploadMedia(ctx, files)
		})
	return cmd
}

func newUpdateOrderStatusCmd() *cobra.Command {
	var id int64
	var status string
	cmd := rawCmd("update-order-status", "Move an order to a new status, e.g. shipped", false, func(ctx context.Context, c *client.Client) (json.RawMessage, error) {
		return c.UpdateOrderStatus(ctx, id, status)
	})
	idFlag(cmd, &id, "id", "Order ID")
	cmd.Flags().StringVar(&status, "status", "", "New status (required)")
	_ = cmd.MarkFlagRequired("status")
	return cmd
}
