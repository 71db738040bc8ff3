package main

import (
	"context"
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/mzansi-thrift/storefront/client"
)

func newBootstrapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bootstrap",
		Short: "Load categories, featured products and the current user in one go",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				res, err := a.client.Bootstrap(ctx)
				if err != nil {
					return err
				}
				out, err := json.Marshal(map[string]any{
					"categories": res.Categories,
					"featured":   res.Featured,
					"session":    res.Session.Role().String(),
					"account":    res.Session.DisplayName(),
				})
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), out)
			})
		},
	}
}

func newHealthCmd() *cobra.Command {
	return rawCmd("health", "Check API and database health", true, func(ctx context.Context, c *client.Client) (json.RawMessage, error) {
		return c.Health(ctx)
	})
}

func newListProductsCmd() *cobra.Command {
	var f client.ProductFilters

	cmd := rawCmd("list-products", "List products", true, func(ctx context.Context, c *client.Client) (json.RawMessage, error) {
		return c.GetProducts(ctx, f.Filters())
	})

	cmd.Flags().StringVar(&f.Search, "search", "", "Free-text search")
	cmd.Flags().Int64Var(&f.CategoryID, "category-id", 0, "Single category ID")
	cmd.Flags().Int64Var(&f.SellerID, "seller-id", 0, "Seller ID")
	cmd.Flags().BoolVar(&f.Featured, "featured", false, "Only featured products")
	cmd.Flags().IntVar(&f.Limit, "limit", 0, "Maximum number of products")
	cmd.Flags().Int64SliceVar(&f.Categories, "category", nil, "Category IDs (repeatable)")
	cmd.Flags().StringSliceVar(&f.Conditions, "condition", nil, "Conditions (repeatable)")
	cmd.Flags().StringVar(&f.PriceRange, "price-range", "", "Price range, e.g. 100-250")
	return cmd
}

func newGetProductCmd() *cobra.Command {
	var id int64
	cmd := rawCmd("get-product", "Show one product", true, func(ctx context.Context, c *client.Client) (json.RawMessage, error) {
		return c.GetProduct(ctx, id)
	})
	idFlag(cmd, &id, "id", "Product ID")
	return cmd
}

func newListCategoriesCmd() *cobra.Command {
	return rawCmd("list-categories", "List categories", true, func(ctx context.Context, c *client.Client) (json.RawMessage, error) {
		return c.GetCategories(ctx)
	})
}

func newListReviewsCmd() *cobra.Command {
	var id int64
	cmd := rawCmd("list-reviews", "List reviews for a product", true, func(ctx context.Context, c *client.Client) (json.RawMessage, error) {
		return c.GetProductReviews(ctx, id)
	})
	idFlag(cmd, &id, "product-id", "Product ID")
	return cmd
}

func newCreateReviewCmd() *cobra.Command {
	var id int64
	cmd := dataCmd("create-review", "Review a product", `Review JSON or @file, e.g. {"rating":5,"comment":"..."}`,
		func(ctx context.Context, c *client.Client, body json.RawMessage) (json.RawMessage, error) {
			return c.CreateReview(ctx, id, body)
		})
	idFlag(cmd, &id, "product-id", "Product ID")
	return cmd
}

func newContactCmd() *cobra.Command {
	var msg client.ContactMessage
	cmd := rawCmd("contact", "Send a message through the contact form", false, func(ctx context.Context, c *client.Client) (json.RawMessage, error) {
		return c.SendContactMessage(ctx, msg)
	})
	cmd.Flags().StringVar(&msg.Name, "name", "", "Your name (required)")
	cmd.Flags().StringVar(&msg.Email, "email", "", "Your email (required)")
	cmd.Flags().StringVar(&msg.Subject, "subject", "", "Subject (required)")
	cmd.Flags().StringVar(&msg.Message, "message", "", "Message (required)")
	return cmd
}
