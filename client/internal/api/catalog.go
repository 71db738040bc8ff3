package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	sferrors "github.com/mzansi-thrift/storefront/client/internal/errors"
	"github.com/mzansi-thrift/storefront/client/internal/types"
)

// GetCategories lists active categories.
func GetCategories(ctx context.Context, d *Dispatcher) (json.RawMessage, error) {
	return get(ctx, d, "get_categories", "/categories", "")
}

// GetProductReviews lists reviews for a product.
func GetProductReviews(ctx context.Context, d *Dispatcher, productID int64) (json.RawMessage, error) {
	return get(ctx, d, "get_product_reviews", fmt.Sprintf("/products/%d/reviews", productID), "")
}

// CreateReview posts a review for a product.
func CreateReview(ctx context.Context, d *Dispatcher, productID int64, review any) (json.RawMessage, error) {
	return send(ctx, d, "create_review", http.MethodPost, fmt.Sprintf("/products/%d/reviews", productID), review)
}

// SendContactMessage submits the public contact form.
func SendContactMessage(ctx context.Context, d *Dispatcher, msg types.ContactMessage) (json.RawMessage, error) {
	if err := types.Validate(msg); err != nil {
		return nil, sferrors.NewInvalidInputError(err)
	}
	return send(ctx, d, "send_contact_message", http.MethodPost, "/contact", msg)
}

// Health reports API and database status.
func Health(ctx context.Context, d *Dispatcher) (json.RawMessage, error) {
	return get(ctx, d, "health", "/health", "")
}
