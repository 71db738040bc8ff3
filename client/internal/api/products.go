package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/mzansi-thrift/storefront/client/internal/types"
)

// GetProducts lists products matching filters. An empty filter list hits /products.
func GetProducts(ctx context.Context, d *Dispatcher, filters Filters) (json.RawMessage, error) {
	return get(ctx, d, "get_products", "/products", filters.Encode())
}

// GetProduct fetches one product by id.
func GetProduct(ctx context.Context, d *Dispatcher, productID int64) (json.RawMessage, error) {
	return get(ctx, d, "get_product", fmt.Sprintf("/products/%d", productID), "")
}

// CreateProduct lists a new product for the signed-in seller.
func CreateProduct(ctx context.Context, d *Dispatcher, product any) (json.RawMessage, error) {
	return send(ctx, d, "create_product", http.MethodPost, "/seller/products", product)
}

// UpdateProduct replaces the editable fields of a seller's product.
func UpdateProduct(ctx context.Context, d *Dispatcher, productID int64, product any) (json.RawMessage, error) {
	return send(ctx, d, "update_product", http.MethodPut, fmt.Sprintf("/seller/products/%d", productID), product)
}

// DeleteProduct removes a seller's product.
func DeleteProduct(ctx context.Context, d *Dispatcher, productID int64) (json.RawMessage, error) {
	return send(ctx, d, "delete_product", http.MethodDelete, fmt.Sprintf("/seller/products/%d", productID), nil)
}

// CreateProductWithMedia creates a product and attaches files in one multipart request.
// fields carry the product attributes as form values (name, description, price, ...).
func CreateProductWithMedia(ctx context.Context, d *Dispatcher, fields []FormField, files []types.MediaFile) (json.RawMessage, error) {
	return d.Do(ctx, Request{
		Op:        "create_product_with_media",
		Method:    http.MethodPost,
		Path:      "/products-with-media",
		Multipart: &Multipart{Fields: fields, Files: files},
	})
}

// GetProductMedia lists the media attached to a seller's product.
func GetProductMedia(ctx context.Context, d *Dispatcher, productID int64) (json.RawMessage, error) {
	return get(ctx, d, "get_product_media", productMediaPath(productID), "")
}

// AddProductMedia uploads files and attaches them to a product.
func AddProductMedia(ctx context.Context, d *Dispatcher, productID int64, files []types.MediaFile) (json.RawMessage, error) {
	return d.Do(ctx, Request{
		Op:        "add_product_media",
		Method:    http.MethodPost,
		Path:      productMediaPath(productID),
		Multipart: &Multipart{Files: files},
	})
}

// UpdateProductMedia changes media metadata such as sort order or the primary flag.
func UpdateProductMedia(ctx context.Context, d *Dispatcher, productID, mediaID int64, update any) (json.RawMessage, error) {
	return send(ctx, d, "update_product_media", http.MethodPut, productMediaPath(productID)+"/"+strconv.FormatInt(mediaID, 10), update)
}

// DeleteProductMedia detaches and deletes one media item.
func DeleteProductMedia(ctx context.Context, d *Dispatcher, productID, mediaID int64) (json.RawMessage, error) {
	return send(ctx, d, "delete_product_media", http.MethodDelete, productMediaPath(productID)+"/"+strconv.FormatInt(mediaID, 10), nil)
}

func productMediaPath(productID int64) string {
	return fmt.Sprintf("/products/%d/media", productID)
}
