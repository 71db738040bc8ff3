package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/mzansi-thrift/storefront/client/internal/types"
)

// TestEndpoints checks that every JSON wrapper hits the documented method,
// path, query and body.
func TestEndpoints(t *testing.T) {
	t.Parallel()
	type call func(context.Context, *Dispatcher) (json.RawMessage, error)
	cases := []struct {
		name, method, path, query, body string
		call                             call
	}{
		{"GetProduct", "GET", "/api/products/5", "", "", func(ctx context.Context, d *Dispatcher) (json.RawMessage, error) { return GetProduct(ctx, d, 5) }},
		{"CreateProduct", "POST", "/api/seller/products", "", `{"name":"Denim"}`, func(ctx context.Context, d *Dispatcher) (json.RawMessage, error) {
			return CreateProduct(ctx, d, map[string]string{"name": "Denim"})
		}},
		{"UpdateProduct", "PUT", "/api/seller/products/5", "", `{"price":120}`, func(ctx context.Context, d *Dispatcher) (json.RawMessage, error) {
			return UpdateProduct(ctx, d, 5, map[string]int{"price": 120})
		}},
		{"DeleteProduct", "DELETE", "/api/seller/products/5", "", "", func(ctx context.Context, d *Dispatcher) (json.RawMessage, error) { return DeleteProduct(ctx, d, 5) }},
		{"GetCart", "GET", "/api/cart", "", "", GetCart},
		{"AddToCart", "POST", "/api/cart", "", `{"product_id":5,"quantity":1}`, func(ctx context.Context, d *Dispatcher) (json.RawMessage, error) { return AddToCart(ctx, d, 5, 0) }},
		{"UpdateCartItem", "PUT", "/api/cart/5", "", `{"quantity":3}`, func(ctx context.Context, d *Dispatcher) (json.RawMessage, error) { return UpdateCartItem(ctx, d, 5, 3) }},
		{"RemoveFromCart", "DELETE", "/api/cart", "product_id=5", "", func(ctx context.Context, d *Dispatcher) (json.RawMessage, error) { return RemoveFromCart(ctx, d, 5) }},
		{"ClearCart", "DELETE", "/api/cart", "", "", ClearCart},
		{"GetOrders", "GET", "/api/orders", "", "", GetOrders},
		{"GetOrder", "GET", "/api/orders/9", "", "", func(ctx context.Context, d *Dispatcher) (json.RawMessage, error) { return GetOrder(ctx, d, 9) }},
		{"CreateOrder", "POST", "/api/orders", "", `{"shipping_address":"Soweto"}`, func(ctx context.Context, d *Dispatcher) (json.RawMessage, error) {
			return CreateOrder(ctx, d, map[string]string{"shipping_address": "Soweto"})
		}},
		{"CancelOrder", "POST", "/api/orders/9/cancel", "", "", func(ctx context.Context, d *Dispatcher) (json.RawMessage, error) { return CancelOrder(ctx, d, 9) }},
		{"UpdateOrderStatus", "PUT", "/api/seller/orders/9", "", `{"status":"shipped"}`, func(ctx context.Context, d *Dispatcher) (json.RawMessage, error) {
			return UpdateOrderStatus(ctx, d, 9, "shipped")
		}},
		{"ProcessPayment", "POST", "/api/payments/process", "", `{"order_id":9}`, func(ctx context.Context, d *Dispatcher) (json.RawMessage, error) {
			return ProcessPayment(ctx, d, map[string]int{"order_id": 9})
		}},
		{"GetSellerDashboard", "GET", "/api/seller/dashboard", "", "", GetSellerDashboard},
		{"GetSellerProducts", "GET", "/api/seller/products", "", "", GetSellerProducts},
		{"GetSellerOrders", "GET", "/api/seller/orders", "", "", GetSellerOrders},
		{"GetSellerStats", "GET", "/api/seller/stats", "", "", GetSellerStats},
		{"GetCategories", "GET", "/api/categories", "", "", GetCategories},
		{"GetProductReviews", "GET", "/api/products/5/reviews", "", "", func(ctx context.Context, d *Dispatcher) (json.RawMessage, error) { return GetProductReviews(ctx, d, 5) }},
		{"CreateReview", "POST", "/api/products/5/reviews", "", `{"rating":5}`, func(ctx context.Context, d *Dispatcher) (json.RawMessage, error) {
			return CreateReview(ctx, d, 5, map[string]int{"rating": 5})
		}},
		{"UpdateProfile", "PUT", "/api/user/profile", "", `{"full_name":"T"}`, func(ctx context.Context, d *Dispatcher) (json.RawMessage, error) {
			return UpdateProfile(ctx, d, map[string]string{"full_name": "T"})
		}},
		{"UpdateAddress", "PUT", "/api/user/address", "", `{"city":"Durban"}`, func(ctx context.Context, d *Dispatcher) (json.RawMessage, error) {
			return UpdateAddress(ctx, d, map[string]string{"city": "Durban"})
		}},
		{"ChangePassword", "PUT", "/api/user/password", "", `{"current_password":"a","new_password":"b"}`, func(ctx context.Context, d *Dispatcher) (json.RawMessage, error) {
			return ChangePassword(ctx, d, types.ChangePasswordRequest{CurrentPassword: "a", NewPassword: "b"})
		}},
		{"SendContactMessage", "POST", "/api/contact", "", `{"name":"T","email":"t@example.co.za","subject":"Hi","message":"Hello"}`, func(ctx context.Context, d *Dispatcher) (json.RawMessage, error) {
			return SendContactMessage(ctx, d, types.ContactMessage{Name: "T", Email: "t@example.co.za", Subject: "Hi", Message: "Hello"})
		}},
		{"GetProductMedia", "GET", "/api/products/5/media", "", "", func(ctx context.Context, d *Dispatcher) (json.RawMessage, error) { return GetProductMedia(ctx, d, 5) }},
		{"UpdateProductMedia", "PUT", "/api/products/5/media/2", "", `{"is_primary":true}`, func(ctx context.Context, d *Dispatcher) (json.RawMessage, error) {
			return UpdateProductMedia(ctx, d, 5, 2, map[string]bool{"is_primary": true})
		}},
		{"DeleteProductMedia", "DELETE", "/api/products/5/media/2", "", "", func(ctx context.Context, d *Dispatcher) (json.RawMessage, error) { return DeleteProductMedia(ctx, d, 5, 2) }},
		{"Health", "GET", "/api/health", "", "", Health},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			d := newServer(t, func(w http.ResponseWriter, r *http.Request) {
				if r.Method != c.method || r.URL.Path != c.path || r.URL.RawQuery != c.query {
					t.Errorf("got %s %s?%s, want %s %s?%s", r.Method, r.URL.Path, r.URL.RawQuery, c.method, c.path, c.query)
				}
				b, _ := io.ReadAll(r.Body)
				if string(b) != c.body {
					t.Errorf("body = %s, want %s", b, c.body)
				}
				writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
			})
			raw, err := c.call(context.Background(), d)
			if err != nil {
				t.Fatalf("%s error: %v", c.name, err)
			}
			if string(raw) != "{\"ok\":true}\n" {
				t.Fatalf("unexpected body: %q", raw)
			}
		})
	}
}

func TestEndpoints_HTTPDoError(t *testing.T) {
	t.Parallel()
	d := &Dispatcher{BaseURL: "http://example.com/api", HTTP: &http.Client{Transport: &errRT{}}}
	if _, err := GetCart(context.Background(), d); err == nil {
		t.Fatal("expected Do error for GetCart")
	}
	if _, err := GetOrders(context.Background(), d); err == nil {
		t.Fatal("expected Do error for GetOrders")
	}
	if _, err := UpdateOrderStatus(context.Background(), d, 1, ""); err == nil {
		t.Fatal("expected validation error for empty status")
	}
}
