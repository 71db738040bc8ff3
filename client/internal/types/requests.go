package types

// ------------------------------
// Request Types
// ------------------------------

// RegisterRequest holds the fields for a new buyer account.
type RegisterRequest struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Phone    string `json:"phone" validate:"required,sa_phone"`
}

// SellerRegisterRequest holds the fields for a new seller account.
type SellerRegisterRequest struct {
	BusinessName string `json:"business_name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required"`
	Phone        string `json:"phone" validate:"required,sa_phone"`
	BusinessType string `json:"business_type,omitempty"`
}

// Credentials are used by both buyer and seller login.
type Credentials struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// CartItemRequest adds a product to the cart.
type CartItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// CartQuantityRequest changes the quantity of a cart line.
type CartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// OrderStatusRequest is sent by sellers to move an order along.
type OrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ChangePasswordRequest holds the current and new password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,nefield=CurrentPassword"`
}

// ContactMessage is the public contact form.
type ContactMessage struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}
