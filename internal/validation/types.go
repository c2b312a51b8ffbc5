package validation

// AddCartItemRequest is the payload for POST /cart/items. A zero quantity
// means "one", matching the storefront's add button.
type AddCartItemRequest struct {
	ProductID int `json:"productId" validate:"required"`
	Quantity  int `json:"quantity" validate:"min=0"`
}

// UpdateCartItemRequest is the payload for PATCH /cart/items/:id. A quantity
// of zero or less removes the line.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// ToggleWishlistRequest is the payload for POST /wishlist/toggle.
type ToggleWishlistRequest struct {
	ProductID int `json:"productId" validate:"required"`
}

// ShippingRequest is the shipping step form. Country may be empty and is
// defaulted downstream.
type ShippingRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required"`
	Address   string `json:"address" validate:"required"`
	City      string `json:"city" validate:"required"`
	State     string `json:"state" validate:"required"`
	ZipCode   string `json:"zipCode" validate:"required"`
	Country   string `json:"country"`
}

// PaymentRequest is the payment step form. The card fields are opaque; there
// is no Luhn or expiry check, only presence and enough digits to keep a
// last-4 for display.
type PaymentRequest struct {
	CardNumber string `json:"cardNumber" validate:"required"`
	CardName   string `json:"cardName" validate:"required"`
	ExpiryDate string `json:"expiryDate" validate:"required"`
	CVV        string `json:"cvv" validate:"required"`
}

// BackRequest names the step to return to from review.
type BackRequest struct {
	Step string `json:"step" validate:"required,oneof=shipping payment"`
}

// LoginRequest is the payload for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignupRequest is the payload for POST /auth/signup.
type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}
