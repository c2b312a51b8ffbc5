package checkout

import (
	"time"

	"github.com/imrishuroy/go-storefront/internal/cart"
)

// Step is the checkout wizard position.
type Step int

const (
	StepShipping Step = iota + 1
	StepPayment
	StepReview
)

func (s Step) String() string {
	switch s {
	case StepShipping:
		return "shipping"
	case StepPayment:
		return "payment"
	case StepReview:
		return "review"
	default:
		return "unknown"
	}
}

// ParseStep maps the wire name back to a Step.
func ParseStep(name string) (Step, bool) {
	switch name {
	case "shipping":
		return StepShipping, true
	case "payment":
		return StepPayment, true
	case "review":
		return StepReview, true
	default:
		return 0, false
	}
}

// ShippingInfo is the delivery address draft. All fields except Country are
// required; Country defaults when left empty.
type ShippingInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
	Country   string `json:"country"`
}

// PaymentInfo is what the session retains after the payment step: cardholder
// name, expiry, and the last 4 digits. The full card number lives only inside
// the session until the charge.
type PaymentInfo struct {
	CardName   string `json:"cardName"`
	CardLast4  string `json:"cardLast4"`
	ExpiryDate string `json:"expiryDate"`
}

// Order is the immutable snapshot produced by a completed checkout. It is
// handed to the confirmation screen exactly once and never persisted; a
// reload after that loses it.
type Order struct {
	OrderID  string       `json:"orderId"`
	Items    []cart.Line  `json:"items"`
	Subtotal float64      `json:"subtotal"`
	Tax      float64      `json:"tax"`
	Total    float64      `json:"total"`
	Shipping ShippingInfo `json:"shippingInfo"`
	PlacedAt time.Time    `json:"placedAt"`
}
