package validation

import (
	validatorv10 "github.com/go-playground/validator/v10"
)

// New returns a configured validator with custom struct-level validation registered.
func New() *validatorv10.Validate {
	v := validatorv10.New()

	// register struct-level validation for PaymentRequest: the card number is
	// opaque but must carry at least 4 digits so a last-4 can be retained.
	v.RegisterStructValidation(paymentStructValidation, PaymentRequest{})

	return v
}

func paymentStructValidation(sl validatorv10.StructLevel) {
	req := sl.Current().Interface().(PaymentRequest)

	digits := 0
	for _, r := range req.CardNumber {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	if req.CardNumber != "" && digits < 4 {
		sl.ReportError(req.CardNumber, "cardNumber", "CardNumber", "card_number_digits", "card number must contain at least 4 digits")
	}
}
