package mappers

import (
	"fmt"
	"time"

	"github.com/companieshouse/paypal-gateway.api.ch.gov.uk/models"
)

// MapPaymentSource maps the payment source for the authorize and capture
// operations, eliding the object when neither a card nor a token is supplied.
func MapPaymentSource(opts *models.PaymentSourceOptions) (*models.PaymentSource, error) {
	source := &models.PaymentSource{}

	if opts.Card != nil {
		card, err := mapCard(opts.Card)
		if err != nil {
			return nil, err
		}
		source.Card = card
	}

	if opts.Token != nil {
		token, err := mapToken(opts.Token)
		if err != nil {
			return nil, err
		}
		source.Token = token
	}

	if source.Card == nil && source.Token == nil {
		return nil, nil
	}
	return source, nil
}

func mapCard(opts *models.CardOptions) (*models.Card, error) {
	if err := Requires(
		Required{"number", opts.Number},
		Required{"expiry", opts.Expiry},
		Required{"name", opts.Name},
		Required{"security_code", opts.SecurityCode},
	); err != nil {
		return nil, err
	}

	card := &models.Card{
		Name:         opts.Name,
		Number:       opts.Number,
		Expiry:       opts.Expiry,
		SecurityCode: opts.SecurityCode,
	}

	if opts.BillingAddress != nil {
		address, err := MapBillingAddress(opts.BillingAddress)
		if err != nil {
			return nil, err
		}
		card.BillingAddress = address
	}

	if err := validateCard(card); err != nil {
		return nil, err
	}
	return card, nil
}

func mapToken(opts *models.TokenOptions) (*models.Token, error) {
	if err := Requires(
		Required{"id", opts.ID},
		Required{"type", opts.Type},
	); err != nil {
		return nil, err
	}

	return &models.Token{
		ID:   opts.ID,
		Type: AllowedTokenType.Filter(opts.Type),
	}, nil
}

// validateCard runs the local card checks before the payload leaves the
// mapper: a digits-only number passing a Luhn check, a YYYY-MM expiry that is
// not in the past, and a 3 or 4 digit security code.
func validateCard(card *models.Card) error {
	if !luhnValid(card.Number) {
		return fmt.Errorf("invalid card number")
	}

	expiry, err := time.Parse("2006-01", card.Expiry)
	if err != nil {
		return fmt.Errorf("invalid card expiry %q, expected YYYY-MM", card.Expiry)
	}
	if expiry.AddDate(0, 1, 0).Before(time.Now()) {
		return fmt.Errorf("card expired %s", card.Expiry)
	}

	if n := len(card.SecurityCode); n < 3 || n > 4 || !digitsOnly(card.SecurityCode) {
		return fmt.Errorf("invalid card security code")
	}

	return nil
}

func luhnValid(number string) bool {
	if len(number) < 12 || len(number) > 19 || !digitsOnly(number) {
		return false
	}

	sum := 0
	double := false
	for i := len(number) - 1; i >= 0; i-- {
		digit := int(number[i] - '0')
		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		double = !double
	}
	return sum%10 == 0
}

func digitsOnly(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
