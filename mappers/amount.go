package mappers

import (
	"github.com/companieshouse/paypal-gateway.api.ch.gov.uk/models"
	"github.com/shopspring/decimal"
)

// maxBreakdownDepth caps the self-similar breakdown recursion. The
// processor's schema only nests a single level, but the structure itself is
// unbounded; entries beyond this depth are dropped.
const maxBreakdownDepth = 4

// CurrencyResolver infers a currency code for an amount value supplied
// without one.
type CurrencyResolver interface {
	Resolve(value string) string
}

// DefaultCurrencyResolver applies a fixed currency code to any value that
// parses as a decimal. A value that does not parse resolves to nothing, which
// surfaces as a missing currency_code.
type DefaultCurrencyResolver struct {
	Currency string
}

// Resolve implements CurrencyResolver.
func (r DefaultCurrencyResolver) Resolve(value string) string {
	if _, err := decimal.NewFromString(value); err != nil {
		return ""
	}
	return r.Currency
}

// MapAmount maps a caller amount to the wire shape. The currency code is
// inferred through the resolver when absent, and any named breakdown entries
// are mapped recursively through the same rules.
func MapAmount(opts *models.AmountOptions, resolver CurrencyResolver) (*models.Amount, error) {
	return mapAmount(opts, resolver, 0)
}

func mapAmount(opts *models.AmountOptions, resolver CurrencyResolver, depth int) (*models.Amount, error) {
	if opts == nil {
		return nil, &MissingParameterError{Params: []string{"currency_code", "value"}}
	}

	currency := opts.CurrencyCode
	if currency == "" && opts.Value != "" && resolver != nil {
		currency = resolver.Resolve(opts.Value)
	}

	if err := Requires(
		Required{"currency_code", currency},
		Required{"value", opts.Value},
	); err != nil {
		return nil, err
	}

	amount := &models.Amount{
		CurrencyCode: currency,
		Value:        opts.Value,
	}

	if len(opts.Breakdown) > 0 && depth < maxBreakdownDepth {
		amount.Breakdown = make(map[string]*models.Amount, len(opts.Breakdown))
		for name, entry := range opts.Breakdown {
			entry := entry
			mapped, err := mapAmount(&entry, resolver, depth+1)
			if err != nil {
				return nil, err
			}
			amount.Breakdown[name] = mapped
		}
	}

	return amount, nil
}
