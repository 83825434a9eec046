package mappers

import (
	"github.com/companieshouse/paypal-gateway.api.ch.gov.uk/models"
)

// MapOrder assembles the create-order payload. Keys missing at the top level
// and keys missing inside the purchase units are reported together in a
// single MissingParameterError so the caller sees the full set in one pass.
func MapOrder(intent string, opts *models.OrderOptions, resolver CurrencyResolver) (*models.OrderRequest, error) {
	if opts == nil {
		opts = &models.OrderOptions{}
	}

	missing := Requires(
		Required{"intent", intent},
		Required{"purchase_units", opts.PurchaseUnits},
	)

	order := &models.OrderRequest{Intent: AllowedIntent.Filter(intent)}

	for i := range opts.PurchaseUnits {
		unit, err := MapPurchaseUnit(&opts.PurchaseUnits[i], resolver)
		if err != nil {
			missing = appendMissing(missing, err)
			continue
		}
		order.PurchaseUnits = append(order.PurchaseUnits, unit)
	}
	if missing != nil {
		return nil, missing
	}

	if opts.PaymentInstruction != nil {
		instruction, err := MapPaymentInstruction(opts.PaymentInstruction, resolver)
		if err != nil {
			return nil, err
		}
		order.PaymentInstruction = instruction
	}

	if opts.ApplicationContext != nil {
		appContext, err := MapApplicationContext(opts.ApplicationContext)
		if err != nil {
			return nil, err
		}
		order.ApplicationContext = appContext
	}

	if opts.Payer != nil {
		payer, err := MapPayer(opts.Payer)
		if err != nil {
			return nil, err
		}
		order.Payer = payer
	}

	return order, nil
}

// MapPurchaseUnit maps one purchase unit. Amount is the only mandatory
// field; every other field is copied or mapped only when supplied.
func MapPurchaseUnit(opts *models.PurchaseUnitOptions, resolver CurrencyResolver) (*models.PurchaseUnit, error) {
	if opts == nil {
		opts = &models.PurchaseUnitOptions{}
	}

	if err := Requires(Required{"amount", opts.Amount}); err != nil {
		return nil, err
	}

	unit := &models.PurchaseUnit{
		ReferenceID:    opts.ReferenceID,
		Description:    opts.Description,
		ShippingMethod: opts.ShippingMethod,
		PaymentGroupID: opts.PaymentGroupID,
		CustomID:       opts.CustomID,
		InvoiceID:      opts.InvoiceID,
		SoftDescriptor: opts.SoftDescriptor,
	}

	amount, err := MapAmount(opts.Amount, resolver)
	if err != nil {
		return nil, err
	}
	unit.Amount = amount

	unit.Payee = MapPayee(opts.Payee)

	if len(opts.Items) > 0 {
		items, err := MapItems(opts.Items, resolver)
		if err != nil {
			return nil, err
		}
		unit.Items = items
	}

	if opts.Shipping != nil {
		shipping, err := MapShipping(opts.Shipping)
		if err != nil {
			return nil, err
		}
		unit.Shipping = shipping
	}

	if opts.PaymentInstruction != nil {
		instruction, err := MapPaymentInstruction(opts.PaymentInstruction, resolver)
		if err != nil {
			return nil, err
		}
		unit.PaymentInstruction = instruction
	}

	return unit, nil
}

// MapItems maps the purchased items. Name, quantity and unit amount are
// mandatory per item; category is kept only when it is a member of the
// allowed category set.
func MapItems(opts []models.ItemOptions, resolver CurrencyResolver) ([]*models.Item, error) {
	items := make([]*models.Item, 0, len(opts))

	for i := range opts {
		o := &opts[i]
		if err := Requires(
			Required{"name", o.Name},
			Required{"quantity", o.Quantity},
			Required{"unit_amount", o.UnitAmount},
		); err != nil {
			return nil, err
		}

		item := &models.Item{
			Name:        o.Name,
			SKU:         o.SKU,
			Quantity:    o.Quantity,
			Description: o.Description,
			Category:    AllowedItemCategory.Filter(o.Category),
		}

		unitAmount, err := MapAmount(o.UnitAmount, resolver)
		if err != nil {
			return nil, err
		}
		item.UnitAmount = unitAmount

		if o.Tax != nil {
			tax, err := MapAmount(o.Tax, resolver)
			if err != nil {
				return nil, err
			}
			item.Tax = tax
		}

		items = append(items, item)
	}

	return items, nil
}

// MapPayee maps a payee, eliding the object entirely when both fields are
// absent.
func MapPayee(opts *models.PayeeOptions) *models.Payee {
	if opts == nil || (opts.MerchantID == "" && opts.EmailAddress == "") {
		return nil
	}
	return &models.Payee{
		MerchantID:   opts.MerchantID,
		EmailAddress: opts.EmailAddress,
	}
}

// MapShipping maps the shipping block, eliding it when neither a name nor an
// address survives mapping.
func MapShipping(opts *models.ShippingOptions) (*models.Shipping, error) {
	shipping := &models.Shipping{Name: MapName(opts.Name)}

	if opts.Address != nil {
		address, err := MapShippingAddress(opts.Address)
		if err != nil {
			return nil, err
		}
		shipping.Address = address
	}

	if shipping.Name == nil && shipping.Address == nil {
		return nil, nil
	}
	return shipping, nil
}

// MapName maps a recipient name, eliding the object when the full name is
// absent.
func MapName(opts *models.NameOptions) *models.Name {
	if opts == nil || opts.FullName == "" {
		return nil
	}
	return &models.Name{FullName: opts.FullName}
}

// MapShippingAddress maps a shipping-style address, which mandates the city
// level admin area, postal code and country code.
func MapShippingAddress(opts *models.AddressOptions) (*models.Address, error) {
	if opts == nil {
		opts = &models.AddressOptions{}
	}
	if err := Requires(
		Required{"admin_area_2", opts.AdminArea2},
		Required{"postal_code", opts.PostalCode},
		Required{"country_code", opts.CountryCode},
	); err != nil {
		return nil, err
	}

	return &models.Address{
		AddressLine1: opts.AddressLine1,
		AddressLine2: opts.AddressLine2,
		AdminArea1:   opts.AdminArea1,
		AdminArea2:   opts.AdminArea2,
		PostalCode:   opts.PostalCode,
		CountryCode:  opts.CountryCode,
	}, nil
}

// MapBillingAddress maps a billing-style address, which mandates only the
// country code.
func MapBillingAddress(opts *models.AddressOptions) (*models.Address, error) {
	if opts == nil {
		opts = &models.AddressOptions{}
	}
	if err := Requires(Required{"country_code", opts.CountryCode}); err != nil {
		return nil, err
	}

	return &models.Address{
		AddressLine1: opts.AddressLine1,
		AddressLine2: opts.AddressLine2,
		AdminArea1:   opts.AdminArea1,
		AdminArea2:   opts.AdminArea2,
		PostalCode:   opts.PostalCode,
		CountryCode:  opts.CountryCode,
	}, nil
}

// MapPaymentInstruction maps the payment instruction. Each platform fee
// mandates an amount and a payee. The whole object is elided when no
// disbursement mode survives filtering and there are no fees.
func MapPaymentInstruction(opts *models.PaymentInstructionOptions, resolver CurrencyResolver) (*models.PaymentInstruction, error) {
	instruction := &models.PaymentInstruction{
		DisbursementMode: AllowedDisbursementMode.Filter(opts.DisbursementMode),
	}

	for i := range opts.PlatformFees {
		fee := &opts.PlatformFees[i]
		if err := Requires(
			Required{"amount", fee.Amount},
			Required{"payee", fee.Payee},
		); err != nil {
			return nil, err
		}

		amount, err := MapAmount(fee.Amount, resolver)
		if err != nil {
			return nil, err
		}

		instruction.PlatformFees = append(instruction.PlatformFees, &models.PlatformFee{
			Amount: amount,
			Payee:  MapPayee(fee.Payee),
		})
	}

	if instruction.DisbursementMode == "" && len(instruction.PlatformFees) == 0 {
		return nil, nil
	}
	return instruction, nil
}
