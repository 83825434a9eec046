package mappers

import (
	"github.com/companieshouse/paypal-gateway.api.ch.gov.uk/models"
)

// MapPayer maps the order payer. All fields are optional; sub-objects that
// map to nothing are elided, and the payer itself is elided when empty.
func MapPayer(opts *models.PayerOptions) (*models.Payer, error) {
	payer := &models.Payer{
		EmailAddress: opts.EmailAddress,
		PayerID:      opts.PayerID,
		BirthDate:    opts.BirthDate,
		Name:         mapPayerName(opts.Name),
		Address:      mapPayerAddress(opts.Address),
	}

	if opts.Phone != nil {
		phone, err := mapPhone(opts.Phone)
		if err != nil {
			return nil, err
		}
		payer.Phone = phone
	}

	if opts.TaxInfo != nil {
		taxInfo, err := mapTaxInfo(opts.TaxInfo)
		if err != nil {
			return nil, err
		}
		payer.TaxInfo = taxInfo
	}

	if *payer == (models.Payer{}) {
		return nil, nil
	}
	return payer, nil
}

func mapPayerName(opts *models.PayerNameOptions) *models.PayerName {
	if opts == nil {
		return nil
	}
	name := &models.PayerName{
		GivenName: opts.GivenName,
		Surname:   opts.Surname,
	}
	if *name == (models.PayerName{}) {
		return nil
	}
	return name
}

func mapPhone(opts *models.PhoneOptions) (*models.Phone, error) {
	var nationalNumber string
	if opts.PhoneNumber != nil {
		nationalNumber = opts.PhoneNumber.NationalNumber
	}
	if err := Requires(Required{"national_number", nationalNumber}); err != nil {
		return nil, err
	}

	return &models.Phone{
		PhoneType:   AllowedPhoneType.Filter(opts.PhoneType),
		PhoneNumber: &models.PhoneNumber{NationalNumber: nationalNumber},
	}, nil
}

func mapTaxInfo(opts *models.TaxInfoOptions) (*models.TaxInfo, error) {
	if err := Requires(Required{"tax_id", opts.TaxID}); err != nil {
		return nil, err
	}

	return &models.TaxInfo{
		TaxID:     opts.TaxID,
		TaxIDType: AllowedTaxIDType.Filter(opts.TaxIDType),
	}, nil
}

// mapPayerAddress copies the payer address verbatim, eliding it when every
// field is absent. No field is individually mandatory here.
func mapPayerAddress(opts *models.AddressOptions) *models.Address {
	if opts == nil {
		return nil
	}
	address := &models.Address{
		AddressLine1: opts.AddressLine1,
		AddressLine2: opts.AddressLine2,
		AdminArea1:   opts.AdminArea1,
		AdminArea2:   opts.AdminArea2,
		PostalCode:   opts.PostalCode,
		CountryCode:  opts.CountryCode,
	}
	if *address == (models.Address{}) {
		return nil
	}
	return address
}
