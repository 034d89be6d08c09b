package validation

import (
	"errors"
	"strconv"

	"github.com/nyaruka/phonenumbers"

	"github.com/buy2send/shipping-rates/internal/core/domain"
)

var ErrInvalidPhone = errors.New("invalid phone number")

// DecomposePhone parses an international phone number ("+94 77 123 4567")
// and splits it into the parts stored with a shipment.
func DecomposePhone(raw string) (domain.PhoneNumber, error) {
	num, err := phonenumbers.Parse(raw, "")
	if err != nil {
		return domain.PhoneNumber{}, ErrInvalidPhone
	}
	if !phonenumbers.IsValidNumber(num) {
		return domain.PhoneNumber{}, ErrInvalidPhone
	}
	return domain.PhoneNumber{
		NationalNumber:     phonenumbers.GetNationalSignificantNumber(num),
		CountryCallingCode: strconv.Itoa(int(num.GetCountryCode())),
		Country:            phonenumbers.GetRegionCodeForNumber(num),
	}, nil
}

// Normalize decomposes the phone numbers of a submission that already
// passed Validate.
func Normalize(s domain.Submission) (domain.NormalizedShipment, error) {
	receiver, err := DecomposePhone(s.Common().Receiver.Phone)
	if err != nil {
		return domain.NormalizedShipment{}, err
	}
	out := domain.NormalizedShipment{Submission: s, ReceiverPhone: receiver}

	if exp, ok := s.(domain.ExportShipment); ok && exp.Pickup != nil && exp.Pickup.PhoneNumber != "" {
		pickup, err := DecomposePhone(exp.Pickup.PhoneNumber)
		if err != nil {
			return domain.NormalizedShipment{}, err
		}
		out.PickupPhone = &pickup
	}
	return out, nil
}
