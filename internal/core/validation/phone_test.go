package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buy2send/shipping-rates/internal/core/domain"
)

func TestDecomposePhone(t *testing.T) {
	cases := []struct {
		raw  string
		want domain.PhoneNumber
	}{
		{"+94712345678", domain.PhoneNumber{NationalNumber: "712345678", CountryCallingCode: "94", Country: "LK"}},
		{"+1 201-555-0123", domain.PhoneNumber{NationalNumber: "2015550123", CountryCallingCode: "1", Country: "US"}},
		{"+44 7400 123456", domain.PhoneNumber{NationalNumber: "7400123456", CountryCallingCode: "44", Country: "GB"}},
	}

	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			got, err := DecomposePhone(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDecomposePhone_Invalid(t *testing.T) {
	for _, raw := range []string{"", "12345", "0712345678", "+94 1", "phone"} {
		_, err := DecomposePhone(raw)
		assert.ErrorIs(t, err, ErrInvalidPhone, raw)
	}
}

func TestDecomposePhone_Deterministic(t *testing.T) {
	a, errA := DecomposePhone("+94712345678")
	b, errB := DecomposePhone("+94712345678")
	require.NoError(t, errA)
	require.NoError(t, errB)
	assert.Equal(t, a, b)
}

func TestNormalize_DecomposesReceiverAndPickup(t *testing.T) {
	s := domain.ExportShipment{
		ShipmentBase: validBase(),
		Pickup:       &domain.Pickup{Address: "Kandy", PhoneNumber: "+94771234567"},
		Items:        []domain.WarehouseItem{{Price: 3, Quantity: 1}},
	}

	got, err := Normalize(s)

	require.NoError(t, err)
	assert.Equal(t, "94", got.ReceiverPhone.CountryCallingCode)
	require.NotNil(t, got.PickupPhone)
	assert.Equal(t, "771234567", got.PickupPhone.NationalNumber)
	assert.Equal(t, domain.ShipmentTypeExport, got.Submission.Type())
}

func TestNormalize_NoPickupForLink(t *testing.T) {
	got, err := Normalize(validLink())

	require.NoError(t, err)
	assert.Nil(t, got.PickupPhone)
	assert.Equal(t, "LK", got.ReceiverPhone.Country)
}
