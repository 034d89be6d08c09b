package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buy2send/shipping-rates/internal/core/domain"
)

func ptr(f float64) *float64 { return &f }

func validBase() domain.ShipmentBase {
	return domain.ShipmentBase{
		Country: "LK",
		Receiver: domain.Receiver{
			Name:    "Nimal Perera",
			Phone:   "+94712345678",
			Email:   "nimal@example.com",
			Address: "12 Galle Road, Colombo 03",
		},
	}
}

func validLink() domain.LinkShipment {
	return domain.LinkShipment{
		ShipmentBase: validBase(),
		Items: []domain.LinkItem{{
			ProductURL:    "https://www.amazon.com/dp/B000000000",
			Price:         25.5,
			Quantity:      1,
			ValueCurrency: "USD",
		}},
	}
}

func validWarehouse() domain.WarehouseShipment {
	return domain.WarehouseShipment{
		ShipmentBase:  validBase(),
		WarehouseID:   "wh_us_de",
		PurchasedDate: "2026-10-01",
		PurchasedSite: "ebay.com",
		Items:         []domain.WarehouseItem{{Price: 10, Quantity: 2}},
	}
}

func fields(vs []domain.FieldViolation) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.Field
	}
	return out
}

func TestValidate_ValidSubmissionsPass(t *testing.T) {
	v := New()

	assert.Empty(t, v.Validate(validLink()))
	assert.Empty(t, v.Validate(validWarehouse()))
	assert.Empty(t, v.Validate(domain.ExportShipment{
		ShipmentBase: validBase(),
		Pickup:       &domain.Pickup{Address: "45 Temple Road, Kandy", PhoneNumber: "+94771234567"},
		Items:        []domain.WarehouseItem{{Price: 3, Quantity: 1}},
	}))
}

func TestValidate_LinkItemRequiresURL(t *testing.T) {
	v := New()
	s := validLink()
	s.Items[0].ProductURL = "not-a-url"

	got := v.Validate(s)

	require.Len(t, got, 1)
	assert.Equal(t, "items[0].productUrl", got[0].Field)
	assert.Contains(t, got[0].Message, "valid URL")
}

func TestValidate_LinkItemURLMustBeAbsolute(t *testing.T) {
	v := New()

	cases := []struct {
		url string
		ok  bool
	}{
		{"https://www.amazon.com/dp/B000000000", true},
		{"http://shop.example:8080/item?id=1", true},
		{"foo:bar", false},
		{"mailto:x@y.z", false},
		{"http://", false},
		{"/dp/B000000000", false},
		{"www.amazon.com/dp/B000000000", false},
	}

	for _, tc := range cases {
		t.Run(tc.url, func(t *testing.T) {
			s := validLink()
			s.Items[0].ProductURL = tc.url

			got := v.Validate(s)

			if tc.ok {
				assert.Empty(t, got)
				return
			}
			require.Len(t, got, 1)
			assert.Equal(t, "items[0].productUrl", got[0].Field)
			assert.Contains(t, got[0].Message, "valid URL")
		})
	}
}

func TestValidate_WarehouseItemURLUnconstrained(t *testing.T) {
	v := New()
	s := validWarehouse()
	s.Items[0].ProductURL = "not-a-url"
	s.Items[0].ValueCurrency = ""

	assert.Empty(t, v.Validate(s))
}

func TestValidate_LinkItemRequiresKnownCurrency(t *testing.T) {
	v := New()
	s := validLink()
	s.Items = append(s.Items,
		domain.LinkItem{ProductURL: "https://shop.example/a", Price: 1, Quantity: 1, ValueCurrency: ""},
		domain.LinkItem{ProductURL: "https://shop.example/b", Price: 1, Quantity: 1, ValueCurrency: "XYZ"},
	)

	got := v.Validate(s)

	assert.ElementsMatch(t, []string{"items[1].valueCurrency", "items[2].valueCurrency"}, fields(got))
}

func TestValidate_WarehouseFieldsRequiredAndTrimmed(t *testing.T) {
	v := New()
	s := validWarehouse()
	s.WarehouseID = ""
	s.PurchasedDate = "   "
	s.PurchasedSite = "\t"

	got := v.Validate(s)

	assert.ElementsMatch(t, []string{"warehouseId", "purchasedDate", "purchasedSite"}, fields(got))
}

func TestValidate_DimensionsAllOrNothing(t *testing.T) {
	v := New()

	cases := []struct {
		name string
		dims domain.Dimensions
		bad  bool
	}{
		{"none", domain.Dimensions{}, false},
		{"all three", domain.Dimensions{Length: ptr(10), Width: ptr(20), Height: ptr(30)}, false},
		{"one", domain.Dimensions{Length: ptr(10)}, true},
		{"two", domain.Dimensions{Length: ptr(10), Height: ptr(5)}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := validLink()
			s.Dimensions = tc.dims
			got := v.Validate(s)
			if tc.bad {
				require.Len(t, got, 1)
				assert.Equal(t, "dimensions", got[0].Field)
			} else {
				assert.Empty(t, got)
			}
		})
	}
}

func TestValidate_DimensionsMustBePositive(t *testing.T) {
	v := New()
	s := validLink()
	s.Dimensions = domain.Dimensions{Length: ptr(10), Width: ptr(0), Height: ptr(30)}

	got := v.Validate(s)

	require.Len(t, got, 1)
	assert.Equal(t, "dimensions.width", got[0].Field)
}

func TestValidate_AccumulatesAllViolations(t *testing.T) {
	v := New()
	s := validLink()
	s.Country = ""
	s.Receiver.Phone = "12345"
	s.Receiver.Email = "nope"
	s.Items[0].ProductURL = "not-a-url"
	s.Items[0].Quantity = 0

	got := v.Validate(s)

	assert.ElementsMatch(t, []string{
		"country",
		"receiver.phone",
		"receiver.email",
		"items[0].productUrl",
		"items[0].quantity",
	}, fields(got))
}

func TestValidate_ItemsRequired(t *testing.T) {
	v := New()
	s := validWarehouse()
	s.Items = nil

	got := v.Validate(s)

	require.Len(t, got, 1)
	assert.Equal(t, "items", got[0].Field)
}

func TestValidate_PickupPhoneCheckedWhenPresent(t *testing.T) {
	v := New()
	s := domain.ExportShipment{
		ShipmentBase: validBase(),
		Pickup:       &domain.Pickup{Address: "Kandy", PhoneNumber: "0812345678"},
		Items:        []domain.WarehouseItem{{Price: 3, Quantity: 1}},
	}

	got := v.Validate(s)

	require.Len(t, got, 1)
	assert.Equal(t, "pickup.phoneNumber", got[0].Field)
}

func TestValidate_NilSubmission(t *testing.T) {
	got := New().Validate(nil)
	require.Len(t, got, 1)
	assert.Equal(t, "shipmentType", got[0].Field)
}
