package domain

// ShipmentType discriminates the shipment submission variants.
type ShipmentType string

const (
	ShipmentTypeLink      ShipmentType = "link"
	ShipmentTypeWarehouse ShipmentType = "warehouse"
	ShipmentTypeExport    ShipmentType = "export"
)

// Direction returns the courier direction used to price this kind of shipment.
// Link and warehouse orders are bought abroad and shipped in.
func (t ShipmentType) Direction() Direction {
	if t == ShipmentTypeExport {
		return DirectionExport
	}
	return DirectionImport
}

// Submission is a shipment as submitted by a customer. It is implemented by
// LinkShipment, WarehouseShipment and ExportShipment only.
type Submission interface {
	Type() ShipmentType
	Common() ShipmentBase
	isSubmission()
}

// Dimensions are in centimetres. Either none or all three are set.
type Dimensions struct {
	Length *float64 `json:"length,omitempty" validate:"omitempty,gt=0"`
	Width  *float64 `json:"width,omitempty"  validate:"omitempty,gt=0"`
	Height *float64 `json:"height,omitempty" validate:"omitempty,gt=0"`
}

// Set counts how many of the three dimensions are populated.
func (d Dimensions) Set() int {
	n := 0
	for _, v := range []*float64{d.Length, d.Width, d.Height} {
		if v != nil {
			n++
		}
	}
	return n
}

// VolumeCm3 returns length*width*height when all three are set.
func (d Dimensions) VolumeCm3() (float64, bool) {
	if d.Set() != 3 {
		return 0, false
	}
	return *d.Length * *d.Width * *d.Height, true
}

// Receiver is the person the shipment is delivered to.
type Receiver struct {
	Name    string `json:"name"    validate:"notblank"`
	Phone   string `json:"phone"   validate:"required,phone"`
	Email   string `json:"email"   validate:"required,email"`
	Address string `json:"address" validate:"notblank"`
}

// Pickup is where an export shipment is collected from.
type Pickup struct {
	Address     string `json:"address"               validate:"notblank"`
	PhoneNumber string `json:"phoneNumber,omitempty" validate:"omitempty,phone"`
	Date        string `json:"date,omitempty"`
}

// ShipmentBase holds the fields shared by every variant.
type ShipmentBase struct {
	Country        string     `json:"country"                  validate:"required,iso3166_1_alpha2"`
	CourierService string     `json:"courierService,omitempty"`
	WeightGrams    float64    `json:"weight,omitempty"         validate:"gte=0"`
	Dimensions     Dimensions `json:"dimensions"`
	Receiver       Receiver   `json:"receiver"`
}

// LinkItem is a product the customer asks us to buy from a web shop.
type LinkItem struct {
	Name          string  `json:"name,omitempty"`
	ProductURL    string  `json:"productUrl"    validate:"required,abs_url"`
	Price         float64 `json:"price"         validate:"gt=0"`
	Quantity      int     `json:"quantity"      validate:"gte=1"`
	ValueCurrency string  `json:"valueCurrency" validate:"required,item_currency"`
}

// WarehouseItem is a product already delivered to one of our warehouses.
type WarehouseItem struct {
	Name          string  `json:"name,omitempty"`
	ProductURL    string  `json:"productUrl,omitempty"`
	Price         float64 `json:"price"    validate:"gt=0"`
	Quantity      int     `json:"quantity" validate:"gte=1"`
	ValueCurrency string  `json:"valueCurrency,omitempty"`
}

// LinkShipment is a purchase-on-behalf order built from product links.
type LinkShipment struct {
	ShipmentBase
	Items []LinkItem `json:"items" validate:"required,min=1,dive"`
}

// WarehouseShipment routes goods the customer already bought through a
// virtual warehouse address.
type WarehouseShipment struct {
	ShipmentBase
	WarehouseID   string          `json:"warehouseId"   validate:"notblank"`
	PurchasedDate string          `json:"purchasedDate" validate:"notblank"`
	PurchasedSite string          `json:"purchasedSite" validate:"notblank"`
	Items         []WarehouseItem `json:"items"         validate:"required,min=1,dive"`
}

// ExportShipment is collected locally and sent abroad.
type ExportShipment struct {
	ShipmentBase
	Pickup *Pickup         `json:"pickup,omitempty"`
	Items  []WarehouseItem `json:"items" validate:"required,min=1,dive"`
}

func (LinkShipment) Type() ShipmentType      { return ShipmentTypeLink }
func (WarehouseShipment) Type() ShipmentType { return ShipmentTypeWarehouse }
func (ExportShipment) Type() ShipmentType    { return ShipmentTypeExport }

func (s LinkShipment) Common() ShipmentBase      { return s.ShipmentBase }
func (s WarehouseShipment) Common() ShipmentBase { return s.ShipmentBase }
func (s ExportShipment) Common() ShipmentBase    { return s.ShipmentBase }

func (LinkShipment) isSubmission()      {}
func (WarehouseShipment) isSubmission() {}
func (ExportShipment) isSubmission()    {}

// PhoneNumber is a validated phone number split for storage.
type PhoneNumber struct {
	NationalNumber     string `json:"nationalNumber"`
	CountryCallingCode string `json:"countryCallingCode"`
	Country            string `json:"country"`
}

// NormalizedShipment is a submission that passed validation, with phone
// numbers decomposed.
type NormalizedShipment struct {
	Submission    Submission
	ReceiverPhone PhoneNumber
	PickupPhone   *PhoneNumber
}
