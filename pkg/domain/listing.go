package domain

import "time"

// ListingType categorizes a marketplace listing
type ListingType string

// listing types
const (
	ListingForSale    ListingType = "FOR_SALE"
	ListingForRent    ListingType = "FOR_RENT"
	ListingServices   ListingType = "SERVICES"
	ListingVehicles   ListingType = "VEHICLES"
	ListingRealEstate ListingType = "REAL_ESTATE"
)

// Listing is a marketplace post. Distance is a display string ("50m away"),
// not a measurement - there is no real positioning. BLEDeviceID is the
// identifier a beacon would broadcast in the simulated proximity mesh.
type Listing struct {
	ID          string      `json:"id" db:"id"`
	Title       string      `json:"title" db:"title"`
	Price       string      `json:"price" db:"price"`
	Description string      `json:"description" db:"description"`
	Distance    string      `json:"distance" db:"distance"`
	Type        ListingType `json:"type" db:"type"`
	BLEActive   bool        `json:"ble_active" db:"ble_active"`
	BLEDeviceID string      `json:"ble_device_id" db:"ble_device_id"`
	UserName    string      `json:"user_name" db:"user_name"`
	CreatedAt   time.Time   `json:"created_at" db:"created_at"`
}
