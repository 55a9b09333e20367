package main

import (
	"time"

	"github.com/kateryna-ts/NiceFrogbeta/pkg/domain"
)

// seedListings returns the demo marketplace a fresh profile starts with
func seedListings() []domain.Listing {
	base := time.Now().Add(-time.Hour)
	return []domain.Listing{
		{
			ID:          "1",
			Title:       "Vintage Mid-Century Lamp",
			Price:       "$120",
			Description: "Beautiful condition, original wiring. Seller is at the cafe.",
			Distance:    "15m away",
			Type:        domain.ListingForSale,
			BLEActive:   true,
			BLEDeviceID: "NF-BEACON-A1",
			UserName:    "Chloe B.",
			CreatedAt:   base,
		},
		{
			ID:          "2",
			Title:       "2019 Mercedes C-Class",
			Price:       "$28,500",
			Description: "Low mileage, pristine condition. Parked on 4th St.",
			Distance:    "100m away",
			Type:        domain.ListingVehicles,
			BLEActive:   true,
			BLEDeviceID: "NF-BEACON-CAR2",
			CreatedAt:   base.Add(time.Minute),
		},
		{
			ID:          "3",
			Title:       "Sunny 2BR Loft in Arts District",
			Price:       "$3,200/mo",
			Description: "Available immediately. Open house right now!",
			Distance:    "50m away",
			Type:        domain.ListingForRent,
			BLEActive:   true,
			UserName:    "Julian Hayes",
			CreatedAt:   base.Add(2 * time.Minute),
		},
		{
			ID:          "4",
			Title:       "Barista / Shift Lead",
			Price:       "$22/hr",
			Description: "Elena's Coffee Roastery. Looking for experienced staff.",
			Distance:    "30m away",
			Type:        domain.ListingServices,
			BLEActive:   true,
			CreatedAt:   base.Add(3 * time.Minute),
		},
		{
			ID:          "5",
			Title:       "Fender Stratocaster",
			Price:       "$850",
			Description: "Mint condition. Selling to upgrade.",
			Distance:    "85m away",
			Type:        domain.ListingForSale,
			UserName:    "David C.",
			CreatedAt:   base.Add(4 * time.Minute),
		},
		{
			ID:          "6",
			Title:       "Downtown Condo Sale",
			Price:       "$450,000",
			Description: "Luxury 1BR condo with city views. Motivated seller.",
			Distance:    "200m away",
			Type:        domain.ListingRealEstate,
			BLEActive:   true,
			BLEDeviceID: "NF-BEACON-HOME6",
			UserName:    "Metro Realty",
			CreatedAt:   base.Add(5 * time.Minute),
		},
	}
}
