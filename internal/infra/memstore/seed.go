package memstore

import (
	"toaigo/internal/domain/merchant"
	"toaigo/internal/domain/user"
)

// Demo data set. Merchant and service ids are stable strings so the login
// picker and the seeded merchant-role users can reference them.

func SeedMerchants() []merchant.Merchant {
	return []merchant.Merchant{
		{
			ID:          "1",
			Name:        "The Golden Spoon Diner",
			Category:    "Restaurant",
			Description: "A classic American diner experience with a modern twist. Famous for our all-day breakfast and handcrafted milkshakes.",
			ImageURL:    "https://picsum.photos/seed/diner/800/600",
			Services: []merchant.Service{
				{ID: "s1-1", Name: "Table for 2 Reservation", Price: 10},
				{ID: "s1-2", Name: "Table for 4 Reservation", Price: 15},
				{ID: "s1-3", Name: "Booth Seating (up to 6)", Price: 20},
			},
			OperatingHours: map[string]string{
				"Monday-Friday":   "8:00 AM - 10:00 PM",
				"Saturday-Sunday": "7:00 AM - 11:00 PM",
			},
		},
		{
			ID:          "2",
			Name:        "Serenity Spa & Wellness",
			Category:    "Service",
			Description: "Your urban oasis for relaxation and rejuvenation. We offer a wide range of treatments from massages to facials.",
			ImageURL:    "https://picsum.photos/seed/spa/800/600",
			Services: []merchant.Service{
				{ID: "s2-1", Name: "Swedish Massage (60 min)", Price: 120},
				{ID: "s2-2", Name: "Deep Tissue Massage (60 min)", Price: 140},
				{ID: "s2-3", Name: "Signature Facial (75 min)", Price: 180},
			},
			OperatingHours: map[string]string{
				"Tuesday-Sunday": "10:00 AM - 8:00 PM",
				"Monday":         "Closed",
			},
		},
		{
			ID:          "3",
			Name:        "Cityscape Boutique Hotel",
			Category:    "Accommodation",
			Description: "Chic and stylish rooms with breathtaking city views. Enjoy our rooftop bar and 24/7 concierge service.",
			ImageURL:    "https://picsum.photos/seed/hotel/800/600",
			Services: []merchant.Service{
				{ID: "s3-1", Name: "Queen Room", Price: 250},
				{ID: "s3-2", Name: "King Suite", Price: 400},
				{ID: "s3-3", Name: "Penthouse", Price: 1200},
			},
			OperatingHours: map[string]string{
				"All Week": "24 Hours",
			},
		},
		{
			ID:          "4",
			Name:        "Adventure Hub Rentals",
			Category:    "Activity",
			Description: "Rent kayaks, paddleboards, and mountain bikes to explore the great outdoors. Guided tours available!",
			ImageURL:    "https://picsum.photos/seed/adventure/800/600",
			Services: []merchant.Service{
				{ID: "s4-1", Name: "Kayak Rental (Half Day)", Price: 45},
				{ID: "s4-2", Name: "Mountain Bike (Full Day)", Price: 70},
				{ID: "s4-3", Name: "Guided Hike (3 hours)", Price: 50},
			},
			OperatingHours: map[string]string{
				"All Week": "9:00 AM - 6:00 PM",
			},
		},
	}
}

func SeedUsers() []user.User {
	diner := "1"
	spa := "2"
	return []user.User{
		{ID: "user1", Name: "Alex", Role: user.RoleCustomer},
		{ID: "merchant1", Name: "Golden Spoon Manager", Role: user.RoleMerchant, MerchantID: &diner},
		{ID: "merchant2", Name: "Serenity Spa Owner", Role: user.RoleMerchant, MerchantID: &spa},
		{ID: "admin1", Name: "TOAIGO Admin", Role: user.RoleAdmin},
	}
}

// NewSeededDirectoryStore builds a DirectoryStore preloaded with the demo
// data set.
func NewSeededDirectoryStore() *DirectoryStore {
	return NewDirectoryStore(SeedMerchants(), SeedUsers())
}
