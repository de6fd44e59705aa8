package domain

import "coffee-backend/internal/core/geo"

// OpeningHours holds the daily opening window of a shop in "HH:MM" local time.
type OpeningHours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// Shop represents a single coffee-shop location.
type Shop struct {
	// ID is the unique identifier for the shop.
	ID string `json:"id"`
	// Name is the display name of the location.
	Name string `json:"name"`
	// Address is the full street address.
	Address string `json:"address"`
	// City is the city the shop is located in.
	City string `json:"city"`
	// Country is the ISO-style country code (US, UK).
	Country string `json:"country"`
	// Lat is the shop latitude in degrees.
	Lat float64 `json:"lat"`
	// Lon is the shop longitude in degrees.
	Lon float64 `json:"lon"`
	// ImageURL points to the shop logo or storefront image.
	ImageURL string `json:"imageUrl"`
	// AcceptsOrders indicates whether the shop currently takes app orders.
	AcceptsOrders bool `json:"acceptsOrders"`
	// OpeningHours is the daily opening window.
	OpeningHours OpeningHours `json:"openingHours"`
}

// Location returns the shop coordinate as a geo.Point.
func (s Shop) Location() geo.Point {
	return geo.Point{Lat: s.Lat, Lon: s.Lon}
}
