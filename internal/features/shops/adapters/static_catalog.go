package adapters

import (
	"fmt"

	"coffee-backend/internal/features/shops/domain"
)

const shopLogoURL = "https://commons.wikimedia.org/wiki/Special:FilePath/Blank%20Street%20Coffee%20logo.png"

// StaticCatalog implements ports.ShopCatalog from data seeded at startup.
type StaticCatalog struct {
	shops []domain.Shop
	menus map[string][]domain.MenuItem
}

// NewStaticCatalog builds the catalog with the fixed shop list and a menu
// per shop.
func NewStaticCatalog() *StaticCatalog {
	shops := seedShops()

	menus := make(map[string][]domain.MenuItem, len(shops))
	for _, s := range shops {
		menus[s.ID] = menuForShop(s.ID)
	}

	return &StaticCatalog{shops: shops, menus: menus}
}

// List returns every shop in the catalog.
func (c *StaticCatalog) List() []domain.Shop {
	out := make([]domain.Shop, len(c.shops))
	copy(out, c.shops)
	return out
}

// ShopByID returns the shop with the given id, if present.
func (c *StaticCatalog) ShopByID(id string) (*domain.Shop, bool) {
	for i := range c.shops {
		if c.shops[i].ID == id {
			shop := c.shops[i]
			return &shop, true
		}
	}
	return nil, false
}

// MenuForShop returns the menu of the given shop, if the shop exists.
func (c *StaticCatalog) MenuForShop(shopID string) ([]domain.MenuItem, bool) {
	menu, ok := c.menus[shopID]
	if !ok {
		return nil, false
	}
	out := make([]domain.MenuItem, len(menu))
	copy(out, menu)
	return out, true
}

func seedShops() []domain.Shop {
	hoursUS := domain.OpeningHours{Open: "06:30", Close: "18:30"}

	return []domain.Shop{
		// New York
		{
			ID: "us_ny_48th_lex", Name: "48th & Lex",
			Address: "500 Lexington Ave, New York, NY 10017",
			City:    "New York", Country: "US",
			Lat: 40.75538, Lon: -73.97456,
			ImageURL: shopLogoURL, AcceptsOrders: true, OpeningHours: hoursUS,
		},
		{
			ID: "us_ny_church_murray", Name: "Church & Murray",
			Address: "125 Church St, New York, NY 10007",
			City:    "New York", Country: "US",
			Lat: 40.7170211, Lon: -74.0063009,
			ImageURL: shopLogoURL, AcceptsOrders: true, OpeningHours: hoursUS,
		},
		{
			ID: "us_ny_green_room_soho", Name: "The Green Room – Soho",
			Address: "63 Spring St, New York, NY 10012",
			City:    "New York", Country: "US",
			Lat: 40.7223025, Lon: -73.9971855,
			ImageURL: shopLogoURL, AcceptsOrders: true, OpeningHours: hoursUS,
		},
		{
			ID: "us_ny_broadway_e4", Name: "Broadway & E 4th St",
			Address: "688 Broadway, New York, NY 10012",
			City:    "New York", Country: "US",
			Lat: 40.72799, Lon: -73.99411,
			ImageURL: shopLogoURL, AcceptsOrders: true, OpeningHours: hoursUS,
		},
		{
			ID: "us_ny_57th_5th", Name: "57th St (near 5th Ave)",
			Address: "30 W 57th St, New York, NY 10019",
			City:    "New York", Country: "US",
			Lat: 40.76382, Lon: -73.9749,
			ImageURL: shopLogoURL, AcceptsOrders: true, OpeningHours: hoursUS,
		},
		// London
		{
			ID: "uk_ldn_regent_st", Name: "Regent Street",
			Address: "315 Regent St, London W1B 2HT, UK",
			City:    "London", Country: "UK",
			Lat: 51.513132, Lon: -0.140924,
			ImageURL: shopLogoURL, AcceptsOrders: true,
			OpeningHours: domain.OpeningHours{Open: "06:30", Close: "21:00"},
		},
		{
			ID: "uk_ldn_st_pauls", Name: "St Paul's (Cheapside)",
			Address: "138 Cheapside, London EC2V 6BJ, UK",
			City:    "London", Country: "UK",
			Lat: 51.51452, Lon: -0.095771,
			ImageURL: shopLogoURL, AcceptsOrders: true,
			OpeningHours: domain.OpeningHours{Open: "06:30", Close: "20:00"},
		},
		{
			ID: "uk_ldn_marble_arch", Name: "Marble Arch / Old Quebec St",
			Address: "1 Old Quebec St, London W1H 7AF, UK",
			City:    "London", Country: "UK",
			Lat: 51.51386, Lon: -0.158032,
			ImageURL: shopLogoURL, AcceptsOrders: true,
			OpeningHours: domain.OpeningHours{Open: "06:30", Close: "20:00"},
		},
		{
			ID: "uk_ldn_curzon_st", Name: "Curzon Street (Mayfair)",
			Address: "14 Curzon St, London W1J 5HN, UK",
			City:    "London", Country: "UK",
			Lat: 51.506558, Lon: -0.145623,
			ImageURL: shopLogoURL, AcceptsOrders: true,
			OpeningHours: domain.OpeningHours{Open: "06:30", Close: "20:00"},
		},
		{
			ID: "uk_ldn_canary_wharf", Name: "Canary Wharf – Canada Place",
			Address: "38 Canada Place (Lower Mall), London E14 5AH, UK",
			City:    "London", Country: "UK",
			Lat: 51.504454, Lon: -0.017428,
			ImageURL: shopLogoURL, AcceptsOrders: true,
			OpeningHours: domain.OpeningHours{Open: "06:30", Close: "20:00"},
		},
	}
}

// menuForShop builds the per-shop menu. Item ids are namespaced with the
// shop id so the same product at two shops never collides.
func menuForShop(shopID string) []domain.MenuItem {
	size := domain.OptionGroup{
		ID: "size", Name: "Size", Min: 1, Max: 1,
		Choices: []domain.Choice{
			{ID: "sm", Name: "Small", PriceCents: 0},
			{ID: "md", Name: "Medium", PriceCents: 50},
			{ID: "lg", Name: "Large", PriceCents: 100},
		},
	}
	milk := domain.OptionGroup{
		ID: "milk", Name: "Milk", Min: 1, Max: 1,
		Choices: []domain.Choice{
			{ID: "whole", Name: "Whole", PriceCents: 0},
			{ID: "oat", Name: "Oat", PriceCents: 50},
			{ID: "almond", Name: "Almond", PriceCents: 50},
			{ID: "skim", Name: "Skim", PriceCents: 0},
		},
	}
	shots := domain.OptionGroup{
		ID: "shots", Name: "Extra Espresso Shots", Min: 0, Max: 3,
		Choices: []domain.Choice{
			{ID: "x1", Name: "+1 Shot", PriceCents: 75},
			{ID: "x2", Name: "+2 Shots", PriceCents: 150},
			{ID: "x3", Name: "+3 Shots", PriceCents: 225},
		},
	}
	sweet := domain.OptionGroup{
		ID: "sweet", Name: "Sweetener", Min: 0, Max: 2,
		Choices: []domain.Choice{
			{ID: "sugar", Name: "Sugar", PriceCents: 0},
			{ID: "honey", Name: "Honey", PriceCents: 25},
			{ID: "vanilla", Name: "Vanilla Syrup", PriceCents: 50},
		},
	}

	items := []domain.MenuItem{
		{
			ID: "latte", Name: "Caffè Latte",
			Description:    "Rich espresso with steamed milk",
			BasePriceCents: 400,
			OptionGroups:   []domain.OptionGroup{size, milk, shots, sweet},
		},
		{
			ID: "americano", Name: "Americano",
			Description:    "Espresso with hot water",
			BasePriceCents: 350,
			OptionGroups:   []domain.OptionGroup{size, sweet},
		},
		{
			ID: "coldbrew", Name: "Cold Brew",
			Description:    "Slow-steeped cold brew over ice",
			BasePriceCents: 425,
			OptionGroups:   []domain.OptionGroup{size, sweet},
		},
		{
			ID: "matcha", Name: "Iced Matcha Latte",
			Description:    "Ceremonial matcha with milk over ice",
			BasePriceCents: 475,
			OptionGroups:   []domain.OptionGroup{size, milk, sweet},
		},
		{
			ID: "croissant", Name: "Butter Croissant",
			Description:    "Flaky, buttery pastry",
			BasePriceCents: 325,
			OptionGroups:   []domain.OptionGroup{},
		},
		{
			ID: "seasonal", Name: "Seasonal Pumpkin Spice Latte",
			Description:    "Espresso, milk, pumpkin spice",
			BasePriceCents: 525,
			OptionGroups:   []domain.OptionGroup{size, milk, sweet},
		},
	}

	for i := range items {
		items[i].ID = fmt.Sprintf("%s_%s", items[i].ID, shopID)
	}
	return items
}
