package ports

import "coffee-backend/internal/features/shops/domain"

// ShopCatalog defines the secondary port for shop and menu lookup.
// The catalog is static for the process lifetime.
type ShopCatalog interface {
	// List returns every shop in the catalog.
	List() []domain.Shop
	// ShopByID returns the shop with the given id, if present.
	ShopByID(id string) (*domain.Shop, bool)
	// MenuForShop returns the menu of the given shop, if the shop exists.
	MenuForShop(shopID string) ([]domain.MenuItem, bool)
}
