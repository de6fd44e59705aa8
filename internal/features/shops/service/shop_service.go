package service

import (
	"errors"
	"math"
	"sort"

	"coffee-backend/internal/core/geo"
	"coffee-backend/internal/features/shops/domain"
	"coffee-backend/internal/features/shops/ports"
)

// ErrShopNotFound is returned when the shop id does not exist in the catalog.
var ErrShopNotFound = errors.New("shop not found")

// ErrNoShops is returned by Nearest when the catalog is empty.
var ErrNoShops = errors.New("no shops available")

// ShopService handles shop listing, nearest-shop lookup and menu retrieval.
type ShopService struct {
	catalog ports.ShopCatalog
}

// NewShopService creates a new ShopService backed by the given catalog.
func NewShopService(catalog ports.ShopCatalog) *ShopService {
	return &ShopService{catalog: catalog}
}

// List returns every shop in the catalog.
func (s *ShopService) List() []domain.Shop {
	return s.catalog.List()
}

// Nearest returns the shop closest to the given coordinate and the
// great-circle distance to it in whole meters.
func (s *ShopService) Nearest(lat, lon float64) (*domain.Shop, int, error) {
	shops := s.catalog.List()
	if len(shops) == 0 {
		return nil, 0, ErrNoShops
	}

	from := geo.Point{Lat: lat, Lon: lon}
	sort.Slice(shops, func(i, j int) bool {
		return from.DistanceTo(shops[i].Location()) < from.DistanceTo(shops[j].Location())
	})

	nearest := shops[0]
	distance := int(math.Round(from.DistanceTo(nearest.Location())))
	return &nearest, distance, nil
}

// Menu returns the menu for the given shop.
func (s *ShopService) Menu(shopID string) ([]domain.MenuItem, error) {
	menu, ok := s.catalog.MenuForShop(shopID)
	if !ok {
		return nil, ErrShopNotFound
	}
	return menu, nil
}
