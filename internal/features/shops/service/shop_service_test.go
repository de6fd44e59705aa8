package service

import (
	"testing"

	"coffee-backend/internal/features/shops/adapters"
	"coffee-backend/internal/features/shops/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCatalog is a minimal ShopCatalog for controlled coordinates.
type fakeCatalog struct {
	shops []domain.Shop
	menus map[string][]domain.MenuItem
}

func (f *fakeCatalog) List() []domain.Shop {
	return append([]domain.Shop(nil), f.shops...)
}

func (f *fakeCatalog) ShopByID(id string) (*domain.Shop, bool) {
	for i := range f.shops {
		if f.shops[i].ID == id {
			s := f.shops[i]
			return &s, true
		}
	}
	return nil, false
}

func (f *fakeCatalog) MenuForShop(shopID string) ([]domain.MenuItem, bool) {
	m, ok := f.menus[shopID]
	return m, ok
}

// TestShopService_Nearest verifies that the closest shop wins and the
// distance is rounded to whole meters.
func TestShopService_Nearest(t *testing.T) {
	catalog := &fakeCatalog{
		shops: []domain.Shop{
			{ID: "far", Lat: 1.0, Lon: 1.0},
			{ID: "near", Lat: 0.0, Lon: 0.01},
		},
	}
	svc := NewShopService(catalog)

	shop, distance, err := svc.Nearest(0, 0)
	require.NoError(t, err)
	assert.Equal(t, "near", shop.ID)
	assert.Equal(t, 1113, distance)
}

// TestShopService_Nearest_Empty verifies the empty-catalog error.
func TestShopService_Nearest_Empty(t *testing.T) {
	svc := NewShopService(&fakeCatalog{})

	_, _, err := svc.Nearest(0, 0)
	assert.ErrorIs(t, err, ErrNoShops)
}

// TestShopService_Menu verifies menu lookup and the not-found case.
func TestShopService_Menu(t *testing.T) {
	catalog := adapters.NewStaticCatalog()
	svc := NewShopService(catalog)

	t.Run("Known", func(t *testing.T) {
		menu, err := svc.Menu("us_ny_48th_lex")
		require.NoError(t, err)
		require.NotEmpty(t, menu)
		assert.Equal(t, "latte_us_ny_48th_lex", menu[0].ID)
	})

	t.Run("Unknown", func(t *testing.T) {
		_, err := svc.Menu("nope")
		assert.ErrorIs(t, err, ErrShopNotFound)
	})
}

// TestStaticCatalog verifies the seeded catalog shape.
func TestStaticCatalog(t *testing.T) {
	catalog := adapters.NewStaticCatalog()

	shops := catalog.List()
	assert.Len(t, shops, 10)

	shop, ok := catalog.ShopByID("uk_ldn_regent_st")
	require.True(t, ok)
	assert.Equal(t, "London", shop.City)

	menu, ok := catalog.MenuForShop("uk_ldn_regent_st")
	require.True(t, ok)
	assert.Len(t, menu, 6)
	for _, item := range menu {
		for _, g := range item.OptionGroups {
			assert.LessOrEqual(t, g.Min, g.Max)
			assert.NotEmpty(t, g.Choices)
		}
	}
}
