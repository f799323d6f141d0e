package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/eco-travel-service/internal/domain"
	"github.com/eco-travel-service/internal/pkg/errors"
	"github.com/eco-travel-service/internal/usecase"
)

func newCatalogUseCase(t *testing.T) *usecase.CatalogUseCase {
	t.Helper()
	return usecase.NewCatalogUseCase(newPlanner(t).Catalog(), zap.NewNop())
}

func TestCatalogUseCase_Lists(t *testing.T) {
	uc := newCatalogUseCase(t)
	ctx := context.Background()

	dests := uc.ListDestinations(ctx)
	assert.Equal(t, 23, dests.Total)
	assert.Len(t, dests.Destinations, 23)

	cities := uc.ListCities(ctx)
	assert.Equal(t, 55, cities.Total)
	assert.Equal(t, "Delhi", cities.Cities[0].Name)

	opts := uc.ListOptions(ctx)
	assert.Len(t, opts.Accommodations, 8)
	assert.Len(t, opts.Foods, 6)
}

func TestCatalogUseCase_GetDestination(t *testing.T) {
	uc := newCatalogUseCase(t)

	dest, err := uc.GetDestination(context.Background(), "Jaipur")
	require.NoError(t, err)
	assert.Equal(t, 280.0, dest.ReferenceDistanceKm)
	assert.Equal(t, int64(1200), dest.Train.Price)

	_, err = uc.GetDestination(context.Background(), "Atlantis")
	assert.ErrorIs(t, err, errors.ErrUnknownDestination)
}

func TestCatalogUseCase_GetStatistics(t *testing.T) {
	uc := newCatalogUseCase(t)

	stats := uc.GetStatistics(context.Background())
	assert.Equal(t, 23, stats.Destinations)
	assert.Equal(t, 55, stats.Cities)
	assert.Equal(t, 8, stats.AccommodationOptions)
	assert.Equal(t, 6, stats.FoodOptions)
	assert.Equal(t, 5*7*5, stats.MaxCandidates)
	assert.Less(t, stats.FlightRoutes, 23, "Agra has no flight")
	assert.Greater(t, stats.AvgReferenceKm, 0.0)
	assert.Equal(t, "2025.1", stats.CatalogVersion)

	// callers get their own copy
	stats.Destinations = 0
	assert.Equal(t, 23, uc.GetStatistics(context.Background()).Destinations)
}

func TestCatalogUseCase_StatisticsOnCustomCatalog(t *testing.T) {
	c := domain.NewCatalog("test",
		[]domain.Destination{
			{Name: "A", ReferenceDistanceKm: 100, Flight: domain.ModeProfile{Available: true}},
			{Name: "B", ReferenceDistanceKm: 201},
		},
		[]domain.City{{Name: "X"}},
		[]domain.Option{{Name: "Hotel"}, {Name: "With Relatives", Exclusive: true}},
		[]domain.Option{{Name: "Cafe"}},
	)
	uc := usecase.NewCatalogUseCase(c, zap.NewNop())

	stats := uc.GetStatistics(context.Background())
	assert.Equal(t, 1, stats.FlightRoutes)
	assert.Equal(t, 150.5, stats.AvgReferenceKm)
	assert.Equal(t, 5, stats.MaxCandidates)
}
