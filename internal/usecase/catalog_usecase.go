package usecase

import (
	"context"
	"math"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/eco-travel-service/internal/domain"
	"github.com/eco-travel-service/internal/pkg/errors"
	"github.com/eco-travel-service/internal/usecase/dto"
)

// CatalogUseCase - чтение справочника направлений, городов и вариантов
type CatalogUseCase struct {
	catalog *domain.Catalog
	logger  *zap.Logger

	statsOnce sync.Once
	stats     *domain.Statistics
}

func NewCatalogUseCase(catalog *domain.Catalog, logger *zap.Logger) *CatalogUseCase {
	return &CatalogUseCase{
		catalog: catalog,
		logger:  logger,
	}
}

func (uc *CatalogUseCase) ListDestinations(_ context.Context) *dto.DestinationsResponse {
	dests := uc.catalog.Destinations()
	return &dto.DestinationsResponse{
		Destinations: dests,
		Total:        len(dests),
	}
}

func (uc *CatalogUseCase) GetDestination(_ context.Context, name string) (*domain.Destination, error) {
	dest, ok := uc.catalog.Destination(strings.TrimSpace(name))
	if !ok {
		return nil, errors.ErrUnknownDestination.WithDetails(map[string]interface{}{
			"destination": name,
		})
	}
	return &dest, nil
}

func (uc *CatalogUseCase) ListCities(_ context.Context) *dto.CitiesResponse {
	cities := uc.catalog.Cities()
	return &dto.CitiesResponse{
		Cities: cities,
		Total:  len(cities),
	}
}

func (uc *CatalogUseCase) ListOptions(_ context.Context) *dto.OptionsResponse {
	return &dto.OptionsResponse{
		Accommodations: uc.catalog.Accommodations(),
		Foods:          uc.catalog.Foods(),
	}
}

// GetStatistics возвращает сводку по каталогу; каталог неизменяем, поэтому считается один раз
func (uc *CatalogUseCase) GetStatistics(_ context.Context) *domain.Statistics {
	uc.statsOnce.Do(func() {
		uc.stats = computeStatistics(uc.catalog)
		uc.logger.Debug("Catalog statistics computed",
			zap.Int("destinations", uc.stats.Destinations),
			zap.Int("cities", uc.stats.Cities))
	})

	stats := *uc.stats
	return &stats
}

func computeStatistics(c *domain.Catalog) *domain.Statistics {
	dests := c.Destinations()
	stays := c.Accommodations()
	foods := c.Foods()

	stats := &domain.Statistics{
		Destinations:         len(dests),
		Cities:               len(c.Cities()),
		AccommodationOptions: len(stays),
		FoodOptions:          len(foods),
		CatalogVersion:       c.Version,
	}

	var totalKm float64
	for _, d := range dests {
		if d.Flight.Available {
			stats.FlightRoutes++
		}
		totalKm += d.ReferenceDistanceKm
	}
	if len(dests) > 0 {
		stats.AvgReferenceKm = math.Round(totalKm/float64(len(dests))*10) / 10
	}

	regularStays := 0
	for _, s := range stays {
		if !s.Exclusive {
			regularStays++
		}
	}
	regularFoods := 0
	for _, f := range foods {
		if !f.Exclusive {
			regularFoods++
		}
	}
	stats.MaxCandidates = len(domain.TransportModes()) * regularStays * regularFoods

	return stats
}
