package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"math"
	"os"

	"go.uber.org/zap"

	"github.com/eco-travel-service/internal/domain"
	"github.com/eco-travel-service/internal/pkg/errors"
	"github.com/eco-travel-service/internal/pkg/utils"
)

//go:embed data/catalog.json
var defaultCatalog []byte

type fileCatalog struct {
	Version        string            `json:"version"`
	Destinations   []fileDestination `json:"destinations"`
	Cities         []domain.City     `json:"cities"`
	Accommodations []domain.Option   `json:"accommodations"`
	Foods          []domain.Option   `json:"foods"`
}

type fileDestination struct {
	Name     string            `json:"name"`
	Coords   domain.Coordinate `json:"coords"`
	Distance float64           `json:"distance"`
	Flight   fileProfile       `json:"flight"`
	Train    fileProfile       `json:"train"`
	Bus      fileProfile       `json:"bus"`
}

// fileProfile - available может отсутствовать в старых файлах,
// тогда маршрут считается доступным при ненулевой цене
type fileProfile struct {
	Name      string  `json:"name"`
	Price     int64   `json:"price"`
	CO2       float64 `json:"co2"`
	Time      string  `json:"time"`
	Available *bool   `json:"available"`
}

func (p fileProfile) toDomain() domain.ModeProfile {
	available := p.Price > 0
	if p.Available != nil {
		available = *p.Available
	}
	return domain.ModeProfile{
		Name:      p.Name,
		Price:     p.Price,
		CO2Kg:     p.CO2,
		Duration:  p.Time,
		Available: available,
	}
}

// Load reads the catalog from path, or the embedded default when path is empty.
func Load(path string, logger *zap.Logger) (*domain.Catalog, error) {
	data := defaultCatalog
	source := "embedded"
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", path, err)
		}
		data = raw
		source = path
	}

	c, err := Parse(data)
	if err != nil {
		return nil, err
	}

	logger.Info("Catalog loaded",
		zap.String("source", source),
		zap.String("version", c.Version),
		zap.Int("destinations", len(c.Destinations())),
		zap.Int("cities", len(c.Cities())),
		zap.Int("accommodations", len(c.Accommodations())),
		zap.Int("foods", len(c.Foods())),
	)

	return c, nil
}

// Parse decodes and validates catalog JSON.
func Parse(data []byte) (*domain.Catalog, error) {
	var fc fileCatalog
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, errors.ErrInvalidCatalog.WithMessage(fmt.Sprintf("decode catalog: %v", err))
	}

	destinations := make([]domain.Destination, 0, len(fc.Destinations))
	for _, d := range fc.Destinations {
		destinations = append(destinations, domain.Destination{
			Name:                d.Name,
			Coordinate:          d.Coords,
			ReferenceDistanceKm: d.Distance,
			Flight:              d.Flight.toDomain(),
			Train:               d.Train.toDomain(),
			Bus:                 d.Bus.toDomain(),
		})
	}

	if err := validate(destinations, fc.Cities, fc.Accommodations, fc.Foods); err != nil {
		return nil, err
	}

	return domain.NewCatalog(fc.Version, destinations, fc.Cities, fc.Accommodations, fc.Foods), nil
}

func validate(destinations []domain.Destination, cities []domain.City, stays, foods []domain.Option) error {
	invalid := func(format string, args ...interface{}) error {
		return errors.ErrInvalidCatalog.WithMessage(fmt.Sprintf(format, args...))
	}

	if len(destinations) == 0 {
		return invalid("catalog has no destinations")
	}
	if len(stays) == 0 || len(foods) == 0 {
		return invalid("catalog needs at least one accommodation and one food option")
	}

	seen := make(map[string]struct{}, len(destinations))
	for _, d := range destinations {
		if d.Name == "" {
			return invalid("destination without name")
		}
		if _, dup := seen[d.Name]; dup {
			return invalid("duplicate destination %q", d.Name)
		}
		seen[d.Name] = struct{}{}

		if d.ReferenceDistanceKm < 0 || math.IsNaN(d.ReferenceDistanceKm) {
			return invalid("destination %q: negative reference distance", d.Name)
		}
		if !utils.ValidateCoordinates(d.Coordinate.Lat, d.Coordinate.Lon) {
			return invalid("destination %q: invalid coordinates", d.Name)
		}
		for _, p := range []domain.ModeProfile{d.Flight, d.Train, d.Bus} {
			if p.Price < 0 || p.CO2Kg < 0 {
				return invalid("destination %q: negative baseline for %q", d.Name, p.Name)
			}
		}
	}

	seen = make(map[string]struct{}, len(cities))
	for _, c := range cities {
		if _, dup := seen[c.Name]; dup {
			return invalid("duplicate city %q", c.Name)
		}
		seen[c.Name] = struct{}{}
		if !utils.ValidateCoordinates(c.Coordinate.Lat, c.Coordinate.Lon) {
			return invalid("city %q: invalid coordinates", c.Name)
		}
	}

	for kind, opts := range map[string][]domain.Option{"accommodation": stays, "food": foods} {
		seen = make(map[string]struct{}, len(opts))
		for _, o := range opts {
			if _, dup := seen[o.Name]; dup {
				return invalid("duplicate %s option %q", kind, o.Name)
			}
			seen[o.Name] = struct{}{}
			if o.Price < 0 || o.CO2Kg < 0 {
				return invalid("%s option %q: negative figures", kind, o.Name)
			}
		}
	}

	return nil
}
