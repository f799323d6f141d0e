package planner

import (
	"github.com/eco-travel-service/internal/domain"
	"github.com/eco-travel-service/internal/pkg/errors"
	"github.com/eco-travel-service/internal/pkg/utils"
)

// Planner evaluates trips against a read-only catalog. Safe for concurrent use.
type Planner struct {
	catalog  *domain.Catalog
	settings Settings
}

func New(catalog *domain.Catalog, settings Settings) *Planner {
	return &Planner{
		catalog:  catalog,
		settings: settings.withDefaults(),
	}
}

func (p *Planner) Catalog() *domain.Catalog {
	return p.catalog
}

func (p *Planner) Settings() Settings {
	return p.settings
}

// CompareModes prices all five transport modes for the party.
func (p *Planner) CompareModes(origin domain.Coordinate, destination string, travelers int) ([]domain.ModeQuote, int, error) {
	if travelers < 1 {
		return nil, 0, errors.ErrInvalidRequest.WithMessage("travelers must be at least 1")
	}

	dest, ok := p.catalog.Destination(destination)
	if !ok {
		return nil, 0, errors.ErrUnknownDestination.WithDetails(map[string]interface{}{
			"destination": destination,
		})
	}

	distance, err := utils.DistanceKm(origin, dest.Coordinate)
	if err != nil {
		return nil, 0, err
	}

	quotes, err := p.quoteAll(dest, distance, travelers)
	if err != nil {
		return nil, 0, err
	}
	return quotes, distance, nil
}

func (p *Planner) quoteAll(dest domain.Destination, distance, travelers int) ([]domain.ModeQuote, error) {
	modes := domain.TransportModes()
	quotes := make([]domain.ModeQuote, 0, len(modes))
	for _, m := range modes {
		q, err := QuoteTransport(p.settings, dest, m, distance, travelers)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}
	return quotes, nil
}

// Evaluate prices the traveler's own plan, ranks every alternative and
// reports the recommended plan, the top alternatives and the savings.
func (p *Planner) Evaluate(params domain.TripParameters) (*domain.EvaluationResult, error) {
	if params.Travelers < 1 || params.Days < 1 {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"travelers": params.Travelers,
			"days":      params.Days,
		})
	}

	mode, ok := domain.ParseTransportMode(string(params.Transport))
	if !ok {
		return nil, errors.ErrUnknownTransportMode.WithDetails(map[string]interface{}{
			"transport": string(params.Transport),
		})
	}

	stay, ok := p.catalog.Accommodation(params.Accommodation)
	if !ok {
		return nil, errors.ErrUnknownAccommodation.WithDetails(map[string]interface{}{
			"accommodation": params.Accommodation,
		})
	}

	food, ok := p.catalog.Food(params.Food)
	if !ok {
		return nil, errors.ErrUnknownFood.WithDetails(map[string]interface{}{
			"food": params.Food,
		})
	}

	quotes, distance, err := p.CompareModes(params.Origin, params.Destination, params.Travelers)
	if err != nil {
		return nil, err
	}
	dest, _ := p.catalog.Destination(params.Destination)

	var userQuote domain.ModeQuote
	for _, q := range quotes {
		if q.Mode == mode {
			userQuote = q
		}
	}
	if !userQuote.Available {
		return nil, errors.ErrTransportUnavailable.WithDetails(map[string]interface{}{
			"transport":   string(mode),
			"destination": dest.Name,
		})
	}

	current := NewCombination(p.settings, userQuote, stay, food, params.Days, params.Travelers)

	ranked := Rank(Candidates(
		p.settings,
		quotes,
		p.catalog.Accommodations(),
		p.catalog.Foods(),
		stay.Exclusive,
		food.Exclusive,
		params.Days,
		params.Travelers,
	))
	if len(ranked) == 0 {
		return nil, errors.ErrNoCandidates
	}

	recommended := ranked[0]
	topN := p.settings.TopN
	if topN > len(ranked) {
		topN = len(ranked)
	}
	top := append([]domain.Combination(nil), ranked[:topN]...)

	savings := ComputeSavings(current, recommended)

	return &domain.EvaluationResult{
		DistanceKm:     distance,
		DistanceRatio:  DistanceRatio(distance, dest.ReferenceDistanceKm),
		Travelers:      params.Travelers,
		Days:           params.Days,
		Current:        current,
		Recommended:    recommended,
		Top:            top,
		AlreadyOptimal: current.Choice == recommended.Choice,
		Savings:        savings,
		Tier:           ClassifyTier(p.settings, savings.PercentReduction),
		Modes:          quotes,
		TreesToOffset:  TreesToOffset(p.settings, current.Totals.TotalCO2Kg),
		Candidates:     len(ranked),
	}, nil
}

// TreesToOffset - сколько деревьев поглотят выбросы плана за год
func TreesToOffset(s Settings, co2Kg float64) int {
	s = s.withDefaults()
	if co2Kg <= 0 {
		return 0
	}
	return int(co2Kg / s.TreeCO2Kg)
}
