package planner

import (
	"fmt"
	"math"

	"github.com/eco-travel-service/internal/domain"
	"github.com/eco-travel-service/internal/pkg/errors"
)

// DistanceRatio - во сколько раз фактическая дистанция отличается от референсной.
// A zero reference distance yields 1 so baselines are used as-is.
func DistanceRatio(distanceKm int, referenceKm float64) float64 {
	if referenceKm <= 0 {
		return 1
	}
	return float64(distanceKm) / referenceKm
}

// VehiclesNeeded - сколько машин нужно на группу
func VehiclesNeeded(travelers, capacity int) int {
	if travelers <= 0 {
		return 0
	}
	return (travelers + capacity - 1) / capacity
}

// QuoteTransport prices one mode for the whole party.
//
// Flight, train and bus scale the destination baseline by the distance ratio,
// round to whole units and multiply by travelers. Cars are priced from the
// actual distance per vehicle. Unavailable routes come back with
// Available=false and zero totals.
func QuoteTransport(s Settings, dest domain.Destination, mode domain.TransportMode, distanceKm, travelers int) (domain.ModeQuote, error) {
	s = s.withDefaults()

	if mode.IsVehicle() {
		return quoteVehicle(s, mode, distanceKm, travelers), nil
	}

	profile, ok := dest.Profile(mode)
	if !ok {
		return domain.ModeQuote{}, errors.ErrUnknownTransportMode.WithDetails(map[string]interface{}{
			"mode": string(mode),
		})
	}

	q := domain.ModeQuote{
		Mode:        mode,
		Name:        profile.Name,
		Available:   profile.Available,
		PerTraveler: true,
		Units:       travelers,
		Duration:    profile.Duration,
		BookingLink: mode.BookingLink(),
	}
	if !profile.Available {
		return q, nil
	}

	ratio := DistanceRatio(distanceKm, dest.ReferenceDistanceKm)
	q.UnitPrice = int64(math.Round(float64(profile.Price) * ratio))
	q.UnitCO2Kg = math.Round(profile.CO2Kg * ratio)
	q.TotalCost = q.UnitPrice * int64(travelers)
	q.TotalCO2Kg = q.UnitCO2Kg * float64(travelers)

	return q, nil
}

func quoteVehicle(s Settings, mode domain.TransportMode, distanceKm, travelers int) domain.ModeQuote {
	rate := s.Vehicle.PersonalRatePerKm
	name := "Personal Vehicle"
	if mode == domain.TransportCarRental {
		rate = s.Vehicle.RentalRatePerKm
		name = "Taxi / Rental"
	}

	vehicles := VehiclesNeeded(travelers, s.Vehicle.Capacity)
	unitPrice := int64(math.Round(float64(distanceKm) * rate))
	// до сотых, чтобы 280*0.15 давало ровно 42
	unitCO2 := math.Round(float64(distanceKm)*s.Vehicle.CO2PerKm*100) / 100

	return domain.ModeQuote{
		Mode:        mode,
		Name:        name,
		Available:   true,
		UnitPrice:   unitPrice,
		UnitCO2Kg:   unitCO2,
		PerTraveler: false,
		Units:       vehicles,
		TotalCost:   unitPrice * int64(vehicles),
		TotalCO2Kg:  unitCO2 * float64(vehicles),
		Duration:    DriveDuration(distanceKm, s.Vehicle.AvgSpeedKmh),
		BookingLink: mode.BookingLink(),
	}
}

// DriveDuration formats driving time at an average speed as "<h>h <mm>m".
func DriveDuration(distanceKm int, speedKmh float64) string {
	if speedKmh <= 0 {
		speedKmh = DefaultSettings().Vehicle.AvgSpeedKmh
	}
	minutes := int(math.Round(float64(distanceKm) / speedKmh * 60))
	return fmt.Sprintf("%dh %02dm", minutes/60, minutes%60)
}

// StayTotals - проживание не зависит от числа путешественников
func StayTotals(opt domain.Option, days int) (int64, float64) {
	return opt.Price * int64(days), opt.CO2Kg * float64(days)
}

// FoodTotals - питание считается на каждого путешественника за каждый день
func FoodTotals(opt domain.Option, days, travelers int) (int64, float64) {
	n := days * travelers
	return opt.Price * int64(n), opt.CO2Kg * float64(n)
}

// PlanTotals combines transport, stay and food into one set of totals.
func PlanTotals(q domain.ModeQuote, stay, food domain.Option, days, travelers int) domain.PlanTotals {
	stayCost, stayCO2 := StayTotals(stay, days)
	foodCost, foodCO2 := FoodTotals(food, days, travelers)

	return domain.PlanTotals{
		TransportCost:  q.TotalCost,
		TransportCO2Kg: q.TotalCO2Kg,
		StayCost:       stayCost,
		StayCO2Kg:      stayCO2,
		FoodCost:       foodCost,
		FoodCO2Kg:      foodCO2,
		TotalCost:      q.TotalCost + stayCost + foodCost,
		TotalCO2Kg:     q.TotalCO2Kg + stayCO2 + foodCO2,
	}
}
