// Package planner prices trips and ranks eco-friendly alternatives.
//
// Everything here is pure: the same catalog, settings and parameters always
// produce the same result, and nothing logs or touches I/O.
package planner

// VehicleRates - тарифы для поездки на машине (цена за км, выбросы за км, вместимость)
type VehicleRates struct {
	PersonalRatePerKm float64
	RentalRatePerKm   float64
	CO2PerKm          float64
	Capacity          int
	AvgSpeedKmh       float64
}

// Settings holds the tunable constants of the cost model and the eco-score.
type Settings struct {
	// eco_score = total_cost / CostDivisor + total_co2 * CO2Weight
	CostDivisor float64
	CO2Weight   float64

	// percent CO2 reduction thresholds for the top and mid tiers
	TierTopPercent float64
	TierMidPercent float64

	TopN int

	Vehicle VehicleRates

	// kg CO2 a tree absorbs per year, used for the offset figure
	TreeCO2Kg float64
}

// DefaultSettings - 1 кг CO2 весит как 500 единиц валюты
func DefaultSettings() Settings {
	return Settings{
		CostDivisor:    1000,
		CO2Weight:      0.5,
		TierTopPercent: 50,
		TierMidPercent: 20,
		TopN:           3,
		Vehicle: VehicleRates{
			PersonalRatePerKm: 15,
			RentalRatePerKm:   22,
			CO2PerKm:          0.15,
			Capacity:          4,
			AvgSpeedKmh:       60,
		},
		TreeCO2Kg: 21,
	}
}

// withDefaults fills zero values so a partially configured Settings stays usable.
func (s Settings) withDefaults() Settings {
	d := DefaultSettings()
	if s.CostDivisor <= 0 {
		s.CostDivisor = d.CostDivisor
	}
	if s.CO2Weight < 0 {
		s.CO2Weight = d.CO2Weight
	}
	if s.TierTopPercent == 0 {
		s.TierTopPercent = d.TierTopPercent
	}
	if s.TierMidPercent == 0 {
		s.TierMidPercent = d.TierMidPercent
	}
	if s.TopN <= 0 {
		s.TopN = d.TopN
	}
	if s.Vehicle.PersonalRatePerKm <= 0 {
		s.Vehicle.PersonalRatePerKm = d.Vehicle.PersonalRatePerKm
	}
	if s.Vehicle.RentalRatePerKm <= 0 {
		s.Vehicle.RentalRatePerKm = d.Vehicle.RentalRatePerKm
	}
	if s.Vehicle.CO2PerKm <= 0 {
		s.Vehicle.CO2PerKm = d.Vehicle.CO2PerKm
	}
	if s.Vehicle.Capacity <= 0 {
		s.Vehicle.Capacity = d.Vehicle.Capacity
	}
	if s.Vehicle.AvgSpeedKmh <= 0 {
		s.Vehicle.AvgSpeedKmh = d.Vehicle.AvgSpeedKmh
	}
	if s.TreeCO2Kg <= 0 {
		s.TreeCO2Kg = d.TreeCO2Kg
	}
	return s
}
