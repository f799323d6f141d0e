package domain

// TripParameters - входные параметры одной оценки поездки
type TripParameters struct {
	Origin        Coordinate
	Destination   string
	Travelers     int
	Days          int
	Transport     TransportMode
	Accommodation string
	Food          string
}

// ModeQuote - стоимость и выбросы вида транспорта для всей группы
type ModeQuote struct {
	Mode        TransportMode `json:"mode"`
	Name        string        `json:"name"`
	Available   bool          `json:"available"`
	UnitPrice   int64         `json:"unit_price"`
	UnitCO2Kg   float64       `json:"unit_co2"`
	PerTraveler bool          `json:"per_traveler"`
	Units       int           `json:"units"`
	TotalCost   int64         `json:"total_cost"`
	TotalCO2Kg  float64       `json:"total_co2"`
	Duration    string        `json:"duration"`
	BookingLink string        `json:"booking_link,omitempty"`
}

// PlanTotals - производные итоги плана, не хранятся
type PlanTotals struct {
	TransportCost  int64   `json:"transport_cost"`
	TransportCO2Kg float64 `json:"transport_co2"`
	StayCost       int64   `json:"stay_cost"`
	StayCO2Kg      float64 `json:"stay_co2"`
	FoodCost       int64   `json:"food_cost"`
	FoodCO2Kg      float64 `json:"food_co2"`
	TotalCost      int64   `json:"total_cost"`
	TotalCO2Kg     float64 `json:"total_co2"`
}

// Choice - тройка (транспорт, проживание, питание)
type Choice struct {
	Transport     TransportMode `json:"transport"`
	Accommodation string        `json:"accommodation"`
	Food          string        `json:"food"`
}

// Combination - кандидат оптимизатора с итогами и eco-score
type Combination struct {
	Choice
	TransportName string     `json:"transport_name"`
	Totals        PlanTotals `json:"totals"`
	EcoScore      float64    `json:"eco_score"`
}

// Savings - разница между планом пользователя и рекомендованным
type Savings struct {
	Cost             int64   `json:"cost"`
	CO2Kg            float64 `json:"co2"`
	EcoScore         float64 `json:"eco_score"`
	PercentReduction float64 `json:"percent_co2_reduction"`
}

// Tier - качественная оценка снижения выбросов
type Tier string

const (
	TierGuardian  Tier = "Guardian of the Earth"
	TierWarrior   Tier = "Eco Warrior"
	TierConscious Tier = "Conscious Traveler"
)

// Description returns the badge text shown next to the tier.
func (t Tier) Description() string {
	switch t {
	case TierGuardian:
		return "Outstanding! You are slashing carbon emissions in half. A true protector of the planet."
	case TierWarrior:
		return "Great job! You are making significant strides towards sustainable travel."
	default:
		return "You are aware of your impact. Small steps lead to big changes."
	}
}

// EvaluationResult - всё, что нужно слою представления
type EvaluationResult struct {
	DistanceKm     int           `json:"distance_km"`
	DistanceRatio  float64       `json:"distance_ratio"`
	Travelers      int           `json:"travelers"`
	Days           int           `json:"days"`
	Current        Combination   `json:"current"`
	Recommended    Combination   `json:"recommended"`
	Top            []Combination `json:"top"`
	AlreadyOptimal bool          `json:"already_optimal"`
	Savings        Savings       `json:"savings"`
	Tier           Tier          `json:"tier"`
	Modes          []ModeQuote   `json:"modes"`
	TreesToOffset  int           `json:"trees_to_offset"`
	Candidates     int           `json:"candidates"`
}
