package planner

import (
	"sort"

	"github.com/eco-travel-service/internal/domain"
)

// EcoScore - взвешенная сумма стоимости и выбросов, меньше - лучше
func EcoScore(s Settings, totals domain.PlanTotals) float64 {
	s = s.withDefaults()
	return float64(totals.TotalCost)/s.CostDivisor + totals.TotalCO2Kg*s.CO2Weight
}

// Candidates enumerates transport x stay x food in insertion order: transport
// outer, stay middle, food inner. Unavailable transport is skipped. An
// exclusive option (e.g. "With Relatives") is allowed in a category only when
// the traveler's own choice in that category is exclusive, and then only
// exclusive options are allowed.
func Candidates(
	s Settings,
	quotes []domain.ModeQuote,
	stays, foods []domain.Option,
	stayExclusive, foodExclusive bool,
	days, travelers int,
) []domain.Combination {
	out := make([]domain.Combination, 0, len(quotes)*len(stays)*len(foods))

	for _, q := range quotes {
		if !q.Available {
			continue
		}
		for _, stay := range stays {
			if stay.Exclusive != stayExclusive {
				continue
			}
			for _, food := range foods {
				if food.Exclusive != foodExclusive {
					continue
				}
				out = append(out, NewCombination(s, q, stay, food, days, travelers))
			}
		}
	}

	return out
}

// NewCombination prices and scores one (transport, stay, food) triple.
func NewCombination(s Settings, q domain.ModeQuote, stay, food domain.Option, days, travelers int) domain.Combination {
	totals := PlanTotals(q, stay, food, days, travelers)
	return domain.Combination{
		Choice: domain.Choice{
			Transport:     q.Mode,
			Accommodation: stay.Name,
			Food:          food.Name,
		},
		TransportName: q.Name,
		Totals:        totals,
		EcoScore:      EcoScore(s, totals),
	}
}

// Rank sorts candidates by ascending eco-score in place. Equal scores keep
// insertion order.
func Rank(candidates []domain.Combination) []domain.Combination {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].EcoScore < candidates[j].EcoScore
	})
	return candidates
}

// ComputeSavings - разница план пользователя минус рекомендованный.
// Percent reduction is 0 when the user's plan emits nothing.
func ComputeSavings(user, recommended domain.Combination) domain.Savings {
	sv := domain.Savings{
		Cost:     user.Totals.TotalCost - recommended.Totals.TotalCost,
		CO2Kg:    user.Totals.TotalCO2Kg - recommended.Totals.TotalCO2Kg,
		EcoScore: user.EcoScore - recommended.EcoScore,
	}
	if user.Totals.TotalCO2Kg > 0 {
		sv.PercentReduction = sv.CO2Kg / user.Totals.TotalCO2Kg * 100
	}
	return sv
}

// ClassifyTier maps percent CO2 reduction onto a tier.
func ClassifyTier(s Settings, percentReduction float64) domain.Tier {
	s = s.withDefaults()
	switch {
	case percentReduction >= s.TierTopPercent:
		return domain.TierGuardian
	case percentReduction >= s.TierMidPercent:
		return domain.TierWarrior
	default:
		return domain.TierConscious
	}
}
