package betting

import "github.com/shopspring/decimal"

// Score sums points times the multiplier of each backed team. Teams without a
// multiplier (no result yet) contribute nothing.
func Score(alloc Allocation, multipliers map[uint]decimal.Decimal) decimal.Decimal {
	score := decimal.Zero
	for _, id := range alloc.TeamIDs() {
		m, ok := multipliers[id]
		if !ok {
			continue
		}
		score = score.Add(m.Mul(decimal.NewFromInt(int64(alloc[id]))))
	}
	return score.Round(multiplierPlaces)
}

// SettleEvent totals each bettor's score over all games of an event.
// allocations is keyed by bettor, then by game.
func SettleEvent(allocations map[string]map[Game]Allocation, multipliers map[uint]decimal.Decimal) map[string]decimal.Decimal {
	scores := make(map[string]decimal.Decimal, len(allocations))
	for bettor, perGame := range allocations {
		total := decimal.Zero
		for _, alloc := range perGame {
			total = total.Add(Score(alloc, multipliers))
		}
		scores[bettor] = total
	}
	return scores
}
