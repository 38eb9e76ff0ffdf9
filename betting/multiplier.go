package betting

import (
	"slices"

	"github.com/shopspring/decimal"
)

const (
	MaxMultiplier   = 5.0
	MultiplierRange = 4.0
	MinMultiplier   = MaxMultiplier - MultiplierRange
)

// 倍率は小数点以下2桁、四捨五入(0から遠い方へ)
const multiplierPlaces = 2

var (
	maxMultiplier   = decimal.NewFromFloat(MaxMultiplier)
	multiplierRange = decimal.NewFromFloat(MultiplierRange)
)

// MultiplierForRank maps a finish rank onto the linear payout scale, 5.00 for
// first place down to 1.00 for last. A single-team game always pays 5.00.
// The rank is not bounds-checked here; run ValidateRanks first.
func MultiplierForRank(rank, totalTeams int) decimal.Decimal {
	if totalTeams <= 1 {
		return maxMultiplier.Round(multiplierPlaces)
	}
	step := multiplierRange.
		Mul(decimal.NewFromInt(int64(rank - 1))).
		Div(decimal.NewFromInt(int64(totalTeams - 1)))
	return maxMultiplier.Sub(step).Round(multiplierPlaces)
}

// ValidateRanks checks a game's rank set against the teams competing in it.
func ValidateRanks(rankByTeam map[uint]int, roster []uint) error {
	registered := make(map[uint]bool, len(roster))
	for _, id := range roster {
		registered[id] = true
	}

	var unknown []uint
	for id := range rankByTeam {
		if !registered[id] {
			unknown = append(unknown, id)
		}
	}
	if len(unknown) > 0 {
		slices.Sort(unknown)
		return &UnknownTeamError{TeamIDs: unknown}
	}

	var missing []uint
	for id := range registered {
		if _, ok := rankByTeam[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		return &IncompleteRankingError{Missing: missing}
	}

	byRank := make(map[int][]uint, len(rankByTeam))
	for id, rank := range rankByTeam {
		byRank[rank] = append(byRank[rank], id)
	}
	ranks := make([]int, 0, len(byRank))
	for rank := range byRank {
		ranks = append(ranks, rank)
	}
	slices.Sort(ranks)
	for _, rank := range ranks {
		if teams := byRank[rank]; len(teams) > 1 {
			slices.Sort(teams)
			return &DuplicateRankError{Rank: rank, Teams: teams}
		}
	}

	total := len(registered)
	for _, rank := range ranks {
		if rank < 1 || rank > total {
			return &RankOutOfBoundsError{TeamID: byRank[rank][0], Rank: rank, TotalTeams: total}
		}
	}
	return nil
}

// Multipliers validates the rank set and derives every team's multiplier.
func Multipliers(rankByTeam map[uint]int, roster []uint) (map[uint]decimal.Decimal, error) {
	if err := ValidateRanks(rankByTeam, roster); err != nil {
		return nil, err
	}
	total := len(rankByTeam)
	out := make(map[uint]decimal.Decimal, total)
	for id, rank := range rankByTeam {
		out[id] = MultiplierForRank(rank, total)
	}
	return out, nil
}
