package betting

import (
	"math"
	"slices"
)

// 1種目あたりに配分するポイント
const PointsPerGame = 100

// Allocation はチームIDからポイントへの配分。0ポイントのチームは含まない
type Allocation map[uint]int

func (a Allocation) Total() int {
	total := 0
	for _, points := range a {
		total += points
	}
	return total
}

// TeamIDs returns the backed teams in ascending order.
func (a Allocation) TeamIDs() []uint {
	ids := make([]uint, 0, len(a))
	for id := range a {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// ValidateAllocation checks that every amount is non-negative and that the
// non-zero amounts add up to exactly budget. Zero entries are dropped from
// the returned allocation.
func ValidateAllocation(entries map[uint]int, budget int) (Allocation, error) {
	alloc := make(Allocation, len(entries))
	ids := make([]uint, 0, len(entries))
	for id := range entries {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	// 合計は桁あふれしたら MaxInt で止める
	sum, overflow := 0, false
	for _, id := range ids {
		points := entries[id]
		if points < 0 {
			return nil, &InvalidAmountError{TeamID: id, Amount: float64(points)}
		}
		if points == 0 {
			continue
		}
		if points > math.MaxInt-sum {
			sum, overflow = math.MaxInt, true
		} else if !overflow {
			sum += points
		}
		alloc[id] = points
	}

	if overflow || sum != budget {
		return nil, &BudgetMismatchError{Actual: sum, Required: budget}
	}
	return alloc, nil
}

// PointsFromFloat converts a decoded JSON number into a point amount.
func PointsFromFloat(v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v != math.Trunc(v) || v > math.MaxInt32 {
		return 0, &InvalidAmountError{Amount: v}
	}
	return int(v), nil
}
