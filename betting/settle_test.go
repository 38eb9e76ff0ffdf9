package betting

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	multipliers := map[uint]decimal.Decimal{
		1: MultiplierForRank(1, 4),
		2: MultiplierForRank(2, 4),
		3: MultiplierForRank(4, 4),
	}

	// 60*5.00 + 40*3.67
	assert.Equal(t, "446.80", Score(Allocation{1: 60, 2: 40}, multipliers).StringFixed(2))
	assert.Equal(t, "100.00", Score(Allocation{3: 100}, multipliers).StringFixed(2))
	// 結果未登録のチームは0
	assert.Equal(t, "250.00", Score(Allocation{1: 50, 99: 50}, multipliers).StringFixed(2))
}

func TestSettleEvent(t *testing.T) {
	multipliers := map[uint]decimal.Decimal{
		1: decimal.NewFromInt(5),
		2: decimal.NewFromInt(1),
		7: decimal.NewFromInt(3),
	}
	scores := SettleEvent(map[string]map[Game]Allocation{
		"alice": {LOL: {1: 100}, FIFA: {7: 100}},
		"bob":   {LOL: {1: 50, 2: 50}},
	}, multipliers)

	assert.Equal(t, "800.00", scores["alice"].StringFixed(2))
	assert.Equal(t, "300.00", scores["bob"].StringFixed(2))
}
