package betting

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAllocation(t *testing.T) {
	t.Run("exact budget", func(t *testing.T) {
		alloc, err := ValidateAllocation(map[uint]int{1: 60, 2: 40}, PointsPerGame)
		require.NoError(t, err)
		assert.Equal(t, Allocation{1: 60, 2: 40}, alloc)
	})

	t.Run("short of budget", func(t *testing.T) {
		_, err := ValidateAllocation(map[uint]int{1: 60, 2: 30}, PointsPerGame)
		var mismatch *BudgetMismatchError
		require.True(t, errors.As(err, &mismatch))
		assert.Equal(t, 90, mismatch.Actual)
		assert.Equal(t, 100, mismatch.Required)
		assert.Equal(t, 10, mismatch.Remaining())
		assert.ErrorIs(t, err, ErrBudgetMismatch)
		assert.Equal(t, "used 90/100 points, 10 remaining", err.Error())
	})

	t.Run("over budget", func(t *testing.T) {
		_, err := ValidateAllocation(map[uint]int{1: 70, 2: 40}, PointsPerGame)
		var mismatch *BudgetMismatchError
		require.True(t, errors.As(err, &mismatch))
		assert.Equal(t, 110, mismatch.Actual)
		assert.Equal(t, -10, mismatch.Remaining())
	})

	t.Run("zero entries dropped", func(t *testing.T) {
		alloc, err := ValidateAllocation(map[uint]int{1: 100, 2: 0}, PointsPerGame)
		require.NoError(t, err)
		assert.Equal(t, Allocation{1: 100}, alloc)
		assert.NotContains(t, alloc, uint(2))
	})

	t.Run("negative amount", func(t *testing.T) {
		_, err := ValidateAllocation(map[uint]int{1: 110, 2: -10}, PointsPerGame)
		var invalid *InvalidAmountError
		require.True(t, errors.As(err, &invalid))
		assert.Equal(t, uint(2), invalid.TeamID)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("huge amounts do not wrap onto the budget", func(t *testing.T) {
		_, err := ValidateAllocation(map[uint]int{1: math.MaxInt, 2: math.MaxInt, 3: 102}, PointsPerGame)
		var mismatch *BudgetMismatchError
		require.True(t, errors.As(err, &mismatch))
		assert.Equal(t, math.MaxInt, mismatch.Actual)
		assert.Equal(t, 100, mismatch.Required)

		_, err = ValidateAllocation(map[uint]int{1: math.MaxInt, 2: 1}, math.MaxInt)
		assert.ErrorIs(t, err, ErrBudgetMismatch)
	})

	t.Run("empty fails against non-zero budget", func(t *testing.T) {
		_, err := ValidateAllocation(map[uint]int{}, PointsPerGame)
		assert.ErrorIs(t, err, ErrBudgetMismatch)
	})

	t.Run("empty passes against zero budget", func(t *testing.T) {
		alloc, err := ValidateAllocation(nil, 0)
		require.NoError(t, err)
		assert.Empty(t, alloc)
	})
}

func TestPointsFromFloat(t *testing.T) {
	tests := []struct {
		name    string
		in      float64
		want    int
		wantErr bool
	}{
		{"integer", 40, 40, false},
		{"zero", 0, 0, false},
		{"fraction", 33.5, 0, true},
		{"negative", -1, 0, true},
		{"nan", math.NaN(), 0, true},
		{"inf", math.Inf(1), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PointsFromFloat(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseGame(t *testing.T) {
	g, err := ParseGame("PUBG")
	require.NoError(t, err)
	assert.Equal(t, PUBG, g)

	_, err = ParseGame("lol")
	assert.ErrorIs(t, err, ErrUnknownGame)
	assert.False(t, Game("DOTA").Valid())
	assert.Equal(t, []Game{LOL, PUBG, FIFA}, Games())
}
