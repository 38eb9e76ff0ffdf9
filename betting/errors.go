package betting

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrBudgetMismatch    = errors.New("budget mismatch")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrIncompleteRanking = errors.New("incomplete ranking")
	ErrDuplicateRank     = errors.New("duplicate rank")
	ErrRankOutOfBounds   = errors.New("rank out of bounds")
	ErrUnknownTeam       = errors.New("unknown team")
	ErrBettingClosed     = errors.New("results already recorded for this game")
)

// BudgetMismatchError は配分合計が予算と一致しない
type BudgetMismatchError struct {
	Actual   int
	Required int
}

func (e *BudgetMismatchError) Error() string {
	return fmt.Sprintf("used %d/%d points, %d remaining", e.Actual, e.Required, e.Remaining())
}

func (e *BudgetMismatchError) Is(target error) bool { return target == ErrBudgetMismatch }

func (e *BudgetMismatchError) Remaining() int {
	return e.Required - e.Actual
}

type InvalidAmountError struct {
	TeamID uint
	Amount float64
}

func (e *InvalidAmountError) Error() string {
	if e.TeamID == 0 {
		return fmt.Sprintf("invalid point amount %v: must be a non-negative integer", e.Amount)
	}
	return fmt.Sprintf("invalid point amount %v for team %d: must be a non-negative integer", e.Amount, e.TeamID)
}

func (e *InvalidAmountError) Is(target error) bool { return target == ErrInvalidAmount }

type IncompleteRankingError struct {
	Missing []uint
}

func (e *IncompleteRankingError) Error() string {
	return "missing rank for teams " + joinIDs(e.Missing)
}

func (e *IncompleteRankingError) Is(target error) bool { return target == ErrIncompleteRanking }

type DuplicateRankError struct {
	Rank  int
	Teams []uint
}

func (e *DuplicateRankError) Error() string {
	return fmt.Sprintf("rank %d assigned to more than one team: %s", e.Rank, joinIDs(e.Teams))
}

func (e *DuplicateRankError) Is(target error) bool { return target == ErrDuplicateRank }

type RankOutOfBoundsError struct {
	TeamID     uint
	Rank       int
	TotalTeams int
}

func (e *RankOutOfBoundsError) Error() string {
	return fmt.Sprintf("rank %d for team %d is outside 1..%d", e.Rank, e.TeamID, e.TotalTeams)
}

func (e *RankOutOfBoundsError) Is(target error) bool { return target == ErrRankOutOfBounds }

// UnknownTeamError はロースター外のチームに順位が付いている
type UnknownTeamError struct {
	TeamIDs []uint
}

func (e *UnknownTeamError) Error() string {
	return "teams not competing in this game: " + joinIDs(e.TeamIDs)
}

func (e *UnknownTeamError) Is(target error) bool { return target == ErrUnknownTeam }

func joinIDs(ids []uint) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprint(id)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
