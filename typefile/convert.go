package typefile

import (
	"errors"
	"fmt"
	"sort"

	"councilbet/betting"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

var ErrDuplicateTeam = errors.New("team listed more than once")

// APIとドメインの変換はこのファイルに集める

func ToTeamJson(team Team) TeamJsonResponse {
	members := make([]string, 0, len(team.Members))
	for _, m := range team.Members {
		members = append(members, m.Name)
	}
	return TeamJsonResponse{
		ID:       team.ID,
		Uuid:     team.Uuid,
		Name:     team.Name,
		GameType: team.GameType,
		Members:  members,
	}
}

func ToEventJson(event Event) EventJsonResponse {
	return EventJsonResponse{ID: event.ID, Name: event.Name}
}

// FromBettingRequest turns the wire entries into point amounts. Amounts must
// be whole non-negative numbers; budget checks happen in betting.
func FromBettingRequest(req BettingJsonRequest) (betting.Game, map[uint]int, error) {
	game, err := betting.ParseGame(req.GameType)
	if err != nil {
		return "", nil, err
	}
	entries := make(map[uint]int, len(req.Bets))
	for _, b := range req.Bets {
		if _, ok := entries[b.TeamID]; ok {
			return "", nil, fmt.Errorf("%w: %d", ErrDuplicateTeam, b.TeamID)
		}
		points, err := betting.PointsFromFloat(b.BetPoints)
		if err != nil {
			var invalid *betting.InvalidAmountError
			if errors.As(err, &invalid) {
				invalid.TeamID = b.TeamID
			}
			return "", nil, err
		}
		entries[b.TeamID] = points
	}
	return game, entries, nil
}

func ToBets(submissionID string, eventID uint, bettor string, game betting.Game, alloc betting.Allocation) []Bet {
	bets := make([]Bet, 0, len(alloc))
	for _, id := range alloc.TeamIDs() {
		bets = append(bets, Bet{
			SubmissionID: submissionID,
			EventID:      eventID,
			Bettor:       bettor,
			GameType:     string(game),
			TeamID:       id,
			Points:       alloc[id],
		})
	}
	return bets
}

func ToBettingJson(submissionID string, eventID uint, game betting.Game, alloc betting.Allocation) BettingJsonResponse {
	bets := make([]BetJson, 0, len(alloc))
	for _, id := range alloc.TeamIDs() {
		bets = append(bets, BetJson{TeamID: id, BetPoints: float64(alloc[id])})
	}
	return BettingJsonResponse{
		SubmissionID: submissionID,
		EventID:      eventID,
		GameType:     string(game),
		Bets:         bets,
	}
}

// ToAllocations groups stored bet rows by bettor and game.
func ToAllocations(bets []Bet) map[string]map[betting.Game]betting.Allocation {
	out := map[string]map[betting.Game]betting.Allocation{}
	for _, b := range bets {
		perGame, ok := out[b.Bettor]
		if !ok {
			perGame = map[betting.Game]betting.Allocation{}
			out[b.Bettor] = perGame
		}
		game := betting.Game(b.GameType)
		if perGame[game] == nil {
			perGame[game] = betting.Allocation{}
		}
		perGame[game][b.TeamID] += b.Points
	}
	return out
}

func ToMyBetsJson(eventID uint, bettor string, bets []Bet) MyBetsJsonResponse {
	res := MyBetsJsonResponse{EventID: eventID, Bettor: bettor, Games: []GameBetsJson{}}
	perGame := ToAllocations(bets)[bettor]
	for _, game := range betting.Games() {
		alloc := perGame[game]
		entry := GameBetsJson{
			GameType:  string(game),
			Used:      alloc.Total(),
			Remaining: betting.PointsPerGame - alloc.Total(),
			Bets:      []BetJson{},
		}
		for _, id := range alloc.TeamIDs() {
			entry.Bets = append(entry.Bets, BetJson{TeamID: id, BetPoints: float64(alloc[id])})
		}
		res.Games = append(res.Games, entry)
	}
	return res
}

// FromTeamResultsRequest returns ranks and notes keyed by team id.
func FromTeamResultsRequest(req TeamResultsJsonRequest) (map[uint]int, map[uint]string, error) {
	ranks := make(map[uint]int, len(req.TeamResults))
	infos := make(map[uint]string, len(req.TeamResults))
	for _, r := range req.TeamResults {
		if _, ok := ranks[r.TeamID]; ok {
			return nil, nil, fmt.Errorf("%w: %d", ErrDuplicateTeam, r.TeamID)
		}
		ranks[r.TeamID] = r.FinalRank
		if r.AdditionalInfo != "" {
			infos[r.TeamID] = r.AdditionalInfo
		}
	}
	return ranks, infos, nil
}

// RankSetSizes counts the recorded teams per game. A rank set is validated
// complete at submission, so its size is the team count the ranks were
// given against, regardless of teams registered later.
func RankSetSizes(results []TeamResult) map[string]int {
	sizes := map[string]int{}
	for _, r := range results {
		sizes[r.Team.GameType]++
	}
	return sizes
}

// ResultMultipliers derives each team's multiplier from its recorded rank.
// results must have Team preloaded.
func ResultMultipliers(results []TeamResult) map[uint]decimal.Decimal {
	sizes := RankSetSizes(results)
	out := make(map[uint]decimal.Decimal, len(results))
	for _, r := range results {
		out[r.TeamID] = betting.MultiplierForRank(r.FinalRank, sizes[r.Team.GameType])
	}
	return out
}

// ToTeamResultsJson はイベントの順位結果を倍率付きで返す
func ToTeamResultsJson(event Event, results []TeamResult) TeamResultsJsonResponse {
	multipliers := ResultMultipliers(results)
	views := make([]TeamResultViewJson, 0, len(results))
	for _, r := range results {
		m := multipliers[r.TeamID]
		views = append(views, TeamResultViewJson{
			TeamID:         r.TeamID,
			TeamName:       r.Team.Name,
			GameType:       r.Team.GameType,
			FinalRank:      r.FinalRank,
			Multiplier:     m.InexactFloat64(),
			AdditionalInfo: r.AdditionalInfo,
		})
	}
	sort.SliceStable(views, func(i, j int) bool {
		if views[i].GameType != views[j].GameType {
			return views[i].GameType < views[j].GameType
		}
		return views[i].FinalRank < views[j].FinalRank
	})
	return TeamResultsJsonResponse{
		EventID:     event.ID,
		EventName:   event.Name,
		TeamResults: views,
	}
}

func ToLeaderboardJson(eventID uint, offset int, scores []redis.Z) LeaderboardJsonResponse {
	entries := make([]LeaderboardEntryJson, 0, len(scores))
	for i, z := range scores {
		entries = append(entries, LeaderboardEntryJson{
			Rank:   offset + i + 1,
			Bettor: fmt.Sprint(z.Member),
			Score:  z.Score,
		})
	}
	return LeaderboardJsonResponse{EventID: eventID, Entries: entries}
}
