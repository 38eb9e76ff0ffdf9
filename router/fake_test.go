package router

import (
	"context"
	"councilbet/betting"
	"councilbet/typefile"
	"sort"
	"sync"

	"github.com/bwmarrin/snowflake"
	"github.com/jinzhu/gorm"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

type fakeStore struct {
	mu      sync.Mutex
	events  map[uint]typefile.Event
	teams   map[uint]typefile.Team
	bets    []typefile.Bet
	results map[uint]map[uint]typefile.TeamResult
	nextID  uint
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		events:  map[uint]typefile.Event{},
		teams:   map[uint]typefile.Team{},
		results: map[uint]map[uint]typefile.TeamResult{},
		nextID:  100,
	}
}

func (s *fakeStore) addEvent(id uint, name string) {
	e := typefile.Event{Name: name}
	e.ID = id
	s.events[id] = e
}

func (s *fakeStore) addTeam(id uint, name, game string) {
	t := typefile.Team{Name: name, GameType: game, Uuid: name + "-uuid"}
	t.ID = id
	s.teams[id] = t
}

func (s *fakeStore) Events() ([]typefile.Event, error) {
	var out []typefile.Event
	for _, e := range s.events {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *fakeStore) Event(id uint) (typefile.Event, error) {
	e, ok := s.events[id]
	if !ok {
		return typefile.Event{}, gorm.ErrRecordNotFound
	}
	return e, nil
}

func (s *fakeStore) sortedTeams() []typefile.Team {
	var out []typefile.Team
	for _, t := range s.teams {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *fakeStore) Teams(gameType string) ([]typefile.Team, error) {
	var out []typefile.Team
	for _, t := range s.sortedTeams() {
		if gameType == "" || t.GameType == gameType {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *fakeStore) TeamByUuid(uuid string) (typefile.Team, error) {
	for _, t := range s.teams {
		if t.Uuid == uuid {
			return t, nil
		}
	}
	return typefile.Team{}, gorm.ErrRecordNotFound
}

func (s *fakeStore) TeamsByIDs(ids []uint) ([]typefile.Team, error) {
	var out []typefile.Team
	for _, id := range ids {
		if t, ok := s.teams[id]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *fakeStore) CreateTeam(team *typefile.Team) error {
	s.nextID++
	team.ID = s.nextID
	s.teams[team.ID] = *team
	return nil
}

func (s *fakeStore) RosterIDs(gameType string) ([]uint, error) {
	var ids []uint
	for _, t := range s.sortedTeams() {
		if t.GameType == gameType {
			ids = append(ids, t.ID)
		}
	}
	return ids, nil
}

func (s *fakeStore) ReplaceBets(eventID uint, bettor, gameType string, bets []typefile.Bet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.results[eventID] {
		if s.teams[r.TeamID].GameType == gameType {
			return betting.ErrBettingClosed
		}
	}
	kept := s.bets[:0]
	for _, b := range s.bets {
		if b.EventID == eventID && b.Bettor == bettor && b.GameType == gameType {
			continue
		}
		kept = append(kept, b)
	}
	s.bets = append(kept, bets...)
	return nil
}

func (s *fakeStore) BetsByEvent(eventID uint) ([]typefile.Bet, error) {
	var out []typefile.Bet
	for _, b := range s.bets {
		if b.EventID == eventID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *fakeStore) BetsByBettor(eventID uint, bettor string) ([]typefile.Bet, error) {
	var out []typefile.Bet
	for _, b := range s.bets {
		if b.EventID == eventID && b.Bettor == bettor {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *fakeStore) SaveTeamResults(eventID uint, results []typefile.TeamResult) error {
	if s.results[eventID] == nil {
		s.results[eventID] = map[uint]typefile.TeamResult{}
	}
	for _, r := range results {
		r.EventID = eventID
		s.results[eventID][r.TeamID] = r
	}
	return nil
}

func (s *fakeStore) TeamResults(eventID uint) ([]typefile.TeamResult, error) {
	var out []typefile.TeamResult
	for _, r := range s.results[eventID] {
		r.Team = s.teams[r.TeamID]
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TeamID < out[j].TeamID })
	return out, nil
}

type fakeBoard struct {
	scores map[uint]map[string]decimal.Decimal
}

func newFakeBoard() *fakeBoard {
	return &fakeBoard{scores: map[uint]map[string]decimal.Decimal{}}
}

func (b *fakeBoard) Replace(_ context.Context, eventID uint, scores map[string]decimal.Decimal) error {
	b.scores[eventID] = scores
	return nil
}

func (b *fakeBoard) Top(_ context.Context, eventID uint, offset, limit int) ([]redis.Z, error) {
	var zs []redis.Z
	for bettor, score := range b.scores[eventID] {
		zs = append(zs, redis.Z{Member: bettor, Score: score.InexactFloat64()})
	}
	sort.Slice(zs, func(i, j int) bool { return zs[i].Score > zs[j].Score })
	if offset >= len(zs) {
		return []redis.Z{}, nil
	}
	end := min(offset+limit, len(zs))
	return zs[offset:end], nil
}

type fakeIDs struct {
	n int64
}

func (f *fakeIDs) Generate() snowflake.ID {
	f.n++
	return snowflake.ID(f.n)
}
