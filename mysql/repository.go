package mysql

import (
	"councilbet/betting"
	"councilbet/typefile"
	"fmt"

	"github.com/jinzhu/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Events() ([]typefile.Event, error) {
	var events []typefile.Event
	err := r.db.Order("id").Find(&events).Error
	return events, err
}

func (r *Repository) Event(id uint) (typefile.Event, error) {
	var event typefile.Event
	err := r.db.First(&event, id).Error
	return event, err
}

// Teams returns every team with members, optionally limited to one game.
func (r *Repository) Teams(gameType string) ([]typefile.Team, error) {
	var teams []typefile.Team
	q := r.db.Preload("Members").Order("id")
	if gameType != "" {
		q = q.Where("game_type = ?", gameType)
	}
	err := q.Find(&teams).Error
	return teams, err
}

func (r *Repository) TeamByUuid(uuid string) (typefile.Team, error) {
	var team typefile.Team
	err := r.db.Preload("Members").Where("uuid = ?", uuid).First(&team).Error
	return team, err
}

func (r *Repository) TeamsByIDs(ids []uint) ([]typefile.Team, error) {
	var teams []typefile.Team
	if len(ids) == 0 {
		return teams, nil
	}
	err := r.db.Where("id IN (?)", ids).Find(&teams).Error
	return teams, err
}

// CreateTeam は members も一緒に作成される
func (r *Repository) CreateTeam(team *typefile.Team) error {
	return r.db.Create(team).Error
}

func (r *Repository) RosterIDs(gameType string) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&typefile.Team{}).Where("game_type = ?", gameType).Order("id").Pluck("id", &ids).Error
	return ids, err
}

// ReplaceBets swaps a bettor's bets for one event and game in a single
// transaction. It fails with betting.ErrBettingClosed once the game has
// results; the share lock makes a concurrent SaveTeamResults wait for this
// transaction, so settlement always sees the committed bets.
func (r *Repository) ReplaceBets(eventID uint, bettor, gameType string, bets []typefile.Bet) error {
	tx := r.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	var recorded []typefile.TeamResult
	err := tx.Set("gorm:query_option", "LOCK IN SHARE MODE").
		Select("team_results.id").
		Joins("JOIN teams ON teams.id = team_results.team_id").
		Where("team_results.event_id = ? AND teams.game_type = ?", eventID, gameType).
		Limit(1).
		Find(&recorded).Error
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("check results: %w", err)
	}
	if len(recorded) > 0 {
		tx.Rollback()
		return betting.ErrBettingClosed
	}

	err = tx.Unscoped().
		Where("event_id = ? AND bettor = ? AND game_type = ?", eventID, bettor, gameType).
		Delete(&typefile.Bet{}).Error
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("delete previous bets: %w", err)
	}

	for i := range bets {
		if err := tx.Create(&bets[i]).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("create bet: %w", err)
		}
	}
	return tx.Commit().Error
}

func (r *Repository) BetsByEvent(eventID uint) ([]typefile.Bet, error) {
	var bets []typefile.Bet
	err := r.db.Where("event_id = ?", eventID).Find(&bets).Error
	return bets, err
}

func (r *Repository) BetsByBettor(eventID uint, bettor string) ([]typefile.Bet, error) {
	var bets []typefile.Bet
	err := r.db.Where("event_id = ? AND bettor = ?", eventID, bettor).Find(&bets).Error
	return bets, err
}

// SaveTeamResults writes a full rank set for an event atomically. Existing
// rows for the same teams are replaced.
func (r *Repository) SaveTeamResults(eventID uint, results []typefile.TeamResult) error {
	teamIDs := make([]uint, 0, len(results))
	for _, res := range results {
		teamIDs = append(teamIDs, res.TeamID)
	}

	tx := r.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	err := tx.Unscoped().
		Where("event_id = ? AND team_id IN (?)", eventID, teamIDs).
		Delete(&typefile.TeamResult{}).Error
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("delete previous results: %w", err)
	}

	for i := range results {
		results[i].EventID = eventID
		if err := tx.Set("gorm:save_associations", false).Create(&results[i]).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("create result: %w", err)
		}
	}
	return tx.Commit().Error
}

func (r *Repository) TeamResults(eventID uint) ([]typefile.TeamResult, error) {
	var results []typefile.TeamResult
	err := r.db.Preload("Team").Where("event_id = ?", eventID).Find(&results).Error
	return results, err
}
