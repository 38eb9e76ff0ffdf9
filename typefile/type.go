package typefile

import "github.com/jinzhu/gorm"

type Event struct {
	gorm.Model
	Name string
}

type Team struct {
	gorm.Model
	Name     string
	Uuid     string `gorm:"unique_index"`
	GameType string `gorm:"index"`
	Members  []Member
}

type Member struct {
	gorm.Model
	Name   string
	TeamID uint `gorm:"index"`
}

// Bet は1ベッター・1イベント・1種目の配分の1行。0ポイントの行は保存しない
type Bet struct {
	gorm.Model
	SubmissionID string
	EventID      uint   `gorm:"index:idx_bet_owner"`
	Bettor       string `gorm:"index:idx_bet_owner"`
	GameType     string `gorm:"index:idx_bet_owner"`
	TeamID       uint
	Points       int
}

// TeamResult は順位のみ保存する。倍率は常に順位とチーム数から再計算する
type TeamResult struct {
	gorm.Model
	EventID        uint `gorm:"unique_index:idx_event_team"`
	TeamID         uint `gorm:"unique_index:idx_event_team"`
	Team           Team
	FinalRank      int
	AdditionalInfo string
}

type TeamCreateJsonRequest struct {
	Name     string   `json:"name" binding:"required"`
	GameType string   `json:"game_type" binding:"required,game"`
	Members  []string `json:"members" binding:"required,min=1,dive,required"`
}

type TeamJsonResponse struct {
	ID       uint     `json:"id"`
	Uuid     string   `json:"uuid"`
	Name     string   `json:"name"`
	GameType string   `json:"game_type"`
	Members  []string `json:"members"`
}

type EventJsonResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type BettingJsonRequest struct {
	EventID  uint      `json:"event_id" binding:"required"`
	GameType string    `json:"game_type" binding:"required,game"`
	Bets     []BetJson `json:"bets" binding:"dive"`
}

type BetJson struct {
	TeamID    uint    `json:"team_id" binding:"required"`
	BetPoints float64 `json:"bet_points"`
}

type BettingJsonResponse struct {
	SubmissionID string    `json:"submission_id"`
	EventID      uint      `json:"event_id"`
	GameType     string    `json:"game_type"`
	Bets         []BetJson `json:"bets"`
}

type GameBetsJson struct {
	GameType  string    `json:"game_type"`
	Used      int       `json:"used"`
	Remaining int       `json:"remaining"`
	Bets      []BetJson `json:"bets"`
}

type MyBetsJsonResponse struct {
	EventID uint           `json:"event_id"`
	Bettor  string         `json:"bettor"`
	Games   []GameBetsJson `json:"games"`
}

// 管理画面の順位登録はキャメルケース
type TeamResultsJsonRequest struct {
	EventID     uint             `json:"eventId" binding:"required"`
	TeamResults []TeamResultJson `json:"teamResults" binding:"required,min=1,dive"`
}

type TeamResultJson struct {
	TeamID         uint   `json:"teamId" binding:"required"`
	FinalRank      int    `json:"finalRank"`
	AdditionalInfo string `json:"additionalInfo,omitempty"`
}

type TeamResultsJsonResponse struct {
	EventID     uint                 `json:"eventId"`
	EventName   string               `json:"eventName"`
	TeamResults []TeamResultViewJson `json:"teamResults"`
}

type TeamResultViewJson struct {
	TeamID         uint    `json:"teamId"`
	TeamName       string  `json:"teamName"`
	GameType       string  `json:"gameType"`
	FinalRank      int     `json:"finalRank"`
	Multiplier     float64 `json:"multiplier"`
	AdditionalInfo string  `json:"additionalInfo"`
}

type MultiplierJsonResponse struct {
	Rank       int     `json:"rank"`
	TotalTeams int     `json:"totalTeams"`
	Multiplier float64 `json:"multiplier"`
}

type LeaderboardEntryJson struct {
	Rank   int     `json:"rank"`
	Bettor string  `json:"bettor"`
	Score  float64 `json:"score"`
}

type LeaderboardJsonResponse struct {
	EventID uint                   `json:"event_id"`
	Entries []LeaderboardEntryJson `json:"entries"`
}

type Pagination struct {
	Offset int
	Limit  int
}
