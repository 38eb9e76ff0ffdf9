package router

import (
	"context"
	"councilbet/betting"
	"councilbet/typefile"
	"fmt"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// BettorHeader は認証済みのフロントから渡される学籍番号
const BettorHeader = "X-Bettor-ID"

type Store interface {
	Events() ([]typefile.Event, error)
	Event(id uint) (typefile.Event, error)
	Teams(gameType string) ([]typefile.Team, error)
	TeamByUuid(uuid string) (typefile.Team, error)
	TeamsByIDs(ids []uint) ([]typefile.Team, error)
	CreateTeam(team *typefile.Team) error
	RosterIDs(gameType string) ([]uint, error)
	ReplaceBets(eventID uint, bettor, gameType string, bets []typefile.Bet) error
	BetsByEvent(eventID uint) ([]typefile.Bet, error)
	BetsByBettor(eventID uint, bettor string) ([]typefile.Bet, error)
	SaveTeamResults(eventID uint, results []typefile.TeamResult) error
	TeamResults(eventID uint) ([]typefile.TeamResult, error)
}

type Leaderboard interface {
	Replace(ctx context.Context, eventID uint, scores map[string]decimal.Decimal) error
	Top(ctx context.Context, eventID uint, offset, limit int) ([]redis.Z, error)
}

type IDGenerator interface {
	Generate() snowflake.ID
}

type Handler struct {
	store Store
	board Leaderboard
	ids   IDGenerator
}

func NewHandler(store Store, board Leaderboard, ids IDGenerator) *Handler {
	return &Handler{store: store, board: board, ids: ids}
}

func registerValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	return v.RegisterValidation("game", func(fl validator.FieldLevel) bool {
		return betting.Game(fl.Field().String()).Valid()
	})
}

// NewRouter は起動時に呼ぶ。バリデーション登録に失敗したら panic
func NewRouter(h *Handler) *gin.Engine {
	if err := registerValidations(); err != nil {
		panic(fmt.Errorf("register validations: %w", err))
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Hello",
		})
	})

	api := r.Group("/api")
	api.GET("/events", h.ListEvents)
	api.GET("/teams", h.ListTeams)
	api.POST("/teams", h.CreateTeam)
	api.GET("/teams/:uuid", h.GetTeam)
	api.GET("/multiplier", h.PreviewMultiplier)

	api.POST("/betting", h.SubmitBets)
	api.GET("/betting", h.MyBets)
	api.GET("/betting/leaderboard", h.GetLeaderboard)

	admin := api.Group("/admin")
	admin.POST("/team-results", h.SubmitTeamResults)
	admin.GET("/team-results", h.GetTeamResults)

	return r
}
