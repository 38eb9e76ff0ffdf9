package router

import (
	"councilbet/betting"
	"councilbet/typefile"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListEvents(c *gin.Context) {
	events, err := h.store.Events()
	if err != nil {
		respondError(c, err)
		return
	}
	res := make([]typefile.EventJsonResponse, 0, len(events))
	for _, e := range events {
		res = append(res, typefile.ToEventJson(e))
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) ListTeams(c *gin.Context) {
	game := c.Query("game")
	if game != "" {
		if _, err := betting.ParseGame(game); err != nil {
			respondError(c, err)
			return
		}
	}

	teams, err := h.store.Teams(game)
	if err != nil {
		respondError(c, err)
		return
	}
	res := make([]typefile.TeamJsonResponse, 0, len(teams))
	for _, t := range teams {
		res = append(res, typefile.ToTeamJson(t))
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) GetTeam(c *gin.Context) {
	team, err := h.store.TeamByUuid(c.Param("uuid"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, typefile.ToTeamJson(team))
}

func (h *Handler) CreateTeam(c *gin.Context) {
	var req typefile.TeamCreateJsonRequest

	// リクエストボディをJSONとしてパースして構造体にマッピング
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	uuid := h.ids.Generate()
	fmt.Println("Generated Snowflake ID:", uuid)

	team := typefile.Team{Name: req.Name, GameType: req.GameType, Uuid: uuid.String()}
	for _, name := range req.Members {
		team.Members = append(team.Members, typefile.Member{Name: name})
	}
	if err := h.store.CreateTeam(&team); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, typefile.ToTeamJson(team))
}
