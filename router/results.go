package router

import (
	"councilbet/betting"
	"councilbet/typefile"
	"log"
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
)

// SubmitTeamResults records the rank sets of an event. Each game's ranks are
// checked against that game's whole roster before anything is written.
func (h *Handler) SubmitTeamResults(c *gin.Context) {
	var req typefile.TeamResultsJsonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	ranks, infos, err := typefile.FromTeamResultsRequest(req)
	if err != nil {
		respondError(c, err)
		return
	}

	event, err := h.store.Event(req.EventID)
	if err != nil {
		respondError(c, err)
		return
	}

	ids := make([]uint, 0, len(ranks))
	for id := range ranks {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	teams, err := h.store.TeamsByIDs(ids)
	if err != nil {
		respondError(c, err)
		return
	}

	gameOf := make(map[uint]string, len(teams))
	for _, t := range teams {
		gameOf[t.ID] = t.GameType
	}
	var unknown []uint
	byGame := map[string]map[uint]int{}
	for _, id := range ids {
		game, ok := gameOf[id]
		if !ok {
			unknown = append(unknown, id)
			continue
		}
		if byGame[game] == nil {
			byGame[game] = map[uint]int{}
		}
		byGame[game][id] = ranks[id]
	}
	if len(unknown) > 0 {
		respondError(c, &betting.UnknownTeamError{TeamIDs: unknown})
		return
	}

	// 種目ごとに全チームの順位が揃っているか確認
	for _, game := range betting.Games() {
		gameRanks, ok := byGame[string(game)]
		if !ok {
			continue
		}
		roster, err := h.store.RosterIDs(string(game))
		if err != nil {
			respondError(c, err)
			return
		}
		if err := betting.ValidateRanks(gameRanks, roster); err != nil {
			respondError(c, err)
			return
		}
	}

	results := make([]typefile.TeamResult, 0, len(ids))
	for _, id := range ids {
		results = append(results, typefile.TeamResult{
			TeamID:         id,
			FinalRank:      ranks[id],
			AdditionalInfo: infos[id],
		})
	}
	if err := h.store.SaveTeamResults(event.ID, results); err != nil {
		respondError(c, err)
		return
	}

	stored, err := h.store.TeamResults(event.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	// スコアは派生値なので失敗しても結果登録は成功扱い
	if err := h.settle(c, event.ID, stored); err != nil {
		log.Printf("settle event %d: %v", event.ID, err)
	}

	c.JSON(http.StatusOK, typefile.ToTeamResultsJson(event, stored))
}

func (h *Handler) settle(c *gin.Context, eventID uint, results []typefile.TeamResult) error {
	bets, err := h.store.BetsByEvent(eventID)
	if err != nil {
		return err
	}
	scores := betting.SettleEvent(typefile.ToAllocations(bets), typefile.ResultMultipliers(results))
	return h.board.Replace(c.Request.Context(), eventID, scores)
}

func (h *Handler) GetTeamResults(c *gin.Context) {
	eventID, ok := parseUintQuery(c, "eventId")
	if !ok {
		return
	}

	event, err := h.store.Event(eventID)
	if err != nil {
		respondError(c, err)
		return
	}
	results, err := h.store.TeamResults(eventID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, typefile.ToTeamResultsJson(event, results))
}
