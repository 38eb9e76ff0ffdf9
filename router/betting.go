package router

import (
	"councilbet/betting"
	"councilbet/typefile"
	"net/http"
	"slices"
	"strconv"

	"github.com/gin-gonic/gin"
)

func parseUintQuery(c *gin.Context, key string) (uint, bool) {
	n, err := strconv.ParseUint(c.Query(key), 10, 32)
	if err != nil || n == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"code": "1001", "error": key + " must be a positive integer"})
		return 0, false
	}
	return uint(n), true
}

// SubmitBets replaces the caller's allocation for one game of an event.
func (h *Handler) SubmitBets(c *gin.Context) {
	bettor := c.GetHeader(BettorHeader)
	if bettor == "" {
		respondError(c, errBettorRequired)
		return
	}

	var req typefile.BettingJsonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	game, entries, err := typefile.FromBettingRequest(req)
	if err != nil {
		respondError(c, err)
		return
	}

	if _, err := h.store.Event(req.EventID); err != nil {
		respondError(c, err)
		return
	}

	roster, err := h.store.RosterIDs(string(game))
	if err != nil {
		respondError(c, err)
		return
	}
	var notInGame []uint
	for id := range entries {
		if !slices.Contains(roster, id) {
			notInGame = append(notInGame, id)
		}
	}
	if len(notInGame) > 0 {
		slices.Sort(notInGame)
		respondError(c, &betting.UnknownTeamError{TeamIDs: notInGame})
		return
	}

	alloc, err := betting.ValidateAllocation(entries, betting.PointsPerGame)
	if err != nil {
		respondError(c, err)
		return
	}

	submissionID := h.ids.Generate().String()
	bets := typefile.ToBets(submissionID, req.EventID, bettor, game, alloc)
	if err := h.store.ReplaceBets(req.EventID, bettor, string(game), bets); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, typefile.ToBettingJson(submissionID, req.EventID, game, alloc))
}

func (h *Handler) MyBets(c *gin.Context) {
	bettor := c.GetHeader(BettorHeader)
	if bettor == "" {
		respondError(c, errBettorRequired)
		return
	}
	eventID, ok := parseUintQuery(c, "event_id")
	if !ok {
		return
	}

	bets, err := h.store.BetsByBettor(eventID, bettor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, typefile.ToMyBetsJson(eventID, bettor, bets))
}

const (
	defaultLeaderboardLimit = 10
	maxLeaderboardLimit     = 100
	maxLeaderboardOffset    = 100000
)

func (h *Handler) GetLeaderboard(c *gin.Context) {
	eventID, ok := parseUintQuery(c, "event_id")
	if !ok {
		return
	}

	page := typefile.Pagination{Offset: 0, Limit: defaultLeaderboardLimit}
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"code": "1001", "error": "limit must be a positive integer"})
			return
		}
		page.Limit = min(n, maxLeaderboardLimit)
	}
	if v := c.Query("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"code": "1001", "error": "offset must be a non-negative integer"})
			return
		}
		page.Offset = min(n, maxLeaderboardOffset)
	}

	scores, err := h.board.Top(c.Request.Context(), eventID, page.Offset, page.Limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, typefile.ToLeaderboardJson(eventID, page.Offset, scores))
}

// PreviewMultiplier lets the admin form show the payout while a rank is typed.
func (h *Handler) PreviewMultiplier(c *gin.Context) {
	rank, err := strconv.Atoi(c.Query("rank"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "1001", "error": "rank must be an integer"})
		return
	}
	total, err := strconv.Atoi(c.Query("totalTeams"))
	if err != nil || total < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"code": "1001", "error": "totalTeams must be a positive integer"})
		return
	}
	if rank < 1 || rank > total {
		respondError(c, &betting.RankOutOfBoundsError{Rank: rank, TotalTeams: total})
		return
	}

	c.JSON(http.StatusOK, typefile.MultiplierJsonResponse{
		Rank:       rank,
		TotalTeams: total,
		Multiplier: betting.MultiplierForRank(rank, total).InexactFloat64(),
	})
}
