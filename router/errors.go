package router

import (
	"errors"
	"log"
	"net/http"

	"councilbet/betting"
	"councilbet/typefile"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
)

var errBettorRequired = errors.New("missing " + BettorHeader + " header")

// respondError はエラー種別ごとにステータスとコードを決める
func respondError(c *gin.Context, err error) {
	var (
		mismatch   *betting.BudgetMismatchError
		invalid    *betting.InvalidAmountError
		incomplete *betting.IncompleteRankingError
		duplicate  *betting.DuplicateRankError
		outOfRange *betting.RankOutOfBoundsError
		unknown    *betting.UnknownTeamError
	)

	switch {
	case errors.As(err, &mismatch):
		c.JSON(http.StatusBadRequest, gin.H{
			"code":      "2001",
			"message":   err.Error(),
			"used":      mismatch.Actual,
			"required":  mismatch.Required,
			"remaining": mismatch.Remaining(),
		})
	case errors.As(err, &invalid):
		c.JSON(http.StatusBadRequest, gin.H{"code": "2002", "message": err.Error(), "team_id": invalid.TeamID})
	case errors.Is(err, typefile.ErrDuplicateTeam):
		c.JSON(http.StatusBadRequest, gin.H{"code": "2003", "message": err.Error()})
	case errors.Is(err, betting.ErrUnknownGame):
		c.JSON(http.StatusBadRequest, gin.H{"code": "2004", "message": err.Error()})
	case errors.As(err, &unknown):
		c.JSON(http.StatusBadRequest, gin.H{"code": "2005", "message": err.Error(), "teams": unknown.TeamIDs})
	case errors.Is(err, betting.ErrBettingClosed):
		c.JSON(http.StatusConflict, gin.H{"code": "2006", "message": err.Error()})
	case errors.As(err, &incomplete):
		c.JSON(http.StatusBadRequest, gin.H{"code": "3001", "message": err.Error(), "missing": incomplete.Missing})
	case errors.As(err, &duplicate):
		c.JSON(http.StatusBadRequest, gin.H{"code": "3002", "message": err.Error(), "rank": duplicate.Rank, "teams": duplicate.Teams})
	case errors.As(err, &outOfRange):
		c.JSON(http.StatusBadRequest, gin.H{"code": "3003", "message": err.Error(), "team_id": outOfRange.TeamID, "rank": outOfRange.Rank, "total_teams": outOfRange.TotalTeams})
	case errors.Is(err, errBettorRequired):
		c.JSON(http.StatusUnauthorized, gin.H{"code": "1002", "message": err.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"code": "1000", "message": "Not Found"})
	default:
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": "9999", "message": "internal error, please retry"})
	}
}

func respondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"code": "1001", "error": err.Error()})
}
