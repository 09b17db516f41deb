package v1

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/vertuarena/arena/api/middleware"
	"github.com/vertuarena/arena/internal/apperrors"
	"github.com/vertuarena/arena/internal/stats"
)

var StatsService *stats.StatsService

func RegisterStatsRoutes(g *echo.Group) {
	g.GET("/leaderboard", Leaderboard)
	g.GET("/player-stats/my-stats", MyStats)
	g.GET("/player-stats/:id", PlayerStats)
}

func Leaderboard(c echo.Context) error {
	board, err := StatsService.Leaderboard()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, board)
}

func MyStats(c echo.Context) error {
	resp, err := StatsService.StatsFor(middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

func PlayerStats(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return apperrors.NewAppError(http.StatusBadRequest, "Invalid user id", err)
	}

	resp, err := StatsService.StatsFor(uint(id))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}
