package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vertuarena/arena/api/middleware"
	"github.com/vertuarena/arena/internal/apperrors"
	"github.com/vertuarena/arena/internal/game"
	"github.com/vertuarena/arena/internal/matchmaking"
)

var MatchmakingService *matchmaking.MatchmakingService

func RegisterMatchmakingRoutes(g *echo.Group) {
	g.GET("/available-players", AvailablePlayers)
	g.POST("/toggle-availability", ToggleAvailability)
	g.POST("/request-match", RequestMatch)
	g.GET("/challenges", PendingChallenges)
	g.POST("/queue", JoinQueue)
	g.GET("/queue/status", QueueStatus)
	g.DELETE("/queue", LeaveQueue)
}

func AvailablePlayers(c echo.Context) error {
	players, err := GameService.AvailablePlayers(middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, players)
}

func ToggleAvailability(c echo.Context) error {
	resp, err := GameService.ToggleAvailability(middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

func RequestMatch(c echo.Context) error {
	var req game.ChallengeRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.NewAppError(http.StatusBadRequest, "Invalid request body", err)
	}

	resp, err := GameService.RequestMatch(middleware.UserID(c), req.OpponentID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, resp)
}

func PendingChallenges(c echo.Context) error {
	challenges, err := GameService.PendingChallenges(middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, challenges)
}

func JoinQueue(c echo.Context) error {
	var req matchmaking.JoinRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.NewAppError(http.StatusBadRequest, "Invalid request body", err)
	}

	status, err := MatchmakingService.JoinQueue(middleware.UserID(c), req.GameType)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, status)
}

func QueueStatus(c echo.Context) error {
	status, err := MatchmakingService.CheckStatus(middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, status)
}

func LeaveQueue(c echo.Context) error {
	if err := MatchmakingService.LeaveQueue(middleware.UserID(c)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Left matchmaking queue"})
}
