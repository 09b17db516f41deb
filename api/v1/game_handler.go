package v1

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/vertuarena/arena/api/middleware"
	"github.com/vertuarena/arena/internal/apperrors"
	"github.com/vertuarena/arena/internal/game"
)

var GameService *game.GameService

func RegisterGameRoutes(g *echo.Group) {
	g.GET("/:id", GetGame)
	g.POST("/:id/move", MakeMove)
	g.POST("/:id/restart", RestartGame)
	g.POST("/:id/restart/request", RequestRestart)
	g.POST("/:id/restart/respond", RespondToRestart)
	g.POST("/:id/challenge/respond", RespondToChallenge)
	g.GET("/:id/chat", ListChatMessages)
	g.POST("/:id/chat", SendChatMessage)
}

func gameID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperrors.NewAppError(http.StatusBadRequest, "Invalid game id", err)
	}
	return uint(id), nil
}

func GetGame(c echo.Context) error {
	id, err := gameID(c)
	if err != nil {
		return err
	}

	resp, err := GameService.GetGame(id, middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

func MakeMove(c echo.Context) error {
	id, err := gameID(c)
	if err != nil {
		return err
	}

	var req game.MoveRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.NewAppError(http.StatusBadRequest, "Invalid request body", err)
	}

	resp, err := GameService.MakeMove(id, middleware.UserID(c), req.Position)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

func RestartGame(c echo.Context) error {
	id, err := gameID(c)
	if err != nil {
		return err
	}

	resp, err := GameService.Restart(id, middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

func RequestRestart(c echo.Context) error {
	id, err := gameID(c)
	if err != nil {
		return err
	}

	resp, err := GameService.RequestRestart(id, middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

func RespondToRestart(c echo.Context) error {
	id, err := gameID(c)
	if err != nil {
		return err
	}

	var req game.RespondRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.NewAppError(http.StatusBadRequest, "Invalid request body", err)
	}

	resp, err := GameService.RespondToRestart(id, middleware.UserID(c), req.Accept)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

func RespondToChallenge(c echo.Context) error {
	id, err := gameID(c)
	if err != nil {
		return err
	}

	var req game.RespondRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.NewAppError(http.StatusBadRequest, "Invalid request body", err)
	}

	resp, err := GameService.RespondToChallenge(id, middleware.UserID(c), req.Accept)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}
