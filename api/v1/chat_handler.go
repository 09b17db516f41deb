package v1

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/vertuarena/arena/api/middleware"
	"github.com/vertuarena/arena/internal/apperrors"
	"github.com/vertuarena/arena/internal/chat"
)

var ChatService *chat.ChatService

func RegisterChatRoutes(g *echo.Group) {
	g.DELETE("/:id", DeleteChatMessage)
}

func ListChatMessages(c echo.Context) error {
	id, err := gameID(c)
	if err != nil {
		return err
	}

	messages, err := ChatService.Messages(id, middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messages)
}

func SendChatMessage(c echo.Context) error {
	id, err := gameID(c)
	if err != nil {
		return err
	}

	var req chat.SendRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.NewAppError(http.StatusBadRequest, "Invalid request body", err)
	}

	resp, err := ChatService.Send(id, middleware.UserID(c), req.Message)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, resp)
}

func DeleteChatMessage(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return apperrors.NewAppError(http.StatusBadRequest, "Invalid message id", err)
	}

	if err := ChatService.Delete(uint(id), middleware.UserID(c)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Message deleted"})
}
