package v1

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/vertuarena/arena/api/middleware"
	"github.com/vertuarena/arena/internal/apperrors"
	"github.com/vertuarena/arena/internal/user"
)

var UserService *user.UserService

func RegisterUserRoutes(g *echo.Group, auth echo.MiddlewareFunc) {
	g.POST("/signup", Signup)
	g.POST("/login", Login)
	g.GET("", ListUsers, auth)
	g.GET("/me", Me, auth)
	g.PUT("/me", UpdateMe, auth)
	g.GET("/:id", GetUser, auth)
}

func Signup(c echo.Context) error {
	var req user.User
	if err := c.Bind(&req); err != nil {
		return apperrors.NewAppError(http.StatusBadRequest, "Invalid request body", err)
	}

	token, created, err := UserService.Signup(req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"token": token,
		"user":  created,
	})
}

func Login(c echo.Context) error {
	var req user.User
	if err := c.Bind(&req); err != nil {
		return apperrors.NewAppError(http.StatusBadRequest, "Invalid request body", err)
	}

	token, logged, err := UserService.Login(req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"token": token,
		"user":  logged,
	})
}

func Me(c echo.Context) error {
	found, err := UserService.GetUser(middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, found)
}

func UpdateMe(c echo.Context) error {
	var req user.ProfileUpdate
	if err := c.Bind(&req); err != nil {
		return apperrors.NewAppError(http.StatusBadRequest, "Invalid request body", err)
	}

	updated, err := UserService.UpdateProfile(middleware.UserID(c), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

func GetUser(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return apperrors.NewAppError(http.StatusBadRequest, "Invalid user id", err)
	}

	found, err := UserService.GetUser(uint(id))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, found)
}

func ListUsers(c echo.Context) error {
	users, err := UserService.ListUsers(middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}
