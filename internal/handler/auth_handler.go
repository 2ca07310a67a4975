package handler

import (
	"errors"
	"net/http"

	"github.com/Rafiffarihan13/SaveFood/internal/auth"
	"github.com/Rafiffarihan13/SaveFood/internal/dto"
	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	svc auth.Service
}

func NewAuthHandler(svc auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/v1/auth")
	g.POST("/login", h.Login)
	g.POST("/register", h.Register)
	g.POST("/logout", h.Logout)
	g.GET("/session", h.Session)
	g.PUT("/profile/:id", h.UpdateProfile)
	g.DELETE("/profile/:id", h.DeleteProfile)
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	ident, isNew, err := h.svc.Login(c.Request().Context(), req.Email, req.Password, req.Role)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.LoginResponse{Identity: ident, IsNewUser: isNew})
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req auth.RegisterInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	ident, err := h.svc.Register(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrEmailTaken):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		case errors.Is(err, auth.ErrValidation):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusCreated, ident)
}

func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.svc.Logout(c.Request().Context()); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

// Session restores the persisted identity snapshot, if anyone is logged in.
func (h *AuthHandler) Session(c echo.Context) error {
	ident, err := h.svc.Current(c.Request().Context())
	if err != nil {
		if errors.Is(err, auth.ErrNotLoggedIn) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, ident)
}

func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	var req auth.UpdateProfileInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	ident, err := h.svc.UpdateProfile(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, auth.ErrIdentityNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, ident)
}

func (h *AuthHandler) DeleteProfile(c echo.Context) error {
	if err := h.svc.DeleteProfile(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, auth.ErrIdentityNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
