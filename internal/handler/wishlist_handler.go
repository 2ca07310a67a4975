package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/Rafiffarihan13/SaveFood/internal/dto"
	"github.com/Rafiffarihan13/SaveFood/internal/service"
	"github.com/labstack/echo/v4"
)

type WishlistHandler struct {
	svc service.WishlistService
}

func NewWishlistHandler(svc service.WishlistService) *WishlistHandler {
	return &WishlistHandler{svc: svc}
}

func (h *WishlistHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/v1/users/:id/wishlist", h.List)
	e.POST("/api/v1/users/:id/wishlist", h.Add)
	e.GET("/api/v1/users/:id/wishlist/:listingId", h.Contains)
	e.DELETE("/api/v1/users/:id/wishlist/:listingId", h.Remove)
}

func (h *WishlistHandler) List(c echo.Context) error {
	listings, err := h.svc.Listings(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "user not found")
	}
	return c.JSON(http.StatusOK, dto.ToListingResponses(listings, time.Now()))
}

func (h *WishlistHandler) Add(c echo.Context) error {
	var req dto.WishlistRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.ListingID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "listing_id is required")
	}

	if err := h.svc.Add(c.Request().Context(), c.Param("id"), req.ListingID); err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrListingNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *WishlistHandler) Contains(c echo.Context) error {
	saved, err := h.svc.Contains(c.Request().Context(), c.Param("id"), c.Param("listingId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "user not found")
	}
	return c.JSON(http.StatusOK, map[string]bool{"wishlisted": saved})
}

func (h *WishlistHandler) Remove(c echo.Context) error {
	if err := h.svc.Remove(c.Request().Context(), c.Param("id"), c.Param("listingId")); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
