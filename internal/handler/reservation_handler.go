package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/Rafiffarihan13/SaveFood/internal/dto"
	"github.com/Rafiffarihan13/SaveFood/internal/service"
	"github.com/labstack/echo/v4"
)

type ReservationHandler struct {
	reservations service.ReservationService
	catalog      service.CatalogService
}

func NewReservationHandler(reservations service.ReservationService, catalog service.CatalogService) *ReservationHandler {
	return &ReservationHandler{reservations: reservations, catalog: catalog}
}

func (h *ReservationHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/v1/listings/:id/reservations", h.Reserve)
	e.POST("/api/v1/reservations/verify", h.Verify)
	e.GET("/api/v1/users/:id/reservations", h.UserReservations)
	e.GET("/api/v1/partners/:id/reservations", h.PartnerReservations)
	e.GET("/api/v1/partners/:id/analytics", h.PartnerAnalytics)
}

func (h *ReservationHandler) Reserve(c echo.Context) error {
	var req dto.ReserveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.UserID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "user_id is required")
	}

	r, err := h.reservations.Reserve(c.Request().Context(), req.UserID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotAUser):
			return echo.NewHTTPError(http.StatusForbidden, err.Error())
		case errors.Is(err, service.ErrUnavailable):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	listing, lerr := h.catalog.Listing(c.Request().Context(), r.ListingID)
	if lerr != nil {
		return c.JSON(http.StatusCreated, dto.ToReservationResponse(r, nil, time.Now()))
	}
	return c.JSON(http.StatusCreated, dto.ToReservationResponse(r, &listing, time.Now()))
}

func (h *ReservationHandler) Verify(c echo.Context) error {
	var req dto.VerifyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Code == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "code is required")
	}

	r, err := h.reservations.VerifyAndComplete(c.Request().Context(), req.Code)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCode) {
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.ToReservationResponse(r, nil, time.Now()))
}

func (h *ReservationHandler) UserReservations(c echo.Context) error {
	details, err := h.reservations.ReservationsForUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "user not found")
	}
	return c.JSON(http.StatusOK, dto.ToReservationDetailResponses(details, time.Now()))
}

func (h *ReservationHandler) PartnerReservations(c echo.Context) error {
	details, err := h.reservations.ActiveForPartner(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "partner not found")
	}
	return c.JSON(http.StatusOK, dto.ToReservationDetailResponses(details, time.Now()))
}

func (h *ReservationHandler) PartnerAnalytics(c echo.Context) error {
	analytics, err := h.reservations.Analytics(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "partner not found")
	}
	return c.JSON(http.StatusOK, analytics)
}
