package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/Rafiffarihan13/SaveFood/internal/dto"
	"github.com/Rafiffarihan13/SaveFood/internal/service"
	"github.com/Rafiffarihan13/SaveFood/internal/store"
	"github.com/labstack/echo/v4"
)

type ListingHandler struct {
	catalog    service.CatalogService
	identities *store.IdentityStore
}

func NewListingHandler(catalog service.CatalogService, identities *store.IdentityStore) *ListingHandler {
	return &ListingHandler{catalog: catalog, identities: identities}
}

func (h *ListingHandler) RegisterRoutes(e *echo.Echo) {
	listings := e.Group("/api/v1/listings")
	listings.POST("", h.CreateListing)
	listings.GET("", h.ListListings)
	listings.GET("/urgent", h.UrgentListings)
	listings.GET("/:id", h.GetListing)
	listings.POST("/:id/extend", h.ExtendDeadline)
	listings.POST("/:id/retract", h.Retract)

	partners := e.Group("/api/v1/partners")
	partners.GET("/popular", h.PopularPartners)
	partners.GET("/:id/listings", h.PartnerListings)
}

type createListingRequest struct {
	PartnerID string `json:"partner_id"`
	service.CreateListingInput
}

func (h *ListingHandler) CreateListing(c echo.Context) error {
	var req createListingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.PartnerID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "partner_id is required")
	}

	listing, err := h.catalog.CreateListing(c.Request().Context(), req.PartnerID, req.CreateListingInput)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotAPartner):
			return echo.NewHTTPError(http.StatusForbidden, err.Error())
		case errors.Is(err, service.ErrValidation):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusCreated, dto.ToListingResponse(listing, time.Now()))
}

func (h *ListingHandler) ListListings(c echo.Context) error {
	listings := h.catalog.Listings(c.Request().Context())

	if category := c.QueryParam("category"); category != "" {
		filtered := listings[:0]
		for _, l := range listings {
			if l.Category == category {
				filtered = append(filtered, l)
			}
		}
		listings = filtered
	}

	return c.JSON(http.StatusOK, dto.ToListingResponses(listings, time.Now()))
}

func (h *ListingHandler) UrgentListings(c echo.Context) error {
	urgent := h.catalog.UrgentListings(c.Request().Context())
	return c.JSON(http.StatusOK, dto.ToListingResponses(urgent, time.Now()))
}

func (h *ListingHandler) GetListing(c echo.Context) error {
	listing, err := h.catalog.Listing(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "listing not found")
	}
	return c.JSON(http.StatusOK, dto.ToListingResponse(listing, time.Now()))
}

func (h *ListingHandler) ExtendDeadline(c echo.Context) error {
	var req dto.ExtendDeadlineRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	listing, err := h.catalog.ExtendDeadline(c.Request().Context(), c.Param("id"), req.Hours)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrListingNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrValidation):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, dto.ToListingResponse(listing, time.Now()))
}

func (h *ListingHandler) Retract(c echo.Context) error {
	listing, err := h.catalog.Retract(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrListingNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, dto.ToListingResponse(listing, time.Now()))
}

func (h *ListingHandler) PartnerListings(c echo.Context) error {
	listings, err := h.catalog.ListingsForPartner(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "partner not found")
	}
	return c.JSON(http.StatusOK, dto.ToListingResponses(listings, time.Now()))
}

// PopularPartners returns the top partners ranked by reward points, for the
// landing screen.
func (h *ListingHandler) PopularPartners(c echo.Context) error {
	return c.JSON(http.StatusOK, h.identities.PopularPartners(4))
}
