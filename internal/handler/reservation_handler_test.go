package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Rafiffarihan13/SaveFood/internal/dto"
	"github.com/Rafiffarihan13/SaveFood/internal/models"
	"github.com/Rafiffarihan13/SaveFood/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

// --- Mock ReservationService ---

type mockReservationService struct {
	reserveFn   func(ctx context.Context, userID, listingID string) (models.Reservation, error)
	verifyFn    func(ctx context.Context, code string) (models.Reservation, error)
	forUserFn   func(ctx context.Context, userID string) ([]service.ReservationDetail, error)
	forPartner  func(ctx context.Context, partnerID string) ([]service.ReservationDetail, error)
	analyticsFn func(ctx context.Context, partnerID string) (service.PartnerAnalytics, error)
}

func (m *mockReservationService) Reserve(ctx context.Context, userID, listingID string) (models.Reservation, error) {
	return m.reserveFn(ctx, userID, listingID)
}
func (m *mockReservationService) VerifyAndComplete(ctx context.Context, code string) (models.Reservation, error) {
	return m.verifyFn(ctx, code)
}
func (m *mockReservationService) ReservationsForUser(ctx context.Context, userID string) ([]service.ReservationDetail, error) {
	return m.forUserFn(ctx, userID)
}
func (m *mockReservationService) ActiveForPartner(ctx context.Context, partnerID string) ([]service.ReservationDetail, error) {
	return m.forPartner(ctx, partnerID)
}
func (m *mockReservationService) Analytics(ctx context.Context, partnerID string) (service.PartnerAnalytics, error) {
	return m.analyticsFn(ctx, partnerID)
}

// --- Mock CatalogService ---

type mockCatalogService struct {
	createFn  func(ctx context.Context, partnerID string, in service.CreateListingInput) (models.Listing, error)
	getFn     func(ctx context.Context, id string) (models.Listing, error)
	listFn    func(ctx context.Context) []models.Listing
	partnerFn func(ctx context.Context, partnerID string) ([]models.Listing, error)
	urgentFn  func(ctx context.Context) []models.Listing
	extendFn  func(ctx context.Context, listingID string, hours int) (models.Listing, error)
	retractFn func(ctx context.Context, listingID string) (models.Listing, error)
}

func (m *mockCatalogService) CreateListing(ctx context.Context, partnerID string, in service.CreateListingInput) (models.Listing, error) {
	return m.createFn(ctx, partnerID, in)
}
func (m *mockCatalogService) Listing(ctx context.Context, id string) (models.Listing, error) {
	return m.getFn(ctx, id)
}
func (m *mockCatalogService) Listings(ctx context.Context) []models.Listing {
	return m.listFn(ctx)
}
func (m *mockCatalogService) ListingsForPartner(ctx context.Context, partnerID string) ([]models.Listing, error) {
	return m.partnerFn(ctx, partnerID)
}
func (m *mockCatalogService) UrgentListings(ctx context.Context) []models.Listing {
	return m.urgentFn(ctx)
}
func (m *mockCatalogService) ExtendDeadline(ctx context.Context, listingID string, hours int) (models.Listing, error) {
	return m.extendFn(ctx, listingID, hours)
}
func (m *mockCatalogService) Retract(ctx context.Context, listingID string) (models.Listing, error) {
	return m.retractFn(ctx, listingID)
}

func newContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// --- Tests ---

func TestReserve_Handler_Success(t *testing.T) {
	svc := &mockReservationService{
		reserveFn: func(ctx context.Context, userID, listingID string) (models.Reservation, error) {
			return models.Reservation{
				ID:        "res-1",
				UserID:    userID,
				ListingID: listingID,
				Code:      "A1B2C3",
				QRPayload: models.QRPrefix + "A1B2C3",
				Status:    models.ReservationActive,
				CreatedAt: time.Now(),
			}, nil
		},
	}
	catalog := &mockCatalogService{
		getFn: func(ctx context.Context, id string) (models.Listing, error) {
			return models.Listing{ID: id, Stock: 1, AvailableUntil: time.Now().Add(time.Hour)}, nil
		},
	}

	c, rec := newContext(t, http.MethodPost, "/api/v1/listings/food-1/reservations", `{"user_id":"user-1"}`)
	c.SetParamNames("id")
	c.SetParamValues("food-1")

	h := NewReservationHandler(svc, catalog)
	err := h.Reserve(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp dto.ReservationResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "res-1", resp.ID)
	assert.Equal(t, "SAVEFOOD_A1B2C3", resp.QRPayload)
	assert.Equal(t, models.ReservationActive, resp.Status)
}

func TestReserve_Handler_EmptyUserID(t *testing.T) {
	c, _ := newContext(t, http.MethodPost, "/api/v1/listings/food-1/reservations", `{"user_id":""}`)
	c.SetParamNames("id")
	c.SetParamValues("food-1")

	h := NewReservationHandler(nil, nil)
	err := h.Reserve(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestReserve_Handler_Unavailable(t *testing.T) {
	svc := &mockReservationService{
		reserveFn: func(ctx context.Context, userID, listingID string) (models.Reservation, error) {
			return models.Reservation{}, service.ErrSoldOut
		},
	}

	c, _ := newContext(t, http.MethodPost, "/api/v1/listings/food-1/reservations", `{"user_id":"user-1"}`)
	c.SetParamNames("id")
	c.SetParamValues("food-1")

	h := NewReservationHandler(svc, nil)
	err := h.Reserve(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusConflict, he.Code)
}

func TestReserve_Handler_NotAUser(t *testing.T) {
	svc := &mockReservationService{
		reserveFn: func(ctx context.Context, userID, listingID string) (models.Reservation, error) {
			return models.Reservation{}, service.ErrNotAUser
		},
	}

	c, _ := newContext(t, http.MethodPost, "/api/v1/listings/food-1/reservations", `{"user_id":"resto-1"}`)
	c.SetParamNames("id")
	c.SetParamValues("food-1")

	h := NewReservationHandler(svc, nil)
	err := h.Reserve(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusForbidden, he.Code)
}

func TestVerify_Handler_Success(t *testing.T) {
	var gotCode string
	svc := &mockReservationService{
		verifyFn: func(ctx context.Context, code string) (models.Reservation, error) {
			gotCode = code
			return models.Reservation{ID: "res-1", Status: models.ReservationCompleted}, nil
		},
	}

	c, rec := newContext(t, http.MethodPost, "/api/v1/reservations/verify", `{"code":"SAVEFOOD_A1B2C3"}`)

	h := NewReservationHandler(svc, nil)
	err := h.Verify(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "SAVEFOOD_A1B2C3", gotCode)

	var resp dto.ReservationResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, models.ReservationCompleted, resp.Status)
}

func TestVerify_Handler_InvalidCode(t *testing.T) {
	svc := &mockReservationService{
		verifyFn: func(ctx context.Context, code string) (models.Reservation, error) {
			return models.Reservation{}, service.ErrInvalidCode
		},
	}

	c, _ := newContext(t, http.MethodPost, "/api/v1/reservations/verify", `{"code":"ZZZZZZ"}`)

	h := NewReservationHandler(svc, nil)
	err := h.Verify(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusConflict, he.Code)
}

func TestUserReservations_Handler(t *testing.T) {
	svc := &mockReservationService{
		forUserFn: func(ctx context.Context, userID string) ([]service.ReservationDetail, error) {
			return []service.ReservationDetail{
				{Reservation: models.Reservation{ID: "res-2", UserID: userID}},
				{Reservation: models.Reservation{ID: "res-1", UserID: userID}},
			}, nil
		},
	}

	c, rec := newContext(t, http.MethodGet, "/api/v1/users/user-1/reservations", "")
	c.SetParamNames("id")
	c.SetParamValues("user-1")

	h := NewReservationHandler(svc, nil)
	assert.NoError(t, h.UserReservations(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []dto.ReservationResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
	assert.Equal(t, "res-2", resp[0].ID)
}

func TestPartnerAnalytics_Handler(t *testing.T) {
	svc := &mockReservationService{
		analyticsFn: func(ctx context.Context, partnerID string) (service.PartnerAnalytics, error) {
			return service.PartnerAnalytics{PortionsSaved: 3, RewardPoints: 180, UnclaimedItems: 1}, nil
		},
	}

	c, rec := newContext(t, http.MethodGet, "/api/v1/partners/resto-1/analytics", "")
	c.SetParamNames("id")
	c.SetParamValues("resto-1")

	h := NewReservationHandler(svc, nil)
	assert.NoError(t, h.PartnerAnalytics(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp service.PartnerAnalytics
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.PortionsSaved)
	assert.Equal(t, 180, resp.RewardPoints)
}
