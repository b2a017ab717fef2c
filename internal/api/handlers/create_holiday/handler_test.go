package create_holiday

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sung-woo-jang/living-craft-backend/internal/api/middleware"
	"github.com/sung-woo-jang/living-craft-backend/internal/service/holidays"
	"github.com/sung-woo-jang/living-craft-backend/internal/service/holidays/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	err     error
	lastReq *models.CreateHolidayRequest
}

func (f *fakeService) Create(_ context.Context, req *models.CreateHolidayRequest) (*models.HolidayResponse, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.HolidayResponse{ID: 1, ServiceID: req.ServiceID, Date: req.Date, Reason: req.Reason}, nil
}

func newRouter(svc *fakeService) *mux.Router {
	h := NewHandler(svc, nopLogger{})
	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/api/v1/holidays", h.Handle).Methods(http.MethodPost)
	r.HandleFunc("/api/v1/services/{serviceId}/holidays", h.Handle).Methods(http.MethodPost)
	return r
}

func post(r http.Handler, target, body string, userID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	if userID != "" {
		req.Header.Set(middleware.UserIDHeader, userID)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Global(t *testing.T) {
	svc := &fakeService{}
	rec := post(newRouter(svc), "/api/v1/holidays", `{"date":"2026-12-25","reason":"Christmas"}`, "42")

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, svc.lastReq)
	assert.Nil(t, svc.lastReq.ServiceID)
	assert.Equal(t, int64(42), svc.lastReq.UserID)
	assert.Equal(t, "2026-12-25", svc.lastReq.Date)
}

func TestHandle_Service(t *testing.T) {
	svc := &fakeService{}
	rec := post(newRouter(svc), "/api/v1/services/9/holidays", `{"date":"2026-12-26"}`, "42")

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, svc.lastReq.ServiceID)
	assert.Equal(t, int64(9), *svc.lastReq.ServiceID)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		body       string
		userID     string
		svcErr     error
		wantStatus int
	}{
		{name: "no user", target: "/api/v1/holidays", body: `{"date":"2026-12-25"}`, wantStatus: http.StatusUnauthorized},
		{name: "bad json", target: "/api/v1/holidays", body: `{"date":`, userID: "1", wantStatus: http.StatusBadRequest},
		{name: "unknown field", target: "/api/v1/holidays", body: `{"day":"2026-12-25"}`, userID: "1", wantStatus: http.StatusBadRequest},
		{name: "bad service id", target: "/api/v1/services/x/holidays", body: `{"date":"2026-12-25"}`, userID: "1", wantStatus: http.StatusBadRequest},
		{name: "invalid", target: "/api/v1/holidays", body: `{"date":"bad"}`, userID: "1", svcErr: holidays.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "duplicate", target: "/api/v1/holidays", body: `{"date":"2026-12-25"}`, userID: "1", svcErr: holidays.ErrHolidayAlreadyExists, wantStatus: http.StatusConflict},
		{name: "internal", target: "/api/v1/holidays", body: `{"date":"2026-12-25"}`, userID: "1", svcErr: holidays.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(newRouter(&fakeService{err: tt.svcErr}), tt.target, tt.body, tt.userID)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
