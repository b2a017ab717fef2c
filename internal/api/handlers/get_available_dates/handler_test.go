package get_available_dates

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sung-woo-jang/living-craft-backend/internal/domain"
	getAvailableDates "github.com/sung-woo-jang/living-craft-backend/internal/usecase/get_available_dates"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	resp    *getAvailableDates.Response
	err     error
	lastReq *getAvailableDates.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAvailableDates.Request) (*getAvailableDates.Response, error) {
	f.lastReq = req
	return f.resp, f.err
}

func serve(uc *fakeUseCase, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/services/{serviceId}/available-dates", NewHandler(uc, nopLogger{}).Handle)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_OK(t *testing.T) {
	uc := &fakeUseCase{resp: &getAvailableDates.Response{
		ServiceID:       2,
		PurposeType:     domain.PurposeConstruction,
		Year:            2026,
		Month:           11,
		MaxBookableDate: time.Date(2027, 1, 19, 0, 0, 0, 0, time.UTC),
		UnavailableDates: []getAvailableDates.UnavailableDate{
			{Date: time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC), Reason: "non-operating weekday", State: domain.DayNonOperatingWeekday},
		},
	}}

	rec := serve(uc, "/api/v1/services/2/available-dates?purposeType=CONSTRUCTION&year=2026&month=11")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, 2026, uc.lastReq.Year)
	assert.Equal(t, 11, uc.lastReq.Month)

	var body AvailableDatesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2027-01-19", body.MaxBookableDate)
	require.Len(t, body.UnavailableDates, 1)
	assert.Equal(t, "2026-11-01", body.UnavailableDates[0].Date)
	assert.Equal(t, "NON_OPERATING_WEEKDAY", body.UnavailableDates[0].State)
}

func TestHandle_BadQuery(t *testing.T) {
	targets := []string{
		"/api/v1/services/x/available-dates?purposeType=ESTIMATE&year=2026&month=11",
		"/api/v1/services/2/available-dates?year=2026&month=11",
		"/api/v1/services/2/available-dates?purposeType=ESTIMATE&month=11",
		"/api/v1/services/2/available-dates?purposeType=ESTIMATE&year=2026&month=nov",
	}

	for _, target := range targets {
		uc := &fakeUseCase{}
		rec := serve(uc, target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		assert.Nil(t, uc.lastReq, target)
	}
}

func TestHandle_UseCaseErrors(t *testing.T) {
	target := "/api/v1/services/2/available-dates?purposeType=ESTIMATE&year=2026&month=11"

	assert.Equal(t, http.StatusBadRequest, serve(&fakeUseCase{err: getAvailableDates.ErrInvalidInput}, target).Code)
	assert.Equal(t, http.StatusUnprocessableEntity, serve(&fakeUseCase{err: getAvailableDates.ErrInvalidConfiguration}, target).Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&fakeUseCase{err: getAvailableDates.ErrInternal}, target).Code)
}
