package get_service_schedule

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/sung-woo-jang/living-craft-backend/internal/service/schedule"
	"github.com/sung-woo-jang/living-craft-backend/internal/service/schedule/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	err error
}

func (f *fakeService) GetSchedule(_ context.Context, req *models.GetScheduleRequest) (*models.ScheduleResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.ScheduleResponse{ServiceID: req.ServiceID, BookingHorizonMonths: 3}, nil
}

func get(svc *fakeService, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/services/{serviceId}/schedule", NewHandler(svc, nopLogger{}).Handle)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_Statuses(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		svcErr     error
		wantStatus int
	}{
		{name: "ok", target: "/api/v1/services/3/schedule", wantStatus: http.StatusOK},
		{name: "bad service id", target: "/api/v1/services/three/schedule", wantStatus: http.StatusBadRequest},
		{name: "invalid purpose", target: "/api/v1/services/3/schedule?purposeType=REPAIR", svcErr: schedule.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{
			name:       "corrupt stored schedule",
			target:     "/api/v1/services/3/schedule",
			svcErr:     fmt.Errorf("%w: unknown mode", schedule.ErrInvalidConfiguration),
			wantStatus: http.StatusUnprocessableEntity,
		},
		{name: "internal", target: "/api/v1/services/3/schedule", svcErr: schedule.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(&fakeService{err: tt.svcErr}, tt.target)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
