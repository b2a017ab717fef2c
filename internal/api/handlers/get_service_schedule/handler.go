package get_service_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/sung-woo-jang/living-craft-backend/internal/api/handlers"
	"github.com/sung-woo-jang/living-craft-backend/internal/service/schedule"
)

const (
	msgInvalidServiceID = "некорректный ID услуги"
	msgInvalidSchedule  = "расписание услуги настроено некорректно"
	msgInvalidParams    = "некорректные параметры запроса"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/services/{serviceId}/schedule
// Query params: purposeType (опционально)
// Публичный endpoint - без авторизации. Отсутствие настроек не ошибка: отдаются значения по умолчанию
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceID, err := strconv.ParseInt(mux.Vars(r)["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /services/{id}/schedule - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	serviceReq := ToServiceRequest(serviceID, r.URL.Query().Get("purposeType"))

	result, err := h.service.GetSchedule(r.Context(), serviceReq)
	if err != nil {
		if errors.Is(err, schedule.ErrInvalidInput) {
			h.logger.Warn("GET /services/{id}/schedule - Invalid parameters: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		if errors.Is(err, schedule.ErrInvalidConfiguration) {
			h.logger.Error("GET /services/{id}/schedule - Stored schedule is corrupt: service_id=%d, error=%v",
				serviceID, err)
			handlers.RespondUnprocessable(w, msgInvalidSchedule)
			return
		}

		h.logger.Error("GET /services/{id}/schedule - Failed to get schedule: service_id=%d, error=%v",
			serviceID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /services/{id}/schedule - Schedule retrieved successfully: service_id=%d", serviceID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
