package get_available_times

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/sung-woo-jang/living-craft-backend/internal/api/handlers"
	getAvailableTimes "github.com/sung-woo-jang/living-craft-backend/internal/usecase/get_available_times"
)

const (
	msgInvalidServiceID   = "некорректный ID услуги"
	msgMissingPurposeType = "вид выезда обязателен"
	msgMissingDate        = "дата обязательна"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные параметры запроса"
	msgInvalidSchedule    = "расписание услуги настроено некорректно"
)

type Handler struct {
	useCase GetAvailableTimesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableTimesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/services/{serviceId}/available-times
// Query params: purposeType (required), date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceID, err := strconv.ParseInt(mux.Vars(r)["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /services/{id}/available-times - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	purposeType := r.URL.Query().Get("purposeType")
	if purposeType == "" {
		h.logger.Warn("GET /services/{id}/available-times - Missing purpose type")
		handlers.RespondBadRequest(w, msgMissingPurposeType)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /services/{id}/available-times - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(serviceID, purposeType, dateStr)
	if err != nil {
		h.logger.Warn("GET /services/{id}/available-times - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableTimes.ErrInvalidInput):
			h.logger.Warn("GET /services/{id}/available-times - Invalid input: service_id=%d, error=%v", serviceID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getAvailableTimes.ErrInvalidConfiguration):
			h.logger.Error("GET /services/{id}/available-times - Broken schedule: service_id=%d, error=%v", serviceID, err)
			handlers.RespondUnprocessable(w, msgInvalidSchedule)

		default:
			h.logger.Error("GET /services/{id}/available-times - Failed to get times: service_id=%d, error=%v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /services/{id}/available-times - OK: service_id=%d, date=%s, operating=%t, slots_count=%d",
		serviceID, dateStr, result.IsOperatingDay, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
