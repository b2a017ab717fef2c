package get_available_dates

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/sung-woo-jang/living-craft-backend/internal/api/handlers"
	getAvailableDates "github.com/sung-woo-jang/living-craft-backend/internal/usecase/get_available_dates"
)

const (
	msgInvalidServiceID   = "некорректный ID услуги"
	msgMissingPurposeType = "вид выезда обязателен"
	msgMissingYearMonth   = "год и месяц обязательны"
	msgInvalidYearMonth   = "некорректный год или месяц"
	msgInvalidInput       = "некорректные параметры запроса"
	msgInvalidSchedule    = "расписание услуги настроено некорректно"
)

type Handler struct {
	useCase GetAvailableDatesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/services/{serviceId}/available-dates
// Query params: purposeType, year, month (все обязательны)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceID, err := strconv.ParseInt(mux.Vars(r)["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /services/{id}/available-dates - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	query := r.URL.Query()
	purposeType := query.Get("purposeType")
	if purposeType == "" {
		h.logger.Warn("GET /services/{id}/available-dates - Missing purpose type")
		handlers.RespondBadRequest(w, msgMissingPurposeType)
		return
	}

	yearStr, monthStr := query.Get("year"), query.Get("month")
	if yearStr == "" || monthStr == "" {
		h.logger.Warn("GET /services/{id}/available-dates - Missing year or month")
		handlers.RespondBadRequest(w, msgMissingYearMonth)
		return
	}

	useCaseReq, err := ToUseCaseRequest(serviceID, purposeType, yearStr, monthStr)
	if err != nil {
		h.logger.Warn("GET /services/{id}/available-dates - Invalid year/month: %v", err)
		handlers.RespondBadRequest(w, msgInvalidYearMonth)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableDates.ErrInvalidInput):
			h.logger.Warn("GET /services/{id}/available-dates - Invalid input: service_id=%d, error=%v", serviceID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getAvailableDates.ErrInvalidConfiguration):
			h.logger.Error("GET /services/{id}/available-dates - Broken schedule: service_id=%d, error=%v", serviceID, err)
			handlers.RespondUnprocessable(w, msgInvalidSchedule)

		default:
			h.logger.Error("GET /services/{id}/available-dates - Failed to get dates: service_id=%d, error=%v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /services/{id}/available-dates - OK: service_id=%d, month=%s-%s, unavailable=%d",
		serviceID, yearStr, monthStr, len(result.UnavailableDates))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
