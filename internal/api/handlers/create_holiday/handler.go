package create_holiday

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sung-woo-jang/living-craft-backend/internal/api/handlers"
	"github.com/sung-woo-jang/living-craft-backend/internal/api/middleware"
	"github.com/sung-woo-jang/living-craft-backend/internal/service/holidays"
	"github.com/sung-woo-jang/living-craft-backend/pkg/ptr"
)

const (
	msgInvalidServiceID   = "некорректный ID услуги"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidData        = "некорректные данные выходного"
	msgAlreadyExists      = "выходной на эту дату уже существует"
)

type Handler struct {
	service HolidayService
	logger  Logger
}

func NewHandler(service HolidayService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/holidays
// Handle POST /api/v1/services/{serviceId}/holidays
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceID, err := parseServiceID(mux.Vars(r)["serviceId"])
	if err != nil {
		h.logger.Warn("POST holidays - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST holidays - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateHolidayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST holidays - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest(userID, serviceID))
	if err != nil {
		switch {
		case errors.Is(err, holidays.ErrInvalidInput):
			h.logger.Warn("POST holidays - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, holidays.ErrHolidayAlreadyExists):
			h.logger.Warn("POST holidays - Duplicate: date=%s, service_id=%d", req.Date, ptr.Deref(serviceID, 0))
			handlers.RespondConflict(w, msgAlreadyExists)

		default:
			h.logger.Error("POST holidays - Failed to create holiday: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST holidays - Holiday created: id=%d, date=%s, user_id=%d", result.ID, result.Date, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
