package delete_holiday

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/sung-woo-jang/living-craft-backend/internal/api/handlers"
	"github.com/sung-woo-jang/living-craft-backend/internal/api/middleware"
	"github.com/sung-woo-jang/living-craft-backend/internal/service/holidays"
	"github.com/sung-woo-jang/living-craft-backend/internal/service/holidays/models"
	"github.com/sung-woo-jang/living-craft-backend/pkg/ptr"
)

const (
	msgInvalidServiceID = "некорректный ID услуги"
	msgMissingUserID    = "отсутствует ID пользователя"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgNotFound         = "выходной не найден"
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

// Handle DELETE /api/v1/holidays/{date}
// Handle DELETE /api/v1/services/{serviceId}/holidays/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var serviceID *int64
	if raw := vars["serviceId"]; raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("DELETE holidays/{date} - Invalid service ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidServiceID)
			return
		}
		serviceID = &id
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE holidays/{date} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	err := h.service.Delete(r.Context(), &models.DeleteHolidayRequest{
		UserID:    userID,
		ServiceID: serviceID,
		Date:      vars["date"],
	})
	if err != nil {
		switch {
		case errors.Is(err, holidays.ErrInvalidInput):
			h.logger.Warn("DELETE holidays/{date} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, holidays.ErrHolidayNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE holidays/{date} - Failed to delete holiday: date=%s, error=%v", vars["date"], err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE holidays/{date} - Holiday deleted: date=%s, service_id=%d, user_id=%d",
		vars["date"], ptr.Deref(serviceID, 0), userID)
	handlers.RespondNoContent(w)
}
