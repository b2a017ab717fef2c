package list_holidays

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/sung-woo-jang/living-craft-backend/internal/api/handlers"
	"github.com/sung-woo-jang/living-craft-backend/internal/service/holidays"
	"github.com/sung-woo-jang/living-craft-backend/internal/service/holidays/models"
	"github.com/sung-woo-jang/living-craft-backend/pkg/ptr"
)

const (
	msgInvalidServiceID = "некорректный ID услуги"
	msgInvalidRange     = "некорректный диапазон дат, ожидаются from и to в формате YYYY-MM-DD"
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

// Handle GET /api/v1/holidays?from=YYYY-MM-DD&to=YYYY-MM-DD
// Handle GET /api/v1/services/{serviceId}/holidays
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListHolidaysRequest{
		From: r.URL.Query().Get("from"),
		To:   r.URL.Query().Get("to"),
	}

	if raw := mux.Vars(r)["serviceId"]; raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET holidays - Invalid service ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidServiceID)
			return
		}
		req.ServiceID = &id
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, holidays.ErrInvalidInput) {
			h.logger.Warn("GET holidays - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)
			return
		}
		h.logger.Error("GET holidays - Failed to list holidays: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET holidays - OK: service_id=%d, count=%d", ptr.Deref(req.ServiceID, 0), len(result.Holidays))
	handlers.RespondJSON(w, http.StatusOK, result)
}
