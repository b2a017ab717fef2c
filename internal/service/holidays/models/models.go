package models

import (
	"time"

	"github.com/sung-woo-jang/living-craft-backend/internal/domain"
)

// Request модели

// CreateHolidayRequest запрос на добавление выходного
// ServiceID nil - глобальный выходной
type CreateHolidayRequest struct {
	UserID    int64  `json:"-"`
	ServiceID *int64 `json:"-"`
	Date      string `json:"date"`
	Reason    string `json:"reason"`
}

// DeleteHolidayRequest запрос на удаление выходного
type DeleteHolidayRequest struct {
	UserID    int64
	ServiceID *int64
	Date      string
}

// ListHolidaysRequest запрос списка выходных
// Для глобальных выходных From и To обязательны, для выходных услуги игнорируются
type ListHolidaysRequest struct {
	ServiceID *int64
	From      string
	To        string
}

// Response модели

// HolidayResponse выходной день
type HolidayResponse struct {
	ID        int64     `json:"id"`
	ServiceID *int64    `json:"serviceId,omitempty"`
	Date      string    `json:"date"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"createdAt"`
}

// HolidayListResponse список выходных
type HolidayListResponse struct {
	Holidays []HolidayResponse `json:"holidays"`
}

// Методы конвертации

// FromHoliday конвертирует глобальный выходной в DTO
func FromHoliday(h *domain.Holiday) HolidayResponse {
	return HolidayResponse{
		ID:        h.ID,
		Date:      h.Date.Format(domain.DateFormat),
		Reason:    h.Reason,
		CreatedAt: h.CreatedAt,
	}
}

// FromServiceHoliday конвертирует выходной услуги в DTO
func FromServiceHoliday(h *domain.ServiceHoliday) HolidayResponse {
	serviceID := h.ServiceID
	return HolidayResponse{
		ID:        h.ID,
		ServiceID: &serviceID,
		Date:      h.Date.Format(domain.DateFormat),
		Reason:    h.Reason,
		CreatedAt: h.CreatedAt,
	}
}
