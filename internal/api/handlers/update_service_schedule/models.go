package update_service_schedule

import (
	"github.com/sung-woo-jang/living-craft-backend/internal/service/schedule/models"
)

// UpdateServiceScheduleRequest HTTP request model
// Ключи schedules: ESTIMATE, CONSTRUCTION
type UpdateServiceScheduleRequest struct {
	BookingHorizonMonths *int                                   `json:"bookingHorizonMonths,omitempty"`
	Schedules            map[string]models.PurposeScheduleInput `json:"schedules"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateServiceScheduleRequest) ToServiceRequest(userID, serviceID int64) *models.UpdateScheduleRequest {
	return &models.UpdateScheduleRequest{
		UserID:               userID,
		ServiceID:            serviceID,
		BookingHorizonMonths: r.BookingHorizonMonths,
		Schedules:            r.Schedules,
	}
}
