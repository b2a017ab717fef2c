package create_holiday

import (
	"strconv"

	"github.com/sung-woo-jang/living-craft-backend/internal/service/holidays/models"
)

// CreateHolidayRequest HTTP request model
type CreateHolidayRequest struct {
	Date   string `json:"date"`
	Reason string `json:"reason"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CreateHolidayRequest) ToServiceRequest(userID int64, serviceID *int64) *models.CreateHolidayRequest {
	return &models.CreateHolidayRequest{
		UserID:    userID,
		ServiceID: serviceID,
		Date:      r.Date,
		Reason:    r.Reason,
	}
}

// parseServiceID разбирает необязательный serviceId из URL
// Пустая строка - маршрут глобальных выходных
func parseServiceID(raw string) (*int64, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
