package get_service_schedule

import (
	"github.com/sung-woo-jang/living-craft-backend/internal/service/schedule/models"
)

// ToServiceRequest формирует запрос к сервису из URL и query параметров
// purposeType опционален: без него возвращаются оба вида выезда
func ToServiceRequest(serviceID int64, purposeType string) *models.GetScheduleRequest {
	return &models.GetScheduleRequest{
		ServiceID:   serviceID,
		PurposeType: purposeType,
	}
}
