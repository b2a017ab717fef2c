package get_available_times

import (
	"time"

	"github.com/sung-woo-jang/living-craft-backend/internal/domain"
	getAvailableTimes "github.com/sung-woo-jang/living-craft-backend/internal/usecase/get_available_times"
)

// AvailableTimesResponse HTTP response model
type AvailableTimesResponse struct {
	Date           string          `json:"date"`
	ServiceID      int64           `json:"serviceId"`
	PurposeType    string          `json:"purposeType"`
	WeekdayLabel   string          `json:"weekdayLabel"`
	IsOperatingDay bool            `json:"isOperatingDay"`
	State          string          `json:"state"`
	DefaultTime    string          `json:"defaultTime"`
	Reason         string          `json:"reason,omitempty"`
	Slots          []AvailableTime `json:"slots"`
}

// AvailableTime модель временного слота
type AvailableTime struct {
	Time        string `json:"time"`
	IsTaken     bool   `json:"isTaken"`
	IsAvailable bool   `json:"isAvailable"`
	State       string `json:"state"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableTimes.Response) *AvailableTimesResponse {
	slots := make([]AvailableTime, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableTime{
			Time:        slot.Time.String(),
			IsTaken:     slot.IsTaken,
			IsAvailable: slot.IsAvailable,
			State:       string(slot.State),
		}
	}

	return &AvailableTimesResponse{
		Date:           resp.Date.Format(domain.DateFormat),
		ServiceID:      resp.ServiceID,
		PurposeType:    string(resp.PurposeType),
		WeekdayLabel:   resp.WeekdayLabel,
		IsOperatingDay: resp.IsOperatingDay,
		State:          string(resp.State),
		DefaultTime:    resp.DefaultTime.String(),
		Reason:         resp.Reason,
		Slots:          slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(serviceID int64, purposeType, dateStr string) (*getAvailableTimes.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableTimes.Request{
		ServiceID:   serviceID,
		PurposeType: purposeType,
		Date:        date,
	}, nil
}
