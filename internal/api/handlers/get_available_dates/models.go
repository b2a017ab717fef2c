package get_available_dates

import (
	"strconv"

	"github.com/sung-woo-jang/living-craft-backend/internal/domain"
	getAvailableDates "github.com/sung-woo-jang/living-craft-backend/internal/usecase/get_available_dates"
)

// AvailableDatesResponse HTTP response model
type AvailableDatesResponse struct {
	ServiceID        int64             `json:"serviceId"`
	PurposeType      string            `json:"purposeType"`
	Year             int               `json:"year"`
	Month            int               `json:"month"`
	MaxBookableDate  string            `json:"maxBookableDate"`
	UnavailableDates []UnavailableDate `json:"unavailableDates"`
}

// UnavailableDate исключенная дата
type UnavailableDate struct {
	Date   string `json:"date"`
	Reason string `json:"reason"`
	State  string `json:"state"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableDates.Response) *AvailableDatesResponse {
	dates := make([]UnavailableDate, len(resp.UnavailableDates))
	for i, d := range resp.UnavailableDates {
		dates[i] = UnavailableDate{
			Date:   d.Date.Format(domain.DateFormat),
			Reason: d.Reason,
			State:  string(d.State),
		}
	}

	return &AvailableDatesResponse{
		ServiceID:        resp.ServiceID,
		PurposeType:      string(resp.PurposeType),
		Year:             resp.Year,
		Month:            resp.Month,
		MaxBookableDate:  resp.MaxBookableDate.Format(domain.DateFormat),
		UnavailableDates: dates,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(serviceID int64, purposeType, yearStr, monthStr string) (*getAvailableDates.Request, error) {
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return nil, err
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableDates.Request{
		ServiceID:   serviceID,
		PurposeType: purposeType,
		Year:        year,
		Month:       month,
	}, nil
}
