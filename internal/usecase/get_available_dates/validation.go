package get_available_dates

import (
	"fmt"

	"github.com/sung-woo-jang/living-craft-backend/internal/domain"
)

const (
	minYear = 2000
	maxYear = 2100
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) (domain.PurposeType, error) {
	if req.ServiceID <= 0 {
		return "", fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	purpose, err := domain.ParsePurposeType(req.PurposeType)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if req.Month < 1 || req.Month > 12 {
		return "", fmt.Errorf("%w: month must be between 1 and 12, got %d", ErrInvalidInput, req.Month)
	}

	if req.Year < minYear || req.Year > maxYear {
		return "", fmt.Errorf("%w: year must be between %d and %d, got %d", ErrInvalidInput, minYear, maxYear, req.Year)
	}

	return purpose, nil
}
