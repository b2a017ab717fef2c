package get_available_times

import (
	"fmt"

	"github.com/sung-woo-jang/living-craft-backend/internal/domain"
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

	if req.Date.IsZero() {
		return "", fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return purpose, nil
}
