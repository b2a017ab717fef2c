package holidays

import "errors"

var (
	// ErrHolidayNotFound возвращается, когда выходной на дату не найден
	ErrHolidayNotFound = errors.New("holiday not found")

	// ErrHolidayAlreadyExists возвращается, когда на дату уже есть выходной
	ErrHolidayAlreadyExists = errors.New("holiday already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
