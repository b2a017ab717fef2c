package get_available_dates

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных параметрах запроса
	ErrInvalidInput = errors.New("get_available_dates: invalid input data")

	// ErrInvalidConfiguration возвращается, когда сохраненное расписание услуги некорректно
	ErrInvalidConfiguration = errors.New("get_available_dates: invalid schedule configuration")

	// ErrInternal возвращается при ошибках хранилищ
	ErrInternal = errors.New("get_available_dates: internal error")
)
