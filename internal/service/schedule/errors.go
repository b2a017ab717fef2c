package schedule

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("schedule: invalid input data")

	// ErrInvalidConfiguration возвращается, когда сохраненное расписание не разбирается
	ErrInvalidConfiguration = errors.New("schedule: invalid stored configuration")

	// ErrInternal возвращается при ошибках хранилищ
	ErrInternal = errors.New("schedule: internal error")
)
