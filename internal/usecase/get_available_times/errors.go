package get_available_times

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных (дата, вид выезда)
	ErrInvalidInput = errors.New("get_available_times: invalid input data")

	// ErrInvalidConfiguration возвращается, когда сохраненная конфигурация расписания повреждена
	ErrInvalidConfiguration = errors.New("get_available_times: invalid schedule configuration")

	// ErrInternal возвращается при ошибках хранилищ
	ErrInternal = errors.New("get_available_times: internal error")
)
