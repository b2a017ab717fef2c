package override

import "errors"

var (
	// ErrOverrideNotFound возвращается, когда у услуги нет собственных настроек расписания
	ErrOverrideNotFound = errors.New("override.repository: service schedule not found")

	// ErrHolidayNotFound возвращается, когда выходной услуги на дату не найден
	ErrHolidayNotFound = errors.New("override.repository: service holiday not found")

	// ErrDuplicateHoliday возвращается при попытке добавить второй выходной услуги на ту же дату
	ErrDuplicateHoliday = errors.New("override.repository: service holiday already exists for date")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("override.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("override.repository: failed to execute query")

	// ErrCorruptOverride возвращается, когда сохраненное переопределение не разбирается (режим, дни недели, время)
	ErrCorruptOverride = errors.New("override.repository: corrupt service schedule override")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("override.repository: failed to scan row")
)
