package calendar

import "errors"

var (
	// ErrWindowNotFound возвращается, когда глобальное окно для вида выезда не задано
	ErrWindowNotFound = errors.New("calendar.repository: operating window not found")

	// ErrHolidayNotFound возвращается, когда выходной на дату не найден
	ErrHolidayNotFound = errors.New("calendar.repository: holiday not found")

	// ErrDuplicateHoliday возвращается при попытке добавить второй выходной на ту же дату
	ErrDuplicateHoliday = errors.New("calendar.repository: holiday already exists for date")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("calendar.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("calendar.repository: failed to execute query")

	// ErrCorruptWindow возвращается, когда сохраненное глобальное окно не разбирается
	ErrCorruptWindow = errors.New("calendar.repository: corrupt operating window")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("calendar.repository: failed to scan row")
)
