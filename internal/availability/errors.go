package availability

import "errors"

var (
	// ErrInvalidSlotDuration возвращается, когда длительность слота из конфигурации не положительна
	ErrInvalidSlotDuration = errors.New("availability: slot duration must be positive")

	// ErrInvalidConfiguration возвращается, когда эффективная конфигурация не задана или повреждена
	ErrInvalidConfiguration = errors.New("availability: invalid effective configuration")
)
