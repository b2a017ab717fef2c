package domain

import "errors"

var (
	// ErrUnknownPurposeType возвращается для неизвестного вида выезда
	ErrUnknownPurposeType = errors.New("domain: unknown purpose type")

	// ErrUnknownScheduleMode возвращается для неизвестного режима расписания
	ErrUnknownScheduleMode = errors.New("domain: unknown schedule mode")

	// ErrUnknownWeekday возвращается для неизвестного кода дня недели
	ErrUnknownWeekday = errors.New("domain: unknown weekday code")

	// ErrInvalidTimeRange возвращается, когда startTime не раньше endTime
	ErrInvalidTimeRange = errors.New("domain: invalid time range")

	// ErrInvalidSlotDuration возвращается для недопустимой длительности слота
	ErrInvalidSlotDuration = errors.New("domain: invalid slot duration")

	// ErrInvalidHorizon возвращается для недопустимого горизонта бронирования
	ErrInvalidHorizon = errors.New("domain: invalid booking horizon")
)
