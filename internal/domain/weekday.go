package domain

import (
	"fmt"
	"strings"
	"time"
)

// Коды дней недели, в которых хранятся наборы дней в конфигурации
const (
	CodeSunday    = "sun"
	CodeMonday    = "mon"
	CodeTuesday   = "tue"
	CodeWednesday = "wed"
	CodeThursday  = "thu"
	CodeFriday    = "fri"
	CodeSaturday  = "sat"
)

var weekdayCodes = [7]string{CodeSunday, CodeMonday, CodeTuesday, CodeWednesday, CodeThursday, CodeFriday, CodeSaturday}

// WeekdayCode возвращает код дня недели ("mon", "tue", ...)
func WeekdayCode(d time.Weekday) string {
	return weekdayCodes[d]
}

// ParseWeekday разбирает код дня недели
func ParseWeekday(code string) (time.Weekday, error) {
	c := strings.ToLower(strings.TrimSpace(code))
	for i, known := range weekdayCodes {
		if known == c {
			return time.Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownWeekday, code)
}

// WeekdaySet набор дней недели (бит i соответствует time.Weekday(i))
type WeekdaySet uint8

const (
	// NoWeekdays пустой набор
	NoWeekdays WeekdaySet = 0
	// AllWeekdays все семь дней
	AllWeekdays WeekdaySet = 1<<7 - 1
	// WorkWeek понедельник - пятница
	WorkWeek = WeekdaySet(1<<time.Monday | 1<<time.Tuesday | 1<<time.Wednesday | 1<<time.Thursday | 1<<time.Friday)
	// Weekend суббота и воскресенье
	Weekend = WeekdaySet(1<<time.Saturday | 1<<time.Sunday)
)

// NewWeekdaySet создает набор из дней недели
func NewWeekdaySet(days ...time.Weekday) WeekdaySet {
	var s WeekdaySet
	for _, d := range days {
		s = s.With(d)
	}
	return s
}

// ParseWeekdaySet разбирает список кодов дней недели
func ParseWeekdaySet(codes []string) (WeekdaySet, error) {
	var s WeekdaySet
	for _, code := range codes {
		d, err := ParseWeekday(code)
		if err != nil {
			return NoWeekdays, err
		}
		s = s.With(d)
	}
	return s, nil
}

// Contains возвращает true, если день входит в набор
func (s WeekdaySet) Contains(d time.Weekday) bool {
	return s&(1<<d) != 0
}

// With возвращает набор с добавленным днем
func (s WeekdaySet) With(d time.Weekday) WeekdaySet {
	return s | 1<<d
}

// Without возвращает набор без дней из other
func (s WeekdaySet) Without(other WeekdaySet) WeekdaySet {
	return s &^ other
}

// IsEmpty возвращает true для пустого набора
func (s WeekdaySet) IsEmpty() bool {
	return s&AllWeekdays == 0
}

// Codes возвращает коды дней в порядке sun..sat
func (s WeekdaySet) Codes() []string {
	codes := make([]string, 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s.Contains(d) {
			codes = append(codes, weekdayCodes[d])
		}
	}
	return codes
}

func (s WeekdaySet) String() string {
	return "[" + strings.Join(s.Codes(), ",") + "]"
}
