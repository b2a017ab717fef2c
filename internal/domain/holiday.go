package domain

import "time"

// Holiday глобальный выходной день
type Holiday struct {
	ID        int64
	Date      time.Time
	Reason    string
	CreatedAt time.Time
}

// ServiceHoliday выходной день конкретной услуги
type ServiceHoliday struct {
	ID        int64
	ServiceID int64
	Date      time.Time
	Reason    string
	CreatedAt time.Time
}

// DateRange диапазон дат включительно
type DateRange struct {
	From time.Time
	To   time.Time
}
