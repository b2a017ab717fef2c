package availability

import "time"

// DateOnly возвращает полночь календарного дня t в локации loc
func DateOnly(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = t.Location()
	}
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// AsDate переносит календарную дату (год, месяц, день) в локацию loc без сдвига по часам
// В отличие от DateOnly не переводит момент времени между часовыми поясами
func AsDate(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// AddMonths прибавляет месяцы к дате, прижимая день к последнему дню целевого месяца
// 31 января + 1 месяц = 28 (29) февраля
func AddMonths(date time.Time, months int) time.Time {
	y, m, d := date.Date()
	firstOfTarget := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, date.Location())
	last := daysIn(firstOfTarget.Year(), firstOfTarget.Month(), date.Location())
	if d > last {
		d = last
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), d, 0, 0, 0, 0, date.Location())
}

// MaxBookableDate последняя дата, доступная для бронирования: сегодня + горизонт (включительно)
func MaxBookableDate(now time.Time, horizonMonths int) time.Time {
	return AddMonths(DateOnly(now, now.Location()), horizonMonths)
}

// MonthDates возвращает все даты месяца по порядку, включая первую и последнюю
func MonthDates(year int, month time.Month, loc *time.Location) []time.Time {
	n := daysIn(year, month, loc)
	dates := make([]time.Time, 0, n)
	for day := 1; day <= n; day++ {
		dates = append(dates, time.Date(year, month, day, 0, 0, 0, 0, loc))
	}
	return dates
}

// MonthRange возвращает первый и последний день месяца
func MonthRange(year int, month time.Month, loc *time.Location) (time.Time, time.Time) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	last := time.Date(year, month, daysIn(year, month, loc), 0, 0, 0, 0, loc)
	return first, last
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}
