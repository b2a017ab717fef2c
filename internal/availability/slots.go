package availability

import (
	"fmt"
	"time"

	"github.com/sung-woo-jang/living-craft-backend/internal/domain"
	"github.com/sung-woo-jang/living-craft-backend/pkg/types"
)

// GenerateSlots разворачивает окно [start, end) с шагом durationMinutes в список меток HH:MM
// Слот создается, только если визит целиком умещается в окно: start + duration <= end.
// При start >= end возвращается пустой список.
func GenerateSlots(start, end types.TimeString, durationMinutes int) ([]types.TimeString, error) {
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSlotDuration, durationMinutes)
	}

	startMin, err := start.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: start time: %v", ErrInvalidConfiguration, err)
	}
	endMin, err := end.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: end time: %v", ErrInvalidConfiguration, err)
	}

	slots := make([]types.TimeString, 0)
	for m := startMin; m+durationMinutes <= endMin; m += durationMinutes {
		label, err := types.NewTimeStringFromMinutes(m)
		if err != nil {
			return nil, err
		}
		slots = append(slots, label)
	}

	return slots, nil
}

// SlotAvailability состояние одного слота на конкретную дату
type SlotAvailability struct {
	Time        types.TimeString
	IsTaken     bool
	IsAvailable bool
	State       domain.SlotState
}

// MarkSlots помечает слоты занятыми (есть бронь на это время) или прошедшими
// (момент начала слота не строго позже now). Занятость имеет приоритет над истечением.
func MarkSlots(date, now time.Time, labels []types.TimeString, reserved []types.TimeString) ([]SlotAvailability, error) {
	taken := make(map[int]struct{}, len(reserved))
	for _, r := range reserved {
		m, err := r.Minutes()
		if err != nil {
			// битую запись в журнале бронирований пропускаем: она не может совпасть ни с одним слотом
			continue
		}
		taken[m] = struct{}{}
	}

	result := make([]SlotAvailability, 0, len(labels))
	for _, label := range labels {
		m, err := label.Minutes()
		if err != nil {
			return nil, err
		}
		startsAt, err := label.On(date)
		if err != nil {
			return nil, err
		}

		slot := SlotAvailability{Time: label, State: domain.SlotFree, IsAvailable: true}
		if _, ok := taken[m]; ok {
			slot.IsTaken = true
			slot.IsAvailable = false
			slot.State = domain.SlotTaken
		} else if !startsAt.After(now) {
			slot.IsAvailable = false
			slot.State = domain.SlotElapsed
		}
		result = append(result, slot)
	}

	return result, nil
}

// DefaultTime время первого свободного слота или пустое значение, если свободных нет
func DefaultTime(slots []SlotAvailability) types.TimeString {
	for _, s := range slots {
		if s.State == domain.SlotFree {
			return s.Time
		}
	}
	return ""
}

// CheckConfiguration проверяет целостность итоговой конфигурации перед расчетом доступности
// Неположительная длительность слота и битое время - ошибка конфигурации, а не "дата недоступна"
func CheckConfiguration(cfg *domain.EffectiveConfiguration) error {
	if cfg == nil {
		return fmt.Errorf("%w: configuration is missing", ErrInvalidConfiguration)
	}
	if cfg.SlotDurationMinutes <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSlotDuration, cfg.SlotDurationMinutes)
	}
	if err := cfg.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: start time: %v", ErrInvalidConfiguration, err)
	}
	if err := cfg.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: end time: %v", ErrInvalidConfiguration, err)
	}
	return nil
}
