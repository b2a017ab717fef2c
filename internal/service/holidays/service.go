package holidays

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sung-woo-jang/living-craft-backend/internal/domain"
	calendarRepo "github.com/sung-woo-jang/living-craft-backend/internal/infra/storage/calendar"
	overrideRepo "github.com/sung-woo-jang/living-craft-backend/internal/infra/storage/override"
	"github.com/sung-woo-jang/living-craft-backend/internal/service/holidays/models"
	"github.com/sung-woo-jang/living-craft-backend/pkg/ptr"
)

// Service сервис управления глобальными выходными и выходными услуг
// Выходные только добавляются и удаляются, диапазонов нет: каждая дата - отдельная запись
type Service struct {
	calendarRepo CalendarRepository
	overrideRepo OverrideRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса выходных
func NewService(calendarRepo CalendarRepository, overrideRepo OverrideRepository, logger Logger) *Service {
	return &Service{
		calendarRepo: calendarRepo,
		overrideRepo: overrideRepo,
		logger:       logger,
	}
}

// Create добавляет глобальный выходной или выходной услуги
func (s *Service) Create(ctx context.Context, req *models.CreateHolidayRequest) (*models.HolidayResponse, error) {
	s.logger.Info("Create: holiday date=%s service=%d by user=%d", req.Date, ptr.Deref(req.ServiceID, 0), req.UserID)

	date, err := parseDate(req.Date)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}
	if err := validateServiceID(req.ServiceID); err != nil {
		return nil, err
	}

	reason := strings.TrimSpace(req.Reason)
	if utf8.RuneCountInString(reason) > domain.MaxHolidayReasonLength {
		return nil, fmt.Errorf("%w: reason exceeds %d characters", ErrInvalidInput, domain.MaxHolidayReasonLength)
	}

	if req.ServiceID == nil {
		created, err := s.calendarRepo.CreateHoliday(ctx, &domain.Holiday{Date: date, Reason: reason})
		if err != nil {
			if errors.Is(err, calendarRepo.ErrDuplicateHoliday) {
				s.logger.Warn("Create: global holiday on %s already exists", req.Date)
				return nil, ErrHolidayAlreadyExists
			}
			s.logger.Error("Create: repository error: %v", err)
			return nil, fmt.Errorf("%w: Create - repository error: %w", ErrInternal, err)
		}
		s.logger.Info("Create: global holiday id=%d on %s created", created.ID, req.Date)
		resp := models.FromHoliday(created)
		return &resp, nil
	}

	created, err := s.overrideRepo.CreateServiceHoliday(ctx, &domain.ServiceHoliday{
		ServiceID: *req.ServiceID,
		Date:      date,
		Reason:    reason,
	})
	if err != nil {
		if errors.Is(err, overrideRepo.ErrDuplicateHoliday) {
			s.logger.Warn("Create: holiday on %s for service=%d already exists", req.Date, *req.ServiceID)
			return nil, ErrHolidayAlreadyExists
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("Create: service holiday id=%d on %s for service=%d created", created.ID, req.Date, *req.ServiceID)
	resp := models.FromServiceHoliday(created)
	return &resp, nil
}

// Delete удаляет глобальный выходной или выходной услуги
func (s *Service) Delete(ctx context.Context, req *models.DeleteHolidayRequest) error {
	s.logger.Info("Delete: holiday date=%s service=%d by user=%d", req.Date, ptr.Deref(req.ServiceID, 0), req.UserID)

	date, err := parseDate(req.Date)
	if err != nil {
		return err
	}
	if err := validateServiceID(req.ServiceID); err != nil {
		return err
	}

	if req.ServiceID == nil {
		err = s.calendarRepo.DeleteHoliday(ctx, date)
	} else {
		err = s.overrideRepo.DeleteServiceHoliday(ctx, *req.ServiceID, date)
	}

	if err != nil {
		if errors.Is(err, calendarRepo.ErrHolidayNotFound) || errors.Is(err, overrideRepo.ErrHolidayNotFound) {
			s.logger.Warn("Delete: holiday on %s not found", req.Date)
			return ErrHolidayNotFound
		}
		s.logger.Error("Delete: repository error: %v", err)
		return fmt.Errorf("%w: Delete - repository error: %w", ErrInternal, err)
	}

	return nil
}

// List возвращает глобальные выходные в диапазоне или все выходные услуги
func (s *Service) List(ctx context.Context, req *models.ListHolidaysRequest) (*models.HolidayListResponse, error) {
	if err := validateServiceID(req.ServiceID); err != nil {
		return nil, err
	}

	resp := &models.HolidayListResponse{Holidays: make([]models.HolidayResponse, 0)}

	if req.ServiceID != nil {
		list, err := s.overrideRepo.ListServiceHolidays(ctx, *req.ServiceID)
		if err != nil {
			s.logger.Error("List: service=%d repository error: %v", *req.ServiceID, err)
			return nil, fmt.Errorf("%w: List - repository error: %w", ErrInternal, err)
		}
		for _, h := range list {
			resp.Holidays = append(resp.Holidays, models.FromServiceHoliday(h))
		}
		return resp, nil
	}

	from, err := parseDate(req.From)
	if err != nil {
		return nil, err
	}
	to, err := parseDate(req.To)
	if err != nil {
		return nil, err
	}
	if to.Before(from) {
		return nil, fmt.Errorf("%w: 'to' must not be before 'from'", ErrInvalidInput)
	}

	list, err := s.calendarRepo.ListGlobalHolidays(ctx, domain.DateRange{From: from, To: to})
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %w", ErrInternal, err)
	}
	for _, h := range list {
		resp.Holidays = append(resp.Holidays, models.FromHoliday(h))
	}

	return resp, nil
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	date, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", ErrInvalidInput, s)
	}
	return date, nil
}

func validateServiceID(serviceID *int64) error {
	if serviceID != nil && *serviceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}
	return nil
}
