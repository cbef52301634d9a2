package update_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/RBM-ScheduleService/internal/domain"
	reservationRepo "github.com/m04kA/RBM-ScheduleService/internal/infra/storage/reservation"
	venueRepo "github.com/m04kA/RBM-ScheduleService/internal/infra/storage/venue"
)

// UseCase use case сохранения правок из редактора бронирования.
// Частичное обновление: меняются только присланные поля, конкурентные
// правки разрешаются по принципу last-write-wins.
type UseCase struct {
	reservationRepo ReservationRepository
	venueRepo       VenueRepository
	scheduleCache   ScheduleCache
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	venueRepo VenueRepository,
	scheduleCache ScheduleCache,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		venueRepo:       venueRepo,
		scheduleCache:   scheduleCache,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case обновления бронирования.
// Обновление полей и замена персонала идут в одной сериализуемой транзакции,
// бронь внутри транзакции перечитывается для проверки итогового интервала.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateReservation: user=%d, reservation=%d", req.UserID, req.ReservationID)

	// 1. Валидация входных данных и сборка частичного обновления
	update, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("UpdateReservation: validation failed: %v", err)
		return nil, err
	}

	var current *domain.Reservation

	// 2. Обновление в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		current, err = uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		// 2.1. Итоговый интервал после слияния должен остаться валидным
		if err := validateTimeRange(current, update); err != nil {
			return err
		}

		// 2.2. Перенос в другой зал - только в пределах того же ресторана
		if update.VenueID != nil {
			venue, err := uc.venueRepo.GetByID(txCtx, *update.VenueID)
			if err != nil {
				if errors.Is(err, venueRepo.ErrVenueNotFound) {
					return ErrVenueNotFound
				}
				return fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
			}
			if venue.RestaurantID != current.RestaurantID {
				return ErrVenueMismatch
			}
		}

		if !update.IsEmpty() {
			if err := uc.reservationRepo.UpdateFields(txCtx, req.ReservationID, update); err != nil {
				if errors.Is(err, reservationRepo.ErrReservationNotFound) {
					return ErrReservationNotFound
				}
				return fmt.Errorf("%w: failed to update reservation: %v", ErrInternal, err)
			}
		}

		if req.ReplaceStaff {
			if err := uc.reservationRepo.ReplaceStaff(txCtx, req.ReservationID, toDomainStaff(req.Staff)); err != nil {
				return fmt.Errorf("%w: failed to replace staff: %v", ErrInternal, err)
			}
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrReservationNotFound) || errors.Is(err, ErrVenueNotFound) ||
			errors.Is(err, ErrVenueMismatch) || errors.Is(err, ErrInvalidTimeRange) {
			uc.logger.Warn("UpdateReservation: reservation=%d rejected: %v", req.ReservationID, err)
			return nil, err
		}
		uc.logger.Error("UpdateReservation: transaction failed for reservation=%d: %v", req.ReservationID, err)
		return nil, err
	}

	// 3. Инвалидируем кэш старого и нового дня
	uc.invalidateCache(ctx, current, update)

	// 4. Собираем ответ из слияния текущего состояния и обновления
	resp := buildResponse(current, update, uc.timeProvider.Now())

	uc.logger.Info("UpdateReservation: updated reservation id=%d", req.ReservationID)
	return resp, nil
}

// invalidateCache сбрасывает кэш расписания затронутых дней.
// Перенос брони на другую дату пачкает оба дня.
func (uc *UseCase) invalidateCache(ctx context.Context, current *domain.Reservation, update domain.ReservationUpdate) {
	if err := uc.scheduleCache.Invalidate(ctx, current.RestaurantID, current.Date); err != nil {
		uc.logger.Warn("UpdateReservation: cache invalidation failed: %v", err)
	}

	if update.Date != nil && !update.Date.Equal(current.Date) {
		if err := uc.scheduleCache.Invalidate(ctx, current.RestaurantID, *update.Date); err != nil {
			uc.logger.Warn("UpdateReservation: cache invalidation failed for new date: %v", err)
		}
	}
}

// buildResponse собирает ответ из состояния до обновления и примененных полей
func buildResponse(current *domain.Reservation, update domain.ReservationUpdate, now time.Time) *Response {
	status := current.Status
	if update.Status != nil {
		status = *update.Status
	}

	date := current.Date
	if update.Date != nil {
		date = *update.Date
	}

	start := current.StartTime
	if update.StartTime != nil {
		start = *update.StartTime
	}

	end := current.EndTime
	if update.EndTime != nil {
		end = *update.EndTime
	}

	return &Response{
		ID:        current.ID,
		Status:    string(status),
		Date:      date.Format(domain.DateFormat),
		StartTime: start.String(),
		EndTime:   end.String(),
		UpdatedAt: now.Format(time.RFC3339),
	}
}

// toDomainStaff конвертирует назначения запроса в domain модели
func toDomainStaff(staff []StaffInput) []domain.StaffAssignment {
	out := make([]domain.StaffAssignment, 0, len(staff))
	for _, a := range staff {
		out = append(out, domain.StaffAssignment{
			UserID:          a.UserID,
			TempName:        a.TempName,
			Role:            domain.StaffRole(a.Role),
			DurationMinutes: a.DurationMinutes,
		})
	}
	return out
}
