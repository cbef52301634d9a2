package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/RBM-ScheduleService/internal/domain"
	venueRepo "github.com/m04kA/RBM-ScheduleService/internal/infra/storage/venue"
)

// UseCase use case для создания бронирования из формы банкета
type UseCase struct {
	reservationRepo ReservationRepository
	venueRepo       VenueRepository
	scheduleCache   ScheduleCache
	txManager       TransactionManager
	logger          Logger
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
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования.
// Бронирование, назначения персонала и позиции меню вставляются
// в одной сериализуемой транзакции.
//
// Пересечения с другими бронями зала не проверяются: накладки
// видны на сетке и разруливаются оператором.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: user=%d, restaurant=%d, date=%s, time=%s-%s",
		req.UserID, req.RestaurantID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных, строгий парсинг времени
	start, end, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем зал, если он указан
	if req.VenueID != nil {
		venue, err := uc.venueRepo.GetByID(ctx, *req.VenueID)
		if err != nil {
			if errors.Is(err, venueRepo.ErrVenueNotFound) {
				uc.logger.Warn("CreateReservation: venue id=%d not found", *req.VenueID)
				return nil, ErrVenueNotFound
			}
			uc.logger.Error("CreateReservation: failed to get venue id=%d: %v", *req.VenueID, err)
			return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
		}
		if venue.RestaurantID != req.RestaurantID {
			uc.logger.Warn("CreateReservation: venue id=%d belongs to restaurant=%d, not %d",
				*req.VenueID, venue.RestaurantID, req.RestaurantID)
			return nil, ErrVenueMismatch
		}
	}

	// 3. Собираем domain модель. Новые брони всегда создаются в статусе pending.
	reservation := &domain.Reservation{
		RestaurantID:  req.RestaurantID,
		VenueID:       req.VenueID,
		Date:          req.Date,
		StartTime:     start,
		EndTime:       end,
		PartySize:     req.PartySize,
		Status:        domain.StatusPending,
		Notes:         req.Notes,
		GroupName:     req.GroupName,
		RepName:       req.RepName,
		ArrangerName:  req.ArrangerName,
		AgencyName:    req.AgencyName,
		AgencyBranch:  req.AgencyBranch,
		AgencyTel:     req.AgencyTel,
		AgencyFax:     req.AgencyFax,
		AgencyAddress: req.AgencyAddress,
	}

	staff := toDomainStaff(req.Staff)
	menus := toDomainMenus(req.Menus)

	// 4. Бронирование с детьми в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}
		reservation = created

		if err := uc.reservationRepo.InsertStaff(txCtx, reservation.ID, staff); err != nil {
			return fmt.Errorf("%w: failed to insert staff: %v", ErrInternal, err)
		}

		if err := uc.reservationRepo.InsertMenus(txCtx, reservation.ID, menus); err != nil {
			return fmt.Errorf("%w: failed to insert menus: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		uc.logger.Error("CreateReservation: transaction failed: %v", err)
		return nil, err
	}

	// 5. Инвалидируем кэш расписания затронутого дня
	if err := uc.scheduleCache.Invalidate(ctx, req.RestaurantID, req.Date); err != nil {
		uc.logger.Warn("CreateReservation: cache invalidation failed: %v", err)
	}

	uc.logger.Info("CreateReservation: created reservation id=%d for restaurant=%d",
		reservation.ID, req.RestaurantID)

	return &Response{
		ID:        reservation.ID,
		Status:    string(reservation.Status),
		Date:      reservation.Date.Format(domain.DateFormat),
		StartTime: reservation.StartTime.String(),
		EndTime:   reservation.EndTime.String(),
	}, nil
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

// toDomainMenus конвертирует позиции меню запроса в domain модели
func toDomainMenus(menus []MenuInput) []domain.MenuLine {
	out := make([]domain.MenuLine, 0, len(menus))
	for _, m := range menus {
		out = append(out, domain.MenuLine{
			MenuName:  m.MenuName,
			Quantity:  m.Quantity,
			UnitPrice: m.UnitPrice,
			Notes:     m.Notes,
		})
	}
	return out
}
