package update_reservation

import (
	"context"
	"time"

	"github.com/m04kA/RBM-ScheduleService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	UpdateFields(ctx context.Context, id int64, update domain.ReservationUpdate) error
	ReplaceStaff(ctx context.Context, reservationID int64, staff []domain.StaffAssignment) error
}

// VenueRepository интерфейс репозитория залов
type VenueRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Venue, error)
}

// ScheduleCache интерфейс кэша расписаний для инвалидации при мутациях
type ScheduleCache interface {
	Invalidate(ctx context.Context, restaurantID int64, date time.Time) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
