package reservations

import (
	"context"
	"time"

	"github.com/m04kA/RBM-ScheduleService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetByRestaurantWithFilter(ctx context.Context, filter domain.DayReservationsFilter) ([]*domain.Reservation, error)
	Delete(ctx context.Context, id int64) error
}

// VenueRepository интерфейс репозитория залов
type VenueRepository interface {
	ListByRestaurant(ctx context.Context, restaurantID int64) ([]domain.Venue, error)
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
