package get_day_schedule

import (
	"context"
	"time"

	"github.com/m04kA/RBM-ScheduleService/internal/domain"
	"github.com/m04kA/RBM-ScheduleService/internal/integrations/staffdir"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	// GetByRestaurantWithFilter получает бронирования ресторана на конкретную дату
	GetByRestaurantWithFilter(ctx context.Context, filter domain.DayReservationsFilter) ([]*domain.Reservation, error)
}

// VenueRepository интерфейс репозитория залов
type VenueRepository interface {
	// ListByRestaurant возвращает все залы ресторана
	ListByRestaurant(ctx context.Context, restaurantID int64) ([]domain.Venue, error)
}

// StaffDirClient интерфейс клиента справочника персонала
type StaffDirClient interface {
	ResolveNamesWithGracefulDegradation(ctx context.Context, userIDs []int64) (map[int64]staffdir.StaffMember, error)
}

// IndicatorService интерфейс сервиса линии текущего времени
type IndicatorService interface {
	StateFor(viewedDate time.Time) (visible bool, top float64)
}

// ScheduleCache интерфейс кэша собранных расписаний
type ScheduleCache interface {
	Get(ctx context.Context, restaurantID int64, date time.Time, dest interface{}) error
	Set(ctx context.Context, restaurantID int64, date time.Time, value interface{}) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
