package get_venues

import (
	"context"

	"github.com/m04kA/RBM-ScheduleService/internal/service/reservations/models"
)

type ReservationService interface {
	GetVenues(ctx context.Context, restaurantID int64) (*models.VenueListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
