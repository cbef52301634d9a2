package get_reservations

import (
	"context"

	"github.com/m04kA/RBM-ScheduleService/internal/service/reservations/models"
)

type ReservationService interface {
	GetRestaurantReservations(ctx context.Context, req *models.GetReservationsRequest) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
