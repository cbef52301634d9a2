package create_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/RBM-ScheduleService/internal/api/handlers"
	"github.com/m04kA/RBM-ScheduleService/internal/api/middleware"
	createUC "github.com/m04kA/RBM-ScheduleService/internal/usecase/create_reservation"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
	msgInvalidBody         = "некорректное тело запроса"
	msgInvalidTime         = "некорректное время, ожидается формат HH:MM"
	msgInvalidTimeRange    = "время окончания должно быть позже времени начала"
	msgVenueNotFound       = "зал не найден"
	msgVenueMismatch       = "зал принадлежит другому ресторану"
	msgMissingUserID       = "отсутствует ID пользователя"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/restaurants/{restaurantId}/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем restaurantId из URL
	vars := mux.Vars(r)
	restaurantIDStr := vars["restaurantId"]

	restaurantID, err := strconv.ParseInt(restaurantIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /restaurants/{id}/reservations - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /restaurants/{id}/reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /restaurants/{id}/reservations - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	ucReq, err := req.ToUseCaseRequest(userID, restaurantID)
	if err != nil {
		h.logger.Warn("POST /restaurants/{id}/reservations - Invalid date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	reservation, err := h.useCase.Execute(r.Context(), ucReq)
	if err != nil {
		switch {
		case errors.Is(err, createUC.ErrInvalidTime):
			h.logger.Warn("POST /restaurants/{id}/reservations - Invalid time: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, createUC.ErrInvalidTimeRange):
			h.logger.Warn("POST /restaurants/{id}/reservations - Invalid time range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, createUC.ErrInvalidInput), errors.Is(err, createUC.ErrInvalidStaffRole):
			h.logger.Warn("POST /restaurants/{id}/reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBody)

		case errors.Is(err, createUC.ErrVenueNotFound):
			h.logger.Warn("POST /restaurants/{id}/reservations - Venue not found: %v", err)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, createUC.ErrVenueMismatch):
			h.logger.Warn("POST /restaurants/{id}/reservations - Venue mismatch: %v", err)
			handlers.RespondBadRequest(w, msgVenueMismatch)

		default:
			h.logger.Error("POST /restaurants/{id}/reservations - Failed to create reservation: restaurant_id=%d, error=%v",
				restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /restaurants/{id}/reservations - Reservation created: id=%d, restaurant_id=%d, user_id=%d",
		reservation.ID, restaurantID, userID)
	handlers.RespondJSON(w, http.StatusCreated, reservation)
}
