package update_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/RBM-ScheduleService/internal/api/handlers"
	"github.com/m04kA/RBM-ScheduleService/internal/api/middleware"
	updateUC "github.com/m04kA/RBM-ScheduleService/internal/usecase/update_reservation"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgInvalidBody          = "некорректное тело запроса"
	msgInvalidTime          = "некорректное время, ожидается формат HH:MM"
	msgInvalidTimeRange     = "время окончания должно быть позже времени начала"
	msgInvalidStatus        = "недопустимый статус бронирования"
	msgNoChanges            = "нет полей для обновления"
	msgNotFound             = "бронирование не найдено"
	msgVenueNotFound        = "зал не найден"
	msgVenueMismatch        = "зал принадлежит другому ресторану"
	msgMissingUserID        = "отсутствует ID пользователя"
)

type Handler struct {
	useCase UpdateReservationUseCase
	logger  Logger
}

func NewHandler(useCase UpdateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем reservationId из URL
	vars := mux.Vars(r)
	reservationIDStr := vars["reservationId"]

	reservationID, err := strconv.ParseInt(reservationIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /reservations/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /reservations/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /reservations/{id} - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	ucReq, err := req.ToUseCaseRequest(userID, reservationID)
	if err != nil {
		h.logger.Warn("PUT /reservations/{id} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	updated, err := h.useCase.Execute(r.Context(), ucReq)
	if err != nil {
		switch {
		case errors.Is(err, updateUC.ErrReservationNotFound):
			h.logger.Warn("PUT /reservations/{id} - Not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateUC.ErrVenueNotFound):
			h.logger.Warn("PUT /reservations/{id} - Venue not found: %v", err)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, updateUC.ErrVenueMismatch):
			h.logger.Warn("PUT /reservations/{id} - Venue mismatch: %v", err)
			handlers.RespondBadRequest(w, msgVenueMismatch)

		case errors.Is(err, updateUC.ErrInvalidTime):
			h.logger.Warn("PUT /reservations/{id} - Invalid time: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, updateUC.ErrInvalidTimeRange):
			h.logger.Warn("PUT /reservations/{id} - Invalid time range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, updateUC.ErrInvalidStatus):
			h.logger.Warn("PUT /reservations/{id} - Invalid status: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, updateUC.ErrNoChanges):
			h.logger.Warn("PUT /reservations/{id} - No changes: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgNoChanges)

		case errors.Is(err, updateUC.ErrInvalidInput), errors.Is(err, updateUC.ErrInvalidStaffRole):
			h.logger.Warn("PUT /reservations/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBody)

		default:
			h.logger.Error("PUT /reservations/{id} - Failed to update reservation: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /reservations/{id} - Reservation updated: reservation_id=%d, user_id=%d",
		reservationID, userID)
	handlers.RespondJSON(w, http.StatusOK, updated)
}
