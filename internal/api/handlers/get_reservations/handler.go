package get_reservations

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/RBM-ScheduleService/internal/api/handlers"
	"github.com/m04kA/RBM-ScheduleService/internal/api/middleware"
	"github.com/m04kA/RBM-ScheduleService/internal/domain"
	"github.com/m04kA/RBM-ScheduleService/internal/service/reservations"
	"github.com/m04kA/RBM-ScheduleService/internal/service/reservations/models"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
	msgInvalidDate         = "некорректная дата, ожидается формат YYYY-MM-DD"
	msgInvalidVenueID      = "некорректный ID зала"
	msgInvalidStatus       = "недопустимый статус бронирования"
	msgInvalidLimit        = "некорректное значение limit"
	msgMissingUserID       = "отсутствует ID пользователя"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/restaurants/{restaurantId}/reservations?date=&venueId=&status=&limit=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем restaurantId из URL
	vars := mux.Vars(r)
	restaurantIDStr := vars["restaurantId"]

	restaurantID, err := strconv.ParseInt(restaurantIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /restaurants/{id}/reservations - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /restaurants/{id}/reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	req := &models.GetReservationsRequest{
		UserID:       userID,
		RestaurantID: restaurantID,
	}

	query := r.URL.Query()

	if dateStr := query.Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /restaurants/{id}/reservations - Invalid date %q: %v", dateStr, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = &date
	}

	if venueIDStr := query.Get("venueId"); venueIDStr != "" {
		venueID, err := strconv.ParseInt(venueIDStr, 10, 64)
		if err != nil || venueID <= 0 {
			h.logger.Warn("GET /restaurants/{id}/reservations - Invalid venue ID %q", venueIDStr)
			handlers.RespondBadRequest(w, msgInvalidVenueID)
			return
		}
		req.VenueID = &venueID
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if limitStr := query.Get("limit"); limitStr != "" {
		limit, err := strconv.ParseUint(limitStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /restaurants/{id}/reservations - Invalid limit %q", limitStr)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		req.Limit = limit
	}

	list, err := h.service.GetRestaurantReservations(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidStatus):
			h.logger.Warn("GET /restaurants/{id}/reservations - Invalid status: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /restaurants/{id}/reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRestaurantID)

		default:
			h.logger.Error("GET /restaurants/{id}/reservations - Failed to get reservations: restaurant_id=%d, error=%v",
				restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /restaurants/{id}/reservations - Retrieved %d reservations: restaurant_id=%d, user_id=%d",
		len(list.Reservations), restaurantID, userID)
	handlers.RespondJSON(w, http.StatusOK, list)
}
