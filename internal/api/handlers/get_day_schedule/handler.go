package get_day_schedule

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/RBM-ScheduleService/internal/api/handlers"
	"github.com/m04kA/RBM-ScheduleService/internal/api/middleware"
	"github.com/m04kA/RBM-ScheduleService/internal/domain"
	scheduleUC "github.com/m04kA/RBM-ScheduleService/internal/usecase/get_day_schedule"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
	msgInvalidDate         = "некорректная дата, ожидается формат YYYY-MM-DD"
	msgMissingUserID       = "отсутствует ID пользователя"
)

type Handler struct {
	useCase ScheduleUseCase
	logger  Logger
}

func NewHandler(useCase ScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/restaurants/{restaurantId}/schedule?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем restaurantId из URL
	vars := mux.Vars(r)
	restaurantIDStr := vars["restaurantId"]

	restaurantID, err := strconv.ParseInt(restaurantIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /restaurants/{id}/schedule - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	// Дата из query-параметра, по умолчанию сегодня
	date := time.Now()
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		date, err = time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /restaurants/{id}/schedule - Invalid date %q: %v", dateStr, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /restaurants/{id}/schedule - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	schedule, err := h.useCase.Execute(r.Context(), &scheduleUC.Request{
		UserID:       userID,
		RestaurantID: restaurantID,
		Date:         date,
	})
	if err != nil {
		switch {
		case errors.Is(err, scheduleUC.ErrInvalidInput), errors.Is(err, scheduleUC.ErrInvalidDate):
			h.logger.Warn("GET /restaurants/{id}/schedule - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRestaurantID)

		default:
			h.logger.Error("GET /restaurants/{id}/schedule - Failed to build schedule: restaurant_id=%d, error=%v",
				restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /restaurants/{id}/schedule - Schedule built: restaurant_id=%d, date=%s, columns=%d",
		restaurantID, schedule.Date, len(schedule.Columns))
	handlers.RespondJSON(w, http.StatusOK, schedule)
}
