package create_reservation

import (
	"time"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID       int64     // ID пользователя (для логирования, не влияет на результат)
	RestaurantID int64     // ID ресторана
	VenueID      *int64    // ID зала (опционально, до назначения может отсутствовать)
	Date         time.Time // Дата бронирования (без времени)
	StartTime    string    // Время начала "HH:MM"
	EndTime      string    // Время конца "HH:MM"
	PartySize    int       // Количество гостей

	Notes         *string
	GroupName     *string
	RepName       *string
	ArrangerName  *string
	AgencyName    *string
	AgencyBranch  *string
	AgencyTel     *string
	AgencyFax     *string
	AgencyAddress *string

	Staff []StaffInput // Назначения персонала
	Menus []MenuInput  // Позиции меню
}

// StaffInput назначение сотрудника в запросе
type StaffInput struct {
	UserID          *int64
	TempName        *string
	Role            string // prep | service | cleaning
	DurationMinutes int
}

// MenuInput позиция меню в запросе
type MenuInput struct {
	MenuName  string
	Quantity  int
	UnitPrice float64
	Notes     *string
}

// Response модель ответа на создание бронирования
type Response struct {
	ID        int64  `json:"id"`
	Status    string `json:"status"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}
