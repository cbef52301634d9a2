package update_reservation

import (
	"time"
)

// Request модель запроса на обновление бронирования.
// Заполненные поля обновляются, nil-поля остаются без изменений.
type Request struct {
	UserID        int64      // ID пользователя (для логирования, не влияет на результат)
	ReservationID int64      // ID бронирования
	VenueID       *int64     // Перенос в другой зал
	Date          *time.Time // Перенос на другую дату
	StartTime     *string    // Время начала "HH:MM"
	EndTime       *string    // Время конца "HH:MM"
	PartySize     *int
	Status        *string // pending | confirmed | cancelled
	Notes         *string

	GroupName     *string
	RepName       *string
	ArrangerName  *string
	AgencyName    *string
	AgencyBranch  *string
	AgencyTel     *string
	AgencyFax     *string
	AgencyAddress *string

	// ReplaceStaff включает полную замену назначений персонала на Staff.
	// Без флага поле Staff игнорируется: пустой список и "не трогать"
	// различимы.
	ReplaceStaff bool
	Staff        []StaffInput
}

// StaffInput назначение сотрудника в запросе
type StaffInput struct {
	UserID          *int64
	TempName        *string
	Role            string // prep | service | cleaning
	DurationMinutes int
}

// Response модель ответа на обновление бронирования
type Response struct {
	ID        int64  `json:"id"`
	Status    string `json:"status"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	UpdatedAt string `json:"updatedAt"` // ISO 8601
}
