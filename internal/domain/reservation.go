package domain

import (
	"time"

	"github.com/m04kA/RBM-ScheduleService/pkg/types"
)

// ReservationStatus represents the lifecycle status of a reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"

	// StatusDepositPaid legacy статус из старых данных.
	// Новые записи его не получают, но в выборках он может встретиться.
	StatusDepositPaid ReservationStatus = "deposit_paid"
)

// StaffRole represents the role of a staff assignment on a reservation
type StaffRole string

const (
	RolePrep     StaffRole = "prep"
	RoleService  StaffRole = "service"
	RoleCleaning StaffRole = "cleaning"
)

// Reservation represents a banquet reservation in the system
type Reservation struct {
	ID           int64
	RestaurantID int64
	VenueID      *int64 // NULL, пока зал не назначен
	Date         time.Time
	StartTime    types.TimeString
	EndTime      types.TimeString
	PartySize    int
	Status       ReservationStatus
	Notes        *string

	// Group / agency metadata
	GroupName     *string
	RepName       *string
	ArrangerName  *string
	AgencyName    *string
	AgencyBranch  *string
	AgencyTel     *string
	AgencyFax     *string
	AgencyAddress *string

	Staff []StaffAssignment
	Menus []MenuLine

	ConfirmedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// StaffAssignment represents a staff member assigned to a reservation in one role.
// Длительность имеет смысл только для ролей prep и cleaning;
// для роли service она выводится как end_time - start_time.
type StaffAssignment struct {
	ID              int64
	ReservationID   int64
	UserID          *int64  // NULL для внештатного персонала
	TempName        *string // имя, если сотрудник не заведен в системе
	Role            StaffRole
	DurationMinutes int
}

// MenuLine represents a selected menu position on a reservation
type MenuLine struct {
	ID            int64
	ReservationID int64
	MenuName      string
	Quantity      int
	UnitPrice     float64
	Notes         *string
}

// DurationMinutes returns the length of the main reservation interval
func (r *Reservation) DurationMinutes() int {
	return r.StartTime.MinutesUntil(r.EndTime)
}

// IsCancelled returns true if the reservation has been cancelled
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelled
}

// HasVenue returns true if a venue has been assigned
func (r *Reservation) HasVenue() bool {
	return r.VenueID != nil
}

// PrepMinutes returns the total prep buffer duration, 0 when no prep staff is assigned
func (r *Reservation) PrepMinutes() int {
	return r.bufferMinutes(RolePrep)
}

// CleaningMinutes returns the total cleaning buffer duration, 0 when no cleaning staff is assigned
func (r *Reservation) CleaningMinutes() int {
	return r.bufferMinutes(RoleCleaning)
}

// bufferMinutes возвращает максимальную длительность назначений роли.
// Несколько сотрудников на одной роли работают параллельно, поэтому max, а не сумма.
func (r *Reservation) bufferMinutes(role StaffRole) int {
	max := 0
	for _, a := range r.Staff {
		if a.Role == role && a.DurationMinutes > max {
			max = a.DurationMinutes
		}
	}
	return max
}

// StaffByRole returns the assignments for one role, preserving input order
func (r *Reservation) StaffByRole(role StaffRole) []StaffAssignment {
	out := make([]StaffAssignment, 0)
	for _, a := range r.Staff {
		if a.Role == role {
			out = append(out, a)
		}
	}
	return out
}

// DayReservationsFilter фильтр для выборки бронирований ресторана
type DayReservationsFilter struct {
	RestaurantID int64              // Обязательный параметр
	Date         *time.Time         // Конкретная дата (опционально)
	VenueID      *int64             // Фильтр по залу (опционально)
	Status       *ReservationStatus // Фильтр по статусу (опционально)
	Limit        uint64             // Ограничение количества строк, 0 - без ограничения
}
