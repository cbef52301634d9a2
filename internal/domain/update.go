package domain

import (
	"time"

	"github.com/m04kA/RBM-ScheduleService/pkg/types"
)

// ReservationUpdate частичное обновление бронирования.
// nil-поле означает "не менять". Семантика last-write-wins,
// оптимистических блокировок нет.
type ReservationUpdate struct {
	VenueID       *int64
	Date          *time.Time
	StartTime     *types.TimeString
	EndTime       *types.TimeString
	PartySize     *int
	Status        *ReservationStatus
	Notes         *string
	GroupName     *string
	RepName       *string
	ArrangerName  *string
	AgencyName    *string
	AgencyBranch  *string
	AgencyTel     *string
	AgencyFax     *string
	AgencyAddress *string
}

// IsEmpty возвращает true, если ни одно поле не задано
func (u *ReservationUpdate) IsEmpty() bool {
	return u.VenueID == nil && u.Date == nil && u.StartTime == nil && u.EndTime == nil &&
		u.PartySize == nil && u.Status == nil && u.Notes == nil &&
		u.GroupName == nil && u.RepName == nil && u.ArrangerName == nil &&
		u.AgencyName == nil && u.AgencyBranch == nil && u.AgencyTel == nil &&
		u.AgencyFax == nil && u.AgencyAddress == nil
}
