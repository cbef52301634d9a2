package update_reservation

import (
	"time"

	"github.com/m04kA/RBM-ScheduleService/internal/domain"
	updateUC "github.com/m04kA/RBM-ScheduleService/internal/usecase/update_reservation"
)

// UpdateReservationRequest HTTP request model.
// Отсутствующие поля не меняются; staff с replaceStaff=true заменяет
// все назначения целиком.
type UpdateReservationRequest struct {
	VenueID   *int64  `json:"venueId,omitempty"`
	Date      *string `json:"date,omitempty"`      // "2026-08-28"
	StartTime *string `json:"startTime,omitempty"` // "12:00"
	EndTime   *string `json:"endTime,omitempty"`   // "15:00"
	PartySize *int    `json:"partySize,omitempty"`
	Status    *string `json:"status,omitempty"`
	Notes     *string `json:"notes,omitempty"`

	GroupName     *string `json:"groupName,omitempty"`
	RepName       *string `json:"repName,omitempty"`
	ArrangerName  *string `json:"arrangerName,omitempty"`
	AgencyName    *string `json:"agencyName,omitempty"`
	AgencyBranch  *string `json:"agencyBranch,omitempty"`
	AgencyTel     *string `json:"agencyTel,omitempty"`
	AgencyFax     *string `json:"agencyFax,omitempty"`
	AgencyAddress *string `json:"agencyAddress,omitempty"`

	ReplaceStaff bool         `json:"replaceStaff,omitempty"`
	Staff        []StaffInput `json:"staff,omitempty"`
}

// StaffInput назначение сотрудника в HTTP запросе
type StaffInput struct {
	UserID          *int64  `json:"userId,omitempty"`
	TempName        *string `json:"tempName,omitempty"`
	Role            string  `json:"role"`
	DurationMinutes int     `json:"durationMinutes"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateReservationRequest) ToUseCaseRequest(userID, reservationID int64) (*updateUC.Request, error) {
	var date *time.Time
	if r.Date != nil {
		parsed, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return nil, err
		}
		date = &parsed
	}

	staff := make([]updateUC.StaffInput, 0, len(r.Staff))
	for _, a := range r.Staff {
		staff = append(staff, updateUC.StaffInput{
			UserID:          a.UserID,
			TempName:        a.TempName,
			Role:            a.Role,
			DurationMinutes: a.DurationMinutes,
		})
	}

	return &updateUC.Request{
		UserID:        userID,
		ReservationID: reservationID,
		VenueID:       r.VenueID,
		Date:          date,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		PartySize:     r.PartySize,
		Status:        r.Status,
		Notes:         r.Notes,
		GroupName:     r.GroupName,
		RepName:       r.RepName,
		ArrangerName:  r.ArrangerName,
		AgencyName:    r.AgencyName,
		AgencyBranch:  r.AgencyBranch,
		AgencyTel:     r.AgencyTel,
		AgencyFax:     r.AgencyFax,
		AgencyAddress: r.AgencyAddress,
		ReplaceStaff:  r.ReplaceStaff,
		Staff:         staff,
	}, nil
}
