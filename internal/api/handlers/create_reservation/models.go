package create_reservation

import (
	"time"

	"github.com/m04kA/RBM-ScheduleService/internal/domain"
	createUC "github.com/m04kA/RBM-ScheduleService/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	VenueID   *int64 `json:"venueId,omitempty"`
	Date      string `json:"date"`      // "2026-08-28"
	StartTime string `json:"startTime"` // "12:00"
	EndTime   string `json:"endTime"`   // "15:00"
	PartySize int    `json:"partySize"`

	Notes         *string `json:"notes,omitempty"`
	GroupName     *string `json:"groupName,omitempty"`
	RepName       *string `json:"repName,omitempty"`
	ArrangerName  *string `json:"arrangerName,omitempty"`
	AgencyName    *string `json:"agencyName,omitempty"`
	AgencyBranch  *string `json:"agencyBranch,omitempty"`
	AgencyTel     *string `json:"agencyTel,omitempty"`
	AgencyFax     *string `json:"agencyFax,omitempty"`
	AgencyAddress *string `json:"agencyAddress,omitempty"`

	Staff []StaffInput `json:"staff,omitempty"`
	Menus []MenuInput  `json:"menus,omitempty"`
}

// StaffInput назначение сотрудника в HTTP запросе
type StaffInput struct {
	UserID          *int64  `json:"userId,omitempty"`
	TempName        *string `json:"tempName,omitempty"`
	Role            string  `json:"role"`
	DurationMinutes int     `json:"durationMinutes"`
}

// MenuInput позиция меню в HTTP запросе
type MenuInput struct {
	MenuName  string  `json:"menuName"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Notes     *string `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(userID, restaurantID int64) (*createUC.Request, error) {
	// Парсим дату; времена валидирует сам use case
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	staff := make([]createUC.StaffInput, 0, len(r.Staff))
	for _, a := range r.Staff {
		staff = append(staff, createUC.StaffInput{
			UserID:          a.UserID,
			TempName:        a.TempName,
			Role:            a.Role,
			DurationMinutes: a.DurationMinutes,
		})
	}

	menus := make([]createUC.MenuInput, 0, len(r.Menus))
	for _, m := range r.Menus {
		menus = append(menus, createUC.MenuInput{
			MenuName:  m.MenuName,
			Quantity:  m.Quantity,
			UnitPrice: m.UnitPrice,
			Notes:     m.Notes,
		})
	}

	return &createUC.Request{
		UserID:        userID,
		RestaurantID:  restaurantID,
		VenueID:       r.VenueID,
		Date:          date,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		PartySize:     r.PartySize,
		Notes:         r.Notes,
		GroupName:     r.GroupName,
		RepName:       r.RepName,
		ArrangerName:  r.ArrangerName,
		AgencyName:    r.AgencyName,
		AgencyBranch:  r.AgencyBranch,
		AgencyTel:     r.AgencyTel,
		AgencyFax:     r.AgencyFax,
		AgencyAddress: r.AgencyAddress,
		Staff:         staff,
		Menus:         menus,
	}, nil
}
