package update_reservation

import (
	"fmt"

	"github.com/m04kA/RBM-ScheduleService/internal/domain"
	"github.com/m04kA/RBM-ScheduleService/pkg/types"
)

// validateRequest валидирует запрос и собирает структуру частичного обновления
func validateRequest(req *Request) (domain.ReservationUpdate, error) {
	var update domain.ReservationUpdate

	if req.ReservationID <= 0 {
		return update, fmt.Errorf("%w: reservationID must be positive", ErrInvalidInput)
	}

	if req.VenueID != nil {
		if *req.VenueID <= 0 {
			return update, fmt.Errorf("%w: venueID must be positive", ErrInvalidInput)
		}
		update.VenueID = req.VenueID
	}

	if req.Date != nil {
		if req.Date.IsZero() {
			return update, fmt.Errorf("%w: date must not be zero", ErrInvalidInput)
		}
		update.Date = req.Date
	}

	if req.StartTime != nil {
		start, err := types.NewTimeStringFromString(*req.StartTime)
		if err != nil {
			return update, fmt.Errorf("%w: start time %q", ErrInvalidTime, *req.StartTime)
		}
		update.StartTime = &start
	}

	if req.EndTime != nil {
		end, err := types.NewTimeStringFromString(*req.EndTime)
		if err != nil {
			return update, fmt.Errorf("%w: end time %q", ErrInvalidTime, *req.EndTime)
		}
		update.EndTime = &end
	}

	if req.PartySize != nil {
		if *req.PartySize < domain.MinPartySize || *req.PartySize > domain.MaxPartySize {
			return update, fmt.Errorf("%w: partySize must be in [%d, %d]",
				ErrInvalidInput, domain.MinPartySize, domain.MaxPartySize)
		}
		update.PartySize = req.PartySize
	}

	if req.Status != nil {
		status := domain.ReservationStatus(*req.Status)
		if !isValidStatus(status) {
			return update, fmt.Errorf("%w: %q", ErrInvalidStatus, *req.Status)
		}
		update.Status = &status
	}

	if req.Notes != nil {
		if len(*req.Notes) > domain.MaxNotesLength {
			return update, fmt.Errorf("%w: notes too long", ErrInvalidInput)
		}
		update.Notes = req.Notes
	}

	update.GroupName = req.GroupName
	update.RepName = req.RepName
	update.ArrangerName = req.ArrangerName
	update.AgencyName = req.AgencyName
	update.AgencyBranch = req.AgencyBranch
	update.AgencyTel = req.AgencyTel
	update.AgencyFax = req.AgencyFax
	update.AgencyAddress = req.AgencyAddress

	if req.ReplaceStaff {
		if err := validateStaff(req.Staff); err != nil {
			return update, err
		}
	}

	if update.IsEmpty() && !req.ReplaceStaff {
		return update, ErrNoChanges
	}

	return update, nil
}

// validateTimeRange проверяет итоговый интервал после слияния с текущими значениями
func validateTimeRange(current *domain.Reservation, update domain.ReservationUpdate) error {
	start := current.StartTime
	if update.StartTime != nil {
		start = *update.StartTime
	}

	end := current.EndTime
	if update.EndTime != nil {
		end = *update.EndTime
	}

	if !end.IsAfter(start) {
		return fmt.Errorf("%w: %s - %s", ErrInvalidTimeRange, start, end)
	}

	return nil
}

// validateStaff валидирует назначения персонала
func validateStaff(staff []StaffInput) error {
	for i, a := range staff {
		if !isValidRole(a.Role) {
			return fmt.Errorf("%w: staff[%d].role=%q", ErrInvalidStaffRole, i, a.Role)
		}
		if a.UserID == nil && (a.TempName == nil || *a.TempName == "") {
			return fmt.Errorf("%w: staff[%d] needs userId or tempName", ErrInvalidInput, i)
		}
		if a.UserID != nil && *a.UserID <= 0 {
			return fmt.Errorf("%w: staff[%d].userId must be positive", ErrInvalidInput, i)
		}
		if a.TempName != nil && len(*a.TempName) > domain.MaxNameLength {
			return fmt.Errorf("%w: staff[%d].tempName too long", ErrInvalidInput, i)
		}
		if a.DurationMinutes < 0 {
			return fmt.Errorf("%w: staff[%d].durationMinutes must be non-negative", ErrInvalidInput, i)
		}
	}
	return nil
}

// isValidStatus проверяет, что статус можно установить через API.
// Legacy deposit_paid на запись не принимается.
func isValidStatus(status domain.ReservationStatus) bool {
	for _, s := range domain.ValidStatuses {
		if status == s {
			return true
		}
	}
	return false
}

// isValidRole проверяет, что роль входит в допустимый набор
func isValidRole(role string) bool {
	for _, r := range domain.ValidStaffRoles {
		if domain.StaffRole(role) == r {
			return true
		}
	}
	return false
}
