package create_reservation

import (
	"fmt"

	"github.com/m04kA/RBM-ScheduleService/internal/domain"
	"github.com/m04kA/RBM-ScheduleService/pkg/types"
)

// validateRequest валидирует входные данные запроса.
// Времена парсятся строго на входе: дальше по слоям идут только
// валидные значения "HH:MM".
func validateRequest(req *Request) (start, end types.TimeString, err error) {
	if req.RestaurantID <= 0 {
		return "", "", fmt.Errorf("%w: restaurantID must be positive", ErrInvalidInput)
	}

	if req.VenueID != nil && *req.VenueID <= 0 {
		return "", "", fmt.Errorf("%w: venueID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return "", "", fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	start, err = types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return "", "", fmt.Errorf("%w: start time %q", ErrInvalidTime, req.StartTime)
	}

	end, err = types.NewTimeStringFromString(req.EndTime)
	if err != nil {
		return "", "", fmt.Errorf("%w: end time %q", ErrInvalidTime, req.EndTime)
	}

	if !end.IsAfter(start) {
		return "", "", fmt.Errorf("%w: %s - %s", ErrInvalidTimeRange, start, end)
	}

	if req.PartySize < domain.MinPartySize || req.PartySize > domain.MaxPartySize {
		return "", "", fmt.Errorf("%w: partySize must be in [%d, %d]",
			ErrInvalidInput, domain.MinPartySize, domain.MaxPartySize)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return "", "", fmt.Errorf("%w: notes too long", ErrInvalidInput)
	}

	if err := validateStaff(req.Staff); err != nil {
		return "", "", err
	}

	if err := validateMenus(req.Menus); err != nil {
		return "", "", err
	}

	return start, end, nil
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

// validateMenus валидирует позиции меню
func validateMenus(menus []MenuInput) error {
	for i, m := range menus {
		if m.MenuName == "" {
			return fmt.Errorf("%w: menus[%d].menuName is required", ErrInvalidInput, i)
		}
		if m.Quantity <= 0 {
			return fmt.Errorf("%w: menus[%d].quantity must be positive", ErrInvalidInput, i)
		}
		if m.UnitPrice < 0 {
			return fmt.Errorf("%w: menus[%d].unitPrice must be non-negative", ErrInvalidInput, i)
		}
	}
	return nil
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
