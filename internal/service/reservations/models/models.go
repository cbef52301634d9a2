package models

import (
	"errors"
	"time"

	"github.com/m04kA/RBM-ScheduleService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// Request модели

// GetReservationsRequest запрос на получение бронирований ресторана
type GetReservationsRequest struct {
	UserID       int64      `json:"userId"`
	RestaurantID int64      `json:"restaurantId"`
	Date         *time.Time `json:"date,omitempty"`    // Фильтр по дате (опционально)
	VenueID      *int64     `json:"venueId,omitempty"` // Фильтр по залу (опционально)
	Status       *string    `json:"status,omitempty"`  // Фильтр по статусу (опционально)
	Limit        uint64     `json:"limit,omitempty"`   // Ограничение количества строк
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetReservationsRequest) ToDomainFilter() (domain.DayReservationsFilter, error) {
	filter := domain.DayReservationsFilter{
		RestaurantID: r.RestaurantID,
		Date:         r.Date,
		VenueID:      r.VenueID,
		Limit:        r.Limit,
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainReservationStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID           int64  `json:"id"`
	RestaurantID int64  `json:"restaurantId"`
	VenueID      *int64 `json:"venueId,omitempty"`
	Date         string `json:"date"`      // "2026-08-28"
	StartTime    string `json:"startTime"` // "12:00"
	EndTime      string `json:"endTime"`   // "15:00"
	PartySize    int    `json:"partySize"`
	Status       string `json:"status"`

	Notes         *string `json:"notes,omitempty"`
	GroupName     *string `json:"groupName,omitempty"`
	RepName       *string `json:"repName,omitempty"`
	ArrangerName  *string `json:"arrangerName,omitempty"`
	AgencyName    *string `json:"agencyName,omitempty"`
	AgencyBranch  *string `json:"agencyBranch,omitempty"`
	AgencyTel     *string `json:"agencyTel,omitempty"`
	AgencyFax     *string `json:"agencyFax,omitempty"`
	AgencyAddress *string `json:"agencyAddress,omitempty"`

	Staff []StaffAssignmentResponse `json:"staff"`
	Menus []MenuLineResponse        `json:"menus"`

	ConfirmedAt *string   `json:"confirmedAt,omitempty"` // ISO 8601
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// StaffAssignmentResponse назначение сотрудника на бронирование
type StaffAssignmentResponse struct {
	ID              int64   `json:"id"`
	UserID          *int64  `json:"userId,omitempty"`
	TempName        *string `json:"tempName,omitempty"`
	Role            string  `json:"role"`
	DurationMinutes int     `json:"durationMinutes"`
}

// MenuLineResponse позиция меню бронирования
type MenuLineResponse struct {
	ID        int64   `json:"id"`
	MenuName  string  `json:"menuName"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Notes     *string `json:"notes,omitempty"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// VenueResponse ответ с данными зала
type VenueResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

// VenueListResponse ответ со списком залов
type VenueListResponse struct {
	Venues []VenueResponse `json:"venues"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	resp := &ReservationResponse{
		ID:            r.ID,
		RestaurantID:  r.RestaurantID,
		VenueID:       r.VenueID,
		Date:          r.Date.Format(domain.DateFormat),
		StartTime:     r.StartTime.String(),
		EndTime:       r.EndTime.String(),
		PartySize:     r.PartySize,
		Status:        string(r.Status),
		Notes:         r.Notes,
		GroupName:     r.GroupName,
		RepName:       r.RepName,
		ArrangerName:  r.ArrangerName,
		AgencyName:    r.AgencyName,
		AgencyBranch:  r.AgencyBranch,
		AgencyTel:     r.AgencyTel,
		AgencyFax:     r.AgencyFax,
		AgencyAddress: r.AgencyAddress,
		Staff:         make([]StaffAssignmentResponse, 0, len(r.Staff)),
		Menus:         make([]MenuLineResponse, 0, len(r.Menus)),
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}

	if r.ConfirmedAt != nil {
		confirmed := r.ConfirmedAt.Format(time.RFC3339)
		resp.ConfirmedAt = &confirmed
	}

	for _, a := range r.Staff {
		resp.Staff = append(resp.Staff, StaffAssignmentResponse{
			ID:              a.ID,
			UserID:          a.UserID,
			TempName:        a.TempName,
			Role:            string(a.Role),
			DurationMinutes: a.DurationMinutes,
		})
	}

	for _, m := range r.Menus {
		resp.Menus = append(resp.Menus, MenuLineResponse{
			ID:        m.ID,
			MenuName:  m.MenuName,
			Quantity:  m.Quantity,
			UnitPrice: m.UnitPrice,
			Notes:     m.Notes,
		})
	}

	return resp
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(reservations)),
	}
	for _, r := range reservations {
		resp.Reservations = append(resp.Reservations, *FromDomainReservation(r))
	}
	return resp
}

// FromDomainVenueList конвертирует список залов в DTO
func FromDomainVenueList(venues []domain.Venue) *VenueListResponse {
	resp := &VenueListResponse{
		Venues: make([]VenueResponse, 0, len(venues)),
	}
	for _, v := range venues {
		resp.Venues = append(resp.Venues, VenueResponse{
			ID:       v.ID,
			Name:     v.Name,
			Capacity: v.Capacity,
		})
	}
	return resp
}

// ToDomainReservationStatus конвертирует строку в domain статус
func ToDomainReservationStatus(status string) (domain.ReservationStatus, error) {
	switch domain.ReservationStatus(status) {
	case domain.StatusPending, domain.StatusConfirmed, domain.StatusCancelled, domain.StatusDepositPaid:
		return domain.ReservationStatus(status), nil
	default:
		return "", ErrInvalidStatus
	}
}
