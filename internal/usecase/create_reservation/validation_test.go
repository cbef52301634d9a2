package create_reservation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RBM-ScheduleService/pkg/ptr"
	"github.com/m04kA/RBM-ScheduleService/pkg/types"
)

func validRequest() *Request {
	return &Request{
		UserID:       1,
		RestaurantID: 10,
		Date:         time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
		StartTime:    "12:00",
		EndTime:      "15:00",
		PartySize:    20,
	}
}

func TestValidateRequest_Valid(t *testing.T) {
	start, end, err := validateRequest(validRequest())
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("12:00"), start)
	assert.Equal(t, types.TimeString("15:00"), end)
}

func TestValidateRequest_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{
			name:    "нулевой ресторан",
			mutate:  func(r *Request) { r.RestaurantID = 0 },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "нулевая дата",
			mutate:  func(r *Request) { r.Date = time.Time{} },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "мусор вместо времени начала",
			mutate:  func(r *Request) { r.StartTime = "25:99" },
			wantErr: ErrInvalidTime,
		},
		{
			name:    "время без ведущего нуля",
			mutate:  func(r *Request) { r.StartTime = "9:00" },
			wantErr: ErrInvalidTime,
		},
		{
			name:    "конец раньше начала",
			mutate:  func(r *Request) { r.StartTime = "15:00"; r.EndTime = "12:00" },
			wantErr: ErrInvalidTimeRange,
		},
		{
			name:    "конец равен началу",
			mutate:  func(r *Request) { r.EndTime = "12:00" },
			wantErr: ErrInvalidTimeRange,
		},
		{
			name:    "нулевое количество гостей",
			mutate:  func(r *Request) { r.PartySize = 0 },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "отрицательный зал",
			mutate:  func(r *Request) { r.VenueID = ptr.Ptr(int64(-1)) },
			wantErr: ErrInvalidInput,
		},
		{
			name: "недопустимая роль персонала",
			mutate: func(r *Request) {
				r.Staff = []StaffInput{{UserID: ptr.Ptr(int64(7)), Role: "manager"}}
			},
			wantErr: ErrInvalidStaffRole,
		},
		{
			name: "назначение без сотрудника и без имени",
			mutate: func(r *Request) {
				r.Staff = []StaffInput{{Role: "prep", DurationMinutes: 30}}
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "позиция меню без названия",
			mutate: func(r *Request) {
				r.Menus = []MenuInput{{Quantity: 2, UnitPrice: 1000}}
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "нулевое количество в позиции меню",
			mutate: func(r *Request) {
				r.Menus = []MenuInput{{MenuName: "Банкетное меню", Quantity: 0, UnitPrice: 1000}}
			},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, _, err := validateRequest(req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateRequest_StaffWithTempName(t *testing.T) {
	req := validRequest()
	// Внештатный сотрудник задается только именем
	req.Staff = []StaffInput{
		{TempName: ptr.Ptr("Сидоров"), Role: "cleaning", DurationMinutes: 45},
	}

	_, _, err := validateRequest(req)
	assert.NoError(t, err)
}
