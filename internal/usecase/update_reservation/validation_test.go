package update_reservation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RBM-ScheduleService/internal/domain"
	"github.com/m04kA/RBM-ScheduleService/pkg/ptr"
	"github.com/m04kA/RBM-ScheduleService/pkg/types"
)

func TestValidateRequest_PartialUpdate(t *testing.T) {
	req := &Request{
		UserID:        1,
		ReservationID: 5,
		PartySize:     ptr.Ptr(30),
		Status:        ptr.Ptr("confirmed"),
	}

	update, err := validateRequest(req)
	require.NoError(t, err)

	assert.Nil(t, update.StartTime)
	assert.Nil(t, update.Date)
	require.NotNil(t, update.PartySize)
	assert.Equal(t, 30, *update.PartySize)
	require.NotNil(t, update.Status)
	assert.Equal(t, domain.StatusConfirmed, *update.Status)
}

func TestValidateRequest_Errors(t *testing.T) {
	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{
			name:    "нулевой ID бронирования",
			req:     &Request{ReservationID: 0, PartySize: ptr.Ptr(10)},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "пустое обновление",
			req:     &Request{ReservationID: 5},
			wantErr: ErrNoChanges,
		},
		{
			name:    "мусор вместо времени",
			req:     &Request{ReservationID: 5, StartTime: ptr.Ptr("noon")},
			wantErr: ErrInvalidTime,
		},
		{
			name:    "недопустимый статус",
			req:     &Request{ReservationID: 5, Status: ptr.Ptr("archived")},
			wantErr: ErrInvalidStatus,
		},
		{
			// Legacy статус нельзя устанавливать через API
			name:    "legacy статус deposit_paid",
			req:     &Request{ReservationID: 5, Status: ptr.Ptr("deposit_paid")},
			wantErr: ErrInvalidStatus,
		},
		{
			name:    "количество гостей вне диапазона",
			req:     &Request{ReservationID: 5, PartySize: ptr.Ptr(0)},
			wantErr: ErrInvalidInput,
		},
		{
			name: "недопустимая роль при замене персонала",
			req: &Request{
				ReservationID: 5,
				ReplaceStaff:  true,
				Staff:         []StaffInput{{UserID: ptr.Ptr(int64(7)), Role: "waiter"}},
			},
			wantErr: ErrInvalidStaffRole,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := validateRequest(tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateRequest_StaffReplacementOnly(t *testing.T) {
	// Замена персонала без изменения полей брони - валидный запрос
	req := &Request{
		ReservationID: 5,
		ReplaceStaff:  true,
		Staff: []StaffInput{
			{UserID: ptr.Ptr(int64(7)), Role: "prep", DurationMinutes: 30},
		},
	}

	update, err := validateRequest(req)
	require.NoError(t, err)
	assert.True(t, update.IsEmpty())
}

func TestValidateRequest_ClearStaff(t *testing.T) {
	// Пустой список с флагом замены снимает все назначения
	req := &Request{ReservationID: 5, ReplaceStaff: true}

	_, err := validateRequest(req)
	assert.NoError(t, err)
}

func TestValidateTimeRange(t *testing.T) {
	current := &domain.Reservation{
		StartTime: types.TimeString("12:00"),
		EndTime:   types.TimeString("15:00"),
	}

	// Сдвиг только начала: итоговый интервал проверяется после слияния
	start := types.TimeString("16:00")
	err := validateTimeRange(current, domain.ReservationUpdate{StartTime: &start})
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	// Сдвиг обоих концов в валидный интервал
	end := types.TimeString("18:00")
	err = validateTimeRange(current, domain.ReservationUpdate{StartTime: &start, EndTime: &end})
	assert.NoError(t, err)

	// Без изменений времени - текущий интервал валиден
	err = validateTimeRange(current, domain.ReservationUpdate{})
	assert.NoError(t, err)
}
