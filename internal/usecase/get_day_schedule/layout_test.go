package get_day_schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RBM-ScheduleService/internal/domain"
	"github.com/m04kA/RBM-ScheduleService/pkg/ptr"
	"github.com/m04kA/RBM-ScheduleService/pkg/types"
)

func testAxis() domain.Axis {
	return domain.Axis{StartHour: 0, EndHour: 24, HourHeight: 120, HeaderHeight: 30}
}

func testReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:           1,
		RestaurantID: 10,
		VenueID:      ptr.Ptr(int64(5)),
		StartTime:    types.TimeString("12:00"),
		EndTime:      types.TimeString("15:00"),
		PartySize:    20,
		Status:       domain.StatusConfirmed,
		GroupName:    ptr.Ptr("Туристическая группа"),
	}
}

func TestLayoutReservation_MainOnly(t *testing.T) {
	axis := testAxis()
	res := testReservation()

	blocks := layoutReservation(axis, res, nil)
	require.Len(t, blocks, 1)

	main := blocks[0]
	assert.Equal(t, KindMain, main.Kind)
	// Top = позиция начала + отступ 4px
	assert.Equal(t, axis.PositionOf(res.StartTime)+4, main.Top)
	// Height = 3 часа * 120 - 8 = 352
	assert.Equal(t, 352.0, main.Height)
	// Без буферов основной блок скруглен с обеих сторон
	assert.True(t, main.RoundTop)
	assert.True(t, main.RoundBottom)
	assert.Equal(t, StyleConfirmed, main.Style)
}

func TestLayoutReservation_WithPrep(t *testing.T) {
	axis := testAxis()
	res := testReservation()
	res.Staff = []domain.StaffAssignment{
		{UserID: ptr.Ptr(int64(7)), Role: domain.RolePrep, DurationMinutes: 30},
	}

	blocks := layoutReservation(axis, res, nil)
	require.Len(t, blocks, 2)

	prep := blocks[0]
	assert.Equal(t, KindPrep, prep.Kind)
	// Top = позиция начала - высота буфера, без доп. смещения
	assert.Equal(t, axis.PositionOf(res.StartTime)-60, prep.Top)
	// Height = 30 мин * 2px/мин - 4 = 56
	assert.Equal(t, 56.0, prep.Height)
	assert.True(t, prep.RoundTop)
	assert.False(t, prep.RoundBottom)

	// С буфером подготовки основной блок сверху не скругляется
	main := blocks[1]
	assert.Equal(t, KindMain, main.Kind)
	assert.False(t, main.RoundTop)
	assert.True(t, main.RoundBottom)
}

func TestLayoutReservation_FullCapsule(t *testing.T) {
	axis := testAxis()
	res := testReservation()
	res.Staff = []domain.StaffAssignment{
		{UserID: ptr.Ptr(int64(7)), Role: domain.RolePrep, DurationMinutes: 30},
		{UserID: ptr.Ptr(int64(8)), Role: domain.RoleService, DurationMinutes: 0},
		{UserID: ptr.Ptr(int64(9)), Role: domain.RoleCleaning, DurationMinutes: 45},
	}

	blocks := layoutReservation(axis, res, nil)
	require.Len(t, blocks, 3)

	prep, main, cleaning := blocks[0], blocks[1], blocks[2]

	assert.Equal(t, KindPrep, prep.Kind)
	assert.Equal(t, KindMain, main.Kind)
	assert.Equal(t, KindCleaning, cleaning.Kind)

	// Уборка начинается сразу после конца основного интервала
	assert.Equal(t, axis.PositionOf(res.StartTime)+axis.HeightOf(180), cleaning.Top)
	// 45 мин * 2px/мин - 4 = 86
	assert.Equal(t, 86.0, cleaning.Height)

	// Капсула: скругления только на внешних краях
	assert.True(t, prep.RoundTop)
	assert.False(t, prep.RoundBottom)
	assert.False(t, main.RoundTop)
	assert.False(t, main.RoundBottom)
	assert.False(t, cleaning.RoundTop)
	assert.True(t, cleaning.RoundBottom)
}

func TestLayoutReservation_MinHeights(t *testing.T) {
	axis := testAxis()
	res := testReservation()
	res.EndTime = types.TimeString("12:05") // 5 минут

	res.Staff = []domain.StaffAssignment{
		{UserID: ptr.Ptr(int64(7)), Role: domain.RolePrep, DurationMinutes: 5},
	}

	blocks := layoutReservation(axis, res, nil)
	require.Len(t, blocks, 2)

	// 5 мин * 2px - 4 = 6 -> минимум 16
	assert.Equal(t, 16.0, blocks[0].Height)
	// 5 мин * 2px - 8 = 2 -> минимум 20
	assert.Equal(t, 20.0, blocks[1].Height)
}

func TestLayoutReservation_ParallelStaffUseMaxDuration(t *testing.T) {
	axis := testAxis()
	res := testReservation()
	// Два сотрудника на подготовке работают параллельно - буфер по максимуму
	res.Staff = []domain.StaffAssignment{
		{UserID: ptr.Ptr(int64(7)), Role: domain.RolePrep, DurationMinutes: 30},
		{UserID: ptr.Ptr(int64(8)), Role: domain.RolePrep, DurationMinutes: 60},
	}

	blocks := layoutReservation(axis, res, nil)
	require.Len(t, blocks, 2)

	prep := blocks[0]
	assert.Equal(t, axis.PositionOf(res.StartTime)-120, prep.Top)
	assert.Equal(t, 116.0, prep.Height)
}

func TestStyleClassFor(t *testing.T) {
	tests := []struct {
		status domain.ReservationStatus
		want   StyleClass
	}{
		{status: domain.StatusConfirmed, want: StyleConfirmed},
		{status: domain.StatusCancelled, want: StyleCancelled},
		{status: domain.StatusPending, want: StylePending},
		// Legacy статус отображается как pending
		{status: domain.StatusDepositPaid, want: StylePending},
		{status: domain.ReservationStatus("unknown"), want: StylePending},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, styleClassFor(tt.status), "status=%s", tt.status)
	}
}

func TestBuildColumns_OverlappingReservations(t *testing.T) {
	axis := testAxis()
	venues := []domain.Venue{{ID: 5, RestaurantID: 10, Name: "Банкетный зал"}}

	first := testReservation()
	second := testReservation()
	second.ID = 2
	second.StartTime = types.TimeString("13:00")
	second.EndTime = types.TimeString("16:00")

	// Пересечение интервалов одного зала - не ошибка:
	// оба блока присутствуют в порядке входа
	columns := buildColumns(axis, venues, []*domain.Reservation{first, second}, nil)
	require.Len(t, columns, 1)
	require.Len(t, columns[0].Blocks, 2)

	assert.Equal(t, int64(1), columns[0].Blocks[0].ReservationID)
	assert.Equal(t, int64(2), columns[0].Blocks[1].ReservationID)

	// Прямоугольники действительно перекрываются
	firstBottom := columns[0].Blocks[0].Top + columns[0].Blocks[0].Height
	assert.Greater(t, firstBottom, columns[0].Blocks[1].Top)
}

func TestBuildColumns_UnassignedVenueSkipped(t *testing.T) {
	axis := testAxis()
	venues := []domain.Venue{{ID: 5, RestaurantID: 10, Name: "Банкетный зал"}}

	unassigned := testReservation()
	unassigned.VenueID = nil

	columns := buildColumns(axis, venues, []*domain.Reservation{unassigned}, nil)
	require.Len(t, columns, 1)
	assert.Empty(t, columns[0].Blocks)
}

func TestBuildAxisView(t *testing.T) {
	axis := domain.Axis{StartHour: 9, EndHour: 12, HourHeight: 120, HeaderHeight: 30}

	view := buildAxisView(axis)

	assert.Equal(t, 9, view.StartHour)
	assert.Equal(t, 12, view.EndHour)
	assert.Equal(t, 390.0, view.TotalHeight) // 30 + 3*120

	// Подписи от StartHour до EndHour-1
	require.Len(t, view.HourLabels, 3)
	assert.Equal(t, "09:00", view.HourLabels[0].Label)
	assert.Equal(t, 30.0, view.HourLabels[0].Top)
	assert.Equal(t, "11:00", view.HourLabels[2].Label)
	assert.Equal(t, 270.0, view.HourLabels[2].Top)
}
