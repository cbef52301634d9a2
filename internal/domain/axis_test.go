package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/RBM-ScheduleService/pkg/types"
)

func TestAxis_PositionOf(t *testing.T) {
	axis := NewAxis()

	// Начало каждого часа ложится ровно на сетку
	for hour := axis.StartHour; hour < axis.EndHour; hour++ {
		ts, err := types.NewTimeStringFromString(fmt.Sprintf("%02d:00", hour))
		assert.NoError(t, err)

		want := axis.HeaderHeight + float64(hour-axis.StartHour)*axis.HourHeight
		assert.Equal(t, want, axis.PositionOf(ts), "hour=%d", hour)
	}
}

func TestAxis_PositionOf_HalfHour(t *testing.T) {
	axis := Axis{StartHour: 0, EndHour: 24, HourHeight: 120, HeaderHeight: 30}

	// 12:30 = 30 + 12.5 * 120
	assert.Equal(t, 1530.0, axis.PositionOf(types.TimeString("12:30")))
}

func TestAxis_PositionOf_ShiftedStart(t *testing.T) {
	// Ось, начинающаяся не с полуночи
	axis := Axis{StartHour: 9, EndHour: 23, HourHeight: 120, HeaderHeight: 30}

	assert.Equal(t, 30.0, axis.PositionOf(types.TimeString("09:00")))
	assert.Equal(t, 150.0, axis.PositionOf(types.TimeString("10:00")))

	// Время до начала оси дает отрицательное смещение - ось не обрезает
	assert.Equal(t, -90.0, axis.PositionOf(types.TimeString("08:00")))
}

func TestAxis_HeightOf(t *testing.T) {
	axis := Axis{StartHour: 0, EndHour: 24, HourHeight: 120, HeaderHeight: 30}

	tests := []struct {
		minutes int
		want    float64
	}{
		{minutes: 0, want: 0},
		{minutes: 30, want: 60},
		{minutes: 60, want: 120},
		{minutes: 180, want: 360},
		{minutes: 90, want: 180},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, axis.HeightOf(tt.minutes), "minutes=%d", tt.minutes)
	}
}

func TestAxis_ContainsHour(t *testing.T) {
	axis := Axis{StartHour: 9, EndHour: 23, HourHeight: 120, HeaderHeight: 30}

	assert.False(t, axis.ContainsHour(8))
	assert.True(t, axis.ContainsHour(9))
	assert.True(t, axis.ContainsHour(22))
	// Верхняя граница исключается
	assert.False(t, axis.ContainsHour(23))
}

func TestAxis_ScrollOffset(t *testing.T) {
	axis := Axis{StartHour: 0, EndHour: 24, HourHeight: 120, HeaderHeight: 30}

	assert.Equal(t, 1140.0, axis.ScrollOffset(9.5))
	assert.Equal(t, 1260.0, axis.ScrollOffset(10.5))
}
