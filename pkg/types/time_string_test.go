package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "валидное время", input: "10:30", want: "10:30"},
		{name: "полночь", input: "00:00", want: "00:00"},
		{name: "последняя минута суток", input: "23:59", want: "23:59"},
		{name: "без ведущего нуля", input: "9:30", wantErr: true},
		{name: "часы вне диапазона", input: "24:00", wantErr: true},
		{name: "минуты вне диапазона", input: "10:60", wantErr: true},
		{name: "мусор", input: "abcd", wantErr: true},
		{name: "пустая строка", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Minutes(t *testing.T) {
	tests := []struct {
		input TimeString
		want  int
	}{
		{input: "00:00", want: 0},
		{input: "01:00", want: 60},
		{input: "12:30", want: 750},
		{input: "23:59", want: 1439},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.input.Minutes(), "time=%s", tt.input)
	}
}

func TestTimeString_MinutesUntil(t *testing.T) {
	start := TimeString("12:00")
	end := TimeString("15:00")

	assert.Equal(t, 180, start.MinutesUntil(end))
	assert.Equal(t, -180, end.MinutesUntil(start))
	assert.Equal(t, 0, start.MinutesUntil(start))
}

func TestTimeString_AddMinutes(t *testing.T) {
	start := TimeString("10:00")

	result, err := start.AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:30"), result)

	// Переход через границу суток - ошибка
	_, err = TimeString("23:30").AddMinutes(60)
	assert.Error(t, err)
}

func TestTimeString_Scan(t *testing.T) {
	// Postgres отдает время с секундами, они отрезаются
	var ts TimeString
	require.NoError(t, ts.Scan("12:30:00"))
	assert.Equal(t, TimeString("12:30"), ts)

	require.NoError(t, ts.Scan([]byte("09:15:00")))
	assert.Equal(t, TimeString("09:15"), ts)
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2026, 8, 28, 14, 5, 33, 0, time.UTC)
	assert.Equal(t, TimeString("14:05"), NewTimeString(moment))
}
