package indicator

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/RBM-ScheduleService/internal/domain"
)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{}) {}

func fullDayAxis() domain.Axis {
	return domain.Axis{StartHour: 0, EndHour: 24, HourHeight: 120, HeaderHeight: 30}
}

func TestStateFor_VisibleToday(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	svc := NewService(fullDayAxis(), 10*time.Second, nopLogger{}).
		WithTimeProvider(&fixedClock{now: now})

	visible, top := svc.StateFor(now)
	assert.True(t, visible)
	// 30 + 12 * 120
	assert.Equal(t, 1470.0, top)
}

func TestStateFor_HiddenOnOtherDay(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	svc := NewService(fullDayAxis(), 10*time.Second, nopLogger{}).
		WithTimeProvider(&fixedClock{now: now})

	tests := []struct {
		name       string
		viewedDate time.Time
	}{
		{name: "вчера", viewedDate: now.AddDate(0, 0, -1)},
		{name: "завтра", viewedDate: now.AddDate(0, 0, 1)},
		{name: "другой месяц", viewedDate: now.AddDate(0, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			visible, top := svc.StateFor(tt.viewedDate)
			assert.False(t, visible)
			assert.Zero(t, top)
		})
	}
}

func TestStateFor_HiddenOutsideAxisRange(t *testing.T) {
	axis := domain.Axis{StartHour: 9, EndHour: 23, HourHeight: 120, HeaderHeight: 30}

	tests := []struct {
		name    string
		hour    int
		minute  int
		visible bool
	}{
		{name: "до начала оси", hour: 8, minute: 59, visible: false},
		{name: "ровно в начале", hour: 9, minute: 0, visible: true},
		{name: "внутри диапазона", hour: 15, minute: 30, visible: true},
		{name: "последний видимый час", hour: 22, minute: 59, visible: true},
		// Верхняя граница исключается: ровно в EndHour линия скрыта
		{name: "ровно в конце", hour: 23, minute: 0, visible: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := time.Date(2026, 8, 28, tt.hour, tt.minute, 0, 0, time.UTC)
			svc := NewService(axis, 10*time.Second, nopLogger{}).
				WithTimeProvider(&fixedClock{now: now})

			visible, _ := svc.StateFor(now)
			assert.Equal(t, tt.visible, visible)
		})
	}
}

func TestStateFor_PositionWithoutExtraOffset(t *testing.T) {
	axis := fullDayAxis()
	now := time.Date(2026, 8, 28, 10, 30, 0, 0, time.UTC)
	svc := NewService(axis, 10*time.Second, nopLogger{}).
		WithTimeProvider(&fixedClock{now: now})

	_, top := svc.StateFor(now)
	// Координата времени как есть: 30 + 10.5 * 120, без доп. смещений
	assert.Equal(t, 1290.0, top)
}

func TestStartStop(t *testing.T) {
	svc := NewService(fullDayAxis(), 10*time.Millisecond, nopLogger{}).
		WithTimeProvider(&fixedClock{now: time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)})

	svc.Start(context.Background())
	time.Sleep(30 * time.Millisecond)
	svc.Stop()

	// Повторный Stop не паникует
	svc.Stop()
}
