package get_day_schedule

import (
	"fmt"
	"time"

	"github.com/m04kA/RBM-ScheduleService/internal/domain"
)

// buildAxisView собирает геометрию оси с подписями часов.
// Подписи идут от StartHour до EndHour-1: подпись последнего часа
// совпала бы с нижней границей сетки.
func buildAxisView(axis domain.Axis) AxisView {
	labels := make([]HourLabel, 0, axis.EndHour-axis.StartHour)
	for hour := axis.StartHour; hour < axis.EndHour; hour++ {
		labels = append(labels, HourLabel{
			Hour:  hour,
			Label: fmt.Sprintf("%02d:00", hour),
			Top:   axis.PositionOfMinutes(hour * 60),
		})
	}

	return AxisView{
		StartHour:    axis.StartHour,
		EndHour:      axis.EndHour,
		HourHeight:   axis.HourHeight,
		HeaderHeight: axis.HeaderHeight,
		TotalHeight:  axis.HeaderHeight + axis.HeightOf((axis.EndHour-axis.StartHour)*60),
		HourLabels:   labels,
	}
}

// buildNavigation собирает даты переключения дней относительно просматриваемой
func buildNavigation(date, now time.Time) Navigation {
	return Navigation{
		PrevDate:  date.AddDate(0, 0, -1).Format(domain.DateFormat),
		NextDate:  date.AddDate(0, 0, 1).Format(domain.DateFormat),
		TodayDate: now.Format(domain.DateFormat),
		IsToday:   isSameDay(date, now),
	}
}

// buildScrollView переводит якоря прокрутки из часов в пиксели
func buildScrollView(axis domain.Axis, initialHours, todayHours float64) ScrollView {
	return ScrollView{
		InitialOffsetPx: axis.ScrollOffset(initialHours),
		TodayOffsetPx:   axis.ScrollOffset(todayHours),
	}
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
