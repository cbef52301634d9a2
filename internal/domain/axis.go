package domain

import "github.com/m04kA/RBM-ScheduleService/pkg/types"

// Axis вертикальная временная ось сетки расписания.
// Переводит время дня в пиксельные координаты.
type Axis struct {
	StartHour    int     // Первый отображаемый час (включительно)
	EndHour      int     // Последний отображаемый час (исключительно)
	HourHeight   float64 // Высота одного часа в пикселях
	HeaderHeight float64 // Высота шапки с датами над сеткой
}

// NewAxis создает ось с дефолтной геометрией сетки
func NewAxis() Axis {
	return Axis{
		StartHour:    DefaultStartHour,
		EndHour:      DefaultEndHour,
		HourHeight:   DefaultHourHeightPx,
		HeaderHeight: DefaultHeaderHeightPx,
	}
}

// PositionOf возвращает вертикальную координату момента времени.
// Ось не обрезает значения: время вне [StartHour, EndHour) дает
// координату за пределами сетки, границы проверяет вызывающий код.
func (a Axis) PositionOf(t types.TimeString) float64 {
	return a.HeaderHeight + float64(t.Minutes()-a.StartHour*60)/60.0*a.HourHeight
}

// PositionOfMinutes возвращает координату для времени, заданного минутами от полуночи
func (a Axis) PositionOfMinutes(minutes int) float64 {
	return a.HeaderHeight + float64(minutes-a.StartHour*60)/60.0*a.HourHeight
}

// HeightOf возвращает высоту интервала заданной длительности
func (a Axis) HeightOf(durationMinutes int) float64 {
	return float64(durationMinutes) / 60.0 * a.HourHeight
}

// ContainsHour проверяет, что час попадает в отображаемый диапазон.
// Верхняя граница исключается: ровно в EndHour:00 индикатор уже скрыт.
func (a Axis) ContainsHour(hour int) bool {
	return hour >= a.StartHour && hour < a.EndHour
}

// ScrollOffset возвращает пиксельное смещение якоря прокрутки,
// заданного в часах от начала оси
func (a Axis) ScrollOffset(hours float64) float64 {
	return hours * a.HourHeight
}
