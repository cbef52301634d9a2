package get_day_schedule

import (
	"time"
)

// BlockKind вид блока в колонке зала
type BlockKind string

const (
	KindPrep     BlockKind = "prep"
	KindMain     BlockKind = "main"
	KindCleaning BlockKind = "cleaning"
)

// StyleClass класс оформления блока
type StyleClass string

const (
	StylePending   StyleClass = "pending"
	StyleConfirmed StyleClass = "confirmed"
	StyleCancelled StyleClass = "cancelled"
)

// Request модель запроса расписания дня
type Request struct {
	UserID       int64     // ID пользователя (для логирования, не влияет на результат)
	RestaurantID int64     // ID ресторана
	Date         time.Time // Дата расписания (без времени)
}

// Response собранное расписание дня: ось, колонки залов, индикатор и навигация
type Response struct {
	RestaurantID int64        `json:"restaurant_id"`
	Date         string       `json:"date"` // YYYY-MM-DD
	Axis         AxisView     `json:"axis"`
	Columns      []VenueColumn `json:"columns"`
	Indicator    IndicatorView `json:"indicator"`
	Navigation   Navigation   `json:"navigation"`
	Scroll       ScrollView   `json:"scroll"`
}

// AxisView геометрия временной оси для отрисовки сетки
type AxisView struct {
	StartHour    int         `json:"start_hour"`
	EndHour      int         `json:"end_hour"`
	HourHeight   float64     `json:"hour_height"`
	HeaderHeight float64     `json:"header_height"`
	TotalHeight  float64     `json:"total_height"`
	HourLabels   []HourLabel `json:"hour_labels"`
}

// HourLabel подпись часа на оси
type HourLabel struct {
	Hour  int     `json:"hour"`
	Label string  `json:"label"` // "09:00"
	Top   float64 `json:"top"`
}

// VenueColumn колонка одного зала с блоками бронирований
type VenueColumn struct {
	VenueID   int64   `json:"venue_id"`
	VenueName string  `json:"venue_name"`
	Capacity  int     `json:"capacity"`
	Blocks    []Block `json:"blocks"`
}

// Block готовый к отрисовке прямоугольник бронирования.
// Блоки prep, main и cleaning одного бронирования стыкуются в одну капсулу:
// флаги скругления углов согласованы между соседними блоками.
type Block struct {
	ReservationID int64      `json:"reservation_id"`
	Kind          BlockKind  `json:"kind"`
	Top           float64    `json:"top"`
	Height        float64    `json:"height"`
	Style         StyleClass `json:"style"`
	RoundTop      bool       `json:"round_top"`
	RoundBottom   bool       `json:"round_bottom"`

	// Подписи только на основном блоке
	GroupName  string   `json:"group_name,omitempty"`
	TimeRange  string   `json:"time_range,omitempty"` // "12:00 - 15:00"
	PartySize  int      `json:"party_size,omitempty"`
	StaffNames []string `json:"staff_names,omitempty"`
}

// IndicatorView состояние линии текущего времени
type IndicatorView struct {
	Visible bool    `json:"visible"`
	Top     float64 `json:"top"`
}

// Navigation даты для переключения дней
type Navigation struct {
	PrevDate  string `json:"prev_date"`
	NextDate  string `json:"next_date"`
	TodayDate string `json:"today_date"`
	IsToday   bool   `json:"is_today"`
}

// ScrollView пиксельные якоря прокрутки
type ScrollView struct {
	InitialOffsetPx float64 `json:"initial_offset_px"`
	TodayOffsetPx   float64 `json:"today_offset_px"`
}
