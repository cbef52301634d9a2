package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Default day-axis geometry.
// Ось покрывает полные сутки; рабочие часы достигаются стартовой прокруткой.
const (
	DefaultStartHour      = 0
	DefaultEndHour        = 24
	DefaultHourHeightPx   = 120.0
	DefaultHeaderHeightPx = 30.0
)

// Block layout constants
const (
	// MainInsetTopPx вертикальный отступ основного блока от расчетной позиции
	MainInsetTopPx = 4.0
	// MainInsetShrinkPx уменьшение высоты основного блока для визуального зазора
	MainInsetShrinkPx = 8.0
	// MinMainHeightPx минимальная высота основного блока
	MinMainHeightPx = 20.0
	// BufferShrinkPx уменьшение высоты блока подготовки/уборки
	BufferShrinkPx = 4.0
	// MinBufferHeightPx минимальная высота блока подготовки/уборки
	MinBufferHeightPx = 16.0
)

// Scroll anchors (hours from the top of the axis)
const (
	// DefaultInitialScrollHours стартовая прокрутка при открытии расписания
	DefaultInitialScrollHours = 9.5
	// DefaultTodayScrollHours прокрутка при переходе по кнопке "сегодня"
	DefaultTodayScrollHours = 10.5
)

// DefaultIndicatorRefreshSeconds период пересчета индикатора текущего времени
const DefaultIndicatorRefreshSeconds = 10

// Business validation constants
const (
	MinPartySize   = 1
	MaxPartySize   = 500
	MaxNotesLength = 2000
	MaxNameLength  = 200
)

// ValidStatuses статусы, допустимые при создании и обновлении.
// Легаси-статус deposit_paid на запись не принимается.
var ValidStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
}

// ValidStaffRoles роли назначений персонала
var ValidStaffRoles = []StaffRole{
	RolePrep,
	RoleService,
	RoleCleaning,
}
