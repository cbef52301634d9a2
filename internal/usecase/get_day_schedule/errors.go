package get_day_schedule

import "errors"

var (
	// ErrRestaurantNotFound возвращается, когда у ресторана нет ни одного зала
	// и нет данных, подтверждающих его существование
	ErrRestaurantNotFound = errors.New("restaurant not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidDate возвращается при некорректной дате расписания
	ErrInvalidDate = errors.New("invalid schedule date")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
