package create_reservation

import "errors"

var (
	// ErrVenueNotFound возвращается, когда указанный зал не найден
	ErrVenueNotFound = errors.New("venue not found")

	// ErrVenueMismatch возвращается, когда зал принадлежит другому ресторану
	ErrVenueMismatch = errors.New("venue belongs to another restaurant")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidTime возвращается при некорректном формате времени
	ErrInvalidTime = errors.New("invalid time format")

	// ErrInvalidTimeRange возвращается, когда конец не позже начала
	ErrInvalidTimeRange = errors.New("end time must be after start time")

	// ErrInvalidStaffRole возвращается при недопустимой роли сотрудника
	ErrInvalidStaffRole = errors.New("invalid staff role")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
