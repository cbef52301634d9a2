package staffdir

import "errors"

var (
	// ErrStaffNotFound возвращается, когда сотрудник не заведен в справочнике
	ErrStaffNotFound = errors.New("staff member not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("staffdir client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("staffdir client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что справочник персонала недоступен и в расписании
	// следует показывать идентификаторы вместо имен
	ErrServiceDegraded = errors.New("staffdir unavailable: graceful degradation applied")
)
