package staffdir

// StaffMember модель сотрудника из справочника персонала
type StaffMember struct {
	ID        int64  `json:"id"`
	FullName  string `json:"full_name"`
	ShortName string `json:"short_name"`
	Position  string `json:"position"`
	IsActive  bool   `json:"is_active"`
}

// resolveRequest тело batch-запроса на резолв имен
type resolveRequest struct {
	UserIDs []int64 `json:"user_ids"`
}

// resolveResponse ответ batch-запроса
type resolveResponse struct {
	Members []StaffMember `json:"members"`
}

// ErrorResponse модель ошибки от справочника
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
