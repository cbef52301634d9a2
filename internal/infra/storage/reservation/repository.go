package reservation

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/RBM-ScheduleService/internal/domain"
	"github.com/m04kA/RBM-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/RBM-ScheduleService/pkg/psqlbuilder"
)

// reservationColumns полный список колонок таблицы reservations
var reservationColumns = []string{
	"id",
	"restaurant_id",
	"venue_id",
	"date",
	"start_time",
	"end_time",
	"party_size",
	"status",
	"notes",
	"group_name",
	"rep_name",
	"arranger_name",
	"agency_name",
	"agency_branch",
	"agency_tel",
	"agency_fax",
	"agency_address",
	"confirmed_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование (без назначений персонала и меню —
// они вставляются отдельно через InsertStaff/InsertMenus в той же транзакции)
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"restaurant_id",
			"venue_id",
			"date",
			"start_time",
			"end_time",
			"party_size",
			"status",
			"notes",
			"group_name",
			"rep_name",
			"arranger_name",
			"agency_name",
			"agency_branch",
			"agency_tel",
			"agency_fax",
			"agency_address",
		).
		Values(
			res.RestaurantID,
			res.VenueID,
			res.Date,
			res.StartTime,
			res.EndTime,
			res.PartySize,
			res.Status,
			res.Notes,
			res.GroupName,
			res.RepName,
			res.ArrangerName,
			res.AgencyName,
			res.AgencyBranch,
			res.AgencyTel,
			res.AgencyFax,
			res.AgencyAddress,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return res, nil
}

// GetByID получает бронирование по ID вместе с назначениями персонала и позициями меню
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	res, err := scanReservation(row)
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	if err := r.attachChildren(ctx, executor, []*domain.Reservation{res}); err != nil {
		return nil, err
	}

	return res, nil
}

// GetByRestaurantWithFilter получает бронирования ресторана с фильтрацией
// по дате, залу и статусу. Назначения персонала и позиции меню загружаются
// вторым и третьим запросом для всего списка сразу.
//
// Для выборки на конкретную дату сортировка по времени начала, иначе -
// сначала новые даты.
func (r *Repository) GetByRestaurantWithFilter(ctx context.Context, filter domain.DayReservationsFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"restaurant_id": filter.RestaurantID})

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"date": *filter.Date})
	}
	if filter.VenueID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"venue_id": *filter.VenueID})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	if filter.Date != nil {
		selectBuilder = selectBuilder.OrderBy("start_time ASC, id ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("date DESC, start_time ASC, id ASC")
	}

	if filter.Limit > 0 {
		selectBuilder = selectBuilder.Limit(filter.Limit)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRestaurantWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRestaurantWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reservations, err := scanReservations(rows)
	if err != nil {
		return nil, err
	}

	if err := r.attachChildren(ctx, executor, reservations); err != nil {
		return nil, err
	}

	return reservations, nil
}

// UpdateFields частично обновляет бронирование: только поля, заданные в update.
// Переход в статус confirmed проставляет confirmed_at.
func (r *Repository) UpdateFields(ctx context.Context, id int64, update domain.ReservationUpdate) error {
	if update.IsEmpty() {
		return ErrNoFieldsToUpdate
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("reservations").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if update.VenueID != nil {
		updateBuilder = updateBuilder.Set("venue_id", *update.VenueID)
	}
	if update.Date != nil {
		updateBuilder = updateBuilder.Set("date", *update.Date)
	}
	if update.StartTime != nil {
		updateBuilder = updateBuilder.Set("start_time", *update.StartTime)
	}
	if update.EndTime != nil {
		updateBuilder = updateBuilder.Set("end_time", *update.EndTime)
	}
	if update.PartySize != nil {
		updateBuilder = updateBuilder.Set("party_size", *update.PartySize)
	}
	if update.Status != nil {
		updateBuilder = updateBuilder.Set("status", *update.Status)
		if *update.Status == domain.StatusConfirmed {
			updateBuilder = updateBuilder.Set("confirmed_at", squirrel.Expr("NOW()"))
		}
	}
	if update.Notes != nil {
		updateBuilder = updateBuilder.Set("notes", *update.Notes)
	}
	if update.GroupName != nil {
		updateBuilder = updateBuilder.Set("group_name", *update.GroupName)
	}
	if update.RepName != nil {
		updateBuilder = updateBuilder.Set("rep_name", *update.RepName)
	}
	if update.ArrangerName != nil {
		updateBuilder = updateBuilder.Set("arranger_name", *update.ArrangerName)
	}
	if update.AgencyName != nil {
		updateBuilder = updateBuilder.Set("agency_name", *update.AgencyName)
	}
	if update.AgencyBranch != nil {
		updateBuilder = updateBuilder.Set("agency_branch", *update.AgencyBranch)
	}
	if update.AgencyTel != nil {
		updateBuilder = updateBuilder.Set("agency_tel", *update.AgencyTel)
	}
	if update.AgencyFax != nil {
		updateBuilder = updateBuilder.Set("agency_fax", *update.AgencyFax)
	}
	if update.AgencyAddress != nil {
		updateBuilder = updateBuilder.Set("agency_address", *update.AgencyAddress)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateFields - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateFields - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateFields - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// InsertStaff вставляет назначения персонала для бронирования
func (r *Repository) InsertStaff(ctx context.Context, reservationID int64, staff []domain.StaffAssignment) error {
	if len(staff) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("reservation_staff").
		Columns("reservation_id", "user_id", "temp_name", "role", "duration_minutes")

	for _, a := range staff {
		insertBuilder = insertBuilder.Values(reservationID, a.UserID, a.TempName, a.Role, a.DurationMinutes)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: InsertStaff - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: InsertStaff - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// ReplaceStaff заменяет все назначения персонала бронирования: delete + insert.
// Вызывается внутри транзакции обновления бронирования.
func (r *Repository) ReplaceStaff(ctx context.Context, reservationID int64, staff []domain.StaffAssignment) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reservation_staff").
		Where(squirrel.Eq{"reservation_id": reservationID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ReplaceStaff - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceStaff - execute delete: %v", ErrExecQuery, err)
	}

	return r.InsertStaff(ctx, reservationID, staff)
}

// InsertMenus вставляет позиции меню для бронирования
func (r *Repository) InsertMenus(ctx context.Context, reservationID int64, menus []domain.MenuLine) error {
	if len(menus) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("reservation_menus").
		Columns("reservation_id", "menu_name", "quantity", "unit_price", "notes")

	for _, m := range menus {
		insertBuilder = insertBuilder.Values(reservationID, m.MenuName, m.Quantity, m.UnitPrice, m.Notes)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: InsertMenus - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: InsertMenus - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// Delete физически удаляет бронирование вместе с назначениями и меню.
// Вызывается внутри транзакции.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	for _, table := range []string{"reservation_staff", "reservation_menus"} {
		query, args, err := psqlbuilder.Delete(table).
			Where(squirrel.Eq{"reservation_id": id}).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: Delete - build delete query for %s: %v", ErrBuildQuery, table, err)
		}
		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: Delete - execute delete for %s: %v", ErrExecQuery, table, err)
		}
	}

	query, args, err := psqlbuilder.Delete("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// attachChildren загружает назначения персонала и позиции меню для списка бронирований
func (r *Repository) attachChildren(ctx context.Context, executor DBExecutor, reservations []*domain.Reservation) error {
	if len(reservations) == 0 {
		return nil
	}

	ids := make([]int64, len(reservations))
	byID := make(map[int64]*domain.Reservation, len(reservations))
	for i, res := range reservations {
		ids[i] = res.ID
		byID[res.ID] = res
		res.Staff = make([]domain.StaffAssignment, 0)
		res.Menus = make([]domain.MenuLine, 0)
	}

	if err := r.loadStaff(ctx, executor, ids, byID); err != nil {
		return err
	}
	return r.loadMenus(ctx, executor, ids, byID)
}

// loadStaff загружает назначения персонала для набора бронирований
func (r *Repository) loadStaff(ctx context.Context, executor DBExecutor, ids []int64, byID map[int64]*domain.Reservation) error {
	query, args, err := psqlbuilder.Select(
		"id",
		"reservation_id",
		"user_id",
		"temp_name",
		"role",
		"duration_minutes",
	).
		From("reservation_staff").
		Where(squirrel.Eq{"reservation_id": ids}).
		OrderBy("reservation_id ASC, id ASC").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: loadStaff - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadStaff - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var a domain.StaffAssignment
		if err := rows.Scan(
			&a.ID,
			&a.ReservationID,
			&a.UserID,
			&a.TempName,
			&a.Role,
			&a.DurationMinutes,
		); err != nil {
			return fmt.Errorf("%w: loadStaff - scan row: %v", ErrScanRow, err)
		}

		if res, ok := byID[a.ReservationID]; ok {
			res.Staff = append(res.Staff, a)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadStaff - rows error: %v", ErrScanRow, err)
	}

	return nil
}

// loadMenus загружает позиции меню для набора бронирований
func (r *Repository) loadMenus(ctx context.Context, executor DBExecutor, ids []int64, byID map[int64]*domain.Reservation) error {
	query, args, err := psqlbuilder.Select(
		"id",
		"reservation_id",
		"menu_name",
		"quantity",
		"unit_price",
		"notes",
	).
		From("reservation_menus").
		Where(squirrel.Eq{"reservation_id": ids}).
		OrderBy("reservation_id ASC, id ASC").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: loadMenus - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadMenus - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var m domain.MenuLine
		if err := rows.Scan(
			&m.ID,
			&m.ReservationID,
			&m.MenuName,
			&m.Quantity,
			&m.UnitPrice,
			&m.Notes,
		); err != nil {
			return fmt.Errorf("%w: loadMenus - scan row: %v", ErrScanRow, err)
		}

		if res, ok := byID[m.ReservationID]; ok {
			res.Menus = append(res.Menus, m)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadMenus - rows error: %v", ErrScanRow, err)
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanReservation сканирует одну строку таблицы reservations
func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.RestaurantID,
		&res.VenueID,
		&res.Date,
		&res.StartTime,
		&res.EndTime,
		&res.PartySize,
		&res.Status,
		&res.Notes,
		&res.GroupName,
		&res.RepName,
		&res.ArrangerName,
		&res.AgencyName,
		&res.AgencyBranch,
		&res.AgencyTel,
		&res.AgencyFax,
		&res.AgencyAddress,
		&res.ConfirmedAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}

// scanReservations сканирует результаты запроса в слайс бронирований
func scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}
