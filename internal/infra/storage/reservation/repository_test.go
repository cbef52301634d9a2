package reservation

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RBM-ScheduleService/internal/domain"
	"github.com/m04kA/RBM-ScheduleService/pkg/ptr"
	"github.com/m04kA/RBM-ScheduleService/pkg/types"
)

func reservationRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "restaurant_id", "venue_id", "date", "start_time", "end_time",
		"party_size", "status", "notes",
		"group_name", "rep_name", "arranger_name",
		"agency_name", "agency_branch", "agency_tel", "agency_fax", "agency_address",
		"confirmed_at", "created_at", "updated_at",
	})
}

func TestRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	date := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, restaurant_id, venue_id, date, start_time, end_time, party_size, status, notes, group_name, rep_name, arranger_name, agency_name, agency_branch, agency_tel, agency_fax, agency_address, confirmed_at, created_at, updated_at FROM reservations WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(reservationRows().AddRow(
			int64(1), int64(10), int64(5), date, "12:00:00", "15:00:00",
			20, "confirmed", nil,
			"Туристическая группа", nil, nil,
			nil, nil, nil, nil, nil,
			now, now, now,
		))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, reservation_id, user_id, temp_name, role, duration_minutes FROM reservation_staff WHERE reservation_id IN ($1) ORDER BY reservation_id ASC, id ASC")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "reservation_id", "user_id", "temp_name", "role", "duration_minutes"}).
			AddRow(int64(100), int64(1), int64(7), nil, "prep", 30))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, reservation_id, menu_name, quantity, unit_price, notes FROM reservation_menus WHERE reservation_id IN ($1) ORDER BY reservation_id ASC, id ASC")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "reservation_id", "menu_name", "quantity", "unit_price", "notes"}).
			AddRow(int64(200), int64(1), "Банкетное меню", 20, 5500.0, nil))

	res, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int64(1), res.ID)
	assert.Equal(t, int64(10), res.RestaurantID)
	require.NotNil(t, res.VenueID)
	assert.Equal(t, int64(5), *res.VenueID)
	assert.Equal(t, types.TimeString("12:00"), res.StartTime)
	assert.Equal(t, domain.StatusConfirmed, res.Status)

	require.Len(t, res.Staff, 1)
	assert.Equal(t, domain.RolePrep, res.Staff[0].Role)
	assert.Equal(t, 30, res.Staff[0].DurationMinutes)

	require.Len(t, res.Menus, 1)
	assert.Equal(t, "Банкетное меню", res.Menus[0].MenuName)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery("SELECT .+ FROM reservations WHERE id = \\$1").
		WithArgs(int64(42)).
		WillReturnRows(reservationRows())

	_, err = repo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrReservationNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO reservations .+ RETURNING id, created_at, updated_at").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(77), now, now))

	res, err := repo.Create(context.Background(), &domain.Reservation{
		RestaurantID: 10,
		VenueID:      ptr.Ptr(int64(5)),
		Date:         time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
		StartTime:    types.TimeString("12:00"),
		EndTime:      types.TimeString("15:00"),
		PartySize:    20,
		Status:       domain.StatusPending,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(77), res.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateFields(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	// Пустое обновление отклоняется без похода в БД
	err = repo.UpdateFields(context.Background(), 1, domain.ReservationUpdate{})
	assert.ErrorIs(t, err, ErrNoFieldsToUpdate)

	// Переход в confirmed проставляет confirmed_at
	status := domain.StatusConfirmed
	mock.ExpectExec("UPDATE reservations SET .*confirmed_at = NOW().*").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.UpdateFields(context.Background(), 1, domain.ReservationUpdate{Status: &status})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateFields_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectExec("UPDATE reservations SET .+").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.UpdateFields(context.Background(), 42, domain.ReservationUpdate{PartySize: ptr.Ptr(25)})
	assert.ErrorIs(t, err, ErrReservationNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	// Сначала удаляются дети, затем бронь
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM reservation_staff WHERE reservation_id = $1")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM reservation_menus WHERE reservation_id = $1")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM reservations WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Delete(context.Background(), 1)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByRestaurantWithFilter_DayOrdering(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	date := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	// Выборка на конкретную дату сортируется по времени начала
	mock.ExpectQuery("SELECT .+ FROM reservations WHERE restaurant_id = \\$1 AND date = \\$2 ORDER BY start_time ASC, id ASC").
		WithArgs(int64(10), date).
		WillReturnRows(reservationRows().
			AddRow(int64(1), int64(10), int64(5), date, "12:00:00", "15:00:00",
				20, "confirmed", nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, now, now).
			AddRow(int64(2), int64(10), nil, date, "18:00:00", "21:00:00",
				8, "pending", nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, now, now))

	mock.ExpectQuery("SELECT .+ FROM reservation_staff .+").
		WillReturnRows(sqlmock.NewRows([]string{"id", "reservation_id", "user_id", "temp_name", "role", "duration_minutes"}))
	mock.ExpectQuery("SELECT .+ FROM reservation_menus .+").
		WillReturnRows(sqlmock.NewRows([]string{"id", "reservation_id", "menu_name", "quantity", "unit_price", "notes"}))

	reservations, err := repo.GetByRestaurantWithFilter(context.Background(), domain.DayReservationsFilter{
		RestaurantID: 10,
		Date:         &date,
	})
	require.NoError(t, err)
	require.Len(t, reservations, 2)

	assert.Equal(t, int64(1), reservations[0].ID)
	assert.Nil(t, reservations[1].VenueID)
	// Дети загружены пустыми слайсами, не nil
	assert.NotNil(t, reservations[0].Staff)
	assert.NotNil(t, reservations[0].Menus)

	assert.NoError(t, mock.ExpectationsWereMet())
}
