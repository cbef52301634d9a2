package get_day_schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RBM-ScheduleService/internal/domain"
	cache "github.com/m04kA/RBM-ScheduleService/internal/infra/cache/schedule"
	"github.com/m04kA/RBM-ScheduleService/internal/integrations/staffdir"
	"github.com/m04kA/RBM-ScheduleService/pkg/ptr"
	"github.com/m04kA/RBM-ScheduleService/pkg/types"
)

// --- Фейки зависимостей ---

type fakeReservationRepo struct {
	reservations []*domain.Reservation
	err          error
}

func (f *fakeReservationRepo) GetByRestaurantWithFilter(_ context.Context, _ domain.DayReservationsFilter) ([]*domain.Reservation, error) {
	return f.reservations, f.err
}

type fakeVenueRepo struct {
	venues []domain.Venue
	err    error
}

func (f *fakeVenueRepo) ListByRestaurant(_ context.Context, _ int64) ([]domain.Venue, error) {
	return f.venues, f.err
}

type fakeStaffClient struct {
	members map[int64]staffdir.StaffMember
	err     error
}

func (f *fakeStaffClient) ResolveNamesWithGracefulDegradation(_ context.Context, _ []int64) (map[int64]staffdir.StaffMember, error) {
	return f.members, f.err
}

type fakeIndicator struct {
	visible bool
	top     float64
}

func (f *fakeIndicator) StateFor(_ time.Time) (bool, float64) {
	return f.visible, f.top
}

type fakeCache struct {
	stored map[string]Response
	setN   int
}

func cacheKey(restaurantID int64, date time.Time) string {
	return date.Format("2006-01-02")
}

func (f *fakeCache) Get(_ context.Context, restaurantID int64, date time.Time, dest interface{}) error {
	resp, ok := f.stored[cacheKey(restaurantID, date)]
	if !ok {
		return cache.ErrCacheMiss
	}
	*dest.(*Response) = resp
	return nil
}

func (f *fakeCache) Set(_ context.Context, restaurantID int64, date time.Time, value interface{}) error {
	if f.stored == nil {
		f.stored = make(map[string]Response)
	}
	f.stored[cacheKey(restaurantID, date)] = *value.(*Response)
	f.setN++
	return nil
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(
	reservations *fakeReservationRepo,
	venues *fakeVenueRepo,
	staff *fakeStaffClient,
	indicator *fakeIndicator,
	c *fakeCache,
	now time.Time,
) *UseCase {
	uc := NewUseCase(
		reservations,
		venues,
		staff,
		indicator,
		c,
		domain.Axis{StartHour: 0, EndHour: 24, HourHeight: 120, HeaderHeight: 30},
		9.5,
		10.5,
		nopLogger{},
	)
	uc.timeProvider = &fakeTimeProvider{now: now}
	return uc
}

func testDate() time.Time {
	return time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
}

func TestExecute_FullDay(t *testing.T) {
	reservation := &domain.Reservation{
		ID:           1,
		RestaurantID: 10,
		VenueID:      ptr.Ptr(int64(5)),
		Date:         testDate(),
		StartTime:    types.TimeString("12:00"),
		EndTime:      types.TimeString("15:00"),
		PartySize:    20,
		Status:       domain.StatusConfirmed,
		Staff: []domain.StaffAssignment{
			{UserID: ptr.Ptr(int64(7)), Role: domain.RoleService},
		},
	}

	uc := newTestUseCase(
		&fakeReservationRepo{reservations: []*domain.Reservation{reservation}},
		&fakeVenueRepo{venues: []domain.Venue{{ID: 5, RestaurantID: 10, Name: "Основной зал", Capacity: 40}}},
		&fakeStaffClient{members: map[int64]staffdir.StaffMember{
			7: {ID: 7, ShortName: "Иванов И."},
		}},
		&fakeIndicator{visible: true, top: 1470},
		&fakeCache{},
		time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC),
	)

	resp, err := uc.Execute(context.Background(), &Request{UserID: 1, RestaurantID: 10, Date: testDate()})
	require.NoError(t, err)

	assert.Equal(t, "2026-08-28", resp.Date)
	require.Len(t, resp.Columns, 1)
	require.Len(t, resp.Columns[0].Blocks, 1)
	assert.Equal(t, []string{"Иванов И."}, resp.Columns[0].Blocks[0].StaffNames)

	// Индикатор пришел из сервиса
	assert.True(t, resp.Indicator.Visible)
	assert.Equal(t, 1470.0, resp.Indicator.Top)

	// Навигация по датам
	assert.Equal(t, "2026-08-27", resp.Navigation.PrevDate)
	assert.Equal(t, "2026-08-29", resp.Navigation.NextDate)
	assert.True(t, resp.Navigation.IsToday)

	// Якоря прокрутки
	assert.Equal(t, 1140.0, resp.Scroll.InitialOffsetPx)
	assert.Equal(t, 1260.0, resp.Scroll.TodayOffsetPx)
}

func TestExecute_ValidationError(t *testing.T) {
	uc := newTestUseCase(
		&fakeReservationRepo{}, &fakeVenueRepo{}, &fakeStaffClient{},
		&fakeIndicator{}, &fakeCache{}, time.Now(),
	)

	_, err := uc.Execute(context.Background(), &Request{UserID: 1, RestaurantID: 0, Date: testDate()})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{UserID: 1, RestaurantID: 10})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_FetchFailureDegradesToEmptyDay(t *testing.T) {
	// Падение чтения бронирований не валит экран: пустые колонки, не ошибка
	uc := newTestUseCase(
		&fakeReservationRepo{err: errors.New("connection refused")},
		&fakeVenueRepo{venues: []domain.Venue{{ID: 5, RestaurantID: 10, Name: "Основной зал"}}},
		&fakeStaffClient{},
		&fakeIndicator{},
		&fakeCache{},
		time.Now(),
	)

	resp, err := uc.Execute(context.Background(), &Request{UserID: 1, RestaurantID: 10, Date: testDate()})
	require.NoError(t, err)
	require.Len(t, resp.Columns, 1)
	assert.Empty(t, resp.Columns[0].Blocks)
}

func TestExecute_StaffDirectoryDegradation(t *testing.T) {
	reservation := &domain.Reservation{
		ID:           1,
		RestaurantID: 10,
		VenueID:      ptr.Ptr(int64(5)),
		Date:         testDate(),
		StartTime:    types.TimeString("12:00"),
		EndTime:      types.TimeString("15:00"),
		Status:       domain.StatusPending,
		Staff: []domain.StaffAssignment{
			{UserID: ptr.Ptr(int64(7)), TempName: ptr.Ptr("Петров"), Role: domain.RoleService},
			{UserID: ptr.Ptr(int64(8)), Role: domain.RoleService},
		},
	}

	uc := newTestUseCase(
		&fakeReservationRepo{reservations: []*domain.Reservation{reservation}},
		&fakeVenueRepo{venues: []domain.Venue{{ID: 5, RestaurantID: 10, Name: "Основной зал"}}},
		&fakeStaffClient{err: staffdir.ErrServiceDegraded},
		&fakeIndicator{},
		&fakeCache{},
		time.Now(),
	)

	resp, err := uc.Execute(context.Background(), &Request{UserID: 1, RestaurantID: 10, Date: testDate()})
	require.NoError(t, err)
	require.Len(t, resp.Columns[0].Blocks, 1)

	// Справочник недоступен: temp_name, затем плейсхолдер с ID
	assert.Equal(t, []string{"Петров", "#8"}, resp.Columns[0].Blocks[0].StaffNames)
}

func TestExecute_CacheHitSkipsStorage(t *testing.T) {
	c := &fakeCache{}

	repo := &fakeReservationRepo{reservations: []*domain.Reservation{}}
	uc := newTestUseCase(
		repo,
		&fakeVenueRepo{venues: []domain.Venue{{ID: 5, RestaurantID: 10, Name: "Основной зал"}}},
		&fakeStaffClient{},
		&fakeIndicator{visible: true, top: 500},
		c,
		time.Now(),
	)

	req := &Request{UserID: 1, RestaurantID: 10, Date: testDate()}

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, c.setN)

	// Второй запрос отвечает из кэша и не пишет повторно
	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, c.setN)

	// Индикатор навешивается свежим даже на кэшированный ответ
	assert.True(t, resp.Indicator.Visible)
	assert.Equal(t, 500.0, resp.Indicator.Top)
}

func TestExecute_EmptyVenuesEmptyGrid(t *testing.T) {
	uc := newTestUseCase(
		&fakeReservationRepo{},
		&fakeVenueRepo{},
		&fakeStaffClient{},
		&fakeIndicator{},
		&fakeCache{},
		time.Now(),
	)

	resp, err := uc.Execute(context.Background(), &Request{UserID: 1, RestaurantID: 10, Date: testDate()})
	require.NoError(t, err)
	assert.Empty(t, resp.Columns)
	// Ось и навигация присутствуют и на пустой сетке
	assert.NotEmpty(t, resp.Axis.HourLabels)
}
