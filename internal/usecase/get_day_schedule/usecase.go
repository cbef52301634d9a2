package get_day_schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/RBM-ScheduleService/internal/domain"
	cache "github.com/m04kA/RBM-ScheduleService/internal/infra/cache/schedule"
	"github.com/m04kA/RBM-ScheduleService/internal/integrations/staffdir"
)

// UseCase use case сборки расписания дня: ось, колонки залов,
// индикатор текущего времени и навигация по датам
type UseCase struct {
	reservationRepo ReservationRepository
	venueRepo       VenueRepository
	staffClient     StaffDirClient
	indicator       IndicatorService
	cache           ScheduleCache
	axis            domain.Axis
	initialScroll   float64
	todayScroll     float64
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	venueRepo VenueRepository,
	staffClient StaffDirClient,
	indicator IndicatorService,
	scheduleCache ScheduleCache,
	axis domain.Axis,
	initialScrollHours float64,
	todayScrollHours float64,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		venueRepo:       venueRepo,
		staffClient:     staffClient,
		indicator:       indicator,
		cache:           scheduleCache,
		axis:            axis,
		initialScroll:   initialScrollHours,
		todayScroll:     todayScrollHours,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case сборки расписания дня.
//
// Ошибки чтения данных не валят экран: день отдается с пустыми колонками,
// ошибка уходит в лог. Ошибкой наружу являются только невалидные входные данные.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDaySchedule: user=%d, restaurant=%d, date=%s",
		req.UserID, req.RestaurantID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetDaySchedule: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Пробуем кэш. Состояние индикатора в кэш не попадает
	// и навешивается на ответ после чтения.
	var cached Response
	if err := uc.cache.Get(ctx, req.RestaurantID, req.Date, &cached); err == nil {
		uc.logger.Info("GetDaySchedule: cache hit for restaurant=%d, date=%s",
			req.RestaurantID, req.Date.Format(domain.DateFormat))
		uc.attachIndicator(&cached, req)
		return &cached, nil
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		uc.logger.Warn("GetDaySchedule: cache read failed, falling back to storage: %v", err)
	}

	// 3. Залы ресторана. Нет залов - пустая сетка, это не ошибка.
	venues, err := uc.venueRepo.ListByRestaurant(ctx, req.RestaurantID)
	if err != nil {
		uc.logger.Error("GetDaySchedule: failed to list venues for restaurant=%d: %v", req.RestaurantID, err)
		venues = nil
	}

	// 4. Бронирования на дату. Ошибка чтения дает пустой день.
	reservations := uc.fetchReservations(ctx, req)

	// 5. Резолвим имена персонала одним batch-запросом
	staffNames := uc.resolveStaffNames(ctx, reservations)

	// 6. Раскладываем бронирования по колонкам залов
	columns := buildColumns(uc.axis, venues, reservations, staffNames)

	resp := &Response{
		RestaurantID: req.RestaurantID,
		Date:         req.Date.Format(domain.DateFormat),
		Axis:         buildAxisView(uc.axis),
		Columns:      columns,
		Navigation:   buildNavigation(req.Date, now),
		Scroll:       buildScrollView(uc.axis, uc.initialScroll, uc.todayScroll),
	}

	// 7. Кэшируем собранный день до навешивания индикатора
	if err := uc.cache.Set(ctx, req.RestaurantID, req.Date, resp); err != nil {
		uc.logger.Warn("GetDaySchedule: cache write failed: %v", err)
	}

	// 8. Состояние индикатора всегда свежее
	uc.attachIndicator(resp, req)

	uc.logger.Info("GetDaySchedule: built %d columns with %d reservations for restaurant=%d, date=%s",
		len(columns), len(reservations), req.RestaurantID, req.Date.Format(domain.DateFormat))

	return resp, nil
}

// fetchReservations получает бронирования на дату, деградируя до пустого дня
func (uc *UseCase) fetchReservations(ctx context.Context, req *Request) []*domain.Reservation {
	filter := domain.DayReservationsFilter{
		RestaurantID: req.RestaurantID,
		Date:         &req.Date,
	}

	reservations, err := uc.reservationRepo.GetByRestaurantWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetDaySchedule: failed to fetch reservations for restaurant=%d, date=%s: %v",
			req.RestaurantID, req.Date.Format(domain.DateFormat), err)
		return nil
	}

	return reservations
}

// resolveStaffNames резолвит имена назначенного персонала.
// При недоступности справочника деградирует до temp_name из назначения.
func (uc *UseCase) resolveStaffNames(ctx context.Context, reservations []*domain.Reservation) map[int64][]string {
	userIDs := make([]int64, 0)
	seen := make(map[int64]struct{})
	for _, res := range reservations {
		for _, a := range res.Staff {
			if a.UserID == nil {
				continue
			}
			if _, ok := seen[*a.UserID]; ok {
				continue
			}
			seen[*a.UserID] = struct{}{}
			userIDs = append(userIDs, *a.UserID)
		}
	}

	members, err := uc.staffClient.ResolveNamesWithGracefulDegradation(ctx, userIDs)
	if err != nil {
		uc.logger.Warn("GetDaySchedule: staff directory degraded, using stored names: %v", err)
		members = nil
	}

	names := make(map[int64][]string, len(reservations))
	for _, res := range reservations {
		for _, a := range res.Staff {
			names[res.ID] = append(names[res.ID], assignmentName(a, members))
		}
	}

	return names
}

// assignmentName имя назначения: справочник -> temp_name -> плейсхолдер с ID
func assignmentName(a domain.StaffAssignment, members map[int64]staffdir.StaffMember) string {
	if a.UserID != nil {
		if m, ok := members[*a.UserID]; ok && m.ShortName != "" {
			return m.ShortName
		}
	}
	if a.TempName != nil && *a.TempName != "" {
		return *a.TempName
	}
	if a.UserID != nil {
		return fmt.Sprintf("#%d", *a.UserID)
	}
	return ""
}

// buildColumns собирает колонки залов в порядке репозитория (по имени).
// Бронирования без назначенного зала в сетку не попадают - они видны
// в табличном списке бронирований.
func buildColumns(
	axis domain.Axis,
	venues []domain.Venue,
	reservations []*domain.Reservation,
	staffNames map[int64][]string,
) []VenueColumn {
	byVenue := make(map[int64][]*domain.Reservation, len(venues))
	for _, res := range reservations {
		if res.VenueID == nil {
			continue
		}
		byVenue[*res.VenueID] = append(byVenue[*res.VenueID], res)
	}

	columns := make([]VenueColumn, 0, len(venues))
	for _, v := range venues {
		blocks := make([]Block, 0)
		for _, res := range byVenue[v.ID] {
			blocks = append(blocks, layoutReservation(axis, res, staffNames[res.ID])...)
		}
		columns = append(columns, VenueColumn{
			VenueID:   v.ID,
			VenueName: v.Name,
			Capacity:  v.Capacity,
			Blocks:    blocks,
		})
	}

	return columns
}

// attachIndicator навешивает актуальное состояние индикатора на ответ
func (uc *UseCase) attachIndicator(resp *Response, req *Request) {
	visible, top := uc.indicator.StateFor(req.Date)
	resp.Indicator = IndicatorView{Visible: visible, Top: top}
}
