package reservations

import (
	"context"
	"errors"
	"fmt"

	reservationRepo "github.com/m04kA/RBM-ScheduleService/internal/infra/storage/reservation"
	"github.com/m04kA/RBM-ScheduleService/internal/service/reservations/models"
)

// Service сервис для работы с бронированиями: чтение, списки, удаление.
// Создание и редактирование живут в отдельных usecase-пакетах.
type Service struct {
	reservationRepo ReservationRepository
	venueRepo       VenueRepository
	scheduleCache   ScheduleCache
	txManager       TransactionManager
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	venueRepo VenueRepository,
	scheduleCache ScheduleCache,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		venueRepo:       venueRepo,
		scheduleCache:   scheduleCache,
		txManager:       txManager,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID вместе с персоналом и меню
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d for user=%d", id, userID)

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched reservation id=%d", id)
	return models.FromDomainReservation(reservation), nil
}

// GetRestaurantReservations получает бронирования ресторана с фильтрацией
// по дате, залу и статусу. Используется табличным списком бронирований.
func (s *Service) GetRestaurantReservations(ctx context.Context, req *models.GetReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetRestaurantReservations: fetching reservations for restaurant=%d, user=%d",
		req.RestaurantID, req.UserID)

	if req.RestaurantID <= 0 {
		return nil, fmt.Errorf("%w: restaurantID must be positive", ErrInvalidInput)
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetRestaurantReservations: invalid status=%v for restaurant=%d", req.Status, req.RestaurantID)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidStatus)
	}

	reservations, err := s.reservationRepo.GetByRestaurantWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetRestaurantReservations: repository error for restaurant=%d: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: GetRestaurantReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetRestaurantReservations: successfully fetched %d reservations for restaurant=%d",
		len(reservations), req.RestaurantID)
	return models.FromDomainReservationList(reservations), nil
}

// GetVenues получает список залов ресторана
func (s *Service) GetVenues(ctx context.Context, restaurantID int64) (*models.VenueListResponse, error) {
	s.logger.Info("GetVenues: fetching venues for restaurant=%d", restaurantID)

	if restaurantID <= 0 {
		return nil, fmt.Errorf("%w: restaurantID must be positive", ErrInvalidInput)
	}

	venues, err := s.venueRepo.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		s.logger.Error("GetVenues: repository error for restaurant=%d: %v", restaurantID, err)
		return nil, fmt.Errorf("%w: GetVenues - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetVenues: successfully fetched %d venues for restaurant=%d", len(venues), restaurantID)
	return models.FromDomainVenueList(venues), nil
}

// Delete физически удаляет бронирование вместе с персоналом и меню.
// Удаление и инвалидация кэша расписания идут в одной транзакции на стороне БД,
// кэш инвалидируется после успешного коммита.
func (s *Service) Delete(ctx context.Context, id int64, userID int64) error {
	s.logger.Info("Delete: deleting reservation id=%d by user=%d", id, userID)

	// Читаем бронь до удаления, чтобы знать, какой день инвалидировать
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Delete: reservation id=%d not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Delete: failed to fetch reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.reservationRepo.Delete(ctx, id)
	})
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return ErrReservationNotFound
		}
		s.logger.Error("Delete: failed to delete reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - transaction error: %v", ErrInternal, err)
	}

	if err := s.scheduleCache.Invalidate(ctx, reservation.RestaurantID, reservation.Date); err != nil {
		// Кэш с коротким TTL, устаревшая запись истечет сама
		s.logger.Warn("Delete: cache invalidation failed for restaurant=%d: %v", reservation.RestaurantID, err)
	}

	s.logger.Info("Delete: successfully deleted reservation id=%d", id)
	return nil
}
