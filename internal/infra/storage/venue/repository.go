package venue

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/RBM-ScheduleService/internal/domain"
	"github.com/m04kA/RBM-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/RBM-ScheduleService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с залами ресторана
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория залов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает зал по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Venue, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"restaurant_id",
		"name",
		"capacity",
		"created_at",
		"updated_at",
	).
		From("venues").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var v domain.Venue
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&v.ID,
		&v.RestaurantID,
		&v.Name,
		&v.Capacity,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrVenueNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan venue: %v", ErrScanRow, err)
	}

	return &v, nil
}

// ListByRestaurant возвращает все залы ресторана, отсортированные по имени
func (r *Repository) ListByRestaurant(ctx context.Context, restaurantID int64) ([]domain.Venue, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"restaurant_id",
		"name",
		"capacity",
		"created_at",
		"updated_at",
	).
		From("venues").
		Where(squirrel.Eq{"restaurant_id": restaurantID}).
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByRestaurant - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByRestaurant - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	venues := make([]domain.Venue, 0)
	for rows.Next() {
		var v domain.Venue
		if err := rows.Scan(
			&v.ID,
			&v.RestaurantID,
			&v.Name,
			&v.Capacity,
			&v.CreatedAt,
			&v.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ListByRestaurant - scan row: %v", ErrScanRow, err)
		}
		venues = append(venues, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByRestaurant - rows error: %v", ErrScanRow, err)
	}

	return venues, nil
}
