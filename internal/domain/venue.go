package domain

import "time"

// Venue represents a bookable banquet hall of a restaurant.
// Immutable for the duration of a schedule view.
type Venue struct {
	ID           int64
	RestaurantID int64
	Name         string
	Capacity     int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
