package entity

// Service is a bookable offering with a fixed duration.
type Service struct {
	Base
	Name            string  `db:"name"`
	Price           float64 `db:"price"`
	DurationMinutes int     `db:"duration_minutes"`
}
