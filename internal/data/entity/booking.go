package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking reserves a service for a user over [StartTime, EndTime).
// EndTime is always derived from the service duration at creation time;
// client-supplied end times are never trusted.
type Booking struct {
	Base
	UserID    string        `db:"user_id"` // opaque ID issued by the identity provider
	ServiceID uuid.UUID     `db:"service_id"`
	StartTime time.Time     `db:"start_time"`
	EndTime   time.Time     `db:"end_time"`
	Status    BookingStatus `db:"status"`

	// Service is populated on reads that join the services table.
	Service *Service `db:"-"`
}
