package repository

import (
	"context"
	"fmt"
	"time"

	"booking-api/internal/data/entity"
	"booking-api/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingRepository interface {
	// CreateIfFree inserts the booking only if no confirmed booking for the
	// same service overlaps it. The check and the insert run in one
	// transaction serialized per service, so two concurrent requests for the
	// same slot cannot both commit.
	CreateIfFree(ctx context.Context, booking *entity.Booking) error

	// FindByServiceBetween returns the service's confirmed bookings that
	// overlap [from, to), ordered by start time.
	FindByServiceBetween(ctx context.Context, serviceID uuid.UUID, from, to time.Time) ([]*entity.Booking, error)

	FindByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.Booking, error)
	CountByUserID(ctx context.Context, userID string) (int64, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) CreateIfFree(ctx context.Context, booking *entity.Booking) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin booking transaction", zap.Error(err))
		return fmt.Errorf("begin booking transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Serialize concurrent writers for this service. The lock is released
	// automatically at commit/rollback.
	_, err = tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1::text))`, booking.ServiceID)
	if err != nil {
		r.log.Error("Failed to take booking lock",
			zap.Error(err),
			zap.String("service_id", booking.ServiceID.String()),
		)
		return fmt.Errorf("lock service %s: %w", booking.ServiceID.String(), err)
	}

	// Same half-open predicate the availability engine uses:
	// conflict iff existing.start < new.end AND existing.end > new.start.
	overlapQuery := `
		SELECT COUNT(*)
		FROM bookings
		WHERE service_id = $1
		  AND status = 'confirmed'
		  AND start_time < $3
		  AND end_time > $2
	`

	var conflicts int
	err = tx.QueryRow(ctx, overlapQuery, booking.ServiceID, booking.StartTime, booking.EndTime).Scan(&conflicts)
	if err != nil {
		r.log.Error("Failed to check booking overlap",
			zap.Error(err),
			zap.String("service_id", booking.ServiceID.String()),
		)
		return fmt.Errorf("check booking overlap: %w", err)
	}

	if conflicts > 0 {
		return entity.ErrBookingConflict
	}

	insertQuery := `
		INSERT INTO bookings (id, user_id, service_id, start_time, end_time, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err = tx.Exec(ctx, insertQuery,
		booking.ID,
		booking.UserID,
		booking.ServiceID,
		booking.StartTime,
		booking.EndTime,
		booking.Status,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("user_id", booking.UserID),
			zap.String("service_id", booking.ServiceID.String()),
		)
		return fmt.Errorf("create booking: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit booking", zap.Error(err))
		return fmt.Errorf("commit booking: %w", err)
	}

	return nil
}

func (r *bookingRepository) FindByServiceBetween(ctx context.Context, serviceID uuid.UUID, from, to time.Time) ([]*entity.Booking, error) {
	query := `
		SELECT id, user_id, service_id, start_time, end_time, status, created_at, updated_at
		FROM bookings
		WHERE service_id = $1
		  AND status = 'confirmed'
		  AND start_time < $3
		  AND end_time > $2
		ORDER BY start_time
	`

	rows, err := r.db.Query(ctx, query, serviceID, from, to)
	if err != nil {
		r.log.Error("Failed to find bookings for service",
			zap.Error(err),
			zap.String("service_id", serviceID.String()),
			zap.Time("from", from),
			zap.Time("to", to),
		)
		return nil, fmt.Errorf("find bookings for service %s: %w", serviceID.String(), err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		var booking entity.Booking
		err := rows.Scan(
			&booking.ID,
			&booking.UserID,
			&booking.ServiceID,
			&booking.StartTime,
			&booking.EndTime,
			&booking.Status,
			&booking.CreatedAt,
			&booking.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, &booking)
	}

	return bookings, nil
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT b.id, b.user_id, b.service_id, b.start_time, b.end_time, b.status, b.created_at, b.updated_at,
		       s.id, s.name, s.price, s.duration_minutes, s.created_at, s.updated_at
		FROM bookings b
		JOIN services s ON s.id = b.service_id
		WHERE b.user_id = $1
		ORDER BY b.start_time DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find bookings by user ID %s: %w", userID, err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		var booking entity.Booking
		var service entity.Service
		err := rows.Scan(
			&booking.ID,
			&booking.UserID,
			&booking.ServiceID,
			&booking.StartTime,
			&booking.EndTime,
			&booking.Status,
			&booking.CreatedAt,
			&booking.UpdatedAt,
			&service.ID,
			&service.Name,
			&service.Price,
			&service.DurationMinutes,
			&service.CreatedAt,
			&service.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		booking.Service = &service
		bookings = append(bookings, &booking)
	}

	return bookings, nil
}

func (r *bookingRepository) CountByUserID(ctx context.Context, userID string) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE user_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return 0, fmt.Errorf("count bookings by user ID %s: %w", userID, err)
	}

	return count, nil
}
