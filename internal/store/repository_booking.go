// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/dental-site/internal/logger"
	"github.com/MKhiriev/dental-site/models"
)

type bookingRepository struct {
	db *DB
}

// NewBookingRepository returns a [BookingRepository] backed by db.
func NewBookingRepository(db *DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Save(ctx context.Context, booking models.Booking) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.saveBookingQuery(booking)
	if err != nil {
		log.Err(err).Str("func", "bookingRepository.Save").Msg("error building insert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			log.Err(err).Str("func", "bookingRepository.Save").Str("booking_id", booking.ID).Msg("booking already exists")
			return ErrDuplicateBooking
		}
		log.Err(err).Str("func", "bookingRepository.Save").Msg("error executing insert")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.classify(err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "bookingRepository.Save").Msg("error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		log.Error().Str("func", "bookingRepository.Save").Str("booking_id", booking.ID).Msg("no rows inserted")
		return ErrBookingNotSaved
	}

	return nil
}

func (r *bookingRepository) ListRecent(ctx context.Context, limit int) ([]models.Booking, error) {
	query, args, err := r.db.listRecentBookingsQuery(limit)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "bookingRepository.ListRecent").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.query(ctx, "bookingRepository.ListRecent", query, args)
}

func (r *bookingRepository) ListUnforwarded(ctx context.Context, limit int) ([]models.Booking, error) {
	query, args, err := r.db.listUnforwardedBookingsQuery(limit)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "bookingRepository.ListUnforwarded").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.query(ctx, "bookingRepository.ListUnforwarded", query, args)
}

func (r *bookingRepository) MarkForwarded(ctx context.Context, at time.Time, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	query, args, err := r.db.markForwardedQuery(at, ids)
	if err != nil {
		log.Err(err).Str("func", "bookingRepository.MarkForwarded").Msg("error building update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "bookingRepository.MarkForwarded").Msg("error executing update")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.classify(err))
	}

	return nil
}

func (r *bookingRepository) query(ctx context.Context, fn, query string, args []any) ([]models.Booking, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error executing select")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.classify(err))
	}
	defer rows.Close()

	bookings := make([]models.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			log.Err(err).Str("func", fn).Msg("error scanning booking row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		bookings = append(bookings, booking)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", fn).Msg("error iterating booking rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, r.db.classify(err))
	}

	return bookings, nil
}

func scanBooking(rows *sql.Rows) (models.Booking, error) {
	var (
		b             models.Booking
		service       string
		preferredDate sql.NullString
		message       sql.NullString
		forwardedAt   sql.NullTime
	)

	err := rows.Scan(
		&b.ID,
		&b.FullName,
		&b.Email,
		&b.Phone,
		&service,
		&preferredDate,
		&message,
		&b.CreatedAt,
		&forwardedAt,
	)
	if err != nil {
		return models.Booking{}, err
	}

	b.Service = models.BookingService(service)
	b.PreferredDate = preferredDate.String
	b.Message = message.String
	if forwardedAt.Valid {
		t := forwardedAt.Time
		b.ForwardedAt = &t
	}

	return b, nil
}

// IsTemporary reports whether err was classified as retryable.
func IsTemporary(err error) bool {
	return errors.Is(err, ErrTemporary)
}
