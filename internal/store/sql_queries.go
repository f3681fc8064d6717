package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/dental-site/models"
)

const bookingsTable = "bookings"

var bookingColumns = []string{
	"id",
	"full_name",
	"email",
	"phone",
	"service",
	"preferred_date",
	"message",
	"created_at",
	"forwarded_at",
}

func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.placeholder)
}

func (db *DB) saveBookingQuery(b models.Booking) (string, []any, error) {
	return db.builder().
		Insert(bookingsTable).
		Columns(bookingColumns...).
		Values(
			b.ID,
			b.FullName,
			b.Email,
			b.Phone,
			string(b.Service),
			b.PreferredDate,
			b.Message,
			b.CreatedAt,
			b.ForwardedAt,
		).
		ToSql()
}

func (db *DB) listRecentBookingsQuery(limit int) (string, []any, error) {
	return db.builder().
		Select(bookingColumns...).
		From(bookingsTable).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
}

func (db *DB) listUnforwardedBookingsQuery(limit int) (string, []any, error) {
	return db.builder().
		Select(bookingColumns...).
		From(bookingsTable).
		Where(sq.Eq{"forwarded_at": nil}).
		OrderBy("created_at ASC").
		Limit(uint64(limit)).
		ToSql()
}

func (db *DB) markForwardedQuery(at time.Time, ids []string) (string, []any, error) {
	return db.builder().
		Update(bookingsTable).
		Set("forwarded_at", at).
		Where(sq.Eq{"id": ids}).
		ToSql()
}
