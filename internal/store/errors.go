package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrBookingNotSaved is returned when an INSERT completes without error
	// but affects no rows.
	ErrBookingNotSaved = errors.New("booking was not saved")

	// ErrDuplicateBooking is returned when a booking with the same id is
	// already stored.
	ErrDuplicateBooking = errors.New("booking already exists")

	// ErrTemporary wraps driver errors classified as [Retryable]: the
	// operation may succeed if attempted again.
	ErrTemporary = errors.New("temporary database failure")

	// ErrUnsupportedDriver is returned by [NewConnect] for a driver name it
	// does not know.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or UPDATE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan booking rows")
)
