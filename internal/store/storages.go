package store

// Storages groups the repositories available to the service layer. A nil
// field means the corresponding persistence is not configured.
type Storages struct {
	BookingRepository BookingRepository
}

// NewStorages builds the repositories on top of db. A nil db yields empty
// Storages.
func NewStorages(db *DB) *Storages {
	if db == nil {
		return &Storages{}
	}
	return &Storages{
		BookingRepository: NewBookingRepository(db),
	}
}
