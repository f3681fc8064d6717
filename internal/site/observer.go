package site

// Observer receives resolution events. internal/metrics implements it with
// Prometheus counters.
type Observer interface {
	ConfigResolved(kind string)
	OverrideRejected()
	UnknownTenant()
	UnknownIcon()
}

type nopObserver struct{}

func (nopObserver) ConfigResolved(string) {}
func (nopObserver) OverrideRejected()     {}
func (nopObserver) UnknownTenant()        {}
func (nopObserver) UnknownIcon()          {}
