package maps

import "sync/atomic"

// ViewState is owned by the caller of the client and tells map views
// whether their cached state must be rebuilt.
type ViewState struct {
	reload atomic.Bool
}

// ForceReload returns true if the map page must be reloaded.
func (s *ViewState) ForceReload() bool {
	return s.reload.Load()
}

// SetForceReload marks whether the map page must be reloaded.
func (s *ViewState) SetForceReload(value bool) {
	s.reload.Store(value)
}
