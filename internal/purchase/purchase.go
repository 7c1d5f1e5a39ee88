// Package purchase holds the stub entitlement state. Nothing here talks to
// a store; the flag is read from settings and handed to the export gate.
package purchase

// Manager reports whether the pro entitlement is active.
type Manager struct {
	proActive bool
}

// NewManager creates a manager with the given entitlement state.
func NewManager(proActive bool) *Manager {
	return &Manager{proActive: proActive}
}

// ProActive reports the current entitlement state.
func (m *Manager) ProActive() bool {
	return m.proActive
}

// SetProActive updates the entitlement state, e.g. after a restore.
func (m *Manager) SetProActive(active bool) {
	m.proActive = active
}
