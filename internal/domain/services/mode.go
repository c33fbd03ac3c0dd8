// Package services contains the chronology derivation engine.
package services

// Mode selects how character positions are derived. The two modes are
// mutually exclusive and exhaustive: canonical derivation folds the
// movement history, simulation shadows it with explicit placements.
type Mode interface {
	isMode()
}

// Canonical derives positions from the effective movement history.
type Canonical struct{}

func (Canonical) isMode() {}

// Simulation overrides canonical positions with a sparse map of
// character id to location id. Characters without an override keep
// their starting position; death is not modeled. The override map has
// no persistence guarantee and a nil map is treated as empty.
type Simulation struct {
	Overrides map[string]string
}

func (Simulation) isMode() {}
