package nuclear

import "fmt"

// Reason is the closed set of attack failure reasons.
type Reason int

const (
	SystemOffline Reason = iota + 1
	RotationNeedsOil
	MissedByMeters
)

func (r Reason) String() string {
	switch r {
	case SystemOffline:
		return "system offline"
	case RotationNeedsOil:
		return "rotation needs oil"
	case MissedByMeters:
		return "missed by meters"
	}
	return fmt.Sprintf("reason(%d)", int(r))
}

// AttackError is a comparable value, errors.Is matches on reason and meters.
type AttackError struct {
	Reason Reason
	// Meters is set for MissedByMeters only.
	Meters int
}

var (
	ErrSystemOffline    error = AttackError{Reason: SystemOffline}
	ErrRotationNeedsOil error = AttackError{Reason: RotationNeedsOil}
)

// MissedBy returns the MissedByMeters failure for the given distance.
func MissedBy(meters int) error {
	return AttackError{Reason: MissedByMeters, Meters: meters}
}

func (e AttackError) Error() string {
	if e.Reason == MissedByMeters {
		return fmt.Sprintf("missed by %d meters", e.Meters)
	}
	return e.Reason.String()
}
