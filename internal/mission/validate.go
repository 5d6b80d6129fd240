package mission

import (
	"errors"
	"fmt"
)

var (
	ErrNoElements     = errors.New("mission has no elements")
	ErrUnnamedElement = errors.New("mission has an unnamed element")
	ErrNoPlayer       = errors.New("mission has no player element")
	ErrExtraPlayer    = errors.New("mission has more than one player element")
	ErrWrongSector    = errors.New("player element is not in the mission sector")
)

// Validate checks the mission's structural rules, sets OK accordingly
// and returns every problem found.
func (m *Mission) Validate() error {
	var errs []error

	if len(m.Elements) == 0 {
		errs = append(errs, ErrNoElements)
	} else {
		foundPlayer := false
		for _, e := range m.Elements {
			if e.Name == "" {
				errs = append(errs, fmt.Errorf("%w: element %d", ErrUnnamedElement, e.ID))
			}
			if !e.Player {
				continue
			}
			if foundPlayer {
				errs = append(errs, fmt.Errorf("%w: %s", ErrExtraPlayer, e.Name))
				continue
			}
			foundPlayer = true
			if e.Region != m.Region {
				errs = append(errs, fmt.Errorf("%w: %s is in %q, mission is in %q", ErrWrongSector, e.Name, e.Region, m.Region))
			}
		}
		if !foundPlayer {
			errs = append(errs, ErrNoPlayer)
		}
	}

	err := errors.Join(errs...)
	m.OK = err == nil
	return err
}
