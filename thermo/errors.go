package thermo

import "errors"

var (
	// ErrNoEntries indicates an empty entry list was supplied.
	ErrNoEntries = errors.New("thermo: at least one entry is required")
	// ErrMissingElementRef indicates an element of the chemical system
	// has no elemental reference entry.
	ErrMissingElementRef = errors.New("thermo: missing elemental reference entry")
	// ErrOutOfChemsys indicates a queried composition contains elements
	// outside the phase diagram's chemical system.
	ErrOutOfChemsys = errors.New("thermo: composition outside chemical system")
	// ErrInfeasible indicates the hull linear program could not be solved.
	ErrInfeasible = errors.New("thermo: hull energy program infeasible")
)
