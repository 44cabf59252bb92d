package entries

import "errors"

var (
	// ErrNotSubset indicates a requested chemical system that is not
	// contained in the set's chemsys.
	ErrNotSubset = errors.New("entries: requested chemsys is not a subset of the set's chemsys")
	// ErrNoEntry indicates no entry matches the requested formula.
	ErrNoEntry = errors.New("entries: no entry for formula")
	// ErrEmptySet indicates an operation requiring a non-empty set.
	ErrEmptySet = errors.New("entries: set is empty")
)
