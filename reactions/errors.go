package reactions

import "errors"

var (
	// ErrEmptyReaction indicates a reaction without at least one
	// reactant and one product.
	ErrEmptyReaction = errors.New("reactions: reaction needs at least one reactant and one product")
	// ErrLengthMismatch indicates compositions and coefficients of
	// different lengths.
	ErrLengthMismatch = errors.New("reactions: compositions and coefficients must have equal length")
	// ErrZeroCoefficient indicates an explicit zero coefficient.
	ErrZeroCoefficient = errors.New("reactions: coefficients must be non-zero")
	// ErrDuplicateComposition indicates one species listed twice.
	ErrDuplicateComposition = errors.New("reactions: duplicate composition")
	// ErrSharedComposition indicates a species appearing as both
	// reactant and product; cancel shared species before balancing.
	ErrSharedComposition = errors.New("reactions: composition on both sides")
)
