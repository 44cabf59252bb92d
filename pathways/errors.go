package pathways

import "errors"

var (
	// ErrEmptyPathway signals a pathway constructed with no reactions.
	ErrEmptyPathway = errors.New("pathways: pathway has no reactions")

	// ErrNoPathways signals a balancing call with zero candidate pathways.
	ErrNoPathways = errors.New("pathways: no candidate pathways")

	// ErrCostMismatch signals a cost slice whose length differs from the
	// reaction slice.
	ErrCostMismatch = errors.New("pathways: costs length differs from reactions")

	// ErrCoeffMismatch signals a coefficient slice whose length differs
	// from the reaction slice.
	ErrCoeffMismatch = errors.New("pathways: coefficients length differs from reactions")

	// ErrTooManyReactions signals an interdependency search over more
	// reactions than the configured subset-size ceiling allows.
	ErrTooManyReactions = errors.New("pathways: reaction count exceeds MaxSubsetSize")
)
