package levelancestor

import "errors"

var (
	// ErrCapacityExceeded is returned by the quadratic table variant's
	// constructor when N exceeds its configured capacity.
	ErrCapacityExceeded = errors.New("level ancestor: capacity exceeded")
	// ErrInvalidTree is returned by Build when the parent array does not
	// describe a single tree reachable from the root.
	ErrInvalidTree = errors.New("level ancestor: invalid tree")
	// ErrBadInput is returned by Query for a node id outside [0, N).
	ErrBadInput = errors.New("level ancestor: bad node id")
	// ErrNotBuilt is returned by Query when called before a successful
	// Build, or after Build left the instance poisoned.
	ErrNotBuilt = errors.New("level ancestor: not built")
)
