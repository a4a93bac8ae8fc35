package xerrors

// Domain errors for the levelancestor builder and CLI layer. These wrap the
// plain sentinel errors levelancestor itself returns (see
// levelancestor/errors.go) with operator-facing detail, the way the teacher
// toolkit's algo_errors.go wraps its own package-level sentinels.
var (
	// ErrCapacityExceeded is returned when the quadratic table variant is
	// asked to build over more nodes than its configured cap allows.
	ErrCapacityExceeded = New(ErrResourceExhausted, 400101, "capacity exceeded",
		"reduce node count or switch to a non-quadratic variant", nil)

	// ErrInvalidTree is returned when Build finds the parent/child graph is
	// not a single tree reachable from the root.
	ErrInvalidTree = New(ErrFailedPrecondition, 400102, "invalid tree",
		"every node must be reachable from the root via parent pointers", nil)

	// ErrBadInput is returned by Query for a node id outside [0, N).
	ErrBadInput = New(ErrInvalidArg, 400103, "bad node id",
		"node id must be in [0, N)", nil)

	// ErrNotBuilt is returned by Query when called before a successful
	// Build, or after Build failed and left the instance poisoned.
	ErrNotBuilt = New(ErrFailedPrecondition, 400104, "not built",
		"call Build successfully before querying", nil)
)
