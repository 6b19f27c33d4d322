package tensor

import "errors"

// Errors reported by Tensor and Matrix operations.
// Callers match them with errors.Is; the wrapping message carries the offending shapes.
var (
	// ErrShapeMismatch reports incompatible sizes or shapes (construction, reshape, strict elementwise ops).
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrBroadcast reports shapes that cannot be broadcast together.
	ErrBroadcast = errors.New("shapes not broadcastable")

	// ErrRank reports an operand with the wrong number of dimensions.
	ErrRank = errors.New("wrong rank")

	// ErrRange reports invalid slice bounds, axes, or permutations.
	ErrRange = errors.New("invalid range")

	// ErrIndexOutOfRange reports an element index outside the array bounds.
	ErrIndexOutOfRange = errors.New("index out of range")
)
