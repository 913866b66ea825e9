package ecscore

import "errors"

// Status is the fallible-operation result channel (spec §7). Mutation
// operations that can fail for benign, expected reasons (already at
// capacity, entity absent, identical swap arguments, trivial sort) return
// a Status rather than an error.
type Status int

const (
	// StatusOK reports a successful mutation.
	StatusOK Status = 0
	// StatusFail reports a benign, expected failure.
	StatusFail Status = -1
)

// Ok reports whether the status is StatusOK.
func (s Status) Ok() bool { return s == StatusOK }

// Sentinel errors for precondition violations and type misuse (spec §7).
// These never get converted to a Status, and a Status is never converted
// to one of these.
var (
	ErrInvalidHandle    = errors.New("ecscore: invalid or stale entity handle")
	ErrOutOfHandles     = errors.New("ecscore: no more entity handles available")
	ErrCapacityExceeded = errors.New("ecscore: capacity exceeded and store is not resizable")
	ErrNoSuchComponent  = errors.New("ecscore: entity does not have the requested component")
	ErrEmptyComponent   = errors.New("ecscore: payload access on an empty (tag) component store")
	ErrMalformedSpec    = errors.New("ecscore: malformed component spec")
	ErrBadPageSize      = errors.New("ecscore: page size must be a power of two and at least 128")
	ErrBadBitWidth      = errors.New("ecscore: handle bit widths must be positive and sum to at most 64")
	ErrUnknownComponent = errors.New("ecscore: component type is not registered with this registry")
)
