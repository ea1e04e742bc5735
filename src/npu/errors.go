package npu

import "github.com/pkg/errors"

// Failure taxonomy shared by every block of the simulator. All failures are
// synchronous and deterministic; retrying a faulted operation reproduces the
// same fault. Callers classify wrapped failures with errors.Cause.
var (
	// ErrInvalidConfig reports geometry that violates the construction
	// invariants (N >= 1, W >= 1, D >= N*N) or a memory map that does not fit.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrDimensionMismatch reports a weight or input vector whose length does
	// not match the array geometry.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrOutOfRange reports a memory access that crosses the memory boundary.
	// Accesses never wrap around.
	ErrOutOfRange = errors.New("memory access out of range")

	// ErrUnknownOpcode reports an instruction variant the controller does not
	// recognize.
	ErrUnknownOpcode = errors.New("unknown opcode")
)
