package npu

import "github.com/pkg/errors"

// SystolicArray models a weight-stationary NxN multiply array. The stationary
// matrix is written by LoadWeights and held until the next load. In hardware
// the product forms through staggered wavefronts of multiply-accumulate
// cells; functionally the result is an exact row-major matrix product, which
// is what this model reproduces.
type SystolicArray struct {
	n       int
	weights [][]int64
}

// NewSystolicArray builds an array with zeroed weight registers.
func NewSystolicArray(config *Config) *SystolicArray {
	n := config.ArraySize
	weights := make([][]int64, n)
	for r := range weights {
		weights[r] = make([]int64, n)
	}

	return &SystolicArray{
		n:       n,
		weights: weights,
	}
}

// LoadWeights replaces the stationary matrix with flat, interpreted
// row-major. The previous weights are discarded wholesale.
func (sa *SystolicArray) LoadWeights(flat []int64) error {
	if len(flat) != sa.n*sa.n {
		return errors.Wrapf(ErrDimensionMismatch,
			"weight load expects %d values, got %d", sa.n*sa.n, len(flat))
	}

	for r := 0; r < sa.n; r++ {
		for c := 0; c < sa.n; c++ {
			sa.weights[r][c] = flat[r*sa.n+c]
		}
	}
	return nil
}

// Weights returns a copy of the stationary matrix. The array owns its
// registers; callers cannot mutate them through the returned rows.
func (sa *SystolicArray) Weights() [][]int64 {
	out := make([][]int64, sa.n)
	for r := range out {
		out[r] = make([]int64, sa.n)
		copy(out[r], sa.weights[r])
	}
	return out
}

// Matmul interprets input as a row-major NxN matrix A and returns A x W
// flattened row-major, where W is the stationary matrix. Accumulation is
// sequential row-major in full-width integers with no clamping; saturation
// happens downstream in the PPU. The call is pure aside from reading the
// weight registers.
func (sa *SystolicArray) Matmul(input []int64) ([]int64, error) {
	if len(input) != sa.n*sa.n {
		return nil, errors.Wrapf(ErrDimensionMismatch,
			"matmul input expects %d values, got %d", sa.n*sa.n, len(input))
	}

	out := make([]int64, sa.n*sa.n)
	for i := 0; i < sa.n; i++ {
		for j := 0; j < sa.n; j++ {
			var acc int64
			for k := 0; k < sa.n; k++ {
				acc += input[i*sa.n+k] * sa.weights[k][j]
			}
			out[i*sa.n+j] = acc
		}
	}
	return out, nil
}
