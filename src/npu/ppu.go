package npu

import (
	"math"

	"github.com/pkg/errors"
)

// Activation selects the non-linearity applied before requantization.
type Activation int

const (
	// ActReLU clamps negative accumulators to zero.
	ActReLU Activation = iota
)

func (a Activation) String() string {
	switch a {
	case ActReLU:
		return "relu"
	default:
		return "unsupported"
	}
}

// PPU is the post-processing unit: activation followed by affine
// requantization (scale, zero point, saturation to the data width).
type PPU struct {
	config *Config
}

// NewPPU builds a post-processing unit for the given geometry.
func NewPPU(config *Config) *PPU {
	return &PPU{config: config}
}

// Process applies the activation and then requantizes every element as
// round(a/scale) + zeroPoint, saturated to [0, 2^W-1]. Rounding is
// half-to-even and the zero point is added after rounding. A scale of zero
// skips the scale step entirely instead of faulting; a layer descriptor can
// use it to opt out of requantization.
//
// Both intermediate stages are returned: the activated tensor feeds the
// diagnostic hooks, the quantized tensor is what gets written back to memory.
func (p *PPU) Process(
	data []int64,
	scale float64,
	zeroPoint int64,
	activation Activation,
) (activated []int64, quantized []int64, err error) {
	if activation != ActReLU {
		return nil, nil, errors.Errorf("unsupported activation %d", activation)
	}

	maxVal := p.config.MaxValue()
	activated = make([]int64, len(data))
	quantized = make([]int64, len(data))

	for i, x := range data {
		a := x
		if a < 0 {
			a = 0
		}
		activated[i] = a

		q := a
		if scale != 0 {
			q = int64(math.RoundToEven(float64(a) / scale))
		}
		q += zeroPoint

		if q < 0 {
			q = 0
		}
		if q > maxVal {
			q = maxVal
		}
		quantized[i] = q
	}

	return activated, quantized, nil
}
