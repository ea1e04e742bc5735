package model

import (
	"math"

	"github.com/pkg/errors"
)

// QuantizeLayer maps a float weight matrix to symmetric int8. The scale is
// 127 / max|w|, every weight is rounded half-to-even after scaling, and the
// result is clamped to the int8 range. The returned scale converts a
// quantized weight back to its real value as q/scale. An all-zero matrix
// quantizes with scale 1.
func QuantizeLayer(weights [][]float64) ([]int8, float64, error) {
	if len(weights) == 0 || len(weights[0]) == 0 {
		return nil, 0, errors.New("empty weight matrix")
	}

	cols := len(weights[0])
	maxAbs := 0.0
	for r, row := range weights {
		if len(row) != cols {
			return nil, 0, errors.Errorf("ragged weight matrix: row %d has %d columns, want %d",
				r, len(row), cols)
		}
		for _, w := range row {
			if math.Abs(w) > maxAbs {
				maxAbs = math.Abs(w)
			}
		}
	}

	scale := 1.0
	if maxAbs > 0 {
		scale = 127.0 / maxAbs
	}

	q := make([]int8, 0, len(weights)*cols)
	for _, row := range weights {
		for _, w := range row {
			v := math.RoundToEven(w * scale)
			if v > 127 {
				v = 127
			}
			if v < -128 {
				v = -128
			}
			q = append(q, int8(v))
		}
	}

	return q, scale, nil
}
