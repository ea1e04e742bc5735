package npu

import "github.com/pkg/errors"

// Config bundles the immutable parameters of the accelerator. The systolic
// array is ArraySize x ArraySize, quantized words saturate to DataWidth bits,
// and the unified memory holds MemDepth addressable words.
type Config struct {
	ArraySize int
	DataWidth int
	MemDepth  int
}

// NewConfig validates the geometry invariants and returns the configuration.
// The memory must hold at least one array-sized block.
func NewConfig(arraySize, dataWidth, memDepth int) (*Config, error) {
	if arraySize < 1 {
		return nil, errors.Wrapf(ErrInvalidConfig, "array size %d < 1", arraySize)
	}
	if dataWidth < 1 {
		return nil, errors.Wrapf(ErrInvalidConfig, "data width %d < 1", dataWidth)
	}
	if memDepth < arraySize*arraySize {
		return nil, errors.Wrapf(ErrInvalidConfig,
			"memory depth %d cannot hold one %dx%d block", memDepth, arraySize, arraySize)
	}

	return &Config{
		ArraySize: arraySize,
		DataWidth: dataWidth,
		MemDepth:  memDepth,
	}, nil
}

// BlockSize returns the number of words in one array-sized tile.
func (c *Config) BlockSize() int {
	return c.ArraySize * c.ArraySize
}

// MaxValue returns the saturation ceiling 2^W - 1 for quantized words.
func (c *Config) MaxValue() int64 {
	return (int64(1) << uint(c.DataWidth)) - 1
}
