package driver

import (
	"github.com/pkg/errors"

	"github.com/slimmsehli/NPU/src/npu"
)

// MemoryMap fixes where the driver stages weights and where the two
// ping-pong activation buffers live. It is a plain value the caller passes
// in, so several layouts can coexist in tests instead of baking addresses
// into the driver.
type MemoryMap struct {
	WeightBase int
	BufferA    int
	BufferB    int
}

// DefaultMemoryMap mirrors the reference layout: weight staging at 0x000 and
// the ping-pong buffers at 0x100 and 0x200.
func DefaultMemoryMap() MemoryMap {
	return MemoryMap{
		WeightBase: 0x000,
		BufferA:    0x100,
		BufferB:    0x200,
	}
}

// Validate checks that the three block-sized regions fit in memory and do
// not overlap for the given geometry.
func (m MemoryMap) Validate(config *npu.Config) error {
	block := config.BlockSize()

	regions := []struct {
		name string
		base int
	}{
		{"weight staging", m.WeightBase},
		{"buffer A", m.BufferA},
		{"buffer B", m.BufferB},
	}

	for _, r := range regions {
		if r.base < 0 || r.base+block > config.MemDepth {
			return errors.Wrapf(npu.ErrInvalidConfig,
				"%s [%d, %d) outside memory of depth %d",
				r.name, r.base, r.base+block, config.MemDepth)
		}
	}

	for i, a := range regions {
		for _, b := range regions[i+1:] {
			if a.base < b.base+block && b.base < a.base+block {
				return errors.Wrapf(npu.ErrInvalidConfig,
					"%s and %s overlap", a.name, b.name)
			}
		}
	}

	return nil
}
