package npu

import "github.com/pkg/errors"

// Memory models the unified buffer: a flat, zero-based store of integer
// words. Words are unconstrained at rest so wide accumulators can transit
// through memory; producers of quantized data clamp before writing back.
type Memory struct {
	config *Config
	words  []int64
}

// NewMemory allocates a zeroed memory of the configured depth.
func NewMemory(config *Config) *Memory {
	return &Memory{
		config: config,
		words:  make([]int64, config.MemDepth),
	}
}

// Depth returns the number of addressable words.
func (m *Memory) Depth() int {
	return len(m.words)
}

// Load bulk-writes values starting at startAddr. The bounds check runs
// before any word is touched, so a rejected load leaves memory unchanged.
func (m *Memory) Load(startAddr int, values []int64) error {
	if err := m.checkRange(startAddr, len(values)); err != nil {
		return errors.Wrap(err, "load")
	}

	copy(m.words[startAddr:], values)
	return nil
}

// ReadBlock returns a copy of size contiguous words starting at addr.
func (m *Memory) ReadBlock(addr, size int) ([]int64, error) {
	if err := m.checkRange(addr, size); err != nil {
		return nil, errors.Wrap(err, "read block")
	}

	block := make([]int64, size)
	copy(block, m.words[addr:addr+size])
	return block, nil
}

// WriteBlock writes values verbatim at addr. No clamping happens here;
// saturation is the PPU's responsibility upstream.
func (m *Memory) WriteBlock(addr int, values []int64) error {
	if err := m.checkRange(addr, len(values)); err != nil {
		return errors.Wrap(err, "write block")
	}

	copy(m.words[addr:], values)
	return nil
}

// Dump is the read-only diagnostic view, with the same bounds semantics as
// ReadBlock.
func (m *Memory) Dump(addr, size int) ([]int64, error) {
	block, err := m.ReadBlock(addr, size)
	if err != nil {
		return nil, errors.Wrap(err, "dump")
	}
	return block, nil
}

func (m *Memory) checkRange(addr, size int) error {
	if addr < 0 || size < 0 {
		return errors.Wrapf(ErrOutOfRange, "addr %d size %d", addr, size)
	}
	if addr+size > len(m.words) {
		return errors.Wrapf(ErrOutOfRange,
			"addr %d size %d exceeds depth %d", addr, size, len(m.words))
	}
	return nil
}
