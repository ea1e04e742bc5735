package driver

import (
	"github.com/pkg/errors"

	"github.com/slimmsehli/NPU/src/npu"
)

// Builder assembles a Driver. The zero value is usable; unset fields fall
// back to the defaults noted on each method.
type Builder struct {
	config   *npu.Config
	memMap   *MemoryMap
	observer npu.TraceObserver
}

// WithConfig sets the accelerator geometry. Required.
func (b Builder) WithConfig(config *npu.Config) Builder {
	b.config = config
	return b
}

// WithMemoryMap overrides the default weight/buffer layout.
func (b Builder) WithMemoryMap(m MemoryMap) Builder {
	b.memMap = &m
	return b
}

// WithObserver injects a trace observer into the controller. Defaults to no
// tracing.
func (b Builder) WithObserver(observer npu.TraceObserver) Builder {
	b.observer = observer
	return b
}

// Build validates the memory map against the geometry and wires the
// datapath: memory, systolic array, PPU, and controller.
func (b Builder) Build() (*Driver, error) {
	if b.config == nil {
		return nil, errors.Wrap(npu.ErrInvalidConfig, "builder needs a config")
	}

	memMap := DefaultMemoryMap()
	if b.memMap != nil {
		memMap = *b.memMap
	}
	if err := memMap.Validate(b.config); err != nil {
		return nil, err
	}

	memory := npu.NewMemory(b.config)
	array := npu.NewSystolicArray(b.config)
	ppu := npu.NewPPU(b.config)
	ctrl := npu.NewController(b.config, memory, array, ppu, b.observer)

	return &Driver{
		config: b.config,
		memMap: memMap,
		memory: memory,
		array:  array,
		ppu:    ppu,
		ctrl:   ctrl,
	}, nil
}
