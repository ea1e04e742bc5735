// Package driver orchestrates multi-layer inference over the NPU core. It
// stages weights and activations in unified memory, emits a two-instruction
// micro-program per layer, and chains layers through two ping-pong buffers so
// every MATMUL reads a fully written block and never aliases its own
// destination.
package driver

import (
	"github.com/pkg/errors"

	"github.com/slimmsehli/NPU/src/npu"
)

// Layer describes one fully-connected layer as the model compiler hands it
// over: N*N row-major quantized weights plus the requantization parameters
// applied to the layer's accumulators. Layers are consumed once per run and
// never mutated.
type Layer struct {
	Weights   []int64
	Scale     float64
	ZeroPoint int64
}

// Driver runs layer sequences on one controller/memory pair. A Driver owns
// its memory for the duration of a run; use one Driver per concurrent
// inference.
type Driver struct {
	config *npu.Config
	memMap MemoryMap

	memory *npu.Memory
	array  *npu.SystolicArray
	ppu    *npu.PPU
	ctrl   *npu.Controller
}

// Config returns the accelerator geometry the driver was built with.
func (d *Driver) Config() *npu.Config {
	return d.config
}

// Memory exposes the unified memory for diagnostics and harness dumps.
func (d *Driver) Memory() *npu.Memory {
	return d.memory
}

// MemoryMap returns the staging/buffer layout in use.
func (d *Driver) MemoryMap() MemoryMap {
	return d.memMap
}

// RunInference pushes input through the layers in order and returns the
// final quantized block. Controller faults are wrapped with the index of the
// offending layer; after a fault no buffer content can be trusted.
func (d *Driver) RunInference(input []int64, layers []Layer) ([]int64, error) {
	block := d.config.BlockSize()
	if len(input) != block {
		return nil, errors.Wrapf(npu.ErrDimensionMismatch,
			"input expects %d values, got %d", block, len(input))
	}

	if err := d.memory.Load(d.memMap.BufferA, input); err != nil {
		return nil, errors.Wrap(err, "stage input")
	}

	src := d.memMap.BufferA
	dst := d.memMap.BufferB

	for i, layer := range layers {
		if len(layer.Weights) != block {
			return nil, errors.Wrapf(npu.ErrDimensionMismatch,
				"layer %d: weights expect %d values, got %d", i, block, len(layer.Weights))
		}
		if err := d.memory.Load(d.memMap.WeightBase, layer.Weights); err != nil {
			return nil, errors.Wrapf(err, "layer %d: stage weights", i)
		}

		program := npu.Program{
			npu.LoadWeights{Addr: d.memMap.WeightBase},
			npu.MatMul{
				Src:       src,
				Dst:       dst,
				Scale:     layer.Scale,
				ZeroPoint: layer.ZeroPoint,
			},
		}

		if err := d.ctrl.Execute(program); err != nil {
			return nil, errors.Wrapf(err, "layer %d", i)
		}

		src, dst = dst, src
	}

	// src now points at the buffer that received the final write.
	return d.memory.ReadBlock(src, block)
}
