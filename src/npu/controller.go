package npu

import "github.com/pkg/errors"

// State tracks controller progress through a program.
type State int

const (
	StateRunning State = iota
	StateHalted
	StateFaulted
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateHalted:
		return "halted"
	case StateFaulted:
		return "faulted"
	default:
		return "invalid"
	}
}

// Controller fetches instructions, dispatches them to the memory, the
// systolic array, and the PPU, and writes results back to memory. It owns
// its memory exclusively for the duration of a run; callers must not share
// one Memory between concurrently executing controllers.
type Controller struct {
	config   *Config
	memory   *Memory
	array    *SystolicArray
	ppu      *PPU
	observer TraceObserver

	pc    int
	state State
}

// NewController wires the datapath blocks together. A nil observer disables
// tracing.
func NewController(
	config *Config,
	memory *Memory,
	array *SystolicArray,
	ppu *PPU,
	observer TraceObserver,
) *Controller {
	return &Controller{
		config:   config,
		memory:   memory,
		array:    array,
		ppu:      ppu,
		observer: observer,
		state:    StateRunning,
	}
}

// State reports the controller state after the last Execute call.
func (c *Controller) State() State {
	return c.state
}

// PC reports the index of the instruction the controller stopped on.
func (c *Controller) PC() int {
	return c.pc
}

// Reset returns the controller to Running at PC 0 so it can execute another
// program. The stationary weights stay in place.
func (c *Controller) Reset() {
	c.pc = 0
	c.state = StateRunning
}

// Execute runs the program from PC 0 until a Halt, end of stream, or a
// fault. A fault stops execution immediately and the error names the failing
// instruction's index and opcode; any words written by earlier instructions
// of the faulted run must be treated as unreliable. Reaching end of stream
// behaves like an implicit Halt.
func (c *Controller) Execute(program Program) error {
	c.Reset()

	for c.pc < len(program) && c.state == StateRunning {
		instr := program[c.pc]
		if err := c.dispatch(instr); err != nil {
			c.state = StateFaulted
			return errors.Wrapf(err, "pc %d (%s)", c.pc, instr.Opcode())
		}
		if c.state == StateRunning {
			c.pc++
		}
	}

	if c.state == StateRunning {
		c.state = StateHalted
	}
	return nil
}

func (c *Controller) dispatch(instr Instruction) error {
	switch op := instr.(type) {
	case LoadWeights:
		return c.execLoadWeights(op)
	case MatMul:
		return c.execMatMul(op)
	case Halt:
		c.state = StateHalted
		return nil
	default:
		return errors.Wrapf(ErrUnknownOpcode, "%T", instr)
	}
}

func (c *Controller) execLoadWeights(op LoadWeights) error {
	block, err := c.memory.ReadBlock(op.Addr, c.config.BlockSize())
	if err != nil {
		return err
	}
	return c.array.LoadWeights(block)
}

func (c *Controller) execMatMul(op MatMul) error {
	input, err := c.memory.ReadBlock(op.Src, c.config.BlockSize())
	if err != nil {
		return err
	}

	raw, err := c.array.Matmul(input)
	if err != nil {
		return err
	}
	c.observe(TensorRawAccumulators, raw)

	activated, quantized, err := c.ppu.Process(raw, op.Scale, op.ZeroPoint, ActReLU)
	if err != nil {
		return err
	}
	c.observe(TensorActivated, activated)
	c.observe(TensorFinal, quantized)

	return c.memory.WriteBlock(op.Dst, quantized)
}

func (c *Controller) observe(name string, data []int64) {
	if c.observer == nil {
		return
	}
	c.observer.ObserveTensor(name, data)
}
