package npu

// Opcode identifies an instruction variant.
type Opcode int

const (
	OpcodeInvalid Opcode = iota
	OpcodeLoadWeights
	OpcodeMatMul
	OpcodeHalt
)

// String returns the mnemonic used in fault messages and traces.
func (o Opcode) String() string {
	switch o {
	case OpcodeLoadWeights:
		return "LOAD_WEIGHTS"
	case OpcodeMatMul:
		return "MATMUL"
	case OpcodeHalt:
		return "HALT"
	default:
		return "INVALID"
	}
}

// Instruction is the tagged variant executed by the Controller. Each opcode
// carries exactly the operands it needs, so a missing operand is a compile
// error rather than a silent lookup failure at dispatch time.
type Instruction interface {
	Opcode() Opcode
}

// LoadWeights reads one block from memory into the stationary weight
// registers of the systolic array.
type LoadWeights struct {
	Addr int
}

func (LoadWeights) Opcode() Opcode { return OpcodeLoadWeights }

// MatMul multiplies the block at Src against the stationary weights,
// post-processes the raw accumulators with Scale and ZeroPoint, and writes
// the quantized block to Dst.
type MatMul struct {
	Src       int
	Dst       int
	Scale     float64
	ZeroPoint int64
}

func (MatMul) Opcode() Opcode { return OpcodeMatMul }

// Halt stops the program. Instructions after it are never executed.
type Halt struct{}

func (Halt) Opcode() Opcode { return OpcodeHalt }

// Program is an ordered instruction stream. Execution proceeds in order and
// stops at the first Halt or at end of stream.
type Program []Instruction
