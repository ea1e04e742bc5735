package npu

import (
	"github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
)

// badInstr is an instruction variant the controller has never heard of.
type badInstr struct{}

func (badInstr) Opcode() Opcode { return OpcodeInvalid }

var _ = Describe("Controller", func() {
	const (
		weightAddr = 0
		srcAddr    = 8
		dstAddr    = 16
	)

	var (
		config *Config
		mem    *Memory
		array  *SystolicArray
		ppu    *PPU
		ctrl   *Controller
	)

	BeforeEach(func() {
		var err error
		config, err = NewConfig(2, 8, 32)
		Expect(err).ToNot(HaveOccurred())

		mem = NewMemory(config)
		array = NewSystolicArray(config)
		ppu = NewPPU(config)
		ctrl = NewController(config, mem, array, ppu, nil)

		// Identity weights and a recognizable input block.
		Expect(mem.Load(weightAddr, []int64{1, 0, 0, 1})).To(Succeed())
		Expect(mem.Load(srcAddr, []int64{10, 20, 30, 40})).To(Succeed())
	})

	It("runs a load/matmul program and writes the quantized block", func() {
		program := Program{
			LoadWeights{Addr: weightAddr},
			MatMul{Src: srcAddr, Dst: dstAddr, Scale: 1.0},
		}

		Expect(ctrl.Execute(program)).To(Succeed())
		Expect(ctrl.State()).To(Equal(StateHalted))

		result, err := mem.ReadBlock(dstAddr, config.BlockSize())
		Expect(err).ToNot(HaveOccurred())
		Expect(result).To(Equal([]int64{10, 20, 30, 40}))
	})

	It("halts at an explicit HALT and skips the rest of the stream", func() {
		// Seed the destination so we can prove MATMUL never ran.
		Expect(mem.Load(dstAddr, []int64{7, 7, 7, 7})).To(Succeed())

		program := Program{
			LoadWeights{Addr: weightAddr},
			Halt{},
			MatMul{Src: srcAddr, Dst: dstAddr, Scale: 1.0},
		}

		Expect(ctrl.Execute(program)).To(Succeed())
		Expect(ctrl.State()).To(Equal(StateHalted))
		Expect(ctrl.PC()).To(Equal(1))

		result, err := mem.ReadBlock(dstAddr, config.BlockSize())
		Expect(err).ToNot(HaveOccurred())
		Expect(result).To(Equal([]int64{7, 7, 7, 7}))
	})

	It("treats end of stream as an implicit halt", func() {
		Expect(ctrl.Execute(Program{LoadWeights{Addr: weightAddr}})).To(Succeed())
		Expect(ctrl.State()).To(Equal(StateHalted))
	})

	It("faults on an out-of-range source and reports the instruction", func() {
		program := Program{
			LoadWeights{Addr: weightAddr},
			MatMul{Src: 1000, Dst: dstAddr, Scale: 1.0},
		}

		err := ctrl.Execute(program)
		Expect(err).To(HaveOccurred())
		Expect(ctrl.State()).To(Equal(StateFaulted))
		Expect(errors.Cause(err)).To(Equal(ErrOutOfRange))
		Expect(err.Error()).To(ContainSubstring("pc 1 (MATMUL)"))
	})

	It("fails the destination write before mutating anything", func() {
		program := Program{
			LoadWeights{Addr: weightAddr},
			MatMul{Src: srcAddr, Dst: 31, Scale: 1.0},
		}

		err := ctrl.Execute(program)
		Expect(errors.Cause(err)).To(Equal(ErrOutOfRange))
		Expect(ctrl.State()).To(Equal(StateFaulted))

		// Weight staging and the source buffer are untouched.
		weights, err := mem.ReadBlock(weightAddr, config.BlockSize())
		Expect(err).ToNot(HaveOccurred())
		Expect(weights).To(Equal([]int64{1, 0, 0, 1}))

		src, err := mem.ReadBlock(srcAddr, config.BlockSize())
		Expect(err).ToNot(HaveOccurred())
		Expect(src).To(Equal([]int64{10, 20, 30, 40}))
	})

	It("faults on an unknown instruction variant", func() {
		err := ctrl.Execute(Program{badInstr{}})
		Expect(errors.Cause(err)).To(Equal(ErrUnknownOpcode))
		Expect(ctrl.State()).To(Equal(StateFaulted))
	})

	It("can execute another program after a halt", func() {
		program := Program{
			LoadWeights{Addr: weightAddr},
			MatMul{Src: srcAddr, Dst: dstAddr, Scale: 1.0},
		}

		Expect(ctrl.Execute(program)).To(Succeed())
		Expect(ctrl.Execute(program)).To(Succeed())
		Expect(ctrl.State()).To(Equal(StateHalted))
	})

	Describe("trace hooks", func() {
		var (
			mockCtrl *gomock.Controller
			observer *MockTraceObserver
		)

		BeforeEach(func() {
			mockCtrl = gomock.NewController(GinkgoT())
			observer = NewMockTraceObserver(mockCtrl)
			ctrl = NewController(config, mem, array, ppu, observer)
		})

		It("emits raw, activated, and final tensors in order", func() {
			gomock.InOrder(
				observer.EXPECT().ObserveTensor(TensorRawAccumulators, []int64{10, 20, 30, 40}),
				observer.EXPECT().ObserveTensor(TensorActivated, []int64{10, 20, 30, 40}),
				observer.EXPECT().ObserveTensor(TensorFinal, []int64{5, 10, 15, 20}),
			)

			program := Program{
				LoadWeights{Addr: weightAddr},
				MatMul{Src: srcAddr, Dst: dstAddr, Scale: 2.0},
			}
			Expect(ctrl.Execute(program)).To(Succeed())
		})

		It("emits nothing for LOAD_WEIGHTS or HALT", func() {
			program := Program{
				LoadWeights{Addr: weightAddr},
				Halt{},
			}
			Expect(ctrl.Execute(program)).To(Succeed())
		})
	})
})
