package npu

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("PPU", func() {
	var ppu *PPU

	BeforeEach(func() {
		config, err := NewConfig(2, 8, 16)
		Expect(err).ToNot(HaveOccurred())
		ppu = NewPPU(config)
	})

	It("applies ReLU before quantization", func() {
		activated, quantized, err := ppu.Process([]int64{-5, 0, 5, -1}, 1.0, 0, ActReLU)
		Expect(err).ToNot(HaveOccurred())
		Expect(activated).To(Equal([]int64{0, 0, 5, 0}))
		Expect(quantized).To(Equal([]int64{0, 0, 5, 0}))
	})

	It("is the identity for scale=1, zeroPoint=0 on in-range input", func() {
		input := []int64{0, 1, 128, 255}
		activated, quantized, err := ppu.Process(input, 1.0, 0, ActReLU)
		Expect(err).ToNot(HaveOccurred())
		Expect(activated).To(Equal(input))
		Expect(quantized).To(Equal(input))
	})

	It("saturates to 2^W-1", func() {
		activated, quantized, err := ppu.Process([]int64{300, 256, 255}, 1.0, 0, ActReLU)
		Expect(err).ToNot(HaveOccurred())
		Expect(activated).To(Equal([]int64{300, 256, 255}))
		Expect(quantized).To(Equal([]int64{255, 255, 255}))
	})

	It("clamps zero-point underflow to 0", func() {
		// ReLU already removes negatives; only a negative zero point can
		// push the quantized value below the floor.
		_, quantized, err := ppu.Process([]int64{3, 100}, 1.0, -10, ActReLU)
		Expect(err).ToNot(HaveOccurred())
		Expect(quantized).To(Equal([]int64{0, 90}))
	})

	It("rounds half to even", func() {
		_, quantized, err := ppu.Process([]int64{5, 3, 1}, 2.0, 0, ActReLU)
		Expect(err).ToNot(HaveOccurred())
		// 2.5 -> 2, 1.5 -> 2, 0.5 -> 0
		Expect(quantized).To(Equal([]int64{2, 2, 0}))
	})

	It("adds the zero point after rounding", func() {
		_, quantized, err := ppu.Process([]int64{5}, 2.0, 1, ActReLU)
		Expect(err).ToNot(HaveOccurred())
		// round(2.5) + 1 = 3; rounding 2.5+1=3.5 first would give 4.
		Expect(quantized).To(Equal([]int64{3}))
	})

	It("treats scale=0 as skipping the scale step", func() {
		_, quantized, err := ppu.Process([]int64{7}, 0, 1, ActReLU)
		Expect(err).ToNot(HaveOccurred())
		Expect(quantized).To(Equal([]int64{8}))
	})

	It("scales down wide accumulators", func() {
		_, quantized, err := ppu.Process([]int64{1000, 500}, 10.0, 0, ActReLU)
		Expect(err).ToNot(HaveOccurred())
		Expect(quantized).To(Equal([]int64{100, 50}))
	})

	It("rejects unsupported activations", func() {
		_, _, err := ppu.Process([]int64{1}, 1.0, 0, Activation(99))
		Expect(err).To(HaveOccurred())
	})
})
