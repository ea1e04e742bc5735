// Package model implements the compiled-model interchange format: a byte
// stream of framed layers, each carrying an int8 weight matrix. The compiler
// side quantizes trained float weights into frames; the simulator side
// decodes frames back into the integer sequences the NPU core consumes.
package model

import "github.com/pkg/errors"

// LayerMagic starts every layer frame in the compiled stream.
const LayerMagic = 0xAA

var (
	// ErrBadMagic reports a frame that does not start with LayerMagic.
	ErrBadMagic = errors.New("bad layer magic")

	// ErrTruncatedModel reports a frame whose header or payload ends early.
	ErrTruncatedModel = errors.New("truncated model stream")
)

// LayerWeights is one decoded layer: a Rows x Cols int8 matrix, sign-extended
// to int64 in row-major order.
type LayerWeights struct {
	Rows int
	Cols int
	Data []int64
}

// Decode parses a compiled model stream. Each frame is the three-byte header
// [LayerMagic, rows, cols] followed by rows*cols int8 weights row-major.
// An empty stream decodes to no layers.
func Decode(stream []byte) ([]LayerWeights, error) {
	var layers []LayerWeights

	ptr := 0
	for ptr < len(stream) {
		if stream[ptr] != LayerMagic {
			return nil, errors.Wrapf(ErrBadMagic,
				"layer %d at offset %d: 0x%02X", len(layers), ptr, stream[ptr])
		}
		if ptr+3 > len(stream) {
			return nil, errors.Wrapf(ErrTruncatedModel, "layer %d header", len(layers))
		}

		rows := int(stream[ptr+1])
		cols := int(stream[ptr+2])
		ptr += 3

		count := rows * cols
		if ptr+count > len(stream) {
			return nil, errors.Wrapf(ErrTruncatedModel,
				"layer %d wants %d weights, %d bytes left", len(layers), count, len(stream)-ptr)
		}

		data := make([]int64, count)
		for i := 0; i < count; i++ {
			data[i] = int64(int8(stream[ptr+i]))
		}
		ptr += count

		layers = append(layers, LayerWeights{Rows: rows, Cols: cols, Data: data})
	}

	return layers, nil
}

// Encoder packs quantized layers into the compiled byte-stream format.
type Encoder struct {
	stream []byte
}

// AddLayer frames a rows x cols int8 weight matrix. Both dimensions must fit
// the one-byte header fields.
func (e *Encoder) AddLayer(rows, cols int, weights []int8) error {
	if rows < 1 || rows > 255 || cols < 1 || cols > 255 {
		return errors.Errorf("layer shape %dx%d does not fit the header", rows, cols)
	}
	if len(weights) != rows*cols {
		return errors.Errorf("layer shape %dx%d wants %d weights, got %d",
			rows, cols, rows*cols, len(weights))
	}

	e.stream = append(e.stream, LayerMagic, byte(rows), byte(cols))
	for _, w := range weights {
		e.stream = append(e.stream, byte(w))
	}
	return nil
}

// Bytes returns a copy of the accumulated stream.
func (e *Encoder) Bytes() []byte {
	out := make([]byte, len(e.stream))
	copy(out, e.stream)
	return out
}
