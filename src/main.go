package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/tebeka/atexit"

	"github.com/slimmsehli/NPU/src/driver"
	"github.com/slimmsehli/NPU/src/misc"
	"github.com/slimmsehli/NPU/src/model"
	"github.com/slimmsehli/NPU/src/npu"
)

func main() {
	arraySize := flag.Int("array_size", 4, "systolic array dimension")
	dataWidth := flag.Int("data_width", 8, "output data width in bits")
	memDepth := flag.Int("mem_depth", 1024, "unified memory depth in words")
	modelPath := flag.String("model", "", "path to a compiled model binary")
	inputPath := flag.String("input", "", "path to the input tile in hex text")
	outputPath := flag.String("output", "result.hex", "path for the final output tile")
	scale := flag.Float64("scale", 1.0, "requantization scale applied to every layer")
	zeroPoint := flag.Int64("zero_point", 0, "requantization zero point applied to every layer")
	traceDir := flag.String("trace_dir", "", "directory for intermediate tensor dumps (disabled when empty)")
	flag.Parse()

	if err := run(
		*arraySize, *dataWidth, *memDepth,
		*modelPath, *inputPath, *outputPath,
		*scale, *zeroPoint, *traceDir,
	); err != nil {
		fmt.Fprintf(os.Stderr, "npu: %+v\n", err)
		atexit.Exit(1)
	}
	atexit.Exit(0)
}

func run(
	arraySize int,
	dataWidth int,
	memDepth int,
	modelPath string,
	inputPath string,
	outputPath string,
	scale float64,
	zeroPoint int64,
	traceDir string,
) error {
	if modelPath == "" || inputPath == "" {
		return errors.New("both -model and -input are required")
	}

	config, err := npu.NewConfig(arraySize, dataWidth, memDepth)
	if err != nil {
		return err
	}

	blob, err := os.ReadFile(modelPath)
	if err != nil {
		return errors.Wrap(err, "read model")
	}
	layerWeights, err := model.Decode(blob)
	if err != nil {
		return errors.Wrapf(err, "decode model %s", modelPath)
	}

	layers := make([]driver.Layer, 0, len(layerWeights))
	for i, lw := range layerWeights {
		if lw.Rows != arraySize || lw.Cols != arraySize {
			return errors.Errorf(
				"layer %d is %dx%d, array is %dx%d",
				i, lw.Rows, lw.Cols, arraySize, arraySize,
			)
		}
		layers = append(layers, driver.Layer{
			Weights:   lw.Data,
			Scale:     scale,
			ZeroPoint: zeroPoint,
		})
	}

	input, err := misc.ReadHexFile(inputPath)
	if err != nil {
		return err
	}

	builder := driver.Builder{}.WithConfig(config)
	if traceDir != "" {
		builder = builder.WithObserver(misc.NewHexTraceObserver(traceDir))
	}
	drv, err := builder.Build()
	if err != nil {
		return err
	}

	output, err := drv.RunInference(input, layers)
	if err != nil {
		return err
	}

	if err := misc.WriteHexFile(outputPath, output); err != nil {
		return err
	}
	fmt.Printf("npu: %d layer(s), output written to %s\n", len(layers), outputPath)
	return nil
}
