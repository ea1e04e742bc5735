package misc

import (
	"os"

	"github.com/pkg/errors"
)

const hexTokensPerLine = 16

// ReadHexFile loads a whitespace-separated hex text file into words.
func ReadHexFile(path string) ([]int64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read hex file")
	}

	values, err := DecodeHex(string(data))
	if err != nil {
		return nil, errors.Wrapf(err, "parse hex file %s", path)
	}
	return values, nil
}

// WriteHexFile writes words as hex tokens, 16 per line.
func WriteHexFile(path string, values []int64) error {
	var lines []string
	for start := 0; start < len(values); start += hexTokensPerLine {
		end := start + hexTokensPerLine
		if end > len(values) {
			end = len(values)
		}
		lines = append(lines, EncodeHex(values[start:end]))
	}

	dumper := NewFileDumper(path)
	if err := dumper.WriteLines(lines); err != nil {
		return errors.Wrap(err, "write hex file")
	}
	return nil
}
