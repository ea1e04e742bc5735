// Package misc carries the host-side utilities around the simulator core:
// hex-text encoding of tensors, $readmemh-style file I/O, and the trace
// observer that dumps controller intermediates.
package misc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

func hexToken(v int64) string {
	if v >= 0 && v < 256 {
		return fmt.Sprintf("%02X", v)
	}
	return fmt.Sprintf("%08X", v)
}

// EncodeHex renders words as space-separated hex tokens: two digits for
// byte-range values, eight digits for anything wider (raw accumulators).
func EncodeHex(values []int64) string {
	tokens := make([]string, len(values))
	for i, v := range values {
		tokens[i] = hexToken(v)
	}
	return strings.Join(tokens, " ")
}

// DecodeHex parses whitespace-separated hex tokens, with an optional sign
// per token.
func DecodeHex(text string) ([]int64, error) {
	fields := strings.Fields(text)

	values := make([]int64, 0, len(fields))
	for i, tok := range fields {
		v, err := strconv.ParseInt(tok, 16, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "hex token %d %q", i, tok)
		}
		values = append(values, v)
	}
	return values, nil
}
