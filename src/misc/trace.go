package misc

import (
	"fmt"
	"path/filepath"
)

// HexTraceObserver dumps every tensor the controller reports into
// <dir>/result_<name>.hex. Dump failures are swallowed so that tracing
// never aborts an inference.
type HexTraceObserver struct {
	dir string
}

func NewHexTraceObserver(dir string) *HexTraceObserver {
	return &HexTraceObserver{dir: dir}
}

func (o *HexTraceObserver) ObserveTensor(name string, data []int64) {
	path := filepath.Join(o.dir, fmt.Sprintf("result_%s.hex", name))
	_ = WriteHexFile(path, data)
}
