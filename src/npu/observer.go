package npu

// Names of the tensors emitted on every MATMUL, in emission order.
const (
	TensorRawAccumulators = "rawAccumulators"
	TensorActivated       = "activated"
	TensorFinal           = "final"
)

// TraceObserver receives the intermediate tensors of a MATMUL. The
// controller itself never touches the filesystem; dumping, plotting, or
// comparing these tensors against a reference is the observer's business.
// Implementations that keep the slice past the call must copy it.
type TraceObserver interface {
	ObserveTensor(name string, data []int64)
}
