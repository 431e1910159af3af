package calculator

import "github.com/pkg/errors"

var (
	// ErrUnsupportedFlowKind matches every *UnsupportedFlowKindError under errors.Is.
	ErrUnsupportedFlowKind = errors.New("wrong input, enter one of the following: source, sink, doublet, vortex")

	ErrGridShape            = errors.New("calculator: X and Y must be non-empty matrices of the same shape")
	ErrUnsupportedOperation = errors.New("calculator: operation must be stream_function or velocity")
)

// UnsupportedFlowKindError 记录调用方传入的原始名称，错误信息固定
type UnsupportedFlowKindError struct {
	Kind string
}

func (e *UnsupportedFlowKindError) Error() string {
	return ErrUnsupportedFlowKind.Error()
}

func (e *UnsupportedFlowKindError) Unwrap() error {
	return ErrUnsupportedFlowKind
}
