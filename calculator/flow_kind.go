package calculator

import "strings"

// FlowKind 基本流动类型
type FlowKind int

const (
	Source FlowKind = iota
	Sink
	Doublet
	// Vortex 保留名称，尚未实现，求值时总是返回 UnsupportedFlowKindError
	Vortex
)

var flowKindNames = map[FlowKind]string{
	Source:  "source",
	Sink:    "sink",
	Doublet: "doublet",
	Vortex:  "vortex",
}

func (k FlowKind) String() string {
	if name, ok := flowKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseFlowKind 不区分大小写
func ParseFlowKind(name string) (FlowKind, error) {
	lower := strings.ToLower(name)
	for k, n := range flowKindNames {
		if n == lower {
			return k, nil
		}
	}
	return 0, &UnsupportedFlowKindError{Kind: name}
}

func (k FlowKind) implemented() bool {
	return k == Source || k == Sink || k == Doublet
}
