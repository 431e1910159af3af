package calculator

import (
	"testing"

	"github.com/pkg/errors"
)

func TestParseFlowKind(t *testing.T) {
	tests := []struct {
		name string
		want FlowKind
	}{
		{"source", Source},
		{"Sink", Sink},
		{"DOUBLET", Doublet},
		{"vortex", Vortex},
	}
	for _, tt := range tests {
		got, err := ParseFlowKind(tt.name)
		if err != nil {
			t.Errorf("ParseFlowKind(%q): %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFlowKind(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}

	_, err := ParseFlowKind("uniform")
	var uerr *UnsupportedFlowKindError
	if !errors.As(err, &uerr) || uerr.Kind != "uniform" {
		t.Errorf("ParseFlowKind(uniform) error = %#v", err)
	}
}

func TestFlowKindString(t *testing.T) {
	if s := Doublet.String(); s != "doublet" {
		t.Errorf("Doublet.String() = %q", s)
	}
	if s := FlowKind(-1).String(); s != "unknown" {
		t.Errorf("FlowKind(-1).String() = %q", s)
	}
}
