package calculator

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"

	"potentialflow/model"
)

func TestGridFromRows(t *testing.T) {
	rows := [][]float64{{1, 2, 3}, {4, 5, 6}}
	m, err := GridFromRows(rows)
	if err != nil {
		t.Fatal(err)
	}
	if r, c := m.Dims(); r != 2 || c != 3 {
		t.Fatalf("dims = %dx%d, want 2x3", r, c)
	}
	back := RowsFromGrid(m)
	for i := range rows {
		if !floats.Equal(back[i], rows[i]) {
			t.Errorf("row %d = %v, want %v", i, back[i], rows[i])
		}
	}

	for name, bad := range map[string][][]float64{
		"empty":       nil,
		"empty row":   {{}},
		"ragged rows": {{1, 2}, {3}},
	} {
		if _, err := GridFromRows(bad); !errors.Is(err, ErrGridShape) {
			t.Errorf("%s: error = %v, want ErrGridShape", name, err)
		}
	}
}

func sourceReq(kind string) model.FlowReq {
	return model.FlowReq{
		Kind:     kind,
		Strength: 2 * math.Pi,
		X:        [][]float64{{1, 0}, {0, 0}},
		Y:        [][]float64{{0, 1}, {0, -1}},
	}
}

func TestEvaluateStreamFunction(t *testing.T) {
	resp, err := Evaluate(OpStreamFunction, sourceReq("Source"))
	if err != nil {
		t.Fatal(err)
	}
	if resp.Rows != 2 || resp.Cols != 2 || resp.U != nil || resp.V != nil {
		t.Fatalf("unexpected response %+v", resp)
	}
	phi := resp.Phi.Float64s()
	want := [][]float64{{0, math.Pi / 2}, {0, -math.Pi / 2}}
	for i := range want {
		if !floats.EqualApprox(phi[i], want[i], 1e-15) {
			t.Errorf("phi row %d = %v, want %v", i, phi[i], want[i])
		}
	}
}

func TestEvaluateVelocity(t *testing.T) {
	resp, err := Evaluate(OpVelocity, sourceReq("source"))
	if err != nil {
		t.Fatal(err)
	}
	if resp.Phi != nil {
		t.Fatal("velocity response carries a stream function")
	}
	u, v := resp.U.Float64s(), resp.V.Float64s()
	if !scalar.EqualWithinAbs(u[0][0], 1, 1e-15) || v[0][0] != 0 {
		t.Errorf("velocity(1,0) = (%v, %v), want (1, 0)", u[0][0], v[0][0])
	}
	// (0,0) 为奇点
	if !math.IsNaN(u[1][0]) || !math.IsNaN(v[1][0]) {
		t.Errorf("velocity at singularity = (%v, %v), want NaN", u[1][0], v[1][0])
	}
}

func TestEvaluateErrors(t *testing.T) {
	if _, err := Evaluate("potential", sourceReq("source")); !errors.Is(err, ErrUnsupportedOperation) {
		t.Errorf("unknown op error = %v", err)
	}
	if _, err := Evaluate(OpVelocity, sourceReq("vortex")); !errors.Is(err, ErrUnsupportedFlowKind) {
		t.Errorf("vortex error = %v", err)
	}

	req := sourceReq("source")
	req.Y = [][]float64{{0, 1, 2}}
	if _, err := Evaluate(OpStreamFunction, req); !errors.Is(err, ErrGridShape) {
		t.Errorf("mismatched grid error = %v", err)
	}
	req.Y = [][]float64{{0, 1}, {2}}
	if _, err := Evaluate(OpStreamFunction, req); !errors.Is(err, ErrGridShape) {
		t.Errorf("ragged grid error = %v", err)
	}
}
