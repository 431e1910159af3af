package calculator

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"potentialflow/model"
)

const (
	OpStreamFunction = "stream_function"
	OpVelocity       = "velocity"
)

// Evaluate 执行一次流场计算请求，op 为 OpStreamFunction 或 OpVelocity
func Evaluate(op string, req model.FlowReq) (model.FieldResp, error) {
	if op != OpStreamFunction && op != OpVelocity {
		return model.FieldResp{}, errors.Wrapf(ErrUnsupportedOperation, "got %q", op)
	}
	x, err := GridFromRows(req.X)
	if err != nil {
		return model.FieldResp{}, errors.Wrap(err, "x grid")
	}
	y, err := GridFromRows(req.Y)
	if err != nil {
		return model.FieldResp{}, errors.Wrap(err, "y grid")
	}
	f, err := NewElementaryFlowField(req.Strength, req.X0, req.Y0, x, y)
	if err != nil {
		return model.FieldResp{}, err
	}

	r, c := x.Dims()
	resp := model.FieldResp{Kind: req.Kind, Rows: r, Cols: c}
	if op == OpStreamFunction {
		phi, err := f.StreamFunction(req.Kind)
		if err != nil {
			return model.FieldResp{}, err
		}
		resp.Phi = fieldOf(phi)
		return resp, nil
	}

	u, v, err := f.Velocity(req.Kind)
	if err != nil {
		return model.FieldResp{}, err
	}
	resp.U, resp.V = fieldOf(u), fieldOf(v)
	return resp, nil
}

func fieldOf(m mat.Matrix) model.Field {
	return model.NewField(RowsFromGrid(m))
}
