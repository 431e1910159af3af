package calculator

import (
	"math"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"
)

// ElementaryFlowField 单个奇点（源、汇、偶极子）在网格上诱导的流函数和速度场。
// 只保存构造参数，每次求值各自重新计算中间项，不修改 X、Y。
type ElementaryFlowField struct {
	Strength float64 // 强度，正为源，负为汇；偶极子沿 +x 方向
	X0       float64 // 奇点位置
	Y0       float64
	X        mat.Matrix // 网格点的 x 坐标
	Y        mat.Matrix // 网格点的 y 坐标
}

func NewElementaryFlowField(strength, x0, y0 float64, x, y mat.Matrix) (*ElementaryFlowField, error) {
	xr, xc := dims(x)
	yr, yc := dims(y)
	if xr != yr || xc != yc || xr == 0 || xc == 0 {
		return nil, errors.Wrapf(ErrGridShape, "X is %dx%d, Y is %dx%d", xr, xc, yr, yc)
	}
	return &ElementaryFlowField{
		Strength: strength,
		X0:       x0,
		Y0:       y0,
		X:        x,
		Y:        y,
	}, nil
}

// dims nil 或 typed nil 的矩阵视为 0x0
func dims(m mat.Matrix) (r, c int) {
	if m == nil {
		return 0, 0
	}
	defer func() {
		if recover() != nil {
			r, c = 0, 0
		}
	}()
	return m.Dims()
}

// StreamFunction 按名称求流函数，名称不区分大小写
func (f *ElementaryFlowField) StreamFunction(flow string) (*mat.Dense, error) {
	kind, err := ParseFlowKind(flow)
	if err != nil {
		return nil, err
	}
	return f.StreamFunctionOf(kind)
}

// StreamFunctionOf 源/汇: Phi = S/2π · atan2(y-y0, x-x0)
// 偶极子: Phi = -S/2π · (y-y0) / r²
func (f *ElementaryFlowField) StreamFunctionOf(kind FlowKind) (*mat.Dense, error) {
	if !kind.implemented() {
		return nil, &UnsupportedFlowKindError{Kind: kind.String()}
	}
	f.logEvaluation("stream function", kind)

	dx, dy := f.offsets()
	var phi mat.Dense
	switch kind {
	case Source, Sink:
		k := f.Strength / (2 * math.Pi)
		phi.Apply(func(i, j int, v float64) float64 {
			return k * math.Atan2(v, dx.At(i, j))
		}, dy)
	case Doublet:
		k := -f.Strength / (2 * math.Pi)
		_, _, r2 := squares(dx, dy)
		phi.Apply(func(i, j int, v float64) float64 {
			return k * (v / r2.At(i, j))
		}, dy)
	}
	return &phi, nil
}

// Velocity 按名称求速度场 (u, v)
func (f *ElementaryFlowField) Velocity(flow string) (u, v *mat.Dense, err error) {
	kind, err := ParseFlowKind(flow)
	if err != nil {
		return nil, nil, err
	}
	return f.VelocityOf(kind)
}

// VelocityOf u、v 共用同一个 r²，保证两个分量的舍入一致
func (f *ElementaryFlowField) VelocityOf(kind FlowKind) (u, v *mat.Dense, err error) {
	if !kind.implemented() {
		return nil, nil, &UnsupportedFlowKindError{Kind: kind.String()}
	}
	f.logEvaluation("velocity", kind)

	dx, dy := f.offsets()
	dx2, dy2, r2 := squares(dx, dy)
	u, v = new(mat.Dense), new(mat.Dense)
	switch kind {
	case Source, Sink:
		k := f.Strength / (2 * math.Pi)
		u.Apply(func(i, j int, d float64) float64 {
			return k * d / r2.At(i, j)
		}, dx)
		v.Apply(func(i, j int, d float64) float64 {
			return k * d / r2.At(i, j)
		}, dy)
	case Doublet:
		k := -f.Strength / (2 * math.Pi)
		u.Apply(func(i, j int, d float64) float64 {
			r := r2.At(i, j)
			return k * ((d - dy2.At(i, j)) / (r * r))
		}, dx2)
		v.Apply(func(i, j int, d float64) float64 {
			r := r2.At(i, j)
			return k * ((2 * d * dy.At(i, j)) / (r * r))
		}, dx)
	}
	return u, v, nil
}

// offsets 返回 x-x0 和 y-y0
func (f *ElementaryFlowField) offsets() (dx, dy *mat.Dense) {
	dx, dy = new(mat.Dense), new(mat.Dense)
	dx.Apply(func(_, _ int, x float64) float64 { return x - f.X0 }, f.X)
	dy.Apply(func(_, _ int, y float64) float64 { return y - f.Y0 }, f.Y)
	return dx, dy
}

// squares 返回 dx²、dy² 以及 r² = dx² + dy²。
// 逐元素相乘后再相加，避免编译器融合成 FMA。
func squares(dx, dy *mat.Dense) (dx2, dy2, r2 *mat.Dense) {
	dx2, dy2, r2 = new(mat.Dense), new(mat.Dense), new(mat.Dense)
	dx2.MulElem(dx, dx)
	dy2.MulElem(dy, dy)
	r2.Add(dx2, dy2)
	return dx2, dy2, r2
}

func (f *ElementaryFlowField) logEvaluation(what string, kind FlowKind) {
	r, c := f.X.Dims()
	log.WithFields(log.Fields{
		"kind":     kind.String(),
		"strength": f.Strength,
		"x0":       f.X0,
		"y0":       f.Y0,
		"rows":     r,
		"cols":     c,
	}).Debug(what)
}
