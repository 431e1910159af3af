package model

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/pkg/errors"
)

// 前后端通信消息结构
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// 流场计算请求，X、Y 为 meshgrid 形式的网格
type FlowReq struct {
	Kind     string      `json:"kind"`
	Strength float64     `json:"strength"`
	X0       float64     `json:"x0"`
	Y0       float64     `json:"y0"`
	X        [][]float64 `json:"x"`
	Y        [][]float64 `json:"y"`
}

// 流场计算结果，流函数或速度分量，只填充与请求对应的字段
type FieldResp struct {
	Kind string `json:"kind"`
	Rows int    `json:"rows"`
	Cols int    `json:"cols"`
	Phi  Field  `json:"phi,omitempty"`
	U    Field  `json:"u,omitempty"`
	V    Field  `json:"v,omitempty"`
}

type Field [][]Value

func NewField(rows [][]float64) Field {
	field := make(Field, len(rows))
	for i, row := range rows {
		field[i] = make([]Value, len(row))
		for j, v := range row {
			field[i][j] = Value(v)
		}
	}
	return field
}

func (f Field) Float64s() [][]float64 {
	rows := make([][]float64, len(f))
	for i, row := range f {
		rows[i] = make([]float64, len(row))
		for j, v := range row {
			rows[i][j] = float64(v)
		}
	}
	return rows
}

// Value JSON 没有 NaN 和 Inf，奇点处的值编码为字符串 "NaN"、"+Inf"、"-Inf"
type Value float64

func (v Value) MarshalJSON() ([]byte, error) {
	f := float64(v)
	switch {
	case math.IsNaN(f):
		return []byte(`"NaN"`), nil
	case math.IsInf(f, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(f, -1):
		return []byte(`"-Inf"`), nil
	}
	return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
}

func (v *Value) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		switch s {
		case "NaN":
			*v = Value(math.NaN())
		case "+Inf", "Inf":
			*v = Value(math.Inf(1))
		case "-Inf":
			*v = Value(math.Inf(-1))
		default:
			return errors.Errorf("model: invalid value %q", s)
		}
		return nil
	}
	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return err
	}
	*v = Value(f)
	return nil
}
