package model

import (
	"encoding/json"
	"math"
	"testing"
)

func TestValueMarshalNonFinite(t *testing.T) {
	field := NewField([][]float64{{1.5, math.NaN()}, {math.Inf(1), math.Inf(-1)}})
	b, err := json.Marshal(field)
	if err != nil {
		t.Fatal(err)
	}
	const want = `[[1.5,"NaN"],["+Inf","-Inf"]]`
	if string(b) != want {
		t.Fatalf("json = %s, want %s", b, want)
	}

	var back Field
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatal(err)
	}
	rows := back.Float64s()
	if rows[0][0] != 1.5 || !math.IsNaN(rows[0][1]) || !math.IsInf(rows[1][0], 1) || !math.IsInf(rows[1][1], -1) {
		t.Errorf("decoded %v", rows)
	}
}

func TestValueUnmarshalInvalid(t *testing.T) {
	var v Value
	if err := json.Unmarshal([]byte(`"infinity"`), &v); err == nil {
		t.Error("expected an error for an unknown string value")
	}
}

func TestFieldRespOmitsUnusedComponents(t *testing.T) {
	b, err := json.Marshal(FieldResp{Kind: "sink", Rows: 1, Cols: 1, Phi: NewField([][]float64{{-0.25}})})
	if err != nil {
		t.Fatal(err)
	}
	const want = `{"kind":"sink","rows":1,"cols":1,"phi":[[-0.25]]}`
	if string(b) != want {
		t.Errorf("json = %s, want %s", b, want)
	}
}
