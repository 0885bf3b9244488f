package engine

import (
	"encoding/json"
	"fmt"
)

// MatrixInput is one named operand: a rows×cols grid of cell strings.
// Empty or blank cells read as "0".
type MatrixInput struct {
	Name string     `json:"name"`
	Rows int        `json:"rows"`
	Cols int        `json:"cols"`
	Data [][]string `json:"data"`
}

// Request is one evaluation: a set of named matrices and the expression
// to evaluate over them.
type Request struct {
	Matrices   []MatrixInput `json:"matrices"`
	Expression string        `json:"expression"`
}

// ResultKind tags the result payload.
type ResultKind string

const (
	// KindScalar tags a single canonical expression string.
	KindScalar ResultKind = "scalar"
	// KindMatrix tags a grid of canonical expression strings.
	KindMatrix ResultKind = "matrix"
)

// Result is the evaluation outcome. Exactly one of Scalar or Matrix is set,
// selected by Kind. On the wire it is {"kind": ..., "value": ...} with the
// value shape following the kind.
type Result struct {
	Kind   ResultKind
	Scalar string
	Matrix [][]string
}

// MarshalJSON emits the tagged {"kind", "value"} envelope.
func (r Result) MarshalJSON() ([]byte, error) {
	if r.Kind == KindMatrix {
		return json.Marshal(struct {
			Kind  ResultKind `json:"kind"`
			Value [][]string `json:"value"`
		}{r.Kind, r.Matrix})
	}

	return json.Marshal(struct {
		Kind  ResultKind `json:"kind"`
		Value string     `json:"value"`
	}{r.Kind, r.Scalar})
}

// UnmarshalJSON reads the tagged envelope back into the matching field.
func (r *Result) UnmarshalJSON(data []byte) error {
	var envelope struct {
		Kind  ResultKind      `json:"kind"`
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return err
	}

	*r = Result{Kind: envelope.Kind}
	switch envelope.Kind {
	case KindScalar:
		return json.Unmarshal(envelope.Value, &r.Scalar)
	case KindMatrix:
		return json.Unmarshal(envelope.Value, &r.Matrix)
	default:
		return fmt.Errorf("result kind %q: %w", envelope.Kind, ErrInvalidRequest)
	}
}
