package engine_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/symatlab/symat/engine"
	"github.com/symatlab/symat/eval"
)

// req is a shorthand for a single-matrix request.
func req(name string, rows, cols int, data [][]string, expression string) engine.Request {
	return engine.Request{
		Matrices:   []engine.MatrixInput{{Name: name, Rows: rows, Cols: cols, Data: data}},
		Expression: expression,
	}
}

// TestJSONScenario drives a full request from wire JSON to wire JSON.
func TestJSONScenario(t *testing.T) {
	src := `{
		"matrices": [
			{"name": "A", "rows": 2, "cols": 2, "data": [["a", "0"], ["0", "a"]]},
			{"name": "B", "rows": 2, "cols": 2, "data": [["1", "a"], ["3", "0"]]}
		],
		"expression": "A*B + T(A)"
	}`
	var request engine.Request
	require.NoError(t, json.Unmarshal([]byte(src), &request))

	result, err := engine.Evaluate(request)
	require.NoError(t, err)

	out, err := json.Marshal(result)
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"matrix","value":[["2*a","a^2"],["3*a","a"]]}`, string(out))
}

// TestScalarResult classifies scalar outcomes and renders canonical text.
func TestScalarResult(t *testing.T) {
	r, err := engine.Evaluate(req("M", 2, 2, [][]string{{"a", "b"}, {"c", "d"}}, "DET(M)"))
	require.NoError(t, err)
	assert.Equal(t, engine.KindScalar, r.Kind)
	assert.Equal(t, "a*d - b*c", r.Scalar)

	out, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"scalar","value":"a*d - b*c"}`, string(out))
}

// TestEmptyCellsReadAsZero: blank cells are holes, not errors.
func TestEmptyCellsReadAsZero(t *testing.T) {
	r, err := engine.Evaluate(req("M", 2, 2, [][]string{{"1", ""}, {"  ", "1"}}, "DET(M)"))
	require.NoError(t, err)
	assert.Equal(t, "1", r.Scalar)
}

// TestCellErrorsNameTheCell pins the matrix/cell coordinates in messages.
func TestCellErrorsNameTheCell(t *testing.T) {
	_, err := engine.Evaluate(req("M", 1, 2, [][]string{{"1", "2$"}}, "M"))
	require.Error(t, err)
	assert.Equal(t, engine.CodeLex, engine.Code(err))
	assert.Contains(t, err.Error(), `matrix "M" cell (0,1)`)

	// A reserved keyword call inside a cell is a parse error, not an
	// evaluation error.
	_, err = engine.Evaluate(req("M", 1, 1, [][]string{{"T(a)"}}, "M"))
	require.Error(t, err)
	assert.Equal(t, engine.CodeParse, engine.Code(err))
}

// TestInvalidRequest covers the envelope validation rules.
func TestInvalidRequest(t *testing.T) {
	grid := [][]string{{"1"}}

	cases := []struct {
		name    string
		request engine.Request
	}{
		{"empty name", req("", 1, 1, grid, "1")},
		{"non-letter name", req("A1", 1, 1, grid, "A1")},
		{"reserved name", req("det", 1, 1, grid, "det")},
		{"zero rows", req("A", 0, 1, nil, "A")},
		{"negative cols", req("A", 1, -2, grid, "A")},
		{"row count mismatch", req("A", 2, 1, grid, "A")},
		{"cell count mismatch", req("A", 1, 2, grid, "A")},
		{
			"duplicate name",
			engine.Request{
				Matrices: []engine.MatrixInput{
					{Name: "A", Rows: 1, Cols: 1, Data: grid},
					{Name: "A", Rows: 1, Cols: 1, Data: grid},
				},
				Expression: "A",
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := engine.Evaluate(tc.request)
			require.Error(t, err)
			assert.ErrorIs(t, err, engine.ErrInvalidRequest)
			assert.Equal(t, engine.CodeInvalidRequest, engine.Code(err))
		})
	}
}

// TestErrorCodes maps one representative failure onto each taxonomy code.
func TestErrorCodes(t *testing.T) {
	square := [][]string{{"1", "0"}, {"0", "0"}}
	wide := [][]string{{"1", "2", "3"}, {"4", "5", "6"}}

	cases := []struct {
		code    string
		request engine.Request
	}{
		{engine.CodeLex, req("A", 1, 1, [][]string{{"1"}}, "A $ A")},
		{engine.CodeParse, req("A", 1, 1, [][]string{{"1"}}, "A + ")},
		{engine.CodeParse, req("A", 1, 1, [][]string{{"1"}}, "FOO(A)")},
		{engine.CodeUnknownVariable, req("A", 1, 1, [][]string{{"1"}}, "A + B")},
		{engine.CodeDimensionMismatch, req("A", 2, 3, wide, "A + 1")},
		{engine.CodeNotSquare, req("A", 2, 3, wide, "DET(A)")},
		{engine.CodeSingularMatrix, req("A", 2, 2, square, "INV(A)")},
		{engine.CodeDivisionByZero, req("A", 1, 1, [][]string{{"1"}}, "A / 0")},
		{engine.CodeUnsupported, req("A", 1, 1, [][]string{{"1"}}, "2 ^ (1/2)")},
	}
	for _, tc := range cases {
		t.Run(tc.code+"/"+tc.request.Expression, func(t *testing.T) {
			_, err := engine.Evaluate(tc.request)
			require.Error(t, err)
			assert.Equal(t, tc.code, engine.Code(err))
		})
	}

	assert.Equal(t, engine.CodeInternal, engine.Code(errors.New("boom")))
}

// TestResourceLimitOptions threads options down to operands and cells.
func TestResourceLimitOptions(t *testing.T) {
	wide := [][]string{{"1", "2", "3"}, {"4", "5", "6"}}

	_, err := engine.Evaluate(req("A", 2, 3, wide, "A"), eval.WithMaxDimension(2))
	require.Error(t, err)
	assert.Equal(t, engine.CodeResourceLimit, engine.Code(err))

	_, err = engine.Evaluate(req("A", 1, 1, [][]string{{"a^9"}}, "A"), eval.WithMaxExponent(8))
	require.Error(t, err)
	assert.Equal(t, engine.CodeResourceLimit, engine.Code(err))

	over := 1 << 13
	deep := strings.Repeat("(", over) + "A" + strings.Repeat(")", over)
	_, err = engine.Evaluate(req("A", 1, 1, [][]string{{"1"}}, deep))
	require.Error(t, err)
	assert.Equal(t, engine.CodeResourceLimit, engine.Code(err), "deep nesting is rejected, not crashed on")
}

// TestResultRoundTrip checks both envelope shapes through Unmarshal.
func TestResultRoundTrip(t *testing.T) {
	var r engine.Result
	require.NoError(t, json.Unmarshal([]byte(`{"kind":"scalar","value":"a + 1"}`), &r))
	assert.Equal(t, engine.Result{Kind: engine.KindScalar, Scalar: "a + 1"}, r)

	require.NoError(t, json.Unmarshal([]byte(`{"kind":"matrix","value":[["0"]]}`), &r))
	assert.Equal(t, engine.Result{Kind: engine.KindMatrix, Matrix: [][]string{{"0"}}}, r)

	err := json.Unmarshal([]byte(`{"kind":"tensor","value":"x"}`), &r)
	assert.ErrorIs(t, err, engine.ErrInvalidRequest)
}

// TestCaseSensitiveNames: operands are case-sensitive even though keywords
// are not.
func TestCaseSensitiveNames(t *testing.T) {
	request := engine.Request{
		Matrices: []engine.MatrixInput{
			{Name: "A", Rows: 1, Cols: 1, Data: [][]string{{"1"}}},
			{Name: "a", Rows: 1, Cols: 1, Data: [][]string{{"2"}}},
		},
		Expression: "A + a",
	}
	r, err := engine.Evaluate(request)
	require.NoError(t, err)
	assert.Equal(t, engine.KindMatrix, r.Kind)
	assert.Equal(t, [][]string{{"3"}}, r.Matrix)
}
