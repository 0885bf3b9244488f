package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEvalRequestScalar runs one request through the decoder and checks the
// result envelope.
func TestEvalRequestScalar(t *testing.T) {
	in := strings.NewReader(`{
		"matrices": [{"name": "A", "rows": 2, "cols": 2, "data": [["a", "0"], ["0", "a"]]}],
		"expression": "DET(A)"
	}`)
	var out bytes.Buffer

	require.NoError(t, evalRequest(in, &out, nil))
	assert.JSONEq(t, `{"kind":"scalar","value":"a^2"}`, out.String())
}

// TestEvalRequestError checks the error envelope and the non-nil return.
func TestEvalRequestError(t *testing.T) {
	in := strings.NewReader(`{
		"matrices": [{"name": "S", "rows": 2, "cols": 2, "data": [["1", "0"], ["0", "0"]]}],
		"expression": "INV(S)"
	}`)
	var out bytes.Buffer

	err := evalRequest(in, &out, nil)
	require.Error(t, err)
	assert.Contains(t, out.String(), `"code":"SingularMatrix"`)
}

// TestEvalRequestBadJSON: a malformed body never reaches the engine.
func TestEvalRequestBadJSON(t *testing.T) {
	var out bytes.Buffer
	err := evalRequest(strings.NewReader("{"), &out, nil)
	require.Error(t, err)
	assert.Empty(t, out.String())
}

// TestLoadConfig reads limits from TOML and converts them to options.
func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "symat.toml")
	require.NoError(t, os.WriteFile(path, []byte(
		"[limits]\nmax_dimension = 8\nmax_exponent = 16\n"), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Limits.MaxDimension)
	assert.Equal(t, 0, cfg.Limits.MaxDepth)
	assert.Equal(t, 16, cfg.Limits.MaxExponent)
	assert.Len(t, cfg.Limits.options(), 2)

	_, err = loadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

// TestLoadConfigRejectsNegative: negative limits are a config error, not a
// panic inside the option constructors.
func TestLoadConfigRejectsNegative(t *testing.T) {
	path := filepath.Join(t.TempDir(), "symat.toml")
	require.NoError(t, os.WriteFile(path, []byte("[limits]\nmax_depth = -1\n"), 0o644))

	_, err := loadConfig(path)
	assert.Error(t, err)
}
