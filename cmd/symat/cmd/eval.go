package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/symatlab/symat/engine"
	"github.com/symatlab/symat/eval"
)

var evalCmd = &cobra.Command{
	Use:   "eval [request.json]",
	Short: "Evaluate a matrix expression request",
	Long: `Evaluate a JSON request read from the given file, or from stdin
when no file is named.

The request carries named matrices and one expression:

  {
    "matrices": [
      {"name": "A", "rows": 2, "cols": 2, "data": [["a", "0"], ["0", "a"]]}
    ],
    "expression": "DET(A)"
  }

On success the result envelope is written to stdout:

  {"kind": "scalar", "value": "a^2"}

On failure an error envelope with the stable error code goes to stdout and
the exit status is non-zero:

  {"error": {"code": "SingularMatrix", "message": "..."}}`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	var opts []eval.Option
	if cfgFile != "" {
		cfg, err := loadConfig(cfgFile)
		if err != nil {
			return err
		}
		opts = cfg.Limits.options()
	}

	in := cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	return evalRequest(in, cmd.OutOrStdout(), opts)
}

// errorEnvelope is the failure shape on the wire.
type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// evalRequest decodes one request, evaluates it and writes the result or
// error envelope as a single JSON line.
func evalRequest(in io.Reader, out io.Writer, opts []eval.Option) error {
	var request engine.Request
	if err := json.NewDecoder(in).Decode(&request); err != nil {
		return fmt.Errorf("decode request: %w", err)
	}

	result, err := engine.Evaluate(request, opts...)
	if err != nil {
		envelope := errorEnvelope{Error: errorBody{Code: engine.Code(err), Message: err.Error()}}
		if encErr := json.NewEncoder(out).Encode(envelope); encErr != nil {
			return encErr
		}

		return err
	}

	return json.NewEncoder(out).Encode(result)
}
