// Package codec reads linear systems from and writes solutions to JSON,
// YAML and TOML documents.
//
// A system document has two keys:
//
//	{"a": [[2, 1], [1, 3]], "b": [3, 5]}
//
// Documents are first decoded into a generic tree so that operands of the
// wrong rank (a scalar or a vector where a matrix is expected, a nested
// list where a vector is expected) surface as gaussjordan dimension
// mismatches instead of opaque type errors.
package codec

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"

	"github.com/katalvlaran/linsolve/gaussjordan"
	"github.com/katalvlaran/linsolve/matrix"
)

const opDecode = "Decode"

var (
	ErrUnknownFormat = errors.New("codec: unknown format")
	ErrMalformed     = errors.New("codec: malformed document")
	ErrMissingField  = errors.New("codec: missing field")
	ErrNotNumeric    = errors.New("codec: element is not a number")

	ErrNonFiniteSolution = errors.New("codec: solution is not finite")
)

// System is the input document: coefficient matrix A and right-hand side b.
type System struct {
	A [][]float64 `json:"a" yaml:"a" toml:"a"`
	B []float64   `json:"b" yaml:"b" toml:"b"`
}

// Solution is the output document.
type Solution struct {
	N        int       `json:"n" yaml:"n" toml:"n"`
	X        []float64 `json:"x" yaml:"x" toml:"x"`
	Residual float64   `json:"residual" yaml:"residual" toml:"residual"`
}

// DecodeSystem reads one System document from r.
//
// Errors:
//   - ErrUnknownFormat, ErrMalformed, ErrMissingField, ErrNotNumeric (wrapped).
//   - *gaussjordan.Error of KindDimensionMismatch with Dim = "rank" when a
//     is not 2-D or b is not 1-D.
func DecodeSystem(r io.Reader, f Format) (System, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return System{}, fmt.Errorf("codec: read: %w", err)
	}

	var tree any
	switch f {
	case JSON:
		err = sonic.Unmarshal(raw, &tree)
	case YAML:
		err = yaml.Unmarshal(raw, &tree)
	case TOML:
		err = toml.Unmarshal(raw, &tree)
	default:
		return System{}, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return System{}, fmt.Errorf("%w: %s: %w", ErrMalformed, f, err)
	}

	doc, ok := tree.(map[string]any)
	if !ok {
		return System{}, fmt.Errorf("%w: %s: top level must be a mapping", ErrMalformed, f)
	}

	return systemFromTree(doc)
}

func systemFromTree(doc map[string]any) (System, error) {
	av, ok := doc["a"]
	if !ok {
		return System{}, fmt.Errorf("%w: a", ErrMissingField)
	}
	bv, ok := doc["b"]
	if !ok {
		return System{}, fmt.Errorf("%w: b", ErrMissingField)
	}

	a, err := matrixFromTree(av)
	if err != nil {
		return System{}, err
	}
	b, err := vectorFromTree("b", bv)
	if err != nil {
		return System{}, err
	}

	return System{A: a, B: b}, nil
}

func matrixFromTree(v any) ([][]float64, error) {
	rows, ok := v.([]any)
	if !ok {
		return nil, gaussjordan.RankError(opDecode, "A", 2, rank(v))
	}

	out := make([][]float64, len(rows))
	for i, rv := range rows {
		name := fmt.Sprintf("A[%d]", i)
		if _, isList := rv.([]any); !isList {
			return nil, gaussjordan.RankError(opDecode, "A", 2, 1)
		}
		row, err := vectorFromTree(name, rv)
		if err != nil {
			var ge *gaussjordan.Error
			if errors.As(err, &ge) {
				return nil, gaussjordan.RankError(opDecode, "A", 2, 1+ge.Actual)
			}

			return nil, err
		}
		out[i] = row
	}

	return out, nil
}

func vectorFromTree(name string, v any) ([]float64, error) {
	items, ok := v.([]any)
	if !ok {
		return nil, gaussjordan.RankError(opDecode, name, 1, rank(v))
	}

	out := make([]float64, len(items))
	for i, it := range items {
		if _, isList := it.([]any); isList {
			return nil, gaussjordan.RankError(opDecode, name, 1, 1+rank(it))
		}
		f, ok := toFloat(it)
		if !ok {
			return nil, fmt.Errorf("%w: %s[%d] = %v", ErrNotNumeric, name, i, it)
		}
		out[i] = f
	}

	return out, nil
}

// rank is the nesting depth of v along its first elements.
func rank(v any) int {
	r := 0
	for {
		l, ok := v.([]any)
		if !ok {
			return r
		}
		r++
		if len(l) == 0 {
			return r
		}
		v = l[0]
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint32:
		return float64(n), true
	}

	return 0, false
}

// EncodeSolution writes s to w in format f.
func EncodeSolution(w io.Writer, f Format, s Solution) error {
	var (
		out []byte
		err error
	)
	switch f {
	case JSON:
		out, err = sonic.ConfigStd.MarshalIndent(s, "", "  ")
		if err == nil {
			out = append(out, '\n')
		}
	case YAML:
		out, err = yaml.Marshal(s)
	case TOML:
		out, err = toml.Marshal(s)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return fmt.Errorf("codec: encode %s: %w", f, err)
	}
	if _, err = w.Write(out); err != nil {
		return fmt.Errorf("codec: write: %w", err)
	}

	return nil
}

// NewSolution wraps x, the solution of sys, with its dimension and the
// infinity norm of the residual A·x − b.
//
// Finite input can still overflow during elimination. A non-finite x or
// residual is ErrNonFiniteSolution, which also matches matrix.ErrNaNInf.
func NewSolution(sys System, x []float64) (Solution, error) {
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Solution{}, fmt.Errorf("%w: %w: x[%d] = %g", ErrNonFiniteSolution, matrix.ErrNaNInf, i, v)
		}
	}

	a, err := matrix.NewDenseFromRows(sys.A, matrix.WithNoValidateNaNInf())
	if err != nil {
		return Solution{}, fmt.Errorf("codec: residual: %w", err)
	}
	r, err := gaussjordan.Residual(a, x, sys.B)
	if err != nil {
		return Solution{}, fmt.Errorf("codec: residual: %w", err)
	}
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return Solution{}, fmt.Errorf("%w: %w: residual = %g", ErrNonFiniteSolution, matrix.ErrNaNInf, r)
	}

	return Solution{N: len(x), X: x, Residual: r}, nil
}
