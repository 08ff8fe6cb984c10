// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set and row kernels return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// AI-Hints:
//   - Row kernels (SwapRows, DivideRow, AddScaledRow) validate once per call and then
//     run a tight loop over the flat buffer; use them from elimination loops instead of At/Set.
//   - DefaultValidateNaNInf is on; insert only finite values unless you explicitly disable it.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); row kernels: O(c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt           = "At"           // method tag used in error wrappers
	ctxSet          = "Set"          // method tag used in error wrappers
	ctxFromRows     = "FromRows"     // ctor tag for NewDenseFromRows
	ctxRawRow       = "RawRow"       // method tag for RawRow
	ctxCol          = "Col"          // method tag for Col
	ctxSwapRows     = "SwapRows"     // method tag for SwapRows
	ctxDivideRow    = "DivideRow"    // method tag for DivideRow
	ctxAddScaledRow = "AddScaledRow" // method tag for AddScaledRow
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): %w". The sentinel survives for errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection in Set.
type Dense struct {
	r, c           int       // row and column counts (>0)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation and a resolved numeric policy.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//   - Stage 3: set numeric policy from opts (defaults from options.go).
//
// Inputs:
//   - rows, cols: positive dimensions.
//   - opts: numeric policy setters (WithNoValidateNaNInf, ...).
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	// make() zero-fills deterministically.
	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// NewIdentity returns the n×n identity matrix.
// Errors: ErrInvalidDimensions if n <= 0.
// Complexity: O(n^2).
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// NewDenseFromRows copies caller-owned rows into a fresh Dense.
// MAIN DESCRIPTION:
//   - Ingest a [][]float64 (the natural Go shape of "a 2-D array") with full
//     shape and numeric-policy validation. The input is never aliased.
//
// Implementation:
//   - Stage 1: reject nil/empty input or an empty first row (ErrBadShape).
//   - Stage 2: every row must have len == len(rows[0]) (ErrDimensionMismatch).
//   - Stage 3: copy values; under the finite policy reject NaN/±Inf (ErrNaNInf).
//
// Errors:
//   - ErrBadShape, ErrDimensionMismatch, ErrNaNInf, each wrapped with
//     "Dense.FromRows(row,col)" coordinates of the offending element/row.
//
// Determinism:
//   - Rows are scanned in increasing order; the first offending row is reported.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, denseErrorf(ctxFromRows, 0, 0, ErrBadShape)
	}
	r, c := len(rows), len(rows[0])
	// Shape first: a ragged row is reported before any value is inspected.
	var i, j int
	for i = 1; i < r; i++ {
		if len(rows[i]) != c {
			return nil, denseErrorf(ctxFromRows, i, len(rows[i]), ErrDimensionMismatch)
		}
	}

	m, err := NewDense(r, c, opts...)
	if err != nil {
		return nil, err
	}
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v = rows[i][j]
			if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
				return nil, denseErrorf(ctxFromRows, i, j, ErrNaNInf)
			}
			m.data[i*c+j] = v
		}
	}

	return m, nil
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf validates (row, col) and returns the flat offset.
// Errors are returned bare; callers wrap with their own method tag.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	// Numeric policy: optional finite-only enforcement.
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf, // preserve guard policy
	}
}

// RawRow returns a copy of row i.
// Errors: ErrOutOfRange.
// Complexity: O(c).
func (m *Dense) RawRow(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRawRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns a copy of column j.
// Errors: ErrOutOfRange.
// Complexity: O(r).
func (m *Dense) Col(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// ToRows returns a freshly allocated [][]float64 copy of the matrix.
// Complexity: O(r*c).
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]float64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// SwapRows exchanges rows i and k in place.
// MAIN DESCRIPTION:
//   - Row interchange for pivoting kernels; i == k is a no-op.
//
// Errors:
//   - ErrOutOfRange if either index is outside [0, Rows()).
//
// Complexity:
//   - Time O(c), Space O(1).
func (m *Dense) SwapRows(i, k int) error {
	if i < 0 || i >= m.r || k < 0 || k >= m.r {
		return denseErrorf(ctxSwapRows, i, k, ErrOutOfRange)
	}
	if i == k {
		return nil
	}
	ri := m.data[i*m.c : (i+1)*m.c]
	rk := m.data[k*m.c : (k+1)*m.c]
	for j := range ri {
		ri[j], rk[j] = rk[j], ri[j]
	}

	return nil
}

// DivideRow divides row i by d over columns [from, Cols()).
// MAIN DESCRIPTION:
//   - In-place pivot-row normalization restricted to a column suffix; columns
//     left of `from` are untouched (elimination kernels know they are zero).
//
// Implementation:
//   - Divides (never multiplies by 1/d) so that row[i][from] / d == 1 exactly
//     when row[i][from] == d.
//
// Errors:
//   - ErrOutOfRange for a bad row or from ∉ [0, Cols()].
//   - ErrSingular if d == 0.
//
// Complexity:
//   - Time O(c-from), Space O(1).
//
// Notes:
//   - No numeric-policy check on results; kernels working on private copies
//     own the arithmetic.
func (m *Dense) DivideRow(i, from int, d float64) error {
	if i < 0 || i >= m.r || from < 0 || from > m.c {
		return denseErrorf(ctxDivideRow, i, from, ErrOutOfRange)
	}
	if d == 0 {
		return denseErrorf(ctxDivideRow, i, from, ErrSingular)
	}
	row := m.data[i*m.c+from : (i+1)*m.c]
	for j := range row {
		row[j] /= d
	}

	return nil
}

// AddScaledRow performs row[dst] += alpha * row[src] over columns [from, Cols()).
// MAIN DESCRIPTION:
//   - The elementary row operation of Gaussian elimination ("axpy" on rows).
//
// Implementation:
//   - Stage 1: bounds-check dst, src and from once.
//   - Stage 2: single fused loop over the two flat row slices.
//
// Errors:
//   - ErrOutOfRange for bad indices.
//
// Complexity:
//   - Time O(c-from), Space O(1).
//
// AI-Hints:
//   - alpha == 0 returns immediately; elimination often hits already-zero entries.
func (m *Dense) AddScaledRow(dst, src, from int, alpha float64) error {
	if dst < 0 || dst >= m.r || src < 0 || src >= m.r || from < 0 || from > m.c {
		return denseErrorf(ctxAddScaledRow, dst, src, ErrOutOfRange)
	}
	if alpha == 0 {
		return nil
	}
	d := m.data[dst*m.c+from : (dst+1)*m.c]
	s := m.data[src*m.c+from : (src+1)*m.c]
	for j := range d {
		d[j] += alpha * s[j]
	}

	return nil
}

// String provides a readable row-wise dump for diagnostics.
// Not for hot paths; intended for logs and debugging.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
