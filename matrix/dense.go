// Package matrix provides the dense cost matrix used as solver input.
// Costs is a concrete, row-major implementation of the Matrix interface,
// storing elements in a flat slice for cache friendliness and cheap cloning.
package matrix

import (
	"fmt"
	"strings"
)

// costsErrorf wraps an underlying error with Costs method context.
func costsErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Costs.%s(%d,%d): %w", method, row, col, err)
}

// Costs is a square row-major matrix of Cost values.
// n is the order and data holds n*n elements; data[i*n+i] is always Blocked.
type Costs struct {
	n    int    // matrix order
	data []Cost // flat backing storage, length == n*n
}

var _ Matrix = (*Costs)(nil)

// NewCosts creates an n×n matrix with open zero-weight off-diagonal cells
// and a blocked diagonal.
// Complexity: O(n²) time and memory.
func NewCosts(n int) (*Costs, error) {
	if n <= 0 {
		return nil, ErrBadShape
	}
	data := make([]Cost, n*n)
	var i int
	for i = 0; i < n; i++ {
		data[i*n+i] = Blocked()
	}

	return &Costs{n: n, data: data}, nil
}

// FromRows builds Costs from a rectangular table. The diagonal is forced to
// Blocked whatever the table holds there; off-diagonal weights must be
// non-negative.
//
// Errors: ErrBadShape (empty), ErrNonSquare (ragged or rectangular),
// ErrNegativeCost.
// Complexity: O(n²).
func FromRows(rows [][]Cost) (*Costs, error) {
	n, err := ValidateSquare(rows)
	if err != nil {
		return nil, err
	}
	m, err := NewCosts(n)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			if err = validateCost(rows[i][j]); err != nil {
				return nil, costsErrorf("FromRows", i, j, err)
			}
			m.data[i*n+j] = rows[i][j]
		}
	}

	return m, nil
}

// FromInts builds Costs from plain integers using the legacy convention
// where -1 marks a blocked transition.
func FromInts(rows [][]int) (*Costs, error) {
	table := make([][]Cost, len(rows))
	var (
		i, j int
		c    Cost
		err  error
	)
	for i = range rows {
		table[i] = make([]Cost, len(rows[i]))
		for j = range rows[i] {
			if i == j {
				table[i][j] = Blocked()
				continue
			}
			if c, err = fromInt(int64(rows[i][j])); err != nil {
				return nil, costsErrorf("FromInts", i, j, err)
			}
			table[i][j] = c
		}
	}

	return FromRows(table)
}

// Rows returns the number of rows in the matrix (0 for nil).
func (m *Costs) Rows() int { return m.Size() }

// Cols returns the number of columns in the matrix (0 for nil).
func (m *Costs) Cols() int { return m.Size() }

// Size returns the matrix order N (0 for nil).
func (m *Costs) Size() int {
	if m == nil {
		return 0
	}
	return m.n
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Costs) indexOf(method string, row, col int) (int, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, costsErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.n + col, nil
}

// At retrieves the cost of row → col.
// Complexity: O(1).
func (m *Costs) At(row, col int) (Cost, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return Cost{}, err
	}

	return m.data[idx], nil
}

// Set assigns the cost of row → col. Diagonal cells only accept Blocked.
// Complexity: O(1).
func (m *Costs) Set(row, col int, c Cost) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	if row == col && !c.IsBlocked() {
		return costsErrorf("Set", row, col, ErrDiagonal)
	}
	if err = validateCost(c); err != nil {
		return costsErrorf("Set", row, col, err)
	}
	m.data[idx] = c

	return nil
}

// Clone returns a deep copy.
// Complexity: O(n²) time and memory for copy.
func (m *Costs) Clone() *Costs {
	cp := make([]Cost, len(m.data))
	copy(cp, m.data)

	return &Costs{n: m.n, data: cp}
}

// Table returns a freshly allocated [][]Cost view of the matrix.
func (m *Costs) Table() [][]Cost {
	out := make([][]Cost, m.n)
	var i int
	for i = 0; i < m.n; i++ {
		out[i] = make([]Cost, m.n)
		copy(out[i], m.data[i*m.n:(i+1)*m.n])
	}

	return out
}

// Equal reports whether both matrices have the same order and cells.
func (m *Costs) Equal(o *Costs) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.n != o.n {
		return false
	}
	var i int
	for i = range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// String renders the matrix in the line-per-row text format.
// Complexity: O(n²) for string construction.
func (m *Costs) String() string {
	var (
		sb   strings.Builder
		i, j int
	)
	for i = 0; i < m.n; i++ {
		for j = 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(m.data[i*m.n+j].String())
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
