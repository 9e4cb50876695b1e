package term

import (
	"fmt"
	"strconv"
	"strings"

	"nars/internal/nerr"
	"nars/internal/syntax"
)

// ArrayTerm is an N-dimensional (1-3) named term used for sensory grids; it
// represents the array of element terms without storing any element
// values. An ArrayTerm is Non-goal scope beyond its structural identity —
// no numeric array contents live in the term model (spec.md §1 Non-goals).
type ArrayTerm struct {
	name       string
	dimensions []int
	formatted  string
	complexity int
}

// NewArray builds (or returns the already interned) array term named name
// with the given per-axis element counts (1-3 axes).
func NewArray(name string, dimensions []int) (*ArrayTerm, error) {
	if len(dimensions) < 1 || len(dimensions) > 3 {
		return nil, fmt.Errorf("array term must have 1-3 dimensions: %w", nerr.ErrInvalidTerm)
	}
	elementCount := 1
	for _, d := range dimensions {
		if d < 1 {
			return nil, fmt.Errorf("array dimension must be positive: %w", nerr.ErrInvalidTerm)
		}
		elementCount *= d
	}
	formatted := string(syntax.ArraySigil) + name
	t := globalInterner.intern(formatted, func() Term {
		return &ArrayTerm{
			name:       name,
			dimensions: append([]int(nil), dimensions...),
			formatted:  formatted,
			complexity: 1 + elementCount,
		}
	})
	return t.(*ArrayTerm), nil
}

func (t *ArrayTerm) String() string         { return t.formatted }
func (t *ArrayTerm) Complexity() int        { return t.complexity }
func (t *ArrayTerm) IsOperation() bool      { return false }
func (t *ArrayTerm) ContainsVariable() bool { return false }
func (t *ArrayTerm) Name() string           { return t.name }
func (t *ArrayTerm) Dimensions() []int      { return append([]int(nil), t.dimensions...) }

// ArrayTermElementTerm names one indexed element of an ArrayTerm, e.g.
// "@grid[1,2]".
type ArrayTermElementTerm struct {
	array     *ArrayTerm
	indices   []float64
	formatted string
}

// NewArrayElement builds (or returns the already interned) element term for
// array at the given indices.
func NewArrayElement(array *ArrayTerm, indices []float64) *ArrayTermElementTerm {
	formatted := formatArrayElement(array, indices)
	t := globalInterner.intern(formatted, func() Term {
		return &ArrayTermElementTerm{
			array:     array,
			indices:   append([]float64(nil), indices...),
			formatted: formatted,
		}
	})
	return t.(*ArrayTermElementTerm)
}

func formatArrayElement(array *ArrayTerm, indices []float64) string {
	var b strings.Builder
	b.WriteString(array.String())
	b.WriteByte(syntax.ArrayElementIndexStart)
	for i, idx := range indices {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatFloat(idx, 'g', -1, 64))
	}
	b.WriteByte(syntax.ArrayElementIndexEnd)
	return b.String()
}

func (t *ArrayTermElementTerm) String() string         { return t.formatted }
func (t *ArrayTermElementTerm) Complexity() int        { return 1 }
func (t *ArrayTermElementTerm) IsOperation() bool      { return false }
func (t *ArrayTermElementTerm) ContainsVariable() bool { return false }
func (t *ArrayTermElementTerm) Array() *ArrayTerm       { return t.array }
func (t *ArrayTermElementTerm) Indices() []float64      { return append([]float64(nil), t.indices...) }
