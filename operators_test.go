package sexpr

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestBinaryOperators(t *testing.T) {
	testCases := []struct {
		Op   string
		A, B int32
		Out  int32
		Err  error
	}{
		{"+", 3, 4, 7, nil},
		{"+", math.MaxInt32, 1, 0, ErrArithmetic},
		{"+", math.MinInt32, -1, 0, ErrArithmetic},
		{"-", 3, 4, -1, nil},
		{"-", math.MinInt32, 1, 0, ErrArithmetic},
		{"*", -6, 7, -42, nil},
		{"*", 1 << 16, 1 << 15, 0, ErrArithmetic},
		{"/", 7, 2, 3, nil},
		{"/", -7, 2, -3, nil},
		{"/", 1, 0, 0, ErrArithmetic},
		{"/", math.MinInt32, -1, 0, ErrArithmetic},
		{"%", 7, 3, 1, nil},
		{"%", -7, 2, -1, nil},
		{"%", 7, 0, 0, ErrArithmetic},
		{"**", 2, 10, 1024, nil},
		{"**", 5, 0, 1, nil},
		{"**", 0, 0, 1, nil},
		{"**", 0, 5, 0, nil},
		{"**", 1, 1000000, 1, nil},
		{"**", -1, 1000001, -1, nil},
		{"**", -1, 1000000, 1, nil},
		{"**", -2, 31, math.MinInt32, nil},
		{"**", 2, 31, 0, ErrArithmetic},
		{"**", 2, -1, 0, ErrArithmetic},
	}

	for _, tc := range testCases {
		fn, ok := binaryOperators[tc.Op]
		if !assert.True(t, ok, tc.Op) {
			continue
		}
		out, err := fn(tc.A, tc.B)
		if tc.Err != nil {
			assert.True(t, errors.Is(err, tc.Err), "%d %s %d", tc.A, tc.Op, tc.B)
			continue
		}
		assert.NoError(t, err)
		assert.Equal(t, tc.Out, out, "%d %s %d", tc.A, tc.Op, tc.B)
	}
}

func TestUnaryOperators(t *testing.T) {
	v, err := unaryOperators["-"].apply(NewIntValue(5))
	assert.NoError(t, err)
	assert.Equal(t, "-5", v.String())

	v, err = unaryOperators["+"].apply(NewIntValue(5))
	assert.NoError(t, err)
	assert.Equal(t, "5", v.String())

	v, err = unaryOperators["!"].apply(True)
	assert.NoError(t, err)
	assert.Equal(t, False, v)

	_, err = unaryOperators["-"].apply(NewIntValue(math.MinInt32))
	assert.True(t, errors.Is(err, ErrArithmetic))

	assert.Equal(t, ValueTypeBool, unaryOperators["!"].operand)
	assert.Equal(t, ValueTypeInt, unaryOperators["-"].operand)
}

func TestComparisonTables(t *testing.T) {
	pairs := [][2]int32{{1, 2}, {2, 1}, {3, 3}, {math.MinInt32, math.MaxInt32}, {-1, 0}}

	for _, p := range pairs {
		a, b := p[0], p[1]
		assert.Equal(t, a < b, intComparisons["<"](a, b))
		assert.Equal(t, a <= b, intComparisons["<="](a, b))
		assert.Equal(t, a > b, intComparisons[">"](a, b))
		assert.Equal(t, a >= b, intComparisons[">="](a, b))
		assert.Equal(t, a == b, intComparisons["=="](a, b))
		assert.Equal(t, a != b, intComparisons["!="](a, b))
	}

	_, ok := intComparisons["="]
	assert.False(t, ok)

	for _, a := range []bool{true, false} {
		for _, b := range []bool{true, false} {
			assert.Equal(t, a && b, boolConnectives["&"](a, b))
			assert.Equal(t, a || b, boolConnectives["|"](a, b))
		}
	}
}
