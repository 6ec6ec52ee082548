package sexpr

import (
	"math"

	"github.com/pkg/errors"
)

type binaryFunc func(a, b int32) (int32, error)

type unaryOperator struct {
	operand ValueType
	apply   func(v *Value) (*Value, error)
}

type comparisonFunc func(a, b int32) bool

type connectiveFunc func(a, b bool) bool

// Operator tables, built once and only read afterwards.
var (
	binaryOperators = map[string]binaryFunc{
		"+":  add,
		"-":  sub,
		"*":  mul,
		"/":  div,
		"%":  mod,
		"**": pow,
	}

	unaryOperators = map[string]unaryOperator{
		"-": {operand: ValueTypeInt, apply: negate},
		"+": {operand: ValueTypeInt, apply: identity},
		"!": {operand: ValueTypeBool, apply: not},
	}

	intComparisons = map[string]comparisonFunc{
		"<":  func(a, b int32) bool { return a < b },
		"<=": func(a, b int32) bool { return a <= b },
		">":  func(a, b int32) bool { return a > b },
		">=": func(a, b int32) bool { return a >= b },
		"==": func(a, b int32) bool { return a == b },
		"!=": func(a, b int32) bool { return a != b },
	}

	boolConnectives = map[string]connectiveFunc{
		"&": func(a, b bool) bool { return a && b },
		"|": func(a, b bool) bool { return a || b },
	}
)

func checked(v int64) (int32, error) {
	if v > math.MaxInt32 || v < math.MinInt32 {
		return 0, errors.Wrapf(ErrArithmetic, "integer overflow: %d", v)
	}
	return int32(v), nil
}

func add(a, b int32) (int32, error) {
	return checked(int64(a) + int64(b))
}

func sub(a, b int32) (int32, error) {
	return checked(int64(a) - int64(b))
}

func mul(a, b int32) (int32, error) {
	return checked(int64(a) * int64(b))
}

func div(a, b int32) (int32, error) {
	if b == 0 {
		return 0, errors.Wrapf(ErrArithmetic, "division by zero: %d / 0", a)
	}
	return checked(int64(a) / int64(b))
}

func mod(a, b int32) (int32, error) {
	if b == 0 {
		return 0, errors.Wrapf(ErrArithmetic, "division by zero: %d %% 0", a)
	}
	return checked(int64(a) % int64(b))
}

func pow(base, exp int32) (int32, error) {
	if exp < 0 {
		return 0, errors.Wrapf(ErrArithmetic, "negative exponent: %d ** %d", base, exp)
	}
	switch base {
	case 0, 1:
		if exp == 0 {
			return 1, nil
		}
		return base, nil
	case -1:
		if exp%2 == 0 {
			return 1, nil
		}
		return -1, nil
	}
	result := int32(1)
	for i := int32(0); i < exp; i++ {
		var err error
		if result, err = mul(result, base); err != nil {
			return 0, err
		}
	}
	return result, nil
}

func negate(v *Value) (*Value, error) {
	i, err := checked(-int64(v.Int()))
	if err != nil {
		return nil, err
	}
	return NewIntValue(i), nil
}

func identity(v *Value) (*Value, error) {
	return v, nil
}

func not(v *Value) (*Value, error) {
	return NewBoolValue(!v.Bool()), nil
}
