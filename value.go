package sexpr

import (
	"strconv"

	"github.com/pkg/errors"
)

// ValueType is the runtime type of a textual result
type ValueType uint8

const (
	ValueTypeString ValueType = iota
	ValueTypeInt
	ValueTypeBool
)

var valueTypes = map[ValueType]string{
	ValueTypeString: "string",
	ValueTypeInt:    "int",
	ValueTypeBool:   "bool",
}

func (vt ValueType) String() string {
	return valueTypes[vt]
}

// Value is a result of evaluation. Every value travels between expressions
// in its textual form, Value is used where an operator needs to know what the
// text stands for.
type Value struct {
	v interface{}

	Type ValueType
}

var (
	True  = &Value{Type: ValueTypeBool, v: true}
	False = &Value{Type: ValueTypeBool, v: false}
)

// NewIntValue wraps a 32-bit integer
func NewIntValue(v int32) *Value {
	return &Value{v: v, Type: ValueTypeInt}
}

// NewBoolValue wraps a boolean
func NewBoolValue(v bool) *Value {
	if v {
		return True
	}
	return False
}

// NewStringValue wraps text that is neither an integer nor a boolean
func NewStringValue(v string) *Value {
	return &Value{v: v, Type: ValueTypeString}
}

// ResolveValue figures out the runtime type of the given text
func ResolveValue(text string) *Value {
	if isInteger(text) {
		if i, err := parseInt(text); err == nil {
			return NewIntValue(i)
		}
	}
	if b, err := parseBool(text); err == nil {
		return NewBoolValue(b)
	}
	return NewStringValue(text)
}

func (v Value) String() string {
	switch v.Type {
	case ValueTypeInt:
		return strconv.FormatInt(int64(v.v.(int32)), 10)
	case ValueTypeBool:
		return strconv.FormatBool(v.v.(bool))
	}
	return v.v.(string)
}

func (v Value) Int() int32 {
	return v.v.(int32)
}

func (v Value) Bool() bool {
	return v.v.(bool)
}

func isDigits(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// isInteger accepts digit runs with an optional minus sign, which is how
// negative results are written.
func isInteger(text string) bool {
	if len(text) > 1 && text[0] == '-' {
		return isDigits(text[1:])
	}
	return isDigits(text)
}

func parseInt(text string) (int32, error) {
	if !isInteger(text) {
		return 0, errors.Wrapf(ErrParseFailure, "%q is not an integer", text)
	}
	i, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		return 0, errors.Wrapf(ErrParseFailure, "%q does not fit in a 32-bit integer", text)
	}
	return int32(i), nil
}

func parseBool(text string) (bool, error) {
	switch text {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, errors.Wrapf(ErrParseFailure, "%q is not a boolean", text)
}
