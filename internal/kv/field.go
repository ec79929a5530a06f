package kv

import (
	"fmt"
	"reflect"
	"strconv"
	"time"
)

// KeyValue represents typed log field (a key-value pair). Use Int, String, Error, etc.
// to create a field
type KeyValue struct {
	ftype FieldType
	key   string

	vint int64
	vstr string
	vany interface{}
}

type FieldType int

const (
	InvalidType FieldType = iota
	IntType
	Int64Type
	StringType
	BoolType
	DurationType
	StringsType
	ErrorType
	AnyType
	StringerType
	endType
)

var fieldTypeNames = [...]string{
	InvalidType:  "invalid",
	IntType:      "int",
	Int64Type:    "int64",
	StringType:   "string",
	BoolType:     "bool",
	DurationType: "time.Duration",
	StringsType:  "[]string",
	ErrorType:    "error",
	AnyType:      "any",
	StringerType: "stringer",
}

func (ft FieldType) String() (typeName string) {
	if ft < InvalidType || ft >= endType {
		return fmt.Sprintf("unknown(%d)", ft)
	}

	return fieldTypeNames[ft]
}

// Key returns the field key
func (f KeyValue) Key() string {
	return f.key
}

// Type returns the field type
func (f KeyValue) Type() FieldType {
	return f.ftype
}

// IntValue is a value getter for fields with IntType type
func (f KeyValue) IntValue() int {
	f.checkType(IntType)

	return int(f.vint)
}

// Int64Value is a value getter for fields with Int64Type type
func (f KeyValue) Int64Value() int64 {
	f.checkType(Int64Type)

	return f.vint
}

// StringValue is a value getter for fields with StringType type
func (f KeyValue) StringValue() string {
	f.checkType(StringType)

	return f.vstr
}

// BoolValue is a value getter for fields with BoolType type
func (f KeyValue) BoolValue() bool {
	f.checkType(BoolType)

	return f.vint != 0
}

// DurationValue is a value getter for fields with DurationType type
func (f KeyValue) DurationValue() time.Duration {
	f.checkType(DurationType)

	return time.Nanosecond * time.Duration(f.vint)
}

// StringsValue is a value getter for fields with StringsType type
func (f KeyValue) StringsValue() []string {
	f.checkType(StringsType)
	if f.vany == nil {
		return nil
	}

	return f.vany.([]string)
}

// ErrorValue is a value getter for fields with ErrorType type
func (f KeyValue) ErrorValue() error {
	f.checkType(ErrorType)
	if f.vany == nil {
		return nil
	}

	return f.vany.(error)
}

// AnyValue is a value getter for fields with AnyType type
func (f KeyValue) AnyValue() interface{} {
	switch f.ftype {
	case AnyType:
		return f.vany
	case IntType:
		return f.IntValue()
	case Int64Type:
		return f.Int64Value()
	case StringType:
		return f.StringValue()
	case BoolType:
		return f.BoolValue()
	case DurationType:
		return f.DurationValue()
	case StringsType:
		return f.StringsValue()
	case ErrorType:
		return f.ErrorValue()
	case StringerType:
		return f.Stringer()
	default:
		panic(fmt.Sprintf("unknown FieldType %d", f.ftype))
	}
}

// Stringer is a value getter for fields with StringerType type
func (f KeyValue) Stringer() fmt.Stringer {
	f.checkType(StringerType)
	if f.vany == nil {
		return nil
	}

	return f.vany.(fmt.Stringer)
}

// panics if type is not expected
func (f KeyValue) checkType(want FieldType) {
	if f.ftype != want {
		panic(fmt.Sprintf("bad type. have: %s, want: %s", f.ftype, want))
	}
}

// String returns human-readable representation of the field value
func (f KeyValue) String() string {
	switch f.ftype {
	case IntType, Int64Type:
		return strconv.FormatInt(f.vint, 10)
	case StringType:
		return f.vstr
	case BoolType:
		return strconv.FormatBool(f.BoolValue())
	case DurationType:
		return f.DurationValue().String()
	case StringsType:
		return fmt.Sprintf("%v", f.StringsValue())
	case ErrorType:
		if f.vany == nil {
			return "<nil>"
		}

		return f.ErrorValue().Error()
	case AnyType:
		if f.vany == nil {
			return "<nil>"
		}
		if v := reflect.ValueOf(f.vany); v.Kind() == reflect.Ptr {
			if v.IsNil() {
				return "<nil>"
			}

			return fmt.Sprintf("%T(%v)", f.vany, v.Elem())
		}

		return fmt.Sprint(f.vany)
	case StringerType:
		return f.Stringer().String()
	default:
		panic(fmt.Sprintf("unknown FieldType %d", f.ftype))
	}
}

// Int constructs Field with IntType
func Int(k string, v int) KeyValue {
	return KeyValue{
		ftype: IntType,
		key:   k,
		vint:  int64(v),
	}
}

// Int64 constructs Field with Int64Type
func Int64(k string, v int64) KeyValue {
	return KeyValue{
		ftype: Int64Type,
		key:   k,
		vint:  v,
	}
}

// String constructs Field with StringType
func String(k, v string) KeyValue {
	return KeyValue{
		ftype: StringType,
		key:   k,
		vstr:  v,
	}
}

// Bool constructs Field with BoolType
func Bool(key string, value bool) KeyValue {
	var vint int64
	if value {
		vint = 1
	}

	return KeyValue{
		ftype: BoolType,
		key:   key,
		vint:  vint,
	}
}

// Duration constructs Field with DurationType
func Duration(key string, value time.Duration) KeyValue {
	return KeyValue{
		ftype: DurationType,
		key:   key,
		vint:  value.Nanoseconds(),
	}
}

// Strings constructs Field with StringsType
func Strings(key string, value []string) KeyValue {
	return KeyValue{
		ftype: StringsType,
		key:   key,
		vany:  value,
	}
}

// NamedError constructs field of error type
func NamedError(key string, value error) KeyValue {
	return KeyValue{
		ftype: ErrorType,
		key:   key,
		vany:  value,
	}
}

// Error is the same as NamedError("error", value)
func Error(value error) KeyValue {
	return NamedError("error", value)
}

// Any constructs untyped Field.
func Any(key string, value interface{}) KeyValue {
	return KeyValue{
		ftype: AnyType,
		key:   key,
		vany:  value,
	}
}

// Stringer constructs field of StringerType
func Stringer(key string, value fmt.Stringer) KeyValue {
	return KeyValue{
		ftype: StringerType,
		key:   key,
		vany:  value,
	}
}
