package js

// Kind tags the category of a Value.
type Kind int

const (
	KindUndefined Kind = iota
	KindNull
	KindBoolean
	KindNumber
	KindString
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "undefined"
	case KindNull:
		return "null"
	case KindBoolean:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindObject:
		return "object"
	}
	return ""
}

// Hook reduces an object to a primitive. It takes no arguments and either
// yields a Value or fails; the converter falls back to the other hook on
// failure or a non-primitive result.
type Hook func() (Value, error)

// Object is a composite value. It carries at most one ValueOf and one
// ToString hook; identity is pointer identity, never structural.
type Object struct {
	ValueOf  Hook
	ToString Hook
}

// Value is an immutable tagged variant over the five primitive kinds plus
// object handles. The zero value is Undefined.
type Value struct {
	kind Kind
	bool bool
	num  float64
	str  string
	obj  *Object
}

// Undefined returns the undefined value.
func Undefined() Value {
	return Value{kind: KindUndefined}
}

// Null returns the null value.
func Null() Value {
	return Value{kind: KindNull}
}

// Boolean returns a boolean value.
func Boolean(b bool) Value {
	return Value{kind: KindBoolean, bool: b}
}

// Number returns a number value. IEEE-754 semantics apply, including NaN,
// signed zero and the infinities.
func Number(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// String returns a string value.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// ObjectValue wraps an object handle. Wrapping the same *Object twice yields
// values that compare equal under == and ===.
func ObjectValue(obj *Object) Value {
	return Value{kind: KindObject, obj: obj}
}

// Kind returns the category tag of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// IsPrimitive reports whether the value is one of the five primitive kinds.
func (v Value) IsPrimitive() bool {
	return v.kind != KindObject
}

// Bool returns the stored boolean. Only meaningful for KindBoolean.
func (v Value) Bool() bool {
	return v.bool
}

// Num returns the stored number. Only meaningful for KindNumber.
func (v Value) Num() float64 {
	return v.num
}

// Str returns the stored string. Only meaningful for KindString.
func (v Value) Str() string {
	return v.str
}

// Obj returns the object handle, or nil for primitives.
func (v Value) Obj() *Object {
	return v.obj
}

// TypeOf reports the value's type the way the typeof operator does,
// including the historical "object" result for null.
func TypeOf(v Value) string {
	if v.kind == KindNull {
		return "object"
	}
	return v.kind.String()
}
