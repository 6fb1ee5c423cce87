package options

import (
	"strconv"
	"strings"
)

// Kind identifies one of the closed set of option value kinds
type Kind int

const (
	// KindInvalid is the kind of the zero Value; no option may declare it
	KindInvalid Kind = iota
	KindInt
	KindBool
	KindText
	KindFloat
	KindList
)

// Kinds lists every valid kind in declaration order
var Kinds = []Kind{KindInt, KindBool, KindText, KindFloat, KindList}

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindText:
		return "text"
	case KindFloat:
		return "float"
	case KindList:
		return "list"
	default:
		return "invalid"
	}
}

// Valid reports whether k is one of the five option kinds
func (k Kind) Valid() bool {
	return k >= KindInt && k <= KindList
}

// Value is a typed option value. Only the field matching kind is meaningful.
type Value struct {
	kind  Kind
	i     int64
	b     bool
	s     string
	f     float64
	items []string
}

// Int returns an int option value
func Int(v int64) Value { return Value{kind: KindInt, i: v} }

// Bool returns a bool option value
func Bool(v bool) Value { return Value{kind: KindBool, b: v} }

// Text returns a text option value
func Text(v string) Value { return Value{kind: KindText, s: v} }

// Float returns a float option value
func Float(v float64) Value { return Value{kind: KindFloat, f: v} }

// List returns a list option value holding a copy of items
func List(items ...string) Value {
	cp := make([]string, len(items))
	copy(cp, items)
	return Value{kind: KindList, items: cp}
}

// Kind returns the kind of the value
func (v Value) Kind() Kind { return v.kind }

// AsInt returns the int held by v, or 0 for other kinds
func (v Value) AsInt() int64 { return v.i }

// AsBool returns the bool held by v, or false for other kinds
func (v Value) AsBool() bool { return v.b }

// AsText returns the text held by v, or "" for other kinds
func (v Value) AsText() string { return v.s }

// AsFloat returns the float held by v, or 0 for other kinds
func (v Value) AsFloat() float64 { return v.f }

// AsList returns a copy of the list held by v, or nil for other kinds
func (v Value) AsList() []string {
	if v.kind != KindList {
		return nil
	}
	cp := make([]string, len(v.items))
	copy(cp, v.items)
	return cp
}

// Equal reports whether both values have the same kind and content
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindInt:
		return v.i == other.i
	case KindBool:
		return v.b == other.b
	case KindText:
		return v.s == other.s
	case KindFloat:
		return v.f == other.f
	case KindList:
		if len(v.items) != len(other.items) {
			return false
		}
		for i := range v.items {
			if v.items[i] != other.items[i] {
				return false
			}
		}
		return true
	}
	return true
}

// String returns the natural textual form of the value. Lists are joined
// with commas, so String output of any value coerces back to an equal value
// as long as list items contain no commas.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindText:
		return v.s
	case KindFloat:
		return formatFloat(v.f)
	case KindList:
		return strings.Join(v.items, ",")
	}
	return ""
}

// Repr renders the value for help output: text is quoted, everything else
// uses its natural form.
func (v Value) Repr() string {
	if v.kind == KindText {
		return strconv.Quote(v.s)
	}
	return v.String()
}

// Interface returns the value as a plain Go value, for encoders and loggers
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindInt:
		return v.i
	case KindBool:
		return v.b
	case KindText:
		return v.s
	case KindFloat:
		return v.f
	case KindList:
		return v.AsList()
	}
	return nil
}

// formatFloat always keeps a decimal point so floats never read as ints
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if strings.ContainsAny(s, ".eEnN") {
		return s
	}
	return s + ".0"
}
