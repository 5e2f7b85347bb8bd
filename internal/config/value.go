package config

import (
	"fmt"
	"sort"
	"strconv"
)

// Kind identifies the concrete type held by a Value.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
	KindList
	KindTable
)

// String returns a readable name for the kind, used in error messages.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "integer"
	case KindFloat:
		return "float"
	case KindBool:
		return "boolean"
	case KindList:
		return "list"
	case KindTable:
		return "table"
	default:
		return "unknown"
	}
}

// Value is a tagged variant covering every shape a setting can take:
// scalars (string, integer, float, boolean), lists of values, and nested
// tables such as the per-host alias mapping. Keeping settings in this form
// lets the parser and migrator match on kinds exhaustively instead of
// probing interface{} values all over the place.
type Value struct {
	kind  Kind
	str   string
	num   int64
	fnum  float64
	b     bool
	list  []Value
	table map[string]Value
}

func StringValue(s string) Value { return Value{kind: KindString, str: s} }
func IntValue(n int64) Value     { return Value{kind: KindInt, num: n} }
func FloatValue(f float64) Value { return Value{kind: KindFloat, fnum: f} }
func BoolValue(b bool) Value     { return Value{kind: KindBool, b: b} }

func ListValue(items ...Value) Value {
	return Value{kind: KindList, list: items}
}

func TableValue(entries map[string]Value) Value {
	if entries == nil {
		entries = map[string]Value{}
	}
	return Value{kind: KindTable, table: entries}
}

// StringListValue is a convenience constructor for the common list-of-strings
// settings (domains, ssh_options).
func StringListValue(items ...string) Value {
	list := make([]Value, len(items))
	for i, s := range items {
		list[i] = StringValue(s)
	}
	return ListValue(list...)
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) AsString() (string, bool) { return v.str, v.kind == KindString }
func (v Value) AsInt() (int64, bool)     { return v.num, v.kind == KindInt }
func (v Value) AsFloat() (float64, bool) { return v.fnum, v.kind == KindFloat }
func (v Value) AsBool() (bool, bool)     { return v.b, v.kind == KindBool }
func (v Value) AsList() ([]Value, bool)  { return v.list, v.kind == KindList }

func (v Value) AsTable() (map[string]Value, bool) {
	return v.table, v.kind == KindTable
}

// Equal reports deep equality of two values.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == other.str
	case KindInt:
		return v.num == other.num
	case KindFloat:
		return v.fnum == other.fnum
	case KindBool:
		return v.b == other.b
	case KindList:
		if len(v.list) != len(other.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].Equal(other.list[i]) {
				return false
			}
		}
		return true
	case KindTable:
		if len(v.table) != len(other.table) {
			return false
		}
		for key, val := range v.table {
			otherVal, ok := other.table[key]
			if !ok || !val.Equal(otherVal) {
				return false
			}
		}
		return true
	}
	return false
}

// Display renders the value for user-facing output (config show, dry runs).
func (v Value) Display() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindInt:
		return strconv.FormatInt(v.num, 10)
	case KindFloat:
		return strconv.FormatFloat(v.fnum, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindList:
		out := ""
		for i, item := range v.list {
			if i > 0 {
				out += ", "
			}
			out += item.Display()
		}
		return out
	case KindTable:
		keys := make([]string, 0, len(v.table))
		for key := range v.table {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		out := ""
		for i, key := range keys {
			if i > 0 {
				out += ", "
			}
			out += key + "=" + v.table[key].Display()
		}
		return out
	}
	return ""
}

// valueFromAny converts a decoded TOML value into the variant form.
func valueFromAny(raw any) (Value, error) {
	switch t := raw.(type) {
	case string:
		return StringValue(t), nil
	case int64:
		return IntValue(t), nil
	case int:
		return IntValue(int64(t)), nil
	case float64:
		return FloatValue(t), nil
	case bool:
		return BoolValue(t), nil
	case []any:
		list := make([]Value, 0, len(t))
		for _, item := range t {
			val, err := valueFromAny(item)
			if err != nil {
				return Value{}, err
			}
			list = append(list, val)
		}
		return ListValue(list...), nil
	case map[string]any:
		table := make(map[string]Value, len(t))
		for key, item := range t {
			val, err := valueFromAny(item)
			if err != nil {
				return Value{}, err
			}
			table[key] = val
		}
		return TableValue(table), nil
	default:
		return Value{}, fmt.Errorf("unsupported setting type %T", raw)
	}
}

// toAny converts the variant back to the shape the TOML encoder expects.
func (v Value) toAny() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindInt:
		return v.num
	case KindFloat:
		return v.fnum
	case KindBool:
		return v.b
	case KindList:
		out := make([]any, len(v.list))
		for i, item := range v.list {
			out[i] = item.toAny()
		}
		return out
	case KindTable:
		out := make(map[string]any, len(v.table))
		for key, item := range v.table {
			out[key] = item.toAny()
		}
		return out
	}
	return nil
}
