package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ValueKind phân loại giá trị của một cột trong golden source
type ValueKind int

const (
	KindNull ValueKind = iota
	KindInt
	KindFloat
	KindString
)

// Value is a single golden-source cell: an integer, a float, a string, or
// null. The matcher treats it as opaque; only the composer reads fields by
// name. Null doubles as "column absent".
type Value struct {
	kind ValueKind
	i    int64
	f    float64
	s    string
}

// Null giá trị rỗng (cột thiếu hoặc NaN trong source)
func Null() Value { return Value{kind: KindNull} }

// Int tạo Value kiểu integer
func Int(v int64) Value { return Value{kind: KindInt, i: v} }

// Float tạo Value kiểu float
func Float(v float64) Value { return Value{kind: KindFloat, f: v} }

// String tạo Value kiểu string
func String(v string) Value { return Value{kind: KindString, s: v} }

// Kind trả về loại giá trị
func (v Value) Kind() ValueKind { return v.kind }

// IsNull kiểm tra giá trị có rỗng không
func (v Value) IsNull() bool { return v.kind == KindNull }

// Int64 trả về giá trị integer (0 nếu không phải KindInt)
func (v Value) Int64() int64 { return v.i }

// Float64 trả về giá trị float (giá trị int được convert)
func (v Value) Float64() float64 {
	if v.kind == KindInt {
		return float64(v.i)
	}
	return v.f
}

// Text renders the scalar for address composition. Null renders empty,
// floats drop a trailing ".0" the way spreadsheet numerics come in.
func (v Value) Text() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	case KindString:
		return v.s
	default:
		return ""
	}
}

// TrimmedText trả về Text() đã trim khoảng trắng
func (v Value) TrimmedText() string { return strings.TrimSpace(v.Text()) }

// MarshalJSON serializes the underlying scalar, null included.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindInt:
		return json.Marshal(v.i)
	case KindFloat:
		return json.Marshal(v.f)
	case KindString:
		return json.Marshal(v.s)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON restores a Value from its scalar form. Whole-number JSON
// numbers come back as integers so a cache round-trip preserves kinds.
func (v *Value) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*v = Null()
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = String(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	if f == math.Trunc(f) && !strings.ContainsAny(trimmed, ".eE") {
		*v = Int(int64(f))
		return nil
	}
	*v = Float(f)
	return nil
}

// Record một dòng dữ liệu golden source, map tên cột -> giá trị
type Record map[string]Value

// Get trả về giá trị của cột, Null nếu cột không tồn tại
func (r Record) Get(column string) Value {
	if v, ok := r[column]; ok {
		return v
	}
	return Null()
}
