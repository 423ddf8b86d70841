// Package value implements linc's runtime value domain: a tagged variant
// isomorphic to the type algebra in package types, plus the arithmetic,
// comparison, and conversion rules the interpreter and constant folder
// both need.
package value

import (
	"fmt"
	"strconv"

	"github.com/fosspointer/go-linc/internal/types"
)

// Tag enumerates the primitive value kinds. It mirrors types.Primitive but
// collapses the signed/unsigned integer widths into single Signed/Unsigned
// carriers holding a full-width u64/i64 payload. The originating width is
// retained separately so the interpreter can re-mask on store.
type Tag int

const (
	Invalid Tag = iota
	Void
	Bool
	Char
	Unsigned
	Signed
	Float
	Double
	String
	TypeVal
)

// Value is linc's runtime value. Exactly one field group is meaningful,
// selected by Kind/Tag.
type Value struct {
	Kind ValueKind

	// Primitive payload.
	Tag   Tag
	Prim  types.Primitive // the exact width, e.g. U8 vs U64, both carried as Tag==Unsigned
	U     uint64
	I     int64
	F32   float32
	F64   float64
	Bool_ bool
	Ch    rune
	Str   string
	TyVal *types.Type // payload of a Primitive(Type) value

	// Array payload: homogeneous buffer + element type.
	ElemType *types.Type
	Elems    []Value

	// Structure payload.
	StructType *types.Type
	Fields     []Value

	// Enumerator payload.
	EnumType     *types.Type
	VariantName  string
	VariantIndex int
	Payload      *Value

	// Function payload.
	FuncName string
	ArgNames []string
	FuncType *types.Type
	Body     any // *boundtree.Expression, set by package binder/interp to avoid an import cycle
}

// ValueKind distinguishes the top-level shape of a Value, paralleling
// types.Variant.
type ValueKind int

const (
	KindPrimitive ValueKind = iota
	KindArray
	KindStructure
	KindEnumerator
	KindFunction
)

// InvalidValue is the sentinel produced by a failed arithmetic/conversion
// operation: the runtime pushes an error report and carries on with this
// value rather than aborting the whole evaluation.
var InvalidValue = Value{Kind: KindPrimitive, Tag: Invalid, Prim: types.Invalid}

// VoidValue is the result of statements and void-returning calls.
var VoidValue = Value{Kind: KindPrimitive, Tag: Void, Prim: types.Void}

func NewBool(b bool) Value {
	return Value{Kind: KindPrimitive, Tag: Bool, Prim: types.Bool, Bool_: b}
}

func NewChar(c rune) Value {
	return Value{Kind: KindPrimitive, Tag: Char, Prim: types.Char, Ch: c}
}

func NewString(s string) Value {
	return Value{Kind: KindPrimitive, Tag: String, Prim: types.String, Str: s}
}

func NewUnsigned(prim types.Primitive, u uint64) Value {
	return Value{Kind: KindPrimitive, Tag: Unsigned, Prim: prim, U: maskUnsigned(prim, u)}
}

func NewSigned(prim types.Primitive, i int64) Value {
	return Value{Kind: KindPrimitive, Tag: Signed, Prim: prim, I: wrapSigned(prim, i)}
}

func NewFloat32(f float32) Value {
	return Value{Kind: KindPrimitive, Tag: Float, Prim: types.F32, F32: f}
}

func NewFloat64(f float64) Value {
	return Value{Kind: KindPrimitive, Tag: Double, Prim: types.F64, F64: f}
}

func NewType(t *types.Type) Value {
	return Value{Kind: KindPrimitive, Tag: TypeVal, Prim: types.TypeKind, TyVal: t}
}

func NewArray(elemType *types.Type, elems []Value) Value {
	return Value{Kind: KindArray, ElemType: elemType, Elems: elems}
}

func NewStructure(structType *types.Type, fields []Value) Value {
	return Value{Kind: KindStructure, StructType: structType, Fields: fields}
}

func NewEnumerator(enumType *types.Type, name string, index int, payload *Value) Value {
	return Value{Kind: KindEnumerator, EnumType: enumType, VariantName: name, VariantIndex: index, Payload: payload}
}

// maskUnsigned truncates u to prim's bit width, implementing the silent
// wraparound for literal overflow that the value model's arithmetic must
// preserve on every subsequent store.
func maskUnsigned(prim types.Primitive, u uint64) uint64 {
	width := prim.BitWidth()
	if width == 0 || width >= 64 {
		return u
	}
	return u & ((uint64(1) << uint(width)) - 1)
}

// wrapSigned truncates i to prim's bit width using two's-complement
// sign-extension, matching the unsigned case.
func wrapSigned(prim types.Primitive, i int64) int64 {
	width := prim.BitWidth()
	if width == 0 || width >= 64 {
		return i
	}
	mask := uint64(1)<<uint(width) - 1
	u := uint64(i) & mask
	signBit := uint64(1) << uint(width-1)
	if u&signBit != 0 {
		u |= ^mask
	}
	return int64(u)
}

// Type reconstructs the static type of v — used by the folder and the
// interpreter's @ (stringify) and : (typeof) operators, which both need a
// Type from a runtime Value.
func (v Value) Type() *types.Type {
	switch v.Kind {
	case KindPrimitive:
		return types.NewPrimitive(v.Prim)
	case KindArray:
		n := uint64(len(v.Elems))
		return types.NewArray(v.ElemType, &n)
	case KindStructure:
		return v.StructType
	case KindEnumerator:
		return v.EnumType
	case KindFunction:
		return v.FuncType
	default:
		return types.NewPrimitive(types.Invalid)
	}
}

// Stringify implements the '@' operator: a textual rendering of a
// primitive or composite value. Chars and strings render as their raw
// contents, without quotes or escapes, and numbers carry no width suffix.
func (v Value) Stringify() string {
	switch v.Kind {
	case KindPrimitive:
		switch v.Tag {
		case Bool:
			return strconv.FormatBool(v.Bool_)
		case Char:
			return string(v.Ch)
		case Unsigned:
			return strconv.FormatUint(v.U, 10)
		case Signed:
			return strconv.FormatInt(v.I, 10)
		case Float:
			return strconv.FormatFloat(float64(v.F32), 'g', -1, 32)
		case Double:
			return strconv.FormatFloat(v.F64, 'g', -1, 64)
		case String:
			return v.Str
		case Void:
			return "void"
		case TypeVal:
			return v.TyVal.String()
		default:
			return "<invalid>"
		}
	case KindArray:
		s := "["
		for i, e := range v.Elems {
			if i > 0 {
				s += ", "
			}
			s += e.Stringify()
		}
		return s + "]"
	case KindStructure:
		s := "{"
		for i, f := range v.Fields {
			if i > 0 {
				s += ", "
			}
			s += f.Stringify()
		}
		return s + "}"
	case KindEnumerator:
		if v.Payload == nil {
			return v.VariantName
		}
		return fmt.Sprintf("%s(%s)", v.VariantName, v.Payload.Stringify())
	case KindFunction:
		return "fn " + v.FuncName
	default:
		return "<invalid>"
	}
}

// AsFloat64 widens any numeric primitive to float64 for mixed arithmetic
// with the left operand's tag: arithmetic on primitives converts the
// right-hand operand to the left's tag first.
func (v Value) AsFloat64() float64 {
	switch v.Tag {
	case Unsigned:
		return float64(v.U)
	case Signed:
		return float64(v.I)
	case Float:
		return float64(v.F32)
	case Double:
		return v.F64
	default:
		return 0
	}
}

// AsInt64 widens a numeric primitive to int64, truncating toward zero for
// floats — an implementation-defined choice where the narrower direction
// isn't otherwise pinned down.
func (v Value) AsInt64() int64 {
	switch v.Tag {
	case Unsigned:
		return int64(v.U)
	case Signed:
		return v.I
	case Float:
		return int64(v.F32)
	case Double:
		return int64(v.F64)
	default:
		return 0
	}
}

// ConvertTo implements the `as T(x)` explicit conversion for primitive
// values, truncating toward zero for float→integral narrowing and masking
// to the target width for integral conversions.
func ConvertTo(v Value, target types.Primitive) Value {
	switch {
	case target.IsIntegral() && target.IsSigned():
		return NewSigned(target, v.AsInt64())
	case target.IsIntegral():
		return NewUnsigned(target, uint64(v.AsInt64()))
	case target == types.F32:
		return NewFloat32(float32(v.AsFloat64()))
	case target == types.F64:
		return NewFloat64(v.AsFloat64())
	case target == types.Bool:
		return NewBool(v.AsInt64() != 0)
	case target == types.Char:
		return NewChar(rune(v.AsInt64()))
	case target == types.String:
		return NewString(v.Stringify())
	default:
		return InvalidValue
	}
}

// Equal implements structural value equality for '==' / '!='.
func Equal(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindPrimitive:
		if a.Tag != b.Tag {
			return false
		}
		switch a.Tag {
		case Bool:
			return a.Bool_ == b.Bool_
		case Char:
			return a.Ch == b.Ch
		case Unsigned:
			return a.U == b.U
		case Signed:
			return a.I == b.I
		case Float:
			return a.F32 == b.F32
		case Double:
			return a.F64 == b.F64
		case String:
			return a.Str == b.Str
		case Void:
			return true
		case TypeVal:
			return types.Equal(a.TyVal, b.TyVal)
		default:
			return false
		}
	case KindArray:
		if len(a.Elems) != len(b.Elems) {
			return false
		}
		for i := range a.Elems {
			if !Equal(a.Elems[i], b.Elems[i]) {
				return false
			}
		}
		return true
	case KindStructure:
		if len(a.Fields) != len(b.Fields) {
			return false
		}
		for i := range a.Fields {
			if !Equal(a.Fields[i], b.Fields[i]) {
				return false
			}
		}
		return true
	case KindEnumerator:
		if a.VariantIndex != b.VariantIndex {
			return false
		}
		if a.Payload == nil || b.Payload == nil {
			return a.Payload == b.Payload
		}
		return Equal(*a.Payload, *b.Payload)
	default:
		return false
	}
}

// Less implements '<' for two numeric primitives of the same tag,
// following the right-operand-converts-to-left rule.
func Less(a, b Value) (bool, bool) {
	switch a.Tag {
	case Unsigned:
		return a.U < uint64(AsUnsignedFrom(b)), true
	case Signed:
		return a.I < int64FromAny(b), true
	case Float:
		return float64(a.F32) < b.AsFloat64(), true
	case Double:
		return a.F64 < b.AsFloat64(), true
	default:
		return false, false
	}
}

func AsUnsignedFrom(v Value) uint64 {
	if v.Tag == Unsigned {
		return v.U
	}
	return uint64(v.AsInt64())
}

func int64FromAny(v Value) int64 {
	return v.AsInt64()
}

// IsZero reports whether a numeric primitive value is the zero of its tag,
// used to detect division/modulo by zero.
func (v Value) IsZero() bool {
	switch v.Tag {
	case Unsigned:
		return v.U == 0
	case Signed:
		return v.I == 0
	case Float:
		return v.F32 == 0
	case Double:
		return v.F64 == 0
	default:
		return false
	}
}
