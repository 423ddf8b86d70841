// Package types implements linc's type algebra: primitive, array,
// structure, function, and enumeration types, their structural equality,
// and the weaker assignability/compatibility relations the binder uses
// to check calls, assignments, and operator application.
package types

import "strings"

// Primitive enumerates the atomic (non-composite) type kinds.
type Primitive int

const (
	Invalid Primitive = iota
	Void
	Bool
	Char
	U8
	U16
	U32
	U64
	I8
	I16
	I32
	I64
	F32
	F64
	String
	TypeKind // the type of a reflected type value, produced by ':' (typeof)
)

var primitiveNames = map[Primitive]string{
	Invalid: "invalid", Void: "void", Bool: "bool", Char: "char",
	U8: "u8", U16: "u16", U32: "u32", U64: "u64",
	I8: "i8", I16: "i16", I32: "i32", I64: "i64",
	F32: "f32", F64: "f64", String: "string", TypeKind: "type",
}

func (p Primitive) String() string {
	if name, ok := primitiveNames[p]; ok {
		return name
	}
	return "?"
}

// IsIntegral reports whether p is one of the fixed-width signed/unsigned
// integer kinds (not bool, not char).
func (p Primitive) IsIntegral() bool {
	switch p {
	case U8, U16, U32, U64, I8, I16, I32, I64:
		return true
	default:
		return false
	}
}

// IsSigned reports whether p is one of the signed integer kinds.
func (p Primitive) IsSigned() bool {
	switch p {
	case I8, I16, I32, I64:
		return true
	default:
		return false
	}
}

// IsFloat reports whether p is f32 or f64.
func (p Primitive) IsFloat() bool {
	return p == F32 || p == F64
}

// IsNumeric reports whether p participates in arithmetic operators.
func (p Primitive) IsNumeric() bool {
	return p.IsIntegral() || p.IsFloat()
}

// BitWidth returns the storage width of an integral or float primitive,
// used by the binder's literal-overflow wrap and the value model's
// arithmetic.
func (p Primitive) BitWidth() int {
	switch p {
	case U8, I8:
		return 8
	case U16, I16:
		return 16
	case U32, I32, F32:
		return 32
	case U64, I64, F64:
		return 64
	default:
		return 0
	}
}

// Variant tags the recursive shape of a Type.
type Variant int

const (
	VariantPrimitive Variant = iota
	VariantArray
	VariantStructure
	VariantFunction
	VariantEnumeration
)

// Field is one named member of a Structure type.
type Field struct {
	Name string
	Type *Type
}

// Variant is one named alternative of an Enumeration type; Payload may be
// nil for a no-payload variant.
type Variant_ struct {
	Name    string
	Payload *Type
}

// Type is linc's recursive type value. Exactly one of the variant-specific
// fields is meaningful, selected by Kind.
type Type struct {
	Kind    Variant
	Mutable bool

	Prim Primitive // VariantPrimitive

	ArrayBase  *Type // VariantArray
	ArrayCount *uint64

	Fields []Field // VariantStructure

	FuncReturn *Type   // VariantFunction
	FuncArgs   []*Type // VariantFunction

	Variants []Variant_ // VariantEnumeration
}

// NewPrimitive returns an immutable primitive Type.
func NewPrimitive(p Primitive) *Type {
	return &Type{Kind: VariantPrimitive, Prim: p}
}

// Mut returns a copy of t with the mutable flag set, matching linc's
// top-level `mut` qualifier on declarations.
func Mut(t *Type) *Type {
	c := *t
	c.Mutable = true
	return &c
}

// NewArray returns an array Type. count == nil denotes an unbounded array.
func NewArray(base *Type, count *uint64) *Type {
	return &Type{Kind: VariantArray, ArrayBase: base, ArrayCount: count}
}

// EmptyArrayCount is the sentinel count of an inferred empty-array
// literal — assignable to any array base regardless of the target's
// element count.
const EmptyArrayCount uint64 = 0

// NewStructure returns a record Type over ordered fields.
func NewStructure(fields []Field) *Type {
	return &Type{Kind: VariantStructure, Fields: fields}
}

// NewFunction returns a function-reference Type.
func NewFunction(ret *Type, args []*Type) *Type {
	return &Type{Kind: VariantFunction, FuncReturn: ret, FuncArgs: args}
}

// NewEnumeration returns a tagged-union Type.
func NewEnumeration(variants []Variant_) *Type {
	return &Type{Kind: VariantEnumeration, Variants: variants}
}

// IsInvalid reports whether t is the primitive Invalid type, the binder's
// marker for "no diagnostic-free type could be assigned": every bound
// expression has a non-invalid Type iff no error diagnostic was pushed
// against it.
func (t *Type) IsInvalid() bool {
	return t == nil || (t.Kind == VariantPrimitive && t.Prim == Invalid)
}

// Equal reports structural equality, ignoring the Mutable flag at every
// level: equality is structural modulo the mutable flag.
func Equal(a, b *Type) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case VariantPrimitive:
		return a.Prim == b.Prim
	case VariantArray:
		if !Equal(a.ArrayBase, b.ArrayBase) {
			return false
		}
		return countsEqual(a.ArrayCount, b.ArrayCount)
	case VariantStructure:
		if len(a.Fields) != len(b.Fields) {
			return false
		}
		for i := range a.Fields {
			if a.Fields[i].Name != b.Fields[i].Name || !Equal(a.Fields[i].Type, b.Fields[i].Type) {
				return false
			}
		}
		return true
	case VariantFunction:
		if !Equal(a.FuncReturn, b.FuncReturn) || len(a.FuncArgs) != len(b.FuncArgs) {
			return false
		}
		for i := range a.FuncArgs {
			if !Equal(a.FuncArgs[i], b.FuncArgs[i]) {
				return false
			}
		}
		return true
	case VariantEnumeration:
		if len(a.Variants) != len(b.Variants) {
			return false
		}
		for i := range a.Variants {
			if a.Variants[i].Name != b.Variants[i].Name || !Equal(a.Variants[i].Payload, b.Variants[i].Payload) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func countsEqual(a, b *uint64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// AssignableTo reports whether a value of type from may flow into storage
// of type to: same variant, and the weaker-than-equality rules for arrays
// (absent or matching count; an empty-array count of zero is assignable
// to any base), records/enumerations (pairwise assignable payloads), and
// functions (pairwise equal args/return).
func AssignableTo(from, to *Type) bool {
	if from == nil || to == nil {
		return false
	}
	if from.IsInvalid() || to.IsInvalid() {
		// An already-invalid type is assignment-compatible with anything so a
		// single root error doesn't cascade into spurious follow-on errors.
		return true
	}
	if from.Kind != to.Kind {
		return false
	}

	switch from.Kind {
	case VariantPrimitive:
		return from.Prim == to.Prim
	case VariantArray:
		if !AssignableTo(from.ArrayBase, to.ArrayBase) {
			return false
		}
		if to.ArrayCount == nil {
			return true
		}
		if from.ArrayCount != nil && *from.ArrayCount == EmptyArrayCount {
			return true
		}
		return from.ArrayCount != nil && *from.ArrayCount == *to.ArrayCount
	case VariantStructure:
		if len(from.Fields) != len(to.Fields) {
			return false
		}
		for i := range from.Fields {
			if from.Fields[i].Name != to.Fields[i].Name || !AssignableTo(from.Fields[i].Type, to.Fields[i].Type) {
				return false
			}
		}
		return true
	case VariantFunction:
		if len(from.FuncArgs) != len(to.FuncArgs) || !Equal(from.FuncReturn, to.FuncReturn) {
			return false
		}
		for i := range from.FuncArgs {
			if !Equal(from.FuncArgs[i], to.FuncArgs[i]) {
				return false
			}
		}
		return true
	case VariantEnumeration:
		if len(from.Variants) != len(to.Variants) {
			return false
		}
		for i := range from.Variants {
			if from.Variants[i].Name != to.Variants[i].Name || !AssignableTo(from.Variants[i].Payload, to.Variants[i].Payload) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Compatible reports whether a and b may stand on either side of an
// equality comparison: either is assignable to the other. Match-arm and
// if/else result unification use Equal instead.
func Compatible(a, b *Type) bool {
	return AssignableTo(a, b) || AssignableTo(b, a)
}

// String renders a human-readable type name for diagnostics.
func (t *Type) String() string {
	if t == nil {
		return "<nil>"
	}
	switch t.Kind {
	case VariantPrimitive:
		return t.Prim.String()
	case VariantArray:
		if t.ArrayCount == nil {
			return "[]" + t.ArrayBase.String()
		}
		return "[" + uitoa(*t.ArrayCount) + "]" + t.ArrayBase.String()
	case VariantStructure:
		var b strings.Builder
		b.WriteString("struct{")
		for i, f := range t.Fields {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(f.Name)
			b.WriteString(": ")
			b.WriteString(f.Type.String())
		}
		b.WriteString("}")
		return b.String()
	case VariantFunction:
		var b strings.Builder
		b.WriteString("fn(")
		for i, a := range t.FuncArgs {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(a.String())
		}
		b.WriteString("): ")
		b.WriteString(t.FuncReturn.String())
		return b.String()
	case VariantEnumeration:
		var b strings.Builder
		b.WriteString("enum{")
		for i, v := range t.Variants {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(v.Name)
			if v.Payload != nil {
				b.WriteString("(")
				b.WriteString(v.Payload.String())
				b.WriteString(")")
			}
		}
		b.WriteString("}")
		return b.String()
	default:
		return "?"
	}
}

func uitoa(v uint64) string {
	if v == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}
