package types

import "testing"

func u64(v uint64) *uint64 { return &v }

func TestPrimitiveClassification(t *testing.T) {
	tests := []struct {
		p                       Primitive
		integral, signed, float bool
	}{
		{U8, true, false, false},
		{I8, true, true, false},
		{F32, false, false, true},
		{Bool, false, false, false},
		{String, false, false, false},
	}
	for _, tt := range tests {
		if got := tt.p.IsIntegral(); got != tt.integral {
			t.Errorf("%v.IsIntegral() = %v, want %v", tt.p, got, tt.integral)
		}
		if got := tt.p.IsSigned(); got != tt.signed {
			t.Errorf("%v.IsSigned() = %v, want %v", tt.p, got, tt.signed)
		}
		if got := tt.p.IsFloat(); got != tt.float {
			t.Errorf("%v.IsFloat() = %v, want %v", tt.p, got, tt.float)
		}
	}
}

func TestBitWidth(t *testing.T) {
	tests := []struct {
		p    Primitive
		want int
	}{
		{U8, 8}, {I16, 16}, {U32, 32}, {F32, 32}, {I64, 64}, {F64, 64}, {Bool, 0}, {String, 0},
	}
	for _, tt := range tests {
		if got := tt.p.BitWidth(); got != tt.want {
			t.Errorf("%v.BitWidth() = %d, want %d", tt.p, got, tt.want)
		}
	}
}

func TestEqualIgnoresMutable(t *testing.T) {
	a := NewPrimitive(I32)
	b := Mut(NewPrimitive(I32))
	if !Equal(a, b) {
		t.Errorf("Equal(i32, mut i32) = false, want true (structural equality ignores Mutable)")
	}
}

func TestEqualArray(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Type
		expected bool
	}{
		{"same base same count", NewArray(NewPrimitive(I32), u64(3)), NewArray(NewPrimitive(I32), u64(3)), true},
		{"different counts", NewArray(NewPrimitive(I32), u64(3)), NewArray(NewPrimitive(I32), u64(4)), false},
		{"unbounded vs unbounded", NewArray(NewPrimitive(I32), nil), NewArray(NewPrimitive(I32), nil), true},
		{"unbounded vs bounded", NewArray(NewPrimitive(I32), nil), NewArray(NewPrimitive(I32), u64(3)), false},
		{"different base", NewArray(NewPrimitive(I32), u64(3)), NewArray(NewPrimitive(U32), u64(3)), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.expected {
				t.Errorf("Equal(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

func TestAssignableToEmptyArrayLiteral(t *testing.T) {
	// spec.md §3: an empty-array literal's inferred count of zero is
	// assignable to any array base/count, so `x: [3]i32 = [];` type-checks.
	empty := NewArray(NewPrimitive(I32), u64(EmptyArrayCount))
	target := NewArray(NewPrimitive(I32), u64(5))
	if !AssignableTo(empty, target) {
		t.Errorf("AssignableTo(empty array literal, [5]i32) = false, want true")
	}
}

func TestAssignableToUnboundedTarget(t *testing.T) {
	bounded := NewArray(NewPrimitive(I32), u64(5))
	unbounded := NewArray(NewPrimitive(I32), nil)
	if !AssignableTo(bounded, unbounded) {
		t.Errorf("AssignableTo([5]i32, []i32) = false, want true")
	}
	if AssignableTo(unbounded, bounded) {
		t.Errorf("AssignableTo([]i32, [5]i32) = true, want false (unknown count can't narrow)")
	}
}

func TestAssignableToInvalidNeverCascades(t *testing.T) {
	invalid := NewPrimitive(Invalid)
	if !AssignableTo(invalid, NewPrimitive(I32)) {
		t.Errorf("AssignableTo(invalid, i32) = false, want true")
	}
	if !AssignableTo(NewPrimitive(I32), invalid) {
		t.Errorf("AssignableTo(i32, invalid) = false, want true")
	}
}

func TestCompatibleIsSymmetricOverArrayCounts(t *testing.T) {
	bounded := NewArray(NewPrimitive(I32), u64(5))
	unbounded := NewArray(NewPrimitive(I32), nil)
	if !Compatible(bounded, unbounded) || !Compatible(unbounded, bounded) {
		t.Errorf("Compatible([5]i32, []i32) should hold in both directions")
	}
	if Compatible(NewPrimitive(I32), NewPrimitive(U32)) {
		t.Errorf("Compatible(i32, u32) = true, want false (distinct Prim)")
	}
}

func TestStringRendersComposites(t *testing.T) {
	fn := NewFunction(NewPrimitive(Bool), []*Type{NewPrimitive(I32), NewPrimitive(String)})
	if got, want := fn.String(), "fn(i32, string): bool"; got != want {
		t.Errorf("fn.String() = %q, want %q", got, want)
	}
	enum := NewEnumeration([]Variant_{{Name: "A", Payload: NewPrimitive(I32)}, {Name: "B"}})
	if got, want := enum.String(), "enum{A(i32), B}"; got != want {
		t.Errorf("enum.String() = %q, want %q", got, want)
	}
}
