package value

import (
	"testing"

	"github.com/fosspointer/go-linc/internal/types"
)

func TestUnsignedOverflowWraps(t *testing.T) {
	v := NewUnsigned(types.U8, 256)
	if v.U != 0 {
		t.Errorf("U8(256) = %d, want 0 (wraps at 8 bits)", v.U)
	}
	v = NewUnsigned(types.U8, 257)
	if v.U != 1 {
		t.Errorf("U8(257) = %d, want 1", v.U)
	}
}

func TestSignedOverflowWraps(t *testing.T) {
	v := NewSigned(types.I8, 128)
	if v.I != -128 {
		t.Errorf("I8(128) = %d, want -128 (two's complement wrap)", v.I)
	}
	v = NewSigned(types.I8, -129)
	if v.I != 127 {
		t.Errorf("I8(-129) = %d, want 127", v.I)
	}
}

func TestArithmeticDivisionByZero(t *testing.T) {
	a := NewSigned(types.I32, 10)
	b := NewSigned(types.I32, 0)
	if _, ok := Arithmetic(Div, a, b); ok {
		t.Errorf("division by zero should report ok=false")
	}
	if _, ok := Arithmetic(Mod, a, b); ok {
		t.Errorf("modulo by zero should report ok=false")
	}
}

func TestArithmeticStringCharConcat(t *testing.T) {
	s := NewString("ab")
	c := NewChar('c')
	r, ok := Arithmetic(Add, s, c)
	if !ok || r.Str != "abc" {
		t.Errorf("\"ab\" + 'c' = %q, ok=%v, want \"abc\", ok=true", r.Str, ok)
	}
}

func TestArithmeticClosedOverPrimitive(t *testing.T) {
	// spec.md §8 universal invariant 6: result primitive equals the left
	// operand's primitive tag after conversion.
	a := NewUnsigned(types.U16, 40000)
	b := NewUnsigned(types.U16, 1)
	r, ok := Arithmetic(Add, a, b)
	if !ok || r.Prim != types.U16 {
		t.Errorf("result primitive = %v, want U16", r.Prim)
	}
}

func TestIncrementDecrementRoundTrip(t *testing.T) {
	v := NewSigned(types.I32, 41)
	inc := Increment(v)
	if inc.I != 42 {
		t.Errorf("Increment(41) = %d, want 42", inc.I)
	}
	dec := Decrement(inc)
	if dec.I != 41 {
		t.Errorf("Decrement(42) = %d, want 41", dec.I)
	}
}

func TestNegateAndBitwiseNot(t *testing.T) {
	if n := Negate(NewSigned(types.I32, 5)); n.I != -5 {
		t.Errorf("Negate(5) = %d, want -5", n.I)
	}
	if n := BitwiseNot(NewUnsigned(types.U8, 0)); n.U != 0xFF {
		t.Errorf("BitwiseNot(0) over u8 = %#x, want 0xff", n.U)
	}
}

func TestLengthOverStringCountsRunes(t *testing.T) {
	v := Length(NewString("héllo"))
	if v.U != 5 {
		t.Errorf("Length(\"héllo\") = %d, want 5 (rune count, not byte count)", v.U)
	}
}

// TestEqualRejectsMismatchedTags documents that Equal never converts across
// Signed/Unsigned: the binder only ever binds '==' between operands whose
// types.Compatible holds, which requires an identical Prim, so a
// Signed/Unsigned pair never reaches Equal at runtime. Equal itself stays
// strict rather than relying on that upstream guarantee.
func TestEqualRejectsMismatchedTags(t *testing.T) {
	a := NewSigned(types.I32, 5)
	b := NewUnsigned(types.U32, 5)
	if Equal(a, b) {
		t.Errorf("Equal(5i32, 5u32) = true, want false (tags differ)")
	}
}

func TestEqualSameTagSameValue(t *testing.T) {
	a := NewSigned(types.I32, 5)
	b := NewSigned(types.I32, 5)
	if !Equal(a, b) {
		t.Errorf("Equal(5i32, 5i32) = false, want true")
	}
}
