package binder

import (
	"github.com/fosspointer/go-linc/internal/ast"
	"github.com/fosspointer/go-linc/internal/boundtree"
	"github.com/fosspointer/go-linc/internal/source"
	"github.com/fosspointer/go-linc/internal/types"
)

// bindMatch types the whole match expression as the unified type of all
// arm bodies, permissively collapsing to Void on mismatch rather than a
// stricter all-arms-equal rule (see DESIGN.md).
func (b *Binder) bindMatch(e *ast.MatchExpression) boundtree.Expression {
	value := b.bindExpression(e.Value)
	enumType := value.Type()
	if enumType.Kind != types.VariantEnumeration && !enumType.IsInvalid() {
		b.errorf(e.Value.Span(), "match value must be an enumeration, got %s", enumType)
	}

	var arms []boundtree.MatchArm
	var unified *types.Type
	mismatched := false

	for _, arm := range e.Arms {
		idx, payloadType := b.resolveEnumVariant(enumType, arm.VariantName, arm.SourceSpan)

		b.pushScope()
		if arm.BindName != "" && payloadType != nil {
			b.declare(arm.BindName, &boundtree.Symbol{Name: arm.BindName, Kind: boundtree.SymVariable, Ty: payloadType}, arm.SourceSpan)
		}
		body := b.bindExpression(arm.Body)
		b.popScope()

		if unified == nil {
			unified = body.Type()
		} else if !types.Equal(unified, body.Type()) {
			mismatched = true
		}

		arms = append(arms, boundtree.MatchArm{VariantIndex: idx, BindName: arm.BindName, Body: body})
	}

	resultType := unified
	if resultType == nil || mismatched {
		resultType = types.NewPrimitive(types.Void)
	}

	return &boundtree.MatchExpression{Value: value, EnumType: enumType, Arms: arms, Ty: resultType, SourceSpan: e.SourceSpan}
}

func (b *Binder) resolveEnumVariant(enumType *types.Type, name string, span source.Span) (int, *types.Type) {
	if enumType.Kind != types.VariantEnumeration {
		return -1, nil
	}
	for i, v := range enumType.Variants {
		if v.Name == name {
			return i, v.Payload
		}
	}
	b.errorf(span, "enumeration %s has no variant %q", enumType, name)
	return -1, nil
}
