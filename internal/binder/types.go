package binder

import (
	"github.com/fosspointer/go-linc/internal/ast"
	"github.com/fosspointer/go-linc/internal/types"
)

var primitiveKeywords = map[string]types.Primitive{
	"void": types.Void, "bool": types.Bool, "char": types.Char,
	"u8": types.U8, "u16": types.U16, "u32": types.U32, "u64": types.U64,
	"i8": types.I8, "i16": types.I16, "i32": types.I32, "i64": types.I64,
	"f32": types.F32, "f64": types.F64, "string": types.String, "type": types.TypeKind,
}

// resolveType translates an ast.TypeExpression into a *types.Type,
// resolving primitive keywords, previously-hoisted structure/enumeration
// names, and array forms. Reports an "unknown type" error and returns
// Invalid for anything else.
func (b *Binder) resolveType(te ast.TypeExpression) *types.Type {
	if te.ArrayOf != nil {
		base := b.resolveType(*te.ArrayOf)
		t := types.NewArray(base, te.ArrayCount)
		t.Mutable = te.Mutable
		return t
	}

	if alias, ok := b.typeAliases[te.Name]; ok {
		c := *alias
		c.Mutable = te.Mutable
		return &c
	}

	if prim, ok := primitiveKeywords[te.Name]; ok {
		t := types.NewPrimitive(prim)
		t.Mutable = te.Mutable
		return t
	}

	if t, ok := b.structTypes[te.Name]; ok {
		c := *t
		c.Mutable = te.Mutable
		return &c
	}
	if t, ok := b.enumTypes[te.Name]; ok {
		c := *t
		c.Mutable = te.Mutable
		return &c
	}

	b.errorf(te.SourceSpan, "unknown type %q", te.Name)
	return b.invalidType()
}

// bindTypeDeclarations resolves every hoisted structure and enumeration
// declaration into its types.Type. Structures/enumerations may reference
// each other (but not themselves, recursively, since the value model is
// acyclic). Every structure name is first registered with an empty
// placeholder, so a field naming a structure that is resolved later in
// the pass resolves without an "unknown type" diagnostic; a second
// structure pass then replaces those placeholder copies.
func (b *Binder) bindTypeDeclarations() {
	for name := range b.structures {
		b.structTypes[name] = types.NewStructure(nil)
	}
	for name, decl := range b.structures {
		var fields []types.Field
		for _, f := range decl.Fields {
			fields = append(fields, types.Field{Name: f.Name, Type: b.resolveType(f.Type)})
		}
		b.structTypes[name] = types.NewStructure(fields)
	}
	// Re-resolve field types now every structure has its first-pass
	// fields, so a field naming another structure carries that
	// structure's fields instead of the empty placeholder.
	for name, decl := range b.structures {
		var fields []types.Field
		for _, f := range decl.Fields {
			fields = append(fields, types.Field{Name: f.Name, Type: b.resolveType(f.Type)})
		}
		b.structTypes[name] = types.NewStructure(fields)
	}

	for name, decl := range b.enumerations {
		var variants []types.Variant_
		for _, v := range decl.Variants {
			var payload *types.Type
			if v.Payload != nil {
				payload = b.resolveType(*v.Payload)
			}
			variants = append(variants, types.Variant_{Name: v.Name, Payload: payload})
		}
		b.enumTypes[name] = types.NewEnumeration(variants)
	}
}
