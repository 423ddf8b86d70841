package binder

import "github.com/fosspointer/go-linc/internal/types"

// internalSignature resolves the fixed vocabulary of runtime-provided
// external calls: console I/O, process control, and thin POSIX
// syscalls. User-declared `ext` functions are checked against the
// same arity/type rules but looked up separately in b.externals.
func internalSignature(name string) (ret *types.Type, args []*types.Type, ok bool) {
	str := types.NewPrimitive(types.String)
	ch := types.NewPrimitive(types.Char)
	i32 := types.NewPrimitive(types.I32)
	u64 := types.NewPrimitive(types.U64)
	void := types.NewPrimitive(types.Void)

	switch name {
	case "puts", "putln":
		return void, []*types.Type{str}, true
	case "putc":
		return void, []*types.Type{ch}, true
	case "readc":
		return ch, nil, true
	case "readln":
		return str, []*types.Type{str}, true
	case "readraw":
		return str, nil, true
	case "system":
		return i32, []*types.Type{str}, true
	case "sys_read":
		return i32, []*types.Type{i32, u64}, true
	case "sys_write":
		return i32, []*types.Type{i32, str}, true
	case "sys_open":
		return i32, []*types.Type{str, i32}, true
	case "sys_close":
		return i32, []*types.Type{i32}, true
	case "sys_exit":
		return void, []*types.Type{i32}, true
	default:
		return nil, nil, false
	}
}
