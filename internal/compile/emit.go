package compile

import "github.com/lookbusy1344/z80asm/internal/ast"

// EmitBinary walks the compiled program in source order and produces the
// flat byte image spec.md §6 describes: the byte at offset A is the
// encoded byte at logical address A, with gaps introduced by .org
// zero-filled (never truncated), and no padding past the highest assigned
// address.
func EmitBinary(prog *ast.Program) []byte {
	var img []byte

	emit := func(addr uint16, bytes []byte) {
		end := int(addr) + len(bytes)
		if end > len(img) {
			grown := make([]byte, end)
			copy(grown, img)
			img = grown
		}
		copy(img[addr:], bytes)
	}

	for _, st := range prog.Statements {
		switch st.Kind {
		case ast.StmtInstruction:
			emit(st.Instruction.Addr, st.Instruction.Bytes)
		case ast.StmtDirective:
			if st.Directive.Kind == ast.DirDb {
				emit(st.Directive.Addr, st.Directive.Bytes)
			}
		}
	}

	return img
}
