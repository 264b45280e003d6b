// Package compile implements the compiler stage of spec.md §4.4: it
// invokes each instruction's table encoder on its resolved operand values,
// concatenates .db bytes, and asserts every encoder's output length matches
// its table entry's Length (the one user-invisible "internal" error kind
// spec.md §7 names); every emitted byte fits in 8 bits by its []byte type.
//
// Grounded on the teacher's encoder/encoder.go (walk statements in order,
// call the operand-shape-specific encode function, store the result on
// the instruction) -- generalized from ARM's fixed-width instructions to
// the Z80 table's per-Entry encoder closures.
package compile

import (
	"fmt"

	"github.com/lookbusy1344/z80asm/internal/ast"
	"github.com/lookbusy1344/z80asm/internal/diag"
	"github.com/lookbusy1344/z80asm/internal/isa"
)

// Compile fills Bytes on every Instruction and byte-producing Directive in
// prog, which must already have passed internal/layout. It returns a
// composite error on any internal-assertion failure.
func Compile(prog *ast.Program) error {
	errs := &diag.List{}

	for _, st := range prog.Statements {
		switch st.Kind {
		case ast.StmtInstruction:
			compileInstruction(st.Instruction, errs)
		case ast.StmtDirective:
			if st.Directive.Kind == ast.DirDb {
				compileDb(st.Directive, errs)
			}
		}
	}

	return errs.AsError()
}

func compileInstruction(inst *ast.Instruction, errs *diag.List) {
	entry, ok := inst.Entry.(*isa.Entry)
	if !ok {
		errs.Add(diag.NewError(inst.Pos, diag.KindInternal, "instruction missing resolved table entry"))
		return
	}

	var bytes []byte
	if entry.Encode == nil {
		bytes = entry.Fixed
	} else {
		args := make([]int64, len(inst.Operands))
		for i, op := range inst.Operands {
			args[i] = op.Value
		}
		bytes = entry.Encode(args)
	}

	if len(bytes) != inst.Length {
		errs.Add(diag.NewError(inst.Pos, diag.KindInternal,
			fmt.Sprintf("encoder for %s produced %d bytes, expected %d", inst.Mnemonic, len(bytes), inst.Length)))
		return
	}
	// spec.md §7's "encoder produced >8-bit byte" internal assertion is
	// structurally impossible here: Encode's return type is []byte, so
	// every element already fits in 8 bits by construction.
	inst.Bytes = bytes
}

// compileDb concatenates .db operand bytes: chars -> their code point,
// strings -> their bytes, ints -> as-is (spec.md §4.4).
func compileDb(d *ast.Directive, errs *diag.List) {
	var out []byte
	for _, op := range d.Operands {
		switch op.Kind {
		case ast.String:
			out = append(out, []byte(op.Name)...)
		case ast.Char:
			out = append(out, byte(op.Value&0xFF))
		default: // Int8
			out = append(out, byte(op.Value&0xFF))
		}
	}
	if len(out) != d.Length {
		errs.Add(diag.NewError(d.Pos, diag.KindInternal,
			fmt.Sprintf(".db produced %d bytes, expected %d", len(out), d.Length)))
		return
	}
	d.Bytes = out
}
