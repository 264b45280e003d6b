// Package layout implements the two-pass layouter of spec.md §4.3: address
// assignment, label-address resolution against the "next emittable
// statement" rule, and label/constant/relative-jump reference resolution.
//
// Structurally this mirrors the teacher's parser/symboltable.go two-pass
// shape (define-then-resolve, forward references accumulated and resolved
// once the whole program is known), generalized from ARM's fixed 4-byte
// instruction length to the Z80 table's variable 1-4 byte lengths.
package layout

import (
	"fmt"

	"github.com/lookbusy1344/z80asm/internal/ast"
	"github.com/lookbusy1344/z80asm/internal/diag"
)

// Layout runs both passes over prog in place. It returns a composite error
// (via diag.List) if any statement fails; per spec.md §4.3, "on any errors,
// the layout pass as a whole fails" after accumulating everything it can.
func Layout(prog *ast.Program) error {
	errs := &diag.List{}

	pass1(prog, errs)
	if errs.HasErrors() {
		return errs.AsError()
	}

	pass15(prog)

	pass2(prog, errs)
	return errs.AsError()
}

// pass1 assigns addresses, walking statements in source order and
// maintaining a running 16-bit address counter.
func pass1(prog *ast.Program, errs *diag.List) {
	var cur uint16

	for _, st := range prog.Statements {
		switch st.Kind {
		case ast.StmtInstruction:
			st.Instruction.Addr = cur
			cur += uint16(st.Instruction.Length)

		case ast.StmtDirective:
			d := st.Directive
			switch d.Kind {
			case ast.DirOrg:
				n := uint16(d.Operands[0].Value)
				if n < cur {
					errs.Add(diag.NewError(d.Pos, diag.KindSyntax,
						fmt.Sprintf(".org 0x%04X moves behind current address 0x%04X", n, cur)))
					continue
				}
				d.Addr = n
				cur = n

			case ast.DirEqu:
				d.Addr = cur
				if _, exists := prog.Consts[d.Name]; exists {
					errs.Add(diag.NewError(d.Pos, diag.KindDuplicateConst,
						fmt.Sprintf("constant %q redefined", d.Name)))
					continue
				}
				prog.Consts[d.Name] = d.Operands[0].Value

			case ast.DirDb:
				d.Addr = cur
				d.Length = dbLength(d)
				cur += uint16(d.Length)
			}

		case ast.StmtLabel:
			// address filled in pass 1.5
		}
	}
}

func dbLength(d *ast.Directive) int {
	n := 0
	for _, op := range d.Operands {
		switch op.Kind {
		case ast.String:
			n += len(op.Name)
		default: // Char, Int8
			n++
		}
	}
	return n
}

// pass15 assigns each Label's address to the address of the next
// emittable statement (Instruction, or byte-producing Directive) following
// it in source order, per spec.md §4.3/§9's fixed rule -- not the
// previous-statement variant seen in one revision.
func pass15(prog *ast.Program) {
	endAddr := programEnd(prog)

	for i, st := range prog.Statements {
		if st.Kind != ast.StmtLabel {
			continue
		}
		addr := endAddr
	scan:
		for j := i + 1; j < len(prog.Statements); j++ {
			next := prog.Statements[j]
			switch next.Kind {
			case ast.StmtInstruction:
				addr = next.Instruction.Addr
			case ast.StmtDirective:
				addr = next.Directive.Addr
			default:
				continue
			}
			break scan
		}
		st.Label.Addr = addr
		prog.Labels[st.Label.Name] = addr
	}
}

func programEnd(prog *ast.Program) uint16 {
	var end uint16
	for _, st := range prog.Statements {
		switch st.Kind {
		case ast.StmtInstruction:
			end = st.Instruction.Addr + uint16(st.Instruction.Length)
		case ast.StmtDirective:
			end = st.Directive.Addr + uint16(st.Directive.Length)
		}
	}
	return end
}

// pass2 resolves AbsLabel/RelLabel/ConstRef operand references to numeric
// values, per spec.md §4.3.
func pass2(prog *ast.Program, errs *diag.List) {
	for _, st := range prog.Statements {
		if st.Kind != ast.StmtInstruction {
			continue
		}
		inst := st.Instruction
		for _, op := range inst.Operands {
			switch op.Kind {
			case ast.AbsLabel:
				resolveAbs(prog, op, errs)
			case ast.RelLabel:
				resolveRel(prog, inst, op, errs)
			case ast.ConstRef:
				resolveConst(prog, op, errs)
			}
		}
	}
}

func resolveAbs(prog *ast.Program, op *ast.Operand, errs *diag.List) {
	if op.Name == "" {
		op.Resolved = true
		return // already a numeric literal, parsed directly
	}
	addr, ok := prog.Labels[op.Name]
	if !ok {
		errs.Add(diag.NewError(op.Pos, diag.KindUndefinedLabel, fmt.Sprintf("undefined label %q", op.Name)))
		return
	}
	op.Value = int64(addr)
	op.Resolved = true
}

// resolveRel computes the JR/DJNZ displacement per spec.md §4.3: d = T-A,
// range-checked to [-126, 129] (the hardware signed-byte range [-128, 127]
// shifted by the 2 bytes the encoder subtracts back out at emission time).
// d = T-A lands exactly on those bounds and satisfies spec.md §8's
// invariant ("the emitted displacement byte equals (T-A-2+256) mod 256")
// for both forward and backward targets; an earlier revision of this
// function additionally incremented d by 1 whenever d > 0; that
// asymmetric adjustment produced an off-by-one encoded byte for every
// forward relative jump and is not applied here (see DESIGN.md).
func resolveRel(prog *ast.Program, inst *ast.Instruction, op *ast.Operand, errs *diag.List) {
	var target int64
	if op.Name == "" {
		target = op.Value
	} else {
		addr, ok := prog.Labels[op.Name]
		if !ok {
			errs.Add(diag.NewError(op.Pos, diag.KindUndefinedLabel, fmt.Sprintf("undefined label %q", op.Name)))
			return
		}
		target = int64(addr)
	}

	d := target - int64(inst.Addr)
	if d < -126 || d > 129 {
		errs.Add(diag.NewError(op.Pos, diag.KindOutOfRange,
			fmt.Sprintf("label %q outside relative jump range (d=%d)", op.Name, d)))
		return
	}
	op.Value = d
	op.Resolved = true
}

func resolveConst(prog *ast.Program, op *ast.Operand, errs *diag.List) {
	if op.Name == "" {
		op.Resolved = true
		return
	}
	v, ok := prog.Consts[op.Name]
	if !ok {
		errs.Add(diag.NewError(op.Pos, diag.KindUndefinedConst, fmt.Sprintf("undefined constant %q", op.Name)))
		return
	}
	op.Value = v
	op.Resolved = true
}
