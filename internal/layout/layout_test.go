package layout_test

import (
	"testing"

	"github.com/lookbusy1344/z80asm/internal/ast"
	"github.com/lookbusy1344/z80asm/internal/layout"
	"github.com/lookbusy1344/z80asm/internal/parse"
)

func parseAndLayout(t *testing.T, src string) (*ast.Program, error) {
	t.Helper()
	p := parse.NewParser(src, "test.z80")
	prog, err := p.Parse()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return prog, layout.Layout(prog)
}

func TestLabelResolvesToNextEmittableStatement(t *testing.T) {
	// spec.md §4.3 pass 1.5: a label's address is the *next* emittable
	// statement following it in source order, not the previous one.
	prog, err := parseAndLayout(t, "jp target\nnop\ntarget:\nhalt\n")
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	if prog.Labels["target"] != 0x0004 {
		t.Errorf("target = %#x, want 0x0004", prog.Labels["target"])
	}
	jp := prog.Statements[0].Instruction
	if jp.Operands[0].Value != 0x0004 {
		t.Errorf("JP target resolved to %#x, want 0x0004", jp.Operands[0].Value)
	}
}

func TestOrgMovesCurrentAddress(t *testing.T) {
	prog, err := parseAndLayout(t, ".org 0x8000\nnop\n")
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	if prog.Statements[1].Instruction.Addr != 0x8000 {
		t.Errorf("instruction addr = %#x, want 0x8000", prog.Statements[1].Instruction.Addr)
	}
}

func TestOrgMovingBackwardIsAnError(t *testing.T) {
	_, err := parseAndLayout(t, ".org 0x8000\nnop\n.org 0x7000\n")
	if err == nil {
		t.Fatal("expected an error: .org moving behind the current address")
	}
}

func TestDuplicateEquIsAnError(t *testing.T) {
	_, err := parseAndLayout(t, ".equ x, 1\n.equ x, 2\n")
	if err == nil {
		t.Fatal("expected an error: duplicate .equ name")
	}
}

func TestUndefinedConstIsAnError(t *testing.T) {
	_, err := parseAndLayout(t, "ld a, nosuch\n")
	if err == nil {
		t.Fatal("expected an undefined-constant error")
	}
}

func TestRelativeJumpExtremesSucceed(t *testing.T) {
	// JR at the extreme endpoint -126 must succeed (spec.md §8).
	src := "back:\n"
	for i := 0; i < 126; i++ {
		src += "nop\n"
	}
	src += "jr back\n" // d = back(0) - here(126) = -126, the documented minimum
	prog, err := parseAndLayout(t, src)
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	jr := prog.Statements[len(prog.Statements)-1].Instruction
	if jr.Operands[0].Value < -126 || jr.Operands[0].Value > 129 {
		t.Errorf("displacement %d out of documented range", jr.Operands[0].Value)
	}
}

func TestRelativeJumpForwardDisplacementMatchesInvariant(t *testing.T) {
	// spec.md §8: "the emitted displacement byte equals (T-A-2+256) mod
	// 256" -- for a *forward* target this pins the fix in resolveRel
	// (see DESIGN.md) that dropped the old "d>0 => d+1" adjustment.
	src := "jr target\nnop\nnop\ntarget:\nhalt\n"
	prog, err := parseAndLayout(t, src)
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	jr := prog.Statements[0].Instruction
	want := int64(prog.Labels["target"]) - int64(jr.Addr)
	got := jr.Operands[0].Value
	if got != want {
		t.Errorf("stored displacement = %d, want %d (target=%#x addr=%#x)", got, want, prog.Labels["target"], jr.Addr)
	}
	// target is 2 bytes after the 2-byte jr instruction: addr 0 -> 4.
	if want != 4 {
		t.Fatalf("test setup: target-addr = %d, want 4", want)
	}
}

func TestRelativeJumpOutOfRangeFails(t *testing.T) {
	src := "jr faraway\n"
	for i := 0; i < 200; i++ {
		src += "nop\n"
	}
	src += "faraway:\nhalt\n"
	_, err := parseAndLayout(t, src)
	if err == nil {
		t.Fatal("expected an out-of-range relative jump error")
	}
}

func TestDbLengthCountsStringsCharsAndInts(t *testing.T) {
	prog, err := parseAndLayout(t, ".db \"AB\", 0x01, 'C'\nhalt\n")
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	db := prog.Statements[0].Directive
	if db.Length != 4 {
		t.Errorf("db length = %d, want 4", db.Length)
	}
	if prog.Statements[1].Instruction.Addr != 4 {
		t.Errorf("halt addr = %#x, want 4 (after the 4-byte .db)", prog.Statements[1].Instruction.Addr)
	}
}

func TestLayoutIsIdempotent(t *testing.T) {
	prog, err := parseAndLayout(t, ".org 0x0000\nstart:\nld a, 1\njp start\n")
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	addr1 := prog.Statements[2].Instruction.Addr
	val1 := prog.Statements[3].Instruction.Operands[0].Value

	if err := layout.Layout(prog); err != nil {
		t.Fatalf("second layout: %v", err)
	}
	if prog.Statements[2].Instruction.Addr != addr1 {
		t.Errorf("address changed across repeated layout: %#x vs %#x", prog.Statements[2].Instruction.Addr, addr1)
	}
	if prog.Statements[3].Instruction.Operands[0].Value != val1 {
		t.Errorf("resolved operand changed across repeated layout: %v vs %v",
			prog.Statements[3].Instruction.Operands[0].Value, val1)
	}
}
