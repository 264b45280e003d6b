package parse_test

import (
	"strings"
	"testing"

	"github.com/lookbusy1344/z80asm/internal/ast"
	"github.com/lookbusy1344/z80asm/internal/parse"
)

func parseOK(t *testing.T, src string) *ast.Program {
	t.Helper()
	p := parse.NewParser(src, "test.z80")
	prog, err := p.Parse()
	if err != nil {
		t.Fatalf("unexpected parse error for %q: %v", src, err)
	}
	return prog
}

func TestParseLabelAndInstruction(t *testing.T) {
	prog := parseOK(t, "start: ld a, b\n")
	if len(prog.Statements) != 2 {
		t.Fatalf("got %d statements, want 2 (label, instruction)", len(prog.Statements))
	}
	if prog.Statements[0].Kind != ast.StmtLabel || prog.Statements[0].Label.Name != "start" {
		t.Errorf("first statement = %+v, want label %q", prog.Statements[0], "start")
	}
	inst := prog.Statements[1].Instruction
	if inst.Mnemonic != "LD" || len(inst.Operands) != 2 {
		t.Fatalf("instruction = %+v", inst)
	}
}

func TestParseCaseInsensitiveMnemonicAndRegisters(t *testing.T) {
	prog := parseOK(t, "LD A, B\n")
	inst := prog.Statements[0].Instruction
	if inst.Mnemonic != "LD" {
		t.Errorf("mnemonic = %q, want LD", inst.Mnemonic)
	}
}

func TestParseLabelIsCaseSensitive(t *testing.T) {
	prog := parseOK(t, "Start:\njp Start\n")
	if prog.Statements[1].Instruction.Operands[0].Name != "Start" {
		t.Errorf("label reference lost its case: %+v", prog.Statements[1].Instruction.Operands[0])
	}
}

func TestParseDirectives(t *testing.T) {
	prog := parseOK(t, ".org 0x8000\n.equ retries, 3\n.db \"AB\", 0x01, 'C'\n")
	if len(prog.Statements) != 3 {
		t.Fatalf("got %d statements, want 3", len(prog.Statements))
	}
	if prog.Statements[0].Directive.Kind != ast.DirOrg {
		t.Error("first directive should be .org")
	}
	if prog.Statements[1].Directive.Kind != ast.DirEqu || prog.Statements[1].Directive.Name != "retries" {
		t.Error("second directive should be .equ retries")
	}
	db := prog.Statements[2].Directive
	if db.Kind != ast.DirDb || len(db.Operands) != 3 {
		t.Fatalf(".db operands = %+v", db.Operands)
	}
}

func TestParseAlternativeSelection(t *testing.T) {
	// LD A,n and LD A,(HL) share a mnemonic but different operand shapes;
	// the parser must try each table alternative and commit the first match.
	prog := parseOK(t, "ld a, 0x10\nld a, (hl)\nld a, (ix+5)\n")
	if len(prog.Statements) != 3 {
		t.Fatalf("got %d statements, want 3", len(prog.Statements))
	}
	if prog.Statements[0].Instruction.Operands[1].Kind != ast.Int8 {
		t.Error("first LD A, should resolve the immediate-8 alternative")
	}
	if prog.Statements[1].Instruction.Operands[1].Kind != ast.IndHL {
		t.Error("second LD A, should resolve the (HL) alternative")
	}
	if prog.Statements[2].Instruction.Operands[1].Kind != ast.IXDAddr {
		t.Error("third LD A, should resolve the (IX+d) alternative")
	}
}

func TestParseUnknownMnemonicIsAnError(t *testing.T) {
	p := parse.NewParser("foo a, b\n", "test.z80")
	_, err := p.Parse()
	if err == nil {
		t.Fatal("expected an error for an unknown mnemonic")
	}
}

func TestParseFarthestFailureReportsLastExpectation(t *testing.T) {
	// "ld a," has a comma but no second operand: every LD A,* alternative
	// fails at the same farthest column, so the error should point there
	// rather than at the start of the line.
	p := parse.NewParser("ld a,\n", "test.z80")
	_, err := p.Parse()
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "expected") {
		t.Errorf("error = %q, want an 'expected ...' farthest-failure message", err.Error())
	}
}

func TestParseAccumulatesErrorsAcrossLines(t *testing.T) {
	p := parse.NewParser("foo\nbar\n", "test.z80")
	_, err := p.Parse()
	if err == nil {
		t.Fatal("expected errors")
	}
	list := p.Errors()
	if len(list.Errors) != 2 {
		t.Errorf("got %d errors, want 2 (one per bad line)", len(list.Errors))
	}
}

func TestParseIntegerLiteralBases(t *testing.T) {
	prog := parseOK(t, "ld a, 0x10\nld a, 0b1010\nld a, 0o17\nld a, 16\n")
	want := []int64{0x10, 0b1010, 0o17, 16}
	for i, w := range want {
		v := prog.Statements[i].Instruction.Operands[1].Value
		if v != w {
			t.Errorf("statement %d: literal = %d, want %d", i, v, w)
		}
	}
}

func TestParseInt8OutOfRangeIsAnError(t *testing.T) {
	p := parse.NewParser("ld a, 256\n", "test.z80")
	_, err := p.Parse()
	if err == nil {
		t.Fatal("expected an out-of-range error for 256 in an 8-bit operand")
	}
}

func TestParseCommentsAndBlankLinesIgnored(t *testing.T) {
	prog := parseOK(t, "; a comment\n\nld a, b ; trailing comment\n")
	if len(prog.Statements) != 1 {
		t.Fatalf("got %d statements, want 1", len(prog.Statements))
	}
}

func TestParseUnexpectedTrailingTextIsAnError(t *testing.T) {
	p := parse.NewParser("ld a, b c\n", "test.z80")
	_, err := p.Parse()
	if err == nil {
		t.Fatal("expected an 'unexpected text' error after a complete instruction")
	}
}
