package listing_test

import (
	"strings"
	"testing"

	"github.com/lookbusy1344/z80asm/internal/compile"
	"github.com/lookbusy1344/z80asm/internal/layout"
	"github.com/lookbusy1344/z80asm/internal/listing"
	"github.com/lookbusy1344/z80asm/internal/parse"
)

func TestPrintReplaceNamesAndLabelText(t *testing.T) {
	src := ".org 0x0000\njp target\nnop\ntarget:\nhalt\n"
	p := parse.NewParser(src, "t.z80")
	pr, err := p.Parse()
	if err != nil {
		t.Fatal(err)
	}
	if err := layout.Layout(pr); err != nil {
		t.Fatal(err)
	}
	if err := compile.Compile(pr); err != nil {
		t.Fatal(err)
	}

	withName := listing.Print(pr, listing.Options{})
	if !strings.Contains(withName, "target") {
		t.Errorf("listing without replace_names should show the label name:\n%s", withName)
	}

	replaced := listing.Print(pr, listing.Options{ReplaceNames: true})
	if strings.Contains(replaced, "jp target") {
		t.Errorf("listing with replace_names should not show the identifier:\n%s", replaced)
	}
	if !strings.Contains(replaced, "0x0004") {
		t.Errorf("listing with replace_names should show the resolved address:\n%s", replaced)
	}
}

func TestPrintInterpretLiterals(t *testing.T) {
	src := ".db \"hi\", 'X'\n"
	p := parse.NewParser(src, "t.z80")
	pr, err := p.Parse()
	if err != nil {
		t.Fatal(err)
	}
	if err := layout.Layout(pr); err != nil {
		t.Fatal(err)
	}
	if err := compile.Compile(pr); err != nil {
		t.Fatal(err)
	}

	quoted := listing.Print(pr, listing.Options{})
	if !strings.Contains(quoted, `"hi"`) || !strings.Contains(quoted, "'X'") {
		t.Errorf("default listing should quote literals:\n%s", quoted)
	}

	hexed := listing.Print(pr, listing.Options{InterpretLiterals: true})
	if !strings.Contains(hexed, "68 69") || !strings.Contains(hexed, "58") {
		t.Errorf("interpret_literals listing should show hex bytes:\n%s", hexed)
	}
}

func TestPrintIndexedDisplacementSign(t *testing.T) {
	src := "ld a, (ix+5)\nld b, (iy-3)\n"
	p := parse.NewParser(src, "t.z80")
	pr, err := p.Parse()
	if err != nil {
		t.Fatal(err)
	}
	if err := layout.Layout(pr); err != nil {
		t.Fatal(err)
	}
	if err := compile.Compile(pr); err != nil {
		t.Fatal(err)
	}
	out := listing.Print(pr, listing.Options{})
	if !strings.Contains(out, "(ix+0x05)") {
		t.Errorf("expected a positive ix displacement rendering:\n%s", out)
	}
	if !strings.Contains(out, "(iy-0x03)") {
		t.Errorf("expected a negative iy displacement rendering:\n%s", out)
	}
}

func TestPrintIndirectRegisterOperandsAreParenthesized(t *testing.T) {
	// spec.md §8's round-trip invariant requires indirect-register operands
	// to print in a re-parseable form: "ld a,hl" (no parens) would not
	// re-parse as "ld a, (hl)".
	src := "ld a, (hl)\nld a, (bc)\nld a, (de)\nex (sp), hl\nin a, (c)\njp (ix)\njp (iy)\n"
	p := parse.NewParser(src, "t.z80")
	pr, err := p.Parse()
	if err != nil {
		t.Fatal(err)
	}
	if err := layout.Layout(pr); err != nil {
		t.Fatal(err)
	}
	if err := compile.Compile(pr); err != nil {
		t.Fatal(err)
	}
	out := listing.Print(pr, listing.Options{})
	for _, want := range []string{"ld a,(hl)", "ld a,(bc)", "ld a,(de)", "ex (sp),hl", "in a,(c)", "jp (ix)", "jp (iy)"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in listing:\n%s", want, out)
		}
	}
}
