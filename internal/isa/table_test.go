package isa

import "testing"

// TestTableEncodersMatchLength exercises every table entry's encoder (or
// fixed bytes) with zeroed arguments and checks the declared Length is
// honored, the one invariant internal/compile relies on unconditionally.
func TestTableEncodersMatchLength(t *testing.T) {
	for mnemonic, entries := range Table {
		for i, e := range entries {
			args := make([]int64, len(e.Operands))
			var out []byte
			if e.Encode != nil {
				out = e.Encode(args)
			} else {
				out = e.Fixed
			}
			if len(out) != e.Length {
				t.Errorf("%s entry %d: encoded %d bytes, Length says %d", mnemonic, i, len(out), e.Length)
			}
			for _, by := range out {
				if by > 0xFF {
					t.Errorf("%s entry %d: byte %d exceeds 8 bits", mnemonic, i, by)
				}
			}
		}
	}
}

func TestRRBugfix(t *testing.T) {
	entries := Table["RR"]
	if len(entries) == 0 {
		t.Fatal("RR not registered")
	}
	for _, e := range entries {
		if len(e.Operands) != 1 || e.Operands[0].Kind != SReg {
			continue
		}
		out := e.Encode([]int64{0}) // RR B
		if out[0] != 0xCB || out[1] != 0x18 {
			t.Errorf("RR B = % X, want CB 18", out)
		}
	}
}

func TestSubImmediateBugfix(t *testing.T) {
	entries := Table["SUB"]
	for _, e := range entries {
		if len(e.Operands) != 1 || e.Operands[0].Kind != SInt8 {
			continue
		}
		out := e.Encode([]int64{0x10})
		if out[0] != 0xD6 || out[1] != 0x10 {
			t.Errorf("SUB n = % X, want D6 10", out)
		}
	}
}

func TestRegisterLookups(t *testing.T) {
	if v, ok := Reg8Code("a"); !ok || v != 7 {
		t.Errorf("Reg8Code(a) = %d,%v want 7,true", v, ok)
	}
	if _, ok := Reg8Code("zz"); ok {
		t.Error("Reg8Code(zz) should not resolve")
	}
	if v, ok := RegPairCode("hl"); !ok || v != 2 {
		t.Errorf("RegPairCode(hl) = %d,%v want 2,true", v, ok)
	}
}
