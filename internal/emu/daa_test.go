package emu

import "testing"

// newTestCPU builds a clean CPU over an empty memory image with no-op I/O.
// Each table row below mirrors a row original_source/tests/test_daa.py's
// exhaustive addition/subtraction sweep would produce: run the op then
// DAA, and check the accumulator and carry out.
func newTestCPU() *CPU {
	read, write := LoadImage(nil)
	return NewCPU(read, write, func(byte) byte { return 0 }, func(byte, byte) {})
}

func TestDAAAfterAdd(t *testing.T) {
	tests := []struct {
		a, b     byte
		wantA    byte
		wantCF   bool
	}{
		{0x00, 0x00, 0x00, false},
		{0x09, 0x01, 0x10, false}, // low nibble carry
		{0x05, 0x05, 0x10, false},
		{0x50, 0x50, 0x00, true}, // high nibble carry out
		{0x99, 0x01, 0x00, true},
		{0x15, 0x27, 0x42, false},
	}
	for _, tt := range tests {
		c := newTestCPU()
		c.A = tt.a
		c.A = c.addFlags(c.A, tt.b, 0)
		c.daa()
		if c.A != tt.wantA {
			t.Errorf("daa(add %#x+%#x): A = %#x, want %#x", tt.a, tt.b, c.A, tt.wantA)
		}
		if c.getFlag(FlagC) != tt.wantCF {
			t.Errorf("daa(add %#x+%#x): CF = %v, want %v", tt.a, tt.b, c.getFlag(FlagC), tt.wantCF)
		}
	}
}

func TestDAAAfterSub(t *testing.T) {
	tests := []struct {
		a, b   byte
		wantA  byte
		wantCF bool
	}{
		{0x10, 0x01, 0x09, false},
		{0x00, 0x01, 0x99, true},
		{0x42, 0x15, 0x27, false},
	}
	for _, tt := range tests {
		c := newTestCPU()
		c.A = tt.a
		c.A = c.subFlags(c.A, tt.b, 0)
		c.daa()
		if c.A != tt.wantA {
			t.Errorf("daa(sub %#x-%#x): A = %#x, want %#x", tt.a, tt.b, c.A, tt.wantA)
		}
		if c.getFlag(FlagC) != tt.wantCF {
			t.Errorf("daa(sub %#x-%#x): CF = %v, want %v", tt.a, tt.b, c.getFlag(FlagC), tt.wantCF)
		}
	}
}

func TestUndocumentedFlagsCopyResultBits(t *testing.T) {
	c := newTestCPU()
	c.setSZYXFromResult(0x28) // 0b00101000: bit5 and bit3 both set
	if !c.getFlag(FlagY) {
		t.Error("YF should copy result bit 5")
	}
	if !c.getFlag(FlagX) {
		t.Error("XF should copy result bit 3")
	}
	c.setSZYXFromResult(0x00)
	if c.getFlag(FlagY) || c.getFlag(FlagX) {
		t.Error("YF/XF should be clear when result bits 5/3 are clear")
	}
}
