package isa

// registerBranchGroup wires JP/JR/DJNZ/CALL/RET/RST and the two ED-prefixed
// interrupt returns.
func registerBranchGroup() {
	// JP nn / JP cc,nn
	addEntry("JP", &Entry{Operands: []Shape{{Kind: SFlag}, {Kind: SAbs}}, Length: 3,
		Encode: func(a []int64) []byte { lsb, msb := split16(a[1]); return []byte{0xC2 | b(a[0])<<3, lsb, msb} }})
	addEntry("JP", &Entry{Operands: []Shape{{Kind: SAbs}}, Length: 3,
		Encode: func(a []int64) []byte { lsb, msb := split16(a[0]); return []byte{0xC3, lsb, msb} }})
	addEntry("JP", &Entry{Operands: []Shape{{Kind: SIndHL}}, Length: 1, Fixed: []byte{0xE9}})
	addEntry("JP", &Entry{Operands: []Shape{{Kind: SIndIX}}, Length: 2, Fixed: []byte{0xDD, 0xE9}})
	addEntry("JP", &Entry{Operands: []Shape{{Kind: SIndIY}}, Length: 2, Fixed: []byte{0xFD, 0xE9}})

	// JR e / JR cc,e -- the operand's Value arrives as d = T-A from the
	// layouter (internal/layout's resolveRel); the encoder subtracts the
	// instruction's own length (2) to land on the hardware-correct byte.
	addEntry("JR", &Entry{Operands: []Shape{{Kind: SJFlag}, {Kind: SRel}}, Length: 2,
		Encode: func(a []int64) []byte { return []byte{0x20 | b(a[0])<<3, b(a[1] - 2)} }})
	addEntry("JR", &Entry{Operands: []Shape{{Kind: SRel}}, Length: 2,
		Encode: func(a []int64) []byte { return []byte{0x18, b(a[0] - 2)} }})
	addEntry("DJNZ", &Entry{Operands: []Shape{{Kind: SRel}}, Length: 2,
		Encode: func(a []int64) []byte { return []byte{0x10, b(a[0] - 2)} }})

	// CALL nn / CALL cc,nn
	addEntry("CALL", &Entry{Operands: []Shape{{Kind: SFlag}, {Kind: SAbs}}, Length: 3,
		Encode: func(a []int64) []byte { lsb, msb := split16(a[1]); return []byte{0xC4 | b(a[0])<<3, lsb, msb} }})
	addEntry("CALL", &Entry{Operands: []Shape{{Kind: SAbs}}, Length: 3,
		Encode: func(a []int64) []byte { lsb, msb := split16(a[0]); return []byte{0xCD, lsb, msb} }})

	// RET / RET cc / RETI / RETN
	addEntry("RET", &Entry{Operands: []Shape{{Kind: SFlag}}, Length: 1,
		Encode: func(a []int64) []byte { return []byte{0xC0 | b(a[0])<<3} }})
	addEntry("RET", &Entry{Length: 1, Fixed: []byte{0xC9}})
	addEntry("RETI", &Entry{Length: 2, Fixed: []byte{0xED, 0x4D}})
	addEntry("RETN", &Entry{Length: 2, Fixed: []byte{0xED, 0x45}})

	// RST t -- t is one of the eight page-0 targets (multiples of 8); 0xC7
	// has bits 3-5 clear and t has only those bits set, so ORing the target
	// in directly is equivalent to shifting (t/8) into bits 3-5.
	addEntry("RST", &Entry{Operands: []Shape{{Kind: SMem}}, Length: 1,
		Encode: func(a []int64) []byte { return []byte{0xC7 | b(a[0])} }})
}
