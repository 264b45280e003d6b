package isa

// shiftGroup wires one CB-prefixed rotate/shift mnemonic across its
// r / (HL) / (IX+d) / (IY+d) operand forms.
//
// spec.md §9 flags a known bug in one source revision: RR and RRC were
// both encoded from the same opcode base (0xCB, 0x08|r), which is wrong --
// the correct Z80 encoding for RR r is 0xCB, 0x18|r. That correct base
// (0x18) is what's registered for "RR" below; RRC keeps 0x08.
func shiftGroup(mnemonic string, base byte) {
	addEntry(mnemonic, &Entry{Operands: []Shape{{Kind: SReg}}, Length: 2, Encode: cbField(base, 0, 0, false)})
	addEntry(mnemonic, &Entry{Operands: []Shape{{Kind: SIndHL}}, Length: 2, Encode: cbField(base, 0, 0, false)})
	addEntry(mnemonic, &Entry{Operands: []Shape{{Kind: SIXD}}, Length: 4, Encode: ddCBField(0xDD, base, 0, 0, false)})
	addEntry(mnemonic, &Entry{Operands: []Shape{{Kind: SIYD}}, Length: 4, Encode: ddCBField(0xFD, base, 0, 0, false)})
}

// bitGroup wires BIT/SET/RES across b,r / b,(HL) / b,(IX+d) / b,(IY+d).
func bitGroup(mnemonic string, base byte) {
	addEntry(mnemonic, &Entry{Operands: []Shape{{Kind: SBit}, {Kind: SReg}}, Length: 2, Encode: cbField(base, 0, 1, true)})
	addEntry(mnemonic, &Entry{Operands: []Shape{{Kind: SBit}, {Kind: SIndHL}}, Length: 2, Encode: cbField(base, 0, 1, true)})
	addEntry(mnemonic, &Entry{Operands: []Shape{{Kind: SBit}, {Kind: SIXD}}, Length: 4, Encode: ddCBField(0xDD, base, 0, 1, true)})
	addEntry(mnemonic, &Entry{Operands: []Shape{{Kind: SBit}, {Kind: SIYD}}, Length: 4, Encode: ddCBField(0xFD, base, 0, 1, true)})
}

func registerRotateGroup() {
	addEntry("RLCA", fixed1(0x07))
	addEntry("RLA", fixed1(0x17))
	addEntry("RRCA", fixed1(0x0F))
	addEntry("RRA", fixed1(0x1F))

	shiftGroup("RLC", 0x00)
	shiftGroup("RRC", 0x08)
	shiftGroup("RL", 0x10)
	shiftGroup("RR", 0x18) // fixed per spec.md §9 (was clashing with RRC in the source)
	shiftGroup("SLA", 0x20)
	shiftGroup("SRA", 0x28)
	shiftGroup("SRL", 0x38)

	addEntry("RLD", &Entry{Length: 2, Fixed: []byte{0xED, 0x6F}})
	addEntry("RRD", &Entry{Length: 2, Fixed: []byte{0xED, 0x67}})

	bitGroup("BIT", 0x40)
	bitGroup("SET", 0xC0)
	bitGroup("RES", 0x80)
}
