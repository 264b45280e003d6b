package isa

// aluGroup wires the eight accumulator ALU ops (ADD A,/ADC A,/SUB/SBC A,/
// AND/OR/XOR/CP) that all share the r/n/(HL)/(IX+d)/(IY+d) operand shape
// and differ only in base opcode and whether the "a," prefix is written.
func aluGroup(mnemonic string, base byte, withA bool) {
	var aPrefix []Shape
	regIdx, immIdx := 0, 0
	if withA {
		aPrefix = []Shape{Lit("a")}
		regIdx, immIdx = 1, 1
	}

	addEntry(mnemonic, &Entry{Operands: append(append([]Shape{}, aPrefix...), Shape{Kind: SReg}), Length: 1,
		Encode: regField(base, regIdx)})
	addEntry(mnemonic, &Entry{Operands: append(append([]Shape{}, aPrefix...), Shape{Kind: SInt8}), Length: 2,
		Encode: func(a []int64) []byte { return []byte{base + 0x46, b(a[immIdx])} }})
	addEntry(mnemonic, &Entry{Operands: append(append([]Shape{}, aPrefix...), Shape{Kind: SIndHL}), Length: 1,
		Encode: regField(base, regIdx)})
	addEntry(mnemonic, &Entry{Operands: append(append([]Shape{}, aPrefix...), Shape{Kind: SIXD}), Length: 3,
		Encode: func(a []int64) []byte { return []byte{0xDD, base | 6, b(a[len(a)-1])} }})
	addEntry(mnemonic, &Entry{Operands: append(append([]Shape{}, aPrefix...), Shape{Kind: SIYD}), Length: 3,
		Encode: func(a []int64) []byte { return []byte{0xFD, base | 6, b(a[len(a)-1])} }})
}

func registerArithGroup() {
	// ADD A,r etc. -- base 0x80 for reg/ (HL)/(IX+d)/(IY+d); the immediate
	// form's opcode is base+0x46 (0x80+0x46=0xC6).
	aluGroup("ADD", 0x80, true)
	aluGroup("ADC", 0x88, true)
	aluGroup("SUB", 0x90, false)
	aluGroup("SBC", 0x98, true)
	aluGroup("AND", 0xA0, false)
	aluGroup("XOR", 0xA8, false)
	aluGroup("OR", 0xB0, false)
	aluGroup("CP", 0xB8, false)

	// ADD HL,ss / ADC HL,ss / SBC HL,ss
	addEntry("ADD", &Entry{Operands: []Shape{Lit("hl"), {Kind: SRegPair}}, Length: 1, Encode: pairField(0x09, 4, 1)})
	addEntry("ADC", &Entry{Operands: []Shape{Lit("hl"), {Kind: SRegPair}}, Length: 2,
		Encode: func(a []int64) []byte { return []byte{0xED, 0x4A | b(a[1])<<4} }})
	addEntry("SBC", &Entry{Operands: []Shape{Lit("hl"), {Kind: SRegPair}}, Length: 2,
		Encode: func(a []int64) []byte { return []byte{0xED, 0x42 | b(a[1])<<4} }})

	// ADD IX,pp / ADD IY,rr -- enumerated explicitly since the third operand
	// of the pair is the index register itself, not a plain RegPair value.
	ixAdds := []struct {
		name string
		lo   byte
	}{{"bc", 0x09}, {"de", 0x19}, {"ix", 0x29}, {"sp", 0x39}}
	for _, e := range ixAdds {
		addEntry("ADD", &Entry{Operands: []Shape{{Kind: SIX}, Lit(e.name)}, Length: 2, Fixed: []byte{0xDD, e.lo}})
	}
	iyAdds := []struct {
		name string
		lo   byte
	}{{"bc", 0x09}, {"de", 0x19}, {"iy", 0x29}, {"sp", 0x39}}
	for _, e := range iyAdds {
		addEntry("ADD", &Entry{Operands: []Shape{{Kind: SIY}, Lit(e.name)}, Length: 2, Fixed: []byte{0xFD, e.lo}})
	}

	// INC / DEC
	addEntry("INC", &Entry{Operands: []Shape{{Kind: SReg}}, Length: 1, Encode: pairField(0x04, 3, 0)})
	addEntry("INC", &Entry{Operands: []Shape{{Kind: SIndHL}}, Length: 1, Fixed: []byte{0x34}})
	addEntry("INC", &Entry{Operands: []Shape{{Kind: SIXD}}, Length: 3,
		Encode: func(a []int64) []byte { return []byte{0xDD, 0x34, b(a[0])} }})
	addEntry("INC", &Entry{Operands: []Shape{{Kind: SIYD}}, Length: 3,
		Encode: func(a []int64) []byte { return []byte{0xFD, 0x34, b(a[0])} }})
	addEntry("INC", &Entry{Operands: []Shape{{Kind: SRegPair}}, Length: 1, Encode: pairField(0x03, 4, 0)})
	addEntry("INC", &Entry{Operands: []Shape{{Kind: SIX}}, Length: 2, Fixed: []byte{0xDD, 0x23}})
	addEntry("INC", &Entry{Operands: []Shape{{Kind: SIY}}, Length: 2, Fixed: []byte{0xFD, 0x23}})

	addEntry("DEC", &Entry{Operands: []Shape{{Kind: SReg}}, Length: 1, Encode: pairField(0x05, 3, 0)})
	addEntry("DEC", &Entry{Operands: []Shape{{Kind: SIndHL}}, Length: 1, Fixed: []byte{0x35}})
	addEntry("DEC", &Entry{Operands: []Shape{{Kind: SIXD}}, Length: 3,
		Encode: func(a []int64) []byte { return []byte{0xDD, 0x35, b(a[0])} }})
	addEntry("DEC", &Entry{Operands: []Shape{{Kind: SIYD}}, Length: 3,
		Encode: func(a []int64) []byte { return []byte{0xFD, 0x35, b(a[0])} }})
	addEntry("DEC", &Entry{Operands: []Shape{{Kind: SRegPair}}, Length: 1, Encode: pairField(0x0B, 4, 0)})
	addEntry("DEC", &Entry{Operands: []Shape{{Kind: SIX}}, Length: 2, Fixed: []byte{0xDD, 0x2B}})
	addEntry("DEC", &Entry{Operands: []Shape{{Kind: SIY}}, Length: 2, Fixed: []byte{0xFD, 0x2B}})

	addEntry("DAA", fixed1(0x27))
	addEntry("CPL", fixed1(0x2F))
	addEntry("NEG", &Entry{Length: 2, Fixed: []byte{0xED, 0x44}})
	addEntry("CCF", fixed1(0x3F))
	addEntry("SCF", fixed1(0x37))
}
