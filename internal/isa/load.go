package isa

func registerLoadGroup() {
	// LD r, r'
	addEntry("LD", &Entry{Operands: []Shape{{Kind: SReg}, {Kind: SReg}}, Length: 1,
		Encode: func(a []int64) []byte { return []byte{0x40 | b(a[0])<<3 | b(a[1])} }})
	// LD r, n
	addEntry("LD", &Entry{Operands: []Shape{{Kind: SReg}, {Kind: SInt8}}, Length: 2,
		Encode: regFieldImm8(0x06, 0, 1)})
	// LD r, (HL)
	addEntry("LD", &Entry{Operands: []Shape{{Kind: SReg}, {Kind: SIndHL}}, Length: 1,
		Encode: func(a []int64) []byte { return []byte{0x46 | b(a[0])<<3} }})
	// LD (HL), r
	addEntry("LD", &Entry{Operands: []Shape{{Kind: SIndHL}, {Kind: SReg}}, Length: 1,
		Encode: regField(0x70, 1)})
	// LD (HL), n
	addEntry("LD", &Entry{Operands: []Shape{{Kind: SIndHL}, {Kind: SInt8}}, Length: 2,
		Encode: func(a []int64) []byte { return []byte{0x36, b(a[1])} }})
	// LD A, (BC) / (DE); LD (BC)/(DE), A
	addEntry("LD", &Entry{Operands: []Shape{Lit("a"), {Kind: SIndBC}}, Length: 1, Fixed: []byte{0x0A}})
	addEntry("LD", &Entry{Operands: []Shape{Lit("a"), {Kind: SIndDE}}, Length: 1, Fixed: []byte{0x1A}})
	addEntry("LD", &Entry{Operands: []Shape{{Kind: SIndBC}, Lit("a")}, Length: 1, Fixed: []byte{0x02}})
	addEntry("LD", &Entry{Operands: []Shape{{Kind: SIndDE}, Lit("a")}, Length: 1, Fixed: []byte{0x12}})
	// LD A,(nn) / LD (nn),A
	addEntry("LD", &Entry{Operands: []Shape{Lit("a"), {Kind: SAddr}}, Length: 3,
		Encode: func(a []int64) []byte { lsb, msb := split16(a[1]); return []byte{0x3A, lsb, msb} }})
	addEntry("LD", &Entry{Operands: []Shape{{Kind: SAddr}, Lit("a")}, Length: 3,
		Encode: func(a []int64) []byte { lsb, msb := split16(a[0]); return []byte{0x32, lsb, msb} }})
	// LD HL,(nn) / LD (nn),HL -- tried before the general dd,(nn) form below
	addEntry("LD", &Entry{Operands: []Shape{Lit("hl"), {Kind: SAddr}}, Length: 3,
		Encode: func(a []int64) []byte { lsb, msb := split16(a[1]); return []byte{0x2A, lsb, msb} }})
	addEntry("LD", &Entry{Operands: []Shape{{Kind: SAddr}, Lit("hl")}, Length: 3,
		Encode: func(a []int64) []byte { lsb, msb := split16(a[0]); return []byte{0x22, lsb, msb} }})
	// LD dd, nn
	addEntry("LD", &Entry{Operands: []Shape{{Kind: SRegPair}, {Kind: SInt16}}, Length: 3,
		Encode: pairFieldImm16(0x01, 4, 0, 1)})
	// LD dd, (nn) / LD (nn), dd (BC/DE/SP -- HL handled above with the shorter form)
	addEntry("LD", &Entry{Operands: []Shape{{Kind: SRegPair}, {Kind: SAddr}}, Length: 4,
		Encode: func(a []int64) []byte {
			lsb, msb := split16(a[1])
			return []byte{0xED, 0x4B | b(a[0])<<4, lsb, msb}
		}})
	addEntry("LD", &Entry{Operands: []Shape{{Kind: SAddr}, {Kind: SRegPair}}, Length: 4,
		Encode: func(a []int64) []byte {
			lsb, msb := split16(a[0])
			return []byte{0xED, 0x43 | b(a[1])<<4, lsb, msb}
		}})
	// LD SP, HL / IX / IY
	addEntry("LD", &Entry{Operands: []Shape{Lit("sp"), Lit("hl")}, Length: 1, Fixed: []byte{0xF9}})
	addEntry("LD", &Entry{Operands: []Shape{Lit("sp"), {Kind: SIX}}, Length: 2, Fixed: []byte{0xDD, 0xF9}})
	addEntry("LD", &Entry{Operands: []Shape{Lit("sp"), {Kind: SIY}}, Length: 2, Fixed: []byte{0xFD, 0xF9}})
	// LD IX/IY, nn
	addEntry("LD", &Entry{Operands: []Shape{{Kind: SIX}, {Kind: SInt16}}, Length: 4,
		Encode: func(a []int64) []byte { lsb, msb := split16(a[1]); return []byte{0xDD, 0x21, lsb, msb} }})
	addEntry("LD", &Entry{Operands: []Shape{{Kind: SIY}, {Kind: SInt16}}, Length: 4,
		Encode: func(a []int64) []byte { lsb, msb := split16(a[1]); return []byte{0xFD, 0x21, lsb, msb} }})
	// LD IX/IY, (nn) and the reverse
	addEntry("LD", &Entry{Operands: []Shape{{Kind: SIX}, {Kind: SAddr}}, Length: 4,
		Encode: func(a []int64) []byte { lsb, msb := split16(a[1]); return []byte{0xDD, 0x2A, lsb, msb} }})
	addEntry("LD", &Entry{Operands: []Shape{{Kind: SAddr}, {Kind: SIX}}, Length: 4,
		Encode: func(a []int64) []byte { lsb, msb := split16(a[0]); return []byte{0xDD, 0x22, lsb, msb} }})
	addEntry("LD", &Entry{Operands: []Shape{{Kind: SIY}, {Kind: SAddr}}, Length: 4,
		Encode: func(a []int64) []byte { lsb, msb := split16(a[1]); return []byte{0xFD, 0x2A, lsb, msb} }})
	addEntry("LD", &Entry{Operands: []Shape{{Kind: SAddr}, {Kind: SIY}}, Length: 4,
		Encode: func(a []int64) []byte { lsb, msb := split16(a[0]); return []byte{0xFD, 0x22, lsb, msb} }})
	// LD r,(IX+d) / LD (IX+d),r / LD (IX+d),n
	addEntry("LD", &Entry{Operands: []Shape{{Kind: SReg}, {Kind: SIXD}}, Length: 3,
		Encode: func(a []int64) []byte { return []byte{0xDD, 0x46 | b(a[0])<<3, b(a[1])} }})
	addEntry("LD", &Entry{Operands: []Shape{{Kind: SIXD}, {Kind: SReg}}, Length: 3,
		Encode: func(a []int64) []byte { return []byte{0xDD, 0x70 | b(a[1]), b(a[0])} }})
	addEntry("LD", &Entry{Operands: []Shape{{Kind: SIXD}, {Kind: SInt8}}, Length: 4,
		Encode: func(a []int64) []byte { return []byte{0xDD, 0x36, b(a[0]), b(a[1])} }})
	// LD r,(IY+d) / LD (IY+d),r / LD (IY+d),n
	addEntry("LD", &Entry{Operands: []Shape{{Kind: SReg}, {Kind: SIYD}}, Length: 3,
		Encode: func(a []int64) []byte { return []byte{0xFD, 0x46 | b(a[0])<<3, b(a[1])} }})
	addEntry("LD", &Entry{Operands: []Shape{{Kind: SIYD}, {Kind: SReg}}, Length: 3,
		Encode: func(a []int64) []byte { return []byte{0xFD, 0x70 | b(a[1]), b(a[0])} }})
	addEntry("LD", &Entry{Operands: []Shape{{Kind: SIYD}, {Kind: SInt8}}, Length: 4,
		Encode: func(a []int64) []byte { return []byte{0xFD, 0x36, b(a[0]), b(a[1])} }})
	// LD A,I / LD A,R / LD I,A / LD R,A
	addEntry("LD", &Entry{Operands: []Shape{Lit("a"), Lit("i")}, Length: 2, Fixed: []byte{0xED, 0x57}})
	addEntry("LD", &Entry{Operands: []Shape{Lit("a"), Lit("r")}, Length: 2, Fixed: []byte{0xED, 0x5F}})
	addEntry("LD", &Entry{Operands: []Shape{Lit("i"), Lit("a")}, Length: 2, Fixed: []byte{0xED, 0x47}})
	addEntry("LD", &Entry{Operands: []Shape{Lit("r"), Lit("a")}, Length: 2, Fixed: []byte{0xED, 0x4F}})

	// PUSH / POP
	addEntry("PUSH", &Entry{Operands: []Shape{{Kind: SRegStack}}, Length: 1, Encode: pairField(0xC5, 4, 0)})
	addEntry("POP", &Entry{Operands: []Shape{{Kind: SRegStack}}, Length: 1, Encode: pairField(0xC1, 4, 0)})
	addEntry("PUSH", &Entry{Operands: []Shape{{Kind: SIX}}, Length: 2, Fixed: []byte{0xDD, 0xE5}})
	addEntry("POP", &Entry{Operands: []Shape{{Kind: SIX}}, Length: 2, Fixed: []byte{0xDD, 0xE1}})
	addEntry("PUSH", &Entry{Operands: []Shape{{Kind: SIY}}, Length: 2, Fixed: []byte{0xFD, 0xE5}})
	addEntry("POP", &Entry{Operands: []Shape{{Kind: SIY}}, Length: 2, Fixed: []byte{0xFD, 0xE1}})

	// EX / EXX
	addEntry("EX", &Entry{Operands: []Shape{Lit("de"), Lit("hl")}, Length: 1, Fixed: []byte{0xEB}})
	addEntry("EX", &Entry{Operands: []Shape{Lit("af"), Lit("af'")}, Length: 1, Fixed: []byte{0x08}})
	addEntry("EX", &Entry{Operands: []Shape{{Kind: SIndSP}, Lit("hl")}, Length: 1, Fixed: []byte{0xE3}})
	addEntry("EX", &Entry{Operands: []Shape{{Kind: SIndSP}, {Kind: SIX}}, Length: 2, Fixed: []byte{0xDD, 0xE3}})
	addEntry("EX", &Entry{Operands: []Shape{{Kind: SIndSP}, {Kind: SIY}}, Length: 2, Fixed: []byte{0xFD, 0xE3}})
	addEntry("EXX", &Entry{Operands: nil, Length: 1, Fixed: []byte{0xD9}})

	// Block transfer/compare
	addEntry("LDI", &Entry{Length: 2, Fixed: []byte{0xED, 0xA0}})
	addEntry("LDIR", &Entry{Length: 2, Fixed: []byte{0xED, 0xB0}})
	addEntry("LDD", &Entry{Length: 2, Fixed: []byte{0xED, 0xA8}})
	addEntry("LDDR", &Entry{Length: 2, Fixed: []byte{0xED, 0xB8}})
	addEntry("CPI", &Entry{Length: 2, Fixed: []byte{0xED, 0xA1}})
	addEntry("CPIR", &Entry{Length: 2, Fixed: []byte{0xED, 0xB1}})
	addEntry("CPD", &Entry{Length: 2, Fixed: []byte{0xED, 0xA9}})
	addEntry("CPDR", &Entry{Length: 2, Fixed: []byte{0xED, 0xB9}})
}
