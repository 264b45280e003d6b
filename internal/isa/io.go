package isa

// registerIOGroup wires IN/OUT and the eight ED-prefixed block I/O
// instructions.
func registerIOGroup() {
	// IN A,(n) / OUT (n),A
	addEntry("IN", &Entry{Operands: []Shape{Lit("a"), {Kind: SIOImm}}, Length: 2,
		Encode: func(a []int64) []byte { return []byte{0xDB, b(a[1])} }})
	addEntry("OUT", &Entry{Operands: []Shape{{Kind: SIOImm}, Lit("a")}, Length: 2,
		Encode: func(a []int64) []byte { return []byte{0xD3, b(a[0])} }})

	// IN r,(C) / OUT (C),r
	addEntry("IN", &Entry{Operands: []Shape{{Kind: SReg}, {Kind: SIOC}}, Length: 2,
		Encode: func(a []int64) []byte { return []byte{0xED, 0x40 | b(a[0])<<3} }})
	addEntry("OUT", &Entry{Operands: []Shape{{Kind: SIOC}, {Kind: SReg}}, Length: 2,
		Encode: func(a []int64) []byte { return []byte{0xED, 0x41 | b(a[1])<<3} }})

	addEntry("INI", &Entry{Length: 2, Fixed: []byte{0xED, 0xA2}})
	addEntry("INIR", &Entry{Length: 2, Fixed: []byte{0xED, 0xB2}})
	addEntry("IND", &Entry{Length: 2, Fixed: []byte{0xED, 0xAA}})
	addEntry("INDR", &Entry{Length: 2, Fixed: []byte{0xED, 0xBA}})
	addEntry("OUTI", &Entry{Length: 2, Fixed: []byte{0xED, 0xA3}})
	addEntry("OTIR", &Entry{Length: 2, Fixed: []byte{0xED, 0xB3}})
	addEntry("OUTD", &Entry{Length: 2, Fixed: []byte{0xED, 0xAB}})
	addEntry("OTDR", &Entry{Length: 2, Fixed: []byte{0xED, 0xBB}})
}
