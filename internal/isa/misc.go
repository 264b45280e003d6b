package isa

// registerMiscGroup wires the remaining no-operand and single-literal-
// operand control instructions.
func registerMiscGroup() {
	addEntry("NOP", fixed1(0x00))
	addEntry("HALT", fixed1(0x76))
	addEntry("DI", fixed1(0xF3))
	addEntry("EI", fixed1(0xFB))

	// IM's operand is parsed via SIMMode, which only accepts 0/1/2 (spec.md
	// §6 "IM (0|1|2)"); an invalid mode is a parse error, not silently
	// folded into IM 2 here.
	addEntry("IM", &Entry{Operands: []Shape{{Kind: SIMMode}}, Length: 2,
		Encode: func(a []int64) []byte {
			switch a[0] {
			case 0:
				return []byte{0xED, 0x46}
			case 1:
				return []byte{0xED, 0x56}
			default: // 2
				return []byte{0xED, 0x5E}
			}
		}})
}
