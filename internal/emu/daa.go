package emu

// daa implements the DAA instruction. The correction and result-carry
// tables below are ported verbatim from original_source/tests/test_daa.py's
// Model.daa(), the authoritative reference this module is checked against;
// original_source/tools/compute_daa.py's coarser range table describes the
// same correction bytes but was not used directly since test_daa.py's
// Model is what the reference assembler's own test harness exercises.
func (c *CPU) daa() {
	a := c.A
	cf := c.getFlag(FlagC)
	hf := c.getFlag(FlagH)
	nf := c.getFlag(FlagN)
	hi := a >> 4
	lo := a & 0x0F

	corr, resCF := daaCorrection(cf, hf, hi, lo)
	resHF := daaHalfCarry(nf, hf, lo)

	if nf {
		corr = -corr
	}
	res := a + corr

	c.setSZYXFromResult(res)
	c.setFlag(FlagH, resHF)
	c.setFlag(FlagP, evenParity(res))
	c.setFlag(FlagC, resCF)
	c.A = res
}

func inRange(v, lo, hi byte) bool { return v >= lo && v <= hi }

// daaCorrection returns the correction byte to add (before N-flag negation)
// and the resulting carry flag, keyed by (CF, HF, high nibble, low nibble).
func daaCorrection(cf, hf bool, hi, lo byte) (corr byte, resCF bool) {
	switch {
	case !cf && !hf && inRange(hi, 0x0, 0x9) && inRange(lo, 0x0, 0x9):
		return 0x00, false
	case !cf && hf && inRange(hi, 0x0, 0x9) && inRange(lo, 0x0, 0x9):
		return 0x06, false
	case !cf && !hf && inRange(hi, 0x0, 0x8) && inRange(lo, 0xa, 0xf):
		return 0x06, false
	case !cf && hf && inRange(hi, 0x0, 0x8) && inRange(lo, 0xa, 0xf):
		return 0x06, false
	case !cf && !hf && inRange(hi, 0xa, 0xf) && inRange(lo, 0x0, 0x9):
		return 0x60, true
	case cf && !hf && inRange(hi, 0x0, 0xf) && inRange(lo, 0x0, 0x9):
		return 0x60, true
	case cf && hf && inRange(hi, 0x0, 0xf) && inRange(lo, 0x0, 0x9):
		return 0x66, true
	case cf && !hf && inRange(hi, 0x0, 0xf) && inRange(lo, 0xa, 0xf):
		return 0x66, true
	case cf && hf && inRange(hi, 0x0, 0xf) && inRange(lo, 0xa, 0xf):
		return 0x66, true
	case !cf && !hf && inRange(hi, 0x9, 0xf) && inRange(lo, 0xa, 0xf):
		return 0x66, true
	case !cf && hf && inRange(hi, 0x9, 0xf) && inRange(lo, 0xa, 0xf):
		return 0x66, true
	case !cf && hf && inRange(hi, 0xa, 0xf) && inRange(lo, 0x0, 0x9):
		return 0x66, true
	default:
		return 0x00, cf
	}
}

// daaHalfCarry returns the post-correction half-carry flag, keyed by
// (NF, HF, low nibble).
func daaHalfCarry(nf, hf bool, lo byte) bool {
	switch {
	case !nf && !hf && inRange(lo, 0x0, 0x9):
		return false
	case !nf && !hf && inRange(lo, 0xa, 0xf):
		return true
	case !nf && hf && inRange(lo, 0xa, 0xf):
		return true
	case nf && !hf && inRange(lo, 0x0, 0xf):
		return false
	case nf && hf && inRange(lo, 0x6, 0xf):
		return false
	case nf && hf && inRange(lo, 0x0, 0x5):
		return true
	default:
		return hf
	}
}
