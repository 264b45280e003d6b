package isa

// Canonical bit-field encodings, per spec.md §4.2 "Operand-value
// conventions". Grounded on the teacher's vm/constants.go /
// encoder/constants.go style of naming Z80/ARM field codes as typed
// constants rather than inlining magic numbers at each call site.

// Reg8 codes for the 3-bit "r" field.
const (
	RegB = 0
	RegC = 1
	RegD = 2
	RegE = 3
	RegH = 4
	RegL = 5
	RegA = 7
)

var reg8Names = map[string]int64{
	"a": RegA, "b": RegB, "c": RegC, "d": RegD, "e": RegE, "h": RegH, "l": RegL,
}

// RegPair codes for the 2-bit "dd"/"ss" field (LD dd,nn / INC ss / ADD HL,ss).
const (
	PairBC = 0
	PairDE = 1
	PairHL = 2
	PairSP = 3
)

var regPairNames = map[string]int64{
	"bc": PairBC, "de": PairDE, "hl": PairHL, "sp": PairSP,
}

// RegStack codes for the 2-bit "qq" field (PUSH/POP).
const (
	StackBC = 0
	StackDE = 1
	StackHL = 2
	StackAF = 3
)

var regStackNames = map[string]int64{
	"bc": StackBC, "de": StackDE, "hl": StackHL, "af": StackAF,
}

// Condition codes for the 3-bit "cc" field (JP cc,nn / CALL cc,nn / RET cc).
const (
	CondNZ = 0
	CondZ  = 1
	CondNC = 2
	CondC  = 3
	CondPO = 4
	CondPE = 5
	CondP  = 6
	CondM  = 7
)

var flagNames = map[string]int64{
	"nz": CondNZ, "z": CondZ, "nc": CondNC, "c": CondC,
	"po": CondPO, "pe": CondPE, "p": CondP, "m": CondM,
}

// jFlagNames is the restricted condition set JR/DJNZ accept.
var jFlagNames = map[string]int64{
	"nz": CondNZ, "z": CondZ, "nc": CondNC, "c": CondC,
}

// Page-0 RST targets, spec.md GLOSSARY "Page-0 memory location".
var memLocs = map[int64]bool{
	0x00: true, 0x08: true, 0x10: true, 0x18: true,
	0x20: true, 0x28: true, 0x30: true, 0x38: true,
}

// IM's three legal interrupt modes, spec.md §6 "IM (0|1|2)".
var imModes = map[int64]bool{0: true, 1: true, 2: true}

// Reg8Code, RegPairCode, RegStackCode, FlagCode, and IsMemLoc are the
// lookup entry points internal/parse uses to turn a lower-cased identifier
// (or, for IsMemLoc, a parsed integer) into its canonical bit-field value.

func Reg8Code(name string) (int64, bool) {
	v, ok := reg8Names[name]
	return v, ok
}

func RegPairCode(name string) (int64, bool) {
	v, ok := regPairNames[name]
	return v, ok
}

func RegStackCode(name string) (int64, bool) {
	v, ok := regStackNames[name]
	return v, ok
}

// FlagCode looks up a condition name. allowExtended includes po/pe/p/m
// (JP/CALL/RET's full 8-way set); when false, only the JR/DJNZ-restricted
// nz/z/nc/c set is accepted.
func FlagCode(name string, allowExtended bool) (int64, bool) {
	if allowExtended {
		v, ok := flagNames[name]
		return v, ok
	}
	v, ok := jFlagNames[name]
	return v, ok
}

func IsMemLoc(v int64) bool {
	return memLocs[v]
}

func IsIMMode(v int64) bool {
	return imModes[v]
}
