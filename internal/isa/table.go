package isa

// Table maps an upper-cased mnemonic to its ordered list of accepted
// operand-shape alternatives, per spec.md §4.2. Order matters: the parser
// in internal/parse tries each Entry in declaration order and commits to
// the first whose shapes all recognize (spec.md §4.1 "Dispatch algorithm").
var Table = map[string][]*Entry{}

func addEntry(mnemonic string, e *Entry) {
	Table[mnemonic] = append(Table[mnemonic], e)
}

func init() {
	registerLoadGroup()
	registerArithGroup()
	registerRotateGroup()
	registerBranchGroup()
	registerIOGroup()
	registerMiscGroup()
}
