// Package ast defines the shared program representation that flows through
// the pipeline: Operand, Statement (Instruction/Directive/Label), and
// Program, per spec.md §3.
package ast

import "github.com/lookbusy1344/z80asm/internal/diag"

// Kind tags the variant an Operand carries. Beyond the kinds spec.md §3
// names explicitly, a handful of indirect-register and I/O-port kinds are
// added here since the grammar in spec.md §4.1 recognizes those shapes but
// the data-model kind list doesn't give them a name of their own (see
// DESIGN.md).
type Kind int

const (
	Int8 Kind = iota
	Int16
	Reg
	RegPair
	IX
	IY
	Addr
	IXDAddr
	IYDAddr
	ConstRef
	Flag
	AbsLabel
	RelLabel
	MemLoc
	Char
	String

	// Implementation-only additions, see DESIGN.md's internal/ast notes.
	IndHL
	IndBC
	IndDE
	IndSP
	IOImm // (n) -- I/O port address
	IOC   // (c) -- I/O port via register C
	IndIX // (ix) -- JP (ix)'s indirect-jump form
	IndIY // (iy) -- JP (iy)'s indirect-jump form
)

// Operand is a tagged value with an optional original identifier name and
// a source position, per spec.md §3's invariant: for Label/Const operands
// pre-layout, Value is meaningless and Name carries the identifier; after
// layout, Value carries the resolved number and Name is retained for
// display.
type Operand struct {
	Kind     Kind
	Value    int64 // resolved numeric value (register code, literal, address, displacement, bit index...)
	Name     string
	Resolved bool // true once a Const/AbsLabel/RelLabel operand has been substituted
	Pos      diag.Position
}

// StmtKind tags which of the three Statement shapes applies.
type StmtKind int

const (
	StmtInstruction StmtKind = iota
	StmtDirective
	StmtLabel
)

// Instruction is a parsed, and eventually laid-out and encoded, Z80
// instruction.
type Instruction struct {
	Mnemonic string
	Operands []*Operand
	Length   int // in bytes, 1-4; filled by the instruction table lookup at parse time
	Addr     uint16
	Bytes    []byte
	Pos      diag.Position

	// Entry identifies which table alternative was selected, opaque here
	// to avoid an import cycle with internal/isa; internal/compile type-
	// asserts it back to *isa.Entry.
	Entry interface{}
}

// DirectiveKind distinguishes the three supported directives (spec.md §6).
type DirectiveKind int

const (
	DirOrg DirectiveKind = iota
	DirEqu
	DirDb
)

// Directive is one of .org, .equ, .db.
type Directive struct {
	Kind     DirectiveKind
	Name     string // .equ's defined name
	Operands []*Operand
	Addr     uint16
	Length   int
	Bytes    []byte
	Pos      diag.Position
}

// Label names an address; its Addr is filled during layout pass 1.5.
type Label struct {
	Name string
	Addr uint16
	Pos  diag.Position
}

// Statement is the tagged union spec.md §3 describes.
type Statement struct {
	Kind        StmtKind
	Instruction *Instruction
	Directive   *Directive
	Label       *Label
}

func (s *Statement) Pos() diag.Position {
	switch s.Kind {
	case StmtInstruction:
		return s.Instruction.Pos
	case StmtDirective:
		return s.Directive.Pos
	case StmtLabel:
		return s.Label.Pos
	}
	return diag.Position{}
}

// Program is the ordered statement sequence plus the two side tables the
// layouter builds (spec.md §3). Statements are kept in a single ordered
// slice -- not split into parallel Instructions/Directives arrays -- because
// label resolution depends on source-order adjacency between a Label and
// the next emittable statement (spec.md §4.3 pass 1.5).
type Program struct {
	Statements []*Statement
	Labels     map[string]uint16
	Consts     map[string]int64
}

func NewProgram() *Program {
	return &Program{
		Labels: make(map[string]uint16),
		Consts: make(map[string]int64),
	}
}
