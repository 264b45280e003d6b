// Package isa is the declarative instruction table: for each mnemonic, the
// set of operand-shape tuples it accepts, and for each tuple either a fixed
// byte sequence or a (length, encoder) pair, per spec.md §4.2. This is the
// single source of truth for legal syntax, encoding, and byte length.
//
// Per spec.md §9's design note, the table prefers "monomorphic function
// pointers per entry" (form (b)): each Entry carries a small Encode closure
// built by one of a handful of shared constructors (fixed1, regField,
// pairField, cbField, ...) rather than one bespoke closure per mnemonic, so the
// table stays close to pure data while still letting Go express the bit
// arithmetic directly.
package isa

// ShapeKind names a single operand parselet, matching the "Operand shapes
// recognized (parselets)" list in spec.md §4.1.
type ShapeKind int

const (
	SInt8     ShapeKind = iota // 8-bit immediate
	SInt16                     // 16-bit immediate
	SReg                       // a/b/c/d/e/h/l
	SRegPair                   // bc/de/hl/sp
	SRegStack                  // bc/de/hl/af (PUSH/POP encoding)
	SIX
	SIY
	SIndIX // (ix) -- JP (IX) only, distinct from the (IX+d) displacement form
	SIndIY // (iy)
	SIndHL // (hl)
	SIndBC // (bc)
	SIndDE // (de)
	SIndSP // (sp)
	SAddr  // (nn)
	SIXD   // (ix+d) / (ix-d)
	SIYD   // (iy+d) / (iy-d)
	SBit   // bit position 0-7
	SFlag  // z/nz/c/nc/pe/po/p/m
	SJFlag // jump-only flag set: z/nz/c/nc (JR/DJNZ)
	SAbs   // absolute label or literal (JP/CALL target)
	SRel   // relative label or literal (JR/DJNZ target)
	SMem   // page-0 memory location (RST target)
	SIOImm // (n) I/O address
	SIOC   // (c) I/O register indirection
	SChar // character literal
	SStr  // string literal
	SLit  // an exact identifier match, e.g. "a", "hl", "sp", "i", "r"

	SIMMode // IM's interrupt mode operand, restricted to 0/1/2
)

// Shape is one element of an operand-shape tuple.
type Shape struct {
	Kind    ShapeKind
	Literal string // only meaningful when Kind == SLit
}

func Lit(s string) Shape { return Shape{Kind: SLit, Literal: s} }

// Entry is one alternative a mnemonic accepts: its operand shapes, its
// emitted length, and either a fixed byte tuple or an encoder.
//
// Invariant (spec.md §4.2): Encode's output length always equals Length,
// and every byte fits in 8 bits. internal/compile checks the length and
// treats a mismatch as an internal/assertion error, never user-visible;
// the 8-bit fit holds by construction, since Encode returns []byte.
type Entry struct {
	Operands []Shape
	Length   int
	Fixed    []byte
	Encode   func(args []int64) []byte
}

// Args received by Encode are parallel to Operands, in the conventions of
// spec.md §4.2: 16-bit values pass through as a single int64 (the encoder
// splits lsb/msb), 8-bit values as their byte, Reg/RegPair/Flag/MemLoc as
// their canonical bit code, and SLit/placeholder operands as 0 (unused).
