// Package emu implements the Z80 CPU adjunct referenced in spec.md §1/§6:
// given a byte image (via memread/memwrite/ioread/iowrite callbacks), it
// executes instructions one at a time until halted and exposes register
// and memory inspection. spec.md explicitly scopes this module to the DAA
// table and flag model in depth ("a full emulator spec is out of scope
// here"); instruction coverage here is bounded accordingly -- see
// DESIGN.md for exactly what's implemented and what's left out.
//
// Grounded on the teacher's vm/cpu.go (a flat register-file struct plus a
// cycle counter) and vm/executor.go (a bounded fetch-execute loop with a
// MaxCycles counter rather than context cancellation, matching spec.md
// §5's single-threaded synchronous model).
package emu

// MemRead/MemWrite/IORead/IOWrite are the four callbacks spec.md §6
// requires the CPU to be constructed with.
type (
	MemRead  func(addr uint16) byte
	MemWrite func(addr uint16, v byte)
	IORead   func(port byte) byte
	IOWrite  func(port byte, v byte)
)

// CPU holds the full Z80 register file: the main set, the shadow set
// (AF'/BC'/DE'/HL'), the index/stack/program-counter registers, and the
// interrupt-related I/R/IFF/IM state.
type CPU struct {
	A, F, B, C, D, E, H, L             byte
	A2, F2, B2, C2, D2, E2, H2, L2     byte // shadow register set
	IX, IY, SP, PC                     uint16
	I, R                               byte
	IFF1, IFF2                         bool
	IM                                 byte

	Halted bool

	// MaxInstructions bounds Run's loop per spec.md §5's "no suspension
	// points" model: there is nothing to cancel, so a plain counter stands
	// in for the cancellation spec.md's ambient stack otherwise carries.
	MaxInstructions int
	Executed        int

	memRead  MemRead
	memWrite MemWrite
	ioRead   IORead
	ioWrite  IOWrite
}

// NewCPU constructs a CPU wired to the four host callbacks, per spec.md §6.
func NewCPU(memRead MemRead, memWrite MemWrite, ioRead IORead, ioWrite IOWrite) *CPU {
	return &CPU{
		memRead: memRead, memWrite: memWrite, ioRead: ioRead, ioWrite: ioWrite,
		MaxInstructions: 10_000_000,
	}
}

// LoadImage is a convenience for test and CLI callers: it backs the CPU
// with a flat byte slice via closures over the slice, rather than forcing
// every caller to hand-write memRead/memWrite.
func LoadImage(img []byte) (MemRead, MemWrite) {
	mem := make([]byte, 1<<16)
	copy(mem, img)
	return func(addr uint16) byte { return mem[addr] },
		func(addr uint16, v byte) { mem[addr] = v }
}

func (c *CPU) fetch() byte {
	v := c.memRead(c.PC)
	c.PC++
	return v
}

func (c *CPU) fetch16() uint16 {
	lo := c.fetch()
	hi := c.fetch()
	return uint16(hi)<<8 | uint16(lo)
}

// SetRegister writes one named register, per spec.md §6. Register names
// match the dump() keys: a,f,b,c,d,e,h,l,ix,iy,sp,pc,i,r and their shadow
// counterparts suffixed with a prime.
func (c *CPU) SetRegister(name string, value uint16) {
	switch name {
	case "a":
		c.A = byte(value)
	case "f":
		c.F = byte(value)
	case "b":
		c.B = byte(value)
	case "c":
		c.C = byte(value)
	case "d":
		c.D = byte(value)
	case "e":
		c.E = byte(value)
	case "h":
		c.H = byte(value)
	case "l":
		c.L = byte(value)
	case "ix":
		c.IX = value
	case "iy":
		c.IY = value
	case "sp":
		c.SP = value
	case "pc":
		c.PC = value
	case "i":
		c.I = byte(value)
	case "r":
		c.R = byte(value)
	case "a'":
		c.A2 = byte(value)
	case "f'":
		c.F2 = byte(value)
	case "b'":
		c.B2 = byte(value)
	case "c'":
		c.C2 = byte(value)
	case "d'":
		c.D2 = byte(value)
	case "e'":
		c.E2 = byte(value)
	case "h'":
		c.H2 = byte(value)
	case "l'":
		c.L2 = byte(value)
	}
}

// Dump returns every register's current value keyed by name, including
// the shadow set distinguished by a trailing prime (spec.md §6).
func (c *CPU) Dump() map[string]uint16 {
	return map[string]uint16{
		"a": uint16(c.A), "f": uint16(c.F), "b": uint16(c.B), "c": uint16(c.C),
		"d": uint16(c.D), "e": uint16(c.E), "h": uint16(c.H), "l": uint16(c.L),
		"ix": c.IX, "iy": c.IY, "sp": c.SP, "pc": c.PC,
		"i": uint16(c.I), "r": uint16(c.R),
		"a'": uint16(c.A2), "f'": uint16(c.F2), "b'": uint16(c.B2), "c'": uint16(c.C2),
		"d'": uint16(c.D2), "e'": uint16(c.E2), "h'": uint16(c.H2), "l'": uint16(c.L2),
	}
}

// Instruction executes exactly one instruction, per spec.md §6.
func (c *CPU) Instruction() {
	if c.Halted {
		return
	}
	c.Executed++
	op := c.fetch()
	c.execute(op)
}

// Run executes instructions until Halted or MaxInstructions is reached.
func (c *CPU) Run() {
	for !c.Halted && c.Executed < c.MaxInstructions {
		c.Instruction()
	}
}
