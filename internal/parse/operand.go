package parse

import (
	"strings"

	"github.com/lookbusy1344/z80asm/internal/diag"
	"github.com/lookbusy1344/z80asm/internal/isa"
	"github.com/lookbusy1344/z80asm/internal/token"
)

// parseShape is the single entry point every operand parselet goes
// through: look up the memo table first (spec.md §4.1/§9 packrat
// memoization keyed on (parselet, args, position)), and on a miss, run the
// parselet and memoize its outcome -- success or failure -- before
// returning. A failed attempt still records an "expects" entry so the
// farthest-failure diagnostic stays accurate even when served from cache.
func (p *Parser) parseShape(sh isa.Shape) (int64, string, bool) {
	key := memoKey{pos: p.pos, kind: sh.Kind, lit: sh.Literal}
	if r, ok := p.memo[key]; ok {
		p.pos = r.nextPos
		return r.value, r.name, r.ok
	}

	start := p.pos
	v, n, ok := p.parseShapeUncached(sh)
	p.memo[key] = memoResult{value: v, name: n, nextPos: p.pos, ok: ok}
	if !ok {
		p.pos = start
	}
	return v, n, ok
}

func (p *Parser) parseShapeUncached(sh isa.Shape) (int64, string, bool) {
	switch sh.Kind {
	case isa.SLit:
		return p.parseLit(sh.Literal)
	case isa.SInt8:
		return p.parseIntWidth(8)
	case isa.SInt16:
		return p.parseIntWidth(16)
	case isa.SReg:
		return p.parseReg()
	case isa.SRegPair:
		return p.parseRegPair()
	case isa.SRegStack:
		return p.parseRegStack()
	case isa.SIX:
		return p.parseIdentLit("ix", 0)
	case isa.SIY:
		return p.parseIdentLit("iy", 0)
	case isa.SIndHL:
		return p.parseParenIdent("hl", 0, true)
	case isa.SIndBC:
		return p.parseParenIdent("bc", 0, false)
	case isa.SIndDE:
		return p.parseParenIdent("de", 0, false)
	case isa.SIndSP:
		return p.parseParenIdent("sp", 0, false)
	case isa.SIndIX:
		return p.parseParenIdent("ix", 0, false)
	case isa.SIndIY:
		return p.parseParenIdent("iy", 0, false)
	case isa.SAddr:
		return p.parseParenAddr()
	case isa.SIXD:
		return p.parseIndexDisp("ix")
	case isa.SIYD:
		return p.parseIndexDisp("iy")
	case isa.SBit:
		return p.parseBit()
	case isa.SFlag:
		return p.parseFlag(true)
	case isa.SJFlag:
		return p.parseFlag(false)
	case isa.SAbs:
		return p.parseLabelRef()
	case isa.SRel:
		return p.parseLabelRef()
	case isa.SMem:
		return p.parseMemLoc()
	case isa.SIMMode:
		return p.parseIMMode()
	case isa.SIOImm:
		return p.parseParenIntWidth(8)
	case isa.SIOC:
		return p.parseParenIdent("c", 0, false)
	case isa.SChar:
		return p.parseCharLit()
	case isa.SStr:
		return p.parseStrLit()
	default:
		return 0, "", false
	}
}

func (p *Parser) wantIdent() (string, diag.Position, bool) {
	if p.cur().Type != token.Ident {
		return "", p.cur().Pos, false
	}
	return p.cur().Literal, p.cur().Pos, true
}

// parseLit recognizes an exact case-insensitive identifier match (e.g.
// "a", "hl", "af'"), consuming it and returning no meaningful value.
func (p *Parser) parseLit(lit string) (int64, string, bool) {
	name, pos, ok := p.wantIdent()
	if !ok || !strings.EqualFold(name, lit) {
		p.exp.Record(pos.Column, "'"+lit+"'")
		return 0, "", false
	}
	p.advance()
	return 0, name, true
}

func (p *Parser) parseIdentLit(lit string, val int64) (int64, string, bool) {
	name, pos, ok := p.wantIdent()
	if !ok || !strings.EqualFold(name, lit) {
		p.exp.Record(pos.Column, "'"+lit+"'")
		return 0, "", false
	}
	p.advance()
	return val, name, true
}

// parseReg recognizes a single 8-bit register a/b/c/d/e/h/l.
func (p *Parser) parseReg() (int64, string, bool) {
	name, pos, ok := p.wantIdent()
	if !ok {
		p.exp.Record(pos.Column, "a register")
		return 0, "", false
	}
	code, ok := isa.Reg8Code(strings.ToLower(name))
	if !ok {
		p.exp.Record(pos.Column, "a register")
		return 0, "", false
	}
	p.advance()
	return code, name, true
}

func (p *Parser) parseRegPair() (int64, string, bool) {
	name, pos, ok := p.wantIdent()
	if !ok {
		p.exp.Record(pos.Column, "a register pair")
		return 0, "", false
	}
	code, ok := isa.RegPairCode(strings.ToLower(name))
	if !ok {
		p.exp.Record(pos.Column, "a register pair")
		return 0, "", false
	}
	p.advance()
	return code, name, true
}

func (p *Parser) parseRegStack() (int64, string, bool) {
	name, pos, ok := p.wantIdent()
	if !ok {
		p.exp.Record(pos.Column, "a register pair")
		return 0, "", false
	}
	code, ok := isa.RegStackCode(strings.ToLower(name))
	if !ok {
		p.exp.Record(pos.Column, "a register pair")
		return 0, "", false
	}
	p.advance()
	return code, name, true
}

// parseParenIdent recognizes "(" ident ")" where ident must case-
// insensitively equal want; isIndHL additionally allows the parenthesized
// form to double as SIndHL's canonical register-field value 6.
func (p *Parser) parseParenIdent(want string, _ int64, isIndHL bool) (int64, string, bool) {
	save := p.pos
	if p.cur().Type != token.LParen {
		p.exp.Record(p.cur().Pos.Column, "'('")
		return 0, "", false
	}
	p.advance()
	name, pos, ok := p.wantIdent()
	if !ok || !strings.EqualFold(name, want) {
		p.exp.Record(pos.Column, "'"+want+"'")
		p.pos = save
		return 0, "", false
	}
	p.advance()
	if p.cur().Type != token.RParen {
		p.exp.Record(p.cur().Pos.Column, "')'")
		p.pos = save
		return 0, "", false
	}
	p.advance()
	if isIndHL {
		return 6, name, true
	}
	return 0, name, true
}

// parseParenAddr recognizes "(" number ")" as an absolute address: a
// literal 16-bit value, matching the grammar's numeric-only (nn) form
// (spec.md §4.1's "(nn) absolute address" parselet -- an identifier naming
// a label or constant is a different operand shape (SAbs/SRel, the bare
// "identifier as absolute/relative-label reference" parselets), not a
// paren-wrapped one; this parselet never produces a Name to resolve.
func (p *Parser) parseParenAddr() (int64, string, bool) {
	save := p.pos
	if p.cur().Type != token.LParen {
		p.exp.Record(p.cur().Pos.Column, "'('")
		return 0, "", false
	}
	p.advance()

	v, ok := p.parseSignedNumberToken()
	if !ok {
		p.exp.Record(p.cur().Pos.Column, "an address")
		p.pos = save
		return 0, "", false
	}
	val := v & 0xFFFF

	if p.cur().Type != token.RParen {
		p.exp.Record(p.cur().Pos.Column, "')'")
		p.pos = save
		return 0, "", false
	}
	p.advance()
	return val, "", true
}

// parseIndexDisp recognizes "(" ix|iy ("+"|"-") number ")".
func (p *Parser) parseIndexDisp(reg string) (int64, string, bool) {
	save := p.pos
	if p.cur().Type != token.LParen {
		p.exp.Record(p.cur().Pos.Column, "'('")
		return 0, "", false
	}
	p.advance()
	name, pos, ok := p.wantIdent()
	if !ok || !strings.EqualFold(name, reg) {
		p.exp.Record(pos.Column, "'"+reg+"'")
		p.pos = save
		return 0, "", false
	}
	p.advance()

	sign := int64(1)
	switch p.cur().Type {
	case token.Plus:
		p.advance()
	case token.Minus:
		sign = -1
		p.advance()
	case token.RParen:
		p.advance()
		return 0, name, true
	default:
		p.exp.Record(p.cur().Pos.Column, "'+' or '-'")
		p.pos = save
		return 0, "", false
	}

	if p.cur().Type != token.Number {
		p.exp.Record(p.cur().Pos.Column, "a displacement")
		p.pos = save
		return 0, "", false
	}
	v, err := parseNumberLiteral(p.cur().Literal)
	if err != nil || v < 0 || v > 127 && !(sign < 0 && v == 128) {
		p.exp.Record(p.cur().Pos.Column, "a displacement in -128..127")
		p.pos = save
		return 0, "", false
	}
	p.advance()
	if p.cur().Type != token.RParen {
		p.exp.Record(p.cur().Pos.Column, "')'")
		p.pos = save
		return 0, "", false
	}
	p.advance()
	return (sign * v) & 0xFF, name, true
}

func (p *Parser) parseParenIntWidth(width int) (int64, string, bool) {
	save := p.pos
	if p.cur().Type != token.LParen {
		p.exp.Record(p.cur().Pos.Column, "'('")
		return 0, "", false
	}
	p.advance()
	v, name, ok := p.parseIntWidth(width)
	if !ok || name != "" {
		p.pos = save
		return 0, "", false
	}
	if p.cur().Type != token.RParen {
		p.exp.Record(p.cur().Pos.Column, "')'")
		p.pos = save
		return 0, "", false
	}
	p.advance()
	return v, "", true
}

// parseIntWidth recognizes either a numeric literal (range-checked
// immediately against width) or a bare identifier naming a .equ constant
// (spec.md §3's Const operand kind) -- resolved later, in internal/layout
// pass 2, once every constant definition in the file is known. Register
// names are not taken as constant names, so the register-operand
// alternatives of the same mnemonic stay reachable.
func (p *Parser) parseIntWidth(width int) (int64, string, bool) {
	save := p.pos
	if p.cur().Type == token.Ident {
		name := p.cur().Literal
		switch strings.ToLower(name) {
		case "a", "b", "c", "d", "e", "h", "l", "i", "r", "bc", "de", "hl", "sp", "af", "af'", "ix", "iy":
			p.exp.Record(p.cur().Pos.Column, "an integer literal")
			return 0, "", false
		}
		p.advance()
		return 0, name, true
	}
	v, ok := p.parseSignedNumberToken()
	if !ok {
		p.exp.Record(p.cur().Pos.Column, "an integer literal")
		p.pos = save
		return 0, "", false
	}
	if width == 8 {
		if v < -128 || v > 255 {
			p.errs.Add(diag.NewError(p.tokens[p.pos-1].Pos, diag.KindOutOfRange,
				"integer out of range for 8-bit operand (next width: 16-bit)"))
			p.pos = save
			return 0, "", false
		}
		return v & 0xFF, "", true
	}
	if v < -32768 || v > 65535 {
		p.errs.Add(diag.NewError(p.tokens[p.pos-1].Pos, diag.KindOutOfRange,
			"integer out of range for 16-bit operand (next width: 32-bit)"))
		p.pos = save
		return 0, "", false
	}
	return v & 0xFFFF, "", true
}

// parseBit recognizes a bare 0-7 literal bit position.
func (p *Parser) parseBit() (int64, string, bool) {
	if p.cur().Type != token.Number {
		p.exp.Record(p.cur().Pos.Column, "a bit position 0-7")
		return 0, "", false
	}
	v, err := parseNumberLiteral(p.cur().Literal)
	if err != nil || v < 0 || v > 7 {
		p.exp.Record(p.cur().Pos.Column, "a bit position 0-7")
		return 0, "", false
	}
	p.advance()
	return v, "", true
}

func (p *Parser) parseFlag(allowExtended bool) (int64, string, bool) {
	name, pos, ok := p.wantIdent()
	if !ok {
		p.exp.Record(pos.Column, "a condition flag")
		return 0, "", false
	}
	code, ok := isa.FlagCode(strings.ToLower(name), allowExtended)
	if !ok {
		p.exp.Record(pos.Column, "a condition flag")
		return 0, "", false
	}
	p.advance()
	return code, name, true
}

func (p *Parser) parseMemLoc() (int64, string, bool) {
	if p.cur().Type != token.Number {
		p.exp.Record(p.cur().Pos.Column, "a page-0 memory location")
		return 0, "", false
	}
	v, err := parseNumberLiteral(p.cur().Literal)
	if err != nil || !isa.IsMemLoc(v) {
		p.exp.Record(p.cur().Pos.Column, "a page-0 memory location")
		return 0, "", false
	}
	p.advance()
	return v, "", true
}

// parseIMMode recognizes IM's interrupt-mode operand, restricted to the
// three legal values 0/1/2 (spec.md §6 "IM (0|1|2)") rather than accepting
// any 8-bit literal and silently folding out-of-range values into mode 2.
func (p *Parser) parseIMMode() (int64, string, bool) {
	if p.cur().Type != token.Number {
		p.exp.Record(p.cur().Pos.Column, "an interrupt mode (0, 1, or 2)")
		return 0, "", false
	}
	v, err := parseNumberLiteral(p.cur().Literal)
	if err != nil || !isa.IsIMMode(v) {
		p.exp.Record(p.cur().Pos.Column, "an interrupt mode (0, 1, or 2)")
		return 0, "", false
	}
	p.advance()
	return v, "", true
}

// parseLabelRef recognizes a bare identifier as a forward/backward label or
// constant reference, or a numeric literal target address; resolution of a
// name to a numeric value happens in internal/layout. The parser only
// records the name here; a literal comes back with an empty name.
func (p *Parser) parseLabelRef() (int64, string, bool) {
	switch p.cur().Type {
	case token.Number, token.Minus, token.Plus:
		save := p.pos
		v, ok := p.parseSignedNumberToken()
		if !ok {
			p.exp.Record(p.tokens[save].Pos.Column, "a label")
			p.pos = save
			return 0, "", false
		}
		return v & 0xFFFF, "", true
	}
	name, pos, ok := p.wantIdent()
	if !ok {
		p.exp.Record(pos.Column, "a label")
		return 0, "", false
	}
	p.advance()
	return 0, name, true
}

func (p *Parser) parseCharLit() (int64, string, bool) {
	if p.cur().Type != token.Char {
		p.exp.Record(p.cur().Pos.Column, "a character literal")
		return 0, "", false
	}
	s := p.cur().Literal
	if len([]rune(s)) != 1 {
		p.errs.Add(diag.NewError(p.cur().Pos, diag.KindSyntax, "char literal must be exactly one character"))
		return 0, "", false
	}
	p.advance()
	return int64([]rune(s)[0]), "", true
}

func (p *Parser) parseStrLit() (int64, string, bool) {
	if p.cur().Type != token.String {
		p.exp.Record(p.cur().Pos.Column, "a string literal")
		return 0, "", false
	}
	s := p.cur().Literal
	p.advance()
	return 0, s, true
}
