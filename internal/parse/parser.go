// Package parse implements the packrat (memoizing) recursive-descent
// parser of spec.md §4.1: a PEG-style recognizer over internal/token's
// token list that dispatches
// each mnemonic against internal/isa's ordered operand-shape alternatives,
// backtracking across alternatives with a per-line memo table and
// recording farthest-failure diagnostics along the way.
//
// Structurally this follows the teacher's parser/parser.go token-stream
// traversal (currentToken/peekToken, nextToken, a line-oriented firstPass
// loop), generalized with the memoization and farthest-failure layers
// spec.md §4.1/§4.6/§9 require -- the ARM parser never backtracks across
// operand alternatives, so it never needed either.
package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lookbusy1344/z80asm/internal/ast"
	"github.com/lookbusy1344/z80asm/internal/diag"
	"github.com/lookbusy1344/z80asm/internal/isa"
	"github.com/lookbusy1344/z80asm/internal/token"
)

// memoKey identifies one packrat recognition attempt: a parselet applied
// at a token position. Shape carries its own identity (Kind + Literal) so
// two different shapes tried at the same position don't collide.
type memoKey struct {
	pos   int
	kind  isa.ShapeKind
	lit   string
	stage int // bit position argument for SBit memoization isn't positional; unused elsewhere
}

type memoResult struct {
	value  int64
	name   string
	nextPos int
	ok     bool
}

// Parser consumes a flat token list (the whole file, across all lines) and
// produces an *ast.Program. The memo table and expects tracker are reset
// at every newline, per spec.md §4.1/§9 ("never hold it across file scope").
type Parser struct {
	tokens []token.Token
	pos    int
	errs   *diag.List
	memo   map[memoKey]memoResult
	exp    *diag.Expects
}

func NewParser(src, filename string) *Parser {
	lx := token.NewLexer(src, filename)
	toks := lx.TokenizeAll()
	errs := &diag.List{}
	for _, e := range lx.Errors().Errors {
		errs.Add(e)
	}
	return &Parser{
		tokens: toks,
		errs:   errs,
		memo:   make(map[memoKey]memoResult),
		exp:    diag.NewExpects(),
	}
}

func (p *Parser) cur() token.Token  { return p.peekAt(0) }
func (p *Parser) next() token.Token { return p.peekAt(1) }

func (p *Parser) peekAt(n int) token.Token {
	i := p.pos + n
	if i >= len(p.tokens) {
		return token.Token{Type: token.EOF}
	}
	return p.tokens[i]
}

func (p *Parser) advance() token.Token {
	t := p.cur()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return t
}

func (p *Parser) resetLineState() {
	for k := range p.memo {
		delete(p.memo, k)
	}
	p.exp.Reset()
}

func (p *Parser) skipBlank() {
	for p.cur().Type == token.Newline || p.cur().Type == token.Comment {
		if p.cur().Type == token.Newline {
			p.resetLineState()
		}
		p.advance()
	}
}

// Parse runs the whole file and returns the built Program along with any
// accumulated diagnostics. Per spec.md §4.1, all per-line errors are
// collected before returning; a non-empty error list means the caller
// should not proceed to layout.
func (p *Parser) Parse() (*ast.Program, error) {
	prog := ast.NewProgram()

	for {
		p.skipBlank()
		if p.cur().Type == token.EOF {
			break
		}
		p.parseLine(prog)
		p.skipBlank()
	}

	if p.errs.HasErrors() {
		return prog, p.errs.AsError()
	}
	return prog, nil
}

// parseLine recognizes one source line: an optional label, then either a
// directive or an instruction, with the remainder of the line required to
// be empty afterward (spec.md §4.1 "the remainder of the line must be
// empty").
func (p *Parser) parseLine(prog *ast.Program) {
	lineStart := p.pos
	errsBefore := len(p.errs.Errors)

	if p.cur().Type == token.Ident && p.next().Type == token.Colon {
		name := p.cur().Literal
		pos := p.cur().Pos
		p.advance() // identifier
		p.advance() // colon
		prog.Statements = append(prog.Statements, &ast.Statement{
			Kind:  ast.StmtLabel,
			Label: &ast.Label{Name: name, Pos: pos},
		})
	}

	switch p.cur().Type {
	case token.Newline, token.Comment, token.EOF:
		return
	case token.Directive:
		p.parseDirective(prog)
	case token.Ident:
		p.parseInstruction(prog)
	default:
		p.errs.Add(diag.NewError(p.cur().Pos, diag.KindSyntax,
			fmt.Sprintf("unexpected token %s", p.cur().Type)))
		p.recoverLine(lineStart)
		return
	}

	if p.cur().Type != token.Newline && p.cur().Type != token.Comment && p.cur().Type != token.EOF {
		// A line that already failed reports that one error only.
		if len(p.errs.Errors) == errsBefore {
			p.errs.Add(diag.NewError(p.cur().Pos, diag.KindSyntax, "unexpected text"))
		}
		p.recoverLine(lineStart)
	}
}

// recoverLine advances to the next newline/EOF so one bad line doesn't
// desynchronize the rest of the file (spec.md §4.1 "a first hard error
// aborts that line only").
func (p *Parser) recoverLine(lineStart int) {
	if p.pos == lineStart {
		p.advance()
	}
	for p.cur().Type != token.Newline && p.cur().Type != token.EOF {
		p.advance()
	}
}

func (p *Parser) parseDirective(prog *ast.Program) {
	name := strings.ToLower(p.cur().Literal)
	pos := p.cur().Pos
	p.advance()

	switch name {
	case "org":
		val, ok := p.parseInt16Literal()
		if !ok {
			p.fail(pos, "a 16-bit address")
			return
		}
		prog.Statements = append(prog.Statements, &ast.Statement{
			Kind: ast.StmtDirective,
			Directive: &ast.Directive{Kind: ast.DirOrg, Operands: []*ast.Operand{
				{Kind: ast.Int16, Value: val, Pos: pos},
			}, Pos: pos},
		})
	case "equ":
		if p.cur().Type != token.Ident {
			p.fail(pos, "a constant name")
			return
		}
		cname := p.cur().Literal
		p.advance()
		if p.cur().Type != token.Comma {
			p.fail(pos, "','")
			return
		}
		p.advance()
		val, ok := p.parseInt8Literal()
		if !ok {
			p.fail(pos, "an 8-bit value")
			return
		}
		prog.Statements = append(prog.Statements, &ast.Statement{
			Kind: ast.StmtDirective,
			Directive: &ast.Directive{Kind: ast.DirEqu, Name: cname, Operands: []*ast.Operand{
				{Kind: ast.Int8, Value: val, Pos: pos},
			}, Pos: pos},
		})
	case "db":
		var ops []*ast.Operand
		for {
			op, ok := p.parseDbOperand()
			if !ok {
				p.fail(pos, "a string, char, or 8-bit value")
				return
			}
			ops = append(ops, op)
			if p.cur().Type != token.Comma {
				break
			}
			p.advance()
		}
		prog.Statements = append(prog.Statements, &ast.Statement{
			Kind:      ast.StmtDirective,
			Directive: &ast.Directive{Kind: ast.DirDb, Operands: ops, Pos: pos},
		})
	default:
		p.errs.Add(diag.NewError(pos, diag.KindSyntax, fmt.Sprintf("unknown directive .%s", name)))
	}
}

func (p *Parser) parseDbOperand() (*ast.Operand, bool) {
	pos := p.cur().Pos
	switch p.cur().Type {
	case token.String:
		s := p.cur().Literal
		p.advance()
		return &ast.Operand{Kind: ast.String, Name: s, Pos: pos}, true
	case token.Char:
		s := p.cur().Literal
		p.advance()
		if len([]rune(s)) != 1 {
			p.errs.Add(diag.NewError(pos, diag.KindSyntax, "char literal must be exactly one character"))
			return nil, false
		}
		return &ast.Operand{Kind: ast.Char, Value: int64([]rune(s)[0]), Pos: pos}, true
	default:
		v, ok := p.parseInt8Literal()
		if !ok {
			return nil, false
		}
		return &ast.Operand{Kind: ast.Int8, Value: v, Pos: pos}, true
	}
}

// parseInstruction dispatches the mnemonic against isa.Table's ordered
// alternatives, committing to the first whose shapes all recognize
// (spec.md §4.1 "Dispatch algorithm").
func (p *Parser) parseInstruction(prog *ast.Program) {
	mnemonic := strings.ToUpper(p.cur().Literal)
	pos := p.cur().Pos
	entries, ok := isa.Table[mnemonic]
	if !ok {
		p.errs.Add(diag.NewError(pos, diag.KindSyntax, fmt.Sprintf("unknown mnemonic %q", p.cur().Literal)))
		return
	}
	p.advance()

	start := p.pos
	for _, entry := range entries {
		p.pos = start
		args, names, ok := p.tryEntry(entry)
		if !ok {
			continue
		}
		inst := &ast.Instruction{Mnemonic: mnemonic, Length: entry.Length, Pos: pos, Entry: entry}
		for i, sh := range entry.Operands {
			nm := ""
			if i < len(names) {
				nm = names[i]
			}
			kind := shapeToOperandKind(sh.Kind)
			// An Int8/Int16 shape that resolved to a bare identifier names a
			// .equ constant rather than a literal (spec.md §3's Const kind);
			// internal/layout substitutes the numeric value in pass 2.
			if nm != "" && (kind == ast.Int8 || kind == ast.Int16) {
				kind = ast.ConstRef
			}
			inst.Operands = append(inst.Operands, &ast.Operand{Kind: kind, Value: args[i], Name: nm, Pos: pos})
		}
		prog.Statements = append(prog.Statements, &ast.Statement{Kind: ast.StmtInstruction, Instruction: inst})
		return
	}

	p.pos = start
	col, exps, ok := p.exp.Farthest()
	if ok {
		ePos := pos
		ePos.Column = col
		p.errs.Add(diag.NewError(ePos, diag.KindSyntax, p.exp.Message()))
		_ = exps
	} else {
		p.errs.Add(diag.NewError(pos, diag.KindSyntax, fmt.Sprintf("no matching operand form for %s", mnemonic)))
	}
	p.recoverLine(start)
}

// tryEntry attempts one operand-shape alternative in full, backtracking to
// its own start position on any parselet failure.
func (p *Parser) tryEntry(e *isa.Entry) (args []int64, names []string, ok bool) {
	save := p.pos
	args = make([]int64, len(e.Operands))
	names = make([]string, len(e.Operands))
	for i, sh := range e.Operands {
		if i > 0 {
			if p.cur().Type != token.Comma {
				p.pos = save
				return nil, nil, false
			}
			p.advance()
		}
		v, n, ok := p.parseShape(sh)
		if !ok {
			p.pos = save
			return nil, nil, false
		}
		args[i], names[i] = v, n
	}
	return args, names, true
}

func shapeToOperandKind(k isa.ShapeKind) ast.Kind {
	switch k {
	case isa.SInt8:
		return ast.Int8
	case isa.SInt16:
		return ast.Int16
	case isa.SReg:
		return ast.Reg
	case isa.SRegPair, isa.SRegStack:
		return ast.RegPair
	case isa.SIX:
		return ast.IX
	case isa.SIY:
		return ast.IY
	case isa.SIndHL:
		return ast.IndHL
	case isa.SIndBC:
		return ast.IndBC
	case isa.SIndDE:
		return ast.IndDE
	case isa.SIndSP:
		return ast.IndSP
	case isa.SIndIX:
		return ast.IndIX
	case isa.SIndIY:
		return ast.IndIY
	case isa.SAddr:
		return ast.Addr
	case isa.SIXD:
		return ast.IXDAddr
	case isa.SIYD:
		return ast.IYDAddr
	case isa.SBit, isa.SIMMode:
		return ast.Int8
	case isa.SFlag, isa.SJFlag:
		return ast.Flag
	case isa.SAbs:
		return ast.AbsLabel
	case isa.SRel:
		return ast.RelLabel
	case isa.SMem:
		return ast.MemLoc
	case isa.SIOImm:
		return ast.Int8
	case isa.SIOC:
		return ast.IOC
	case isa.SChar:
		return ast.Char
	case isa.SStr:
		return ast.String
	default:
		return ast.Reg
	}
}

// --- integer literal helpers shared by directives and SInt8/SInt16 parselets ---

func (p *Parser) parseSignedNumberToken() (int64, bool) {
	neg := false
	if p.cur().Type == token.Minus {
		neg = true
		p.advance()
	} else if p.cur().Type == token.Plus {
		p.advance()
	}
	if p.cur().Type != token.Number {
		return 0, false
	}
	lit := p.cur().Literal
	v, err := parseNumberLiteral(lit)
	if err != nil {
		p.advance()
		return 0, false
	}
	p.advance()
	if neg {
		v = -v
	}
	return v, true
}

func (p *Parser) parseInt8Literal() (int64, bool) {
	v, ok := p.parseSignedNumberToken()
	if !ok {
		return 0, false
	}
	if v < -128 || v > 255 {
		p.errs.Add(diag.NewError(p.tokens[p.pos-1].Pos, diag.KindSyntax,
			fmt.Sprintf("integer %d out of range for 8-bit operand (next width: 16-bit)", v)))
		return 0, false
	}
	return v & 0xFF, true
}

func (p *Parser) parseInt16Literal() (int64, bool) {
	v, ok := p.parseSignedNumberToken()
	if !ok {
		return 0, false
	}
	if v < -32768 || v > 65535 {
		p.errs.Add(diag.NewError(p.tokens[p.pos-1].Pos, diag.KindSyntax,
			fmt.Sprintf("integer %d out of range for 16-bit operand (next width: 32-bit)", v)))
		return 0, false
	}
	return v & 0xFFFF, true
}

// parseNumberLiteral parses the lexer's raw Number literal (with 0x/0b/0o
// prefixes and underscore separators) into an int64.
func parseNumberLiteral(lit string) (int64, error) {
	s := strings.ReplaceAll(lit, "_", "")
	switch {
	case strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X"):
		v, err := strconv.ParseUint(s[2:], 16, 64)
		return int64(v), err
	case strings.HasPrefix(s, "0b") || strings.HasPrefix(s, "0B"):
		v, err := strconv.ParseUint(s[2:], 2, 64)
		return int64(v), err
	case strings.HasPrefix(s, "0o") || strings.HasPrefix(s, "0O"):
		v, err := strconv.ParseUint(s[2:], 8, 64)
		return int64(v), err
	default:
		v, err := strconv.ParseInt(s, 10, 64)
		return v, err
	}
}

func (p *Parser) fail(pos diag.Position, what string) {
	p.exp.Record(pos.Column, what)
	p.errs.Add(diag.NewError(pos, diag.KindSyntax, "expected "+what))
}

// Errors returns the accumulated diagnostics list.
func (p *Parser) Errors() *diag.List { return p.errs }
