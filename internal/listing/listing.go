// Package listing implements the printer of spec.md §4.5: a hex-addressed
// listing of every statement's encoded bytes alongside its source text,
// with the replace_names and interpret_literals rendering options.
//
// Grounded on the teacher's loader/loader.go and vm's disassembly-listing
// conventions (4-hex-digit address, grouped byte columns, continuation
// lines for instructions longer than one row) adapted to the Z80 table's
// variable instruction length (1-4 bytes here vs ARM's fixed 4).
package listing

import (
	"fmt"
	"strings"

	"github.com/lookbusy1344/z80asm/internal/ast"
)

// Options controls operand rendering, per spec.md §4.5.
type Options struct {
	ReplaceNames      bool // render label/const refs as resolved numeric values
	InterpretLiterals bool // render char/string literals as hex byte sequences
	BytesPerLine      int  // bytes shown per listing line before continuation; 0 means the spec default of 4
}

func (o Options) bytesPerLine() int {
	if o.BytesPerLine <= 0 {
		return 4
	}
	return o.BytesPerLine
}

// Print renders the whole program as a listing.
func Print(prog *ast.Program, opts Options) string {
	var sb strings.Builder
	for _, st := range prog.Statements {
		printStatement(&sb, st, opts)
	}
	return sb.String()
}

func printStatement(sb *strings.Builder, st *ast.Statement, opts Options) {
	switch st.Kind {
	case ast.StmtLabel:
		fmt.Fprintf(sb, "%04X:                %s:\n", st.Label.Addr, st.Label.Name)
	case ast.StmtDirective:
		printBytesAndText(sb, st.Directive.Addr, st.Directive.Bytes, directiveText(st.Directive, opts), opts)
	case ast.StmtInstruction:
		printBytesAndText(sb, st.Instruction.Addr, st.Instruction.Bytes, instructionText(st.Instruction, opts), opts)
	}
}

// printBytesAndText prints the address, up to bytesPerLine() bytes, then
// the source text on the first line; any remaining bytes get continuation
// lines of their own, 4 (by default) per line, prefixed by their own
// address (spec.md §4.5).
func printBytesAndText(sb *strings.Builder, addr uint16, bytes []byte, text string, opts Options) {
	per := opts.bytesPerLine()
	first := bytes
	if len(first) > per {
		first = bytes[:per]
	}
	fmt.Fprintf(sb, "%04X: %-12s %s\n", addr, hexBytes(first), text)

	for i := per; i < len(bytes); i += per {
		end := i + per
		if end > len(bytes) {
			end = len(bytes)
		}
		fmt.Fprintf(sb, "%04X: %-12s\n", int(addr)+i, hexBytes(bytes[i:end]))
	}
}

func hexBytes(b []byte) string {
	parts := make([]string, len(b))
	for i, by := range b {
		parts[i] = fmt.Sprintf("%02X", by)
	}
	return strings.Join(parts, " ")
}

func directiveText(d *ast.Directive, opts Options) string {
	switch d.Kind {
	case ast.DirOrg:
		return fmt.Sprintf(".org 0x%04X", d.Operands[0].Value)
	case ast.DirEqu:
		return fmt.Sprintf(".equ %s, 0x%02X", d.Name, d.Operands[0].Value)
	case ast.DirDb:
		parts := make([]string, len(d.Operands))
		for i, op := range d.Operands {
			parts[i] = renderOperand(op, opts)
		}
		return ".db " + strings.Join(parts, ", ")
	}
	return ""
}

func instructionText(inst *ast.Instruction, opts Options) string {
	if len(inst.Operands) == 0 {
		return strings.ToLower(inst.Mnemonic)
	}
	parts := make([]string, len(inst.Operands))
	for i, op := range inst.Operands {
		parts[i] = renderOperand(op, opts)
	}
	return strings.ToLower(inst.Mnemonic) + " " + strings.Join(parts, ",")
}

// renderOperand implements spec.md §4.5's rendering rules.
func renderOperand(op *ast.Operand, opts Options) string {
	switch op.Kind {
	case ast.Int8:
		return fmt.Sprintf("0x%02X", op.Value&0xFF)
	case ast.Int16, ast.Addr:
		return fmt.Sprintf("0x%04X", op.Value&0xFFFF)
	case ast.IXDAddr:
		return signedIndexOffset("ix", op.Value)
	case ast.IYDAddr:
		return signedIndexOffset("iy", op.Value)
	case ast.Char:
		if opts.InterpretLiterals {
			return fmt.Sprintf("0x%02X", op.Value&0xFF)
		}
		return "'" + escapeChar(byte(op.Value)) + "'"
	case ast.String:
		if opts.InterpretLiterals {
			return hexBytes([]byte(op.Name))
		}
		return "\"" + escapeString(op.Name) + "\""
	case ast.AbsLabel:
		if opts.ReplaceNames || op.Name == "" {
			return fmt.Sprintf("0x%04X", op.Value&0xFFFF)
		}
		return op.Name
	case ast.RelLabel:
		if opts.ReplaceNames || op.Name == "" {
			return fmt.Sprintf("%d", op.Value)
		}
		return op.Name
	case ast.ConstRef:
		if opts.ReplaceNames || op.Name == "" {
			return fmt.Sprintf("0x%02X", op.Value&0xFF)
		}
		return op.Name
	case ast.MemLoc:
		return fmt.Sprintf("0x%02X", op.Value&0xFF)
	case ast.IndHL, ast.IndBC, ast.IndDE, ast.IndSP, ast.IOC:
		return "(" + strings.ToLower(op.Name) + ")"
	case ast.IndIX:
		return "(ix)"
	case ast.IndIY:
		return "(iy)"
	case ast.Flag, ast.Reg, ast.RegPair, ast.IX, ast.IY:
		if op.Name != "" {
			return strings.ToLower(op.Name)
		}
		return ""
	default:
		return op.Name
	}
}

func signedIndexOffset(reg string, d int64) string {
	v := int8(d)
	if v < 0 {
		return fmt.Sprintf("(%s-0x%02X)", reg, -int(v))
	}
	return fmt.Sprintf("(%s+0x%02X)", reg, v)
}

var charEscapes = map[byte]string{0: `\0`, '\r': `\r`, '\n': `\n`, '\t': `\t`}

func escapeChar(b byte) string {
	if e, ok := charEscapes[b]; ok {
		return e
	}
	return string(rune(b))
}

func escapeString(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		sb.WriteString(escapeChar(s[i]))
	}
	return sb.String()
}
