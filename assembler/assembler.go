// Package assembler implements the two-pass textual assembler: source
// mnemonics in, a big-endian byte vector out, ready to load as program
// memory.
package assembler

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/inkwell-systems/luinux/lerr"
	"github.com/inkwell-systems/luinux/opcode"
)

// Assemble compiles source text into a byte vector.
//
// Pass one walks every line computing each instruction's byte size (2 or
// 4, depending on whether the opcode carries a trailing literal word)
// and records label declarations against the running offset.
// Pass two walks the same lines again, this time resolving literals
// (label references now have real addresses) and emitting the encoded
// bytes.
func Assemble(source string) ([]byte, error) {
	symbols := newSymbolTable()
	if err := firstPass(source, symbols); err != nil {
		return nil, err
	}
	return secondPass(source, symbols)
}

// DumpLabels reports every declared label's byte offset, for the
// assembler CLI's --dump-labels diagnostic. It runs pass one only, which
// does not parse literals, so a bad literal further down does not stop
// it. An unknown mnemonic does fail pass one, and DumpLabels then returns
// the error and no labels.
func DumpLabels(source string) (map[string]uint16, error) {
	symbols := newSymbolTable()
	if err := firstPass(source, symbols); err != nil {
		return nil, err
	}
	out := make(map[string]uint16, len(symbols.offsets))
	for name, addr := range symbols.offsets {
		out[name] = addr
	}
	return out, nil
}

func firstPass(source string, symbols *symbolTable) error {
	offset := uint16(0)
	lineNo := 0
	sc := bufio.NewScanner(strings.NewReader(source))
	for sc.Scan() {
		lineNo++
		trimmed := strings.TrimSpace(stripComment(sc.Text()))
		if isBlank(trimmed) {
			continue
		}
		if name, ok := labelDecl(trimmed); ok {
			symbols.define(name, offset)
			continue
		}
		size, err := instructionSize(trimmed, lineNo)
		if err != nil {
			return err
		}
		offset += size
	}
	return sc.Err()
}

func secondPass(source string, symbols *symbolTable) ([]byte, error) {
	var out []byte
	offset := uint16(0)
	lineNo := 0
	sc := bufio.NewScanner(strings.NewReader(source))
	for sc.Scan() {
		lineNo++
		trimmed := strings.TrimSpace(stripComment(sc.Text()))
		if isBlank(trimmed) {
			continue
		}
		if _, ok := labelDecl(trimmed); ok {
			continue
		}
		if rewritten, ok := rewriteGoto(trimmed, int(offset)); ok {
			trimmed = rewritten
		}
		bytes, err := encodeLine(trimmed, lineNo, symbols)
		if err != nil {
			return nil, err
		}
		out = append(out, bytes...)
		offset += uint16(len(bytes))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// instructionSize reports how many bytes a non-label, non-blank line
// will encode to, without resolving any of its operands: 4 bytes for any
// mnemonic carrying a trailing literal word (SET, SET_M, JMP, and the
// goto:X macro they expand from), 2 otherwise.
func instructionSize(trimmed string, lineNo int) (uint16, error) {
	if gotoRe.MatchString(trimmed) {
		return 4, nil
	}
	tokens := tokenize(trimmed)
	if len(tokens) == 0 {
		return 0, nil
	}
	desc, ok := opcode.ByMnemonic(tokens[0])
	if !ok {
		return 0, lerr.AtLine(lerr.UnknownMnemonic, lineNo, "unknown mnemonic "+quote(tokens[0]))
	}
	if opcode.IsSpecial(desc.ID) {
		return 4, nil
	}
	return 2, nil
}

// encodeLine parses and encodes a single (already goto-expanded)
// instruction line into its opcode word, plus a trailing literal word
// for SET/SET_M/JMP.
func encodeLine(trimmed string, lineNo int, symbols *symbolTable) ([]byte, error) {
	tokens := tokenize(trimmed)
	if len(tokens) == 0 {
		return nil, nil
	}
	mnemonic, operands := tokens[0], tokens[1:]

	desc, ok := opcode.ByMnemonic(mnemonic)
	if !ok {
		return nil, lerr.AtLine(lerr.UnknownMnemonic, lineNo, "unknown mnemonic "+quote(mnemonic))
	}

	switch desc.ID {
	case opcode.JMP:
		if len(operands) != 1 {
			return nil, lerr.AtLine(lerr.TooManyOperands, lineNo, "JMP takes exactly one literal operand")
		}
		lit, err := parseLiteral(operands[0], lineNo, symbols)
		if err != nil {
			return nil, err
		}
		return wordsToBytes(encodeWord(desc, nil), lit), nil

	case opcode.SET, opcode.SET_M:
		if len(operands) != 2 {
			return nil, lerr.AtLine(lerr.TooManyOperands, lineNo, desc.ID.String()+" takes one register and one literal")
		}
		ord, err := registerOrdinal(operands[0], lineNo)
		if err != nil {
			return nil, err
		}
		lit, err := parseLiteral(operands[1], lineNo, symbols)
		if err != nil {
			return nil, err
		}
		return wordsToBytes(encodeWord(desc, []int{ord}), lit), nil
	}

	if len(operands) != desc.ArgCount {
		return nil, lerr.AtLine(lerr.TooManyOperands, lineNo,
			fmt.Sprintf("%s takes %d register operand(s), got %d", desc.ID, desc.ArgCount, len(operands)))
	}
	ordinals := make([]int, desc.ArgCount)
	for i, tok := range operands {
		ord, err := registerOrdinal(tok, lineNo)
		if err != nil {
			return nil, err
		}
		ordinals[i] = ord
	}
	return wordsToBytes(encodeWord(desc, ordinals)), nil
}

func registerOrdinal(tok string, lineNo int) (int, error) {
	ord, ok := opcode.Registers[tok]
	if !ok {
		return 0, lerr.AtLine(lerr.UnknownRegister, lineNo, "unknown register "+quote(tok))
	}
	return ord, nil
}

// encodeWord packs a descriptor's value and register operands into one
// 16-bit instruction word, most-significant operand first. Each ordinal
// is masked to its low 4 bits before packing: a register whose ordinal
// doesn't fit a nibble (R11 = 16) silently aliases to RAC in the packed
// field, matching the reference processor's `& 0xf` operand extraction.
func encodeWord(desc opcode.Descriptor, ordinals []int) uint16 {
	word := desc.Value << (opcode.NibbleBits * desc.ArgCount)
	for i, ord := range ordinals {
		shift := opcode.NibbleBits * (len(ordinals) - 1 - i)
		word |= uint16(ord&0xF) << shift
	}
	return word
}

func wordsToBytes(words ...uint16) []byte {
	out := make([]byte, 0, len(words)*2)
	for _, w := range words {
		out = append(out, byte(w>>8), byte(w))
	}
	return out
}
