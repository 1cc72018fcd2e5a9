package cpu

import (
	"fmt"

	"github.com/inkwell-systems/luinux/lerr"
	"github.com/inkwell-systems/luinux/opcode"
)

// probeShifts is tried in ascending order: shift=0 (the whole word,
// a 0-arg candidate) first, down to shift=12 (a single top nibble,
// a 3-arg candidate) last. Trying the widest opcode field first is what
// keeps e.g. SET's 0x762 from being mistaken for a narrower family.
var probeShifts = [4]int{0, 4, 8, 12}

// decode fetches the next instruction word (and, for SET/SET_M/JMP, the
// trailing literal word) and fills the decode scratch.
func (p *Processor) decode() error {
	if p.decodedID != opcode.Invalid || len(p.operandRegs) != 0 {
		return lerr.New(lerr.CycleUnclean, "decode called with unfinished cycle scratch")
	}
	p.phase = PhaseDecode

	w, err := p.fetch()
	if err != nil {
		return err
	}

	desc, err := decodeWord(w)
	if err != nil {
		return err
	}

	ordinals := make([]int, desc.ArgCount)
	residue := w
	for i := desc.ArgCount - 1; i >= 0; i-- {
		ordinals[i] = int(residue & 0xF)
		residue >>= 4
	}
	if residue != desc.Value {
		return lerr.New(lerr.DecodeMismatch,
			fmt.Sprintf("residue 0x%X does not match opcode value 0x%X for %s", residue, desc.Value, desc.ID))
	}

	p.decodedID = desc.ID
	p.operandRegs = ordinals

	if opcode.IsSpecial(desc.ID) {
		lit, err := p.fetch()
		if err != nil {
			return err
		}
		p.pendingLiteral = lit
		p.hasPendingLiteral = true
	}
	return nil
}

// decodeWord recovers a word's descriptor without knowing its arity in
// advance. ADD's canonical value is 0x0, so any word whose high nibble is
// zero is forced to ADD directly. The probe below would reach ADD for
// such words as well, because every candidate it finds is re-checked
// against its own ArgCount-derived shift before being accepted.
func decodeWord(w uint16) (opcode.Descriptor, error) {
	if w>>12 == 0 {
		desc, _ := opcode.ByID(opcode.ADD)
		return desc, nil
	}

	for _, shift := range probeShifts {
		candidate := w >> shift
		desc, ok := opcode.ByValue(candidate)
		if !ok {
			continue
		}
		requiredShift := opcode.NibbleBits * desc.ArgCount
		if w>>requiredShift != desc.Value {
			continue
		}
		return desc, nil
	}
	return opcode.Descriptor{}, lerr.New(lerr.InvalidInstruction, fmt.Sprintf("no opcode matches word 0x%04X", w))
}
