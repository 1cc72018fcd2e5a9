package opcode_test

import (
	"testing"

	"github.com/inkwell-systems/luinux/opcode"
)

// TestTable_NoOverlap enumerates every descriptor's occupied bit range in
// the 16-bit opcode+operand space and asserts no address is claimed twice.
// This is the non-overlap invariant from the encoding spec: opcode value
// occupies the high (16 - 4*argCount) bits, and its range in the full
// 16-bit space is [value<<(4*argCount), (value+1)<<(4*argCount)).
func TestTable_NoOverlap(t *testing.T) {
	var claimed [65536]opcode.ID
	for i := range claimed {
		claimed[i] = opcode.Invalid
	}

	for _, d := range opcode.Table {
		shift := uint(opcode.NibbleBits) * uint(d.ArgCount)
		lo := uint32(d.Value) << shift
		hi := (uint32(d.Value) + 1) << shift
		for addr := lo; addr < hi && addr < 65536; addr++ {
			if claimed[addr] != opcode.Invalid {
				t.Fatalf("address 0x%04X claimed by both %s and %s", addr, claimed[addr], d.ID)
			}
			claimed[addr] = d.ID
		}
	}
}

func TestByMnemonic_RoundTrips(t *testing.T) {
	for _, d := range opcode.Table {
		got, ok := opcode.ByMnemonic(d.ID.String())
		if !ok {
			t.Fatalf("mnemonic %s not found", d.ID)
		}
		if got.ID != d.ID || got.Value != d.Value || got.ArgCount != d.ArgCount {
			t.Fatalf("round trip mismatch for %s: got %+v, want %+v", d.ID, got, d)
		}
	}
}

func TestByValue_MatchesID(t *testing.T) {
	for _, d := range opcode.Table {
		got, ok := opcode.ByValue(d.Value)
		if !ok || got.ID != d.ID {
			t.Fatalf("ByValue(0x%X) = %+v, want ID %s", d.Value, got, d.ID)
		}
	}
}

func TestIsSpecial(t *testing.T) {
	tests := []struct {
		id   opcode.ID
		want bool
	}{
		{opcode.SET, true},
		{opcode.SET_M, true},
		{opcode.JMP, true},
		{opcode.ADD, false},
		{opcode.MOV, false},
	}
	for _, tt := range tests {
		if got := opcode.IsSpecial(tt.id); got != tt.want {
			t.Errorf("IsSpecial(%s) = %v, want %v", tt.id, got, tt.want)
		}
	}
}
