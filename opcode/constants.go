// Package opcode holds the static encoding tables shared by the assembler
// and the processor: mnemonic-to-opcode descriptors, the inverse
// value-to-id decode table, register ordinals, and flag bit masks.
package opcode

// Register ordinals. These are significant: they appear as 4-bit nibbles
// in encoded instruction words and select the register's byte offset
// (ordinal*2) inside the processor's internal memory block.
const (
	RAC = iota
	RFL
	RIP
	RSP
	RBP
	R0
	R1
	R2
	R3
	R4
	R5
	R6
	R7
	R8
	R9
	R10
	R11

	RegisterCount
)

// RegisterNames maps a register ordinal to its canonical mnemonic name.
var RegisterNames = [RegisterCount]string{
	RAC: "RAC", RFL: "RFL", RIP: "RIP", RSP: "RSP", RBP: "RBP",
	R0: "R0", R1: "R1", R2: "R2", R3: "R3", R4: "R4", R5: "R5",
	R6: "R6", R7: "R7", R8: "R8", R9: "R9", R10: "R10", R11: "R11",
}

// Registers maps a register's source name to its ordinal, for the assembler.
var Registers = map[string]int{
	"RAC": RAC, "RFL": RFL, "RIP": RIP, "RSP": RSP, "RBP": RBP,
	"R0": R0, "R1": R1, "R2": R2, "R3": R3, "R4": R4, "R5": R5,
	"R6": R6, "R7": R7, "R8": R8, "R9": R9, "R10": R10, "R11": R11,
}

// Flag is a bit position within the RFL flags register.
type Flag uint16

// Flag bit masks for RFL.
const (
	FlagZero          Flag = 0x0001
	FlagCarry         Flag = 0x0002
	FlagNegative      Flag = 0x0004
	FlagTrap          Flag = 0x0008
	FlagReserved      Flag = 0x0010
	FlagStackOverflow Flag = 0x0020
	FlagException     Flag = 0x0040
	FlagMemory        Flag = 0x0080
)

// StackTop is RSP's initial value: 0xFE00, 512 bytes below the end of
// the 16-bit address space.
const StackTop uint16 = 0x10000 - 512

// NibbleBits is the width of one packed register operand.
const NibbleBits = 4
