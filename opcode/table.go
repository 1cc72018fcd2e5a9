package opcode

// ID identifies an instruction uniquely, independent of its encoded value.
type ID int

const (
	ADD ID = iota
	SUB
	MUL
	DIV
	AND
	OR
	XOR

	ADD_RM
	ADD_MR
	ADD_MM
	SUB_RM
	SUB_MR
	SUB_MM
	MUL_RM
	MUL_MR
	MUL_MM
	DIV_RM
	DIV_MR
	DIV_MM
	AND_RM
	AND_MR
	AND_MM
	OR_RM
	OR_MR
	OR_MM
	XOR_RM
	XOR_MR
	XOR_MM

	JZ
	JNZ
	JZ_RM
	JZ_MR
	JZ_MM
	JNZ_RM
	JNZ_MR
	JNZ_MM
	JE
	JNE

	MOV
	MOV_RM
	MOV_MR
	MOV_MM
	LOAD
	STOR

	TSTB
	TSTB_M

	SETZ
	SETZ_M
	SETO
	SETO_M
	SET
	SET_M
	PUSH
	PUSH_M
	POP
	POP_M
	NOT
	NOT_M
	SHFR
	SHFR_M
	SHFL
	SHFL_M
	INC
	INC_M
	DEC
	DEC_M

	NOP
	STOP
	TRAP
	SWM
	JMP

	Invalid
)

// names gives each ID its mnemonic text, used both for the assembler's
// mnemonic table and for diagnostics.
var names = map[ID]string{
	ADD: "ADD", SUB: "SUB", MUL: "MUL", DIV: "DIV", AND: "AND", OR: "OR", XOR: "XOR",

	ADD_RM: "ADD_RM", ADD_MR: "ADD_MR", ADD_MM: "ADD_MM",
	SUB_RM: "SUB_RM", SUB_MR: "SUB_MR", SUB_MM: "SUB_MM",
	MUL_RM: "MUL_RM", MUL_MR: "MUL_MR", MUL_MM: "MUL_MM",
	DIV_RM: "DIV_RM", DIV_MR: "DIV_MR", DIV_MM: "DIV_MM",
	AND_RM: "AND_RM", AND_MR: "AND_MR", AND_MM: "AND_MM",
	OR_RM: "OR_RM", OR_MR: "OR_MR", OR_MM: "OR_MM",
	XOR_RM: "XOR_RM", XOR_MR: "XOR_MR", XOR_MM: "XOR_MM",

	JZ: "JZ", JNZ: "JNZ",
	JZ_RM: "JZ_RM", JZ_MR: "JZ_MR", JZ_MM: "JZ_MM",
	JNZ_RM: "JNZ_RM", JNZ_MR: "JNZ_MR", JNZ_MM: "JNZ_MM",
	JE: "JE", JNE: "JNE",

	MOV: "MOV", MOV_RM: "MOV_RM", MOV_MR: "MOV_MR", MOV_MM: "MOV_MM",
	LOAD: "LOAD", STOR: "STOR",

	TSTB: "TSTB", TSTB_M: "TSTB_M",

	SETZ: "SETZ", SETZ_M: "SETZ_M",
	SETO: "SETO", SETO_M: "SETO_M",
	SET: "SET", SET_M: "SET_M",
	PUSH: "PUSH", PUSH_M: "PUSH_M",
	POP: "POP", POP_M: "POP_M",
	NOT: "NOT", NOT_M: "NOT_M",
	SHFR: "SHFR", SHFR_M: "SHFR_M",
	SHFL: "SHFL", SHFL_M: "SHFL_M",
	INC: "INC", INC_M: "INC_M",
	DEC: "DEC", DEC_M: "DEC_M",

	NOP: "NOP", STOP: "STOP", TRAP: "TRAP", SWM: "SWM", JMP: "JMP",
}

func (id ID) String() string {
	if s, ok := names[id]; ok {
		return s
	}
	return "INVALID_INSTR"
}

// Descriptor is the static shape of one instruction: its encoded opcode
// value and how many 4-bit register operands follow it.
type Descriptor struct {
	ID       ID
	Value    uint16
	ArgCount int
}

// Table lists every descriptor. Values are laid out so that 3-arg ops
// consume one hex digit of opcode (0x0..0x6), 2-arg ops two digits
// (0x70..0x99), 1-arg three digits (0x760..0x964), 0-arg four digits
// (0x7690..0x7694). Opcode values 0x76 and 0x769 are deliberately left
// unassigned at the 2-arg and 1-arg levels respectively, and 0x96 is left
// unassigned at the 2-arg level: they are the address-space prefixes the
// narrower (more-operand-bits) families below them occupy, so assigning
// them directly would violate non-overlap.
var Table = []Descriptor{
	{ADD, 0x0, 3}, {SUB, 0x1, 3}, {MUL, 0x2, 3}, {DIV, 0x3, 3},
	{AND, 0x4, 3}, {OR, 0x5, 3}, {XOR, 0x6, 3},

	{JZ, 0x70, 2}, {JNZ, 0x71, 2}, {MOV, 0x72, 2}, {LOAD, 0x73, 2},
	{STOR, 0x74, 2}, {TSTB, 0x75, 2},

	{ADD_RM, 0x77, 2}, {ADD_MR, 0x78, 2}, {ADD_MM, 0x79, 2},
	{SUB_RM, 0x7a, 2}, {SUB_MR, 0x7b, 2}, {SUB_MM, 0x7c, 2},
	{MUL_RM, 0x7d, 2}, {MUL_MR, 0x7e, 2}, {MUL_MM, 0x7f, 2},
	{DIV_RM, 0x80, 2}, {DIV_MR, 0x81, 2}, {DIV_MM, 0x82, 2},
	{AND_RM, 0x83, 2}, {AND_MR, 0x84, 2}, {AND_MM, 0x85, 2},
	{OR_RM, 0x86, 2}, {OR_MR, 0x87, 2}, {OR_MM, 0x88, 2},
	{XOR_RM, 0x89, 2}, {XOR_MR, 0x8a, 2}, {XOR_MM, 0x8b, 2},
	{JZ_RM, 0x8c, 2}, {JZ_MR, 0x8d, 2}, {JZ_MM, 0x8e, 2},
	{JNZ_RM, 0x8f, 2}, {JNZ_MR, 0x90, 2}, {JNZ_MM, 0x91, 2},
	{MOV_RM, 0x92, 2}, {MOV_MR, 0x93, 2}, {MOV_MM, 0x94, 2},
	{TSTB_M, 0x95, 2},
	{JE, 0x98, 2}, {JNE, 0x99, 2},

	{SETZ, 0x760, 1}, {SETO, 0x761, 1}, {SET, 0x762, 1}, {PUSH, 0x763, 1},
	{POP, 0x764, 1}, {NOT, 0x765, 1}, {SHFR, 0x766, 1}, {SHFL, 0x767, 1},
	{INC, 0x768, 1},
	{SETZ_M, 0x76a, 1}, {SETO_M, 0x76b, 1}, {SET_M, 0x76c, 1},
	{PUSH_M, 0x76d, 1}, {POP_M, 0x76e, 1}, {NOT_M, 0x76f, 1},
	{SHFR_M, 0x960, 1}, {SHFL_M, 0x961, 1}, {INC_M, 0x962, 1},
	{DEC, 0x963, 1}, {DEC_M, 0x964, 1},

	{NOP, 0x7690, 0}, {STOP, 0x7691, 0}, {TRAP, 0x7692, 0},
	{SWM, 0x7693, 0}, {JMP, 0x7694, 0},
}

// byID, byMnemonic, and byValue are the lookup tables built from Table.
var (
	byID       = make(map[ID]Descriptor, len(Table))
	byMnemonic = make(map[string]Descriptor, len(Table))
	byValue    = make(map[uint16]Descriptor, len(Table))
)

func init() {
	for _, d := range Table {
		byID[d.ID] = d
		byMnemonic[d.ID.String()] = d
		byValue[d.Value] = d
	}
}

// ByMnemonic looks up a descriptor by its source-level mnemonic.
func ByMnemonic(mnemonic string) (Descriptor, bool) {
	d, ok := byMnemonic[mnemonic]
	return d, ok
}

// ByID looks up a descriptor by its ID.
func ByID(id ID) (Descriptor, bool) {
	d, ok := byID[id]
	return d, ok
}

// ByValue looks up a descriptor by its raw opcode value (the bit pattern
// occupying the instruction word's high bits, right-shifted into the low
// bits). Used by the decoder's variable-width probe.
func ByValue(value uint16) (Descriptor, bool) {
	d, ok := byValue[value]
	return d, ok
}

// IsSpecial reports whether a mnemonic takes a trailing literal word
// (SET, SET_M, JMP).
func IsSpecial(id ID) bool {
	return id == SET || id == SET_M || id == JMP
}
