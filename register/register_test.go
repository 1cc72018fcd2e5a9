package register_test

import (
	"testing"

	"github.com/inkwell-systems/luinux/opcode"
	"github.com/inkwell-systems/luinux/register"
	"github.com/stretchr/testify/require"
)

func TestRegister_ReadWrite(t *testing.T) {
	f := register.NewFile()
	r0 := f.Register(opcode.R0)
	r0.Write(0x1234)
	require.Equal(t, uint16(0x1234), r0.Read())
	require.Equal(t, "R0", r0.Name())
}

func TestRegister_OffsetIsOrdinalTimesTwo(t *testing.T) {
	// Writing RFL (ordinal 1) must not disturb RAC's (ordinal 0) bytes:
	// offsets are ordinal*2 apart.
	f := register.NewFile()
	f.Write(opcode.RAC, 0xFFFF)
	f.Write(opcode.RFL, 0x0000)
	require.Equal(t, uint16(0xFFFF), f.Read(opcode.RAC))
	require.Equal(t, uint16(0x0000), f.Read(opcode.RFL))
}

func TestFile_AllRegistersIndependent(t *testing.T) {
	f := register.NewFile()
	for ord := 0; ord < opcode.RegisterCount; ord++ {
		f.Write(ord, uint16(ord*0x101))
	}
	for ord := 0; ord < opcode.RegisterCount; ord++ {
		require.Equal(t, uint16(ord*0x101), f.Read(ord), "ordinal %d", ord)
	}
}

func TestFlags_SetGet(t *testing.T) {
	f := register.NewFile()
	require.False(t, f.GetFlag(opcode.FlagZero))

	f.SetFlag(opcode.FlagZero, true)
	require.True(t, f.GetFlag(opcode.FlagZero))

	f.SetFlag(opcode.FlagCarry, true)
	require.True(t, f.GetFlag(opcode.FlagZero))
	require.True(t, f.GetFlag(opcode.FlagCarry))

	f.SetFlag(opcode.FlagZero, false)
	require.False(t, f.GetFlag(opcode.FlagZero))
	require.True(t, f.GetFlag(opcode.FlagCarry))
}

func TestReset_ClearsAllRegisters(t *testing.T) {
	f := register.NewFile()
	f.Write(opcode.R0, 0xBEEF)
	f.Reset()
	require.Equal(t, uint16(0), f.Read(opcode.R0))
}
