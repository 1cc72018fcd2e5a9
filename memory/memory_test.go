package memory_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/inkwell-systems/luinux/memory"
	"github.com/stretchr/testify/require"
)

func TestReadWrite16_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		addr uint16
		v    uint16
	}{
		{"zero", 0, 0},
		{"mid", 0x1234, 0xBEEF},
		{"high addr wraps low byte", 0xFFFF, 0x00FF},
		{"max value", 0x8000, 0xFFFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := memory.New()
			require.NoError(t, m.Write16(tt.addr, tt.v))
			got, err := m.Read16(tt.addr)
			require.NoError(t, err)
			require.Equal(t, tt.v, got)
		})
	}
}

func TestRead16_BigEndian(t *testing.T) {
	m := memory.New()
	require.NoError(t, m.Write16(0xDEAD, 0xBEEF))
	hi, err := m.Read8(0xDEAD)
	require.NoError(t, err)
	lo, err := m.Read8(0xDEAE)
	require.NoError(t, err)
	require.Equal(t, byte(0xBE), hi)
	require.Equal(t, byte(0xEF), lo)
}

func TestWritePayload(t *testing.T) {
	m := memory.New()
	payload := []byte{0x01, 0x02, 0x03, 0x04}
	require.NoError(t, m.WritePayload(0x10, payload))
	for i, b := range payload {
		got, err := m.Read8(uint16(0x10 + i))
		require.NoError(t, err)
		require.Equal(t, b, got)
	}
}

func TestWritePayload_OutOfRange(t *testing.T) {
	m := memory.New()
	err := m.WritePayload(0xFFFE, []byte{1, 2, 3, 4})
	require.Error(t, err)
}

func TestNVMemory_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nvram.bin")

	nv, err := memory.NewNVMemory(path)
	require.NoError(t, err)
	require.NoError(t, nv.Write16(0x100, 0xCAFE))
	require.NoError(t, nv.Flush())

	reopened, err := memory.NewNVMemory(path)
	require.NoError(t, err)
	got, err := reopened.Read16(0x100)
	require.NoError(t, err)
	require.Equal(t, uint16(0xCAFE), got)
}

func TestNVMemory_ShorterFileZeroPadded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.bin")
	require.NoError(t, os.WriteFile(path, []byte{0xAA, 0xBB}, 0o644))

	nv, err := memory.NewNVMemory(path)
	require.NoError(t, err)

	b, err := nv.Read8(0)
	require.NoError(t, err)
	require.Equal(t, byte(0xAA), b)

	tail, err := nv.Read8(memory.Size - 1)
	require.NoError(t, err)
	require.Equal(t, byte(0), tail)
}

func TestNVMemory_MissingFileStartsZeroed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.bin")
	nv, err := memory.NewNVMemory(path)
	require.NoError(t, err)
	b, err := nv.Read8(0)
	require.NoError(t, err)
	require.Equal(t, byte(0), b)
}
