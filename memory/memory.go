// Package memory implements the processor's byte-addressable 64KiB
// address spaces: plain SRAM and a file-backed, persistent NVRAM variant.
package memory

import (
	"fmt"

	"github.com/inkwell-systems/luinux/lerr"
)

// Size is the width of the 16-bit address space every memory in this
// package exposes.
const Size = 1 << 16

// Memory is a contiguous, byte-addressable 64KiB array supporting 8-bit
// and big-endian 16-bit access.
type Memory struct {
	data [Size]byte
}

// New returns a zero-filled Memory.
func New() *Memory {
	return &Memory{}
}

// Read8 returns the byte at addr.
func (m *Memory) Read8(addr uint16) (byte, error) {
	return m.data[addr], nil
}

// Write8 stores v at addr.
func (m *Memory) Write8(addr uint16, v byte) error {
	m.data[addr] = v
	return nil
}

// Read16 reads a big-endian 16-bit word: (read8(addr)<<8) | read8(addr+1).
func (m *Memory) Read16(addr uint16) (uint16, error) {
	hi, err := m.Read8(addr)
	if err != nil {
		return 0, err
	}
	lo, err := m.Read8(addr + 1)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// Write16 stores v as a big-endian 16-bit word.
func (m *Memory) Write16(addr uint16, v uint16) error {
	if err := m.Write8(addr, byte(v>>8)); err != nil {
		return err
	}
	return m.Write8(addr+1, byte(v))
}

// WritePayload bulk-copies data into memory starting at addr.
func (m *Memory) WritePayload(addr uint16, data []byte) error {
	if int(addr)+len(data) > Size {
		return lerr.New(lerr.OutOfRange, fmt.Sprintf("payload of %d bytes at 0x%04X exceeds memory size", len(data), addr))
	}
	copy(m.data[addr:], data)
	return nil
}

// Bytes returns the full backing array as a slice, for dumping/inspection.
func (m *Memory) Bytes() []byte {
	return m.data[:]
}

// Reset zero-fills the memory.
func (m *Memory) Reset() {
	for i := range m.data {
		m.data[i] = 0
	}
}
