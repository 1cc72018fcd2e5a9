// Package register implements the processor's 17 named 16-bit registers.
// Each register's storage lives in a shared 256-byte internal memory
// block, addressed by ordinal*2 — not a flat array of words — so that
// instruction semantics addressing "the memory a register points at" and
// plain register reads go through one mechanism.
package register

import "github.com/inkwell-systems/luinux/opcode"

// internalSize is the size of the byte block backing all 17 registers.
const internalSize = 256

// Register is a handle onto one register: its ordinal plus a reference to
// the shared internal memory. It is deliberately small and copyable so
// instruction semantics can pass it around like a value.
type Register struct {
	Ordinal int
	file    *File
}

// Read returns the register's current big-endian 16-bit value.
func (r Register) Read() uint16 {
	off := r.Ordinal * 2
	return uint16(r.file.internal[off])<<8 | uint16(r.file.internal[off+1])
}

// Write stores v as the register's big-endian 16-bit value.
func (r Register) Write(v uint16) {
	off := r.Ordinal * 2
	r.file.internal[off] = byte(v >> 8)
	r.file.internal[off+1] = byte(v)
}

// Name returns the register's canonical mnemonic.
func (r Register) Name() string {
	return opcode.RegisterNames[r.Ordinal]
}

// File is the processor's register file: 17 registers backed by a single
// 256-byte internal memory block.
type File struct {
	internal [internalSize]byte
}

// NewFile returns a File with every register zeroed.
func NewFile() *File {
	return &File{}
}

// Register returns a handle to the register at the given ordinal.
func (f *File) Register(ordinal int) Register {
	return Register{Ordinal: ordinal, file: f}
}

// Read reads a register's value directly by ordinal.
func (f *File) Read(ordinal int) uint16 {
	return f.Register(ordinal).Read()
}

// Write stores a register's value directly by ordinal.
func (f *File) Write(ordinal int, v uint16) {
	f.Register(ordinal).Write(v)
}

// Reset zero-fills the internal memory block, clearing every register.
func (f *File) Reset() {
	for i := range f.internal {
		f.internal[i] = 0
	}
}
