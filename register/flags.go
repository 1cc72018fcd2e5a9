package register

import "github.com/inkwell-systems/luinux/opcode"

// GetFlag reports whether the given bit is set in RFL.
func (f *File) GetFlag(flag opcode.Flag) bool {
	return f.Read(opcode.RFL)&uint16(flag) != 0
}

// SetFlag sets or clears the given bit in RFL.
func (f *File) SetFlag(flag opcode.Flag, set bool) {
	v := f.Read(opcode.RFL)
	if set {
		v |= uint16(flag)
	} else {
		v &^= uint16(flag)
	}
	f.Write(opcode.RFL, v)
}
