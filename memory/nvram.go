package memory

import (
	"fmt"
	"os"

	"github.com/inkwell-systems/luinux/lerr"
)

// NVMemory is a Memory whose contents mirror a file on disk: loaded
// verbatim at construction (zero-filling any shortfall), and written back
// on Flush.
type NVMemory struct {
	Memory
	path string
}

// NewNVMemory loads path's contents (if any) into a new 64KiB memory.
// A file shorter than Size is zero-padded; a missing file starts
// zero-filled and is created on the first Flush.
func NewNVMemory(path string) (*NVMemory, error) {
	nv := &NVMemory{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nv, nil
		}
		return nil, lerr.Wrap(lerr.IoError, fmt.Sprintf("loading nvram file %q", path), err)
	}
	if len(data) > Size {
		data = data[:Size]
	}
	copy(nv.data[:], data)
	return nv, nil
}

// Flush writes the current contents to disk, then reloads them — matching
// the reference implementation's close/reopen cycle so a later read
// observes exactly what was written, not an in-memory mirror that could
// drift from the file.
func (nv *NVMemory) Flush() error {
	if err := os.WriteFile(nv.path, nv.data[:], 0o644); err != nil {
		return lerr.Wrap(lerr.IoError, fmt.Sprintf("flushing nvram file %q", nv.path), err)
	}
	reloaded, err := NewNVMemory(nv.path)
	if err != nil {
		return err
	}
	nv.data = reloaded.data
	return nil
}

// Path returns the backing file path.
func (nv *NVMemory) Path() string {
	return nv.path
}
