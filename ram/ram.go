// Package ram implements litavm's flat, bounds-checked byte buffer.
//
// All multi-byte values are stored little-endian; reads and writes use the
// same representation so a store followed by a read of the same address and
// type always round-trips.
package ram

import (
	"encoding/binary"
	"math"

	"litavm/vmerr"
)

// RAM is a contiguous byte buffer with typed, bounds-checked load/store.
type RAM struct {
	mem []byte
}

// New allocates a RAM buffer of the given size in bytes.
func New(size int) *RAM {
	return &RAM{mem: make([]byte, size)}
}

// Size returns the RAM buffer's size in bytes.
func (r *RAM) Size() int {
	return len(r.mem)
}

// checkRange validates that addr >= 0 and addr+width < size, mirroring the
// original CHECK_RANGE macro's inclusive-upper-bound check: an access whose
// end lands exactly on the buffer size is rejected, so the last byte of the
// buffer is never accessible.
func (r *RAM) checkRange(addr, width int) error {
	end := addr + width
	if addr < 0 || end >= len(r.mem) {
		return vmerr.NewAccessViolationError(addr, end)
	}
	return nil
}

// StoreBytes copies len(buf) bytes from buf into RAM starting at addr.
func (r *RAM) StoreBytes(addr int, buf []byte) error {
	if err := r.checkRange(addr, len(buf)); err != nil {
		return err
	}
	copy(r.mem[addr:addr+len(buf)], buf)
	return nil
}

// StoreString writes the given bytes followed by a trailing NUL.
func (r *RAM) StoreString(addr int, value []byte) error {
	if err := r.checkRange(addr, len(value)); err != nil {
		return err
	}
	copy(r.mem[addr:addr+len(value)], value)
	r.mem[addr+len(value)] = 0
	return nil
}

// StoreInt32 writes a little-endian int32 at addr.
func (r *RAM) StoreInt32(addr int, value int32) error {
	if err := r.checkRange(addr, 4); err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(r.mem[addr:addr+4], uint32(value))
	return nil
}

// StoreFloat writes a little-endian float32 at addr.
func (r *RAM) StoreFloat(addr int, value float32) error {
	if err := r.checkRange(addr, 4); err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(r.mem[addr:addr+4], math.Float32bits(value))
	return nil
}

// StoreInt8 writes a single signed byte at addr.
func (r *RAM) StoreInt8(addr int, value int8) error {
	if err := r.checkRange(addr, 1); err != nil {
		return err
	}
	r.mem[addr] = byte(value)
	return nil
}

// ReadBytes reads n bytes starting at addr.
func (r *RAM) ReadBytes(addr, n int) ([]byte, error) {
	if err := r.checkRange(addr, n); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, r.mem[addr:addr+n])
	return out, nil
}

// ReadInt32 reads a little-endian int32 from addr.
func (r *RAM) ReadInt32(addr int) (int32, error) {
	if err := r.checkRange(addr, 4); err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(r.mem[addr : addr+4])), nil
}

// ReadFloat reads a little-endian float32 from addr.
func (r *RAM) ReadFloat(addr int) (float32, error) {
	if err := r.checkRange(addr, 4); err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(r.mem[addr : addr+4])), nil
}

// ReadInt8 reads a single signed byte from addr.
func (r *RAM) ReadInt8(addr int) (int8, error) {
	if err := r.checkRange(addr, 1); err != nil {
		return 0, err
	}
	return int8(r.mem[addr]), nil
}

// ReadCString reads bytes starting at addr up to (not including) the first
// NUL byte. The interpreter does not call it: programs print strings with
// PRINTC, walking them byte by byte via register-as-address arithmetic.
func (r *RAM) ReadCString(addr int) (string, error) {
	end := addr
	for {
		if err := r.checkRange(end, 1); err != nil {
			return "", err
		}
		if r.mem[end] == 0 {
			break
		}
		end++
	}
	return string(r.mem[addr:end]), nil
}
