// Package cpu implements litavm's register file: twelve 32-bit polymorphic
// registers addressed by a fixed name table.
package cpu

import (
	"math"
	"strings"
)

// Register indices, in their fixed naming order.
const (
	SP = iota // stack pointer
	PC        // program counter mirror
	R         // return-address slot used by CALL/RET
	H         // heap/after-constants watermark
	A
	B
	C
	D
	I
	J
	K
	U

	NumRegisters = 12
)

// Names is the canonical, lower-case register name table, indexed by
// register number. Register names are matched case-insensitively.
var Names = [NumRegisters]string{
	"$sp", "$pc", "$r", "$h", "$a", "$b", "$c", "$d", "$i", "$j", "$k", "$u",
}

// Register is a single 32-bit polymorphic cell: its bits may be read back
// as any of int32, int8, float32 or an address without conversion, mirroring
// a C union.
type Register struct {
	bits uint32
}

// Int32 reinterprets the register's bits as a signed 32-bit integer.
func (r Register) Int32() int32 { return int32(r.bits) }

// SetInt32 stores v's bit pattern.
func (r *Register) SetInt32(v int32) { r.bits = uint32(v) }

// Int8 reinterprets the register's low byte as a signed 8-bit integer.
func (r Register) Int8() int8 { return int8(r.bits) }

// SetInt8 stores v, zeroing the remaining bits the same way a byte-width
// store does.
func (r *Register) SetInt8(v int8) { r.bits = uint32(uint8(v)) }

// Float reinterprets the register's bits as a float32.
func (r Register) Float() float32 { return math.Float32frombits(r.bits) }

// SetFloat stores v's bit pattern.
func (r *Register) SetFloat(v float32) { r.bits = math.Float32bits(v) }

// Address reinterprets the register's bits as a RAM address.
func (r Register) Address() uint32 { return r.bits }

// SetAddress stores v as the register's value.
func (r *Register) SetAddress(v uint32) { r.bits = v }

// CPU holds the twelve-register file.
type CPU struct {
	Regs [NumRegisters]Register
}

// New returns a zero-initialized register file.
func New() *CPU {
	return &CPU{}
}

// Index returns the 0..11 slot for a register name (case-insensitive), or
// -1 if name does not name a register. Used by the assembler to tell
// register tokens apart from labels, constants, and immediates.
func Index(name string) int {
	lower := strings.ToLower(name)
	for i, n := range Names {
		if n == lower {
			return i
		}
	}
	return -1
}
