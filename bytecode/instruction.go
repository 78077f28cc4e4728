package bytecode

// Instruction is a single 32-bit encoded VM instruction word.
type Instruction uint32

// Bit layout constants, MSB to LSB: 6-bit opcode, 5-bit arg1, 21-bit arg2.
const (
	InstructionSize = 32
	OpcodeSize      = 6
	OpcodeShift     = InstructionSize - OpcodeSize
	OpcodeMask      = 0x3f

	Arg1Size     = 5
	Arg1Shift    = 21
	Arg1Mask     = 0x1f
	Arg1AddrMask = 0x10 // bit 4: address-mode flag
	Arg1ValMask  = 0x0f // bits 3..0: register index

	Arg2Size    = 21
	Arg2Mask    = 0x1fffff
	Arg2RegMask = 0x100000 // bit 20: register-mode flag
	Arg2AddrMask = 0x080000 // bit 19 (register mode): address-mode flag
	Arg2ImmMask = 0x080000 // bit 19 (non-register mode): immediate flag
	Arg2ValMask = 0x07ffff // bits 18..0: value / register index / immediate / constant index

	// JmpValueMask covers the low 24 bits used as a raw jump target by
	// JMP and CALL, bypassing the arg1/arg2 mode bits entirely.
	JmpValueMask = 0xffffff

	// MaxImmediateValue is the largest value the assembler accepts for an
	// immediate operand (2^19 - 1). Arg2Immediate sign-extends bit 18, so
	// immediates from 0x40000 up decode as negative values.
	MaxImmediateValue = 0x7ffff
)

// Opcode extracts the 6-bit opcode from an encoded instruction.
func (instr Instruction) Opcode() Opcode {
	return Opcode((uint32(instr) >> OpcodeShift) & OpcodeMask)
}

// IsArg1Addr reports whether arg1's address-mode flag is set.
func (instr Instruction) IsArg1Addr() bool {
	return ((uint32(instr) >> Arg1Shift) & Arg1AddrMask) != 0
}

// Arg1Reg returns arg1's register index.
func (instr Instruction) Arg1Reg() int {
	return int((uint32(instr) >> Arg1Shift) & Arg1ValMask)
}

// IsArg2Reg reports whether arg2 is in register mode.
func (instr Instruction) IsArg2Reg() bool {
	return (uint32(instr) & Arg2RegMask) != 0
}

// IsArg2Addr reports whether arg2's address-mode flag is set. Only
// meaningful when IsArg2Reg is true: in non-register mode this same bit is
// the immediate-mode flag (see IsArg2Imm).
func (instr Instruction) IsArg2Addr() bool {
	return (uint32(instr) & Arg2AddrMask) != 0
}

// IsArg2Imm reports whether arg2's immediate-mode flag is set. Only
// meaningful when IsArg2Reg is false.
func (instr Instruction) IsArg2Imm() bool {
	return (uint32(instr) & Arg2ImmMask) != 0
}

// Arg2Value returns arg2's raw 19-bit value field: a register index,
// sign-bearing immediate magnitude, or constant-pool index depending on the
// mode flags.
func (instr Instruction) Arg2Value() uint32 {
	return uint32(instr) & Arg2ValMask
}

// Arg2Immediate sign-extends arg2's 19-bit value field as a signed
// immediate.
func (instr Instruction) Arg2Immediate() int32 {
	v := instr.Arg2Value()
	const signBit = 1 << 18
	if v&signBit != 0 {
		return int32(v | ^uint32(Arg2ValMask))
	}
	return int32(v)
}

// JumpTarget extracts the raw 24-bit jump target used by JMP and CALL.
func (instr Instruction) JumpTarget() uint32 {
	return uint32(instr) & JmpValueMask
}

// EncodeOpcode returns the base instruction word with only the opcode
// field set.
func EncodeOpcode(op Opcode) Instruction {
	return Instruction(uint32(op) << OpcodeShift)
}

// EncodeArg1 encodes arg1's register index and address-mode flag, already
// shifted into bits 25..21.
func EncodeArg1(reg int, addr bool) Instruction {
	v := uint32(reg) & Arg1ValMask
	if addr {
		v |= Arg1AddrMask
	}
	return Instruction(v << Arg1Shift)
}

// EncodeArg2Register encodes arg2 as a register operand, optionally in
// address mode.
func EncodeArg2Register(reg int, addr bool) Instruction {
	v := uint32(Arg2RegMask) | (uint32(reg) & Arg2ValMask)
	if addr {
		v |= Arg2AddrMask
	}
	return Instruction(v)
}

// EncodeArg2Immediate encodes arg2 as an immediate value (or a resolved
// label address, which uses the same mode bits).
func EncodeArg2Immediate(value uint32) Instruction {
	return Instruction(Arg2ImmMask | (value & Arg2ValMask))
}

// EncodeArg2ConstIndex encodes arg2 as a constant-pool index: neither the
// register-mode nor the immediate-mode flag is set.
func EncodeArg2ConstIndex(index uint32) Instruction {
	return Instruction(index & Arg2ValMask)
}

// EncodeJump encodes a raw 24-bit jump target for JMP/CALL.
func EncodeJump(target uint32) Instruction {
	return Instruction(target & JmpValueMask)
}
