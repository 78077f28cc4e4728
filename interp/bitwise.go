package interp

import (
	"litavm/bytecode"
)

// execBitwiseInt implements ORI/ANDI/XORI/NOTI/SZRLI/SRLI/SLLI.
//
// OR/AND/XOR: arg1 <- arg1 op arg2. NOT: arg1 <- ~arg2 (involutive, applying
// it twice is the identity). SZRL is a logical (zero-fill) right shift,
// SRL is an arithmetic (sign-preserving) right shift, SLL is a left shift;
// all three shift arg1 by the arg2 operand's low 5 bits.
func (vm *VM) execBitwiseInt(instr bytecode.Instruction, code codeConstants, op bytecode.Opcode) error {
	if op == bytecode.NOTI {
		b, err := vm.getArg2Int32(instr, code)
		if err != nil {
			return err
		}
		return vm.setArg1Int32(instr, ^b)
	}

	a, err := vm.getArg1Int32(instr)
	if err != nil {
		return err
	}
	b, err := vm.getArg2Int32(instr, code)
	if err != nil {
		return err
	}

	var result int32
	switch op {
	case bytecode.ORI:
		result = a | b
	case bytecode.ANDI:
		result = a & b
	case bytecode.XORI:
		result = a ^ b
	case bytecode.SZRLI:
		result = int32(uint32(a) >> (uint(b) & 0x1f))
	case bytecode.SRLI:
		result = a >> (uint(b) & 0x1f)
	case bytecode.SLLI:
		result = a << (uint(b) & 0x1f)
	}

	return vm.setArg1Int32(instr, result)
}

// execBitwiseByte implements ORB/ANDB/XORB/NOTB/SZRLB/SRLB/SLLB, analogous
// to execBitwiseInt but over the 8-bit width; shift amounts are masked to
// the low 3 bits (0..7).
func (vm *VM) execBitwiseByte(instr bytecode.Instruction, code codeConstants, op bytecode.Opcode) error {
	if op == bytecode.NOTB {
		b, err := vm.getArg2Int8(instr, code)
		if err != nil {
			return err
		}
		return vm.setArg1Int8(instr, ^b)
	}

	a, err := vm.getArg1Int8(instr)
	if err != nil {
		return err
	}
	b, err := vm.getArg2Int8(instr, code)
	if err != nil {
		return err
	}

	var result int8
	switch op {
	case bytecode.ORB:
		result = a | b
	case bytecode.ANDB:
		result = a & b
	case bytecode.XORB:
		result = a ^ b
	case bytecode.SZRLB:
		result = int8(uint8(a) >> (uint(b) & 0x7))
	case bytecode.SRLB:
		result = a >> (uint(b) & 0x7)
	case bytecode.SLLB:
		result = a << (uint(b) & 0x7)
	}

	return vm.setArg1Int8(instr, result)
}
