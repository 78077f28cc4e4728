package interp

import (
	"litavm/bytecode"
	"litavm/vmerr"
)

// execArithInt implements ADDI/SUBI/MULI/DIVI/MODI: arg1 <- arg1 op arg2.
func (vm *VM) execArithInt(instr bytecode.Instruction, code codeConstants, op bytecode.Opcode, addr uint32) error {
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
	case bytecode.ADDI:
		result = a + b
	case bytecode.SUBI:
		result = a - b
	case bytecode.MULI:
		result = a * b
	case bytecode.DIVI:
		if b == 0 {
			return &vmerr.DivideByZeroError{PC: addr}
		}
		result = a / b
	case bytecode.MODI:
		if b == 0 {
			return &vmerr.DivideByZeroError{PC: addr}
		}
		result = a % b
	}

	return vm.setArg1Int32(instr, result)
}

// execArithByte implements ADDB/SUBB/MULB/DIVB/MODB.
func (vm *VM) execArithByte(instr bytecode.Instruction, code codeConstants, op bytecode.Opcode, addr uint32) error {
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
	case bytecode.ADDB:
		result = a + b
	case bytecode.SUBB:
		result = a - b
	case bytecode.MULB:
		result = a * b
	case bytecode.DIVB:
		if b == 0 {
			return &vmerr.DivideByZeroError{PC: addr}
		}
		result = a / b
	case bytecode.MODB:
		if b == 0 {
			return &vmerr.DivideByZeroError{PC: addr}
		}
		result = a % b
	}

	return vm.setArg1Int8(instr, result)
}

// execArithFloat implements ADDF/SUBF/MULF/DIVF/MODF. MODF truncates both
// operands to int32 before taking the remainder and casts the result back
// to float32.
func (vm *VM) execArithFloat(instr bytecode.Instruction, code codeConstants, op bytecode.Opcode, addr uint32) error {
	a, err := vm.getArg1Float(instr)
	if err != nil {
		return err
	}
	b, err := vm.getArg2Float(instr, code)
	if err != nil {
		return err
	}

	var result float32
	switch op {
	case bytecode.ADDF:
		result = a + b
	case bytecode.SUBF:
		result = a - b
	case bytecode.MULF:
		result = a * b
	case bytecode.DIVF:
		if b == 0 {
			return &vmerr.DivideByZeroError{PC: addr}
		}
		result = a / b
	case bytecode.MODF:
		ib := int32(b)
		if ib == 0 {
			return &vmerr.DivideByZeroError{PC: addr}
		}
		result = float32(int32(a) % ib)
	}

	return vm.setArg1Float(instr, result)
}
