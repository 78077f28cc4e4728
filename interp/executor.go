package interp

import (
	"fmt"

	"litavm/bytecode"
	"litavm/cpu"
	"litavm/vmerr"
)

// step decodes and executes a single instruction, returning the next pc.
// pc here is already past the fetched instruction (the fetch/increment
// happens in Execute), matching a "fetch, then pc++" order.
func (vm *VM) step(bc *bytecode.Bytecode, instr bytecode.Instruction, pc uint32) (uint32, error) {
	code := bytecodeConstants{code: bc}
	op := instr.Opcode()

	if vm.Trace != nil {
		fmt.Fprintf(vm.Trace, "%04d  %s\n", pc-1, op)
	}

	switch op {
	case bytecode.NOOP:
		return pc, nil

	case bytecode.JMP:
		return instr.JumpTarget(), nil

	case bytecode.CALL:
		vm.CPU.Regs[cpu.R].SetAddress(pc)
		return instr.JumpTarget(), nil

	case bytecode.RET:
		return vm.CPU.Regs[cpu.R].Address(), nil

	case bytecode.MOVI:
		v, err := vm.getArg2Int32(instr, code)
		if err != nil {
			return 0, err
		}
		if err := vm.setArg1Int32(instr, v); err != nil {
			return 0, err
		}
		return pc, nil

	case bytecode.MOVF:
		v, err := vm.getArg2Float(instr, code)
		if err != nil {
			return 0, err
		}
		if err := vm.setArg1Float(instr, v); err != nil {
			return 0, err
		}
		return pc, nil

	case bytecode.MOVB:
		v, err := vm.getArg2Int8(instr, code)
		if err != nil {
			return 0, err
		}
		if err := vm.setArg1Int8(instr, v); err != nil {
			return 0, err
		}
		return pc, nil

	case bytecode.LDCI:
		v, err := vm.getConstInt32(instr, code)
		if err != nil {
			return 0, err
		}
		vm.CPU.Regs[instr.Arg1Reg()].SetInt32(v)
		return pc, nil

	case bytecode.LDCB:
		v, err := vm.getConstInt8(instr, code)
		if err != nil {
			return 0, err
		}
		vm.CPU.Regs[instr.Arg1Reg()].SetInt8(v)
		return pc, nil

	case bytecode.LDCF:
		v, err := vm.getConstFloat(instr, code)
		if err != nil {
			return 0, err
		}
		vm.CPU.Regs[instr.Arg1Reg()].SetFloat(v)
		return pc, nil

	case bytecode.LDCA:
		vm.CPU.Regs[instr.Arg1Reg()].SetAddress(getConstAddr(instr, code))
		return pc, nil

	case bytecode.PUSHI:
		v, err := vm.getArg2Int32(instr, code)
		if err != nil {
			return 0, err
		}
		if err := vm.pushInt32(v); err != nil {
			return 0, err
		}
		return pc, nil

	case bytecode.PUSHF:
		v, err := vm.getArg2Float(instr, code)
		if err != nil {
			return 0, err
		}
		if err := vm.pushFloat(v); err != nil {
			return 0, err
		}
		return pc, nil

	case bytecode.PUSHB:
		v, err := vm.getArg2Int8(instr, code)
		if err != nil {
			return 0, err
		}
		if err := vm.pushInt8(v); err != nil {
			return 0, err
		}
		return pc, nil

	case bytecode.POPI:
		v, err := vm.popInt32()
		if err != nil {
			return 0, err
		}
		if err := vm.setArg2Int32(instr, v); err != nil {
			return 0, err
		}
		return pc, nil

	case bytecode.POPF:
		v, err := vm.popFloat()
		if err != nil {
			return 0, err
		}
		if err := vm.setArg2Float(instr, v); err != nil {
			return 0, err
		}
		return pc, nil

	case bytecode.POPB:
		v, err := vm.popInt8()
		if err != nil {
			return 0, err
		}
		if err := vm.setArg2Int8(instr, v); err != nil {
			return 0, err
		}
		return pc, nil

	case bytecode.DUPI:
		v, err := vm.dupInt32()
		if err != nil {
			return 0, err
		}
		if err := vm.setArg2Int32(instr, v); err != nil {
			return 0, err
		}
		return pc, nil

	case bytecode.DUPF:
		v, err := vm.dupFloat()
		if err != nil {
			return 0, err
		}
		if err := vm.setArg2Float(instr, v); err != nil {
			return 0, err
		}
		return pc, nil

	case bytecode.DUPB:
		v, err := vm.dupInt8()
		if err != nil {
			return 0, err
		}
		if err := vm.setArg2Int8(instr, v); err != nil {
			return 0, err
		}
		return pc, nil

	case bytecode.IFI:
		a, err := vm.getArg1Int32(instr)
		if err != nil {
			return 0, err
		}
		b, err := vm.getArg2Int32(instr, code)
		if err != nil {
			return 0, err
		}
		if a > b {
			return pc + 1, nil
		}
		return pc, nil

	case bytecode.IFF:
		a, err := vm.getArg1Float(instr)
		if err != nil {
			return 0, err
		}
		b, err := vm.getArg2Float(instr, code)
		if err != nil {
			return 0, err
		}
		if a > b {
			return pc + 1, nil
		}
		return pc, nil

	case bytecode.IFB:
		a, err := vm.getArg1Int8(instr)
		if err != nil {
			return 0, err
		}
		b, err := vm.getArg2Int8(instr, code)
		if err != nil {
			return 0, err
		}
		if a > b {
			return pc + 1, nil
		}
		return pc, nil

	case bytecode.IFEI:
		a, err := vm.getArg1Int32(instr)
		if err != nil {
			return 0, err
		}
		b, err := vm.getArg2Int32(instr, code)
		if err != nil {
			return 0, err
		}
		if a >= b {
			return pc + 1, nil
		}
		return pc, nil

	case bytecode.IFEF:
		a, err := vm.getArg1Float(instr)
		if err != nil {
			return 0, err
		}
		b, err := vm.getArg2Float(instr, code)
		if err != nil {
			return 0, err
		}
		if a >= b {
			return pc + 1, nil
		}
		return pc, nil

	case bytecode.IFEB:
		a, err := vm.getArg1Int8(instr)
		if err != nil {
			return 0, err
		}
		b, err := vm.getArg2Int8(instr, code)
		if err != nil {
			return 0, err
		}
		if a >= b {
			return pc + 1, nil
		}
		return pc, nil

	case bytecode.PRINTI:
		v, err := vm.getArg2Int32(instr, code)
		if err != nil {
			return 0, err
		}
		fmt.Fprintf(vm.Out, "%d", v)
		return pc, nil

	case bytecode.PRINTF:
		v, err := vm.getArg2Float(instr, code)
		if err != nil {
			return 0, err
		}
		fmt.Fprintf(vm.Out, "%g", v)
		return pc, nil

	case bytecode.PRINTB:
		v, err := vm.getArg2Int8(instr, code)
		if err != nil {
			return 0, err
		}
		fmt.Fprintf(vm.Out, "%d", v)
		return pc, nil

	case bytecode.PRINTC:
		v, err := vm.getArg2Int8(instr, code)
		if err != nil {
			return 0, err
		}
		fmt.Fprintf(vm.Out, "%c", byte(v))
		return pc, nil

	case bytecode.ADDI, bytecode.SUBI, bytecode.MULI, bytecode.DIVI, bytecode.MODI:
		return pc, vm.execArithInt(instr, code, op, pc-1)

	case bytecode.ADDF, bytecode.SUBF, bytecode.MULF, bytecode.DIVF, bytecode.MODF:
		return pc, vm.execArithFloat(instr, code, op, pc-1)

	case bytecode.ADDB, bytecode.SUBB, bytecode.MULB, bytecode.DIVB, bytecode.MODB:
		return pc, vm.execArithByte(instr, code, op, pc-1)

	case bytecode.ORI, bytecode.ANDI, bytecode.XORI, bytecode.NOTI,
		bytecode.SZRLI, bytecode.SRLI, bytecode.SLLI:
		return pc, vm.execBitwiseInt(instr, code, op)

	case bytecode.ORB, bytecode.ANDB, bytecode.XORB, bytecode.NOTB,
		bytecode.SZRLB, bytecode.SRLB, bytecode.SLLB:
		return pc, vm.execBitwiseByte(instr, code, op)

	default:
		return 0, &vmerr.InvalidOpcodeError{PC: pc - 1, Opcode: uint32(op)}
	}
}
